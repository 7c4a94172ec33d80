package errors

import "strings"

// resolutionSentinel is an error carrying a stable machine-readable code.
// Resolution failures wrap one of these so callers can switch on Code(err)
// or test with errors.Is without parsing messages.
type resolutionSentinel struct {
	code string
	msg  string
}

func (e *resolutionSentinel) Error() string { return e.msg }

func sentinel(code, msg string) *resolutionSentinel {
	s := &resolutionSentinel{code: code, msg: msg}
	sentinels = append(sentinels, s)
	return s
}

var sentinels []*resolutionSentinel

// Resolution taxonomy. One sentinel per stable code; wrap these with
// errors.Wrap to add context while preserving the code.
var (
	ErrAbsolutePathMissingHead    = sentinel("absolute_path_missing_head", "absolute path has no head segment")
	ErrAbsolutePathInvalidHead    = sentinel("absolute_path_invalid_head", "absolute path head must be a date, item id, or alias")
	ErrAbsolutePathInvalidSegment = sentinel("absolute_path_invalid_segment", "absolute path segments after the head must be numeric")
	ErrInvalidParent              = sentinel("invalid_parent", "placement has no parent")
	ErrItemNotFound               = sentinel("item_not_found", "item not found")
	ErrInvalidRangeOrder          = sentinel("invalid_range_order", "range start is after range end")
	ErrRangeDifferentParents      = sentinel("range_different_parents", "range endpoints have different parents")
	ErrAmbiguousAliasPrefix       = sentinel("ambiguous_alias_prefix", "alias prefix matches multiple aliases")
	ErrAliasNotFound              = sentinel("alias_not_found", "alias not found")
	ErrNotFound                   = sentinel("not_found", "not found")
	ErrNoHeadroom                 = sentinel("no_headroom", "rank is at the representable boundary")
	ErrDuplicateRanks             = sentinel("duplicate_ranks", "ranks compare equal")
	ErrTargetNotFound             = sentinel("target_not_found", "target rank not present in sibling set")
)

// Code returns the stable code carried by err, or "" when err does not wrap
// a resolution sentinel.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, s := range sentinels {
		if Is(err, s) {
			return s.code
		}
	}
	return ""
}

// withCandidates attaches the full candidate list to an ambiguous-prefix
// failure so callers can present the choices.
type withCandidates struct {
	cause      error
	candidates []string
}

func (e *withCandidates) Error() string {
	return e.cause.Error() + ": " + strings.Join(e.candidates, ", ")
}

func (e *withCandidates) Unwrap() error { return e.cause }

// WithCandidates wraps err with the matching candidate aliases.
func WithCandidates(err error, candidates []string) error {
	if err == nil {
		return nil
	}
	return &withCandidates{cause: err, candidates: candidates}
}

// Candidates extracts the candidate list from an ambiguous-prefix error.
// Returns nil when err carries none.
func Candidates(err error) []string {
	var wc *withCandidates
	if As(err, &wc) {
		return wc.candidates
	}
	return nil
}

// withFieldPath records which input field of a workflow request produced the
// failure, e.g. ["targetExpression"]. Resolution and parse errors are wrapped
// at the workflow boundary; repository errors pass through unmodified.
type withFieldPath struct {
	cause error
	path  []string
}

func (e *withFieldPath) Error() string {
	return strings.Join(e.path, ".") + ": " + e.cause.Error()
}

func (e *withFieldPath) Unwrap() error { return e.cause }

// WithFieldPath wraps err with the field path of the offending input.
func WithFieldPath(err error, path ...string) error {
	if err == nil {
		return nil
	}
	return &withFieldPath{cause: err, path: path}
}

// FieldPath extracts the field path from err, or nil.
func FieldPath(err error) []string {
	var wf *withFieldPath
	if As(err, &wf) {
		return wf.path
	}
	return nil
}
