package resolve

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/torvane/daybook/item"
)

// Canonical returns the canonical key of an alias or query: Unicode NFC
// normalization followed by case folding. The same canonicalization is
// applied to both sides of every comparison, so "Café" and "café"
// match the same stored alias.
func Canonical(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// ShortestUniquePrefixes computes, for each alias in the set, the shortest
// prefix that identifies it uniquely among its peers. Used for display: a
// listing can highlight how little the user needs to type. Keys and values
// are canonical forms; an alias that is a strict prefix of another needs its
// full length.
func ShortestUniquePrefixes(aliases []string) map[string]string {
	canon := make([]string, len(aliases))
	for i, a := range aliases {
		canon[i] = Canonical(a)
	}
	sort.Strings(canon)

	prefixes := make(map[string]string, len(canon))
	for i, a := range canon {
		need := 1
		if i > 0 {
			need = max(need, commonPrefixLen(a, canon[i-1])+1)
		}
		if i < len(canon)-1 {
			need = max(need, commonPrefixLen(a, canon[i+1])+1)
		}
		runes := []rune(a)
		if need > len(runes) {
			need = len(runes)
		}
		prefixes[a] = string(runes[:need])
	}
	return prefixes
}

func commonPrefixLen(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return n
}

// MatchPrefix resolves query as a case-insensitive prefix against the
// candidate aliases. It returns every candidate whose canonical form starts
// with the canonical query; interpretation of the count (resolved,
// ambiguous, not found) is the caller's.
func MatchPrefix(query string, candidates []item.Alias) []item.Alias {
	q := Canonical(query)
	var matches []item.Alias
	for _, a := range candidates {
		if strings.HasPrefix(a.Canonical, q) {
			matches = append(matches, a)
		}
	}
	return matches
}

// matchExact returns the candidate whose canonical form equals the query.
func matchExact(query string, candidates []item.Alias) *item.Alias {
	q := Canonical(query)
	for _, a := range candidates {
		if a.Canonical == q {
			return &a
		}
	}
	return nil
}
