package storage

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/torvane/daybook/errors"
	"github.com/torvane/daybook/item"
)

const (
	aliasUpsertQuery = `
		INSERT INTO aliases (canonical, slug, item_id, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(canonical) DO UPDATE SET
			slug = excluded.slug,
			item_id = excluded.item_id`

	aliasSelectQuery = `
		SELECT canonical, slug, item_id, created_at
		FROM aliases WHERE canonical = ?`

	aliasListQuery = `
		SELECT canonical, slug, item_id, created_at
		FROM aliases ORDER BY canonical`
)

// AliasStore implements item.AliasRepository on SQLite.
type AliasStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewAliasStore creates an alias store over an open database.
func NewAliasStore(db *sql.DB, logger *zap.SugaredLogger) *AliasStore {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &AliasStore{db: db, logger: logger}
}

// Load returns the alias with the given canonical slug, or nil when absent.
func (s *AliasStore) Load(ctx context.Context, canonical string) (*item.Alias, error) {
	row := s.db.QueryRowContext(ctx, aliasSelectQuery, canonical)
	a, err := scanAlias(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load alias %q", canonical)
	}
	return a, nil
}

// Save inserts or repoints the alias.
func (s *AliasStore) Save(ctx context.Context, a item.Alias) error {
	_, err := s.db.ExecContext(ctx, aliasUpsertQuery,
		a.Canonical,
		a.Slug,
		a.ItemID.String(),
		a.CreatedAt.UTC(),
	)
	if err != nil {
		return errors.Wrapf(err, "save alias %q", a.Canonical)
	}
	s.logger.Debugw("Alias saved", "slug", a.Slug, "item_id", a.ItemID)
	return nil
}

// Delete removes the alias; deleting an absent alias is not an error.
func (s *AliasStore) Delete(ctx context.Context, canonical string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM aliases WHERE canonical = ?", canonical)
	if err != nil {
		return errors.Wrapf(err, "delete alias %q", canonical)
	}
	return nil
}

// List returns every alias, sorted by canonical slug.
func (s *AliasStore) List(ctx context.Context) ([]item.Alias, error) {
	rows, err := s.db.QueryContext(ctx, aliasListQuery)
	if err != nil {
		return nil, errors.Wrap(err, "list aliases")
	}
	defer rows.Close()

	var aliases []item.Alias
	for rows.Next() {
		a, err := scanAlias(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan alias row")
		}
		aliases = append(aliases, *a)
	}
	return aliases, rows.Err()
}

func scanAlias(row rowScanner) (*item.Alias, error) {
	var a item.Alias
	var idStr string
	if err := row.Scan(&a.Canonical, &a.Slug, &idStr, &a.CreatedAt); err != nil {
		return nil, err
	}
	id, err := item.ParseID(idStr)
	if err != nil {
		return nil, errors.Wrapf(err, "stored alias item id %q", idStr)
	}
	a.ItemID = id
	return &a, nil
}
