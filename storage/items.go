// Package storage provides the SQLite-backed implementations of the item
// and alias repository ports. The placement is stored in its canonical
// string form plus two derived columns, head_day and parent/slot, which
// serve the only two scan shapes the resolver and workflows need: date
// window scans and sibling scans.
package storage

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/torvane/daybook/errors"
	"github.com/torvane/daybook/item"
	"github.com/torvane/daybook/placement"
	"github.com/torvane/daybook/rank"
)

const (
	itemUpsertQuery = `
		INSERT INTO items (id, title, body, placement, head_day, parent, slot, rank, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			placement = excluded.placement,
			head_day = excluded.head_day,
			parent = excluded.parent,
			slot = excluded.slot,
			rank = excluded.rank,
			updated_at = excluded.updated_at`

	itemSelectQuery = `
		SELECT id, title, body, placement, rank, created_at, updated_at
		FROM items WHERE id = ?`

	itemsByPlacementQuery = `
		SELECT id, title, body, placement, rank, created_at, updated_at
		FROM items WHERE placement = ? ORDER BY rank`

	itemsByDayWindowQuery = `
		SELECT id, title, body, placement, rank, created_at, updated_at
		FROM items WHERE head_day >= ? AND head_day <= ? ORDER BY head_day, rank`

	itemsBySlotWindowQuery = `
		SELECT id, title, body, placement, rank, created_at, updated_at
		FROM items WHERE parent = ? AND slot >= ? AND slot <= ? ORDER BY slot, rank`
)

// ItemStore implements item.Repository on SQLite.
type ItemStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewItemStore creates an item store over an open database.
func NewItemStore(db *sql.DB, logger *zap.SugaredLogger) *ItemStore {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ItemStore{db: db, logger: logger}
}

// Load returns the item with the given id, or nil when absent.
func (s *ItemStore) Load(ctx context.Context, id item.ID) (*item.Item, error) {
	row := s.db.QueryRowContext(ctx, itemSelectQuery, id.String())
	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load item %s", id)
	}
	return it, nil
}

// Save inserts or replaces the item, refreshing the derived placement
// columns.
func (s *ItemStore) Save(ctx context.Context, it item.Item) error {
	var headDay any
	if day, ok := it.Placement.Day(); ok {
		headDay = day.String()
	}
	var parent, slot any
	if p, ok := it.Placement.Parent(); ok {
		parent = p.String()
		section := it.Placement.Section()
		slot = section[len(section)-1]
	}

	_, err := s.db.ExecContext(ctx, itemUpsertQuery,
		it.ID.String(),
		it.Title,
		it.Body,
		it.Placement.String(),
		headDay,
		parent,
		slot,
		string(it.Rank),
		it.CreatedAt.UTC(),
		it.UpdatedAt.UTC(),
	)
	if err != nil {
		return errors.Wrapf(err, "save item %s", it.ID)
	}
	s.logger.Debugw("Item saved",
		"id", it.ID,
		"placement", it.Placement.String(),
		"rank", it.Rank,
	)
	return nil
}

// Delete removes the item and, through the foreign key, its aliases.
func (s *ItemStore) Delete(ctx context.Context, id item.ID) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id.String())
	if err != nil {
		return errors.Wrapf(err, "delete item %s", id)
	}
	return nil
}

// ListByPlacement returns the items inside the range, ordered by rank
// within each placement.
func (s *ItemStore) ListByPlacement(ctx context.Context, r placement.DirectoryRange) ([]item.Item, error) {
	var rows *sql.Rows
	var err error
	switch r.Kind() {
	case placement.RangeDays:
		from, to := r.Days()
		rows, err = s.db.QueryContext(ctx, itemsByDayWindowQuery, from.String(), to.String())
	case placement.RangeSections:
		parent, from, to := r.Sections()
		rows, err = s.db.QueryContext(ctx, itemsBySlotWindowQuery, parent.String(), from, to)
	default:
		rows, err = s.db.QueryContext(ctx, itemsByPlacementQuery, r.Single().String())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "list items in %s", r)
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan item row")
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*item.Item, error) {
	var (
		it           item.Item
		idStr        string
		placementStr string
		rankStr      string
	)
	if err := row.Scan(&idStr, &it.Title, &it.Body, &placementStr, &rankStr, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	id, err := item.ParseID(idStr)
	if err != nil {
		return nil, errors.Wrapf(err, "stored item id %q", idStr)
	}
	p, err := placement.Parse(placementStr)
	if err != nil {
		return nil, errors.Wrapf(err, "stored placement %q", placementStr)
	}
	it.ID = id
	it.Placement = p
	it.Rank = rank.Rank(rankStr)
	return &it, nil
}
