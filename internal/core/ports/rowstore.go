package ports

import (
	"context"

	"github.com/kena741/lolelink-admin/internal/core/domain"
)

// Filter narrows and orders a whole-collection read. It deliberately covers
// only what the console screens use: equality, in-set, not-equal, and a
// single order-by column. Keys are row column names; the backend maps the
// logical "id" column to whatever its primary key is stored as.
type Filter struct {
	Eq      map[string]any   // column = value
	In      map[string][]any // column IN (set)
	Not     map[string]any   // column != value (soft-delete exclusion)
	OrderBy string
	Desc    bool
}

// RowStore is the opaque backend table: filtered/ordered reads and writes
// that return the stored row. It knows nothing about canonical records;
// normalization happens on the way out.
type RowStore interface {
	// SelectAll returns every row matching filter, in backend order.
	SelectAll(ctx context.Context, f Filter) ([]domain.Row, error)
	// SelectOne returns the single row with the given id, or
	// domain.ErrNotFound when no such row exists.
	SelectOne(ctx context.Context, id any) (domain.Row, error)
	// Insert stores fields as a new row, assigns the id and creation
	// timestamp, and returns the stored row.
	Insert(ctx context.Context, fields domain.Row) (domain.Row, error)
	// Update patches only the provided fields and returns the merged row.
	Update(ctx context.Context, id any, fields domain.Row) (domain.Row, error)
	Delete(ctx context.Context, id any) error
	Count(ctx context.Context, f Filter) (int64, error)
}
