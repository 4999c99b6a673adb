package collection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// fakeRows is an in-memory ports.RowStore: rows keyed by id, insertion
// order preserved, every call failable via err.
type fakeRows struct {
	mu    sync.Mutex
	seq   int
	order []string
	rows  map[string]domain.Row
	err   error
}

func newFakeRows() *fakeRows {
	return &fakeRows{rows: make(map[string]domain.Row)}
}

func (f *fakeRows) SelectAll(_ context.Context, filter ports.Filter) ([]domain.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Row, 0, len(f.order))
	for _, id := range f.order {
		r := f.rows[id]
		if matches(r, filter) {
			out = append(out, r)
		}
	}
	return out, nil
}

func matches(r domain.Row, f ports.Filter) bool {
	for k, v := range f.Eq {
		if r[k] != v {
			return false
		}
	}
	for k, v := range f.Not {
		if r[k] == v {
			return false
		}
	}
	return true
}

func (f *fakeRows) SelectOne(_ context.Context, id any) (domain.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.rows[id.(string)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func (f *fakeRows) Insert(_ context.Context, fields domain.Row) (domain.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	id := fmt.Sprintf("id-%d", f.seq)
	row := domain.Row{"id": id, "created_at": time.Now().UTC()}
	for k, v := range fields {
		row[k] = v
	}
	f.rows[id] = row
	f.order = append(f.order, id)
	return row, nil
}

func (f *fakeRows) Update(_ context.Context, id any, fields domain.Row) (domain.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.rows[id.(string)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for k, v := range fields {
		r[k] = v
	}
	return r, nil
}

func (f *fakeRows) Delete(_ context.Context, id any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.rows, id.(string))
	for i, existing := range f.order {
		if existing == id.(string) {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRows) Count(_ context.Context, filter ports.Filter) (int64, error) {
	all, err := f.SelectAll(context.Background(), filter)
	return int64(len(all)), err
}

func categoryStore(rows ports.RowStore) *Store[domain.Category] {
	src := RowSource[domain.Category]{Rows: rows, Normalize: domain.CategoryFromRow}
	return New("categories", src, func(c domain.Category) any { return c.ID })
}

func TestStore_FetchAll_ReplacesSnapshot(t *testing.T) {
	rows := newFakeRows()
	_, _ = rows.Insert(context.Background(), domain.Row{"category_name": "Cleaning"})
	_, _ = rows.Insert(context.Background(), domain.Row{"category_name": "Plumbing"})

	store := categoryStore(rows)
	got, err := store.FetchAll(context.Background(), ports.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Cleaning", got[0].CategoryName)
	assert.Equal(t, got, store.Records())
	assert.False(t, store.Loading())
	assert.Empty(t, store.Err())
}

func TestStore_FetchAll_FailureKeepsPriorRecords(t *testing.T) {
	rows := newFakeRows()
	_, _ = rows.Insert(context.Background(), domain.Row{"category_name": "Cleaning"})

	store := categoryStore(rows)
	_, err := store.FetchAll(context.Background(), ports.Filter{})
	require.NoError(t, err)

	rows.err = errors.New("connection refused")
	_, err = store.FetchAll(context.Background(), ports.Filter{})
	require.Error(t, err)

	assert.Len(t, store.Records(), 1, "failed fetch must not clobber the snapshot")
	assert.Equal(t, "connection refused", store.Err())
	assert.False(t, store.Loading())
}

func TestStore_FetchAll_FallbackMessage(t *testing.T) {
	rows := newFakeRows()
	rows.err = errors.New("")

	store := categoryStore(rows)
	_, err := store.FetchAll(context.Background(), ports.Filter{})
	require.Error(t, err)
	assert.Equal(t, "failed to fetch categories", store.Err())

	var opErr *domain.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "categories", opErr.Entity)
}

func TestStore_Create_PrependsAndReturnsServerRecord(t *testing.T) {
	rows := newFakeRows()
	_, _ = rows.Insert(context.Background(), domain.Row{"category_name": "Old"})

	store := categoryStore(rows)
	_, _ = store.FetchAll(context.Background(), ports.Filter{})

	created, err := store.Create(context.Background(), domain.Row{"category_name": "Cleaning", "active": true})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "id is assigned by the backend")
	assert.Equal(t, "Cleaning", created.CategoryName)
	assert.True(t, created.Active)

	snap := store.Records()
	require.Len(t, snap, 2)
	assert.Equal(t, created.ID, snap[0].ID, "new record is spliced to the front")

	// The next fetch is authoritative and reflects server order.
	refetched, err := store.FetchAll(context.Background(), ports.Filter{})
	require.NoError(t, err)
	require.Len(t, refetched, 2)
}

func TestStore_Create_FailureLeavesListUnchanged(t *testing.T) {
	rows := newFakeRows()
	_, _ = rows.Insert(context.Background(), domain.Row{"category_name": "Old"})

	store := categoryStore(rows)
	_, _ = store.FetchAll(context.Background(), ports.Filter{})

	rows.err = errors.New("duplicate key")
	_, err := store.Create(context.Background(), domain.Row{"category_name": "Cleaning"})
	require.Error(t, err)
	assert.Len(t, store.Records(), 1)
	assert.Equal(t, "duplicate key", store.Err())
}

func TestStore_Update_MergesByID(t *testing.T) {
	rows := newFakeRows()
	created, _ := rows.Insert(context.Background(), domain.Row{"category_name": "Cleaning", "image_url": "a.png"})
	id := created["id"].(string)

	store := categoryStore(rows)
	_, _ = store.FetchAll(context.Background(), ports.Filter{})

	updated, err := store.Update(context.Background(), id, domain.Row{"category_name": "Deep Cleaning"})
	require.NoError(t, err)
	assert.Equal(t, "Deep Cleaning", updated.CategoryName)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "a.png", *updated.ImageURL, "unrelated fields survive a partial patch")

	snap := store.Records()
	require.Len(t, snap, 1)
	assert.Equal(t, "Deep Cleaning", snap[0].CategoryName)
}

func TestStore_Update_UnknownLocalIDIsListNoop(t *testing.T) {
	rows := newFakeRows()
	created, _ := rows.Insert(context.Background(), domain.Row{"category_name": "Cleaning"})
	id := created["id"].(string)

	// Snapshot never fetched: list stays empty, remote write still happens.
	store := categoryStore(rows)
	_, err := store.Update(context.Background(), id, domain.Row{"category_name": "Renamed"})
	require.NoError(t, err)
	assert.Empty(t, store.Records())

	row, err := rows.SelectOne(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", row["category_name"])
}

func TestStore_Delete_RemovesRecord(t *testing.T) {
	rows := newFakeRows()
	created, _ := rows.Insert(context.Background(), domain.Row{"category_name": "Cleaning"})
	id := created["id"].(string)

	store := categoryStore(rows)
	_, _ = store.FetchAll(context.Background(), ports.Filter{})

	require.NoError(t, store.Delete(context.Background(), id))
	assert.Empty(t, store.Records())

	refetched, err := store.FetchAll(context.Background(), ports.Filter{})
	require.NoError(t, err)
	assert.Empty(t, refetched, "record is gone on the authoritative re-fetch")
}

func TestStore_FetchOne_UsesSeparateSlot(t *testing.T) {
	rows := newFakeRows()
	created, _ := rows.Insert(context.Background(), domain.Row{"category_name": "Cleaning"})
	id := created["id"].(string)

	store := categoryStore(rows)
	rec, err := store.FetchOne(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)

	require.NotNil(t, store.Current())
	assert.Equal(t, id, store.Current().ID)
	assert.Empty(t, store.Records(), "fetch-one never merges into the list")
}

func TestStore_FetchOne_NotFoundSurfacesError(t *testing.T) {
	store := categoryStore(newFakeRows())
	_, err := store.FetchOne(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, domain.ErrNotFound.Error(), store.Err())
	assert.Nil(t, store.Current())
}

func TestStore_PendingClearsPreviousError(t *testing.T) {
	rows := newFakeRows()
	store := categoryStore(rows)

	rows.err = errors.New("boom")
	_, _ = store.FetchAll(context.Background(), ports.Filter{})
	require.NotEmpty(t, store.Err())

	rows.err = nil
	_, err := store.FetchAll(context.Background(), ports.Filter{})
	require.NoError(t, err)
	assert.Empty(t, store.Err())
}

func TestStore_Reset(t *testing.T) {
	rows := newFakeRows()
	_, _ = rows.Insert(context.Background(), domain.Row{"category_name": "Cleaning"})
	store := categoryStore(rows)
	_, _ = store.FetchAll(context.Background(), ports.Filter{})
	require.NotEmpty(t, store.Records())

	store.Reset()
	assert.Empty(t, store.Records())
	assert.Nil(t, store.Current())
	assert.Empty(t, store.Err())
}

// gatedSource wraps a Source so each Update blocks until released, letting
// tests control resolution order independently of dispatch order.
type gatedSource struct {
	Source[domain.Category]
	gates chan chan struct{}
}

func (g *gatedSource) Update(ctx context.Context, id any, fields domain.Row) (domain.Category, error) {
	release := make(chan struct{})
	g.gates <- release
	<-release
	return g.Source.Update(ctx, id, fields)
}

// Two racing updates to the same id: the snapshot ends up with whichever
// resolved last, regardless of dispatch order.
func TestStore_ConcurrentUpdates_LastResolvedWins(t *testing.T) {
	rows := newFakeRows()
	created, _ := rows.Insert(context.Background(), domain.Row{"category_name": "Original"})
	id := created["id"].(string)

	gated := &gatedSource{
		Source: RowSource[domain.Category]{Rows: rows, Normalize: domain.CategoryFromRow},
		gates:  make(chan chan struct{}, 2),
	}
	store := New("categories", Source[domain.Category](gated), func(c domain.Category) any { return c.ID })
	_, err := store.FetchAll(context.Background(), ports.Filter{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = store.Update(context.Background(), id, domain.Row{"category_name": "First Dispatched"})
	}()
	firstGate := <-gated.gates
	secondDone := make(chan struct{})
	go func() {
		defer wg.Done()
		_, _ = store.Update(context.Background(), id, domain.Row{"category_name": "Second Dispatched"})
		close(secondDone)
	}()
	secondGate := <-gated.gates

	// Resolve the second dispatch first and wait for its publish to land
	// before releasing the first, so resolution order is pinned, not left
	// to the scheduler.
	close(secondGate)
	<-secondDone
	close(firstGate)
	wg.Wait()

	snap := store.Records()
	require.Len(t, snap, 1)
	assert.Equal(t, "First Dispatched", snap[0].CategoryName,
		"state belongs to the update that resolved last, not the one dispatched last")
}

func TestStore_ObserverSeesOutcomes(t *testing.T) {
	rows := newFakeRows()
	_, _ = rows.Insert(context.Background(), domain.Row{"category_name": "Cleaning"})
	var mu sync.Mutex
	samples := make(map[string]string)
	sizes := make(map[string]int)
	src := RowSource[domain.Category]{Rows: rows, Normalize: domain.CategoryFromRow}
	store := New("categories", src,
		func(c domain.Category) any { return c.ID },
		WithObserver[domain.Category](func(entity, op, outcome string, _ float64, size int) {
			mu.Lock()
			samples[op] = outcome
			sizes[op] = size
			mu.Unlock()
		}))

	_, _ = store.FetchAll(context.Background(), ports.Filter{})
	rows.err = errors.New("boom")
	_, _ = store.Create(context.Background(), domain.Row{"category_name": "x"})

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "fulfilled", samples["fetch"])
	assert.Equal(t, 1, sizes["fetch"], "size reflects the snapshot after the outcome")
	assert.Equal(t, "rejected", samples["create"])
	assert.Equal(t, 1, sizes["create"], "rejected create leaves the snapshot as-is")
}
