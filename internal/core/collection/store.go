// Package collection implements the remote-collection sync pattern shared by
// every console entity: an in-memory snapshot of one backend table with
// loading/error flags, refreshed wholesale by fetch-all and written through
// by insert/update/delete. Every operation runs inside the
// pending/fulfilled/rejected envelope and its outcome is both returned to
// the caller and published to store state.
package collection

import (
	"context"
	"sync"
	"time"

	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// Source is what a Store syncs against: typed reads plus row-patch writes.
type Source[T any] interface {
	SelectAll(ctx context.Context, f ports.Filter) ([]T, error)
	SelectOne(ctx context.Context, id any) (T, error)
	Insert(ctx context.Context, fields domain.Row) (T, error)
	Update(ctx context.Context, id any, fields domain.Row) (T, error)
	Delete(ctx context.Context, id any) error
}

// RowSource adapts a raw RowStore into a typed Source by normalizing every
// row it hands out.
type RowSource[T any] struct {
	Rows      ports.RowStore
	Normalize func(domain.Row) T
}

func (s RowSource[T]) SelectAll(ctx context.Context, f ports.Filter) ([]T, error) {
	rows, err := s.Rows.SelectAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeRows(rows, s.Normalize), nil
}

func (s RowSource[T]) SelectOne(ctx context.Context, id any) (T, error) {
	var zero T
	row, err := s.Rows.SelectOne(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.Normalize(row), nil
}

func (s RowSource[T]) Insert(ctx context.Context, fields domain.Row) (T, error) {
	var zero T
	row, err := s.Rows.Insert(ctx, fields)
	if err != nil {
		return zero, err
	}
	return s.Normalize(row), nil
}

func (s RowSource[T]) Update(ctx context.Context, id any, fields domain.Row) (T, error) {
	var zero T
	row, err := s.Rows.Update(ctx, id, fields)
	if err != nil {
		return zero, err
	}
	return s.Normalize(row), nil
}

func (s RowSource[T]) Delete(ctx context.Context, id any) error {
	return s.Rows.Delete(ctx, id)
}

// Observer receives one sample per resolved operation. size is the snapshot
// length after the outcome was applied.
type Observer func(entity, op, outcome string, seconds float64, size int)

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithObserver attaches an operation observer (Prometheus in production).
func WithObserver[T any](obs Observer) Option[T] {
	return func(s *Store[T]) { s.observe = obs }
}

// Store holds the snapshot for one entity type. Each entity owns an
// independent instance; there is no cross-entity state sharing.
//
// Concurrent operations are neither deduplicated nor queued: every call
// publishes its outcome when its own backend call returns, so the state
// reflects whichever operation resolved last (last-resolved-wins), not
// whichever was dispatched last.
type Store[T any] struct {
	entity  string
	source  Source[T]
	id      func(T) any
	observe Observer

	mu      sync.RWMutex
	records []T
	current *T
	loading bool
	errMsg  string
}

// New builds a Store for entity. id extracts a record's identifier for
// merge/remove by id.
func New[T any](entity string, source Source[T], id func(T) any, opts ...Option[T]) *Store[T] {
	s := &Store[T]{entity: entity, source: source, id: id}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Records returns the current snapshot (a copy).
func (s *Store[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Current returns the fetch-one slot, nil when never fetched.
func (s *Store[T]) Current() *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last rejection message, empty after a fulfilled operation
// or a fresh dispatch.
func (s *Store[T]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Reset drops all state, returning the store to its initial condition.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.current = nil
	s.loading = false
	s.errMsg = ""
}

// begin marks the operation pending: loading on, previous error cleared,
// previous records kept.
func (s *Store[T]) begin() time.Time {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
	return time.Now()
}

// publish records the outcome into store state and the observer. It takes
// the lock only here, after the backend call resolved; that ordering is what
// makes racing operations last-resolved-wins.
func publish[T, P any](s *Store[T], op string, started time.Time, out Outcome[P], apply func()) error {
	s.mu.Lock()
	s.loading = false
	if out.Rejected() {
		s.errMsg = out.Failure.Message
	} else if apply != nil {
		apply()
	}
	size := len(s.records)
	s.mu.Unlock()

	if s.observe != nil {
		s.observe(s.entity, op, out.Status.String(), time.Since(started).Seconds(), size)
	}
	if out.Rejected() {
		return out.Failure
	}
	return nil
}

// FetchAll reads the whole remote collection and replaces the snapshot. On
// failure the previous snapshot is left untouched and Err is set.
func (s *Store[T]) FetchAll(ctx context.Context, f ports.Filter) ([]T, error) {
	started := s.begin()
	fetched, err := s.source.SelectAll(ctx, f)
	out := resolve("fetch", s.entity, fetched, err)
	err = publish(s, "fetch", started, out, func() { s.records = fetched })
	if err != nil {
		return nil, err
	}
	return fetched, nil
}

// FetchOne reads a single record into the detail slot. It never touches the
// list; a missing id surfaces an error instead of silently returning nothing.
func (s *Store[T]) FetchOne(ctx context.Context, id any) (T, error) {
	started := s.begin()
	rec, err := s.source.SelectOne(ctx, id)
	out := resolve("fetch", s.entity, rec, err)
	err = publish(s, "fetch_one", started, out, func() { s.current = &rec })
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Create inserts fields remotely and, on success, splices the confirmed
// record onto the front of the snapshot (most-recent-first ordering). The
// authoritative state is still the next FetchAll.
func (s *Store[T]) Create(ctx context.Context, fields domain.Row) (T, error) {
	started := s.begin()
	rec, err := s.source.Insert(ctx, fields)
	out := resolve("create", s.entity, rec, err)
	err = publish(s, "create", started, out, func() {
		s.records = append([]T{rec}, s.records...)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Update patches only the provided fields and replaces the matching record
// with the server-confirmed merge. When the id is not in the snapshot the
// list is left alone; the remote write still happened.
func (s *Store[T]) Update(ctx context.Context, id any, fields domain.Row) (T, error) {
	started := s.begin()
	rec, err := s.source.Update(ctx, id, fields)
	out := resolve("update", s.entity, rec, err)
	err = publish(s, "update", started, out, func() {
		for i := range s.records {
			if s.id(s.records[i]) == id {
				s.records[i] = rec
				break
			}
		}
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Delete removes the remote row and drops it from the snapshot.
func (s *Store[T]) Delete(ctx context.Context, id any) error {
	started := s.begin()
	err := s.source.Delete(ctx, id)
	out := resolve("delete", s.entity, struct{}{}, err)
	return publish(s, "delete", started, out, func() { s.removeLocked(id) })
}

// Discard drops a record from the snapshot without a remote delete. The
// archive path uses it: the row survives remotely with its archive flag set
// but disappears from the visible list until the next fetch.
func (s *Store[T]) Discard(id any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

func (s *Store[T]) removeLocked(id any) {
	for i := range s.records {
		if s.id(s.records[i]) == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}
