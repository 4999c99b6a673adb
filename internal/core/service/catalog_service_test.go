package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub row store shared by the service tests
// ---------------------------------------------------------------------------

type stubRows struct {
	mu        sync.Mutex
	seq       int
	order     []any
	rows      map[any]domain.Row
	err       error // every call fails with this when set
	failAfter int   // when > 0, Insert fails once this many inserts happened
	inserts   int
}

func newStubRows() *stubRows {
	return &stubRows{rows: make(map[any]domain.Row)}
}

// seed stores a row under the given id without touching the insert counter.
func (s *stubRows) seed(id any, row domain.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row["id"] = id
	s.rows[id] = row
	s.order = append(s.order, id)
}

func rowMatches(r domain.Row, f ports.Filter) bool {
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
	for k, set := range f.In {
		found := false
		for _, v := range set {
			if r[k] == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (s *stubRows) SelectAll(_ context.Context, f ports.Filter) ([]domain.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Row, 0, len(s.order))
	for _, id := range s.order {
		if rowMatches(s.rows[id], f) {
			out = append(out, s.rows[id])
		}
	}
	return out, nil
}

func (s *stubRows) SelectOne(_ context.Context, id any) (domain.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	r, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func (s *stubRows) Insert(_ context.Context, fields domain.Row) (domain.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.inserts++
	if s.failAfter > 0 && s.inserts > s.failAfter {
		return nil, errors.New("insert rejected")
	}
	s.seq++
	id := fmt.Sprintf("id-%d", s.seq)
	row := domain.Row{"id": id, "created_at": time.Now().UTC()}
	for k, v := range fields {
		row[k] = v
	}
	s.rows[id] = row
	s.order = append(s.order, id)
	return row, nil
}

func (s *stubRows) Update(_ context.Context, id any, fields domain.Row) (domain.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	r, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for k, v := range fields {
		r[k] = v
	}
	return r, nil
}

func (s *stubRows) Delete(_ context.Context, id any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.rows, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *stubRows) Count(_ context.Context, f ports.Filter) (int64, error) {
	all, err := s.SelectAll(context.Background(), f)
	return int64(len(all)), err
}

func (s *stubRows) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

var discardLogger = zerolog.Nop()

func newCatalog(categories, subCategories, services, bookings *stubRows) *CatalogService {
	return NewCatalogService(categories, subCategories, services, bookings, nil, discardLogger)
}

// ---------------------------------------------------------------------------
// Category tests
// ---------------------------------------------------------------------------

func TestCatalog_CreateCategory(t *testing.T) {
	svc := newCatalog(newStubRows(), newStubRows(), newStubRows(), newStubRows())

	created, err := svc.CreateCategory(context.Background(), ports.CreateCategoryInput{CategoryName: "Cleaning"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("backend must assign an id")
	}
	if created.CategoryName != "Cleaning" {
		t.Errorf("expected name %q, got %q", "Cleaning", created.CategoryName)
	}
	if !created.Active {
		t.Error("new categories default active")
	}

	listed, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].CategoryName != "Cleaning" {
		t.Fatalf("expected the created category in the listing, got %+v", listed)
	}
}

func TestCatalog_ListCategories_AttachesSubCategoryCounts(t *testing.T) {
	categories := newStubRows()
	categories.seed("cat-1", domain.Row{"category_name": "Cleaning"})
	categories.seed("cat-2", domain.Row{"category_name": "Plumbing"})

	subCategories := newStubRows()
	subCategories.seed("s1", domain.Row{"category_id": "cat-1", "name": "Sofa"})
	subCategories.seed("s2", domain.Row{"category_id": "cat-1", "name": "Carpet"})

	svc := newCatalog(categories, subCategories, newStubRows(), newStubRows())
	listed, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts := map[string]int{}
	for _, c := range listed {
		counts[c.ID] = c.SubCategoryCount
	}
	if counts["cat-1"] != 2 {
		t.Errorf("cat-1: expected 2 subcategories, got %d", counts["cat-1"])
	}
	if counts["cat-2"] != 0 {
		t.Errorf("cat-2: expected 0 subcategories, got %d", counts["cat-2"])
	}
}

func TestCatalog_UpdateCategory_SendsOnlyProvidedFields(t *testing.T) {
	categories := newStubRows()
	categories.seed("cat-1", domain.Row{"category_name": "Cleaning", "image_url": "a.png", "active": true})

	svc := newCatalog(categories, newStubRows(), newStubRows(), newStubRows())
	name := "Deep Cleaning"
	updated, err := svc.UpdateCategory(context.Background(), "cat-1", ports.UpdateCategoryInput{CategoryName: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CategoryName != "Deep Cleaning" {
		t.Errorf("name not updated: %q", updated.CategoryName)
	}
	if updated.ImageURL == nil || *updated.ImageURL != "a.png" {
		t.Error("unrelated field must survive a partial patch")
	}
}

// ---------------------------------------------------------------------------
// Subcategory tests
// ---------------------------------------------------------------------------

func TestCatalog_ListSubCategories_DenormalizesParentName(t *testing.T) {
	categories := newStubRows()
	categories.seed("cat-1", domain.Row{"category_name": "Cleaning"})

	subCategories := newStubRows()
	subCategories.seed("s1", domain.Row{"category_id": "cat-1", "name": "Sofa"})
	subCategories.seed("s2", domain.Row{"category_id": "cat-404", "name": "Orphan"})

	svc := newCatalog(categories, subCategories, newStubRows(), newStubRows())
	listed, err := svc.ListSubCategories(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := map[string]domain.SubCategory{}
	for _, sc := range listed {
		byID[sc.ID] = sc
	}
	if byID["s1"].CategoryName != "Cleaning" {
		t.Errorf("expected parent name attached, got %q", byID["s1"].CategoryName)
	}
	if byID["s1"].CategoryID != "cat-1" {
		t.Error("foreign key must stay the source of truth")
	}
	if byID["s2"].CategoryName != "" {
		t.Error("unknown parent leaves the companion empty")
	}
}

func TestCatalog_CreateSubCategoryBatch_AllOrNothing(t *testing.T) {
	subCategories := newStubRows()
	subCategories.failAfter = 1 // second and later inserts fail

	svc := newCatalog(newStubRows(), subCategories, newStubRows(), newStubRows())
	_, err := svc.CreateSubCategoryBatch(context.Background(), []ports.CreateSubCategoryInput{
		{CategoryID: "cat-1", Name: "Sofa"},
		{CategoryID: "cat-1", Name: "Carpet"},
		{CategoryID: "cat-1", Name: "Window"},
	})
	if err == nil {
		t.Fatal("expected the batch to fail")
	}
	if subCategories.size() != 0 {
		t.Errorf("expected zero subcategories persisted after rollback, got %d", subCategories.size())
	}
}

func TestCatalog_CreateSubCategoryBatch_Success(t *testing.T) {
	svc := newCatalog(newStubRows(), newStubRows(), newStubRows(), newStubRows())
	created, err := svc.CreateSubCategoryBatch(context.Background(), []ports.CreateSubCategoryInput{
		{CategoryID: "cat-1", Name: "Sofa"},
		{CategoryID: "cat-1", Name: "Carpet"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 created, got %d", len(created))
	}
	// Results preserve input order.
	if created[0].Name != "Sofa" || created[1].Name != "Carpet" {
		t.Errorf("results out of order: %+v", created)
	}
}

// ---------------------------------------------------------------------------
// Service delete / archive tests
// ---------------------------------------------------------------------------

func TestCatalog_DeleteService_NoDependents_HardDeletes(t *testing.T) {
	services := newStubRows()
	services.seed("svc-1", domain.Row{"name": "Sofa Cleaning", "provider_id": "p1"})

	svc := newCatalog(newStubRows(), newStubRows(), services, newStubRows())
	result, err := svc.DeleteService(context.Background(), "svc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Archived {
		t.Error("expected a hard delete with no dependent bookings")
	}
	if services.size() != 0 {
		t.Error("remote row must be gone")
	}
}

func TestCatalog_DeleteService_WithBookings_Archives(t *testing.T) {
	services := newStubRows()
	services.seed("svc-1", domain.Row{"name": "Sofa Cleaning", "provider_id": "p1"})

	bookings := newStubRows()
	bookings.seed(int64(9001), domain.Row{"service_id": "svc-1", "status": "confirmed"})

	svc := newCatalog(newStubRows(), newStubRows(), services, bookings)
	result, err := svc.DeleteService(context.Background(), "svc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Archived {
		t.Fatal("expected archive when a booking references the service")
	}
	if services.size() != 1 {
		t.Error("remote row must still exist after archiving")
	}

	row, err := services.SelectOne(context.Background(), "svc-1")
	if err != nil {
		t.Fatalf("row lookup: %v", err)
	}
	if row["archived"] != true {
		t.Error("archived flag must be set on the remote row")
	}

	// Default listing excludes the archived record.
	listed, err := svc.ListServices(context.Background(), ports.ListServicesInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("archived service must not appear in the default listing, got %d", len(listed))
	}

	// But an explicit include-archived listing still shows it.
	all, err := svc.ListServices(context.Background(), ports.ListServicesInput{IncludeArchived: true})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 1 || !all[0].Archived {
		t.Errorf("expected the archived record in the full listing, got %+v", all)
	}
}

func TestCatalog_DeleteService_DependencyCheckFailure(t *testing.T) {
	services := newStubRows()
	services.seed("svc-1", domain.Row{"name": "Sofa Cleaning"})
	bookings := newStubRows()
	bookings.err = errors.New("bookings table unavailable")

	svc := newCatalog(newStubRows(), newStubRows(), services, bookings)
	_, err := svc.DeleteService(context.Background(), "svc-1")
	if err == nil {
		t.Fatal("expected error when the dependency check fails")
	}
	var opErr *domain.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected an OperationError, got %T", err)
	}
	if services.size() != 1 {
		t.Error("nothing may be deleted when the check fails")
	}
}
