package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kena741/lolelink-admin/internal/core/collection"
	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// CatalogService implements the categories, subcategories, and services
// screens over three independent collection stores.
type CatalogService struct {
	categories    *collection.Store[domain.Category]
	subCategories *collection.Store[domain.SubCategory]
	services      *collection.Store[domain.Service]
	bookingRows   ports.RowStore // dependency check on service delete
	logger        zerolog.Logger
}

func NewCatalogService(
	categoryRows, subCategoryRows, serviceRows, bookingRows ports.RowStore,
	obs collection.Observer,
	logger zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		categories: collection.New("categories",
			collection.RowSource[domain.Category]{Rows: categoryRows, Normalize: domain.CategoryFromRow},
			func(c domain.Category) any { return c.ID },
			collection.WithObserver[domain.Category](obs)),
		subCategories: collection.New("subcategories",
			collection.RowSource[domain.SubCategory]{Rows: subCategoryRows, Normalize: domain.SubCategoryFromRow},
			func(s domain.SubCategory) any { return s.ID },
			collection.WithObserver[domain.SubCategory](obs)),
		services: collection.New("services",
			collection.RowSource[domain.Service]{Rows: serviceRows, Normalize: domain.ServiceFromRow},
			func(s domain.Service) any { return s.ID },
			collection.WithObserver[domain.Service](obs)),
		bookingRows: bookingRows,
		logger:      logger,
	}
}

// --- Categories ---

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.categories.FetchAll(ctx, ports.Filter{OrderBy: "category_name"})
	if err != nil {
		return nil, err
	}

	subs, err := s.subCategories.FetchAll(ctx, ports.Filter{})
	if err != nil {
		// Counts fall back to the previous snapshot; the list itself is fine.
		s.logger.Warn().Err(err).Msg("subcategory fetch failed, counts may be stale")
		subs = s.subCategories.Records()
	}
	counts := collection.CountByKey(subs, func(sc domain.SubCategory) string { return sc.CategoryID })
	for i := range cats {
		cats[i].SubCategoryCount = counts[cats[i].ID]
	}
	return cats, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	cat, err := s.categories.FetchOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, in ports.CreateCategoryInput) (*domain.Category, error) {
	fields := domain.Row{"category_name": in.CategoryName, "active": true}
	if in.ImageURL != "" {
		fields["image_url"] = in.ImageURL
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	created, err := s.categories.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("category_id", created.ID).Str("name", created.CategoryName).Msg("category created")
	return &created, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, in ports.UpdateCategoryInput) (*domain.Category, error) {
	fields := domain.Row{}
	if in.CategoryName != nil {
		fields["category_name"] = *in.CategoryName
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	updated, err := s.categories.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

// --- Subcategories ---

func (s *CatalogService) ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error) {
	f := ports.Filter{OrderBy: "name"}
	if categoryID != "" {
		f.Eq = map[string]any{"category_id": categoryID}
	}
	subs, err := s.subCategories.FetchAll(ctx, f)
	if err != nil {
		return nil, err
	}
	s.attachCategoryNames(ctx, subs)
	return subs, nil
}

// attachCategoryNames denormalizes the parent display name onto each
// subcategory. The foreign key stays the source of truth; a missing parent
// just leaves the companion empty.
func (s *CatalogService) attachCategoryNames(ctx context.Context, subs []domain.SubCategory) {
	cats := s.categories.Records()
	if len(cats) == 0 {
		fetched, err := s.categories.FetchAll(ctx, ports.Filter{})
		if err != nil {
			return
		}
		cats = fetched
	}
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.CategoryName
	}
	for i := range subs {
		subs[i].CategoryName = names[subs[i].CategoryID]
	}
}

func subCategoryFields(in ports.CreateSubCategoryInput) domain.Row {
	fields := domain.Row{"category_id": in.CategoryID, "name": in.Name, "active": true}
	if in.ImageURL != "" {
		fields["image_url"] = in.ImageURL
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}
	return fields
}

func (s *CatalogService) CreateSubCategory(ctx context.Context, in ports.CreateSubCategoryInput) (*domain.SubCategory, error) {
	created, err := s.subCategories.Create(ctx, subCategoryFields(in))
	if err != nil {
		return nil, err
	}
	s.attachCategoryNames(ctx, []domain.SubCategory{created})
	return &created, nil
}

// CreateSubCategoryBatch inserts every input or none. Inserts run
// concurrently; when any fails, the ones that already landed are deleted
// again and the first error is surfaced.
func (s *CatalogService) CreateSubCategoryBatch(ctx context.Context, in []ports.CreateSubCategoryInput) ([]domain.SubCategory, error) {
	results := make([]domain.SubCategory, len(in))
	var mu sync.Mutex
	var createdIDs []string

	g, gctx := errgroup.WithContext(ctx)
	for i, one := range in {
		g.Go(func() error {
			created, err := s.subCategories.Create(gctx, subCategoryFields(one))
			if err != nil {
				return err
			}
			mu.Lock()
			results[i] = created
			createdIDs = append(createdIDs, created.ID)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, id := range createdIDs {
			if delErr := s.subCategories.Delete(ctx, id); delErr != nil {
				s.logger.Error().Err(delErr).Str("subcategory_id", id).Msg("batch rollback delete failed")
			}
		}
		return nil, err
	}

	s.attachCategoryNames(ctx, results)
	s.logger.Info().Int("count", len(results)).Msg("subcategory batch created")
	return results, nil
}

func (s *CatalogService) UpdateSubCategory(ctx context.Context, id string, in ports.UpdateSubCategoryInput) (*domain.SubCategory, error) {
	fields := domain.Row{}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	updated, err := s.subCategories.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.attachCategoryNames(ctx, []domain.SubCategory{updated})
	return &updated, nil
}

func (s *CatalogService) DeleteSubCategory(ctx context.Context, id string) error {
	return s.subCategories.Delete(ctx, id)
}

// --- Services ---

func (s *CatalogService) ListServices(ctx context.Context, in ports.ListServicesInput) ([]domain.Service, error) {
	f := ports.Filter{OrderBy: "created_at", Desc: true}
	if !in.IncludeArchived {
		f.Not = map[string]any{"archived": true}
	}
	if in.ProviderID != "" {
		f.Eq = map[string]any{"provider_id": in.ProviderID}
	}
	return s.services.FetchAll(ctx, f)
}

func (s *CatalogService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := s.services.FetchOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *CatalogService) CreateService(ctx context.Context, in ports.CreateServiceInput) (*domain.Service, error) {
	fields := domain.Row{
		"provider_id": in.ProviderID,
		"category_id": in.CategoryID,
		"name":        in.Name,
		"price":       in.Price,
		"active":      true,
		"archived":    false,
	}
	if in.SubCategoryID != "" {
		fields["sub_category_id"] = in.SubCategoryID
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if in.DurationMinutes > 0 {
		fields["duration_minutes"] = in.DurationMinutes
	}
	if in.ImageURL != "" {
		fields["image_url"] = in.ImageURL
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	created, err := s.services.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("service_id", created.ID).Str("provider_id", created.ProviderID).Msg("service created")
	return &created, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id string, in ports.UpdateServiceInput) (*domain.Service, error) {
	fields := domain.Row{}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.SubCategoryID != nil {
		fields["sub_category_id"] = *in.SubCategoryID
	}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.DurationMinutes != nil {
		fields["duration_minutes"] = *in.DurationMinutes
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	updated, err := s.services.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteService checks the bookings table for rows referencing the service.
// Any dependent row redirects the delete into an archive update; the caller
// gets the same success signal either way and re-fetches for authoritative
// state, since archived rows are filtered out of default listings.
func (s *CatalogService) DeleteService(ctx context.Context, id string) (*ports.ServiceDeleteResult, error) {
	dependents, err := s.bookingRows.Count(ctx, ports.Filter{Eq: map[string]any{"service_id": id}})
	if err != nil {
		return nil, domain.NewOperationError("delete", "services", err)
	}

	if dependents > 0 {
		if _, err := s.services.Update(ctx, id, domain.Row{"archived": true}); err != nil {
			return nil, err
		}
		s.services.Discard(id)
		s.logger.Info().Str("service_id", id).Int64("bookings", dependents).Msg("service archived instead of deleted")
		return &ports.ServiceDeleteResult{Archived: true}, nil
	}

	if err := s.services.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &ports.ServiceDeleteResult{Archived: false}, nil
}
