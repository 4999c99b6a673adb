package ports

import (
	"context"

	"github.com/kena741/lolelink-admin/internal/core/domain"
)

// CreateCategoryInput carries the fields of a new category.
type CreateCategoryInput struct {
	CategoryName string
	ImageURL     string
	Active       *bool
}

// UpdateCategoryInput is a partial patch: nil fields are not sent.
type UpdateCategoryInput struct {
	CategoryName *string
	ImageURL     *string
	Active       *bool
}

type CreateSubCategoryInput struct {
	CategoryID string
	Name       string
	ImageURL   string
	Active     *bool
}

type UpdateSubCategoryInput struct {
	CategoryID *string
	Name       *string
	ImageURL   *string
	Active     *bool
}

type CreateServiceInput struct {
	ProviderID      string
	CategoryID      string
	SubCategoryID   string
	Name            string
	Description     string
	Price           float64
	DurationMinutes int64
	ImageURL        string
	Active          *bool
}

type UpdateServiceInput struct {
	CategoryID      *string
	SubCategoryID   *string
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int64
	ImageURL        *string
	Active          *bool
}

// ListServicesInput narrows the service listing. Archived rows are excluded
// unless IncludeArchived is set.
type ListServicesInput struct {
	ProviderID      string
	IncludeArchived bool
}

// ServiceDeleteResult reports whether the delete was redirected into an
// archive because bookings still reference the service.
type ServiceDeleteResult struct {
	Archived bool
}

// CatalogService covers the categories, subcategories, and services screens.
type CatalogService interface {
	// ListCategories returns all categories with their in-memory
	// subcategory counts attached.
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, in UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// ListSubCategories returns subcategories (optionally for one parent)
	// with the parent display name denormalized onto each record.
	ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error)
	CreateSubCategory(ctx context.Context, in CreateSubCategoryInput) (*domain.SubCategory, error)
	// CreateSubCategoryBatch inserts all inputs or none: a failing insert
	// rolls back the ones that already landed and surfaces the first error.
	CreateSubCategoryBatch(ctx context.Context, in []CreateSubCategoryInput) ([]domain.SubCategory, error)
	UpdateSubCategory(ctx context.Context, id string, in UpdateSubCategoryInput) (*domain.SubCategory, error)
	DeleteSubCategory(ctx context.Context, id string) error

	ListServices(ctx context.Context, in ListServicesInput) ([]domain.Service, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
	CreateService(ctx context.Context, in CreateServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, in UpdateServiceInput) (*domain.Service, error)
	// DeleteService hard-deletes when nothing references the service;
	// with dependent bookings it archives instead. Same success signal
	// either way.
	DeleteService(ctx context.Context, id string) (*ServiceDeleteResult, error)
}
