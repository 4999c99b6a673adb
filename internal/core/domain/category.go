package domain

import "time"

// Category is a top-level service category shown on the console's catalog
// screen. SubCategoryCount is derived in memory from the subcategory
// collection, never stored.
type Category struct {
	ID               string    `json:"id"`
	CategoryName     string    `json:"category_name"`
	ImageURL         *string   `json:"image_url,omitempty"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	SubCategoryCount int       `json:"sub_category_count,omitempty"`
}

// SubCategory belongs to exactly one Category. CategoryID stays the source
// of truth for joins; CategoryName is a display companion attached at fetch
// time and may be empty when the parent is unknown.
type SubCategory struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Name         string    `json:"name"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategoryFromRow maps one raw category row to its canonical form.
func CategoryFromRow(r Row) Category {
	return Category{
		ID:           idField(r),
		CategoryName: stringField(r, "category_name", "categoryName", "name"),
		ImageURL:     stringPtrField(r, "image_url", "imageUrl", "image"),
		Active:       boolField(r, true, "active", "is_active", "isActive"),
		CreatedAt:    timeField(r, "created_at", "createdAt"),
	}
}

func SubCategoryFromRow(r Row) SubCategory {
	return SubCategory{
		ID:         idField(r),
		CategoryID: stringField(r, "category_id", "categoryId", "parent_id"),
		Name:       stringField(r, "name", "sub_category_name", "subCategoryName"),
		ImageURL:   stringPtrField(r, "image_url", "imageUrl", "image"),
		Active:     boolField(r, true, "active", "is_active", "isActive"),
		CreatedAt:  timeField(r, "created_at", "createdAt"),
	}
}
