package domain

import "time"

// Service is a bookable marketplace offering published by a provider.
// Archived services are soft-deleted: they stay in the backing table because
// existing bookings reference them, but default fetches exclude them.
type Service struct {
	ID              string    `json:"id"`
	ProviderID      string    `json:"provider_id"`
	CategoryID      string    `json:"category_id"`
	SubCategoryID   string    `json:"sub_category_id,omitempty"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int64     `json:"duration_minutes"`
	ImageURL        *string   `json:"image_url,omitempty"`
	Active          bool      `json:"active"`
	Archived        bool      `json:"archived"`
	CreatedAt       time.Time `json:"created_at"`
}

func ServiceFromRow(r Row) Service {
	return Service{
		ID:              idField(r),
		ProviderID:      stringField(r, "provider_id", "providerId"),
		CategoryID:      stringField(r, "category_id", "categoryId"),
		SubCategoryID:   stringField(r, "sub_category_id", "subCategoryId"),
		Name:            stringField(r, "name", "service_name", "serviceName", "title"),
		Description:     stringPtrField(r, "description"),
		Price:           floatField(r, "price", "amount"),
		DurationMinutes: intField(r, "duration_minutes", "duration"),
		ImageURL:        stringPtrField(r, "image_url", "imageUrl", "image"),
		Active:          boolField(r, true, "active", "is_active", "isActive"),
		Archived:        boolField(r, false, "archived", "is_archived", "isArchived"),
		CreatedAt:       timeField(r, "created_at", "createdAt"),
	}
}
