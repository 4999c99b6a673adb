package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Role     string `json:"role" validate:"required,oneof=admin staff"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Catalog ---

type createCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required"`
	ImageURL     string `json:"image_url,omitempty"`
	Active       *bool  `json:"active,omitempty"`
}

type updateCategoryRequest struct {
	CategoryName *string `json:"category_name,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

type createSubCategoryRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	ImageURL   string `json:"image_url,omitempty"`
	Active     *bool  `json:"active,omitempty"`
}

type createSubCategoryBatchRequest struct {
	SubCategories []createSubCategoryRequest `json:"subcategories" validate:"required,min=1,dive"`
}

type updateSubCategoryRequest struct {
	CategoryID *string `json:"category_id,omitempty"`
	Name       *string `json:"name,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

type createServiceRequest struct {
	ProviderID      string  `json:"provider_id" validate:"required"`
	CategoryID      string  `json:"category_id" validate:"required"`
	SubCategoryID   string  `json:"sub_category_id,omitempty"`
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	DurationMinutes int64   `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
	ImageURL        string  `json:"image_url,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

type updateServiceRequest struct {
	CategoryID      *string  `json:"category_id,omitempty"`
	SubCategoryID   *string  `json:"sub_category_id,omitempty"`
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	DurationMinutes *int64   `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
	ImageURL        *string  `json:"image_url,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

// deleteServiceResponse tells the console whether the record was removed or
// only archived because bookings still reference it.
type deleteServiceResponse struct {
	Archived bool `json:"archived"`
}

// --- Bookings ---

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// --- Providers ---

type updateProviderRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

type createHandymanRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone,omitempty"`
	Skill      string `json:"skill,omitempty"`
	Active     *bool  `json:"active,omitempty"`
}

type updateHandymanRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Skill  *string `json:"skill,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type updateDocumentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

type updateWithdrawalStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid rejected"`
}

// --- Billing ---

type createCouponRequest struct {
	Code         string    `json:"code" validate:"required"`
	DiscountType string    `json:"discount_type" validate:"required,oneof=fixed percentage"`
	Amount       float64   `json:"amount" validate:"required,gt=0"`
	MaxUses      int64     `json:"max_uses,omitempty" validate:"omitempty,gt=0"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	Active       *bool     `json:"active,omitempty"`
}

type updateCouponRequest struct {
	Code         *string    `json:"code,omitempty"`
	DiscountType *string    `json:"discount_type,omitempty" validate:"omitempty,oneof=fixed percentage"`
	Amount       *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	MaxUses      *int64     `json:"max_uses,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Active       *bool      `json:"active,omitempty"`
}

type createTaxRequest struct {
	Name   string  `json:"name" validate:"required"`
	Type   string  `json:"type,omitempty" validate:"omitempty,oneof=fixed percentage"`
	Rate   float64 `json:"rate" validate:"required,gt=0"`
	Active *bool   `json:"active,omitempty"`
}

type updateTaxRequest struct {
	Name   *string  `json:"name,omitempty"`
	Type   *string  `json:"type,omitempty" validate:"omitempty,oneof=fixed percentage"`
	Rate   *float64 `json:"rate,omitempty" validate:"omitempty,gt=0"`
	Active *bool    `json:"active,omitempty"`
}

// --- Content ---

type createBannerRequest struct {
	Title    string `json:"title" validate:"required"`
	ImageURL string `json:"image_url" validate:"required"`
	LinkURL  string `json:"link_url,omitempty"`
	Position int64  `json:"position,omitempty" validate:"omitempty,gte=0"`
	Active   *bool  `json:"active,omitempty"`
}

type updateBannerRequest struct {
	Title    *string `json:"title,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	LinkURL  *string `json:"link_url,omitempty"`
	Position *int64  `json:"position,omitempty" validate:"omitempty,gte=0"`
	Active   *bool   `json:"active,omitempty"`
}

type savePaymentSettingRequest struct {
	CommissionRate float64 `json:"commission_rate" validate:"required,gte=0,lte=100"`
	Currency       string  `json:"currency" validate:"required,len=3"`
	Gateway        string  `json:"gateway" validate:"required"`
	GatewayKey     string  `json:"gateway_key,omitempty"`
	TaxEnabled     bool    `json:"tax_enabled"`
}
