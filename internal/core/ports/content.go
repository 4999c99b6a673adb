package ports

import (
	"context"

	"github.com/kena741/lolelink-admin/internal/core/domain"
)

type CreateBannerInput struct {
	Title    string
	ImageURL string
	LinkURL  string
	Position int64
	Active   *bool
}

type UpdateBannerInput struct {
	Title    *string
	ImageURL *string
	LinkURL  *string
	Position *int64
	Active   *bool
}

// SavePaymentSettingInput replaces the platform payment configuration.
type SavePaymentSettingInput struct {
	CommissionRate float64
	Currency       string
	Gateway        string
	GatewayKey     string
	TaxEnabled     bool
}

// ContentService covers banners and the payment settings screen.
type ContentService interface {
	ListBanners(ctx context.Context) ([]domain.Banner, error)
	CreateBanner(ctx context.Context, in CreateBannerInput) (*domain.Banner, error)
	UpdateBanner(ctx context.Context, id string, in UpdateBannerInput) (*domain.Banner, error)
	DeleteBanner(ctx context.Context, id string) error

	// GetPaymentSetting reads the single configuration row, newest first
	// when legacy duplicates exist.
	GetPaymentSetting(ctx context.Context) (*domain.PaymentSetting, error)
	SavePaymentSetting(ctx context.Context, in SavePaymentSettingInput) (*domain.PaymentSetting, error)
}
