package ports

import (
	"context"
	"time"

	"github.com/kena741/lolelink-admin/internal/core/domain"
)

type CreateCouponInput struct {
	Code         string
	DiscountType string
	Amount       float64
	MaxUses      int64
	ExpiresAt    time.Time
	Active       *bool
}

type UpdateCouponInput struct {
	Code         *string
	DiscountType *string
	Amount       *float64
	MaxUses      *int64
	ExpiresAt    *time.Time
	Active       *bool
}

type CreateTaxInput struct {
	Name   string
	Type   string
	Rate   float64
	Active *bool
}

type UpdateTaxInput struct {
	Name   *string
	Type   *string
	Rate   *float64
	Active *bool
}

// BillingService covers the coupons and taxes screens.
type BillingService interface {
	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
	CreateCoupon(ctx context.Context, in CreateCouponInput) (*domain.Coupon, error)
	UpdateCoupon(ctx context.Context, id string, in UpdateCouponInput) (*domain.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error

	ListTaxes(ctx context.Context) ([]domain.Tax, error)
	CreateTax(ctx context.Context, in CreateTaxInput) (*domain.Tax, error)
	UpdateTax(ctx context.Context, id string, in UpdateTaxInput) (*domain.Tax, error)
	DeleteTax(ctx context.Context, id string) error
}
