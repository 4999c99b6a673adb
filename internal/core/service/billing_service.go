package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kena741/lolelink-admin/internal/core/collection"
	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// BillingService implements the coupons and taxes screens.
type BillingService struct {
	coupons *collection.Store[domain.Coupon]
	taxes   *collection.Store[domain.Tax]
	logger  zerolog.Logger
}

func NewBillingService(couponRows, taxRows ports.RowStore, obs collection.Observer, logger zerolog.Logger) *BillingService {
	return &BillingService{
		coupons: collection.New("coupons",
			collection.RowSource[domain.Coupon]{Rows: couponRows, Normalize: domain.CouponFromRow},
			func(c domain.Coupon) any { return c.ID },
			collection.WithObserver[domain.Coupon](obs)),
		taxes: collection.New("taxes",
			collection.RowSource[domain.Tax]{Rows: taxRows, Normalize: domain.TaxFromRow},
			func(t domain.Tax) any { return t.ID },
			collection.WithObserver[domain.Tax](obs)),
		logger: logger,
	}
}

// --- Coupons ---

func (s *BillingService) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	return s.coupons.FetchAll(ctx, ports.Filter{OrderBy: "created_at", Desc: true})
}

func (s *BillingService) CreateCoupon(ctx context.Context, in ports.CreateCouponInput) (*domain.Coupon, error) {
	fields := domain.Row{
		"code":          strings.ToUpper(in.Code),
		"discount_type": in.DiscountType,
		"amount":        in.Amount,
		"active":        true,
	}
	if in.MaxUses > 0 {
		fields["max_uses"] = in.MaxUses
	}
	if !in.ExpiresAt.IsZero() {
		fields["expires_at"] = in.ExpiresAt.UTC()
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	created, err := s.coupons.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("coupon_id", created.ID).Str("code", created.Code).Msg("coupon created")
	return &created, nil
}

func (s *BillingService) UpdateCoupon(ctx context.Context, id string, in ports.UpdateCouponInput) (*domain.Coupon, error) {
	fields := domain.Row{}
	if in.Code != nil {
		fields["code"] = strings.ToUpper(*in.Code)
	}
	if in.DiscountType != nil {
		fields["discount_type"] = *in.DiscountType
	}
	if in.Amount != nil {
		fields["amount"] = *in.Amount
	}
	if in.MaxUses != nil {
		fields["max_uses"] = *in.MaxUses
	}
	if in.ExpiresAt != nil {
		fields["expires_at"] = in.ExpiresAt.UTC()
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	updated, err := s.coupons.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *BillingService) DeleteCoupon(ctx context.Context, id string) error {
	return s.coupons.Delete(ctx, id)
}

// --- Taxes ---

func (s *BillingService) ListTaxes(ctx context.Context) ([]domain.Tax, error) {
	return s.taxes.FetchAll(ctx, ports.Filter{OrderBy: "name"})
}

func (s *BillingService) CreateTax(ctx context.Context, in ports.CreateTaxInput) (*domain.Tax, error) {
	taxType := in.Type
	if taxType == "" {
		taxType = domain.DiscountPercentage
	}
	// New taxes stay off until an operator enables them.
	fields := domain.Row{"name": in.Name, "type": taxType, "rate": in.Rate, "active": false}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	created, err := s.taxes.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("tax_id", created.ID).Str("name", created.Name).Msg("tax created")
	return &created, nil
}

func (s *BillingService) UpdateTax(ctx context.Context, id string, in ports.UpdateTaxInput) (*domain.Tax, error) {
	fields := domain.Row{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Type != nil {
		fields["type"] = *in.Type
	}
	if in.Rate != nil {
		fields["rate"] = *in.Rate
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	updated, err := s.taxes.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *BillingService) DeleteTax(ctx context.Context, id string) error {
	return s.taxes.Delete(ctx, id)
}
