package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kena741/lolelink-admin/internal/core/collection"
	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// ContentService implements the banners and payment-settings screens.
type ContentService struct {
	banners  *collection.Store[domain.Banner]
	settings *collection.Store[domain.PaymentSetting]
	logger   zerolog.Logger
}

func NewContentService(bannerRows, settingRows ports.RowStore, obs collection.Observer, logger zerolog.Logger) *ContentService {
	return &ContentService{
		banners: collection.New("banners",
			collection.RowSource[domain.Banner]{Rows: bannerRows, Normalize: domain.BannerFromRow},
			func(b domain.Banner) any { return b.ID },
			collection.WithObserver[domain.Banner](obs)),
		settings: collection.New("payment_settings",
			collection.RowSource[domain.PaymentSetting]{Rows: settingRows, Normalize: domain.PaymentSettingFromRow},
			func(p domain.PaymentSetting) any { return p.ID },
			collection.WithObserver[domain.PaymentSetting](obs)),
		logger: logger,
	}
}

// --- Banners ---

func (s *ContentService) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	return s.banners.FetchAll(ctx, ports.Filter{OrderBy: "position"})
}

func (s *ContentService) CreateBanner(ctx context.Context, in ports.CreateBannerInput) (*domain.Banner, error) {
	fields := domain.Row{"title": in.Title, "image_url": in.ImageURL, "active": true}
	if in.LinkURL != "" {
		fields["link_url"] = in.LinkURL
	}
	if in.Position > 0 {
		fields["position"] = in.Position
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	created, err := s.banners.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("banner_id", created.ID).Str("title", created.Title).Msg("banner created")
	return &created, nil
}

func (s *ContentService) UpdateBanner(ctx context.Context, id string, in ports.UpdateBannerInput) (*domain.Banner, error) {
	fields := domain.Row{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.LinkURL != nil {
		fields["link_url"] = *in.LinkURL
	}
	if in.Position != nil {
		fields["position"] = *in.Position
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	updated, err := s.banners.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ContentService) DeleteBanner(ctx context.Context, id string) error {
	return s.banners.Delete(ctx, id)
}

// --- Payment settings ---

// GetPaymentSetting reads the single configuration row. The table holds at
// most one row; the newest wins when legacy duplicates exist.
func (s *ContentService) GetPaymentSetting(ctx context.Context) (*domain.PaymentSetting, error) {
	all, err := s.settings.FetchAll(ctx, ports.Filter{OrderBy: "updated_at", Desc: true})
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, domain.ErrNotFound
	}
	return &all[0], nil
}

// SavePaymentSetting upserts the configuration row.
func (s *ContentService) SavePaymentSetting(ctx context.Context, in ports.SavePaymentSettingInput) (*domain.PaymentSetting, error) {
	fields := domain.Row{
		"commission_rate": in.CommissionRate,
		"currency":        in.Currency,
		"gateway":         in.Gateway,
		"tax_enabled":     in.TaxEnabled,
		"updated_at":      time.Now().UTC(),
	}
	if in.GatewayKey != "" {
		fields["gateway_key"] = in.GatewayKey
	}

	existing, err := s.GetPaymentSetting(ctx)
	if err != nil && err != domain.ErrNotFound {
		return nil, err
	}

	if existing != nil {
		updated, err := s.settings.Update(ctx, existing.ID, fields)
		if err != nil {
			return nil, err
		}
		s.logger.Info().Str("setting_id", updated.ID).Msg("payment settings updated")
		return &updated, nil
	}

	created, err := s.settings.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("setting_id", created.ID).Msg("payment settings created")
	return &created, nil
}
