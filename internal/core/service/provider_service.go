package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kena741/lolelink-admin/internal/core/collection"
	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// ProviderService implements the providers screen and its satellites:
// handymen, verification documents, and payout withdrawals.
type ProviderService struct {
	providers   *collection.Store[domain.Provider]
	handymen    *collection.Store[domain.Handyman]
	documents   *collection.Store[domain.Document]
	withdrawals *collection.Store[domain.Withdrawal]
	bookings    *collection.Store[domain.Booking]
	logger      zerolog.Logger
}

func NewProviderService(
	providerRows, handymanRows, documentRows, withdrawalRows, bookingRows ports.RowStore,
	obs collection.Observer,
	logger zerolog.Logger,
) *ProviderService {
	return &ProviderService{
		providers: collection.New("providers",
			collection.RowSource[domain.Provider]{Rows: providerRows, Normalize: domain.ProviderFromRow},
			func(p domain.Provider) any { return p.ID },
			collection.WithObserver[domain.Provider](obs)),
		handymen: collection.New("handymen",
			collection.RowSource[domain.Handyman]{Rows: handymanRows, Normalize: domain.HandymanFromRow},
			func(h domain.Handyman) any { return h.ID },
			collection.WithObserver[domain.Handyman](obs)),
		documents: collection.New("documents",
			collection.RowSource[domain.Document]{Rows: documentRows, Normalize: domain.DocumentFromRow},
			func(d domain.Document) any { return d.ID },
			collection.WithObserver[domain.Document](obs)),
		withdrawals: collection.New("withdrawals",
			collection.RowSource[domain.Withdrawal]{Rows: withdrawalRows, Normalize: domain.WithdrawalFromRow},
			func(w domain.Withdrawal) any { return w.ID },
			collection.WithObserver[domain.Withdrawal](obs)),
		bookings: collection.New("bookings",
			collection.RowSource[domain.Booking]{Rows: bookingRows, Normalize: domain.BookingFromRow},
			func(b domain.Booking) any { return b.ID },
			collection.WithObserver[domain.Booking](obs)),
		logger: logger,
	}
}

// --- Providers ---

func (s *ProviderService) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	return s.providers.FetchAll(ctx, ports.Filter{OrderBy: "created_at", Desc: true})
}

func (s *ProviderService) GetProvider(ctx context.Context, id string) (*domain.Provider, error) {
	p, err := s.providers.FetchOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProviderService) UpdateProvider(ctx context.Context, id string, in ports.UpdateProviderInput) (*domain.Provider, error) {
	fields := domain.Row{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	updated, err := s.providers.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ProviderService) DeleteProvider(ctx context.Context, id string) error {
	return s.providers.Delete(ctx, id)
}

// ListProviderBookings filters the full in-memory bookings snapshot by
// provider id rather than issuing a narrowed backend query.
func (s *ProviderService) ListProviderBookings(ctx context.Context, providerID string) ([]domain.Booking, error) {
	all, err := s.bookings.FetchAll(ctx, ports.Filter{OrderBy: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	return collection.FilterByKey(all, func(b domain.Booking) string { return b.ProviderID }, providerID), nil
}

// --- Handymen ---

func (s *ProviderService) ListHandymen(ctx context.Context, providerID string) ([]domain.Handyman, error) {
	all, err := s.handymen.FetchAll(ctx, ports.Filter{OrderBy: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	if providerID == "" {
		return all, nil
	}
	return collection.FilterByKey(all, func(h domain.Handyman) string { return h.ProviderID }, providerID), nil
}

func (s *ProviderService) CreateHandyman(ctx context.Context, in ports.CreateHandymanInput) (*domain.Handyman, error) {
	fields := domain.Row{"provider_id": in.ProviderID, "name": in.Name, "active": true}
	if in.Phone != "" {
		fields["phone"] = in.Phone
	}
	if in.Skill != "" {
		fields["skill"] = in.Skill
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	created, err := s.handymen.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("handyman_id", created.ID).Str("provider_id", created.ProviderID).Msg("handyman created")
	return &created, nil
}

func (s *ProviderService) UpdateHandyman(ctx context.Context, id string, in ports.UpdateHandymanInput) (*domain.Handyman, error) {
	fields := domain.Row{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Skill != nil {
		fields["skill"] = *in.Skill
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	updated, err := s.handymen.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ProviderService) DeleteHandyman(ctx context.Context, id string) error {
	return s.handymen.Delete(ctx, id)
}

// --- Documents ---

func (s *ProviderService) ListDocuments(ctx context.Context, providerID string) ([]domain.Document, error) {
	all, err := s.documents.FetchAll(ctx, ports.Filter{OrderBy: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	if providerID == "" {
		return all, nil
	}
	return collection.FilterByKey(all, func(d domain.Document) string { return d.ProviderID }, providerID), nil
}

// GroupDocumentsByProvider buckets the full document collection by provider
// in one pass. Display name and email come from the first document seen for
// each provider.
func (s *ProviderService) GroupDocumentsByProvider(ctx context.Context) ([]ports.DocumentGroup, error) {
	all, err := s.documents.FetchAll(ctx, ports.Filter{OrderBy: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	grouped := collection.GroupByKey(all, func(d domain.Document) string { return d.ProviderID })
	out := make([]ports.DocumentGroup, 0, len(grouped))
	for _, g := range grouped {
		first := g.Items[0]
		out = append(out, ports.DocumentGroup{
			ProviderID:    g.Key,
			ProviderName:  first.ProviderName,
			ProviderEmail: first.ProviderEmail,
			Documents:     g.Items,
		})
	}
	return out, nil
}

func (s *ProviderService) UpdateDocumentStatus(ctx context.Context, id string, status domain.DocumentStatus) (*domain.Document, error) {
	updated, err := s.documents.Update(ctx, id, domain.Row{"status": string(status)})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("document_id", id).Str("status", string(status)).Msg("document verification updated")
	return &updated, nil
}

// --- Withdrawals ---

// ListWithdrawals fetches payout rows and provider rows separately and
// merges display names by provider id in memory; the row store cannot join
// the two tables.
func (s *ProviderService) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawals.FetchAll(ctx, ports.Filter{OrderBy: "requested_at", Desc: true})
	if err != nil {
		return nil, err
	}
	if len(withdrawals) == 0 {
		return withdrawals, nil
	}

	seen := make(map[string]struct{}, len(withdrawals))
	ids := make([]any, 0, len(withdrawals))
	for _, w := range withdrawals {
		if _, ok := seen[w.ProviderID]; ok || w.ProviderID == "" {
			continue
		}
		seen[w.ProviderID] = struct{}{}
		ids = append(ids, w.ProviderID)
	}

	providers, err := s.providers.FetchAll(ctx, ports.Filter{In: map[string][]any{"id": ids}})
	if err != nil {
		// Names are cosmetic: surface the rows without them.
		s.logger.Warn().Err(err).Msg("provider fetch for withdrawal join failed")
		return withdrawals, nil
	}

	byID := make(map[string]domain.Provider, len(providers))
	for _, p := range providers {
		byID[p.ID] = p
	}
	for i := range withdrawals {
		if p, ok := byID[withdrawals[i].ProviderID]; ok {
			withdrawals[i].ProviderName = p.Name
			withdrawals[i].ProviderEmail = p.Email
		}
	}
	return withdrawals, nil
}

func (s *ProviderService) UpdateWithdrawalStatus(ctx context.Context, id string, status domain.WithdrawalStatus) (*domain.Withdrawal, error) {
	updated, err := s.withdrawals.Update(ctx, id, domain.Row{"status": string(status)})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("withdrawal_id", id).Str("status", string(status)).Msg("withdrawal status updated")
	return &updated, nil
}
