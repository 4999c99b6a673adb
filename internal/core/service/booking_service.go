package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kena741/lolelink-admin/internal/core/collection"
	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// BookingService implements the bookings screen: read-only listings plus
// status moves validated against the booking state machine.
type BookingService struct {
	bookings *collection.Store[domain.Booking]
	logger   zerolog.Logger
}

func NewBookingService(bookingRows ports.RowStore, obs collection.Observer, logger zerolog.Logger) *BookingService {
	return &BookingService{
		bookings: collection.New("bookings",
			collection.RowSource[domain.Booking]{Rows: bookingRows, Normalize: domain.BookingFromRow},
			func(b domain.Booking) any { return b.ID },
			collection.WithObserver[domain.Booking](obs)),
		logger: logger,
	}
}

func (s *BookingService) ListBookings(ctx context.Context, in ports.ListBookingsInput) ([]domain.Booking, error) {
	f := ports.Filter{OrderBy: "created_at", Desc: true}
	eq := map[string]any{}
	if in.Status != "" {
		eq["status"] = in.Status
	}
	if in.ProviderID != "" {
		eq["provider_id"] = in.ProviderID
	}
	if len(eq) > 0 {
		f.Eq = eq
	}
	return s.bookings.FetchAll(ctx, f)
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.FetchOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BookingService) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	current, err := s.bookings.FetchOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, current.Status, status)
	}

	updated, err := s.bookings.Update(ctx, id, domain.Row{"status": string(status)})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("booking_id", id).Str("status", string(status)).Msg("booking status updated")
	return &updated, nil
}
