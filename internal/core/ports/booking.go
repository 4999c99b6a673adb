package ports

import (
	"context"

	"github.com/kena741/lolelink-admin/internal/core/domain"
)

// ListBookingsInput narrows the bookings listing.
type ListBookingsInput struct {
	Status     string
	ProviderID string
}

// BookingService covers the bookings screen. The console never creates
// bookings; it reads them and moves their status.
type BookingService interface {
	ListBookings(ctx context.Context, in ListBookingsInput) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	// UpdateBookingStatus validates the transition before writing.
	UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
}
