package domain

import "time"

// BookingStatus is the lifecycle state of a customer booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

var validBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validBookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking rows are minted by the customer app with numeric ids; the console
// only reads them and moves their status.
type Booking struct {
	ID            int64         `json:"id"`
	ServiceID     string        `json:"service_id"`
	ProviderID    string        `json:"provider_id"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	Address       *string       `json:"address,omitempty"`
	Status        BookingStatus `json:"status"`
	BookingDate   time.Time     `json:"booking_date"`
	TotalAmount   float64       `json:"total_amount"`
	CreatedAt     time.Time     `json:"created_at"`
}

func BookingFromRow(r Row) Booking {
	status := BookingStatus(stringField(r, "status", "booking_status", "bookingStatus"))
	if status == "" {
		status = BookingPending
	}
	return Booking{
		ID:            intField(r, "id", "_id"),
		ServiceID:     stringField(r, "service_id", "serviceId"),
		ProviderID:    stringField(r, "provider_id", "providerId"),
		CustomerName:  stringField(r, "customer_name", "customerName", "name"),
		CustomerPhone: stringField(r, "customer_phone", "customerPhone", "phone"),
		Address:       stringPtrField(r, "address", "customer_address"),
		Status:        status,
		BookingDate:   timeField(r, "booking_date", "bookingDate", "date"),
		TotalAmount:   floatField(r, "total_amount", "totalAmount", "total", "price"),
		CreatedAt:     timeField(r, "created_at", "createdAt"),
	}
}
