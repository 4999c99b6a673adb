package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

type stubBookingService struct {
	listFn   func(ctx context.Context, in ports.ListBookingsInput) ([]domain.Booking, error)
	getFn    func(ctx context.Context, id int64) (*domain.Booking, error)
	updateFn func(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
}

func (s *stubBookingService) ListBookings(ctx context.Context, in ports.ListBookingsInput) ([]domain.Booking, error) {
	return s.listFn(ctx, in)
}

func (s *stubBookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.getFn(ctx, id)
}

func (s *stubBookingService) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	return s.updateFn(ctx, id, status)
}

func TestBookingHandler_List_PassesFilters(t *testing.T) {
	e := newEcho()
	var got ports.ListBookingsInput
	svc := &stubBookingService{
		listFn: func(_ context.Context, in ports.ListBookingsInput) ([]domain.Booking, error) {
			got = in
			return []domain.Booking{{ID: 1, Status: domain.BookingPending}}, nil
		},
	}
	h := NewBookingHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings?status=pending&provider_id=p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Status != "pending" || got.ProviderID != "p1" {
		t.Errorf("query filters not forwarded: %+v", got)
	}
}

func TestBookingHandler_UpdateStatus(t *testing.T) {
	e := newEcho()
	svc := &stubBookingService{
		updateFn: func(_ context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
			return &domain.Booking{ID: id, Status: status}, nil
		},
	}
	h := NewBookingHandler(svc)

	body := `{"status":"confirmed"}`
	req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/42/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"confirmed"`) {
		t.Errorf("response missing new status: %s", rec.Body.String())
	}
}

func TestBookingHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	e := newEcho()
	h := NewBookingHandler(&stubBookingService{})

	body := `{"status":"teleported"}`
	req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/42/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.UpdateStatus(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected an HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}

func TestBookingHandler_NonNumericID(t *testing.T) {
	e := newEcho()
	h := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected an HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}
