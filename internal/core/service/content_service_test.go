package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

func TestContentService_CreateBanner_Defaults(t *testing.T) {
	svc := NewContentService(newStubRows(), newStubRows(), nil, discardLogger)

	created, err := svc.CreateBanner(context.Background(), ports.CreateBannerInput{
		Title:    "Spring Promo",
		ImageURL: "https://cdn.example.com/spring.png",
	})
	if err != nil {
		t.Fatalf("CreateBanner: %v", err)
	}
	if !created.Active {
		t.Error("banner should be active by default")
	}
	if created.LinkURL != nil {
		t.Errorf("link url should be absent, got %q", *created.LinkURL)
	}
	if created.ID == "" {
		t.Error("id should be assigned by the backend")
	}
}

func TestContentService_GetPaymentSetting_EmptyTable(t *testing.T) {
	svc := NewContentService(newStubRows(), newStubRows(), nil, discardLogger)

	_, err := svc.GetPaymentSetting(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentService_SavePaymentSetting_Upserts(t *testing.T) {
	settingRows := newStubRows()
	svc := NewContentService(newStubRows(), settingRows, nil, discardLogger)

	first, err := svc.SavePaymentSetting(context.Background(), ports.SavePaymentSettingInput{
		CommissionRate: 10,
		Currency:       "USD",
		Gateway:        "stripe",
		GatewayKey:     "sk_test_123",
		TaxEnabled:     true,
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if first.ID == "" {
		t.Fatal("first save should insert a row")
	}

	second, err := svc.SavePaymentSetting(context.Background(), ports.SavePaymentSettingInput{
		CommissionRate: 12.5,
		Currency:       "ETB",
		Gateway:        "telebirr",
		TaxEnabled:     false,
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second save must update the existing row, got new id %q", second.ID)
	}
	if second.CommissionRate != 12.5 || second.Currency != "ETB" {
		t.Errorf("updated fields not applied: %+v", second)
	}
	if settingRows.size() != 1 {
		t.Errorf("table should hold one row, has %d", settingRows.size())
	}
}

func TestContentService_SavePaymentSetting_KeepsKeyWhenOmitted(t *testing.T) {
	settingRows := newStubRows()
	svc := NewContentService(newStubRows(), settingRows, nil, discardLogger)

	_, err := svc.SavePaymentSetting(context.Background(), ports.SavePaymentSettingInput{
		Currency: "USD", Gateway: "stripe", GatewayKey: "sk_test_123",
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	// A save without a key must not blank the stored one.
	updated, err := svc.SavePaymentSetting(context.Background(), ports.SavePaymentSettingInput{
		Currency: "USD", Gateway: "stripe",
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if updated.GatewayKey != "sk_test_123" {
		t.Errorf("gateway key should survive an omitted-field save, got %q", updated.GatewayKey)
	}
}
