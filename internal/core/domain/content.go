package domain

import "time"

// Banner is a promotional image slot on the customer app's home screen.
type Banner struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	LinkURL   *string   `json:"link_url,omitempty"`
	Position  int64     `json:"position"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentSetting is the platform-wide payment configuration. There is one
// logical row; the console reads the newest row and writes it back as an
// upsert.
type PaymentSetting struct {
	ID             string    `json:"id"`
	CommissionRate float64   `json:"commission_rate"`
	Currency       string    `json:"currency"`
	Gateway        string    `json:"gateway"`
	GatewayKey     string    `json:"gateway_key,omitempty"`
	TaxEnabled     bool      `json:"tax_enabled"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// WithdrawalStatus is the payout request state.
type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalPaid     WithdrawalStatus = "paid"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

// Withdrawal is a provider payout request. The row store cannot join this
// table with providers, so ProviderName/ProviderEmail are merged in memory
// from a second fetch keyed by ProviderID.
type Withdrawal struct {
	ID            string           `json:"id"`
	ProviderID    string           `json:"provider_id"`
	ProviderName  string           `json:"provider_name,omitempty"`
	ProviderEmail string           `json:"provider_email,omitempty"`
	Amount        float64          `json:"amount"`
	Status        WithdrawalStatus `json:"status"`
	RequestedAt   time.Time        `json:"requested_at"`
}

func BannerFromRow(r Row) Banner {
	return Banner{
		ID:        idField(r),
		Title:     stringField(r, "title", "name"),
		ImageURL:  stringField(r, "image_url", "imageUrl", "image"),
		LinkURL:   stringPtrField(r, "link_url", "linkUrl", "link"),
		Position:  intField(r, "position", "sort_order", "sortOrder"),
		Active:    boolField(r, true, "active", "is_active", "isActive"),
		CreatedAt: timeField(r, "created_at", "createdAt"),
	}
}

func PaymentSettingFromRow(r Row) PaymentSetting {
	currency := stringField(r, "currency")
	if currency == "" {
		currency = "USD"
	}
	return PaymentSetting{
		ID:             idField(r),
		CommissionRate: floatField(r, "commission_rate", "commissionRate", "commission"),
		Currency:       currency,
		Gateway:        stringField(r, "gateway", "payment_gateway", "paymentGateway"),
		GatewayKey:     stringField(r, "gateway_key", "gatewayKey", "api_key"),
		TaxEnabled:     boolField(r, true, "tax_enabled", "taxEnabled"),
		UpdatedAt:      timeField(r, "updated_at", "updatedAt"),
	}
}

func WithdrawalFromRow(r Row) Withdrawal {
	status := WithdrawalStatus(stringField(r, "status"))
	if status == "" {
		status = WithdrawalPending
	}
	return Withdrawal{
		ID:          idField(r),
		ProviderID:  stringField(r, "provider_id", "providerId"),
		Amount:      floatField(r, "amount", "value"),
		Status:      status,
		RequestedAt: timeField(r, "requested_at", "requestedAt", "created_at", "createdAt"),
	}
}
