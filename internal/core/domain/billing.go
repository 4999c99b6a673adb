package domain

import "time"

const (
	DiscountFixed      = "fixed"
	DiscountPercentage = "percentage"
)

// Coupon is a discount code managed from the console.
type Coupon struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	DiscountType string    `json:"discount_type"`
	Amount       float64   `json:"amount"`
	MaxUses      int64     `json:"max_uses"`
	ExpiresAt    time.Time `json:"expires_at"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Tax is a charge applied at checkout. Unlike every other entity, taxes
// default to inactive so a newly created rate never applies before an
// operator switches it on.
type Tax struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // fixed | percentage
	Rate      float64   `json:"rate"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func CouponFromRow(r Row) Coupon {
	dt := stringField(r, "discount_type", "discountType", "type")
	if dt == "" {
		dt = DiscountPercentage
	}
	return Coupon{
		ID:           idField(r),
		Code:         stringField(r, "code", "coupon_code", "couponCode"),
		DiscountType: dt,
		Amount:       floatField(r, "amount", "discount", "value"),
		MaxUses:      intField(r, "max_uses", "maxUses", "usage_limit"),
		ExpiresAt:    timeField(r, "expires_at", "expiresAt", "expiry_date", "expiryDate"),
		Active:       boolField(r, true, "active", "is_active", "isActive"),
		CreatedAt:    timeField(r, "created_at", "createdAt"),
	}
}

func TaxFromRow(r Row) Tax {
	t := Tax{
		ID:        idField(r),
		Name:      stringField(r, "name", "tax_name", "taxName", "title"),
		Type:      stringField(r, "type", "tax_type", "taxType"),
		Rate:      floatField(r, "rate", "value", "amount"),
		Active:    boolField(r, false, "active", "is_active", "isActive"),
		CreatedAt: timeField(r, "created_at", "createdAt"),
	}
	// Legacy rows carry an isFix flag instead of a type column.
	if t.Type == "" {
		if boolField(r, false, "is_fix", "isFix") {
			t.Type = DiscountFixed
		} else {
			t.Type = DiscountPercentage
		}
	}
	return t
}
