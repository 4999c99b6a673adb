package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFromRow_SnakeAndCamelAliases(t *testing.T) {
	now := time.Now().UTC()

	snake := CategoryFromRow(Row{
		"id": "cat-1", "category_name": "Cleaning", "image_url": "a.png",
		"active": true, "created_at": now,
	})
	camel := CategoryFromRow(Row{
		"id": "cat-1", "categoryName": "Cleaning", "imageUrl": "a.png",
		"isActive": true, "createdAt": now,
	})
	assert.Equal(t, snake, camel, "both naming conventions map to the same record")
	assert.Equal(t, "cat-1", snake.ID)
	require.NotNil(t, snake.ImageURL)
	assert.Equal(t, "a.png", *snake.ImageURL)
	assert.True(t, snake.Active)
	assert.Equal(t, now, snake.CreatedAt)
}

func TestCategoryFromRow_OptionalNilIffAbsent(t *testing.T) {
	withImage := CategoryFromRow(Row{"id": "c1", "category_name": "Cleaning", "image_url": "a.png"})
	withoutImage := CategoryFromRow(Row{"id": "c2", "category_name": "Plumbing"})
	assert.NotNil(t, withImage.ImageURL)
	assert.Nil(t, withoutImage.ImageURL)
}

func TestCategoryFromRow_ActiveDefaultsTrue(t *testing.T) {
	absent := CategoryFromRow(Row{"id": "c1", "category_name": "Cleaning"})
	assert.True(t, absent.Active)

	explicit := CategoryFromRow(Row{"id": "c2", "category_name": "Cleaning", "active": false})
	assert.False(t, explicit.Active)
}

func TestCategoryFromRow_UnexpectedShapesDegradeGracefully(t *testing.T) {
	got := CategoryFromRow(Row{
		"id":            "c1",
		"category_name": 42,              // wrong type: field omitted
		"image_url":     []string{"a"},   // wrong type: stays nil
		"active":        "yes",           // wrong type: default applies
		"created_at":    "not-a-time",    // wrong type: zero time
		"mystery":       map[string]any{}, // unrecognized: ignored
	})
	assert.Equal(t, "c1", got.ID)
	assert.Empty(t, got.CategoryName)
	assert.Nil(t, got.ImageURL)
	assert.True(t, got.Active)
	assert.True(t, got.CreatedAt.IsZero())
}

func TestNormalizeRows_NilYieldsEmpty(t *testing.T) {
	got := NormalizeRows(nil, CategoryFromRow)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormalizeRows_SkipsNilRowsPreservesOrder(t *testing.T) {
	rows := []Row{
		{"id": "c1", "category_name": "Cleaning"},
		nil,
		{"id": "c2", "category_name": "Plumbing"},
	}
	got := NormalizeRows(rows, CategoryFromRow)
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c2", got[1].ID)
}

func TestTaxFromRow_LegacyIsFixMapsToFixed(t *testing.T) {
	fixed := TaxFromRow(Row{"id": "t1", "name": "VAT", "isFix": true, "rate": 5.0})
	assert.Equal(t, DiscountFixed, fixed.Type)

	pct := TaxFromRow(Row{"id": "t2", "name": "GST", "rate": 18.0})
	assert.Equal(t, DiscountPercentage, pct.Type)

	explicit := TaxFromRow(Row{"id": "t3", "name": "Levy", "type": "fixed", "rate": 2.0})
	assert.Equal(t, DiscountFixed, explicit.Type)
}

func TestTaxFromRow_DefaultsInactive(t *testing.T) {
	got := TaxFromRow(Row{"id": "t1", "name": "VAT", "rate": 5.0})
	assert.False(t, got.Active, "a new tax never applies before an operator enables it")

	enabled := TaxFromRow(Row{"id": "t2", "name": "VAT", "rate": 5.0, "active": true})
	assert.True(t, enabled.Active)
}

func TestBookingFromRow_NumericIDAndCoercion(t *testing.T) {
	got := BookingFromRow(Row{
		"id": int32(9001), "service_id": "svc-1", "provider_id": "prov-1",
		"customer_name": "Dana", "total_amount": int64(150), "status": "confirmed",
	})
	assert.Equal(t, int64(9001), got.ID)
	assert.Equal(t, 150.0, got.TotalAmount)
	assert.Equal(t, BookingConfirmed, got.Status)

	blank := BookingFromRow(Row{"id": int64(1)})
	assert.Equal(t, BookingPending, blank.Status, "missing status reads as pending")
}

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, BookingPending.CanTransitionTo(BookingConfirmed))
	assert.True(t, BookingPending.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCompleted))
	assert.False(t, BookingCompleted.CanTransitionTo(BookingPending))
	assert.False(t, BookingCancelled.CanTransitionTo(BookingConfirmed))
	assert.False(t, BookingPending.CanTransitionTo(BookingCompleted))
}

func TestServiceFromRow_ArchivedDefaultsFalse(t *testing.T) {
	got := ServiceFromRow(Row{"id": "s1", "name": "Sofa Cleaning", "price": 49.5})
	assert.False(t, got.Archived)
	assert.True(t, got.Active)
	assert.Equal(t, 49.5, got.Price)

	archived := ServiceFromRow(Row{"id": "s2", "name": "Old", "archived": true})
	assert.True(t, archived.Archived)
}

func TestWithdrawalFromRow_CompanionsLeftForJoin(t *testing.T) {
	got := WithdrawalFromRow(Row{"id": "w1", "provider_id": "p1", "amount": 200.0})
	assert.Equal(t, "p1", got.ProviderID)
	assert.Empty(t, got.ProviderName, "display name arrives via the in-memory merge, not the row")
	assert.Equal(t, WithdrawalPending, got.Status)
}
