package ports

import (
	"context"

	"github.com/kena741/lolelink-admin/internal/core/domain"
)

type UpdateProviderInput struct {
	Name     *string
	Phone    *string
	ImageURL *string
	Active   *bool
}

type CreateHandymanInput struct {
	ProviderID string
	Name       string
	Phone      string
	Skill      string
	Active     *bool
}

type UpdateHandymanInput struct {
	Name   *string
	Phone  *string
	Skill  *string
	Active *bool
}

// DocumentGroup is one provider's documents, key fields taken from the
// first document seen for that provider.
type DocumentGroup struct {
	ProviderID    string
	ProviderName  string
	ProviderEmail string
	Documents     []domain.Document
}

// ProviderService covers providers, their handymen, verification documents,
// and payout withdrawals.
type ProviderService interface {
	ListProviders(ctx context.Context) ([]domain.Provider, error)
	GetProvider(ctx context.Context, id string) (*domain.Provider, error)
	UpdateProvider(ctx context.Context, id string, in UpdateProviderInput) (*domain.Provider, error)
	DeleteProvider(ctx context.Context, id string) error
	// ListProviderBookings filters the in-memory bookings snapshot by
	// provider id.
	ListProviderBookings(ctx context.Context, providerID string) ([]domain.Booking, error)

	// ListHandymen returns all handymen, or one provider's when
	// providerID is non-empty.
	ListHandymen(ctx context.Context, providerID string) ([]domain.Handyman, error)
	CreateHandyman(ctx context.Context, in CreateHandymanInput) (*domain.Handyman, error)
	UpdateHandyman(ctx context.Context, id string, in UpdateHandymanInput) (*domain.Handyman, error)
	DeleteHandyman(ctx context.Context, id string) error

	ListDocuments(ctx context.Context, providerID string) ([]domain.Document, error)
	// GroupDocumentsByProvider buckets the full document collection by
	// provider, preserving first-seen group order.
	GroupDocumentsByProvider(ctx context.Context) ([]DocumentGroup, error)
	UpdateDocumentStatus(ctx context.Context, id string, status domain.DocumentStatus) (*domain.Document, error)

	// ListWithdrawals merges provider display names into the payout rows
	// in memory; the row store cannot join the two tables.
	ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
	UpdateWithdrawalStatus(ctx context.Context, id string, status domain.WithdrawalStatus) (*domain.Withdrawal, error)
}
