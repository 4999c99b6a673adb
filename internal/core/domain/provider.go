package domain

import "time"

// Provider is a business account offering services on the marketplace.
type Provider struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Rating    float64   `json:"rating"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Handyman is a worker attached to a provider account.
type Handyman struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Skill      *string   `json:"skill,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// DocumentStatus is the verification state of an uploaded provider document.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// Document is a verification file uploaded by a provider. ProviderName and
// ProviderEmail are display companions carried on the row by the uploader;
// ProviderID stays the source of truth for joins.
type Document struct {
	ID            string         `json:"id"`
	ProviderID    string         `json:"provider_id"`
	ProviderName  string         `json:"provider_name,omitempty"`
	ProviderEmail string         `json:"provider_email,omitempty"`
	Type          string         `json:"type"`
	FileURL       string         `json:"file_url"`
	Status        DocumentStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}

func ProviderFromRow(r Row) Provider {
	return Provider{
		ID:        idField(r),
		Name:      stringField(r, "name", "provider_name", "providerName", "business_name"),
		Email:     stringField(r, "email"),
		Phone:     stringField(r, "phone", "phone_number", "phoneNumber"),
		ImageURL:  stringPtrField(r, "image_url", "imageUrl", "image", "logo"),
		Rating:    floatField(r, "rating", "avg_rating"),
		Active:    boolField(r, true, "active", "is_active", "isActive"),
		CreatedAt: timeField(r, "created_at", "createdAt"),
	}
}

func HandymanFromRow(r Row) Handyman {
	return Handyman{
		ID:         idField(r),
		ProviderID: stringField(r, "provider_id", "providerId"),
		Name:       stringField(r, "name", "handyman_name", "handymanName"),
		Phone:      stringField(r, "phone", "phone_number", "phoneNumber"),
		Skill:      stringPtrField(r, "skill", "speciality"),
		Active:     boolField(r, true, "active", "is_active", "isActive"),
		CreatedAt:  timeField(r, "created_at", "createdAt"),
	}
}

func DocumentFromRow(r Row) Document {
	status := DocumentStatus(stringField(r, "status", "verification_status"))
	if status == "" {
		status = DocumentPending
	}
	return Document{
		ID:            idField(r),
		ProviderID:    stringField(r, "provider_id", "providerId"),
		ProviderName:  stringField(r, "provider_name", "providerName"),
		ProviderEmail: stringField(r, "provider_email", "providerEmail"),
		Type:          stringField(r, "type", "document_type", "documentType"),
		FileURL:       stringField(r, "file_url", "fileUrl", "url"),
		Status:        status,
		CreatedAt:     timeField(r, "created_at", "createdAt"),
	}
}
