package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// OfferingInput is a service offering as submitted on specialist creation.
// New offerings never carry an identifier; the service generates one.
type OfferingInput struct {
	ServiceName   string     `json:"service_name"`
	ServiceType   *string    `json:"service_type,omitempty"`
	Description   *string    `json:"description,omitempty"`
	PlatformFeeID *uuid.UUID `json:"platform_fee_id,omitempty"`
}

func (o OfferingInput) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.ServiceName,
			validation.Required.Error("service name is required"),
			validation.Length(1, 255),
		),
	)
}

// OfferingPatch is a service offering as submitted on specialist update.
// An item with an id targets an existing offering; an item without one
// requests creation. Optional fields follow absent-means-keep semantics.
type OfferingPatch struct {
	ID            *uuid.UUID `json:"id,omitempty"`
	ServiceName   string     `json:"service_name"`
	ServiceType   *string    `json:"service_type,omitempty"`
	Description   *string    `json:"description,omitempty"`
	PlatformFeeID *uuid.UUID `json:"platform_fee_id,omitempty"`
}

func (o OfferingPatch) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.ServiceName,
			validation.Required.Error("service name is required"),
			validation.Length(1, 255),
		),
	)
}

// CreateSpecialistRequest carries the payload for POST /specialists.
// Status is deliberately not accepted: creation always yields a draft.
type CreateSpecialistRequest struct {
	Name             string          `json:"name"`
	Description      *string         `json:"description,omitempty"`
	ContactEmail     string          `json:"contact_email"`
	ContactPhone     *string         `json:"contact_phone,omitempty"`
	WebsiteURL       *string         `json:"website_url,omitempty"`
	LogoID           *uuid.UUID      `json:"logo_id,omitempty"`
	ServiceOfferings []OfferingInput `json:"service_offerings,omitempty"`
}

func (r CreateSpecialistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.ContactEmail,
			validation.Required.Error("contact email is required"),
			is.Email.Error("invalid email address"),
			validation.Length(1, 255),
		),
		validation.Field(&r.ContactPhone,
			validation.Length(0, 50),
		),
		// An explicit empty string is allowed; anything else must parse
		// as a URL.
		validation.Field(&r.WebsiteURL,
			validation.When(r.WebsiteURL != nil && *r.WebsiteURL != "",
				is.URL.Error("invalid url"),
				validation.Length(1, 500),
			),
		),
		validation.Field(&r.ServiceOfferings),
	)
}

// UpdateSpecialistRequest is a sparse patch: a nil field means "leave
// unchanged", a present field (including an explicit empty string) is
// applied. A nil ServiceOfferings leaves the collection untouched; a
// present one replaces it wholesale via reconciliation.
type UpdateSpecialistRequest struct {
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	ContactEmail *string    `json:"contact_email,omitempty"`
	ContactPhone *string    `json:"contact_phone,omitempty"`
	WebsiteURL   *string    `json:"website_url,omitempty"`
	LogoID       *uuid.UUID `json:"logo_id,omitempty"`

	// Status is accepted for wire compatibility but ignored here; status
	// changes go through the publish endpoint.
	Status *SpecialistStatus `json:"status,omitempty"`

	ServiceOfferings []OfferingPatch `json:"service_offerings,omitempty"`
}

func (r UpdateSpecialistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				validation.Required.Error("name cannot be empty"),
				validation.Length(1, 255),
			),
		),
		validation.Field(&r.ContactEmail,
			validation.When(r.ContactEmail != nil,
				is.Email.Error("invalid email address"),
			),
		),
		validation.Field(&r.ContactPhone,
			validation.Length(0, 50),
		),
		validation.Field(&r.WebsiteURL,
			validation.When(r.WebsiteURL != nil && *r.WebsiteURL != "",
				is.URL.Error("invalid url"),
				validation.Length(1, 500),
			),
		),
		validation.Field(&r.Status,
			validation.When(r.Status != nil,
				validation.By(validStatus),
			),
		),
		validation.Field(&r.ServiceOfferings),
	)
}

// PublishSpecialistRequest sets an explicit target status.
type PublishSpecialistRequest struct {
	Status SpecialistStatus `json:"status"`
}

func (r PublishSpecialistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.By(validStatus),
		),
	)
}

func validStatus(value interface{}) error {
	var status SpecialistStatus
	switch v := value.(type) {
	case SpecialistStatus:
		status = v
	case *SpecialistStatus:
		if v == nil {
			return nil
		}
		status = *v
	default:
		return validation.NewError("validation_invalid_status", "status must be one of draft, published")
	}

	if !status.Valid() {
		return validation.NewError("validation_invalid_status", "status must be one of draft, published")
	}
	return nil
}
