package model

import (
	"time"

	"github.com/google/uuid"

	mediamodel "specialist-directory-backend/internal/domains/media/model"
	feemodel "specialist-directory-backend/internal/domains/platformfee/model"
)

// SpecialistStatus is the publication state of a specialist.
type SpecialistStatus string

const (
	StatusDraft     SpecialistStatus = "draft"
	StatusPublished SpecialistStatus = "published"
)

func (s SpecialistStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Specialist is the root of the aggregate: the specialist row plus its
// owned service offerings. Media and logo are weak relations loaded for
// reads; their lifecycle is independent of the specialist's.
type Specialist struct {
	ID           uuid.UUID        `json:"id" db:"id"`
	Name         string           `json:"name" db:"name"`
	Description  *string          `json:"description,omitempty" db:"description"`
	Status       SpecialistStatus `json:"status" db:"status"`
	ContactEmail string           `json:"contact_email" db:"contact_email"`
	ContactPhone *string          `json:"contact_phone,omitempty" db:"contact_phone"`
	WebsiteURL   *string          `json:"website_url,omitempty" db:"website_url"`
	LogoID       *uuid.UUID       `json:"logo_id,omitempty" db:"logo_id"`

	// PublishedAt is stamped on the first transition to published and is
	// never cleared, even if the specialist later reverts to draft.
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	ServiceOfferings []ServiceOffering  `json:"service_offerings"`
	Logo             *mediamodel.Media  `json:"logo,omitempty"`
	Media            []mediamodel.Media `json:"media"`
}

// ServiceOffering is a child record of a specialist. It only exists as part
// of the aggregate: created through specialist create/update and removed by
// reconciliation or by deleting the owner.
type ServiceOffering struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	SpecialistID  uuid.UUID  `json:"specialist_id" db:"specialist_id"`
	ServiceName   string     `json:"service_name" db:"service_name"`
	ServiceType   *string    `json:"service_type,omitempty" db:"service_type"`
	Description   *string    `json:"description,omitempty" db:"description"`
	PlatformFeeID *uuid.UUID `json:"platform_fee_id,omitempty" db:"platform_fee_id"`

	PlatformFee *feemodel.PlatformFee `json:"platform_fee,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
