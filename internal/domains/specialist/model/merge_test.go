package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUpdateRequestApplyTo(t *testing.T) {
	t.Run("nil fields keep current values", func(t *testing.T) {
		s := &Specialist{
			Name:         "Acme",
			Description:  strPtr("Tax experts"),
			ContactEmail: "contact@acme.example",
			ContactPhone: strPtr("+1 555 0100"),
		}

		(&UpdateSpecialistRequest{}).ApplyTo(s)

		assert.Equal(t, "Acme", s.Name)
		assert.Equal(t, "Tax experts", *s.Description)
		assert.Equal(t, "contact@acme.example", s.ContactEmail)
		assert.Equal(t, "+1 555 0100", *s.ContactPhone)
	})

	t.Run("present fields overwrite", func(t *testing.T) {
		logoID := uuid.New()
		s := &Specialist{
			Name:         "Acme",
			ContactEmail: "contact@acme.example",
		}

		(&UpdateSpecialistRequest{
			Name:         strPtr("Acme Renamed"),
			ContactEmail: strPtr("new@acme.example"),
			LogoID:       &logoID,
		}).ApplyTo(s)

		assert.Equal(t, "Acme Renamed", s.Name)
		assert.Equal(t, "new@acme.example", s.ContactEmail)
		assert.Equal(t, logoID, *s.LogoID)
	})

	t.Run("explicit empty string clears a text field", func(t *testing.T) {
		s := &Specialist{Description: strPtr("Tax experts")}

		(&UpdateSpecialistRequest{Description: strPtr("")}).ApplyTo(s)

		assert.NotNil(t, s.Description)
		assert.Equal(t, "", *s.Description)
	})

	t.Run("status field never leaks through the patch", func(t *testing.T) {
		published := StatusPublished
		s := &Specialist{Status: StatusDraft}

		(&UpdateSpecialistRequest{Status: &published}).ApplyTo(s)

		assert.Equal(t, StatusDraft, s.Status)
	})
}

func TestOfferingPatchMerge(t *testing.T) {
	feeID := uuid.New()

	current := ServiceOffering{
		ID:          uuid.New(),
		ServiceName: "Tax Advisory",
		ServiceType: strPtr("hourly"),
		Description: strPtr("Annual filings"),
	}

	t.Run("service name always applies", func(t *testing.T) {
		merged := OfferingPatch{ServiceName: "Tax & Compliance"}.Merge(current)

		assert.Equal(t, "Tax & Compliance", merged.ServiceName)
		assert.Equal(t, "hourly", *merged.ServiceType)
		assert.Equal(t, "Annual filings", *merged.Description)
	})

	t.Run("present optional fields overwrite", func(t *testing.T) {
		merged := OfferingPatch{
			ServiceName:   "Tax Advisory",
			ServiceType:   strPtr("fixed"),
			PlatformFeeID: &feeID,
		}.Merge(current)

		assert.Equal(t, "fixed", *merged.ServiceType)
		assert.Equal(t, feeID, *merged.PlatformFeeID)
		assert.Equal(t, "Annual filings", *merged.Description)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		OfferingPatch{ServiceName: "Renamed", ServiceType: strPtr("fixed")}.Merge(current)

		assert.Equal(t, "Tax Advisory", current.ServiceName)
		assert.Equal(t, "hourly", *current.ServiceType)
	})
}
