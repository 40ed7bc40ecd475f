package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateSpecialistRequestValidate(t *testing.T) {
	valid := CreateSpecialistRequest{
		Name:         "Acme Consulting",
		ContactEmail: "contact@acme.example",
	}

	t.Run("accepts a minimal valid payload", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		req := valid
		req.Name = ""
		assert.Error(t, req.Validate())
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		req := valid
		req.ContactEmail = "not-an-email"
		assert.Error(t, req.Validate())
	})

	t.Run("rejects overlong name", func(t *testing.T) {
		req := valid
		req.Name = strings.Repeat("x", 256)
		assert.Error(t, req.Validate())
	})

	t.Run("rejects malformed website url", func(t *testing.T) {
		bad := "not a url"
		req := valid
		req.WebsiteURL = &bad
		assert.Error(t, req.Validate())
	})

	t.Run("accepts explicit empty website url", func(t *testing.T) {
		empty := ""
		req := valid
		req.WebsiteURL = &empty
		assert.NoError(t, req.Validate())
	})

	t.Run("validates nested offerings", func(t *testing.T) {
		req := valid
		req.ServiceOfferings = []OfferingInput{{ServiceName: ""}}
		assert.Error(t, req.Validate())
	})

	t.Run("accepts valid nested offerings", func(t *testing.T) {
		req := valid
		req.ServiceOfferings = []OfferingInput{{ServiceName: "Tax Advisory"}}
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateSpecialistRequestValidate(t *testing.T) {
	t.Run("empty patch is valid", func(t *testing.T) {
		assert.NoError(t, (UpdateSpecialistRequest{}).Validate())
	})

	t.Run("present name cannot be empty", func(t *testing.T) {
		empty := ""
		req := UpdateSpecialistRequest{Name: &empty}
		assert.Error(t, req.Validate())
	})

	t.Run("present email must be well formed", func(t *testing.T) {
		bad := "nope"
		req := UpdateSpecialistRequest{ContactEmail: &bad}
		assert.Error(t, req.Validate())
	})

	t.Run("rejects unknown status value", func(t *testing.T) {
		bogus := SpecialistStatus("archived")
		req := UpdateSpecialistRequest{Status: &bogus}
		assert.Error(t, req.Validate())
	})

	t.Run("offering patches are validated element-wise", func(t *testing.T) {
		req := UpdateSpecialistRequest{
			ServiceOfferings: []OfferingPatch{{ServiceName: ""}},
		}
		assert.Error(t, req.Validate())
	})
}

func TestPublishSpecialistRequestValidate(t *testing.T) {
	t.Run("accepts published", func(t *testing.T) {
		assert.NoError(t, PublishSpecialistRequest{Status: StatusPublished}.Validate())
	})

	t.Run("accepts draft", func(t *testing.T) {
		assert.NoError(t, PublishSpecialistRequest{Status: StatusDraft}.Validate())
	})

	t.Run("rejects missing status", func(t *testing.T) {
		assert.Error(t, PublishSpecialistRequest{}.Validate())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		assert.Error(t, PublishSpecialistRequest{Status: "archived"}.Validate())
	})
}
