package model

// ApplyTo merges the patch into the specialist, field by field. A nil patch
// field keeps the current value; a non-nil one overwrites it, so an explicit
// empty string clears a text field while an absent key leaves it alone.
// Status and the offering collection are handled elsewhere (publish endpoint
// and reconciliation respectively).
func (r *UpdateSpecialistRequest) ApplyTo(s *Specialist) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Description != nil {
		s.Description = r.Description
	}
	if r.ContactEmail != nil {
		s.ContactEmail = *r.ContactEmail
	}
	if r.ContactPhone != nil {
		s.ContactPhone = r.ContactPhone
	}
	if r.WebsiteURL != nil {
		s.WebsiteURL = r.WebsiteURL
	}
	if r.LogoID != nil {
		s.LogoID = r.LogoID
	}
}

// Merge applies an offering patch onto the current offering row using the
// same absent-means-keep semantics. ServiceName is always present in a
// valid patch and always applied.
func (p OfferingPatch) Merge(current ServiceOffering) ServiceOffering {
	merged := current
	merged.ServiceName = p.ServiceName
	if p.ServiceType != nil {
		merged.ServiceType = p.ServiceType
	}
	if p.Description != nil {
		merged.Description = p.Description
	}
	if p.PlatformFeeID != nil {
		merged.PlatformFeeID = p.PlatformFeeID
	}
	return merged
}
