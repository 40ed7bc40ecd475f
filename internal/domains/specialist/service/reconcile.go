package service

import (
	"github.com/google/uuid"

	"specialist-directory-backend/internal/domains/specialist/model"
)

// offeringWorkList is the outcome of reconciling the submitted offering
// list against the persisted collection: explicit delete/update/create
// work lists, executed together under one transaction.
type offeringWorkList struct {
	toDelete []uuid.UUID
	toUpdate []model.OfferingPatch
	toCreate []model.OfferingPatch
}

// diffOfferings classifies every item into exactly one bucket by a
// three-way set diff over identifiers:
//   - persisted offerings whose id does not appear in the patch are deleted,
//   - patch items carrying an id are updates,
//   - patch items without an id are creations.
//
// The patch is the complete target state, so a persisted offering survives
// only by being referenced.
func diffOfferings(current []model.ServiceOffering, patch []model.OfferingPatch) offeringWorkList {
	patchIDs := make(map[uuid.UUID]bool, len(patch))
	for _, p := range patch {
		if p.ID != nil {
			patchIDs[*p.ID] = true
		}
	}

	var work offeringWorkList

	for _, o := range current {
		if !patchIDs[o.ID] {
			work.toDelete = append(work.toDelete, o.ID)
		}
	}

	for _, p := range patch {
		if p.ID != nil {
			work.toUpdate = append(work.toUpdate, p)
		} else {
			work.toCreate = append(work.toCreate, p)
		}
	}

	return work
}
