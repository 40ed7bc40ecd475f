package model

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Sortable columns for specialist listings.
const (
	SortByCreatedAt = "created_at"
	SortByName      = "name"
	SortByUpdatedAt = "updated_at"
)

// ListSpecialistsQuery carries the paging, filter and sort parameters of
// the listing endpoints. Defaults are applied by gin's form binding.
type ListSpecialistsQuery struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	Status    string `form:"status"`
	Search    string `form:"search"`
	SortBy    string `form:"sortBy,default=created_at"`
	SortOrder string `form:"sortOrder,default=DESC"`
}

func (q ListSpecialistsQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Page,
			validation.Min(1).Error("page must be at least 1"),
		),
		validation.Field(&q.Limit,
			validation.Min(1).Error("limit must be at least 1"),
		),
		validation.Field(&q.Status,
			validation.In("", string(StatusDraft), string(StatusPublished)).
				Error("status must be one of draft, published"),
		),
		validation.Field(&q.SortBy,
			validation.In(SortByCreatedAt, SortByName, SortByUpdatedAt).
				Error("sortBy must be one of created_at, name, updated_at"),
		),
		validation.Field(&q.SortOrder,
			validation.In("ASC", "DESC").Error("sortOrder must be ASC or DESC"),
		),
	)
}

// StatusFilter returns the status constraint, or nil for "all".
func (q ListSpecialistsQuery) StatusFilter() *SpecialistStatus {
	if q.Status == "" {
		return nil
	}
	status := SpecialistStatus(q.Status)
	return &status
}

// Offset converts page/limit into a row offset.
func (q ListSpecialistsQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// PageMeta is the pagination metadata returned next to every listing.
type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func NewPageMeta(page, limit, total int) PageMeta {
	return PageMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// ListResult bundles one page of specialists with its metadata.
type ListResult struct {
	Specialists []*Specialist `json:"specialists"`
	Meta        PageMeta      `json:"meta"`
}
