package model

import (
	"time"

	"github.com/google/uuid"
)

// MediaType classifies an uploaded asset.
type MediaType string

const (
	MediaTypeLogo     MediaType = "logo"
	MediaTypeDocument MediaType = "document"
	MediaTypeImage    MediaType = "image"
)

// Media is a metadata record pointing at an uploaded asset. The binary
// itself lives wherever file_url points; this service never stores it.
// The specialist reference is weak in both directions: deleting a
// specialist detaches its media instead of removing the rows.
type Media struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	SpecialistID *uuid.UUID `json:"specialist_id,omitempty" db:"specialist_id"`
	FileName     string     `json:"file_name" db:"file_name"`
	FileURL      string     `json:"file_url" db:"file_url"`
	FileType     string     `json:"file_type" db:"file_type"`
	FileSize     *int       `json:"file_size,omitempty" db:"file_size"`
	MediaType    MediaType  `json:"media_type" db:"media_type"`
	UploadedAt   time.Time  `json:"uploaded_at" db:"uploaded_at"`
}
