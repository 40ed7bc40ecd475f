package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// RegisterMediaRequest registers an already-uploaded asset by its metadata.
type RegisterMediaRequest struct {
	SpecialistID *uuid.UUID `json:"specialist_id,omitempty"`
	FileName     string     `json:"file_name"`
	FileURL      string     `json:"file_url"`
	FileType     string     `json:"file_type"`
	FileSize     *int       `json:"file_size,omitempty"`
	MediaType    string     `json:"media_type"`
}

func (r RegisterMediaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FileName,
			validation.Required.Error("file name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.FileURL,
			validation.Required.Error("file url is required"),
			is.URL.Error("invalid url"),
			validation.Length(1, 1000),
		),
		validation.Field(&r.FileType,
			validation.Required.Error("file type is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.MediaType,
			validation.Required.Error("media type is required"),
			validation.In(string(MediaTypeLogo), string(MediaTypeDocument), string(MediaTypeImage)).
				Error("media type must be one of logo, document, image"),
		),
		validation.Field(&r.FileSize,
			validation.Min(0).Error("file size cannot be negative"),
		),
	)
}
