package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterMediaRequestValidate(t *testing.T) {
	valid := RegisterMediaRequest{
		FileName:  "logo.png",
		FileURL:   "https://cdn.example.com/logo.png",
		FileType:  "image/png",
		MediaType: string(MediaTypeLogo),
	}

	t.Run("accepts a valid payload", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("rejects missing file name", func(t *testing.T) {
		req := valid
		req.FileName = ""
		assert.Error(t, req.Validate())
	})

	t.Run("rejects malformed url", func(t *testing.T) {
		req := valid
		req.FileURL = "not a url"
		assert.Error(t, req.Validate())
	})

	t.Run("rejects unknown media type", func(t *testing.T) {
		req := valid
		req.MediaType = "video"
		assert.Error(t, req.Validate())
	})

	t.Run("rejects negative file size", func(t *testing.T) {
		size := -1
		req := valid
		req.FileSize = &size
		assert.Error(t, req.Validate())
	})

	t.Run("accepts an optional file size", func(t *testing.T) {
		size := 2048
		req := valid
		req.FileSize = &size
		assert.NoError(t, req.Validate())
	})
}
