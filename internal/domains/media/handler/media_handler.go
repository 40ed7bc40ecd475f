package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"specialist-directory-backend/internal/domains/media/model"
	"specialist-directory-backend/internal/domains/media/service"
	"specialist-directory-backend/internal/shared/response"
)

type MediaHandler struct {
	service service.ServiceInterface
}

func NewMediaHandler(service service.ServiceInterface) *MediaHandler {
	return &MediaHandler{service: service}
}

// RegisterMedia handles POST /media
func (h *MediaHandler) RegisterMedia(c *gin.Context) {
	var req model.RegisterMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Validation failed", response.FieldErrorsFrom(err))
		return
	}

	media, err := h.service.RegisterMedia(c.Request.Context(), &req)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Failed to register media")
		statusCode, message := model.GetErrorResponse(err)
		response.Error(c, statusCode, message)
		return
	}

	response.Success(c, http.StatusCreated, "Media registered successfully", media)
}

// GetMediaByID handles GET /media/:id
func (h *MediaHandler) GetMediaByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid media id")
		return
	}

	media, err := h.service.GetMediaByID(c.Request.Context(), id)
	if err != nil {
		statusCode, message := model.GetErrorResponse(err)
		response.Error(c, statusCode, message)
		return
	}

	response.Success(c, http.StatusOK, "Media retrieved successfully", media)
}
