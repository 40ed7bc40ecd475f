package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"specialist-directory-backend/internal/domains/platformfee/model"
	"specialist-directory-backend/internal/domains/platformfee/service"
	"specialist-directory-backend/internal/shared/response"
)

type PlatformFeeHandler struct {
	service service.ServiceInterface
}

func NewPlatformFeeHandler(service service.ServiceInterface) *PlatformFeeHandler {
	return &PlatformFeeHandler{service: service}
}

// ListFees handles GET /platform-fees
func (h *PlatformFeeHandler) ListFees(c *gin.Context) {
	fees, err := h.service.ListActiveFees(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Failed to list platform fees")
		statusCode, message := model.GetErrorResponse(err)
		response.Error(c, statusCode, message)
		return
	}

	response.Success(c, http.StatusOK, "Platform fees retrieved successfully", fees)
}

// GetFeeByID handles GET /platform-fees/:id
func (h *PlatformFeeHandler) GetFeeByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid platform fee id")
		return
	}

	fee, err := h.service.GetFeeByID(c.Request.Context(), id)
	if err != nil {
		statusCode, message := model.GetErrorResponse(err)
		response.Error(c, statusCode, message)
		return
	}

	response.Success(c, http.StatusOK, "Platform fee retrieved successfully", fee)
}
