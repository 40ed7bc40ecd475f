package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"specialist-directory-backend/internal/domains/specialist/model"
	"specialist-directory-backend/internal/domains/specialist/service"
	"specialist-directory-backend/internal/shared/response"
)

type SpecialistHandler struct {
	service service.ServiceInterface
}

func NewSpecialistHandler(service service.ServiceInterface) *SpecialistHandler {
	return &SpecialistHandler{service: service}
}

// ListSpecialists handles GET /specialists
func (h *SpecialistHandler) ListSpecialists(c *gin.Context) {
	query, ok := h.bindListQuery(c)
	if !ok {
		return
	}

	result, err := h.service.ListSpecialists(c.Request.Context(), query)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Failed to list specialists")
		statusCode, message := model.GetErrorResponse(err)
		response.Error(c, statusCode, message)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Specialists retrieved successfully",
		result.Specialists, pageMeta(result.Meta))
}

// ListPublicSpecialists handles GET /specialists/public
func (h *SpecialistHandler) ListPublicSpecialists(c *gin.Context) {
	query, ok := h.bindListQuery(c)
	if !ok {
		return
	}

	result, err := h.service.ListPublicSpecialists(c.Request.Context(), query)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Failed to list public specialists")
		statusCode, message := model.GetErrorResponse(err)
		response.Error(c, statusCode, message)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Specialists retrieved successfully",
		result.Specialists, pageMeta(result.Meta))
}

// GetSpecialistByID handles GET /specialists/:id
func (h *SpecialistHandler) GetSpecialistByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	specialist, err := h.service.GetSpecialistByID(c.Request.Context(), id)
	if err != nil {
		statusCode, message := model.GetErrorResponse(err)
		response.Error(c, statusCode, message)
		return
	}

	response.Success(c, http.StatusOK, "Specialist retrieved successfully", specialist)
}

// CreateSpecialist handles POST /specialists
func (h *SpecialistHandler) CreateSpecialist(c *gin.Context) {
	var req model.CreateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Validation failed", response.FieldErrorsFrom(err))
		return
	}

	specialist, err := h.service.CreateSpecialist(c.Request.Context(), &req)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Failed to create specialist")
		statusCode, message := model.GetErrorResponse(err)
		response.Error(c, statusCode, message)
		return
	}

	response.Success(c, http.StatusCreated, "Specialist created successfully", specialist)
}

// UpdateSpecialist handles PUT /specialists/:id
func (h *SpecialistHandler) UpdateSpecialist(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.UpdateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Validation failed", response.FieldErrorsFrom(err))
		return
	}

	specialist, err := h.service.UpdateSpecialist(c.Request.Context(), id, &req)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Failed to update specialist")
		statusCode, message := model.GetErrorResponse(err)
		response.Error(c, statusCode, message)
		return
	}

	response.Success(c, http.StatusOK, "Specialist updated successfully", specialist)
}

// PublishSpecialist handles PATCH /specialists/:id/publish
func (h *SpecialistHandler) PublishSpecialist(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.PublishSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Validation failed", response.FieldErrorsFrom(err))
		return
	}

	specialist, err := h.service.PublishSpecialist(c.Request.Context(), id, req.Status)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Failed to update specialist status")
		statusCode, message := model.GetErrorResponse(err)
		response.Error(c, statusCode, message)
		return
	}

	response.Success(c, http.StatusOK, "Specialist status updated successfully", specialist)
}

// DeleteSpecialist handles DELETE /specialists/:id
func (h *SpecialistHandler) DeleteSpecialist(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteSpecialist(c.Request.Context(), id); err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Failed to delete specialist")
		statusCode, message := model.GetErrorResponse(err)
		response.Error(c, statusCode, message)
		return
	}

	response.Success(c, http.StatusOK, "Specialist deleted successfully", nil)
}

func (h *SpecialistHandler) bindListQuery(c *gin.Context) (model.ListSpecialistsQuery, bool) {
	var query model.ListSpecialistsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return query, false
	}

	if err := query.Validate(); err != nil {
		response.ValidationError(c, "Validation failed", response.FieldErrorsFrom(err))
		return query, false
	}

	return query, true
}

func (h *SpecialistHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid specialist id")
		return uuid.Nil, false
	}
	return id, true
}

func pageMeta(meta model.PageMeta) *response.Meta {
	return &response.Meta{
		Page:       meta.Page,
		Limit:      meta.Limit,
		Total:      meta.Total,
		TotalPages: meta.TotalPages,
	}
}
