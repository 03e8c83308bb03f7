package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "resto_requests/internal/adapter/http/dto/request"
	response "resto_requests/internal/adapter/http/dto/response"
	"resto_requests/internal/domain/access"
	"resto_requests/internal/infrastructure/logger"
	"resto_requests/internal/usecase"
	"resto_requests/pkg"
)

// MaintenanceHandler handles HTTP requests for maintenance tickets.

type MaintenanceHandler struct {
	usecase usecase.IMaintenanceUseCase
}

func NewMaintenanceHandler(uc usecase.IMaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{usecase: uc}
}

// CreateMaintenance submits a new fault report for the actor's restaurant.
func (h *MaintenanceHandler) CreateMaintenance(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	var payload request.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		logger.Warnf("[maintenance][handler] create failed uid=%s err=%v", actor.UID, err)
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMaintenance(created))
}

// ListMaintenance returns the actor's scoped, filtered and sorted tickets.
func (h *MaintenanceHandler) ListMaintenance(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	reqs, err := h.usecase.List(c.Request.Context(), actor, parseRequestFilters(c))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceList(reqs))
}

// GetMaintenance returns one ticket plus whether the actor may edit it.
func (h *MaintenanceHandler) GetMaintenance(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	m, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.FromMaintenance(m)
	resp.CanEdit = access.CanEdit(actor, m.RequestBase)
	c.JSON(http.StatusOK, resp)
}

// UpdateMaintenance applies a partial edit, gated by the access policy.
func (h *MaintenanceHandler) UpdateMaintenance(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	var payload request.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToPatch())
	if err != nil {
		logger.Warnf("[maintenance][handler] update failed request_id=%s uid=%s err=%v", c.Param("id"), actor.UID, err)
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenance(updated))
}

func mapMaintenanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMaintenanceNotFound):
		return pkg.NewDomainErrorSimple("MAINTENANCE_NOT_FOUND", "Maintenance request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEditNotAllowed):
		return pkg.NewDomainErrorSimple("EDIT_NOT_ALLOWED", "You may not edit this maintenance request", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNoRestaurantAssigned):
		return pkg.NewDomainErrorSimple("NO_RESTAURANT_ASSIGNED", "No restaurant assigned to your profile", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMaintenanceInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
