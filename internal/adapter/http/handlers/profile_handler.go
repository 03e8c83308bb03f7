package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "resto_requests/internal/adapter/http/dto/request"
	response "resto_requests/internal/adapter/http/dto/response"
	"resto_requests/internal/domain/entities"
	"resto_requests/internal/infrastructure/logger"
	"resto_requests/internal/usecase"
	"resto_requests/pkg"
)

// ProfileHandler serves the authenticated user's own profile.

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(actor))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	var payload request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateProfile(c.Request.Context(), actor, payload.ToPatch())
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(updated))
}

// SwitchRestaurant sets the actor's active restaurant. A disallowed target
// is rejected without touching the stored profile.
func (h *ProfileHandler) SwitchRestaurant(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	var payload request.SwitchRestaurantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SwitchRestaurant(c.Request.Context(), actor, entities.RestaurantID(payload.RestaurantID))
	if err != nil {
		logger.Warnf("[profile][handler] restaurant switch failed uid=%s target=%s err=%v", actor.UID, payload.RestaurantID, err)
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(updated))
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownRestaurant):
		return pkg.NewDomainErrorSimple("UNKNOWN_RESTAURANT", "Unknown restaurant", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSwitchNotAllowed):
		return pkg.NewDomainErrorSimple("SWITCH_NOT_ALLOWED", "You may not switch to this restaurant", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidProfilePatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
