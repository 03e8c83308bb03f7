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

// OrderHandler handles HTTP requests for supply orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder submits a new supply order for the actor's restaurant.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		logger.Warnf("[orders][handler] create failed uid=%s err=%v", actor.UID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// ListOrders returns the actor's scoped, filtered and sorted order list.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), actor, parseRequestFilters(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder returns one order plus whether the actor may edit it.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	o, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.FromOrder(o)
	resp.CanEdit = access.CanEdit(actor, o.RequestBase)
	c.JSON(http.StatusOK, resp)
}

// UpdateOrder applies a partial edit, gated by the access policy.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToPatch())
	if err != nil {
		logger.Warnf("[orders][handler] update failed order_id=%s uid=%s err=%v", c.Param("id"), actor.UID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEditNotAllowed):
		return pkg.NewDomainErrorSimple("EDIT_NOT_ALLOWED", "You may not edit this order", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNoRestaurantAssigned):
		return pkg.NewDomainErrorSimple("NO_RESTAURANT_ASSIGNED", "No restaurant assigned to your profile", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyOrderItems),
		errors.Is(err, usecase.ErrInvalidOrderInput),
		errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, usecase.ErrInvalidRecurrence):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
