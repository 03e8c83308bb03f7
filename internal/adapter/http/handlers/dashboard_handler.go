package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "resto_requests/internal/adapter/http/dto/response"
	"resto_requests/internal/usecase"
	"resto_requests/pkg"
)

// DashboardHandler serves the landing-page summary.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	summary, err := h.usecase.Summary(c.Request.Context(), actor)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboard(summary))
}
