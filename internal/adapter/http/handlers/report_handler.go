package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	response "resto_requests/internal/adapter/http/dto/response"
	"resto_requests/internal/domain/entities"
	"resto_requests/internal/usecase"
	"resto_requests/pkg"
)

// ReportHandler serves the aggregated reporting view.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// GetReport builds the report for the requested window. Without an explicit
// range it covers the last month.
func (h *ReportHandler) GetReport(c *gin.Context) {
	actor, ok := currentProfile(c)
	if !ok {
		return
	}

	now := time.Now().UTC()
	filters := usecase.ReportFilters{
		From:         now.AddDate(0, -1, 0),
		To:           now,
		RestaurantID: entities.RestaurantID(c.Query("restaurant_id")),
		Category:     c.Query("category"),
	}
	if from, okFrom := parseDate(c.Query("from"), false); okFrom {
		filters.From = from
	}
	if to, okTo := parseDate(c.Query("to"), true); okTo {
		filters.To = to
	}

	report, err := h.usecase.Build(c.Request.Context(), actor, filters)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReport(report))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportRange):
		return pkg.NewDomainErrorSimple("INVALID_REPORT_RANGE", "Invalid report date range", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
