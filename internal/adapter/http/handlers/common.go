package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resto_requests/internal/adapter/http/middleware"
	"resto_requests/internal/domain/entities"
	"resto_requests/internal/domain/query"
	"resto_requests/internal/usecase"
	"resto_requests/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errNoProfile      = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// currentProfile fetches the authenticated profile or ends the request with
// a 401. Routes behind the Identity middleware always have one; this guards
// against wiring mistakes.
func currentProfile(c *gin.Context) (entities.UserProfile, bool) {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		c.JSON(errNoProfile.HTTPStatus, errNoProfile.ToHTTPError())
		return entities.UserProfile{}, false
	}
	return profile, true
}

// parseRequestFilters reads the list-view query string. Unknown or malformed
// values are ignored rather than rejected; the list then simply comes back
// unfiltered on that axis.
func parseRequestFilters(c *gin.Context) usecase.RequestFilters {
	filters := usecase.RequestFilters{
		SearchTerm: c.Query("search"),
		Category:   c.Query("category"),
	}
	if status := entities.RequestStatus(c.Query("status")); status.Valid() {
		filters.Status = status
	}
	if priority := entities.PriorityLevel(c.Query("priority")); priority.Valid() {
		filters.Priority = priority
	}
	if key := query.SortKey(c.Query("sort_by")); key.Valid() {
		filters.SortKey = key
	}
	if dir := c.Query("sort_dir"); dir == string(query.SortAsc) || dir == string(query.SortDesc) {
		filters.SortDir = query.SortDirection(dir)
	}

	from, okFrom := parseDate(c.Query("from"), false)
	to, okTo := parseDate(c.Query("to"), true)
	// The range is inclusive and only applies with both bounds present.
	if okFrom && okTo {
		filters.CreatedFrom = &from
		filters.CreatedTo = &to
	}
	return filters
}

// parseDate accepts RFC3339 or a plain date. A plain "to" date covers the
// whole day.
func parseDate(s string, endOfDay bool) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, true
}
