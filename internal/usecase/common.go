package usecase

import (
	"errors"
	"time"

	"resto_requests/internal/domain/entities"
	"resto_requests/internal/domain/query"
)

// Errors shared by the order and maintenance flows.
var (
	ErrEditNotAllowed       = errors.New("edit not allowed")
	ErrNoRestaurantAssigned = errors.New("no restaurant assigned")
)

// RequestFilters carries the list-view narrowing and ordering options coming
// from the query string. Zero values mean "no constraint"; the date range is
// only applied when both bounds are present.

type RequestFilters struct {
	SearchTerm  string
	Status      entities.RequestStatus
	Priority    entities.PriorityLevel
	Category    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	SortKey     query.SortKey
	SortDir     query.SortDirection
}

func (f RequestFilters) predicates() query.Predicates {
	return query.Predicates{
		SearchTerm:  f.SearchTerm,
		Status:      f.Status,
		Priority:    f.Priority,
		Category:    f.Category,
		CreatedFrom: f.CreatedFrom,
		CreatedTo:   f.CreatedTo,
	}
}
