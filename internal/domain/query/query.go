// Package query implements the in-memory filter/sort/aggregate pipeline used
// by the list, dashboard and report endpoints. The document store only
// supports equality predicates server-side, so everything beyond that happens
// here, after fetch.
//
// All functions are pure: they never mutate their input slice and calling
// them twice with the same arguments yields the same result.
package query

import (
	"math"
	"sort"
	"strings"
	"time"

	"resto_requests/internal/domain/access"
	"resto_requests/internal/domain/entities"
)

// Record is any request-like value the pipeline can operate on. Both concrete
// request variants satisfy it, as does entities.RequestBase itself (used for
// the combined dashboard feed).

type Record interface {
	Base() entities.RequestBase
	SearchFields() []string
	CategoryKey() string
	CompletedAt() *time.Time
}

type SortKey string

const (
	SortKeyCreatedAt SortKey = "created_at"
	SortKeyUpdatedAt SortKey = "updated_at"
	SortKeyPriority  SortKey = "priority"
	SortKeyStatus    SortKey = "status"
	SortKeyCategory  SortKey = "category"
	SortKeyID        SortKey = "id"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortKeyCreatedAt, SortKeyUpdatedAt, SortKeyPriority, SortKeyStatus, SortKeyCategory, SortKeyID:
		return true
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Predicates narrows a list. Zero-valued fields are skipped; the date range
// only applies when both bounds are present (inclusive on both ends).

type Predicates struct {
	SearchTerm  string
	Status      entities.RequestStatus
	Priority    entities.PriorityLevel
	Category    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// FilterByScope keeps every record when the scope is chain-wide, otherwise
// only those belonging to the scope's restaurant.
func FilterByScope[T Record](in []T, scope access.Scope) []T {
	if scope.All {
		return append([]T(nil), in...)
	}
	out := make([]T, 0, len(in))
	for _, rec := range in {
		if rec.Base().RestaurantID == scope.RestaurantID {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByPredicates applies every set predicate as a sequential AND.
func FilterByPredicates[T Record](in []T, p Predicates) []T {
	out := make([]T, 0, len(in))
	for _, rec := range in {
		if matches(rec, p) {
			out = append(out, rec)
		}
	}
	return out
}

func matches[T Record](rec T, p Predicates) bool {
	base := rec.Base()
	if term := strings.ToLower(strings.TrimSpace(p.SearchTerm)); term != "" {
		found := false
		for _, field := range rec.SearchFields() {
			if strings.Contains(strings.ToLower(field), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if p.Status != "" && base.Status != p.Status {
		return false
	}
	if p.Priority != "" && base.Priority != p.Priority {
		return false
	}
	if p.Category != "" && rec.CategoryKey() != p.Category {
		return false
	}
	if p.CreatedFrom != nil && p.CreatedTo != nil {
		if base.CreatedAt.Before(*p.CreatedFrom) || base.CreatedAt.After(*p.CreatedTo) {
			return false
		}
	}
	return true
}

// SortBy returns a stably sorted copy of in. Ties keep their input order and
// zero values (unset dates, empty ids) sort as the smallest element in
// ascending order. An empty key or direction falls back to the default view
// order, createdAt descending.
func SortBy[T Record](in []T, key SortKey, dir SortDirection) []T {
	if key == "" {
		key = SortKeyCreatedAt
		if dir == "" {
			dir = SortDesc
		}
	}
	if dir == "" {
		dir = SortAsc
	}

	out := append([]T(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i].Base(), out[j].Base(), out[i].CategoryKey(), out[j].CategoryKey(), key)
		if dir == SortDesc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compare(a, b entities.RequestBase, catA, catB string, key SortKey) int {
	switch key {
	case SortKeyCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case SortKeyUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case SortKeyPriority:
		return a.Priority.Rank() - b.Priority.Rank()
	case SortKeyStatus:
		return a.Status.Rank() - b.Status.Rank()
	case SortKeyCategory:
		return strings.Compare(catA, catB)
	case SortKeyID:
		return strings.Compare(a.ID, b.ID)
	}
	return 0
}

// TopN truncates a (typically sorted) list to its first n elements.
func TopN[T any](in []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(in) <= n {
		return append([]T(nil), in...)
	}
	return append([]T(nil), in[:n]...)
}

// GroupCount tallies records by the key keyFn derives. The counts always add
// up to len(in).
func GroupCount[T any](in []T, keyFn func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, rec := range in {
		counts[keyFn(rec)]++
	}
	return counts
}

// AverageResolutionDays averages, over completed records carrying an actual
// completion timestamp, the whole days (rounded up) between creation and
// completion. Returns 0 when nothing qualifies.
func AverageResolutionDays[T Record](in []T) float64 {
	var sum float64
	var count int
	for _, rec := range in {
		base := rec.Base()
		done := rec.CompletedAt()
		if base.Status != entities.StatusCompleted || done == nil {
			continue
		}
		days := math.Ceil(math.Abs(done.Sub(base.CreatedAt).Hours()) / 24)
		sum += days
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
