package entities

import "time"

// RequestStatus is the lifecycle state shared by orders and maintenance
// requests.
//
// There is deliberately no enforced transition graph: any authorized editor
// may set any status at any time (e.g. reopening a completed request).

type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Rank orders statuses by lifecycle position for sorting purposes.
func (s RequestStatus) Rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	case StatusCancelled:
		return 3
	}
	return 4
}

// PriorityLevel ranks a request's urgency. Sorting uses the enumeration
// order urgent < normal < planned, not the lexical order of the values.

type PriorityLevel string

const (
	PriorityUrgent  PriorityLevel = "urgent"
	PriorityNormal  PriorityLevel = "normal"
	PriorityPlanned PriorityLevel = "planned"
)

func (p PriorityLevel) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityNormal, PriorityPlanned:
		return true
	}
	return false
}

func (p PriorityLevel) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityNormal:
		return 1
	case PriorityPlanned:
		return 2
	}
	return 3
}

// Department is the sub-area of a restaurant a request pertains to.

type Department string

const (
	DepartmentRoom    Department = "room"
	DepartmentBar     Department = "bar"
	DepartmentKitchen Department = "kitchen"
	DepartmentGeneral Department = "general"
)

func (d Department) Valid() bool {
	switch d {
	case DepartmentRoom, DepartmentBar, DepartmentKitchen, DepartmentGeneral:
		return true
	}
	return false
}

// RequestType discriminates the two concrete request variants.

type RequestType string

const (
	RequestTypeOrder       RequestType = "order"
	RequestTypeMaintenance RequestType = "maintenance"
)

// RequestBase carries the fields shared by both request variants.
//
// ID, CreatedAt, CreatedBy and RestaurantID are immutable once set: requests
// are never transferred between restaurants. UpdatedAt is bumped on every
// mutation.

type RequestBase struct {
	ID           string        `json:"id"`
	Type         RequestType   `json:"type"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	CreatedBy    string        `json:"created_by"`
	RestaurantID RestaurantID  `json:"restaurant_id"`
	Status       RequestStatus `json:"status"`
	Priority     PriorityLevel `json:"priority"`
	Department   Department    `json:"department"`
	Comments     string        `json:"comments"`
	PhotoURLs    []string      `json:"photo_urls,omitempty"`
	AssignedTo   string        `json:"assigned_to,omitempty"`
}

func (b RequestBase) Base() RequestBase { return b }

func (b RequestBase) SearchFields() []string { return []string{b.ID, b.Comments} }

func (b RequestBase) CategoryKey() string { return "" }

func (b RequestBase) CompletedAt() *time.Time { return nil }
