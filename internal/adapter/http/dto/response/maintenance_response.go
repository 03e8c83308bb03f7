package response

import (
	"time"

	"resto_requests/internal/domain/entities"
)

type MaintenanceResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CreatedBy    string    `json:"created_by"`
	RestaurantID string    `json:"restaurant_id"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Department   string    `json:"department"`
	Comments     string    `json:"comments"`
	PhotoURLs    []string  `json:"photo_urls,omitempty"`
	AssignedTo   string    `json:"assigned_to,omitempty"`

	Category                string     `json:"category"`
	Location                string     `json:"location"`
	Description             string     `json:"description"`
	EstimatedCompletionDate *time.Time `json:"estimated_completion_date,omitempty"`
	ActualCompletionDate    *time.Time `json:"actual_completion_date,omitempty"`

	// CanEdit is only populated on detail reads, for the edit action.
	CanEdit bool `json:"can_edit"`
}

func FromMaintenance(m entities.MaintenanceRequest) MaintenanceResponse {
	return MaintenanceResponse{
		ID:           m.ID,
		Type:         string(m.Type),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		CreatedBy:    m.CreatedBy,
		RestaurantID: string(m.RestaurantID),
		Status:       string(m.Status),
		Priority:     string(m.Priority),
		Department:   string(m.Department),
		Comments:     m.Comments,
		PhotoURLs:    m.PhotoURLs,
		AssignedTo:   m.AssignedTo,

		Category:                string(m.Category),
		Location:                m.Location,
		Description:             m.Description,
		EstimatedCompletionDate: m.EstimatedCompletionDate,
		ActualCompletionDate:    m.ActualCompletionDate,
	}
}

func FromMaintenanceList(reqs []entities.MaintenanceRequest) []MaintenanceResponse {
	out := make([]MaintenanceResponse, 0, len(reqs))
	for _, m := range reqs {
		out = append(out, FromMaintenance(m))
	}
	return out
}
