package request

import (
	"time"

	"resto_requests/internal/domain/entities"
	"resto_requests/internal/usecase"
)

// CreateMaintenanceRequest is a fault-report form.

type CreateMaintenanceRequest struct {
	Category                string     `json:"category" binding:"required"`
	Location                string     `json:"location" binding:"required"`
	Description             string     `json:"description" binding:"required"`
	Priority                string     `json:"priority" binding:"required"`
	Department              string     `json:"department" binding:"required"`
	Comments                string     `json:"comments"`
	PhotoURLs               []string   `json:"photo_urls"`
	EstimatedCompletionDate *time.Time `json:"estimated_completion_date"`
}

func (r CreateMaintenanceRequest) ToInput() usecase.NewMaintenanceInput {
	return usecase.NewMaintenanceInput{
		Category:                entities.MaintenanceCategory(r.Category),
		Location:                r.Location,
		Description:             r.Description,
		Priority:                entities.PriorityLevel(r.Priority),
		Department:              entities.Department(r.Department),
		Comments:                r.Comments,
		PhotoURLs:               r.PhotoURLs,
		EstimatedCompletionDate: r.EstimatedCompletionDate,
	}
}

// UpdateMaintenanceRequest is a partial edit; absent fields are left
// untouched.

type UpdateMaintenanceRequest struct {
	Status                  *string    `json:"status"`
	Priority                *string    `json:"priority"`
	Comments                *string    `json:"comments"`
	PhotoURLs               *[]string  `json:"photo_urls"`
	AssignedTo              *string    `json:"assigned_to"`
	Location                *string    `json:"location"`
	Description             *string    `json:"description"`
	EstimatedCompletionDate *time.Time `json:"estimated_completion_date"`
	ActualCompletionDate    *time.Time `json:"actual_completion_date"`
}

func (r UpdateMaintenanceRequest) ToPatch() usecase.MaintenancePatch {
	patch := usecase.MaintenancePatch{
		Comments:                r.Comments,
		PhotoURLs:               r.PhotoURLs,
		AssignedTo:              r.AssignedTo,
		Location:                r.Location,
		Description:             r.Description,
		EstimatedCompletionDate: r.EstimatedCompletionDate,
		ActualCompletionDate:    r.ActualCompletionDate,
	}
	if r.Status != nil {
		status := entities.RequestStatus(*r.Status)
		patch.Status = &status
	}
	if r.Priority != nil {
		priority := entities.PriorityLevel(*r.Priority)
		patch.Priority = &priority
	}
	return patch
}
