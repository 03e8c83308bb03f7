package entities

import "time"

// MaintenanceCategory classifies the kind of fault being reported.

type MaintenanceCategory string

const (
	MaintenanceCategoryPlumbing   MaintenanceCategory = "plumbing"
	MaintenanceCategoryElectrical MaintenanceCategory = "electrical"
	MaintenanceCategoryHVAC       MaintenanceCategory = "hvac"
	MaintenanceCategoryFurniture  MaintenanceCategory = "furniture"
	MaintenanceCategoryAppliance  MaintenanceCategory = "appliance"
	MaintenanceCategoryStructural MaintenanceCategory = "structural"
	MaintenanceCategoryOther      MaintenanceCategory = "other"
)

func (c MaintenanceCategory) Valid() bool {
	switch c {
	case MaintenanceCategoryPlumbing, MaintenanceCategoryElectrical,
		MaintenanceCategoryHVAC, MaintenanceCategoryFurniture,
		MaintenanceCategoryAppliance, MaintenanceCategoryStructural,
		MaintenanceCategoryOther:
		return true
	}
	return false
}

// MaintenanceRequest is a fault ticket raised against a specific location
// inside a restaurant.

type MaintenanceRequest struct {
	RequestBase

	Category                MaintenanceCategory `json:"category"`
	Location                string              `json:"location"`
	Description             string              `json:"description"`
	EstimatedCompletionDate *time.Time          `json:"estimated_completion_date,omitempty"`
	ActualCompletionDate    *time.Time          `json:"actual_completion_date,omitempty"`
}

// SearchFields lists the texts a free-text search matches against: the id,
// the fault description, the location and the comments.
func (m MaintenanceRequest) SearchFields() []string {
	return []string{m.ID, m.Description, m.Location, m.Comments}
}

func (m MaintenanceRequest) CategoryKey() string { return string(m.Category) }

func (m MaintenanceRequest) CompletedAt() *time.Time { return m.ActualCompletionDate }
