package request

import "resto_requests/internal/usecase"

// UpdateProfileRequest edits the mutable profile fields.

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	PhotoURL    *string `json:"photo_url"`
}

func (r UpdateProfileRequest) ToPatch() usecase.ProfilePatch {
	return usecase.ProfilePatch{
		DisplayName: r.DisplayName,
		PhotoURL:    r.PhotoURL,
	}
}

// SwitchRestaurantRequest selects the active restaurant.

type SwitchRestaurantRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
}
