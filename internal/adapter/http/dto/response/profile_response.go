package response

import "resto_requests/internal/domain/entities"

type ProfileResponse struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name"`
	Role         string `json:"role"`
	RestaurantID string `json:"restaurant_id,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
}

func FromProfile(p entities.UserProfile) ProfileResponse {
	resp := ProfileResponse{
		UID:         p.UID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Role:        string(p.Role),
		PhotoURL:    p.PhotoURL,
	}
	if p.RestaurantID != nil {
		resp.RestaurantID = string(*p.RestaurantID)
	}
	return resp
}
