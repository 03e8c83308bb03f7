package entities

// UserRole determines what a user may see and edit.
//
// The maintenance role is chain-wide and is the only role whose profile may
// carry a nil restaurant assignment; every other role is pinned to one
// restaurant at registration.

type UserRole string

const (
	RoleMaintenance       UserRole = "maintenance"
	RoleRestaurantManager UserRole = "restaurant_manager"
	RoleRoomManager       UserRole = "room_manager"
	RoleBarManager        UserRole = "bar_manager"
	RoleEmployee          UserRole = "employee"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleMaintenance, RoleRestaurantManager, RoleRoomManager, RoleBarManager, RoleEmployee:
		return true
	}
	return false
}

// IsManager reports whether the role belongs to the restaurant-manager
// family (restaurant, room or bar manager).
func (r UserRole) IsManager() bool {
	switch r {
	case RoleRestaurantManager, RoleRoomManager, RoleBarManager:
		return true
	}
	return false
}

// UserProfile is the stored profile backing an authenticated account.
//
// For the maintenance role RestaurantID is the currently selected active
// restaurant (nil means "all restaurants"); for everyone else it is the
// fixed assignment.

type UserProfile struct {
	UID          string        `json:"uid"`
	Email        string        `json:"email"`
	DisplayName  string        `json:"display_name"`
	Role         UserRole      `json:"role"`
	RestaurantID *RestaurantID `json:"restaurant_id"`
	PhotoURL     string        `json:"photo_url,omitempty"`
}
