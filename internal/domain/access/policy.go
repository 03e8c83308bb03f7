// Package access is the single place deciding what a user may see and edit.
// Every handler and usecase goes through these predicates; none of them keep
// state, so they are safe to re-evaluate on every request.
package access

import "resto_requests/internal/domain/entities"

// Scope is the restaurant filter applied to queries on behalf of a user.
// The zero value is not meaningful; use ResolveScope.

type Scope struct {
	// All is true when the user sees every restaurant.
	All bool
	// RestaurantID is the single restaurant the user is limited to when All
	// is false.
	RestaurantID entities.RestaurantID
}

// ScopeAll is the unfiltered scope used by maintenance staff with no active
// restaurant selected.
var ScopeAll = Scope{All: true}

// ScopeFor returns the scope limited to a single restaurant.
func ScopeFor(id entities.RestaurantID) Scope {
	return Scope{RestaurantID: id}
}

// ResolveScope computes the restaurant filter for the given profile.
//
// Maintenance staff see the restaurant they currently have selected, or all
// restaurants when none is selected. Everyone else always sees exactly their
// assigned restaurant.
func ResolveScope(profile entities.UserProfile) Scope {
	if profile.Role == entities.RoleMaintenance {
		if profile.RestaurantID != nil {
			return ScopeFor(*profile.RestaurantID)
		}
		return ScopeAll
	}
	if profile.RestaurantID != nil {
		return ScopeFor(*profile.RestaurantID)
	}
	// Non-maintenance profiles are assigned a restaurant at registration;
	// a missing assignment must not widen visibility.
	return Scope{}
}

// CanEdit reports whether the user may mutate the given request.
//
//   - maintenance staff may edit everything, chain-wide
//   - the manager family (restaurant, room, bar) may edit requests of their
//     own restaurant
//   - the creator may still edit their own request while it is pending
func CanEdit(profile entities.UserProfile, req entities.RequestBase) bool {
	if profile.Role == entities.RoleMaintenance {
		return true
	}
	if profile.Role.IsManager() && profile.RestaurantID != nil && req.RestaurantID == *profile.RestaurantID {
		return true
	}
	if profile.UID == req.CreatedBy && req.Status == entities.StatusPending {
		return true
	}
	return false
}

// CanView reports whether the user may read the given request on a detail
// page. Maintenance staff see everything regardless of the restaurant they
// currently have selected; everyone else only sees their own restaurant.
func CanView(profile entities.UserProfile, req entities.RequestBase) bool {
	if profile.Role == entities.RoleMaintenance {
		return true
	}
	return profile.RestaurantID != nil && req.RestaurantID == *profile.RestaurantID
}

// CanSwitchTo reports whether the user may select target as their active
// restaurant. Only maintenance staff roam; everyone else may only "switch"
// to the restaurant they are already assigned to.
func CanSwitchTo(profile entities.UserProfile, target entities.RestaurantID) bool {
	if profile.Role == entities.RoleMaintenance {
		return true
	}
	return profile.RestaurantID != nil && *profile.RestaurantID == target
}
