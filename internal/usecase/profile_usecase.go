package usecase

import (
	"context"
	"errors"
	"strings"

	"resto_requests/internal/domain/access"
	"resto_requests/internal/domain/entities"
	"resto_requests/internal/infrastructure/logger"
	"resto_requests/internal/usecase/interfaces"
)

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrUnknownRestaurant   = errors.New("unknown restaurant")
	ErrSwitchNotAllowed    = errors.New("restaurant switch not allowed")
	ErrInvalidProfilePatch = errors.New("invalid profile input")
)

// ProfilePatch edits the mutable profile fields. Role and restaurant
// assignment are not part of it; the active restaurant changes only through
// SwitchRestaurant.

type ProfilePatch struct {
	DisplayName *string
	PhotoURL    *string
}

// IProfileUseCase exposes profile reads, edits and the active-restaurant
// switch. ResolveIdentity backs the identity middleware: it returns the
// stored profile for a set of token claims, creating a default employee
// profile the first time an account is seen.

type IProfileUseCase interface {
	ResolveIdentity(ctx context.Context, uid, email, displayName string) (entities.UserProfile, error)
	Get(ctx context.Context, uid string) (entities.UserProfile, error)
	UpdateProfile(ctx context.Context, actor entities.UserProfile, patch ProfilePatch) (entities.UserProfile, error)
	SwitchRestaurant(ctx context.Context, actor entities.UserProfile, target entities.RestaurantID) (entities.UserProfile, error)
}

type ProfileUseCase struct {
	repo interfaces.IUserProfileRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IUserProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

func (u *ProfileUseCase) ResolveIdentity(ctx context.Context, uid, email, displayName string) (entities.UserProfile, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return entities.UserProfile{}, ErrProfileNotFound
	}

	p, err := u.repo.GetByUID(ctx, uid)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if p.UID != "" {
		return p, nil
	}

	// First time this account shows up: store a default employee profile.
	// The restaurant assignment happens at registration, out of band.
	p = entities.UserProfile{
		UID:         uid,
		Email:       email,
		DisplayName: displayName,
		Role:        entities.RoleEmployee,
	}
	created, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.UserProfile{}, err
	}
	logger.Infof("[profile][usecase] created default profile uid=%s", uid)
	return created, nil
}

func (u *ProfileUseCase) Get(ctx context.Context, uid string) (entities.UserProfile, error) {
	p, err := u.repo.GetByUID(ctx, uid)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if p.UID == "" {
		return entities.UserProfile{}, ErrProfileNotFound
	}
	return p, nil
}

func (u *ProfileUseCase) UpdateProfile(ctx context.Context, actor entities.UserProfile, patch ProfilePatch) (entities.UserProfile, error) {
	if patch.DisplayName != nil {
		if strings.TrimSpace(*patch.DisplayName) == "" {
			return entities.UserProfile{}, ErrInvalidProfilePatch
		}
		actor.DisplayName = *patch.DisplayName
	}
	if patch.PhotoURL != nil {
		actor.PhotoURL = *patch.PhotoURL
	}
	return u.repo.Save(ctx, actor)
}

func (u *ProfileUseCase) SwitchRestaurant(ctx context.Context, actor entities.UserProfile, target entities.RestaurantID) (entities.UserProfile, error) {
	if !target.Valid() {
		return entities.UserProfile{}, ErrUnknownRestaurant
	}
	if !access.CanSwitchTo(actor, target) {
		logger.Warnf("[profile][usecase] switch rejected uid=%s role=%s target=%s", actor.UID, actor.Role, target)
		return entities.UserProfile{}, ErrSwitchNotAllowed
	}

	actor.RestaurantID = &target
	updated, err := u.repo.Save(ctx, actor)
	if err != nil {
		return entities.UserProfile{}, err
	}
	logger.Infof("[profile][usecase] active restaurant set uid=%s restaurant=%s", actor.UID, target)
	return updated, nil
}
