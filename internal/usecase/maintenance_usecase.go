package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"resto_requests/internal/domain/access"
	"resto_requests/internal/domain/entities"
	"resto_requests/internal/domain/query"
	"resto_requests/internal/infrastructure/logger"
	"resto_requests/internal/usecase/interfaces"
)

var (
	ErrMaintenanceNotFound     = errors.New("maintenance request not found")
	ErrInvalidMaintenanceInput = errors.New("invalid maintenance request input")
)

// NewMaintenanceInput is what a fault-report form submits.

type NewMaintenanceInput struct {
	Category                entities.MaintenanceCategory
	Location                string
	Description             string
	Priority                entities.PriorityLevel
	Department              entities.Department
	Comments                string
	PhotoURLs               []string
	EstimatedCompletionDate *time.Time
}

// MaintenancePatch is a partial edit; nil fields are left untouched.

type MaintenancePatch struct {
	Status                  *entities.RequestStatus
	Priority                *entities.PriorityLevel
	Comments                *string
	PhotoURLs               *[]string
	AssignedTo              *string
	Location                *string
	Description             *string
	EstimatedCompletionDate *time.Time
	ActualCompletionDate    *time.Time
}

// IMaintenanceUseCase exposes the maintenance-ticket operations.

type IMaintenanceUseCase interface {
	Create(ctx context.Context, actor entities.UserProfile, in NewMaintenanceInput) (entities.MaintenanceRequest, error)
	GetByID(ctx context.Context, actor entities.UserProfile, id string) (entities.MaintenanceRequest, error)
	Update(ctx context.Context, actor entities.UserProfile, id string, patch MaintenancePatch) (entities.MaintenanceRequest, error)
	List(ctx context.Context, actor entities.UserProfile, filters RequestFilters) ([]entities.MaintenanceRequest, error)
}

type MaintenanceUseCase struct {
	repo          interfaces.IMaintenanceRepository
	notifications interfaces.INotificationRepository
}

var _ IMaintenanceUseCase = (*MaintenanceUseCase)(nil)

func NewMaintenanceUseCase(repo interfaces.IMaintenanceRepository, notifications interfaces.INotificationRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, notifications: notifications}
}

func (u *MaintenanceUseCase) Create(ctx context.Context, actor entities.UserProfile, in NewMaintenanceInput) (entities.MaintenanceRequest, error) {
	if actor.RestaurantID == nil {
		return entities.MaintenanceRequest{}, ErrNoRestaurantAssigned
	}
	if in.Location == "" || in.Description == "" {
		return entities.MaintenanceRequest{}, ErrInvalidMaintenanceInput
	}
	if !in.Category.Valid() || !in.Priority.Valid() || !in.Department.Valid() {
		return entities.MaintenanceRequest{}, ErrInvalidMaintenanceInput
	}

	now := time.Now().UTC()
	m := entities.MaintenanceRequest{
		RequestBase: entities.RequestBase{
			ID:           uuid.NewString(),
			Type:         entities.RequestTypeMaintenance,
			CreatedAt:    now,
			UpdatedAt:    now,
			CreatedBy:    actor.UID,
			RestaurantID: *actor.RestaurantID,
			Status:       entities.StatusPending,
			Priority:     in.Priority,
			Department:   in.Department,
			Comments:     in.Comments,
			PhotoURLs:    in.PhotoURLs,
		},
		Category:                in.Category,
		Location:                in.Location,
		Description:             in.Description,
		EstimatedCompletionDate: in.EstimatedCompletionDate,
	}

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		logger.Errorf("[maintenance][usecase] create failed restaurant=%s err=%v", m.RestaurantID, err)
		return entities.MaintenanceRequest{}, err
	}
	logger.Infof("[maintenance][usecase] created request_id=%s restaurant=%s category=%s", created.ID, created.RestaurantID, created.Category)

	u.notify(ctx, created)
	return created, nil
}

// notify emits the maintenance-staff notification for a new ticket. Same
// accepted partial-write gap as for orders.
func (u *MaintenanceUseCase) notify(ctx context.Context, m entities.MaintenanceRequest) {
	n := entities.Notification{
		ID:        uuid.NewString(),
		UserID:    entities.NotificationAudienceMaintenance,
		Title:     "New maintenance request",
		Message:   m.RestaurantID.Name() + " - " + string(m.Category),
		CreatedAt: time.Now().UTC(),
		RelatedTo: entities.NotificationTarget{Type: entities.RequestTypeMaintenance, ID: m.ID},
	}
	if _, err := u.notifications.Create(ctx, n); err != nil {
		logger.Warnf("[maintenance][usecase] notification write failed request_id=%s err=%v", m.ID, err)
	}
}

func (u *MaintenanceUseCase) GetByID(ctx context.Context, actor entities.UserProfile, id string) (entities.MaintenanceRequest, error) {
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if m.ID == "" || !access.CanView(actor, m.RequestBase) {
		return entities.MaintenanceRequest{}, ErrMaintenanceNotFound
	}
	return m, nil
}

func (u *MaintenanceUseCase) Update(ctx context.Context, actor entities.UserProfile, id string, patch MaintenancePatch) (entities.MaintenanceRequest, error) {
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if m.ID == "" {
		return entities.MaintenanceRequest{}, ErrMaintenanceNotFound
	}
	if !access.CanEdit(actor, m.RequestBase) {
		logger.Warnf("[maintenance][usecase] edit rejected request_id=%s uid=%s role=%s", m.ID, actor.UID, actor.Role)
		return entities.MaintenanceRequest{}, ErrEditNotAllowed
	}

	if patch.Status != nil {
		if !patch.Status.Valid() {
			return entities.MaintenanceRequest{}, ErrInvalidMaintenanceInput
		}
		m.Status = *patch.Status
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return entities.MaintenanceRequest{}, ErrInvalidMaintenanceInput
		}
		m.Priority = *patch.Priority
	}
	if patch.Comments != nil {
		m.Comments = *patch.Comments
	}
	if patch.PhotoURLs != nil {
		m.PhotoURLs = *patch.PhotoURLs
	}
	if patch.AssignedTo != nil {
		m.AssignedTo = *patch.AssignedTo
	}
	if patch.Location != nil {
		if *patch.Location == "" {
			return entities.MaintenanceRequest{}, ErrInvalidMaintenanceInput
		}
		m.Location = *patch.Location
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			return entities.MaintenanceRequest{}, ErrInvalidMaintenanceInput
		}
		m.Description = *patch.Description
	}
	if patch.EstimatedCompletionDate != nil {
		m.EstimatedCompletionDate = patch.EstimatedCompletionDate
	}
	if patch.ActualCompletionDate != nil {
		m.ActualCompletionDate = patch.ActualCompletionDate
	}
	m.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		logger.Errorf("[maintenance][usecase] update failed request_id=%s err=%v", m.ID, err)
		return entities.MaintenanceRequest{}, err
	}
	logger.Infof("[maintenance][usecase] updated request_id=%s status=%s by=%s", updated.ID, updated.Status, actor.UID)
	return updated, nil
}

func (u *MaintenanceUseCase) List(ctx context.Context, actor entities.UserProfile, filters RequestFilters) ([]entities.MaintenanceRequest, error) {
	scope := access.ResolveScope(actor)

	var (
		reqs []entities.MaintenanceRequest
		err  error
	)
	if scope.All {
		reqs, err = u.repo.ListAll(ctx, filters.Status)
	} else {
		reqs, err = u.repo.ListByRestaurant(ctx, scope.RestaurantID, filters.Status)
	}
	if err != nil {
		return nil, err
	}

	reqs = query.FilterByScope(reqs, scope)
	reqs = query.FilterByPredicates(reqs, filters.predicates())
	return query.SortBy(reqs, filters.SortKey, filters.SortDir), nil
}
