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
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrderItems    = errors.New("order needs at least one item")
	ErrInvalidOrderInput  = errors.New("invalid order input")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidRecurrence  = errors.New("invalid recurring frequency")
)

// NewOrderInput is what a creation form submits. Status and timestamps are
// never accepted from the caller; they are forced server-side.

type NewOrderInput struct {
	Category              entities.OrderCategory
	Items                 []entities.OrderItem
	Priority              entities.PriorityLevel
	Department            entities.Department
	Comments              string
	PhotoURLs             []string
	IsRecurring           bool
	RecurringFrequency    entities.RecurringFrequency
	EstimatedDeliveryDate *time.Time
}

// OrderPatch is a partial edit. Nil fields are left untouched; the immutable
// fields (id, type, creator, restaurant, creation time) have no counterpart
// here on purpose.

type OrderPatch struct {
	Status                *entities.RequestStatus
	Priority              *entities.PriorityLevel
	Comments              *string
	PhotoURLs             *[]string
	AssignedTo            *string
	Items                 *[]entities.OrderItem
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
}

// IOrderUseCase exposes the supply-order operations.

type IOrderUseCase interface {
	Create(ctx context.Context, actor entities.UserProfile, in NewOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, actor entities.UserProfile, id string) (entities.Order, error)
	Update(ctx context.Context, actor entities.UserProfile, id string, patch OrderPatch) (entities.Order, error)
	List(ctx context.Context, actor entities.UserProfile, filters RequestFilters) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo          interfaces.IOrderRepository
	notifications interfaces.INotificationRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, notifications interfaces.INotificationRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, notifications: notifications}
}

func (u *OrderUseCase) Create(ctx context.Context, actor entities.UserProfile, in NewOrderInput) (entities.Order, error) {
	if actor.RestaurantID == nil {
		return entities.Order{}, ErrNoRestaurantAssigned
	}
	if len(in.Items) == 0 {
		return entities.Order{}, ErrEmptyOrderItems
	}
	for _, item := range in.Items {
		if item.Name == "" || item.Quantity <= 0 || item.Unit == "" {
			return entities.Order{}, ErrInvalidOrderInput
		}
	}
	if !in.Category.Valid() || !in.Priority.Valid() || !in.Department.Valid() {
		return entities.Order{}, ErrInvalidOrderInput
	}
	if in.IsRecurring && !in.RecurringFrequency.Valid() {
		return entities.Order{}, ErrInvalidRecurrence
	}
	if !in.IsRecurring {
		in.RecurringFrequency = ""
	}

	now := time.Now().UTC()
	o := entities.Order{
		RequestBase: entities.RequestBase{
			ID:           uuid.NewString(),
			Type:         entities.RequestTypeOrder,
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
		Category:              in.Category,
		Items:                 in.Items,
		IsRecurring:           in.IsRecurring,
		RecurringFrequency:    in.RecurringFrequency,
		EstimatedDeliveryDate: in.EstimatedDeliveryDate,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		logger.Errorf("[orders][usecase] create failed restaurant=%s err=%v", o.RestaurantID, err)
		return entities.Order{}, err
	}
	logger.Infof("[orders][usecase] created order_id=%s restaurant=%s category=%s", created.ID, created.RestaurantID, created.Category)

	u.notify(ctx, created)
	return created, nil
}

// notify emits the maintenance-staff notification for a new order. The two
// writes are not transactional; a failed notification is logged and accepted.
func (u *OrderUseCase) notify(ctx context.Context, o entities.Order) {
	n := entities.Notification{
		ID:        uuid.NewString(),
		UserID:    entities.NotificationAudienceMaintenance,
		Title:     "New order",
		Message:   o.RestaurantID.Name() + " - " + string(o.Category),
		CreatedAt: time.Now().UTC(),
		RelatedTo: entities.NotificationTarget{Type: entities.RequestTypeOrder, ID: o.ID},
	}
	if _, err := u.notifications.Create(ctx, n); err != nil {
		logger.Warnf("[orders][usecase] notification write failed order_id=%s err=%v", o.ID, err)
	}
}

func (u *OrderUseCase) GetByID(ctx context.Context, actor entities.UserProfile, id string) (entities.Order, error) {
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" || !access.CanView(actor, o.RequestBase) {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) Update(ctx context.Context, actor entities.UserProfile, id string, patch OrderPatch) (entities.Order, error) {
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !access.CanEdit(actor, o.RequestBase) {
		logger.Warnf("[orders][usecase] edit rejected order_id=%s uid=%s role=%s", o.ID, actor.UID, actor.Role)
		return entities.Order{}, ErrEditNotAllowed
	}

	if patch.Status != nil {
		if !patch.Status.Valid() {
			return entities.Order{}, ErrInvalidOrderStatus
		}
		o.Status = *patch.Status
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return entities.Order{}, ErrInvalidOrderInput
		}
		o.Priority = *patch.Priority
	}
	if patch.Comments != nil {
		o.Comments = *patch.Comments
	}
	if patch.PhotoURLs != nil {
		o.PhotoURLs = *patch.PhotoURLs
	}
	if patch.AssignedTo != nil {
		o.AssignedTo = *patch.AssignedTo
	}
	if patch.Items != nil {
		if len(*patch.Items) == 0 {
			return entities.Order{}, ErrEmptyOrderItems
		}
		o.Items = *patch.Items
	}
	if patch.EstimatedDeliveryDate != nil {
		o.EstimatedDeliveryDate = patch.EstimatedDeliveryDate
	}
	if patch.ActualDeliveryDate != nil {
		o.ActualDeliveryDate = patch.ActualDeliveryDate
	}
	o.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		logger.Errorf("[orders][usecase] update failed order_id=%s err=%v", o.ID, err)
		return entities.Order{}, err
	}
	logger.Infof("[orders][usecase] updated order_id=%s status=%s by=%s", updated.ID, updated.Status, actor.UID)
	return updated, nil
}

func (u *OrderUseCase) List(ctx context.Context, actor entities.UserProfile, filters RequestFilters) ([]entities.Order, error) {
	scope := access.ResolveScope(actor)

	var (
		orders []entities.Order
		err    error
	)
	if scope.All {
		orders, err = u.repo.ListAll(ctx, filters.Status)
	} else {
		orders, err = u.repo.ListByRestaurant(ctx, scope.RestaurantID, filters.Status)
	}
	if err != nil {
		return nil, err
	}

	orders = query.FilterByScope(orders, scope)
	orders = query.FilterByPredicates(orders, filters.predicates())
	return query.SortBy(orders, filters.SortKey, filters.SortDir), nil
}
