package interfaces

import (
	"context"

	"resto_requests/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for supply orders.
//
// List operations only narrow by the server-side equality predicates the
// store supports (restaurant, status); callers sort and filter further in
// memory. An empty status means "any status".

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID entities.RestaurantID, status entities.RequestStatus) ([]entities.Order, error)
	ListAll(ctx context.Context, status entities.RequestStatus) ([]entities.Order, error)
}
