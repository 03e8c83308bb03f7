package interfaces

import (
	"context"

	"resto_requests/internal/domain/entities"
)

// IMaintenanceRepository abstracts DynamoDB persistence for maintenance
// requests. Same contract shape as IOrderRepository.

type IMaintenanceRepository interface {
	Create(ctx context.Context, m entities.MaintenanceRequest) (entities.MaintenanceRequest, error)
	GetByID(ctx context.Context, id string) (entities.MaintenanceRequest, error)
	Update(ctx context.Context, m entities.MaintenanceRequest) (entities.MaintenanceRequest, error)
	ListByRestaurant(ctx context.Context, restaurantID entities.RestaurantID, status entities.RequestStatus) ([]entities.MaintenanceRequest, error)
	ListAll(ctx context.Context, status entities.RequestStatus) ([]entities.MaintenanceRequest, error)
}
