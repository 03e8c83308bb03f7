package interfaces

import (
	"context"

	"resto_requests/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for the
// notification records emitted when requests are created.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
}
