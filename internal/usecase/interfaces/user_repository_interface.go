package interfaces

import (
	"context"

	"resto_requests/internal/domain/entities"
)

// IUserProfileRepository abstracts DynamoDB persistence for user profiles.
// GetByUID returns a zero profile (empty UID) when none exists.

type IUserProfileRepository interface {
	GetByUID(ctx context.Context, uid string) (entities.UserProfile, error)
	Save(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error)
}
