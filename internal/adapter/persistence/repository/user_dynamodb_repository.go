package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"resto_requests/internal/domain/entities"
	"resto_requests/internal/usecase/interfaces"
)

const defaultUsersTableName = "users"

type userItem struct {
	UID          string `dynamodbav:"uid"`
	Email        string `dynamodbav:"email"`
	DisplayName  string `dynamodbav:"display_name"`
	Role         string `dynamodbav:"role"`
	RestaurantID string `dynamodbav:"restaurant_id,omitempty"`
	PhotoURL     string `dynamodbav:"photo_url,omitempty"`
}

// UserProfileDynamoRepository persists user profiles in DynamoDB.
//
// Table requirements:
//   - PK: uid (string)

type UserProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserProfileRepository = (*UserProfileDynamoRepository)(nil)

func NewUserProfileDynamoRepository(ddb *dynamodb.Client) *UserProfileDynamoRepository {
	return &UserProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserProfileDynamoRepository) GetByUID(ctx context.Context, uid string) (entities.UserProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"uid": &types.AttributeValueMemberS{Value: uid},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserProfile{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

// Save writes the whole profile, creating or overwriting.
func (r *UserProfileDynamoRepository) Save(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error) {
	av, err := attributevalue.MarshalMap(toUserItem(p))
	if err != nil {
		return entities.UserProfile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	return p, nil
}

func toUserItem(p entities.UserProfile) userItem {
	it := userItem{
		UID:         p.UID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Role:        string(p.Role),
		PhotoURL:    p.PhotoURL,
	}
	if p.RestaurantID != nil {
		it.RestaurantID = string(*p.RestaurantID)
	}
	return it
}

func fromUserItem(it userItem) entities.UserProfile {
	p := entities.UserProfile{
		UID:         it.UID,
		Email:       it.Email,
		DisplayName: it.DisplayName,
		Role:        entities.UserRole(it.Role),
		PhotoURL:    it.PhotoURL,
	}
	if it.RestaurantID != "" {
		rid := entities.RestaurantID(it.RestaurantID)
		p.RestaurantID = &rid
	}
	return p
}
