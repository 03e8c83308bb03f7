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

const (
	defaultMaintenanceTableName = "maintenance_requests"
	maintenanceRestaurantIndex  = "restaurant_id-index"
)

type maintenanceItem struct {
	ID                      string   `dynamodbav:"id"`
	Type                    string   `dynamodbav:"type"`
	CreatedAt               string   `dynamodbav:"created_at"`
	UpdatedAt               string   `dynamodbav:"updated_at"`
	CreatedBy               string   `dynamodbav:"created_by"`
	RestaurantID            string   `dynamodbav:"restaurant_id"`
	Status                  string   `dynamodbav:"status"`
	Priority                string   `dynamodbav:"priority"`
	Department              string   `dynamodbav:"department"`
	Comments                string   `dynamodbav:"comments,omitempty"`
	PhotoURLs               []string `dynamodbav:"photo_urls,omitempty"`
	AssignedTo              string   `dynamodbav:"assigned_to,omitempty"`
	Category                string   `dynamodbav:"category"`
	Location                string   `dynamodbav:"location"`
	Description             string   `dynamodbav:"description"`
	EstimatedCompletionDate string   `dynamodbav:"estimated_completion_date,omitempty"`
	ActualCompletionDate    string   `dynamodbav:"actual_completion_date,omitempty"`
}

// MaintenanceDynamoRepository persists maintenance requests in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: restaurant_id-index (PK: restaurant_id)

type MaintenanceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaintenanceRepository = (*MaintenanceDynamoRepository)(nil)

func NewMaintenanceDynamoRepository(ddb *dynamodb.Client) *MaintenanceDynamoRepository {
	return &MaintenanceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MAINTENANCE_TABLE", defaultMaintenanceTableName),
	}
}

func (r *MaintenanceDynamoRepository) Create(ctx context.Context, m entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	av, err := attributevalue.MarshalMap(toMaintenanceItem(m))
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	return m, nil
}

// Update overwrites the stored item; concurrent editors are last-write-wins.
func (r *MaintenanceDynamoRepository) Update(ctx context.Context, m entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	av, err := attributevalue.MarshalMap(toMaintenanceItem(m))
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	return m, nil
}

func (r *MaintenanceDynamoRepository) GetByID(ctx context.Context, id string) (entities.MaintenanceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.MaintenanceRequest{}, nil
	}

	var it maintenanceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	return fromMaintenanceItem(it), nil
}

func (r *MaintenanceDynamoRepository) ListByRestaurant(ctx context.Context, restaurantID entities.RestaurantID, status entities.RequestStatus) ([]entities.MaintenanceRequest, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(maintenanceRestaurantIndex),
		KeyConditionExpression: aws.String("restaurant_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: string(restaurantID)},
		},
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	var reqs []entities.MaintenanceRequest
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it maintenanceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			reqs = append(reqs, fromMaintenanceItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return reqs, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *MaintenanceDynamoRepository) ListAll(ctx context.Context, status entities.RequestStatus) ([]entities.MaintenanceRequest, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	var reqs []entities.MaintenanceRequest
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it maintenanceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			reqs = append(reqs, fromMaintenanceItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return reqs, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toMaintenanceItem(m entities.MaintenanceRequest) maintenanceItem {
	return maintenanceItem{
		ID:                      m.ID,
		Type:                    string(m.Type),
		CreatedAt:               formatTime(m.CreatedAt),
		UpdatedAt:               formatTime(m.UpdatedAt),
		CreatedBy:               m.CreatedBy,
		RestaurantID:            string(m.RestaurantID),
		Status:                  string(m.Status),
		Priority:                string(m.Priority),
		Department:              string(m.Department),
		Comments:                m.Comments,
		PhotoURLs:               m.PhotoURLs,
		AssignedTo:              m.AssignedTo,
		Category:                string(m.Category),
		Location:                m.Location,
		Description:             m.Description,
		EstimatedCompletionDate: formatTimePtr(m.EstimatedCompletionDate),
		ActualCompletionDate:    formatTimePtr(m.ActualCompletionDate),
	}
}

func fromMaintenanceItem(it maintenanceItem) entities.MaintenanceRequest {
	return entities.MaintenanceRequest{
		RequestBase: entities.RequestBase{
			ID:           it.ID,
			Type:         entities.RequestType(it.Type),
			CreatedAt:    parseTime(it.CreatedAt),
			UpdatedAt:    parseTime(it.UpdatedAt),
			CreatedBy:    it.CreatedBy,
			RestaurantID: entities.RestaurantID(it.RestaurantID),
			Status:       entities.RequestStatus(it.Status),
			Priority:     entities.PriorityLevel(it.Priority),
			Department:   entities.Department(it.Department),
			Comments:     it.Comments,
			PhotoURLs:    it.PhotoURLs,
			AssignedTo:   it.AssignedTo,
		},
		Category:                entities.MaintenanceCategory(it.Category),
		Location:                it.Location,
		Description:             it.Description,
		EstimatedCompletionDate: parseTimePtr(it.EstimatedCompletionDate),
		ActualCompletionDate:    parseTimePtr(it.ActualCompletionDate),
	}
}
