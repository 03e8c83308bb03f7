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
	defaultOrdersTableName = "orders"
	ordersRestaurantIndex  = "restaurant_id-index"
)

type orderLine struct {
	Name     string `dynamodbav:"name"`
	Quantity int    `dynamodbav:"quantity"`
	Unit     string `dynamodbav:"unit"`
	Notes    string `dynamodbav:"notes,omitempty"`
}

type orderItem struct {
	ID                    string      `dynamodbav:"id"`
	Type                  string      `dynamodbav:"type"`
	CreatedAt             string      `dynamodbav:"created_at"`
	UpdatedAt             string      `dynamodbav:"updated_at"`
	CreatedBy             string      `dynamodbav:"created_by"`
	RestaurantID          string      `dynamodbav:"restaurant_id"`
	Status                string      `dynamodbav:"status"`
	Priority              string      `dynamodbav:"priority"`
	Department            string      `dynamodbav:"department"`
	Comments              string      `dynamodbav:"comments,omitempty"`
	PhotoURLs             []string    `dynamodbav:"photo_urls,omitempty"`
	AssignedTo            string      `dynamodbav:"assigned_to,omitempty"`
	Category              string      `dynamodbav:"category"`
	Items                 []orderLine `dynamodbav:"items"`
	IsRecurring           bool        `dynamodbav:"is_recurring"`
	RecurringFrequency    string      `dynamodbav:"recurring_frequency,omitempty"`
	EstimatedDeliveryDate string      `dynamodbav:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    string      `dynamodbav:"actual_delivery_date,omitempty"`
}

// OrderDynamoRepository persists supply orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: restaurant_id-index (PK: restaurant_id)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

// Update overwrites the stored item; concurrent editors are last-write-wins.
func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByRestaurant(ctx context.Context, restaurantID entities.RestaurantID, status entities.RequestStatus) ([]entities.Order, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersRestaurantIndex),
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

	var orders []entities.Order
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return orders, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context, status entities.RequestStatus) ([]entities.Order, error) {
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

	var orders []entities.Order
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return orders, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLine, 0, len(o.Items))
	for _, line := range o.Items {
		lines = append(lines, orderLine(line))
	}
	return orderItem{
		ID:                    o.ID,
		Type:                  string(o.Type),
		CreatedAt:             formatTime(o.CreatedAt),
		UpdatedAt:             formatTime(o.UpdatedAt),
		CreatedBy:             o.CreatedBy,
		RestaurantID:          string(o.RestaurantID),
		Status:                string(o.Status),
		Priority:              string(o.Priority),
		Department:            string(o.Department),
		Comments:              o.Comments,
		PhotoURLs:             o.PhotoURLs,
		AssignedTo:            o.AssignedTo,
		Category:              string(o.Category),
		Items:                 lines,
		IsRecurring:           o.IsRecurring,
		RecurringFrequency:    string(o.RecurringFrequency),
		EstimatedDeliveryDate: formatTimePtr(o.EstimatedDeliveryDate),
		ActualDeliveryDate:    formatTimePtr(o.ActualDeliveryDate),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.OrderItem(line))
	}
	return entities.Order{
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
		Category:              entities.OrderCategory(it.Category),
		Items:                 items,
		IsRecurring:           it.IsRecurring,
		RecurringFrequency:    entities.RecurringFrequency(it.RecurringFrequency),
		EstimatedDeliveryDate: parseTimePtr(it.EstimatedDeliveryDate),
		ActualDeliveryDate:    parseTimePtr(it.ActualDeliveryDate),
	}
}
