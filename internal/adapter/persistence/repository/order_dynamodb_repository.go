package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"calistar_backend/internal/domain/entities"
	"calistar_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersPaymentIDIndex   = "payment_id-index"
)

type orderItemAttr struct {
	ProductID string  `dynamodbav:"product_id"`
	Name      string  `dynamodbav:"name"`
	Quantity  int     `dynamodbav:"quantity"`
	UnitPrice float64 `dynamodbav:"unit_price"`
}

type orderCustomerAttr struct {
	Name     string `dynamodbav:"name"`
	Document string `dynamodbav:"document"`
	Email    string `dynamodbav:"email,omitempty"`
	Phone    string `dynamodbav:"phone,omitempty"`
}

type orderItem struct {
	OrderID       string            `dynamodbav:"order_id"`
	PaymentID     string            `dynamodbav:"payment_id"`
	Amount        float64           `dynamodbav:"amount"`
	Items         []orderItemAttr   `dynamodbav:"items,omitempty"`
	Customer      orderCustomerAttr `dynamodbav:"customer"`
	Status        string            `dynamodbav:"status"`
	TransactionID string            `dynamodbav:"transaction_id,omitempty"`
	FreeShipping  bool              `dynamodbav:"free_shipping"`
	CreatedAt     string            `dynamodbav:"created_at"`
	UpdatedAt     string            `dynamodbav:"updated_at"`
	ExpiresAt     string            `dynamodbav:"expires_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - GSI: payment_id-index (PK: payment_id)

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
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#oid)"),
		ExpressionAttributeNames: map[string]string{
			"#oid": "order_id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
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

func (r *OrderDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// UpdateStatus applies a monotonic status transition as a single conditional
// write: the item must exist and its current status must be one of the states
// allowed to precede the target. A failed condition is disambiguated with a
// follow-up read.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, transactionID string) (entities.Order, error) {
	previous := status.AllowedPreviousStatuses()
	if len(previous) == 0 {
		return entities.Order{}, interfaces.ErrOrderTransitionNotAllowed
	}

	names := map[string]string{
		"#oid":    "order_id",
		"#status": "status",
		"#upd":    "updated_at",
	}
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
		":upd":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}

	placeholders := make([]string, 0, len(previous))
	for i, prev := range previous {
		ph := fmt.Sprintf(":prev%d", i)
		placeholders = append(placeholders, ph)
		values[ph] = &types.AttributeValueMemberS{Value: string(prev)}
	}
	condition := fmt.Sprintf("attribute_exists(#oid) AND #status IN (%s)", strings.Join(placeholders, ", "))

	update := "SET #status = :status, #upd = :upd"
	if strings.TrimSpace(transactionID) != "" {
		names["#txn"] = "transaction_id"
		values[":txn"] = &types.AttributeValueMemberS{Value: strings.TrimSpace(transactionID)}
		update += ", #txn = :txn"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			// The condition fails both when the item is missing and when the
			// status disallows the transition; a read tells them apart.
			existing, getErr := r.GetByID(ctx, orderID)
			if getErr != nil {
				return entities.Order{}, getErr
			}
			if existing.OrderID == "" {
				return entities.Order{}, interfaces.ErrOrderNotFound
			}
			return entities.Order{}, interfaces.ErrOrderTransitionNotAllowed
		}
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	items := make([]orderItemAttr, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, orderItemAttr{ProductID: i.ProductID, Name: i.Name, Quantity: i.Quantity, UnitPrice: i.UnitPrice})
	}
	return orderItem{
		OrderID:   o.OrderID,
		PaymentID: o.PaymentID,
		Amount:    o.Amount,
		Items:     items,
		Customer: orderCustomerAttr{
			Name:     o.Customer.Name,
			Document: o.Customer.Document,
			Email:    o.Customer.Email,
			Phone:    o.Customer.Phone,
		},
		Status:        string(o.Status),
		TransactionID: o.TransactionID,
		FreeShipping:  o.FreeShipping,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:     o.ExpiresAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, i := range it.Items {
		items = append(items, entities.OrderItem{ProductID: i.ProductID, Name: i.Name, Quantity: i.Quantity, UnitPrice: i.UnitPrice})
	}
	return entities.Order{
		OrderID:   it.OrderID,
		PaymentID: it.PaymentID,
		Amount:    it.Amount,
		Items:     items,
		Customer: entities.OrderCustomer{
			Name:     it.Customer.Name,
			Document: it.Customer.Document,
			Email:    it.Customer.Email,
			Phone:    it.Customer.Phone,
		},
		Status:        entities.OrderStatus(it.Status),
		TransactionID: it.TransactionID,
		FreeShipping:  it.FreeShipping,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
		ExpiresAt:     parseTime(it.ExpiresAt),
	}
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
