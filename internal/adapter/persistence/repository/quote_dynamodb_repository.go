package repository

import (
	"context"
	"errors"
	"time"

	"yuanli_transport/internal/domain/entities"
	"yuanli_transport/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "yuanli_quotes"

type customerItem struct {
	Company string `dynamodbav:"company"`
	Name    string `dynamodbav:"name"`
	Phone   string `dynamodbav:"phone"`
	Email   string `dynamodbav:"email"`
}

type shippingItem struct {
	OriginCity    string `dynamodbav:"origin_city"`
	OriginAddress string `dynamodbav:"origin_address"`
	DestCity      string `dynamodbav:"dest_city"`
	DestAddress   string `dynamodbav:"dest_address"`
	CargoType     string `dynamodbav:"cargo_type"`
	Weight        string `dynamodbav:"weight"`
	PickupDate    string `dynamodbav:"pickup_date"`
	PickupTime    string `dynamodbav:"pickup_time"`
	DeliveryDate  string `dynamodbav:"delivery_date"`
	DeliveryTime  string `dynamodbav:"delivery_time"`
}

type vehicleItem struct {
	Type            string   `dynamodbav:"type"`
	IsRecommended   bool     `dynamodbav:"is_recommended"`
	SpecialRequests []string `dynamodbav:"special_requests"`
	Notes           string   `dynamodbav:"notes"`
}

type businessItem struct {
	Price         *string `dynamodbav:"price"`
	Handler       *string `dynamodbav:"handler"`
	InternalNotes *string `dynamodbav:"internal_notes"`
}

type quoteItem struct {
	ID        string       `dynamodbav:"id"`
	Source    string       `dynamodbav:"source"`
	Status    string       `dynamodbav:"status"`
	CreatedAt string       `dynamodbav:"created_at"`
	UpdatedAt string       `dynamodbav:"updated_at"`
	Customer  customerItem `dynamodbav:"customer"`
	Shipping  shippingItem `dynamodbav:"shipping"`
	Vehicle   vehicleItem  `dynamodbav:"vehicle"`
	Business  businessItem `dynamodbav:"business"`
	Version   int64        `dynamodbav:"version"`
}

// QuoteDynamoRepository persists Quote records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every write is a single-item conditional operation: creates require the id
// to be absent, updates require the stored version to match the caller's
// copy, so two admin sessions cannot silently overwrite each other.
//
// On the very first List against an empty table the repository seeds the
// fixture records the admin console ships with.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	var quotes []entities.Quote
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	if len(quotes) == 0 {
		return r.seed(ctx)
	}
	return quotes, nil
}

// seed writes the fixture records. Conditional puts keep it idempotent when
// two first loads race.
func (r *QuoteDynamoRepository) seed(ctx context.Context) ([]entities.Quote, error) {
	fixtures := FixtureQuotes(time.Now().UTC())
	for _, q := range fixtures {
		if _, err := r.Create(ctx, q); err != nil {
			return nil, err
		}
	}
	return fixtures, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// ID already taken; the caller regenerates.
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	expected := q.Version
	q.Version = expected + 1

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: formatInt(expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, gerr := r.GetByID(ctx, q.ID)
			if gerr != nil {
				return entities.Quote{}, gerr
			}
			if existing.ID == "" {
				return entities.Quote{}, nil
			}
			return entities.Quote{}, entities.ErrVersionConflict
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:        q.ID,
		Source:    string(q.Source),
		Status:    string(q.Status),
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Customer:  customerItem(q.Customer),
		Shipping:  shippingItem(q.Shipping),
		Vehicle:   vehicleItem(q.Vehicle),
		Business:  businessItem(q.Business),
		Version:   q.Version,
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quote{
		ID:        it.ID,
		Source:    entities.QuoteSource(it.Source),
		Status:    entities.QuoteStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Customer:  entities.Customer(it.Customer),
		Shipping:  entities.Shipping(it.Shipping),
		Vehicle:   entities.Vehicle(it.Vehicle),
		Business:  entities.Business(it.Business),
		Version:   it.Version,
	}
}
