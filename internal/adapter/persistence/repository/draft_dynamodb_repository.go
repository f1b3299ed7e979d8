package repository

import (
	"context"
	"time"

	"yuanli_transport/internal/domain/entities"
	"yuanli_transport/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDraftsTableName = "yuanli_inquiry_drafts"

	// The public form has exactly one autosave slot.
	draftSlotKey = "draft"
)

type draftItem struct {
	Slot            string   `dynamodbav:"slot"`
	Company         string   `dynamodbav:"company"`
	Name            string   `dynamodbav:"name"`
	Phone           string   `dynamodbav:"phone"`
	Email           string   `dynamodbav:"email"`
	OriginCity      string   `dynamodbav:"origin_city"`
	OriginAddress   string   `dynamodbav:"origin_address"`
	DestCity        string   `dynamodbav:"dest_city"`
	DestAddress     string   `dynamodbav:"dest_address"`
	CargoType       string   `dynamodbav:"cargo_type"`
	CargoDetails    string   `dynamodbav:"cargo_details"`
	PickupDate      string   `dynamodbav:"pickup_date"`
	PickupTime      string   `dynamodbav:"pickup_time"`
	DeliveryDate    string   `dynamodbav:"delivery_date"`
	DeliveryTime    string   `dynamodbav:"delivery_time"`
	VehicleMode     string   `dynamodbav:"vehicle_mode"`
	SpecificVehicle string   `dynamodbav:"specific_vehicle"`
	SpecialNeeds    []string `dynamodbav:"special_needs"`
	Notes           string   `dynamodbav:"notes"`
	Agreed          bool     `dynamodbav:"agreed"`
	SavedAt         string   `dynamodbav:"saved_at"`
}

// DraftDynamoRepository stores the inquiry-form autosave slot as a single
// fixed-key item. Put overwrites unconditionally; a missing item reads back
// as an empty draft.

type DraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb *dynamodb.Client) *DraftDynamoRepository {
	return &DraftDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRAFTS_TABLE", defaultDraftsTableName),
	}
}

func (r *DraftDynamoRepository) Get(ctx context.Context) (entities.InquiryDraft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slot": &types.AttributeValueMemberS{Value: draftSlotKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InquiryDraft{}, err
	}
	if len(out.Item) == 0 {
		return entities.InquiryDraft{}, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InquiryDraft{}, err
	}
	return fromDraftItem(it), nil
}

func (r *DraftDynamoRepository) Put(ctx context.Context, d entities.InquiryDraft) error {
	av, err := attributevalue.MarshalMap(toDraftItem(d))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *DraftDynamoRepository) Clear(ctx context.Context) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slot": &types.AttributeValueMemberS{Value: draftSlotKey},
		},
	})
	return err
}

func toDraftItem(d entities.InquiryDraft) draftItem {
	return draftItem{
		Slot:            draftSlotKey,
		Company:         d.Company,
		Name:            d.Name,
		Phone:           d.Phone,
		Email:           d.Email,
		OriginCity:      d.OriginCity,
		OriginAddress:   d.OriginAddress,
		DestCity:        d.DestCity,
		DestAddress:     d.DestAddress,
		CargoType:       d.CargoType,
		CargoDetails:    d.CargoDetails,
		PickupDate:      d.PickupDate,
		PickupTime:      d.PickupTime,
		DeliveryDate:    d.DeliveryDate,
		DeliveryTime:    d.DeliveryTime,
		VehicleMode:     d.VehicleMode,
		SpecificVehicle: d.SpecificVehicle,
		SpecialNeeds:    d.SpecialNeeds,
		Notes:           d.Notes,
		Agreed:          d.Agreed,
		SavedAt:         d.SavedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDraftItem(it draftItem) entities.InquiryDraft {
	savedAt, _ := time.Parse(time.RFC3339Nano, it.SavedAt)
	return entities.InquiryDraft{
		Company:         it.Company,
		Name:            it.Name,
		Phone:           it.Phone,
		Email:           it.Email,
		OriginCity:      it.OriginCity,
		OriginAddress:   it.OriginAddress,
		DestCity:        it.DestCity,
		DestAddress:     it.DestAddress,
		CargoType:       it.CargoType,
		CargoDetails:    it.CargoDetails,
		PickupDate:      it.PickupDate,
		PickupTime:      it.PickupTime,
		DeliveryDate:    it.DeliveryDate,
		DeliveryTime:    it.DeliveryTime,
		VehicleMode:     it.VehicleMode,
		SpecificVehicle: it.SpecificVehicle,
		SpecialNeeds:    it.SpecialNeeds,
		Notes:           it.Notes,
		Agreed:          it.Agreed,
		SavedAt:         savedAt,
	}
}
