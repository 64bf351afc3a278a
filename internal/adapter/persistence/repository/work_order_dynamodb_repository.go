package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkOrdersTableName = "work_orders"
	workOrdersClientRefIndex   = "client_ref-index"
)

// WorkOrderDynamoRepository persists WorkOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_ref-index (PK: client_ref)
//
// Every update is conditional on the version that was read, so two writers
// computing their array patches from the same stale copy cannot both win.

type WorkOrderDynamoRepository struct {
	ddb       WorkOrderDynamoAPI
	tableName string
	now       func() time.Time
}

// WorkOrderDynamoAPI is the part of *dynamodb.Client the repository calls.
type WorkOrderDynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	dynamodb.QueryAPIClient
}

var (
	_ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)
	_ WorkOrderDynamoAPI              = (*dynamodb.Client)(nil)
)

func NewWorkOrderDynamoRepository(ddb WorkOrderDynamoAPI, tableName string) *WorkOrderDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName)
	}
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	if wo.Version == 0 {
		wo.Version = 1
	}
	av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return entities.WorkOrder{}, err
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
			return entities.WorkOrder{}, interfaces.ErrWorkOrderExists
		}
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) ListByClient(ctx context.Context, clientRef string) ([]entities.WorkOrder, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workOrdersClientRefIndex),
		KeyConditionExpression: aws.String("client_ref = :cref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cref": &types.AttributeValueMemberS{Value: clientRef},
		},
	})

	items := make([]entities.WorkOrder, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it workOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromWorkOrderItem(it))
		}
	}
	return items, nil
}

// Update applies a partial patch. Attributes absent from the patch are left
// untouched by DynamoDB itself.
func (r *WorkOrderDynamoRepository) Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	b, err := buildPatchUpdate(patch, r.now())
	if err != nil {
		return entities.WorkOrder{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #version = :expected_version"),
		UpdateExpression:                    aws.String(b.expression()),
		ExpressionAttributeValues:           b.values,
		ExpressionAttributeNames:            mergeNames(b.names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.WorkOrder{}, interfaces.ErrWorkOrderMissing
			}
			return entities.WorkOrder{}, interfaces.ErrVersionConflict
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, interfaces.ErrWorkOrderMissing
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

type updateBuilder struct {
	sets    []string
	removes []string
	names   map[string]string
	values  map[string]types.AttributeValue
	err     error
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{
		names:  map[string]string{},
		values: map[string]types.AttributeValue{},
	}
}

func (b *updateBuilder) set(attr string, v any) {
	if b.err != nil {
		return
	}
	av, err := attributevalue.Marshal(v)
	if err != nil {
		b.err = fmt.Errorf("marshal %s: %w", attr, err)
		return
	}
	b.names["#"+attr] = attr
	b.values[":"+attr] = av
	b.sets = append(b.sets, fmt.Sprintf("#%s = :%s", attr, attr))
}

func (b *updateBuilder) remove(attr string) {
	b.names["#"+attr] = attr
	b.removes = append(b.removes, "#"+attr)
}

func (b *updateBuilder) expression() string {
	expr := "SET " + strings.Join(b.sets, ", ")
	if len(b.removes) > 0 {
		expr += " REMOVE " + strings.Join(b.removes, ", ")
	}
	return expr
}

func buildPatchUpdate(p entities.WorkOrderPatch, now time.Time) (*updateBuilder, error) {
	b := newUpdateBuilder()
	if p.Status != nil {
		b.set("status", string(*p.Status))
	}
	if p.Priority != nil {
		b.set("priority", string(*p.Priority))
	}
	if p.DueDate != nil {
		b.set("due_date", formatTime(*p.DueDate))
	}
	if p.ClientPrice != nil {
		b.set("client_price", p.ClientPrice.String())
	}
	if p.VendorPrice != nil {
		b.set("vendor_price", p.VendorPrice.String())
	}
	if p.NTERequests != nil {
		b.set("nte_requests", toNTERequestItems(*p.NTERequests))
	}
	if p.ClientNotes != nil {
		b.set("client_notes", toClientNoteItems(*p.ClientNotes))
	}
	if p.Activity != nil {
		b.set("activity", toActivityItems(*p.Activity))
	}
	if p.Images != nil {
		b.set("images", nonNilStrings(*p.Images))
	}
	switch {
	case p.CancelDetails != nil:
		b.set("cancel_details", toCancelDetailsItem(p.CancelDetails))
	case p.ClearCancelDetails:
		b.remove("cancel_details")
	}
	switch {
	case p.ReopenDetails != nil:
		b.set("reopen_details", toReopenDetailsItem(p.ReopenDetails))
	case p.ClearReopenDetails:
		b.remove("reopen_details")
	}
	b.set("version", p.ExpectedVersion+1)
	b.set("updated_at", formatTime(now))
	if b.err != nil {
		return nil, b.err
	}
	b.values[":expected_version"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(p.ExpectedVersion, 10)}
	return b, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
