package repository

import (
	"context"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type transferRequestItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	UserName    string `dynamodbav:"user_name"`
	UserPhone   string `dynamodbav:"user_phone"`
	CourseID    string `dynamodbav:"course_id"`
	CourseTitle string `dynamodbav:"course_title"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// TransferRequestDynamoRepository persists bank transfer requests.
//
// Table requirements:
//   - PK: id (string)
type TransferRequestDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITransferRequestRepository = (*TransferRequestDynamoRepository)(nil)

func NewTransferRequestDynamoRepository(ddb DynamoAPI, tableName string) *TransferRequestDynamoRepository {
	return &TransferRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TransferRequestDynamoRepository) Create(ctx context.Context, t entities.TransferRequest) (entities.TransferRequest, error) {
	av, err := attributevalue.MarshalMap(toTransferRequestItem(t))
	if err != nil {
		return entities.TransferRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.TransferRequest{}, err
	}
	return t, nil
}

func (r *TransferRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.TransferRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": stringAttr(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TransferRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.TransferRequest{}, nil
	}

	var it transferRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TransferRequest{}, err
	}
	return fromTransferRequestItem(it), nil
}

func (r *TransferRequestDynamoRepository) List(ctx context.Context) ([]entities.TransferRequest, error) {
	items, err := scanAll[transferRequestItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.TransferRequest, 0, len(items))
	for _, it := range items {
		out = append(out, fromTransferRequestItem(it))
	}
	return out, nil
}

// TransitionStatus is a compare-and-set on status.
func (r *TransferRequestDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.TransferRequestStatus) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": stringAttr(id)},
		ConditionExpression: aws.String("#status = :from"),
		UpdateExpression:    aws.String("SET #status = :to"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": stringAttr(string(from)),
			":to":   stringAttr(string(to)),
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toTransferRequestItem(t entities.TransferRequest) transferRequestItem {
	return transferRequestItem{
		ID:          t.ID,
		UserID:      t.UserID,
		UserName:    t.UserName,
		UserPhone:   t.UserPhone,
		CourseID:    t.CourseID,
		CourseTitle: t.CourseTitle,
		Status:      string(t.Status),
		CreatedAt:   formatTime(t.CreatedAt),
	}
}

func fromTransferRequestItem(it transferRequestItem) entities.TransferRequest {
	return entities.TransferRequest{
		ID:          it.ID,
		UserID:      it.UserID,
		UserName:    it.UserName,
		UserPhone:   it.UserPhone,
		CourseID:    it.CourseID,
		CourseTitle: it.CourseTitle,
		Status:      entities.TransferRequestStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
