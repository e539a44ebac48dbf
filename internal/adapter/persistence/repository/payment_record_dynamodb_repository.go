package repository

import (
	"context"
	"strings"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsUserIDIndex = "user_id-index"

type paymentRecordItem struct {
	ID           string                 `dynamodbav:"id"`
	UserID       string                 `dynamodbav:"user_id,omitempty"`
	CourseID     string                 `dynamodbav:"course_id,omitempty"`
	Status       string                 `dynamodbav:"status"`
	Amount       string                 `dynamodbav:"amount"`
	CouponCode   string                 `dynamodbav:"coupon_code,omitempty"`
	ProcessedAt  string                 `dynamodbav:"processed_at"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PaymentRecordDynamoRepository persists reconciled payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string, Mercado Pago payment id)
//   - GSI: user_id-index (PK: user_id)
type PaymentRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb DynamoAPI, tableName string) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

// Upsert merges p into the item keyed by p.ID. Linkage attributes are only
// written when known: they are GSI keys and must not be empty.
func (r *PaymentRecordDynamoRepository) Upsert(ctx context.Context, p entities.PaymentRecord) error {
	sets := []string{
		"#status = :status",
		"#amount = :amount",
		"#processed_at = :processed_at",
		"#first_seen_at = if_not_exists(#first_seen_at, :processed_at)",
	}
	names := map[string]string{
		"#status":        "status",
		"#amount":        "amount",
		"#processed_at":  "processed_at",
		"#first_seen_at": "first_seen_at",
	}
	values := map[string]types.AttributeValue{
		":status":       stringAttr(string(p.Status)),
		":amount":       stringAttr(floatToString(p.Amount)),
		":processed_at": stringAttr(formatTime(p.ProcessedAt)),
	}
	setString := func(attr, value string) {
		if value == "" {
			return
		}
		sets = append(sets, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = stringAttr(value)
	}
	setString("user_id", p.UserID)
	setString("course_id", p.CourseID)
	setString("coupon_code", p.CouponCode)
	setString("mp_payload_raw", string(p.RawPayload))
	if len(p.Payload) > 0 {
		av, err := attributevalue.Marshal(p.Payload)
		if err != nil {
			return err
		}
		sets = append(sets, "#mp_payload = :mp_payload")
		names["#mp_payload"] = "mp_payload"
		values[":mp_payload"] = av
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"id": stringAttr(p.ID)},
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}

func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": stringAttr(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.PaymentRecord, error) {
	items, err := queryAll[paymentRecordItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": stringAttr(userID),
		},
	})
	if err != nil {
		return nil, err
	}
	records := make([]entities.PaymentRecord, 0, len(items))
	for _, it := range items {
		records = append(records, fromPaymentRecordItem(it))
	}
	return records, nil
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	rec := entities.PaymentRecord{
		ID:          it.ID,
		UserID:      it.UserID,
		CourseID:    it.CourseID,
		Status:      entities.PaymentStatus(it.Status),
		CouponCode:  it.CouponCode,
		ProcessedAt: parseTime(it.ProcessedAt),
		Payload:     it.MPPayload,
	}
	rec.Amount, _ = parseFloat(it.Amount)
	if it.MPPayloadRaw != "" {
		rec.RawPayload = []byte(it.MPPayloadRaw)
	}
	return rec
}
