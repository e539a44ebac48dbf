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

type couponItem struct {
	Code               string `dynamodbav:"code"`
	DiscountPercentage int    `dynamodbav:"discount_percentage"`
	Active             bool   `dynamodbav:"active"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// CouponDynamoRepository persists Coupon entities in DynamoDB.
//
// Table requirements:
//   - PK: code (string)
//
// The normalized code is the key, so a duplicate insert fails on the
// condition instead of racing a lookup.
type CouponDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICouponRepository = (*CouponDynamoRepository)(nil)

func NewCouponDynamoRepository(ddb DynamoAPI, tableName string) *CouponDynamoRepository {
	return &CouponDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CouponDynamoRepository) CreateIfAbsent(ctx context.Context, c entities.Coupon) (bool, error) {
	av, err := attributevalue.MarshalMap(toCouponItem(c))
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
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

func (r *CouponDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"code": stringAttr(code)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	if len(out.Item) == 0 {
		return entities.Coupon{}, nil
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func (r *CouponDynamoRepository) List(ctx context.Context) ([]entities.Coupon, error) {
	items, err := scanAll[couponItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	coupons := make([]entities.Coupon, 0, len(items))
	for _, it := range items {
		coupons = append(coupons, fromCouponItem(it))
	}
	return coupons, nil
}

func (r *CouponDynamoRepository) SetActive(ctx context.Context, code string, active bool) (entities.Coupon, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"code": stringAttr(code)},
		ConditionExpression: aws.String("attribute_exists(#code)"),
		UpdateExpression:    aws.String("SET #active = :active"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: active},
		},
		ExpressionAttributeNames: map[string]string{
			"#code":   "code",
			"#active": "active",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Coupon{}, nil
		}
		return entities.Coupon{}, err
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func (r *CouponDynamoRepository) Delete(ctx context.Context, code string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      map[string]types.AttributeValue{"code": stringAttr(code)},
		ConditionExpression:      aws.String("attribute_exists(#code)"),
		ExpressionAttributeNames: map[string]string{"#code": "code"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toCouponItem(c entities.Coupon) couponItem {
	return couponItem{
		Code:               c.Code,
		DiscountPercentage: c.DiscountPercentage,
		Active:             c.Active,
		CreatedAt:          formatTime(c.CreatedAt),
	}
}

func fromCouponItem(it couponItem) entities.Coupon {
	return entities.Coupon{
		Code:               it.Code,
		DiscountPercentage: it.DiscountPercentage,
		Active:             it.Active,
		CreatedAt:          parseTime(it.CreatedAt),
	}
}
