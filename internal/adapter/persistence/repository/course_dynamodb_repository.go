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

type courseItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
	Order       int    `dynamodbav:"order"`
	ImageURL    string `dynamodbav:"image_url,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// CourseDynamoRepository persists the catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Prices are stored as decimal strings so they round-trip exactly.
type CourseDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICourseRepository = (*CourseDynamoRepository)(nil)

func NewCourseDynamoRepository(ddb DynamoAPI, tableName string) *CourseDynamoRepository {
	return &CourseDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CourseDynamoRepository) Create(ctx context.Context, c entities.Course) (entities.Course, error) {
	av, err := attributevalue.MarshalMap(toCourseItem(c))
	if err != nil {
		return entities.Course{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Course{}, err
	}
	return c, nil
}

func (r *CourseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Course, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": stringAttr(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Course{}, err
	}
	if len(out.Item) == 0 {
		return entities.Course{}, nil
	}

	var it courseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Course{}, err
	}
	return fromCourseItem(it), nil
}

func (r *CourseDynamoRepository) List(ctx context.Context) ([]entities.Course, error) {
	items, err := scanAll[courseItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	courses := make([]entities.Course, 0, len(items))
	for _, it := range items {
		courses = append(courses, fromCourseItem(it))
	}
	return courses, nil
}

// Update overwrites the editable fields. A missing course yields a zero
// Course and nil error.
func (r *CourseDynamoRepository) Update(ctx context.Context, c entities.Course) (entities.Course, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": stringAttr(c.ID)},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #title = :title, #description = :description, #price = :price, #image_url = :image_url, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":title":       stringAttr(c.Title),
			":description": stringAttr(c.Description),
			":price":       stringAttr(floatToString(c.Price)),
			":image_url":   stringAttr(c.ImageURL),
			":updated_at":  stringAttr(formatTime(c.UpdatedAt)),
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#title":       "title",
			"#description": "description",
			"#price":       "price",
			"#image_url":   "image_url",
			"#updated_at":  "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Course{}, nil
		}
		return entities.Course{}, err
	}

	var it courseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Course{}, err
	}
	return fromCourseItem(it), nil
}

func toCourseItem(c entities.Course) courseItem {
	return courseItem{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Price:       floatToString(c.Price),
		Order:       c.Order,
		ImageURL:    c.ImageURL,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

func fromCourseItem(it courseItem) entities.Course {
	price, _ := parseFloat(it.Price)
	return entities.Course{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Price:       price,
		Order:       it.Order,
		ImageURL:    it.ImageURL,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
