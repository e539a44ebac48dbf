package repository

import (
	"context"
	"errors"
	"strconv"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type lessonItem struct {
	CourseID           string `dynamodbav:"course_id"`
	ID                 string `dynamodbav:"id"`
	Title              string `dynamodbav:"title"`
	TextContent        string `dynamodbav:"text_content,omitempty"`
	VideoURL           string `dynamodbav:"video_url"`
	SupportMaterialURL string `dynamodbav:"support_material_url,omitempty"`
	Order              *int   `dynamodbav:"order,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// LessonDynamoRepository persists lessons in DynamoDB.
//
// Table requirements:
//   - PK: course_id (string)
//   - SK: id (string)
type LessonDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILessonRepository = (*LessonDynamoRepository)(nil)

func NewLessonDynamoRepository(ddb DynamoAPI, tableName string) *LessonDynamoRepository {
	return &LessonDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LessonDynamoRepository) Create(ctx context.Context, l entities.Lesson) (entities.Lesson, error) {
	av, err := attributevalue.MarshalMap(toLessonItem(l))
	if err != nil {
		return entities.Lesson{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Lesson{}, err
	}
	return l, nil
}

func (r *LessonDynamoRepository) ListByCourseID(ctx context.Context, courseID string) ([]entities.Lesson, error) {
	items, err := queryAll[lessonItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("course_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": stringAttr(courseID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	lessons := make([]entities.Lesson, 0, len(items))
	for _, it := range items {
		lessons = append(lessons, fromLessonItem(it))
	}
	return lessons, nil
}

// UpdateOrders sets every order in a single transaction. Each update is
// conditioned on the lesson existing, so one unknown id cancels the batch.
func (r *LessonDynamoRepository) UpdateOrders(ctx context.Context, courseID string, updates []entities.LessonOrder) (bool, error) {
	items := make([]types.TransactWriteItem, 0, len(updates))
	for _, upd := range updates {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"course_id": stringAttr(courseID),
					"id":        stringAttr(upd.LessonID),
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #order = :order"),
				ExpressionAttributeNames: map[string]string{
					"#id":    "id",
					"#order": "order",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":order": &types.AttributeValueMemberN{Value: strconv.Itoa(upd.Order)},
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
					return false, nil
				}
			}
		}
		return false, err
	}
	return true, nil
}

func toLessonItem(l entities.Lesson) lessonItem {
	return lessonItem{
		CourseID:           l.CourseID,
		ID:                 l.ID,
		Title:              l.Title,
		TextContent:        l.TextContent,
		VideoURL:           l.VideoURL,
		SupportMaterialURL: l.SupportMaterialURL,
		Order:              l.Order,
		CreatedAt:          formatTime(l.CreatedAt),
	}
}

func fromLessonItem(it lessonItem) entities.Lesson {
	return entities.Lesson{
		ID:                 it.ID,
		CourseID:           it.CourseID,
		Title:              it.Title,
		TextContent:        it.TextContent,
		VideoURL:           it.VideoURL,
		SupportMaterialURL: it.SupportMaterialURL,
		Order:              it.Order,
		CreatedAt:          parseTime(it.CreatedAt),
	}
}
