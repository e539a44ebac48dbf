package repository

import (
	"context"
	"sort"
	"time"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type progressItem struct {
	UserID           string   `dynamodbav:"user_id"`
	CourseID         string   `dynamodbav:"course_id"`
	CompletedLessons []string `dynamodbav:"completed_lessons,stringset,omitempty"`
	UpdatedAt        string   `dynamodbav:"updated_at"`
}

// ProgressDynamoRepository stores completed lessons per (user, course).
//
// Table requirements:
//   - PK: user_id (string)
//   - SK: course_id (string)
type ProgressDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProgressRepository = (*ProgressDynamoRepository)(nil)

func NewProgressDynamoRepository(ddb DynamoAPI, tableName string) *ProgressDynamoRepository {
	return &ProgressDynamoRepository{ddb: ddb, tableName: tableName}
}

// AddCompletedLesson adds to a string set, creating the item on first use.
func (r *ProgressDynamoRepository) AddCompletedLesson(ctx context.Context, userID, courseID, lessonID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id":   stringAttr(userID),
			"course_id": stringAttr(courseID),
		},
		UpdateExpression: aws.String("ADD #completed :lesson SET #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#completed":  "completed_lessons",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lesson": &types.AttributeValueMemberSS{Value: []string{lessonID}},
			":now":    stringAttr(formatTime(time.Now())),
		},
	})
	return err
}

func (r *ProgressDynamoRepository) Get(ctx context.Context, userID, courseID string) (entities.CourseProgress, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id":   stringAttr(userID),
			"course_id": stringAttr(courseID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CourseProgress{}, err
	}
	p := entities.CourseProgress{UserID: userID, CourseID: courseID, CompletedLessons: []string{}}
	if len(out.Item) == 0 {
		return p, nil
	}

	var it progressItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CourseProgress{}, err
	}
	if len(it.CompletedLessons) > 0 {
		p.CompletedLessons = it.CompletedLessons
		sort.Strings(p.CompletedLessons)
	}
	return p, nil
}
