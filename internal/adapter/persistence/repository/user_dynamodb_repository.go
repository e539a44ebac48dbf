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

const usersEmailIndex = "email-index"

type userItem struct {
	UID             string   `dynamodbav:"uid"`
	Nombre          string   `dynamodbav:"nombre"`
	Email           string   `dynamodbav:"email"`
	Rol             string   `dynamodbav:"rol"`
	PasswordHash    string   `dynamodbav:"password_hash,omitempty"`
	CursosInscritos []string `dynamodbav:"cursos_inscritos,stringset,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
}

// UserDynamoRepository persists user profiles in DynamoDB.
//
// Table requirements:
//   - PK: uid (string)
//   - GSI: email-index (PK: email)
//
// cursos_inscritos is a string set: ADD is a union, so repeating an
// enrollment never duplicates it.
type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (bool, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#uid)"),
		ExpressionAttributeNames: map[string]string{"#uid": "uid"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, uid string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"uid": stringAttr(uid)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": stringAttr(strings.ToLower(email)),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	items, err := scanAll[userItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	users := make([]entities.User, 0, len(items))
	for _, it := range items {
		users = append(users, fromUserItem(it))
	}
	return users, nil
}

// Update sets only the non-empty fields of upd.
func (r *UserDynamoRepository) Update(ctx context.Context, uid string, upd entities.UserUpdate) (entities.User, error) {
	var sets []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	add := func(attr, value string) {
		if value == "" {
			return
		}
		sets = append(sets, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = stringAttr(value)
	}
	add("nombre", upd.Nombre)
	add("email", upd.Email)
	add("password_hash", upd.PasswordHash)
	if len(sets) == 0 {
		return r.GetByID(ctx, uid)
	}

	return r.update(ctx, uid, "SET "+strings.Join(sets, ", "), values, names)
}

func (r *UserDynamoRepository) SetRole(ctx context.Context, uid string, role entities.Role) (entities.User, error) {
	return r.update(ctx, uid, "SET #rol = :rol",
		map[string]types.AttributeValue{":rol": stringAttr(string(role))},
		map[string]string{"#rol": "rol"},
	)
}

func (r *UserDynamoRepository) Delete(ctx context.Context, uid string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       map[string]types.AttributeValue{"uid": stringAttr(uid)},
	})
	return err
}

func (r *UserDynamoRepository) AddEnrolledCourse(ctx context.Context, uid, courseID string) (bool, error) {
	return r.changeEnrolled(ctx, uid, "ADD", courseID)
}

// RemoveEnrolledCourse drops courseID from the set. DynamoDB removes the
// attribute once the set is empty.
func (r *UserDynamoRepository) RemoveEnrolledCourse(ctx context.Context, uid, courseID string) (bool, error) {
	return r.changeEnrolled(ctx, uid, "DELETE", courseID)
}

func (r *UserDynamoRepository) changeEnrolled(ctx context.Context, uid, action, courseID string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"uid": stringAttr(uid)},
		ConditionExpression: aws.String("attribute_exists(#uid)"),
		UpdateExpression:    aws.String(action + " #cursos :course"),
		ExpressionAttributeNames: map[string]string{
			"#uid":    "uid",
			"#cursos": "cursos_inscritos",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":course": &types.AttributeValueMemberSS{Value: []string{courseID}},
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

func (r *UserDynamoRepository) update(ctx context.Context, uid, updateExpr string, values map[string]types.AttributeValue, names map[string]string) (entities.User, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"uid": stringAttr(uid)},
		ConditionExpression:       aws.String("attribute_exists(#uid)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#uid": "uid"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.User{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		UID:             u.UID,
		Nombre:          u.Nombre,
		Email:           strings.ToLower(u.Email),
		Rol:             string(u.Rol),
		PasswordHash:    u.PasswordHash,
		CursosInscritos: stringSet(u.CursosInscritos),
		CreatedAt:       formatTime(u.CreatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	cursos := it.CursosInscritos
	if cursos == nil {
		cursos = []string{}
	}
	return entities.User{
		UID:             it.UID,
		Nombre:          it.Nombre,
		Email:           it.Email,
		Rol:             entities.Role(it.Rol),
		PasswordHash:    it.PasswordHash,
		CursosInscritos: cursos,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
