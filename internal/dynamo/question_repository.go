package dynamo

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/saulo-duarte/quizbank-lambda/internal/question"
)

type questionRepository struct {
	api   API
	table string
}

func NewQuestionRepository(api API, table string) question.Repository {
	return &questionRepository{api: api, table: table}
}

func (r *questionRepository) GetByID(ctx context.Context, id string) (*question.Question, error) {
	return getItem[question.Question](ctx, r.api, r.table, stringKey("question_id", id))
}

func (r *questionRepository) Save(ctx context.Context, q *question.Question) error {
	return putItem(ctx, r.api, r.table, q, nil)
}

func (r *questionRepository) Update(ctx context.Context, id string, patch question.Patch) error {
	fields := patch.Fields()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var update expression.UpdateBuilder
	for _, name := range names {
		update = update.Set(expression.Name(name), expression.Value(fields[name]))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name("question_id"))).
		Build()
	if err != nil {
		return err
	}

	_, err = r.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       stringKey("question_id", id),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if isConditionFailed(err) {
		return question.ErrQuestionNotFound
	}
	return err
}

func (r *questionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       stringKey("question_id", id),
	})
	return err
}

func (r *questionRepository) List(ctx context.Context) ([]*question.Question, error) {
	questions, err := scanAll[question.Question](ctx, r.api, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions, nil
}
