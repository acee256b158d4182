package dynamo

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/saulo-duarte/quizbank-lambda/internal/result"
)

type resultRepository struct {
	api   API
	table string
}

func NewResultRepository(api API, table string) result.Repository {
	return &resultRepository{api: api, table: table}
}

func (r *resultRepository) Create(ctx context.Context, res *result.Result) error {
	cond, err := createCondition("result_id")
	if err != nil {
		return err
	}

	err = putItem(ctx, r.api, r.table, res, cond)
	if isConditionFailed(err) {
		return fmt.Errorf("result %s already exists", res.ID)
	}
	return err
}

func (r *resultRepository) List(ctx context.Context) ([]*result.Result, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
}

func (r *resultRepository) ListByEmail(ctx context.Context, email string) ([]*result.Result, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Name("user_email").Equal(expression.Value(email))).
		Build()
	if err != nil {
		return nil, err
	}

	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
}

func (r *resultRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]*result.Result, error) {
	results, err := scanAll[result.Result](ctx, r.api, input)
	if err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results, nil
}
