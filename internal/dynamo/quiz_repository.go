package dynamo

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/saulo-duarte/quizbank-lambda/internal/quiz"
)

type quizRepository struct {
	api   API
	table string
}

func NewQuizRepository(api API, table string) quiz.Repository {
	return &quizRepository{api: api, table: table}
}

func (r *quizRepository) GetByID(ctx context.Context, id string) (*quiz.Quiz, error) {
	return getItem[quiz.Quiz](ctx, r.api, r.table, stringKey("quiz_id", id))
}

func (r *quizRepository) Create(ctx context.Context, q *quiz.Quiz) error {
	cond, err := createCondition("quiz_id")
	if err != nil {
		return err
	}

	err = putItem(ctx, r.api, r.table, q, cond)
	if isConditionFailed(err) {
		return fmt.Errorf("quiz %s already exists", q.ID)
	}
	return err
}

func (r *quizRepository) List(ctx context.Context) ([]*quiz.Quiz, error) {
	quizzes, err := scanAll[quiz.Quiz](ctx, r.api, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(quizzes, func(i, j int) bool { return quizzes[i].CreatedAt > quizzes[j].CreatedAt })
	return quizzes, nil
}
