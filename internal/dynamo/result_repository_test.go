package dynamo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizbank-lambda/internal/result"
	util "github.com/saulo-duarte/quizbank-lambda/internal/utils"
)

func seedResults(t *testing.T) (result.Repository, *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	api.table("Results", "result_id", 2)
	repo := NewResultRepository(api, "Results")

	for _, r := range []*result.Result{
		{ID: "res-1", QuizID: "quiz-1", UserEmail: "ana@example.com", UserName: "Ana", Answers: result.AnswerSheet{"q1": "Paris"}, Score: util.NewNumber(2)},
		{ID: "res-2", QuizID: "quiz-1", UserEmail: "bob@example.com", UserName: "Bob", Answers: result.AnswerSheet{"q1": "Rome"}, Score: util.NewNumber(0)},
		{ID: "res-3", QuizID: "quiz-2", UserEmail: "ana@example.com", UserName: "Ana", Answers: result.AnswerSheet{"q9": "x"}, Score: util.NumberFromFloat(1.5)},
		{ID: "res-4", QuizID: "quiz-2", UserEmail: "ANA@example.com", UserName: "Ana", Answers: result.AnswerSheet{}, Score: util.NewNumber(0)},
	} {
		require.NoError(t, repo.Create(context.Background(), r))
	}
	return repo, api
}

func TestResultRepositoryListAll(t *testing.T) {
	repo, _ := seedResults(t)

	results, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestResultRepositoryListByEmailIsExact(t *testing.T) {
	repo, api := seedResults(t)

	results, err := repo.ListByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "res-1", results[0].ID)
	assert.Equal(t, "res-3", results[1].ID)
	assert.Equal(t, "Paris", results[0].Answers["q1"])
	assert.True(t, results[1].Score.Equal(util.NumberFromFloat(1.5)))

	last := api.scans[len(api.scans)-1]
	require.NotNil(t, last.FilterExpression)
	assert.Contains(t, last.ExpressionAttributeNames, "#0")
	assert.Equal(t, "user_email", last.ExpressionAttributeNames["#0"])
}

func TestResultRepositoryRejectsDuplicateID(t *testing.T) {
	repo, _ := seedResults(t)

	err := repo.Create(context.Background(), &result.Result{ID: "res-1", QuizID: "quiz-1"})
	assert.Error(t, err)
}
