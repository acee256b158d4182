package question_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quizbank-lambda/internal/question"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := question.NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "questions" WHERE question_id = $1`)).
		WithArgs("q1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"question_id", "question_text", "options", "answer"}))

	q, err := repo.GetByID(context.Background(), "q1")
	require.NoError(t, err)
	assert.Nil(t, q)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := question.NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "questions" WHERE question_id = $1`)).
		WithArgs("q1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"question_id", "question_text", "options", "answer"}).
			AddRow("q1", "Capital of France?", `["Paris","Rome"]`, "Paris"))

	q, err := repo.GetByID(context.Background(), "q1")
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, []string{"Paris", "Rome"}, []string(q.Options))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := question.NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "questions" SET "answer"=$1 WHERE question_id = $2`)).
		WithArgs("42", "q1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	answer := "42"
	err := repo.Update(context.Background(), "q1", question.Patch{Answer: &answer})
	assert.ErrorIs(t, err, question.ErrQuestionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := question.NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "questions" WHERE question_id = $1`)).
		WithArgs("q1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "q1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
