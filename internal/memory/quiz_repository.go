package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gorm.io/datatypes"

	"github.com/saulo-duarte/quizbank-lambda/internal/quiz"
)

type QuizRepository struct {
	mu      sync.RWMutex
	quizzes map[string]quiz.Quiz
}

func NewQuizRepository(seed ...*quiz.Quiz) *QuizRepository {
	r := &QuizRepository{quizzes: make(map[string]quiz.Quiz, len(seed))}
	for _, q := range seed {
		r.quizzes[q.ID] = cloneQuiz(*q)
	}
	return r
}

func cloneQuiz(q quiz.Quiz) quiz.Quiz {
	q.QuestionIDs = append(datatypes.JSONSlice[string]{}, q.QuestionIDs...)
	if q.MarksPerQuestion != nil {
		m := *q.MarksPerQuestion
		q.MarksPerQuestion = &m
	}
	return q
}

func (r *QuizRepository) GetByID(_ context.Context, id string) (*quiz.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.quizzes[id]
	if !ok {
		return nil, nil
	}
	q = cloneQuiz(q)
	return &q, nil
}

func (r *QuizRepository) Create(_ context.Context, q *quiz.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.quizzes[q.ID]; exists {
		return fmt.Errorf("quiz %s already exists", q.ID)
	}
	r.quizzes[q.ID] = cloneQuiz(*q)
	return nil
}

func (r *QuizRepository) List(_ context.Context) ([]*quiz.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*quiz.Quiz, 0, len(r.quizzes))
	for _, q := range r.quizzes {
		q := cloneQuiz(q)
		out = append(out, &q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}
