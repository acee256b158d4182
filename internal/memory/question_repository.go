// Package memory holds map-backed repositories used by the local server and
// by tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"gorm.io/datatypes"

	"github.com/saulo-duarte/quizbank-lambda/internal/question"
)

type QuestionRepository struct {
	mu        sync.RWMutex
	questions map[string]question.Question
}

func NewQuestionRepository(seed ...*question.Question) *QuestionRepository {
	r := &QuestionRepository{questions: make(map[string]question.Question, len(seed))}
	for _, q := range seed {
		r.questions[q.ID] = cloneQuestion(*q)
	}
	return r
}

func cloneQuestion(q question.Question) question.Question {
	q.Options = append(datatypes.JSONSlice[string]{}, q.Options...)
	return q
}

func (r *QuestionRepository) GetByID(_ context.Context, id string) (*question.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.questions[id]
	if !ok {
		return nil, nil
	}
	q = cloneQuestion(q)
	return &q, nil
}

func (r *QuestionRepository) Save(_ context.Context, q *question.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.questions[q.ID] = cloneQuestion(*q)
	return nil
}

func (r *QuestionRepository) Update(_ context.Context, id string, patch question.Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.questions[id]
	if !ok {
		return question.ErrQuestionNotFound
	}
	patch.Apply(&q)
	r.questions[id] = q
	return nil
}

func (r *QuestionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.questions, id)
	return nil
}

func (r *QuestionRepository) List(_ context.Context) ([]*question.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*question.Question, 0, len(r.questions))
	for _, q := range r.questions {
		q := cloneQuestion(q)
		out = append(out, &q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
