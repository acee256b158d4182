package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/saulo-duarte/quizbank-lambda/internal/result"
)

type ResultRepository struct {
	mu      sync.RWMutex
	results map[string]result.Result
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{results: make(map[string]result.Result)}
}

func cloneResult(r result.Result) result.Result {
	if r.Answers != nil {
		answers := make(result.AnswerSheet, len(r.Answers))
		for k, v := range r.Answers {
			answers[k] = v
		}
		r.Answers = answers
	}
	return r
}

func (r *ResultRepository) Create(_ context.Context, res *result.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.results[res.ID]; exists {
		return fmt.Errorf("result %s already exists", res.ID)
	}
	r.results[res.ID] = cloneResult(*res)
	return nil
}

func (r *ResultRepository) List(_ context.Context) ([]*result.Result, error) {
	return r.filter(func(result.Result) bool { return true }), nil
}

func (r *ResultRepository) ListByEmail(_ context.Context, email string) ([]*result.Result, error) {
	return r.filter(func(res result.Result) bool { return res.UserEmail == email }), nil
}

func (r *ResultRepository) filter(keep func(result.Result) bool) []*result.Result {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*result.Result, 0, len(r.results))
	for _, res := range r.results {
		if !keep(res) {
			continue
		}
		res := cloneResult(res)
		out = append(out, &res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
