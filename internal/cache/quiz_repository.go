// Package cache decorates quiz reads with a Redis read-through cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/saulo-duarte/quizbank-lambda/internal/config"
	"github.com/saulo-duarte/quizbank-lambda/internal/quiz"
)

// QuizRepository serves quizzes from Redis and falls back to the wrapped
// repository on a miss. Quizzes never change after creation, so entries are
// only dropped by TTL. Redis failures are logged and treated as misses.
type QuizRepository struct {
	client *redis.Client
	inner  quiz.Repository
	ttl    time.Duration
	sf     singleflight.Group
}

func NewQuizRepository(client *redis.Client, inner quiz.Repository, ttl time.Duration) *QuizRepository {
	return &QuizRepository{
		client: client,
		inner:  inner,
		ttl:    ttl,
	}
}

func quizKey(id string) string {
	return "quiz:" + id
}

func (r *QuizRepository) GetByID(ctx context.Context, id string) (*quiz.Quiz, error) {
	if q, ok := r.lookup(ctx, id); ok {
		return q, nil
	}

	v, err, _ := r.sf.Do(id, func() (interface{}, error) {
		// Shared by every waiting caller, so one caller's cancellation must not
		// fail the others.
		flightCtx := context.WithoutCancel(ctx)
		if q, ok := r.lookup(flightCtx, id); ok {
			return q, nil
		}

		q, err := r.inner.GetByID(flightCtx, id)
		if err != nil || q == nil {
			return q, err
		}
		r.store(flightCtx, q)
		return q, nil
	})
	if err != nil {
		return nil, err
	}

	q, _ := v.(*quiz.Quiz)
	if q == nil {
		return nil, nil
	}
	copied := *q
	return &copied, nil
}

func (r *QuizRepository) Create(ctx context.Context, q *quiz.Quiz) error {
	if err := r.inner.Create(ctx, q); err != nil {
		return err
	}
	r.store(ctx, q)
	return nil
}

func (r *QuizRepository) List(ctx context.Context) ([]*quiz.Quiz, error) {
	return r.inner.List(ctx)
}

func (r *QuizRepository) lookup(ctx context.Context, id string) (*quiz.Quiz, bool) {
	raw, err := r.client.Get(ctx, quizKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			config.WithContext(ctx).WithError(err).WithField("quiz_id", id).Warn("Quiz cache read failed")
		}
		return nil, false
	}

	var q quiz.Quiz
	if err := json.Unmarshal(raw, &q); err != nil {
		config.WithContext(ctx).WithError(err).WithField("quiz_id", id).Warn("Discarding unreadable cached quiz")
		return nil, false
	}
	return &q, true
}

func (r *QuizRepository) store(ctx context.Context, q *quiz.Quiz) {
	raw, err := json.Marshal(q)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, quizKey(q.ID), raw, r.ttlWithJitter()).Err(); err != nil {
		config.WithContext(ctx).WithError(err).WithField("quiz_id", q.ID).Warn("Quiz cache write failed")
	}
}

// ttlWithJitter adds up to 10% so entries written together expire apart.
func (r *QuizRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(rand.Int64N(jitterMax+1))
}
