package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizbank-lambda/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"STORE_DRIVER", "QUESTION_TABLE", "QUIZ_TABLE", "RESULT_TABLE", "ADMIN_GROUP", "QUIZ_CACHE_TTL", "REDIS_DB"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDynamoDB, cfg.StoreDriver)
	assert.Equal(t, "QuestionBank", cfg.Tables.Questions)
	assert.Equal(t, "Quizzes", cfg.Tables.Quizzes)
	assert.Equal(t, "Results", cfg.Tables.Results)
	assert.Equal(t, "Admins", cfg.AdminGroup)
	assert.Equal(t, 10*time.Minute, cfg.Redis.QuizCacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("QUESTION_TABLE", "Questions-dev")
	t.Setenv("QUIZ_CACHE_TTL", "30s")
	t.Setenv("REDIS_DB", "3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "Questions-dev", cfg.Tables.Questions)
	assert.Equal(t, 30*time.Second, cfg.Redis.QuizCacheTTL)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}
