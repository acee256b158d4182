package question_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
	"github.com/saulo-duarte/quizbank-lambda/internal/question"
)

func parseBody(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	return m
}

func TestParseUpdate(t *testing.T) {
	t.Run("collects allowed fields", func(t *testing.T) {
		id, patch, err := question.ParseUpdate(parseBody(t, `{"question_id":"q1","answer":"42","options":["41","42"]}`))
		require.NoError(t, err)
		assert.Equal(t, "q1", id)
		require.NotNil(t, patch.Answer)
		assert.Equal(t, "42", *patch.Answer)
		require.NotNil(t, patch.Options)
		assert.Equal(t, []string{"41", "42"}, *patch.Options)
		assert.Nil(t, patch.Text)

		fields := patch.Fields()
		assert.Len(t, fields, 2)
		assert.Contains(t, fields, "answer")
		assert.Contains(t, fields, "options")
	})

	cases := map[string]string{
		"missing id":         `{"answer":"42"}`,
		"id not a string":    `{"question_id":7,"answer":"42"}`,
		"unknown field":      `{"question_id":"q1","difficulty":"hard"}`,
		"nothing to change":  `{"question_id":"q1"}`,
		"options not a list": `{"question_id":"q1","options":"a,b"}`,
		"null options":       `{"question_id":"q1","options":null}`,
		"null text":          `{"question_id":"q1","question_text":null}`,
		"null answer":        `{"question_id":"q1","answer":null}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := question.ParseUpdate(parseBody(t, body))
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}
