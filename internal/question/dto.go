package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gorm.io/datatypes"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
)

type AddQuestionDTO struct {
	ID      string   `json:"question_id"`
	Text    string   `json:"question_text"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

type DeleteQuestionDTO struct {
	ID string `json:"question_id"`
}

// Patch is a partial update of a question. Nil fields are left unchanged and
// the identifier is never part of it.
type Patch struct {
	Text    *string
	Options *[]string
	Answer  *string
}

func (p Patch) IsEmpty() bool {
	return p.Text == nil && p.Options == nil && p.Answer == nil
}

// Fields returns the stored attribute name for each set field.
func (p Patch) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, 3)
	if p.Text != nil {
		fields["question_text"] = *p.Text
	}
	if p.Options != nil {
		fields["options"] = datatypes.JSONSlice[string](*p.Options)
	}
	if p.Answer != nil {
		fields["answer"] = *p.Answer
	}
	return fields
}

func (p Patch) Apply(q *Question) {
	if p.Text != nil {
		q.Text = *p.Text
	}
	if p.Options != nil {
		q.Options = append(datatypes.JSONSlice[string]{}, *p.Options...)
	}
	if p.Answer != nil {
		q.Answer = *p.Answer
	}
}

// ParseUpdate reads an update body of the form {"question_id": ..., <field>: ...}.
// Only question_text, options and answer may be changed.
func ParseUpdate(body map[string]json.RawMessage) (string, Patch, error) {
	var id string
	if raw, ok := body["question_id"]; ok {
		if err := json.Unmarshal(raw, &id); err != nil {
			return "", Patch{}, apperror.Validation("question_id must be a string")
		}
	}
	if id == "" {
		return "", Patch{}, apperror.Validation("question_id is required")
	}

	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var patch Patch
	for _, key := range keys {
		raw := body[key]
		if key != "question_id" && string(bytes.TrimSpace(raw)) == "null" {
			return "", Patch{}, apperror.Validation(fmt.Sprintf("%s must not be null", key))
		}
		switch key {
		case "question_id":
		case "question_text":
			var text string
			if err := json.Unmarshal(raw, &text); err != nil {
				return "", Patch{}, apperror.Validation("question_text must be a string")
			}
			patch.Text = &text
		case "options":
			var options []string
			if err := json.Unmarshal(raw, &options); err != nil {
				return "", Patch{}, apperror.Validation("options must be a list of strings")
			}
			patch.Options = &options
		case "answer":
			var answer string
			if err := json.Unmarshal(raw, &answer); err != nil {
				return "", Patch{}, apperror.Validation("answer must be a string")
			}
			patch.Answer = &answer
		default:
			return "", Patch{}, apperror.Validation(fmt.Sprintf("field %q cannot be updated", key))
		}
	}

	if patch.IsEmpty() {
		return "", Patch{}, apperror.Validation("no fields to update")
	}
	return id, patch, nil
}
