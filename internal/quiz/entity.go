package quiz

import (
	"gorm.io/datatypes"

	util "github.com/saulo-duarte/quizbank-lambda/internal/utils"
)

type Quiz struct {
	ID               string                      `gorm:"column:quiz_id;primaryKey" json:"quiz_id" dynamodbav:"quiz_id"`
	Title            string                      `gorm:"type:text;not null" json:"title" dynamodbav:"title"`
	Topic            string                      `gorm:"type:text;not null" json:"topic" dynamodbav:"topic"`
	Duration         util.Number                 `gorm:"type:numeric;not null" json:"duration" dynamodbav:"duration"`
	Marks            util.Number                 `gorm:"type:numeric;not null" json:"marks" dynamodbav:"marks"`
	MarksPerQuestion *util.Number                `gorm:"type:numeric" json:"marks_per_question,omitempty" dynamodbav:"marks_per_question,omitempty"`
	QuestionIDs      datatypes.JSONSlice[string] `gorm:"column:question_ids;type:jsonb;not null" json:"question_ids" dynamodbav:"question_ids"`
	CreatedAt        string                      `gorm:"column:created_at;type:text;not null" json:"created_at" dynamodbav:"created_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// MarkValue is the score awarded per correctly answered question. An unset
// value counts as 1; a stored value, zero included, is used as is.
func (q *Quiz) MarkValue() util.Number {
	if q.MarksPerQuestion == nil {
		return util.NewNumber(1)
	}
	return *q.MarksPerQuestion
}
