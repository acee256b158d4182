package question

import "gorm.io/datatypes"

type Question struct {
	ID      string                      `gorm:"column:question_id;primaryKey" json:"question_id" dynamodbav:"question_id"`
	Text    string                      `gorm:"column:question_text;type:text;not null" json:"question_text" dynamodbav:"question_text"`
	Options datatypes.JSONSlice[string] `gorm:"column:options;type:jsonb;not null" json:"options" dynamodbav:"options"`
	Answer  string                      `gorm:"column:answer;type:text;not null" json:"answer" dynamodbav:"answer"`
}

func (Question) TableName() string {
	return "questions"
}
