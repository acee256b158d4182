package result

import (
	util "github.com/saulo-duarte/quizbank-lambda/internal/utils"
)

type Result struct {
	ID        string      `gorm:"column:result_id;primaryKey" json:"result_id" dynamodbav:"result_id"`
	QuizID    string      `gorm:"column:quiz_id;type:text;not null" json:"quiz_id" dynamodbav:"quiz_id"`
	UserEmail string      `gorm:"column:user_email;type:text;index" json:"user_email" dynamodbav:"user_email"`
	UserName  string      `gorm:"column:user_name;type:text" json:"user_name" dynamodbav:"user_name"`
	Answers   AnswerSheet `gorm:"column:answers;type:jsonb" json:"answers" dynamodbav:"answers"`
	Score     util.Number `gorm:"type:numeric;not null" json:"score" dynamodbav:"score"`
}

func (Result) TableName() string {
	return "results"
}
