package model

// AnswerOption belongs to a question. Exactly one option per question is
// expected to carry IsCorrect=true; the admin write path maintains this,
// there is no database constraint.
type AnswerOption struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"questionId"`
	Text       string `gorm:"size:255;not null" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"isCorrect"`
}

func (AnswerOption) TableName() string {
	return "answer_options"
}
