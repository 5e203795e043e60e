package model

// Question is one step of the sequential quiz. SecretPassword gates
// progression after a correct answer; empty means no gate.
type Question struct {
	BaseModel
	Text           string         `gorm:"size:255;not null" json:"text"`
	CorrectAnswer  string         `gorm:"size:255;not null" json:"correctAnswer"`
	Image          string         `gorm:"size:255" json:"image"`
	Comment        string         `gorm:"type:text" json:"comment"`
	SecretPassword string         `gorm:"size:255" json:"-"`
	Options        []AnswerOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// IncorrectOptionTexts returns the texts of the loaded options that are not
// flagged correct.
func (q *Question) IncorrectOptionTexts() []string {
	pool := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		if !opt.IsCorrect {
			pool = append(pool, opt.Text)
		}
	}
	return pool
}
