package model

// QuizSettings is a singleton row (id=1) holding the completion message
// shown once the player has answered every question.
type QuizSettings struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FinalMessage string `gorm:"type:text;not null" json:"finalMessage"`
}

func (QuizSettings) TableName() string {
	return "quiz_settings"
}

// SettingsRowID is the fixed primary key of the singleton settings row.
const SettingsRowID uint = 1
