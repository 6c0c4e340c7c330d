package models

const (
	QuestionTypeMCQ  = "MCQ"
	QuestionTypeText = "TEXT"
)

type Question struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	QuizID        uint     `gorm:"not null;index" json:"quiz_id"`
	Text          string   `gorm:"type:text;not null" json:"text"`
	Type          string   `gorm:"size:20;not null" json:"type"`
	CorrectAnswer string   `gorm:"type:text;not null" json:"-"`
	Marks         int      `gorm:"not null;default:1" json:"marks"`
	Options       []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}
