package models

import "time"

type Response struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	QuizID      uint            `gorm:"not null;index" json:"quiz_id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Score       int             `gorm:"not null;default:0" json:"score"`
	TotalMarks  int             `gorm:"not null;default:0" json:"total_marks"`
	Answers     []StudentAnswer `gorm:"foreignKey:ResponseID" json:"answers,omitempty"`
	SubmittedAt time.Time       `json:"submitted_at"`
}
