package models

// StudentAnswer snapshots what the student actually typed or picked for one
// question, so the review page can show real submissions instead of the
// stored correct answer.
type StudentAnswer struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ResponseID    uint   `gorm:"not null;index" json:"response_id"`
	QuestionID    uint   `gorm:"not null;index" json:"question_id"`
	SubmittedText string `gorm:"type:text" json:"submitted_text"`
}
