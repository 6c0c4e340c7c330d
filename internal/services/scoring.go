package services

import (
	"strings"
	"time"

	"github.com/shishant-cloud/quiz-portal-personal-project/internal/models"

	"gorm.io/gorm"
)

type ScoringService struct {
	db *gorm.DB
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{db: db}
}

// SubmitAttempt grades one student's submission for a quiz and persists the
// aggregate response together with a per-question snapshot of what was
// submitted. Questions missing from answers count as blank. An answer earns
// the question's full marks when it matches the stored correct answer after
// trimming and case-folding; there is no partial credit.
func (s *ScoringService) SubmitAttempt(quizID, userID uint, answers map[uint]string) (*models.Response, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, ErrNotFound
	}

	var questions []models.Question
	if err := s.db.Where("quiz_id = ?", quizID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}

	score, totalMarks := 0, 0
	for _, q := range questions {
		totalMarks += q.Marks
		if answerMatches(answers[q.ID], q.CorrectAnswer) {
			score += q.Marks
		}
	}

	response := models.Response{
		QuizID:      quizID,
		UserID:      userID,
		Score:       score,
		TotalMarks:  totalMarks,
		SubmittedAt: time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&response).Error; err != nil {
			return err
		}
		for _, q := range questions {
			answer := models.StudentAnswer{
				ResponseID:    response.ID,
				QuestionID:    q.ID,
				SubmittedText: answers[q.ID],
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func answerMatches(submitted, correct string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}
	return strings.EqualFold(submitted, strings.TrimSpace(correct))
}
