package services

import (
	"strings"

	"github.com/shishant-cloud/quiz-portal-personal-project/internal/models"

	"gorm.io/gorm"
)

// maxOptions caps option labels at the single-letter alphabet 'a'..'z'.
const maxOptions = 26

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type QuestionInput struct {
	Text          string
	Type          string
	Marks         int
	CorrectAnswer string
	Options       []string
}

// PublishQuiz creates a quiz with its questions and, for MCQ questions,
// their options. Option labels are assigned by position starting at 'a'.
// The whole operation runs in one transaction so a failed insert cannot
// leave an orphaned quiz behind.
func (s *QuizService) PublishQuiz(adminID uint, title string, questions []QuestionInput) (*models.Quiz, error) {
	if strings.TrimSpace(title) == "" {
		return nil, validationErrorf("quiz title must not be empty")
	}
	if len(questions) == 0 {
		return nil, validationErrorf("quiz must have at least one question")
	}
	for i, q := range questions {
		if err := validateQuestionInput(i+1, q); err != nil {
			return nil, err
		}
	}

	quiz := models.Quiz{AdminID: adminID, Title: strings.TrimSpace(title)}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}

		for _, q := range questions {
			question := models.Question{
				QuizID:        quiz.ID,
				Text:          q.Text,
				Type:          q.Type,
				CorrectAnswer: q.CorrectAnswer,
				Marks:         q.Marks,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}

			if q.Type != models.QuestionTypeMCQ {
				continue
			}
			for idx, text := range q.Options {
				opt := models.Option{
					QuestionID: question.ID,
					Text:       text,
					IndexLabel: string(rune('a' + idx)),
				}
				if err := tx.Create(&opt).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &quiz, nil
}

func validateQuestionInput(num int, q QuestionInput) error {
	if strings.TrimSpace(q.Text) == "" {
		return validationErrorf("question %d: text must not be empty", num)
	}
	if q.Type != models.QuestionTypeMCQ && q.Type != models.QuestionTypeText {
		return validationErrorf("question %d: unknown type %q", num, q.Type)
	}
	if q.Marks < 1 {
		return validationErrorf("question %d: marks must be a positive number", num)
	}
	if q.Type == models.QuestionTypeMCQ {
		if len(q.Options) == 0 {
			return validationErrorf("question %d: MCQ needs at least one option", num)
		}
		if len(q.Options) > maxOptions {
			return validationErrorf("question %d: at most %d options are supported", num, maxOptions)
		}
	}
	return nil
}

// ListQuizzes returns every quiz, newest first, for the dashboards.
func (s *QuizService) ListQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := s.db.Order("created_at DESC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

// GetQuizPaper loads a quiz with its questions in creation order and each
// MCQ question's options. Free-text questions carry an empty option slice.
func (s *QuizService) GetQuizPaper(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&quiz, quizID).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &quiz, nil
}
