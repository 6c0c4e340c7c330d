package services

import (
	"time"

	"github.com/shishant-cloud/quiz-portal-personal-project/internal/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

type ResponseRow struct {
	Response    models.Response
	StudentName string
}

type ResponsesView struct {
	QuizTitle string
	Rows      []ResponseRow
}

// ListResponses returns every response for a quiz, newest first, with the
// student's username resolved for display.
func (s *ReviewService) ListResponses(quizID uint) (*ResponsesView, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, ErrNotFound
	}

	var responses []models.Response
	if err := s.db.Where("quiz_id = ?", quizID).Order("submitted_at DESC").Find(&responses).Error; err != nil {
		return nil, err
	}

	view := &ResponsesView{QuizTitle: quiz.Title}
	for _, resp := range responses {
		var student models.User
		name := "unknown"
		if err := s.db.First(&student, resp.UserID).Error; err == nil {
			name = student.Username
		}
		view.Rows = append(view.Rows, ResponseRow{Response: resp, StudentName: name})
	}
	return view, nil
}

type PaperRow struct {
	QuestionText    string
	SubmittedAnswer string
}

type ReviewPaper struct {
	StudentName string
	QuizTitle   string
	Score       int
	TotalMarks  int
	SubmittedAt time.Time
	Rows        []PaperRow
}

// BuildPaper reconstructs a past submission for review: each question of the
// quiz paired with the answer the student actually submitted. Questions with
// no stored answer show blank.
func (s *ReviewService) BuildPaper(responseID uint) (*ReviewPaper, error) {
	var response models.Response
	if err := s.db.First(&response, responseID).Error; err != nil {
		return nil, ErrNotFound
	}

	var student models.User
	if err := s.db.First(&student, response.UserID).Error; err != nil {
		return nil, ErrNotFound
	}

	var quiz models.Quiz
	if err := s.db.First(&quiz, response.QuizID).Error; err != nil {
		return nil, ErrNotFound
	}

	var questions []models.Question
	if err := s.db.Where("quiz_id = ?", response.QuizID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}

	var answers []models.StudentAnswer
	if err := s.db.Where("response_id = ?", responseID).Find(&answers).Error; err != nil {
		return nil, err
	}
	submitted := make(map[uint]string, len(answers))
	for _, a := range answers {
		submitted[a.QuestionID] = a.SubmittedText
	}

	paper := &ReviewPaper{
		StudentName: student.Username,
		QuizTitle:   quiz.Title,
		Score:       response.Score,
		TotalMarks:  response.TotalMarks,
		SubmittedAt: response.SubmittedAt,
	}
	for _, q := range questions {
		paper.Rows = append(paper.Rows, PaperRow{
			QuestionText:    q.Text,
			SubmittedAnswer: submitted[q.ID],
		})
	}
	return paper, nil
}
