package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shishant-cloud/quiz-portal-personal-project/internal/services"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	quizService    *services.QuizService
	scoringService *services.ScoringService
}

func NewAttemptHandler(quizService *services.QuizService, scoringService *services.ScoringService) *AttemptHandler {
	return &AttemptHandler{quizService: quizService, scoringService: scoringService}
}

func (h *AttemptHandler) StudentDashboard(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "student_dashboard.html", gin.H{
		"Quizzes": quizzes,
		"Flash":   popFlash(c),
	})
}

func (h *AttemptHandler) AttemptQuiz(c *gin.Context) {
	quizID, ok := paramUint(c, "quiz_id")
	if !ok {
		c.String(http.StatusNotFound, "quiz not found")
		return
	}

	quiz, err := h.quizService.GetQuizPaper(quizID)
	if err != nil {
		c.String(http.StatusNotFound, "quiz not found")
		return
	}

	c.HTML(http.StatusOK, "attempt_quiz.html", gin.H{
		"Quiz":  quiz,
		"Flash": popFlash(c),
	})
}

// SubmitQuiz grades the posted answers (form fields ans_{question_id}) and
// flashes the score back on the dashboard.
func (h *AttemptHandler) SubmitQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")
	quizID, ok := paramUint(c, "quiz_id")
	if !ok {
		c.String(http.StatusNotFound, "quiz not found")
		return
	}

	quiz, err := h.quizService.GetQuizPaper(quizID)
	if err != nil {
		c.String(http.StatusNotFound, "quiz not found")
		return
	}

	answers := make(map[uint]string, len(quiz.Questions))
	for _, q := range quiz.Questions {
		answers[q.ID] = c.PostForm(fmt.Sprintf("ans_%d", q.ID))
	}

	response, err := h.scoringService.SubmitAttempt(quizID, userID, answers)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.String(http.StatusNotFound, "quiz not found")
			return
		}
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	setFlash(c, fmt.Sprintf("Test Submitted! Score: %d/%d", response.Score, response.TotalMarks))
	c.Redirect(http.StatusFound, "/student/dashboard")
}
