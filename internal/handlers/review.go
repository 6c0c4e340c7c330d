package handlers

import (
	"net/http"

	"github.com/shishant-cloud/quiz-portal-personal-project/internal/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) ListResponses(c *gin.Context) {
	quizID, ok := paramUint(c, "quiz_id")
	if !ok {
		c.String(http.StatusNotFound, "quiz not found")
		return
	}

	view, err := h.reviewService.ListResponses(quizID)
	if err != nil {
		c.String(http.StatusNotFound, "quiz not found")
		return
	}

	c.HTML(http.StatusOK, "view_responses.html", gin.H{
		"View":  view,
		"Flash": popFlash(c),
	})
}

// VerifyAnswers shows one response as a paper: each question of the quiz
// with the answer the student actually submitted.
func (h *ReviewHandler) VerifyAnswers(c *gin.Context) {
	responseID, ok := paramUint(c, "response_id")
	if !ok {
		c.String(http.StatusNotFound, "response not found")
		return
	}

	paper, err := h.reviewService.BuildPaper(responseID)
	if err != nil {
		c.String(http.StatusNotFound, "response not found")
		return
	}

	c.HTML(http.StatusOK, "verify_answers.html", gin.H{
		"Paper": paper,
		"Flash": popFlash(c),
	})
}
