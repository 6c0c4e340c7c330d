package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shishant-cloud/quiz-portal-personal-project/internal/models"
	"github.com/shishant-cloud/quiz-portal-personal-project/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

func (h *QuizHandler) AdminDashboard(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Quizzes": quizzes,
		"Flash":   popFlash(c),
	})
}

func (h *QuizHandler) ShowCreateQuiz(c *gin.Context) {
	c.HTML(http.StatusOK, "create_quiz.html", gin.H{"Flash": popFlash(c)})
}

// PublishQuiz accepts the authoring form. The form encodes questions as
// parallel lists (q_text[], q_type[], q_marks[], q_ans[]) plus per-question
// option lists (q_options_1[], q_options_2[], ...); they are folded into
// ordered question inputs before anything touches the database, so a length
// mismatch or bad marks value fails up front.
func (h *QuizHandler) PublishQuiz(c *gin.Context) {
	adminID := c.GetUint("user_id")
	title := c.PostForm("quiz_title")

	questions, err := parseQuestionForm(c)
	if err != nil {
		setFlash(c, err.Error())
		c.Redirect(http.StatusFound, "/admin/create_quiz")
		return
	}

	if _, err := h.quizService.PublishQuiz(adminID, title, questions); err != nil {
		if services.IsValidationError(err) {
			setFlash(c, err.Error())
			c.Redirect(http.StatusFound, "/admin/create_quiz")
			return
		}
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	setFlash(c, "Quiz Published Successfully!")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func parseQuestionForm(c *gin.Context) ([]services.QuestionInput, error) {
	texts := c.PostFormArray("q_text[]")
	types := c.PostFormArray("q_type[]")
	marks := c.PostFormArray("q_marks[]")
	answers := c.PostFormArray("q_ans[]")

	if len(types) != len(texts) || len(marks) != len(texts) || len(answers) != len(texts) {
		return nil, fmt.Errorf("question fields are mismatched: got %d texts, %d types, %d marks, %d answers",
			len(texts), len(types), len(marks), len(answers))
	}

	questions := make([]services.QuestionInput, 0, len(texts))
	for i := range texts {
		m, err := parseMarks(marks[i])
		if err != nil {
			return nil, fmt.Errorf("question %d: %v", i+1, err)
		}

		q := services.QuestionInput{
			Text:          texts[i],
			Type:          types[i],
			Marks:         m,
			CorrectAnswer: answers[i],
		}
		if q.Type == models.QuestionTypeMCQ {
			// The authoring form always submits a fixed number of option
			// inputs; unused ones arrive blank and must not become options.
			for _, opt := range c.PostFormArray(fmt.Sprintf("q_options_%d[]", i+1)) {
				if strings.TrimSpace(opt) == "" {
					continue
				}
				q.Options = append(q.Options, opt)
			}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// parseMarks rejects non-numeric or non-positive marks; blank defaults to 1.
func parseMarks(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	m, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("marks must be a number, got %q", raw)
	}
	if m < 1 {
		return 0, fmt.Errorf("marks must be positive, got %d", m)
	}
	return m, nil
}
