package services_test

import (
	"errors"
	"testing"

	"github.com/shishant-cloud/quiz-portal-personal-project/internal/models"
	"github.com/shishant-cloud/quiz-portal-personal-project/internal/services"
)

func TestFreeTextScoring(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)
	student := seedStudent(t, db, "dave")

	quiz := seedQuiz(t, db, "Math", []services.QuestionInput{
		{Text: "2+2?", Type: models.QuestionTypeText, Marks: 5, CorrectAnswer: "4"},
	})
	qID := questionIDs(t, db, quiz.ID)[0]

	cases := []struct {
		submitted string
		score     int
	}{
		{"4", 5},
		{" 4 ", 5},
		{"five", 0},
	}
	for _, tc := range cases {
		resp, err := scoring.SubmitAttempt(quiz.ID, student.ID, map[uint]string{qID: tc.submitted})
		if err != nil {
			t.Fatalf("submit %q: %v", tc.submitted, err)
		}
		if resp.Score != tc.score {
			t.Fatalf("submit %q: expected score %d, got %d", tc.submitted, tc.score, resp.Score)
		}
		if resp.TotalMarks != 5 {
			t.Fatalf("submit %q: expected total 5, got %d", tc.submitted, resp.TotalMarks)
		}
	}
}

func TestMCQScoringIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)
	student := seedStudent(t, db, "erin")

	quiz := seedQuiz(t, db, "Capitals", []services.QuestionInput{
		{Text: "Capital of France?", Type: models.QuestionTypeMCQ, Marks: 2, CorrectAnswer: "Paris", Options: []string{"Paris", "London"}},
	})
	qID := questionIDs(t, db, quiz.ID)[0]

	cases := []struct {
		submitted string
		score     int
	}{
		{"paris", 2},
		{" PARIS ", 2},
		{"London", 0},
		{"", 0},
	}
	for _, tc := range cases {
		resp, err := scoring.SubmitAttempt(quiz.ID, student.ID, map[uint]string{qID: tc.submitted})
		if err != nil {
			t.Fatalf("submit %q: %v", tc.submitted, err)
		}
		if resp.Score != tc.score {
			t.Fatalf("submit %q: expected score %d, got %d", tc.submitted, tc.score, resp.Score)
		}
	}
}

func TestTotalMarksEqualsQuestionSum(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)
	student := seedStudent(t, db, "frank")

	quiz := seedQuiz(t, db, "Weights", []services.QuestionInput{
		{Text: "q1", Type: models.QuestionTypeText, Marks: 3, CorrectAnswer: "a"},
		{Text: "q2", Type: models.QuestionTypeText, Marks: 7, CorrectAnswer: "b"},
		{Text: "q3", Type: models.QuestionTypeText, Marks: 1, CorrectAnswer: "c"},
	})

	// Absent entries count as blank, so an empty submission still records
	// the full total.
	resp, err := scoring.SubmitAttempt(quiz.ID, student.ID, map[uint]string{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if resp.TotalMarks != 11 {
		t.Fatalf("expected total 11, got %d", resp.TotalMarks)
	}
	if resp.Score != 0 {
		t.Fatalf("expected score 0 for blank submission, got %d", resp.Score)
	}
}

func TestSubmitPersistsStudentAnswers(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)
	student := seedStudent(t, db, "grace")

	quiz := seedQuiz(t, db, "Snapshot", []services.QuestionInput{
		{Text: "q1", Type: models.QuestionTypeText, Marks: 1, CorrectAnswer: "right"},
		{Text: "q2", Type: models.QuestionTypeText, Marks: 1, CorrectAnswer: "also right"},
	})
	ids := questionIDs(t, db, quiz.ID)

	resp, err := scoring.SubmitAttempt(quiz.ID, student.ID, map[uint]string{ids[0]: " wrong guess "})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	var answers []models.StudentAnswer
	if err := db.Where("response_id = ?", resp.ID).Order("question_id ASC").Find(&answers).Error; err != nil {
		t.Fatalf("load answers: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("expected one stored answer per question, got %d", len(answers))
	}
	if answers[0].SubmittedText != " wrong guess " {
		t.Fatalf("expected verbatim submitted text, got %q", answers[0].SubmittedText)
	}
	if answers[1].SubmittedText != "" {
		t.Fatalf("expected blank for unanswered question, got %q", answers[1].SubmittedText)
	}
}

func TestSubmitUnknownQuiz(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)

	if _, err := scoring.SubmitAttempt(999, 1, nil); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
