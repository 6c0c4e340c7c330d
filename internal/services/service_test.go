package services_test

import (
	"path/filepath"
	"testing"

	"github.com/shishant-cloud/quiz-portal-personal-project/internal/models"
	"github.com/shishant-cloud/quiz-portal-personal-project/internal/services"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "quiz.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
		&models.Response{},
		&models.StudentAnswer{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	auth := services.NewAuthService(db, "test-secret")
	user, err := auth.Register(username, username+"@example.com", "password123", models.RoleStudent)
	if err != nil {
		t.Fatalf("seed student %s: %v", username, err)
	}
	return user
}

func seedQuiz(t *testing.T, db *gorm.DB, title string, questions []services.QuestionInput) *models.Quiz {
	t.Helper()
	quiz, err := services.NewQuizService(db).PublishQuiz(1, title, questions)
	if err != nil {
		t.Fatalf("seed quiz %s: %v", title, err)
	}
	return quiz
}

func questionIDs(t *testing.T, db *gorm.DB, quizID uint) []uint {
	t.Helper()
	var questions []models.Question
	if err := db.Where("quiz_id = ?", quizID).Order("id ASC").Find(&questions).Error; err != nil {
		t.Fatalf("load questions: %v", err)
	}
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
