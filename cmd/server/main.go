package main

import (
	"log"

	"github.com/shishant-cloud/quiz-portal-personal-project/internal/config"
	"github.com/shishant-cloud/quiz-portal-personal-project/internal/database"
	"github.com/shishant-cloud/quiz-portal-personal-project/internal/handlers"
	"github.com/shishant-cloud/quiz-portal-personal-project/internal/middleware"
	"github.com/shishant-cloud/quiz-portal-personal-project/internal/models"
	"github.com/shishant-cloud/quiz-portal-personal-project/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	authService := services.NewAuthService(db, cfg.SessionSecret)
	quizService := services.NewQuizService(db)
	scoringService := services.NewScoringService(db)
	reviewService := services.NewReviewService(db)

	authHandler := handlers.NewAuthHandler(authService, cfg.AdminAccessKey)
	quizHandler := handlers.NewQuizHandler(quizService)
	attemptHandler := handlers.NewAttemptHandler(quizService, scoringService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", handlers.Index)
	r.GET("/logout", authHandler.Logout)

	r.GET("/admin/signup", authHandler.ShowAdminSignup)
	r.POST("/admin/signup", authHandler.AdminSignup)
	r.GET("/admin/login", authHandler.ShowAdminLogin)
	r.POST("/admin/login", authHandler.AdminLogin)
	r.GET("/user/signup", authHandler.ShowUserSignup)
	r.POST("/user/signup", authHandler.UserSignup)
	r.GET("/user/login", authHandler.ShowUserLogin)
	r.POST("/user/login", authHandler.UserLogin)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(authService, models.RoleAdmin, "/admin/login"))
	{
		admin.GET("/dashboard", quizHandler.AdminDashboard)
		admin.GET("/create_quiz", quizHandler.ShowCreateQuiz)
		admin.POST("/publish_quiz", quizHandler.PublishQuiz)
		admin.GET("/responses/:quiz_id", reviewHandler.ListResponses)
		admin.GET("/verify_answers/:response_id", reviewHandler.VerifyAnswers)
	}

	student := r.Group("")
	student.Use(middleware.RequireRole(authService, models.RoleStudent, "/user/login"))
	{
		student.GET("/student/dashboard", attemptHandler.StudentDashboard)
		student.GET("/quiz/:quiz_id", attemptHandler.AttemptQuiz)
		student.POST("/quiz/submit/:quiz_id", attemptHandler.SubmitQuiz)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
