package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/civics-prep/backend/internal/achievements"
	"github.com/civics-prep/backend/internal/catalog"
	"github.com/civics-prep/backend/internal/content"
	"github.com/civics-prep/backend/internal/database"
	"github.com/civics-prep/backend/internal/difficulty"
	"github.com/civics-prep/backend/internal/exam"
	"github.com/civics-prep/backend/internal/models"
	"github.com/civics-prep/backend/internal/scheduler"
	"github.com/civics-prep/backend/internal/streak"
)

func main() {
	// Optional; environment variables win over .env entries.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env: %v", err)
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services
	catalogService, err := catalog.NewService(catalog.NewStore(db))
	if err != nil {
		log.Fatalf("Failed to load question catalog: %v", err)
	}

	difficultyService := difficulty.NewService(difficulty.NewStore(db))
	streakService := streak.NewService(streak.NewStore(db))
	achievementService := achievements.NewService(achievements.NewStore(db))
	examService := exam.NewService(exam.NewStore(db), catalogService, difficultyService)
	schedulerService := scheduler.NewService(scheduler.NewStore(db), catalogService)
	contentService := content.NewService(catalogService)

	difficultyService.SetStreakService(streakService)
	difficultyService.SetAchievementService(achievementService)
	examService.SetStreakService(streakService)
	examService.SetAchievementService(achievementService)
	schedulerService.SetStreakService(streakService)
	schedulerService.SetAchievementService(achievementService)

	achievementService.SetSignalSource(func() (*models.ProgressSignals, error) {
		sig := &models.ProgressSignals{}

		studied, _, err := difficultyService.StudySignals()
		if err != nil {
			return nil, err
		}
		sig.QuestionsStudied = studied

		testStats, err := examService.Stats()
		if err != nil {
			return nil, err
		}
		sig.TestsCompleted = testStats.TestsCompleted
		sig.TestsPassed = testStats.TestsPassed
		sig.PerfectTests = testStats.PerfectTests
		sig.SeniorTestsPassed = testStats.SeniorTestsPassed

		reviews, err := schedulerService.TotalReviews()
		if err != nil {
			return nil, err
		}
		sig.FlashcardsReviewed = reviews

		streakStatus, err := streakService.Status()
		if err != nil {
			return nil, err
		}
		sig.CurrentStreak = streakStatus.CurrentStreak
		sig.LongestStreak = streakStatus.LongestStreak

		mastery, err := difficultyService.MasteryByCategory(catalogService.All())
		if err != nil {
			return nil, err
		}
		sig.CategoryMastery = mastery

		return sig, nil
	})

	// Initialize handlers
	catalogHandler := catalog.NewHandler(catalogService)
	difficultyHandler := difficulty.NewHandler(difficultyService)
	examHandler := exam.NewHandler(examService)
	schedulerHandler := scheduler.NewHandler(schedulerService)
	streakHandler := streak.NewHandler(streakService)
	achievementHandler := achievements.NewHandler(achievementService)
	contentHandler := content.NewHandler(contentService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Question catalog
	api.HandleFunc("/questions", catalogHandler.ListQuestions).Methods("GET")
	api.HandleFunc("/questions/search", catalogHandler.Search).Methods("GET")
	api.HandleFunc("/questions/senior", catalogHandler.ListSenior).Methods("GET")
	api.HandleFunc("/questions/category/{category}", catalogHandler.ListByCategory).Methods("GET")
	api.HandleFunc("/questions/{number}", catalogHandler.GetQuestion).Methods("GET")

	// Bookmarks
	api.HandleFunc("/bookmarks", catalogHandler.ListBookmarks).Methods("GET")
	api.HandleFunc("/bookmarks", catalogHandler.AddBookmark).Methods("POST")
	api.HandleFunc("/bookmarks/{number}", catalogHandler.RemoveBookmark).Methods("DELETE")

	// Practice tests
	api.HandleFunc("/tests", examHandler.StartTest).Methods("POST")
	api.HandleFunc("/tests/history", examHandler.History).Methods("GET")
	api.HandleFunc("/tests/stats", examHandler.Stats).Methods("GET")
	api.HandleFunc("/tests/{id}", examHandler.GetSession).Methods("GET")
	api.HandleFunc("/tests/{id}", examHandler.ResetTest).Methods("DELETE")
	api.HandleFunc("/tests/{id}/answers", examHandler.Answer).Methods("POST")
	api.HandleFunc("/tests/{id}/navigate", examHandler.Navigate).Methods("POST")
	api.HandleFunc("/tests/{id}/submit", examHandler.SubmitTest).Methods("POST")

	// Spaced-repetition reviews
	api.HandleFunc("/reviews", schedulerHandler.ReviewQuestion).Methods("POST")
	api.HandleFunc("/reviews/due", schedulerHandler.DueCards).Methods("GET")
	api.HandleFunc("/reviews/stats", schedulerHandler.Stats).Methods("GET")
	api.HandleFunc("/reviews/{number}", schedulerHandler.GetCard).Methods("GET")

	// Difficulty engine
	api.HandleFunc("/difficulty", difficultyHandler.ListEntries).Methods("GET")
	api.HandleFunc("/difficulty/attempts", difficultyHandler.RecordAttempt).Methods("POST")
	api.HandleFunc("/difficulty/hardest", difficultyHandler.Hardest).Methods("GET")
	api.HandleFunc("/difficulty/reset", difficultyHandler.Reset).Methods("POST")
	api.HandleFunc("/difficulty/{number}", difficultyHandler.GetEntry).Methods("GET")

	// Streak and daily goal
	api.HandleFunc("/progress/activity", streakHandler.RecordActivity).Methods("POST")
	api.HandleFunc("/progress/streak", streakHandler.Status).Methods("GET")
	api.HandleFunc("/progress/goal", streakHandler.SetDailyGoal).Methods("PUT")

	// Achievements
	api.HandleFunc("/achievements", achievementHandler.Status).Methods("GET")
	api.HandleFunc("/achievements/defs", achievementHandler.ListDefs).Methods("GET")
	api.HandleFunc("/achievements/acknowledge", achievementHandler.AcknowledgeNew).Methods("POST")

	// Dynamic answer refresh
	api.HandleFunc("/content/refresh", contentHandler.Refresh).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
