package main

import (
	"log"
	"os"

	"fitstack.dev/api/api/auth"
	"fitstack.dev/api/api/exercise"
	"fitstack.dev/api/api/program"
	"fitstack.dev/api/api/stats"
	"fitstack.dev/api/api/subscription"
	"fitstack.dev/api/api/user"
	"fitstack.dev/api/api/workout"
	database "fitstack.dev/api/db"
	_ "fitstack.dev/api/docs"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
)

// @title FitStack API
// @version 1.0
// @description Fitness tracking backend: workouts, programs, streaks and achievements
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	database.ConnectDB()
	database.InitializeRedis()

	if err := database.DB.DB.AutoMigrate(
		&user.User{},
		&exercise.Exercise{},
		&program.Program{},
		&program.ProgramExercise{},
		&program.Enrollment{},
		&workout.WorkoutLog{},
		&workout.SetEntry{},
		&stats.Achievement{},
		&stats.UserAchievement{},
		&subscription.Plan{},
		&subscription.Subscription{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := fiber.New()

	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("FRONTEND_URL"),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	auth.RegisterAuthRoutes(app)
	user.RegisterRoutes(app)
	exercise.RegisterRoutes(app)
	program.RegisterRoutes(app)
	workout.RegisterRoutes(app)
	stats.RegisterRoutes(app)
	subscription.RegisterRoutes(app)

	// Dropping streak caches and awarding achievements rides on every
	// log write; wired here to keep workout free of a stats dependency.
	statsService := stats.NewStatsService()
	workout.OnLogCreated = statsService.HandleWorkoutLogged
	workout.OnLogDeleted = statsService.HandleWorkoutDeleted

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
