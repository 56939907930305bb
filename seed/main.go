package main

import (
	"log"
	"os"

	"fitstack.dev/api/api/exercise"
	"fitstack.dev/api/api/stats"
	"fitstack.dev/api/api/subscription"
	"fitstack.dev/api/api/user"
	database "fitstack.dev/api/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	database.ConnectDB()

	if err := database.DB.DB.AutoMigrate(
		&user.User{},
		&exercise.Exercise{},
		&stats.Achievement{},
		&subscription.Plan{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	db := database.DB.DB

	seedAdmin(db)
	seedExercises(db)
	seedAchievements(db)
	seedPlans(db)
}

func seedAdmin(db *gorm.DB) {
	var admin user.User
	err := db.Where("role = ?", user.RoleAdmin).First(&admin).Error
	if err == nil {
		log.Println("Admin user already exists, skipping seeding")
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to query admin user: %v", err)
	}

	password, err := bcrypt.GenerateFromPassword([]byte(os.Getenv("ADMIN_PASSWORD")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	admin = user.User{
		FirstName: os.Getenv("ADMIN_USERNAME"),
		LastName:  "Admin",
		Email:     os.Getenv("ADMIN_EMAIL"),
		Password:  string(password),
		Role:      user.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Println("Admin user seeded successfully")
}

func seedExercises(db *gorm.DB) {
	exercises := []exercise.Exercise{
		{Name: "Barbell Back Squat", MuscleGroup: "quadriceps", SecondaryMuscles: "glutes,hamstrings", Equipment: "barbell", Difficulty: exercise.DifficultyIntermediate, Status: exercise.StatusActive},
		{Name: "Conventional Deadlift", MuscleGroup: "hamstrings", SecondaryMuscles: "glutes,back", Equipment: "barbell", Difficulty: exercise.DifficultyIntermediate, Status: exercise.StatusActive},
		{Name: "Bench Press", MuscleGroup: "chest", SecondaryMuscles: "triceps,shoulders", Equipment: "barbell", Difficulty: exercise.DifficultyIntermediate, Status: exercise.StatusActive},
		{Name: "Overhead Press", MuscleGroup: "shoulders", SecondaryMuscles: "triceps", Equipment: "barbell", Difficulty: exercise.DifficultyIntermediate, Status: exercise.StatusActive},
		{Name: "Pull-Up", MuscleGroup: "back", SecondaryMuscles: "biceps", Equipment: "bodyweight", Difficulty: exercise.DifficultyIntermediate, Status: exercise.StatusActive},
		{Name: "Push-Up", MuscleGroup: "chest", SecondaryMuscles: "triceps,shoulders", Equipment: "bodyweight", Difficulty: exercise.DifficultyBeginner, Status: exercise.StatusActive},
		{Name: "Dumbbell Row", MuscleGroup: "back", SecondaryMuscles: "biceps", Equipment: "dumbbell", Difficulty: exercise.DifficultyBeginner, Status: exercise.StatusActive},
		{Name: "Plank", MuscleGroup: "core", Equipment: "bodyweight", Difficulty: exercise.DifficultyBeginner, Status: exercise.StatusActive},
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&exercises)
	if res.Error != nil {
		log.Fatalf("Failed to seed exercises: %v", res.Error)
	}
	log.Printf("Seeded exercises (%d new)", res.RowsAffected)
}

func seedAchievements(db *gorm.DB) {
	achievements := []stats.Achievement{
		{Code: "first_workout", Name: "First Steps", Description: "Log your first workout", Criterion: stats.CriterionWorkoutCount, Threshold: 1},
		{Code: "ten_workouts", Name: "Regular", Description: "Log 10 workouts", Criterion: stats.CriterionWorkoutCount, Threshold: 10},
		{Code: "fifty_workouts", Name: "Dedicated", Description: "Log 50 workouts", Criterion: stats.CriterionWorkoutCount, Threshold: 50},
		{Code: "hundred_workouts", Name: "Centurion", Description: "Log 100 workouts", Criterion: stats.CriterionWorkoutCount, Threshold: 100},
		{Code: "week_streak", Name: "One Week Strong", Description: "Train 7 days in a row", Criterion: stats.CriterionStreakDays, Threshold: 7},
		{Code: "month_streak", Name: "Unstoppable", Description: "Train 30 days in a row", Criterion: stats.CriterionStreakDays, Threshold: 30},
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&achievements)
	if res.Error != nil {
		log.Fatalf("Failed to seed achievements: %v", res.Error)
	}
	log.Printf("Seeded achievements (%d new)", res.RowsAffected)
}

func seedPlans(db *gorm.DB) {
	plans := []subscription.Plan{
		{Code: subscription.PlanFree, Name: "Free", PriceCents: 0, BillingInterval: "monthly", Features: "workout logging,streaks"},
		{Code: subscription.PlanPro, Name: "Pro", PriceCents: 999, BillingInterval: "monthly", Features: "workout logging,streaks,programs,achievement emails"},
		{Code: subscription.PlanElite, Name: "Elite", PriceCents: 2499, BillingInterval: "monthly", Features: "everything in Pro,priority support"},
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&plans)
	if res.Error != nil {
		log.Fatalf("Failed to seed plans: %v", res.Error)
	}
	log.Printf("Seeded plans (%d new)", res.RowsAffected)
}
