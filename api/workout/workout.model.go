package workout

import (
	"time"

	"fitstack.dev/api/api/exercise"
	"fitstack.dev/api/base"
)

type WorkoutLog struct {
	base.BaseModel
	UserID       string     `gorm:"type:uuid;index;not null" json:"user_id"`
	EnrollmentID *string    `gorm:"type:uuid;index" json:"enrollment_id,omitempty"`
	PerformedAt  time.Time  `gorm:"index;not null" json:"performed_at"`
	DurationMin  int        `json:"duration_min"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	Entries      []SetEntry `gorm:"constraint:OnDelete:CASCADE" json:"entries"`
}

type SetEntry struct {
	base.BaseModel
	WorkoutLogID string             `gorm:"type:uuid;index;not null" json:"workout_log_id"`
	ExerciseID   string             `gorm:"type:uuid;not null" json:"exercise_id"`
	Exercise     *exercise.Exercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
	SetNumber    int                `gorm:"not null" json:"set_number"`
	Reps         int                `gorm:"not null" json:"reps"`
	WeightKg     float64            `json:"weight_kg"`
}
