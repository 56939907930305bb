package program

import (
	"time"

	"fitstack.dev/api/api/exercise"
	"fitstack.dev/api/base"
)

type Program struct {
	base.BaseModel
	Title         string            `gorm:"type:varchar(150);not null" json:"title"`
	Description   string            `gorm:"type:text" json:"description"`
	Difficulty    string            `gorm:"type:varchar(20);not null;default:'beginner'" json:"difficulty"`
	DurationWeeks int               `gorm:"not null" json:"duration_weeks"`
	DaysPerWeek   int               `gorm:"not null" json:"days_per_week"`
	Status        exercise.Status   `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	Exercises     []ProgramExercise `gorm:"constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}

// ProgramExercise is one slot in a program's schedule: exercise X on
// week W, day D, at position Order within that day.
type ProgramExercise struct {
	base.BaseModel
	ProgramID   string             `gorm:"type:uuid;index;not null" json:"program_id"`
	ExerciseID  string             `gorm:"type:uuid;not null" json:"exercise_id"`
	Exercise    *exercise.Exercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
	Week        int                `gorm:"not null" json:"week"`
	Day         int                `gorm:"not null" json:"day"`
	Order       int                `gorm:"column:position;not null" json:"order"`
	Sets        int                `gorm:"not null" json:"sets"`
	Reps        int                `gorm:"not null" json:"reps"`
	RestSeconds int                `json:"rest_seconds"`
}

const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentAbandoned = "abandoned"
)

// Enrollment is a user's association with a program, tracking the
// current week/day cursor until completion.
type Enrollment struct {
	base.BaseModel
	UserID      string     `gorm:"type:uuid;index;not null" json:"user_id"`
	ProgramID   string     `gorm:"type:uuid;index;not null" json:"program_id"`
	Program     *Program   `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CurrentWeek int        `gorm:"not null;default:1" json:"current_week"`
	CurrentDay  int        `gorm:"not null;default:1" json:"current_day"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
