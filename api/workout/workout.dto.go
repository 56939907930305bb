package workout

import "time"

type CreateLogDTO struct {
	EnrollmentID *string         `json:"enrollment_id,omitempty"`
	PerformedAt  time.Time       `json:"performed_at"`
	DurationMin  int             `json:"duration_min"`
	Notes        string          `json:"notes"`
	Entries      []CreateSetEntry `json:"entries"`
}

type CreateSetEntry struct {
	ExerciseID string  `json:"exercise_id"`
	SetNumber  int     `json:"set_number"`
	Reps       int     `json:"reps"`
	WeightKg   float64 `json:"weight_kg"`
}

type UpdateLogDTO struct {
	DurationMin *int    `json:"duration_min,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type ListFilter struct {
	From    time.Time
	To      time.Time
	Page    int
	PerPage int
}
