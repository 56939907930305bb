package program

type CreateProgramDTO struct {
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Difficulty    string                  `json:"difficulty"`
	DurationWeeks int                     `json:"duration_weeks"`
	DaysPerWeek   int                     `json:"days_per_week"`
	Exercises     []CreateProgramExercise `json:"exercises"`
}

type CreateProgramExercise struct {
	ExerciseID  string `json:"exercise_id"`
	Week        int    `json:"week"`
	Day         int    `json:"day"`
	Order       int    `json:"order"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
}

type UpdateProgramDTO struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Difficulty    *string `json:"difficulty,omitempty"`
	DurationWeeks *int    `json:"duration_weeks,omitempty"`
	DaysPerWeek   *int    `json:"days_per_week,omitempty"`
	Status        *string `json:"status,omitempty"`
}
