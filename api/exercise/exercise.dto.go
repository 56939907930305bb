package exercise

type CreateExerciseDTO struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	MuscleGroup      string `json:"muscle_group"`
	SecondaryMuscles string `json:"secondary_muscles"`
	Equipment        string `json:"equipment"`
	Difficulty       string `json:"difficulty"`
}

type UpdateExerciseDTO struct {
	Name             *string `json:"name,omitempty"`
	Description      *string `json:"description,omitempty"`
	MuscleGroup      *string `json:"muscle_group,omitempty"`
	SecondaryMuscles *string `json:"secondary_muscles,omitempty"`
	Equipment        *string `json:"equipment,omitempty"`
	Difficulty       *string `json:"difficulty,omitempty"`
	Status           *Status `json:"status,omitempty"`
}

type ListFilter struct {
	MuscleGroup string
	Equipment   string
	Page        int
	PerPage     int
}
