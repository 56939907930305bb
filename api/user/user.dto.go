package user

import "time"

type UpdateProfileDTO struct {
	FirstName *string    `json:"first_name,omitempty"`
	LastName  *string    `json:"last_name,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	HeightCm  *float64   `json:"height_cm,omitempty"`
	WeightKg  *float64   `json:"weight_kg,omitempty"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
