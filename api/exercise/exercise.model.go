package exercise

import "fitstack.dev/api/base"

// Status is the lifecycle of a catalog entry. Draft entries are only
// visible to admins, archived ones stay referencable from old logs but
// disappear from the public catalog.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type Exercise struct {
	base.BaseModel
	Name             string `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
	Description      string `gorm:"type:text" json:"description"`
	MuscleGroup      string `gorm:"type:varchar(50);index;not null" json:"muscle_group"`
	SecondaryMuscles string `gorm:"type:varchar(255)" json:"secondary_muscles,omitempty"`
	Equipment        string `gorm:"type:varchar(100);index" json:"equipment,omitempty"`
	Difficulty       string `gorm:"type:varchar(20);not null;default:'beginner'" json:"difficulty"`
	Status           Status `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
}
