package user

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

type User struct {
	ID        string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName string     `gorm:"type:varchar(100);not null" json:"firstname"`
	LastName  string     `gorm:"type:varchar(100);not null" json:"lastname"`
	Email     string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"type:varchar(255);not null" json:"-"`
	Role      string     `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	HeightCm  *float64   `json:"height_cm,omitempty"`
	WeightKg  *float64   `json:"weight_kg,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
