package stats

import (
	"time"

	"fitstack.dev/api/base"
)

const (
	CriterionWorkoutCount = "workout_count"
	CriterionStreakDays   = "streak_days"
)

// Achievement is a seeded catalog row; users never create these.
type Achievement struct {
	base.BaseModel
	Code        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Criterion   string `gorm:"type:varchar(30);not null" json:"criterion"`
	Threshold   int    `gorm:"not null" json:"threshold"`
}

type UserAchievement struct {
	base.BaseModel
	UserID        string       `gorm:"type:uuid;uniqueIndex:idx_user_achievement;not null" json:"user_id"`
	AchievementID string       `gorm:"type:uuid;uniqueIndex:idx_user_achievement;not null" json:"achievement_id"`
	Achievement   *Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
	AwardedAt     time.Time    `gorm:"not null" json:"awarded_at"`
}

type AchievementStatus struct {
	Achievement
	Earned    bool       `json:"earned"`
	AwardedAt *time.Time `json:"awarded_at,omitempty"`
}

type Summary struct {
	TotalWorkouts      int64  `json:"total_workouts"`
	Streak             Streak `json:"streak"`
	AchievementsEarned int64  `json:"achievements_earned"`
}
