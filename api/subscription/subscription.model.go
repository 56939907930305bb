package subscription

import (
	"time"

	"fitstack.dev/api/base"
)

const (
	PlanFree  = "free"
	PlanPro   = "pro"
	PlanElite = "elite"
)

const (
	StatusActive   = "active"
	StatusCanceled = "canceled"
	StatusExpired  = "expired"
)

// Plan is a seeded catalog row; there is no payment processor behind
// it, paid plans activate immediately as stubs.
type Plan struct {
	base.BaseModel
	Code            string `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Name            string `gorm:"type:varchar(50);not null" json:"name"`
	PriceCents      int    `gorm:"not null" json:"price_cents"`
	BillingInterval string `gorm:"type:varchar(20);not null;default:'monthly'" json:"billing_interval"`
	Features        string `gorm:"type:text" json:"features"`
}

type Subscription struct {
	base.BaseModel
	UserID           string     `gorm:"type:uuid;index;not null" json:"user_id"`
	PlanID           string     `gorm:"type:uuid;not null" json:"plan_id"`
	Plan             *Plan      `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	Status           string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CurrentPeriodEnd time.Time  `gorm:"not null" json:"current_period_end"`
	CanceledAt       *time.Time `json:"canceled_at,omitempty"`
}
