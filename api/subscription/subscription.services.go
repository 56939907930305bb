package subscription

import (
	"errors"
	"time"

	"fitstack.dev/api/constants"
	database "fitstack.dev/api/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrNoActiveSub        = errors.New("no active subscription")
	ErrAlreadySubscribed  = errors.New("already subscribed to this plan")
	ErrFreePlanNotBilling = errors.New("the free plan needs no subscription")
)

type SubscriptionService struct {
	DB *gorm.DB
}

func NewSubscriptionService() *SubscriptionService {
	return &SubscriptionService{DB: database.DB.DB}
}

func (s *SubscriptionService) ListPlans() ([]Plan, error) {
	var plans []Plan
	if err := s.DB.Order("price_cents asc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *SubscriptionService) GetPlanByCode(code string) (*Plan, error) {
	var plan Plan
	if err := s.DB.First(&plan, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// Current returns the user's non-expired subscription, nil when the
// user is on the implicit free plan.
func (s *SubscriptionService) Current(userID string) (*Subscription, error) {
	var sub Subscription
	err := s.DB.Preload("Plan").
		First(&sub, "user_id = ? AND status <> ?", userID, StatusExpired).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// A canceled or stale period lapses on read, there is no billing
	// scheduler to do it.
	if sub.CurrentPeriodEnd.Before(time.Now()) {
		if err := s.DB.Model(&sub).Update("status", StatusExpired).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &sub, nil
}

// Subscribe activates a plan immediately, no payment involved. An
// existing non-expired subscription is expired in the same transaction
// so the user never holds two live rows.
func (s *SubscriptionService) Subscribe(userID, planCode string) (*Subscription, error) {
	if planCode == PlanFree {
		return nil, ErrFreePlanNotBilling
	}

	plan, err := s.GetPlanByCode(planCode)
	if err != nil {
		return nil, err
	}

	current, err := s.Current(userID)
	if err != nil {
		return nil, err
	}
	if current != nil && current.PlanID == plan.ID && current.Status == StatusActive {
		return nil, ErrAlreadySubscribed
	}

	sub := &Subscription{
		UserID:           userID,
		PlanID:           plan.ID,
		Status:           StatusActive,
		CurrentPeriodEnd: time.Now().Add(constants.SubscriptionPeriod),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if current != nil {
			if err := tx.Model(&Subscription{}).Where("id = ?", current.ID).
				Update("status", StatusExpired).Error; err != nil {
				return err
			}
		}
		return tx.Clauses(clause.Returning{}).Create(sub).Error
	})
	if err != nil {
		return nil, err
	}

	sub.Plan = plan
	return sub, nil
}

// Cancel flags the subscription; access lasts until the period end.
func (s *SubscriptionService) Cancel(userID string) (*Subscription, error) {
	current, err := s.Current(userID)
	if err != nil {
		return nil, err
	}
	if current == nil || current.Status != StatusActive {
		return nil, ErrNoActiveSub
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      StatusCanceled,
		"canceled_at": now,
	}
	if err := s.DB.Model(&Subscription{}).Where("id = ?", current.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	current.Status = StatusCanceled
	current.CanceledAt = &now
	return current, nil
}
