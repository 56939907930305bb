package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"fitstack.dev/api/api/user"
	"fitstack.dev/api/api/workout"
	"fitstack.dev/api/constants"
	database "fitstack.dev/api/db"
	"fitstack.dev/api/utils/email"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const streakCacheKey = "streak:%s"

type StatsService struct {
	DB             *gorm.DB
	WorkoutService *workout.WorkoutService
	UserService    *user.UserService
	Email          email.EmailSender
}

func NewStatsService() *StatsService {
	s := &StatsService{
		DB:             database.DB.DB,
		WorkoutService: workout.NewWorkoutService(),
		UserService:    user.NewUserService(),
	}
	if es := email.NewEmailService(); es != nil {
		s.Email = es
	}
	return s
}

// HandleWorkoutLogged is wired into workout.OnLogCreated. Both halves
// are best effort, a failed cache drop or award never fails the log write.
func (s *StatsService) HandleWorkoutLogged(userID string) {
	ctx := context.Background()
	s.InvalidateStreak(ctx, userID)
	if _, err := s.EvaluateAchievements(userID); err != nil {
		log.Printf("achievement evaluation for user %s failed: %v", userID, err)
	}
}

// HandleWorkoutDeleted is wired into workout.OnLogDeleted. Awards are
// never taken back, only the streak cache needs dropping.
func (s *StatsService) HandleWorkoutDeleted(userID string) {
	s.InvalidateStreak(context.Background(), userID)
}

func (s *StatsService) InvalidateStreak(ctx context.Context, userID string) {
	if err := database.RDB.Client.Del(ctx, fmt.Sprintf(streakCacheKey, userID)).Err(); err != nil {
		log.Printf("streak cache invalidation for user %s failed: %v", userID, err)
	}
}

func (s *StatsService) GetStreak(ctx context.Context, userID string) (Streak, error) {
	key := fmt.Sprintf(streakCacheKey, userID)
	if cached, err := database.RDB.Client.Get(ctx, key).Result(); err == nil {
		var streak Streak
		if err := json.Unmarshal([]byte(cached), &streak); err == nil {
			return streak, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("streak cache read for user %s failed: %v", userID, err)
	}

	days, err := s.WorkoutService.DistinctTrainingDays(userID)
	if err != nil {
		return Streak{}, err
	}

	streak := ComputeStreak(days, time.Now())

	if payload, err := json.Marshal(streak); err == nil {
		if err := database.RDB.Client.Set(ctx, key, payload, constants.StreakCacheTTL).Err(); err != nil {
			log.Printf("streak cache write for user %s failed: %v", userID, err)
		}
	}

	return streak, nil
}

// EvaluateAchievements awards every unearned achievement whose
// criterion the user now satisfies and returns the newly awarded ones.
func (s *StatsService) EvaluateAchievements(userID string) ([]Achievement, error) {
	var unearned []Achievement
	err := s.DB.Where("id NOT IN (?)",
		s.DB.Model(&UserAchievement{}).Select("achievement_id").Where("user_id = ?", userID),
	).Find(&unearned).Error
	if err != nil {
		return nil, err
	}
	if len(unearned) == 0 {
		return nil, nil
	}

	totalWorkouts, err := s.WorkoutService.CountLogs(userID)
	if err != nil {
		return nil, err
	}
	streak, err := s.GetStreak(context.Background(), userID)
	if err != nil {
		return nil, err
	}

	var awarded []Achievement
	for _, a := range unearned {
		var met bool
		switch a.Criterion {
		case CriterionWorkoutCount:
			met = totalWorkouts >= int64(a.Threshold)
		case CriterionStreakDays:
			met = streak.Current >= a.Threshold || streak.Longest >= a.Threshold
		default:
			log.Printf("unknown achievement criterion %q on %s", a.Criterion, a.Code)
			continue
		}
		if !met {
			continue
		}

		ua := &UserAchievement{
			UserID:        userID,
			AchievementID: a.ID,
			AwardedAt:     time.Now(),
		}
		if err := s.DB.Create(ua).Error; err != nil {
			// Unique index makes concurrent double awards lose here
			log.Printf("failed to award %s to user %s: %v", a.Code, userID, err)
			continue
		}
		awarded = append(awarded, a)
	}

	if len(awarded) > 0 && s.Email != nil {
		s.notifyAwards(userID, awarded)
	}

	return awarded, nil
}

func (s *StatsService) notifyAwards(userID string, awarded []Achievement) {
	userData, err := s.UserService.GetUserByID(userID)
	if err != nil {
		log.Printf("failed to load user %s for achievement email: %v", userID, err)
		return
	}
	for _, a := range awarded {
		if err := s.Email.SendEmail(
			[]string{userData.Email},
			fmt.Sprintf("Achievement unlocked: %s", a.Name),
			email.AchievementEmailHTML(userData.FirstName, a.Name),
		); err != nil {
			log.Printf("failed to send achievement email to %s: %v", userData.Email, err)
		}
	}
}

func (s *StatsService) ListAchievements(userID string) ([]AchievementStatus, error) {
	var all []Achievement
	if err := s.DB.Order("threshold asc, code asc").Find(&all).Error; err != nil {
		return nil, err
	}

	var earned []UserAchievement
	if err := s.DB.Where("user_id = ?", userID).Find(&earned).Error; err != nil {
		return nil, err
	}
	earnedAt := make(map[string]time.Time, len(earned))
	for _, ua := range earned {
		earnedAt[ua.AchievementID] = ua.AwardedAt
	}

	statuses := make([]AchievementStatus, 0, len(all))
	for _, a := range all {
		status := AchievementStatus{Achievement: a}
		if at, ok := earnedAt[a.ID]; ok {
			status.Earned = true
			awardedAt := at
			status.AwardedAt = &awardedAt
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (s *StatsService) GetSummary(ctx context.Context, userID string) (*Summary, error) {
	totalWorkouts, err := s.WorkoutService.CountLogs(userID)
	if err != nil {
		return nil, err
	}

	streak, err := s.GetStreak(ctx, userID)
	if err != nil {
		return nil, err
	}

	var earnedCount int64
	if err := s.DB.Model(&UserAchievement{}).Where("user_id = ?", userID).Count(&earnedCount).Error; err != nil {
		return nil, err
	}

	return &Summary{
		TotalWorkouts:      totalWorkouts,
		Streak:             streak,
		AchievementsEarned: earnedCount,
	}, nil
}
