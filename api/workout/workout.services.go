package workout

import (
	"errors"
	"fmt"
	"time"

	"fitstack.dev/api/api/exercise"
	database "fitstack.dev/api/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrLogNotFound     = errors.New("workout log not found")
	ErrNoEntries       = errors.New("workout log needs at least one set entry")
	ErrInvalidEntry    = errors.New("set entries need a positive set number and rep count")
	ErrFuturePerformed = errors.New("performed_at cannot be in the future")
)

// OnLogCreated is invoked after a log write commits, with the owning
// user's ID. main wires it to the stats service so streak caches drop
// and achievements get evaluated. A nil hook is a no-op.
var OnLogCreated func(userID string)

// OnLogDeleted mirrors OnLogCreated for deletes. Removing a log can
// shrink the streak, so the cached value has to go too.
var OnLogDeleted func(userID string)

type WorkoutService struct {
	DB *gorm.DB
}

func NewWorkoutService() *WorkoutService {
	return &WorkoutService{DB: database.DB.DB}
}

func (s *WorkoutService) CreateLog(userID string, dto CreateLogDTO) (*WorkoutLog, error) {
	if len(dto.Entries) == 0 {
		return nil, ErrNoEntries
	}
	performedAt := dto.PerformedAt
	if performedAt.IsZero() {
		performedAt = time.Now()
	}
	if performedAt.After(time.Now().Add(time.Minute)) {
		return nil, ErrFuturePerformed
	}

	exerciseIDs := make([]string, 0, len(dto.Entries))
	for _, e := range dto.Entries {
		if e.SetNumber < 1 || e.Reps < 1 {
			return nil, ErrInvalidEntry
		}
		exerciseIDs = append(exerciseIDs, e.ExerciseID)
	}

	var known int64
	if err := s.DB.Model(&exercise.Exercise{}).Where("id IN ?", exerciseIDs).Count(&known).Error; err != nil {
		return nil, err
	}
	distinct := map[string]struct{}{}
	for _, id := range exerciseIDs {
		distinct[id] = struct{}{}
	}
	if int(known) != len(distinct) {
		return nil, fmt.Errorf("one or more exercise ids do not exist")
	}

	logEntry := &WorkoutLog{
		UserID:       userID,
		EnrollmentID: dto.EnrollmentID,
		PerformedAt:  performedAt,
		DurationMin:  dto.DurationMin,
		Notes:        dto.Notes,
	}
	for _, e := range dto.Entries {
		logEntry.Entries = append(logEntry.Entries, SetEntry{
			ExerciseID: e.ExerciseID,
			SetNumber:  e.SetNumber,
			Reps:       e.Reps,
			WeightKg:   e.WeightKg,
		})
	}

	if err := s.DB.Clauses(clause.Returning{}).Create(logEntry).Error; err != nil {
		return nil, err
	}

	if OnLogCreated != nil {
		OnLogCreated(userID)
	}

	return logEntry, nil
}

func (s *WorkoutService) GetLog(userID, logID string) (*WorkoutLog, error) {
	var logEntry WorkoutLog
	err := s.DB.Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("set_number asc")
	}).Preload("Entries.Exercise").First(&logEntry, "id = ? AND user_id = ?", logID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return &logEntry, nil
}

func (s *WorkoutService) ListLogs(userID string, filter ListFilter) ([]WorkoutLog, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 || filter.PerPage > 100 {
		filter.PerPage = 20
	}

	query := s.DB.Preload("Entries").Where("user_id = ?", userID)
	if !filter.From.IsZero() {
		query = query.Where("performed_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("performed_at <= ?", filter.To)
	}

	var logs []WorkoutLog
	err := query.Order("performed_at desc").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *WorkoutService) UpdateLog(userID, logID string, dto UpdateLogDTO) (*WorkoutLog, error) {
	logEntry, err := s.GetLog(userID, logID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.DurationMin != nil {
		updates["duration_min"] = *dto.DurationMin
	}
	if dto.Notes != nil {
		updates["notes"] = *dto.Notes
	}
	if len(updates) == 0 {
		return logEntry, nil
	}

	if err := s.DB.Model(logEntry).Updates(updates).Error; err != nil {
		return nil, err
	}
	return logEntry, nil
}

func (s *WorkoutService) DeleteLog(userID, logID string) error {
	logEntry, err := s.GetLog(userID, logID)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&SetEntry{}, "workout_log_id = ?", logEntry.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&WorkoutLog{}, "id = ?", logEntry.ID).Error
	})
	if err != nil {
		return err
	}

	if OnLogDeleted != nil {
		OnLogDeleted(userID)
	}
	return nil
}

// DistinctTrainingDays returns the distinct UTC calendar days the user
// logged at least one workout on, newest first. Input to the streak walk.
func (s *WorkoutService) DistinctTrainingDays(userID string) ([]time.Time, error) {
	var days []time.Time
	err := s.DB.Model(&WorkoutLog{}).
		Where("user_id = ?", userID).
		Select("DISTINCT date_trunc('day', performed_at AT TIME ZONE 'UTC') AS day").
		Order("day desc").
		Pluck("day", &days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (s *WorkoutService) CountLogs(userID string) (int64, error) {
	var count int64
	err := s.DB.Model(&WorkoutLog{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
