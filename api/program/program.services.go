package program

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fitstack.dev/api/api/exercise"
	database "fitstack.dev/api/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProgramNotFound    = errors.New("program not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this program")
	ErrProgramNotActive   = errors.New("program is not open for enrollment")
	ErrEnrollmentClosed   = errors.New("enrollment is no longer active")
	ErrTitleRequired      = errors.New("program title is required")
	ErrInvalidDuration    = errors.New("duration must be at least 1 week with 1-7 days per week")
)

type ProgramService struct {
	DB *gorm.DB
}

func NewProgramService() *ProgramService {
	return &ProgramService{DB: database.DB.DB}
}

func (s *ProgramService) Create(dto CreateProgramDTO) (*Program, error) {
	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrTitleRequired
	}
	if dto.DurationWeeks < 1 || dto.DaysPerWeek < 1 || dto.DaysPerWeek > 7 {
		return nil, ErrInvalidDuration
	}

	p := &Program{
		Title:         strings.TrimSpace(dto.Title),
		Description:   dto.Description,
		Difficulty:    dto.Difficulty,
		DurationWeeks: dto.DurationWeeks,
		DaysPerWeek:   dto.DaysPerWeek,
		Status:        exercise.StatusDraft,
	}
	if p.Difficulty == "" {
		p.Difficulty = exercise.DifficultyBeginner
	}

	for _, pe := range dto.Exercises {
		if pe.Week < 1 || pe.Week > dto.DurationWeeks || pe.Day < 1 || pe.Day > dto.DaysPerWeek {
			return nil, fmt.Errorf("exercise slot week %d day %d is outside the program schedule", pe.Week, pe.Day)
		}
		p.Exercises = append(p.Exercises, ProgramExercise{
			ExerciseID:  pe.ExerciseID,
			Week:        pe.Week,
			Day:         pe.Day,
			Order:       pe.Order,
			Sets:        pe.Sets,
			Reps:        pe.Reps,
			RestSeconds: pe.RestSeconds,
		})
	}

	if err := s.DB.Clauses(clause.Returning{}).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProgramService) GetByID(id string) (*Program, error) {
	var p Program
	err := s.DB.Preload("Exercises", func(db *gorm.DB) *gorm.DB {
		return db.Order("week asc, day asc, position asc")
	}).Preload("Exercises.Exercise").First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProgramService) ListActive() ([]Program, error) {
	var programs []Program
	if err := s.DB.Where("status = ?", exercise.StatusActive).Order("title asc").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (s *ProgramService) Update(id string, dto UpdateProgramDTO) (*Program, error) {
	_, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = strings.TrimSpace(*dto.Title)
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Difficulty != nil {
		updates["difficulty"] = *dto.Difficulty
	}
	if dto.DurationWeeks != nil {
		if *dto.DurationWeeks < 1 {
			return nil, ErrInvalidDuration
		}
		updates["duration_weeks"] = *dto.DurationWeeks
	}
	if dto.DaysPerWeek != nil {
		if *dto.DaysPerWeek < 1 || *dto.DaysPerWeek > 7 {
			return nil, ErrInvalidDuration
		}
		updates["days_per_week"] = *dto.DaysPerWeek
	}
	if dto.Status != nil {
		switch exercise.Status(*dto.Status) {
		case exercise.StatusDraft, exercise.StatusActive, exercise.StatusArchived:
			updates["status"] = *dto.Status
		default:
			return nil, exercise.ErrInvalidStatus
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&Program{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *ProgramService) Archive(id string) error {
	p, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if p.Status == exercise.StatusDraft {
		return s.DB.Select("Exercises").Delete(&Program{BaseModel: p.BaseModel}).Error
	}
	return s.DB.Model(&Program{}).Where("id = ?", id).Update("status", exercise.StatusArchived).Error
}

func (s *ProgramService) Enroll(userID, programID string) (*Enrollment, error) {
	p, err := s.GetByID(programID)
	if err != nil {
		return nil, err
	}
	if p.Status != exercise.StatusActive {
		return nil, ErrProgramNotActive
	}

	var existing Enrollment
	err = s.DB.First(&existing, "user_id = ? AND program_id = ? AND status = ?",
		userID, programID, EnrollmentActive).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	e := &Enrollment{
		UserID:      userID,
		ProgramID:   programID,
		Status:      EnrollmentActive,
		CurrentWeek: 1,
		CurrentDay:  1,
	}
	if err := s.DB.Clauses(clause.Returning{}).Create(e).Error; err != nil {
		return nil, err
	}
	e.Program = p
	return e, nil
}

func (s *ProgramService) ListEnrollments(userID string) ([]Enrollment, error) {
	var enrollments []Enrollment
	err := s.DB.Preload("Program").Where("user_id = ?", userID).
		Order("created_at desc").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *ProgramService) getOwnedEnrollment(userID, enrollmentID string) (*Enrollment, error) {
	var e Enrollment
	err := s.DB.Preload("Program").First(&e, "id = ? AND user_id = ?", enrollmentID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return &e, nil
}

// advanceCursor steps a (week, day) position one training day forward
// within a daysPerWeek x durationWeeks grid. done is true once the
// cursor walks past the final week.
func advanceCursor(week, day, daysPerWeek, durationWeeks int) (newWeek, newDay int, done bool) {
	day++
	if day > daysPerWeek {
		day = 1
		week++
	}
	if week > durationWeeks {
		return week, day, true
	}
	return week, day, false
}

// Advance marks the current training day of an enrollment as done and
// moves the cursor. Completing the final day completes the program.
func (s *ProgramService) Advance(userID, enrollmentID string) (*Enrollment, error) {
	e, err := s.getOwnedEnrollment(userID, enrollmentID)
	if err != nil {
		return nil, err
	}
	if e.Status != EnrollmentActive {
		return nil, ErrEnrollmentClosed
	}

	week, day, done := advanceCursor(e.CurrentWeek, e.CurrentDay, e.Program.DaysPerWeek, e.Program.DurationWeeks)

	updates := map[string]interface{}{
		"current_week": week,
		"current_day":  day,
	}
	if done {
		now := time.Now()
		updates["status"] = EnrollmentCompleted
		updates["completed_at"] = now
		e.CompletedAt = &now
		e.Status = EnrollmentCompleted
	}
	e.CurrentWeek = week
	e.CurrentDay = day

	if err := s.DB.Model(&Enrollment{}).Where("id = ?", e.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ProgramService) Abandon(userID, enrollmentID string) error {
	e, err := s.getOwnedEnrollment(userID, enrollmentID)
	if err != nil {
		return err
	}
	if e.Status != EnrollmentActive {
		return ErrEnrollmentClosed
	}
	return s.DB.Model(&Enrollment{}).Where("id = ?", e.ID).
		Update("status", EnrollmentAbandoned).Error
}
