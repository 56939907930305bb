package exercise

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"fitstack.dev/api/constants"
	database "fitstack.dev/api/db"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrNameRequired     = errors.New("exercise name is required")
	ErrMuscleGroupEmpty = errors.New("muscle group is required")
	ErrDuplicateName    = errors.New("an exercise with that name already exists")
	ErrInvalidStatus    = errors.New("invalid exercise status")
)

const catalogCacheKey = "exercise_catalog:%s:%s:%d:%d"

type ExerciseService struct {
	DB *gorm.DB
}

func NewExerciseService() *ExerciseService {
	return &ExerciseService{DB: database.DB.DB}
}

func validDifficulty(d string) bool {
	switch d {
	case "", DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

func (s *ExerciseService) Create(dto CreateExerciseDTO) (*Exercise, error) {
	if strings.TrimSpace(dto.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(dto.MuscleGroup) == "" {
		return nil, ErrMuscleGroupEmpty
	}
	if !validDifficulty(dto.Difficulty) {
		return nil, fmt.Errorf("unknown difficulty %q", dto.Difficulty)
	}

	ex := &Exercise{
		Name:             strings.TrimSpace(dto.Name),
		Description:      dto.Description,
		MuscleGroup:      strings.ToLower(strings.TrimSpace(dto.MuscleGroup)),
		SecondaryMuscles: dto.SecondaryMuscles,
		Equipment:        strings.ToLower(strings.TrimSpace(dto.Equipment)),
		Difficulty:       dto.Difficulty,
		Status:           StatusDraft,
	}
	if ex.Difficulty == "" {
		ex.Difficulty = DifficultyBeginner
	}

	if err := s.DB.Clauses(clause.Returning{}).Create(ex).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	s.invalidateCatalogCache(context.Background())
	return ex, nil
}

func (s *ExerciseService) GetByID(id string) (*Exercise, error) {
	var ex Exercise
	if err := s.DB.First(&ex, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return &ex, nil
}

// ListActive serves the public catalog. Results are cached per
// filter/page combination and dropped on any admin write.
func (s *ExerciseService) ListActive(ctx context.Context, filter ListFilter) ([]Exercise, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 || filter.PerPage > 100 {
		filter.PerPage = 50
	}

	key := fmt.Sprintf(catalogCacheKey, filter.MuscleGroup, filter.Equipment, filter.Page, filter.PerPage)
	if cached, err := database.RDB.Client.Get(ctx, key).Result(); err == nil {
		var exercises []Exercise
		if err := json.Unmarshal([]byte(cached), &exercises); err == nil {
			return exercises, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("exercise catalog cache read failed: %v", err)
	}

	query := s.DB.Where("status = ?", StatusActive)
	if filter.MuscleGroup != "" {
		query = query.Where("muscle_group = ?", strings.ToLower(filter.MuscleGroup))
	}
	if filter.Equipment != "" {
		query = query.Where("equipment = ?", strings.ToLower(filter.Equipment))
	}

	var exercises []Exercise
	err := query.Order("name asc").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(exercises); err == nil {
		if err := database.RDB.Client.Set(ctx, key, payload, constants.ExerciseCatalogCacheTTL).Err(); err != nil {
			log.Printf("exercise catalog cache write failed: %v", err)
		}
	}

	return exercises, nil
}

func (s *ExerciseService) ListAll() ([]Exercise, error) {
	var exercises []Exercise
	if err := s.DB.Order("name asc").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (s *ExerciseService) Update(id string, dto UpdateExerciseDTO) (*Exercise, error) {
	ex, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = strings.TrimSpace(*dto.Name)
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.MuscleGroup != nil {
		updates["muscle_group"] = strings.ToLower(strings.TrimSpace(*dto.MuscleGroup))
	}
	if dto.SecondaryMuscles != nil {
		updates["secondary_muscles"] = *dto.SecondaryMuscles
	}
	if dto.Equipment != nil {
		updates["equipment"] = strings.ToLower(strings.TrimSpace(*dto.Equipment))
	}
	if dto.Difficulty != nil {
		if !validDifficulty(*dto.Difficulty) {
			return nil, fmt.Errorf("unknown difficulty %q", *dto.Difficulty)
		}
		updates["difficulty"] = *dto.Difficulty
	}
	if dto.Status != nil {
		switch *dto.Status {
		case StatusDraft, StatusActive, StatusArchived:
			updates["status"] = *dto.Status
		default:
			return nil, ErrInvalidStatus
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(ex).Updates(updates).Error; err != nil {
			return nil, err
		}
		s.invalidateCatalogCache(context.Background())
	}
	return ex, nil
}

// Archive retires an exercise from the catalog. Hard delete is only
// allowed for drafts nothing references yet.
func (s *ExerciseService) Archive(id string) error {
	ex, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if ex.Status == StatusDraft {
		if err := s.DB.Delete(&Exercise{}, "id = ?", id).Error; err != nil {
			return err
		}
	} else {
		if err := s.DB.Model(ex).Update("status", StatusArchived).Error; err != nil {
			return err
		}
	}

	s.invalidateCatalogCache(context.Background())
	return nil
}

func (s *ExerciseService) invalidateCatalogCache(ctx context.Context) {
	iter := database.RDB.Client.Scan(ctx, 0, "exercise_catalog:*", 100).Iterator()
	for iter.Next(ctx) {
		database.RDB.Client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("exercise catalog cache invalidation failed: %v", err)
	}
}
