package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/fittrack-dev/fittrack/internal/apperror"
	"github.com/fittrack-dev/fittrack/internal/models"
	"github.com/fittrack-dev/fittrack/internal/validate"
)

// ExerciseService manages the shared exercise catalog. Reads are
// unscoped: the catalog is not owned by any user.
type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

type ExerciseInput struct {
	Name         string `json:"name"`
	MuscleGroup  string `json:"muscle_group"`
	Equipment    string `json:"equipment"`
	Instructions string `json:"instructions"`
}

func (s *ExerciseService) List(ctx context.Context) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&exercises).Error; err != nil {
		return nil, apperror.NewInternal(err)
	}
	return exercises, nil
}

func (s *ExerciseService) Get(ctx context.Context, id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.db.WithContext(ctx).First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("Exercise")
		}
		return nil, apperror.NewInternal(err)
	}
	return &exercise, nil
}

func (s *ExerciseService) Create(ctx context.Context, input ExerciseInput) (*models.Exercise, error) {
	input.Name = strings.TrimSpace(input.Name)

	if errs := validate.ExercisePayload(input.Name, input.MuscleGroup); len(errs) > 0 {
		return nil, apperror.NewValidation(errs)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Exercise{}).
		Where("name = ?", input.Name).
		Count(&count).Error; err != nil {
		return nil, apperror.NewInternal(err)
	}
	if count > 0 {
		return nil, apperror.NewConflict("Exercise with this name already exists")
	}

	exercise := models.Exercise{
		Name:         input.Name,
		MuscleGroup:  input.MuscleGroup,
		Equipment:    input.Equipment,
		Instructions: input.Instructions,
	}

	if err := s.db.WithContext(ctx).Create(&exercise).Error; err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &exercise, nil
}

func (s *ExerciseService) Update(ctx context.Context, id uint, input ExerciseInput) (*models.Exercise, error) {
	exercise, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	input.Name = strings.TrimSpace(input.Name)

	if errs := validate.ExercisePayload(input.Name, input.MuscleGroup); len(errs) > 0 {
		return nil, apperror.NewValidation(errs)
	}

	if input.Name != exercise.Name {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Exercise{}).
			Where("name = ? AND id != ?", input.Name, id).
			Count(&count).Error; err != nil {
			return nil, apperror.NewInternal(err)
		}
		if count > 0 {
			return nil, apperror.NewConflict("Exercise with this name already exists")
		}
	}

	exercise.Name = input.Name
	exercise.MuscleGroup = input.MuscleGroup
	exercise.Equipment = input.Equipment
	exercise.Instructions = input.Instructions

	if err := s.db.WithContext(ctx).Save(exercise).Error; err != nil {
		return nil, apperror.NewInternal(err)
	}

	return exercise, nil
}

func (s *ExerciseService) Delete(ctx context.Context, id uint) error {
	exercise, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(exercise).Error; err != nil {
		return apperror.NewInternal(err)
	}

	return nil
}
