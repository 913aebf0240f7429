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

// WorkoutService handles workouts and their exercise entries. Every read
// and write is scoped to the owning user; rows belonging to someone else
// are reported as not found.
type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

type WorkoutItemInput struct {
	ExerciseID      uint     `json:"exercise_id"`
	Sets            int      `json:"sets"`
	Reps            int      `json:"reps"`
	WeightLifted    *float64 `json:"weight_lifted"`
	DurationMinutes *int     `json:"duration_minutes"`
	Notes           string   `json:"notes"`
	OrderIndex      *int     `json:"order_index"`
}

type CreateWorkoutInput struct {
	Name            string             `json:"name"`
	Date            string             `json:"date"`
	DurationMinutes *int               `json:"duration_minutes"`
	Notes           string             `json:"notes"`
	Status          string             `json:"status"`
	Exercises       []WorkoutItemInput `json:"exercises"`
}

func (s *WorkoutService) List(ctx context.Context, userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.WithContext(ctx).
		Preload("WorkoutExercises", orderItems).
		Preload("WorkoutExercises.Exercise").
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return workouts, nil
}

func (s *WorkoutService) Get(ctx context.Context, userID, workoutID uint) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.WithContext(ctx).
		Preload("WorkoutExercises", orderItems).
		Preload("WorkoutExercises.Exercise").
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("Workout")
		}
		return nil, apperror.NewInternal(err)
	}
	return &workout, nil
}

// Create writes the workout and all its exercise entries in one
// transaction. A missing exercise id aborts the whole batch.
func (s *WorkoutService) Create(ctx context.Context, userID uint, input CreateWorkoutInput) (*models.Workout, error) {
	input.Name = strings.TrimSpace(input.Name)

	errs := validate.WorkoutPayload(input.Name, input.Date)
	for _, item := range input.Exercises {
		errs = append(errs, validate.WorkoutItemPayload(item.Sets, item.Reps, item.WeightLifted)...)
	}
	if len(errs) > 0 {
		return nil, apperror.NewValidation(errs)
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, apperror.NewValidation([]string{"Workout date must be a valid date in YYYY-MM-DD format"})
	}

	status := input.Status
	if status == "" {
		status = models.WorkoutStatusCompleted
	}

	workout := models.Workout{
		UserID:          userID,
		Name:            input.Name,
		Date:            date,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
		Status:          status,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkExercisesExist(tx, input.Exercises); err != nil {
			return err
		}

		if err := tx.Create(&workout).Error; err != nil {
			return apperror.NewInternal(err)
		}

		for _, item := range input.Exercises {
			entry := models.WorkoutExercise{
				WorkoutID:       workout.ID,
				ExerciseID:      item.ExerciseID,
				Sets:            item.Sets,
				Reps:            item.Reps,
				WeightLifted:    item.WeightLifted,
				DurationMinutes: item.DurationMinutes,
				Notes:           item.Notes,
				OrderIndex:      item.OrderIndex,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return apperror.NewInternal(err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID, workout.ID)
}

// AddItem appends one exercise entry to an existing owned workout.
func (s *WorkoutService) AddItem(ctx context.Context, userID, workoutID uint, input WorkoutItemInput) (*models.WorkoutExercise, error) {
	if errs := validate.WorkoutItemPayload(input.Sets, input.Reps, input.WeightLifted); len(errs) > 0 {
		return nil, apperror.NewValidation(errs)
	}

	if _, err := s.Get(ctx, userID, workoutID); err != nil {
		return nil, err
	}

	var exercise models.Exercise
	if err := s.db.WithContext(ctx).First(&exercise, input.ExerciseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("Exercise")
		}
		return nil, apperror.NewInternal(err)
	}

	entry := models.WorkoutExercise{
		WorkoutID:       workoutID,
		ExerciseID:      input.ExerciseID,
		Sets:            input.Sets,
		Reps:            input.Reps,
		WeightLifted:    input.WeightLifted,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
		OrderIndex:      input.OrderIndex,
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, apperror.NewInternal(err)
	}

	entry.Exercise = exercise
	return &entry, nil
}

// Delete removes a workout and all of its exercise entries atomically,
// leaving no orphans.
func (s *WorkoutService) Delete(ctx context.Context, userID, workoutID uint) error {
	workout, err := s.Get(ctx, userID, workoutID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", workout.ID).Delete(&models.WorkoutExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(workout).Error
	})
	if err != nil {
		return apperror.NewInternal(err)
	}

	return nil
}

func (s *WorkoutService) checkExercisesExist(tx *gorm.DB, items []WorkoutItemInput) error {
	if len(items) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(items))
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ExerciseID]; !ok {
			seen[item.ExerciseID] = struct{}{}
			ids = append(ids, item.ExerciseID)
		}
	}

	var count int64
	if err := tx.Model(&models.Exercise{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return apperror.NewInternal(err)
	}
	if count != int64(len(ids)) {
		return apperror.NewNotFound("Exercise")
	}

	return nil
}

// orderItems keeps entries in supplied order when an order index exists,
// falling back to insertion order.
func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC, id ASC")
}
