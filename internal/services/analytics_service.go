package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fittrack-dev/fittrack/internal/apperror"
	"github.com/fittrack-dev/fittrack/internal/models"
	"github.com/fittrack-dev/fittrack/internal/validate"
)

const (
	recentWindowDays     = 30
	topExercisesLimit    = 5
	personalRecordsLimit = 3
)

// AnalyticsService computes per-user aggregates over workout history.
// Empty history always yields identity values, never an error.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

type ExerciseFrequency struct {
	ExerciseID   uint   `gorm:"column:exercise_id" json:"exercise_id"`
	ExerciseName string `gorm:"column:exercise_name" json:"exercise_name"`
	Count        int    `gorm:"column:cnt" json:"count"`
}

type PersonalRecord struct {
	ExerciseID   uint    `gorm:"column:exercise_id" json:"exercise_id"`
	ExerciseName string  `gorm:"column:exercise_name" json:"exercise_name"`
	MaxWeight    float64 `gorm:"column:max_weight" json:"max_weight"`
	AchievedOn   string  `gorm:"-" json:"achieved_on"`
}

type WorkoutStats struct {
	TotalWorkouts   int64               `json:"total_workouts"`
	RecentWorkouts  int64               `json:"recent_workouts"`
	TopExercises    []ExerciseFrequency `json:"top_exercises"`
	PersonalRecords []PersonalRecord    `json:"personal_records"`
}

func (s *AnalyticsService) TotalWorkouts(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Workout{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, apperror.NewInternal(err)
	}
	return count, nil
}

// RecentWorkouts counts workouts dated within the trailing 30 days,
// boundary inclusive.
func (s *AnalyticsService) RecentWorkouts(ctx context.Context, userID uint) (int64, error) {
	since := today().AddDate(0, 0, -recentWindowDays)

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Workout{}).
		Where("user_id = ? AND date >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		return 0, apperror.NewInternal(err)
	}
	return count, nil
}

// MostFrequentExercises groups the user's workout entries by exercise and
// returns the top N by occurrence count. Ties break on lower exercise id
// so the order is deterministic.
func (s *AnalyticsService) MostFrequentExercises(ctx context.Context, userID uint, limit int) ([]ExerciseFrequency, error) {
	rows := make([]ExerciseFrequency, 0, limit)
	err := s.db.WithContext(ctx).Model(&models.WorkoutExercise{}).
		Select("workout_exercises.exercise_id AS exercise_id, exercises.name AS exercise_name, COUNT(workout_exercises.id) AS cnt").
		Joins("JOIN workouts ON workouts.id = workout_exercises.workout_id").
		Joins("JOIN exercises ON exercises.id = workout_exercises.exercise_id").
		Where("workouts.user_id = ? AND workouts.deleted_at IS NULL", userID).
		Group("workout_exercises.exercise_id, exercises.name").
		Order("cnt DESC, exercise_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return rows, nil
}

// PersonalRecords returns, per exercise, the maximum weight the user has
// ever lifted, restricted to exercises with at least one entry above zero,
// descending by that maximum. Ties break on lower exercise id. AchievedOn
// is the date of the earliest workout containing the record entry.
func (s *AnalyticsService) PersonalRecords(ctx context.Context, userID uint, limit int) ([]PersonalRecord, error) {
	records := make([]PersonalRecord, 0, limit)
	err := s.db.WithContext(ctx).Model(&models.WorkoutExercise{}).
		Select("workout_exercises.exercise_id AS exercise_id, exercises.name AS exercise_name, MAX(workout_exercises.weight_lifted) AS max_weight").
		Joins("JOIN workouts ON workouts.id = workout_exercises.workout_id").
		Joins("JOIN exercises ON exercises.id = workout_exercises.exercise_id").
		Where("workouts.user_id = ? AND workouts.deleted_at IS NULL AND workout_exercises.weight_lifted > 0", userID).
		Group("workout_exercises.exercise_id, exercises.name").
		Order("max_weight DESC, exercise_id ASC").
		Limit(limit).
		Scan(&records).Error
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	for i := range records {
		achievedOn, err := s.recordDate(ctx, userID, records[i].ExerciseID, records[i].MaxWeight)
		if err != nil {
			return nil, err
		}
		records[i].AchievedOn = achievedOn
	}

	return records, nil
}

func (s *AnalyticsService) recordDate(ctx context.Context, userID, exerciseID uint, weight float64) (string, error) {
	var workout models.Workout
	err := s.db.WithContext(ctx).
		Joins("JOIN workout_exercises ON workout_exercises.workout_id = workouts.id").
		Where("workouts.user_id = ? AND workout_exercises.deleted_at IS NULL AND workout_exercises.exercise_id = ? AND workout_exercises.weight_lifted = ?",
			userID, exerciseID, weight).
		Order("workouts.date ASC").
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", apperror.NewInternal(err)
	}
	return workout.Date.Format(validate.DateLayout), nil
}

// Stats bundles every workout aggregate for the analytics endpoint.
func (s *AnalyticsService) Stats(ctx context.Context, userID uint) (*WorkoutStats, error) {
	total, err := s.TotalWorkouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.RecentWorkouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	topExercises, err := s.MostFrequentExercises(ctx, userID, topExercisesLimit)
	if err != nil {
		return nil, err
	}

	personalRecords, err := s.PersonalRecords(ctx, userID, personalRecordsLimit)
	if err != nil {
		return nil, err
	}

	return &WorkoutStats{
		TotalWorkouts:   total,
		RecentWorkouts:  recent,
		TopExercises:    topExercises,
		PersonalRecords: personalRecords,
	}, nil
}
