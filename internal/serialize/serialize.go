// Package serialize defines the output contract for every entity: a pure
// function from the persisted model to the record returned over HTTP.
// Response shapes live here and nowhere else, so the wire format never
// drifts with the persistence shape.
package serialize

import (
	"time"

	"github.com/fittrack-dev/fittrack/internal/models"
)

const dateLayout = "2006-01-02"

type UserRecord struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     *string `json:"email"`
	CreatedAt string  `json:"created_at"`
}

func User(u models.User) UserRecord {
	return UserRecord{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type ExerciseRecord struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	MuscleGroup  string `json:"muscle_group"`
	Equipment    string `json:"equipment,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

func Exercise(e models.Exercise) ExerciseRecord {
	return ExerciseRecord{
		ID:           e.ID,
		Name:         e.Name,
		MuscleGroup:  e.MuscleGroup,
		Equipment:    e.Equipment,
		Instructions: e.Instructions,
	}
}

func Exercises(exercises []models.Exercise) []ExerciseRecord {
	records := make([]ExerciseRecord, 0, len(exercises))
	for _, e := range exercises {
		records = append(records, Exercise(e))
	}
	return records
}

type WorkoutExerciseRecord struct {
	ID              uint     `json:"id"`
	WorkoutID       uint     `json:"workout_id"`
	ExerciseID      uint     `json:"exercise_id"`
	ExerciseName    string   `json:"exercise_name,omitempty"`
	Sets            int      `json:"sets"`
	Reps            int      `json:"reps"`
	WeightLifted    *float64 `json:"weight_lifted"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	OrderIndex      *int     `json:"order_index,omitempty"`
}

// WorkoutExercise expects the Exercise association to be preloaded;
// ExerciseName is left empty when it is not.
func WorkoutExercise(we models.WorkoutExercise) WorkoutExerciseRecord {
	return WorkoutExerciseRecord{
		ID:              we.ID,
		WorkoutID:       we.WorkoutID,
		ExerciseID:      we.ExerciseID,
		ExerciseName:    we.Exercise.Name,
		Sets:            we.Sets,
		Reps:            we.Reps,
		WeightLifted:    we.WeightLifted,
		DurationMinutes: we.DurationMinutes,
		Notes:           we.Notes,
		OrderIndex:      we.OrderIndex,
	}
}

type WorkoutRecord struct {
	ID              uint                    `json:"id"`
	UserID          uint                    `json:"user_id"`
	Name            string                  `json:"name"`
	Date            string                  `json:"date"`
	DurationMinutes *int                    `json:"duration_minutes,omitempty"`
	Notes           string                  `json:"notes,omitempty"`
	Status          string                  `json:"status"`
	Exercises       []WorkoutExerciseRecord `json:"workout_exercises"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
}

func Workout(w models.Workout) WorkoutRecord {
	exercises := make([]WorkoutExerciseRecord, 0, len(w.WorkoutExercises))
	for _, we := range w.WorkoutExercises {
		exercises = append(exercises, WorkoutExercise(we))
	}

	return WorkoutRecord{
		ID:              w.ID,
		UserID:          w.UserID,
		Name:            w.Name,
		Date:            w.Date.Format(dateLayout),
		DurationMinutes: w.DurationMinutes,
		Notes:           w.Notes,
		Status:          w.Status,
		Exercises:       exercises,
		CreatedAt:       w.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       w.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func Workouts(workouts []models.Workout) []WorkoutRecord {
	records := make([]WorkoutRecord, 0, len(workouts))
	for _, w := range workouts {
		records = append(records, Workout(w))
	}
	return records
}

type WaterLogRecord struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	AmountML  int    `json:"amount_ml"`
	Timestamp string `json:"timestamp"`
}

func WaterLog(l models.WaterLog) WaterLogRecord {
	return WaterLogRecord{
		ID:        l.ID,
		UserID:    l.UserID,
		AmountML:  l.AmountML,
		Timestamp: l.Timestamp.UTC().Format(time.RFC3339),
	}
}

type WeightLogRecord struct {
	ID       uint    `json:"id"`
	UserID   uint    `json:"user_id"`
	WeightKG float64 `json:"weight_kg"`
	Date     string  `json:"date"`
}

func WeightLog(l models.WeightLog) WeightLogRecord {
	return WeightLogRecord{
		ID:       l.ID,
		UserID:   l.UserID,
		WeightKG: l.WeightKG,
		Date:     l.Date.Format(dateLayout),
	}
}

func WeightLogs(logs []models.WeightLog) []WeightLogRecord {
	records := make([]WeightLogRecord, 0, len(logs))
	for _, l := range logs {
		records = append(records, WeightLog(l))
	}
	return records
}
