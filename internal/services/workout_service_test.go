package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack-dev/fittrack/internal/apperror"
	"github.com/fittrack-dev/fittrack/internal/models"
	"github.com/fittrack-dev/fittrack/internal/services"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

func TestCreateWorkoutWithItems(t *testing.T) {
	gdb := newTestDB(t)
	svc := services.NewWorkoutService(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	bench := exerciseByName(t, gdb, "Bench Press")
	squat := exerciseByName(t, gdb, "Squat")

	workout, err := svc.Create(ctx, alice.ID, services.CreateWorkoutInput{
		Name: "Leg Day",
		Date: "2024-01-01",
		Exercises: []services.WorkoutItemInput{
			{ExerciseID: bench.ID, Sets: 3, Reps: 10, WeightLifted: ptrFloat(50.0)},
			{ExerciseID: squat.ID, Sets: 5, Reps: 5, WeightLifted: ptrFloat(100.0)},
		},
	})
	require.NoError(t, err)
	require.Len(t, workout.WorkoutExercises, 2)
	assert.Equal(t, "Leg Day", workout.Name)
	assert.Equal(t, models.WorkoutStatusCompleted, workout.Status)
	assert.Equal(t, "2024-01-01", workout.Date.Format("2006-01-02"))

	// reading back yields exactly the written entries, with the
	// exercise association resolved
	fetched, err := svc.Get(ctx, alice.ID, workout.ID)
	require.NoError(t, err)
	require.Len(t, fetched.WorkoutExercises, 2)
	assert.Equal(t, "Bench Press", fetched.WorkoutExercises[0].Exercise.Name)
	assert.Equal(t, 50.0, *fetched.WorkoutExercises[0].WeightLifted)
}

func TestCreateWorkoutPreservesOrderIndex(t *testing.T) {
	gdb := newTestDB(t)
	svc := services.NewWorkoutService(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	bench := exerciseByName(t, gdb, "Bench Press")
	squat := exerciseByName(t, gdb, "Squat")
	deadlift := exerciseByName(t, gdb, "Deadlift")

	// supplied out of order on purpose
	workout, err := svc.Create(ctx, alice.ID, services.CreateWorkoutInput{
		Name: "Full Body",
		Date: "2024-01-01",
		Exercises: []services.WorkoutItemInput{
			{ExerciseID: deadlift.ID, Sets: 1, Reps: 5, OrderIndex: ptrInt(3)},
			{ExerciseID: bench.ID, Sets: 3, Reps: 10, OrderIndex: ptrInt(1)},
			{ExerciseID: squat.ID, Sets: 5, Reps: 5, OrderIndex: ptrInt(2)},
		},
	})
	require.NoError(t, err)
	require.Len(t, workout.WorkoutExercises, 3)

	assert.Equal(t, bench.ID, workout.WorkoutExercises[0].ExerciseID)
	assert.Equal(t, squat.ID, workout.WorkoutExercises[1].ExerciseID)
	assert.Equal(t, deadlift.ID, workout.WorkoutExercises[2].ExerciseID)
}

func TestCreateWorkoutMissingExerciseIsAtomic(t *testing.T) {
	gdb := newTestDB(t)
	svc := services.NewWorkoutService(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	bench := exerciseByName(t, gdb, "Bench Press")

	_, err := svc.Create(ctx, alice.ID, services.CreateWorkoutInput{
		Name: "Leg Day",
		Date: "2024-01-01",
		Exercises: []services.WorkoutItemInput{
			{ExerciseID: bench.ID, Sets: 3, Reps: 10},
			{ExerciseID: 9999, Sets: 3, Reps: 10},
		},
	})
	var notFound *apperror.NotFoundError
	require.ErrorAs(t, err, &notFound)

	// nothing persisted
	var workouts, entries int64
	require.NoError(t, gdb.Model(&models.Workout{}).Count(&workouts).Error)
	require.NoError(t, gdb.Model(&models.WorkoutExercise{}).Count(&entries).Error)
	assert.Zero(t, workouts)
	assert.Zero(t, entries)
}

func TestCreateWorkoutValidation(t *testing.T) {
	gdb := newTestDB(t)
	svc := services.NewWorkoutService(gdb)

	_, err := svc.Create(context.Background(), createTestUser(t, gdb, "alice").ID, services.CreateWorkoutInput{
		Name: "",
		Date: "not-a-date",
		Exercises: []services.WorkoutItemInput{
			{ExerciseID: 1, Sets: 0, Reps: 0},
		},
	})
	var validation *apperror.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Len(t, validation.Messages, 4)
}

func TestDeleteWorkoutCascades(t *testing.T) {
	gdb := newTestDB(t)
	svc := services.NewWorkoutService(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	bench := exerciseByName(t, gdb, "Bench Press")

	workout, err := svc.Create(ctx, alice.ID, services.CreateWorkoutInput{
		Name: "Push Day",
		Date: "2024-01-01",
		Exercises: []services.WorkoutItemInput{
			{ExerciseID: bench.ID, Sets: 3, Reps: 10},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, alice.ID, workout.ID))

	_, err = svc.Get(ctx, alice.ID, workout.ID)
	var notFound *apperror.NotFoundError
	require.ErrorAs(t, err, &notFound)

	// no orphaned entries remain queryable
	var entries int64
	require.NoError(t, gdb.Model(&models.WorkoutExercise{}).
		Where("workout_id = ?", workout.ID).
		Count(&entries).Error)
	assert.Zero(t, entries)

	// the referenced catalog entry survives
	var exercises int64
	require.NoError(t, gdb.Model(&models.Exercise{}).
		Where("id = ?", bench.ID).
		Count(&exercises).Error)
	assert.EqualValues(t, 1, exercises)
}

func TestWorkoutScoping(t *testing.T) {
	gdb := newTestDB(t)
	svc := services.NewWorkoutService(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	bob := createTestUser(t, gdb, "bob")
	bench := exerciseByName(t, gdb, "Bench Press")

	workout, err := svc.Create(ctx, alice.ID, services.CreateWorkoutInput{
		Name: "Alice's Workout",
		Date: "2024-01-01",
		Exercises: []services.WorkoutItemInput{
			{ExerciseID: bench.ID, Sets: 3, Reps: 10},
		},
	})
	require.NoError(t, err)

	var notFound *apperror.NotFoundError

	// other users get an indistinguishable not-found
	_, err = svc.Get(ctx, bob.ID, workout.ID)
	require.ErrorAs(t, err, &notFound)

	err = svc.Delete(ctx, bob.ID, workout.ID)
	require.ErrorAs(t, err, &notFound)

	_, err = svc.AddItem(ctx, bob.ID, workout.ID, services.WorkoutItemInput{
		ExerciseID: bench.ID, Sets: 1, Reps: 1,
	})
	require.ErrorAs(t, err, &notFound)

	// and the row is still there for its owner
	_, err = svc.Get(ctx, alice.ID, workout.ID)
	require.NoError(t, err)

	workouts, err := svc.List(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestAddItem(t *testing.T) {
	gdb := newTestDB(t)
	svc := services.NewWorkoutService(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	bench := exerciseByName(t, gdb, "Bench Press")
	squat := exerciseByName(t, gdb, "Squat")

	workout, err := svc.Create(ctx, alice.ID, services.CreateWorkoutInput{
		Name: "Leg Day",
		Date: "2024-01-01",
		Exercises: []services.WorkoutItemInput{
			{ExerciseID: bench.ID, Sets: 3, Reps: 10},
		},
	})
	require.NoError(t, err)

	entry, err := svc.AddItem(ctx, alice.ID, workout.ID, services.WorkoutItemInput{
		ExerciseID: squat.ID, Sets: 5, Reps: 5, WeightLifted: ptrFloat(80),
	})
	require.NoError(t, err)
	assert.Equal(t, "Squat", entry.Exercise.Name)

	fetched, err := svc.Get(ctx, alice.ID, workout.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.WorkoutExercises, 2)
}

func TestAddItemUnknownExercise(t *testing.T) {
	gdb := newTestDB(t)
	svc := services.NewWorkoutService(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	bench := exerciseByName(t, gdb, "Bench Press")

	workout, err := svc.Create(ctx, alice.ID, services.CreateWorkoutInput{
		Name: "Leg Day",
		Date: "2024-01-01",
		Exercises: []services.WorkoutItemInput{
			{ExerciseID: bench.ID, Sets: 3, Reps: 10},
		},
	})
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, alice.ID, workout.ID, services.WorkoutItemInput{
		ExerciseID: 9999, Sets: 1, Reps: 1,
	})
	var notFound *apperror.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
