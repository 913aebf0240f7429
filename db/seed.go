package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fittrack-dev/fittrack/internal/models"
)

var coreExercises = []models.Exercise{
	{Name: "Bench Press", MuscleGroup: "Chest", Equipment: "Barbell", Instructions: "Lie on bench, grip barbell slightly wider than shoulder width, lower to chest, press up"},
	{Name: "Squat", MuscleGroup: "Legs", Equipment: "Barbell", Instructions: "Bar on upper back, feet shoulder width, descend until thighs parallel to ground"},
	{Name: "Deadlift", MuscleGroup: "Back", Equipment: "Barbell", Instructions: "Bend knees, grip bar, lift with straight back, stand up fully"},
	{Name: "Overhead Press", MuscleGroup: "Shoulders", Equipment: "Barbell", Instructions: "Bar at shoulder level, press overhead until arms fully extended"},
	{Name: "Pull-up", MuscleGroup: "Back", Equipment: "Pull-up bar", Instructions: "Grip bar wider than shoulders, pull body up until chin over bar"},
	{Name: "Push-up", MuscleGroup: "Chest", Instructions: "Plank position, hands under shoulders, lower chest to floor, push back up"},
	{Name: "Bicep Curl", MuscleGroup: "Arms", Equipment: "Dumbbells", Instructions: "Stand holding dumbbells, curl weights toward shoulders with palms up"},
	{Name: "Tricep Extension", MuscleGroup: "Arms", Equipment: "Cable machine", Instructions: "Grip cable attachment overhead, extend arms downwards until straight"},
	{Name: "Lunges", MuscleGroup: "Legs", Instructions: "Step forward, lower until both knees bent 90 degrees, return to start"},
	{Name: "Plank", MuscleGroup: "Core", Instructions: "Forearms and toes on ground, keep body straight, hold position"},
}

// SeedExercises inserts the core exercise catalog, skipping names that
// already exist. Safe to run on every startup.
func SeedExercises(gdb *gorm.DB) error {
	// Create fills in primary keys; work on a copy so repeated calls
	// start from clean rows.
	exercises := make([]models.Exercise, len(coreExercises))
	copy(exercises, coreExercises)

	return gdb.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&exercises).Error
}
