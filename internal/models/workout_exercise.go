package models

import "gorm.io/gorm"

// WorkoutExercise is one exercise's sets/reps/weight within a workout.
type WorkoutExercise struct {
	gorm.Model

	WorkoutID       uint `gorm:"not null;index"`
	ExerciseID      uint `gorm:"not null;index"`
	Sets            int  `gorm:"not null"`
	Reps            int  `gorm:"not null"`
	WeightLifted    *float64
	DurationMinutes *int
	Notes           string
	OrderIndex      *int

	// Relationships
	Workout  Workout  `gorm:"foreignKey:WorkoutID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Exercise Exercise `gorm:"foreignKey:ExerciseID;constraint:OnUpdate:Cascade"`
}
