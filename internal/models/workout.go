package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	WorkoutStatusCompleted = "completed"
	WorkoutStatusQuit      = "quit"
)

type Workout struct {
	gorm.Model

	UserID          uint      `gorm:"not null;index"`
	Name            string    `gorm:"not null"`
	Date            time.Time `gorm:"type:date;not null"`
	DurationMinutes *int
	Notes           string
	Status          string `gorm:"default:completed"`

	// Relationships
	User             User              `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	WorkoutExercises []WorkoutExercise `gorm:"foreignKey:WorkoutID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
