package models

import "gorm.io/gorm"

// Exercise is a shared catalog entry. It is referenced by workout entries
// but never owned by a user, so deleting users or workouts leaves it intact.
type Exercise struct {
	gorm.Model

	Name         string `gorm:"uniqueIndex;not null"`
	MuscleGroup  string `gorm:"not null"`
	Equipment    string
	Instructions string
}
