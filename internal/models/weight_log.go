package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightLog holds at most one row per (user, date); a second write on the
// same date updates the existing row. The upsert lives in the metrics
// service, not the schema.
type WeightLog struct {
	gorm.Model

	UserID   uint      `gorm:"not null;index"`
	WeightKG float64   `gorm:"not null"`
	Date     time.Time `gorm:"type:date;not null;index"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
