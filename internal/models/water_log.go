package models

import (
	"time"

	"gorm.io/gorm"
)

// WaterLog is append-only; a day's intake is the sum of its entries.
type WaterLog struct {
	gorm.Model

	UserID    uint      `gorm:"not null;index"`
	AmountML  int       `gorm:"not null"`
	Timestamp time.Time `gorm:"not null;index"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
