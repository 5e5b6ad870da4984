package models

import (
	"time"
)

type Wallet struct {
	ID           uint    `gorm:"primarykey"`
	AccountID    string  `gorm:"uniqueIndex;not null"`
	Balance      float64 `gorm:"default:0"`
	Currency     string  `gorm:"default:'USD'"`
	Status       string  `gorm:"default:'active'"`
	StatusReason string  `gorm:"default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
