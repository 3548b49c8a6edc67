package model

import (
	"time"
)

// AccessRequestModel mirrors the 'access_requests' table.
type AccessRequestModel struct {
	ID                string     `gorm:"type:varchar(64);primaryKey"`
	FullName          string     `gorm:"type:varchar(200);not null"`
	Email             string     `gorm:"type:varchar(255);index;not null"`
	BusinessName      string     `gorm:"type:varchar(200);not null"`
	WhatsApp          string     `gorm:"type:varchar(32)"`
	Plan              string     `gorm:"type:varchar(16);not null"`
	Status            string     `gorm:"type:varchar(16);index;not null"`
	Language          string     `gorm:"type:varchar(8)"`
	RejectionReason   string     `gorm:"type:text"`
	CreatedAt         time.Time  `gorm:"index"`
	ProcessedAt       *time.Time
	LastPasswordReset *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessRequestModel) TableName() string {
	return "access_requests"
}
