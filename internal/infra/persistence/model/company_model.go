package model

import (
	"time"

	"pymerp/internal/domain/entity"
)

// CompanyModel mirrors the 'companies' table. Business hours are a JSON column.
type CompanyModel struct {
	ID               string          `gorm:"type:varchar(64);primaryKey"`
	OwnerUserID      string          `gorm:"type:varchar(128);index"`
	Name             string          `gorm:"type:varchar(200);not null"`
	RUT              string          `gorm:"type:varchar(16)"`
	Industry         string          `gorm:"type:varchar(100)"`
	WhatsApp         string          `gorm:"type:varchar(32)"`
	Address          string          `gorm:"type:text"`
	Slug             string          `gorm:"type:varchar(200);index"`
	SetupCompleted   bool            `gorm:"not null;default:false"`
	SubscriptionPlan string          `gorm:"type:varchar(16);not null"`
	Schedule         entity.Schedule `gorm:"type:jsonb;serializer:json"`

	IsPublic         bool   `gorm:"index;not null;default:false"`
	Region           string `gorm:"type:varchar(100)"`
	Province         string `gorm:"type:varchar(100)"`
	Commune          string `gorm:"type:varchar(100)"`
	Sector           string `gorm:"type:varchar(100)"`
	CategoryID       string `gorm:"type:varchar(64)"`
	ShortDescription string `gorm:"type:varchar(300)"`
	Description      string `gorm:"type:text"`
	Lat              *float64
	Lng              *float64
	Geohash          string `gorm:"type:varchar(16);index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}
