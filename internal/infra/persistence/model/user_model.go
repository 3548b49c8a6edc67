// Package model holds the GORM persistence models of the relational store.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. ID is the auth provider uid.
type UserModel struct {
	ID        string  `gorm:"type:varchar(128);primaryKey"`
	Email     string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Status    string  `gorm:"type:varchar(32);not null"`
	Role      string  `gorm:"type:varchar(32);not null"`
	CompanyID *string `gorm:"type:varchar(64);index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
