package model

import (
	"time"

	"pymerp/internal/domain/entity"
)

// ResourceModel is the shared shape of the 'services' and 'professionals' tables.
type ResourceModel struct {
	ID        string          `gorm:"type:varchar(64);primaryKey"`
	CompanyID string          `gorm:"type:varchar(64);index;not null"`
	Name      string          `gorm:"type:varchar(200)"`
	Schedule  entity.Schedule `gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResourceTable returns the table backing the resource kind.
func ResourceTable(kind entity.ResourceKind) string {
	if kind == entity.ResourceProfessional {
		return "professionals"
	}

	return "services"
}
