package firestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/internal/domain/entity"
)

func TestCompanyDoc_Location(t *testing.T) {
	company := &entity.Company{
		Name:             "Café Ñuñoa",
		Slug:             "cafe-nunoa",
		SubscriptionPlan: entity.PlanStandard,
		IsPublic:         true,
		Location:         &entity.GeoPoint{Lat: -33.4569, Lng: -70.5977},
	}

	doc := fromCompany(company)
	require.NotNil(t, doc.Location)
	assert.True(t, doc.PublicEnabled)

	back := companyFromDoc("c1", doc)
	assert.Equal(t, "c1", back.ID)
	assert.Equal(t, company.Location, back.Location)
	assert.Equal(t, entity.PlanStandard, back.SubscriptionPlan)
	assert.Nil(t, back.Schedule)
}

func TestScheduleFromDoc(t *testing.T) {
	stored := map[string]any{
		"monday": []any{map[string]any{"start": "09:00", "end": "18:00"}},
		"notes":  "ignored",
	}

	schedule := scheduleFromDoc(stored)
	assert.Equal(t, []entity.Weekday{entity.Monday}, schedule.PopulatedDays())

	assert.Nil(t, scheduleFromDoc(map[string]any{"monday": "09-18"}))
	assert.Nil(t, scheduleFromDoc(nil))
}

func TestAccessRequestDoc_UnknownPlanFallsBack(t *testing.T) {
	processed := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	req := accessRequestFromDoc("r1", &accessRequestDoc{
		Email:       "ana@example.cl",
		Plan:        "ENTERPRISE",
		Status:      "APPROVED",
		ProcessedAt: &processed,
	})

	assert.Equal(t, entity.PlanBasic, req.Plan)
	assert.Equal(t, entity.AccessRequestApproved, req.Status)
	assert.Equal(t, &processed, req.ProcessedAt)
}

func TestUserDoc_LowercasesEmail(t *testing.T) {
	doc := fromUser(&entity.User{ID: "uid-1", Email: "Ana@Example.CL", CompanyID: "c1"})

	assert.Equal(t, "ana@example.cl", doc.Email)
	assert.Equal(t, "c1", userFromDoc("uid-1", doc).CompanyID)
}
