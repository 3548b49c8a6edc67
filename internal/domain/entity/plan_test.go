package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlan(t *testing.T) {
	tests := []struct {
		input    string
		expected Plan
	}{
		{"pro", PlanPro},
		{" Standard ", PlanStandard},
		{"BASIC", PlanBasic},
		{"", PlanBasic},
		{"enterprise", PlanBasic},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePlan(tt.input))
		})
	}

	assert.False(t, Plan("GOLD").IsValid())
}
