package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/internal/errors"
)

func decode(t *testing.T, s string) any {
	t.Helper()

	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))

	return v
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{"single valid day", `{"monday":[{"start":"09:00","end":"18:00"}]}`, true},
		{"several days", `{"monday":[{"start":"09:00","end":"13:00"},{"start":"14:00","end":"18:00"}],"saturday":[{"start":"10:00","end":"14:00"}]}`, true},
		{"empty days only", `{"monday":[],"tuesday":[]}`, false},
		{"empty object", `{}`, false},
		{"unknown keys only", `{"holiday":[{"start":"09:00","end":"18:00"}]}`, false},
		{"null day skipped", `{"monday":null,"friday":[{"start":"08:00","end":"12:00"}]}`, true},
		{"day not an array", `{"monday":{"start":"09:00","end":"18:00"}}`, false},
		{"missing end", `{"monday":[{"start":"09:00"}]}`, false},
		{"empty start", `{"monday":[{"start":"","end":"18:00"}]}`, false},
		{"single digit hour", `{"monday":[{"start":"9:00","end":"18:00"}]}`, false},
		{"hour 24", `{"monday":[{"start":"09:00","end":"24:00"}]}`, false},
		{"minute 60", `{"monday":[{"start":"09:60","end":"18:00"}]}`, false},
		{"numeric time", `{"monday":[{"start":900,"end":"18:00"}]}`, false},
		{"slot not an object", `{"monday":["09:00-18:00"]}`, false},
		{"bad slot on another day fails all", `{"monday":[{"start":"09:00","end":"18:00"}],"sunday":[{"start":"25:00","end":"18:00"}]}`, false},
		{"end before start is accepted", `{"friday":[{"start":"22:00","end":"02:00"}]}`, true},
		{"boundaries", `{"monday":[{"start":"00:00","end":"23:59"}]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSchedule(decode(t, tt.doc)))
		})
	}
}

func TestValidateSchedule_NonObjects(t *testing.T) {
	assert.False(t, ValidateSchedule(nil))
	assert.False(t, ValidateSchedule("monday"))
	assert.False(t, ValidateSchedule([]any{}))
	assert.False(t, ValidateSchedule(map[string]any(nil)))
	assert.False(t, ValidateSchedule(Schedule(nil)))
}

func TestParseSchedule_ReportsFailingField(t *testing.T) {
	_, err := ParseSchedule(decode(t, `{"monday":[{"start":"09:00","end":"18:00"}],"wednesday":[{"start":"08:00","end":"8:30"}]}`))
	require.Error(t, err)

	var schedErr *ScheduleError
	require.True(t, errors.As(err, &schedErr))
	assert.Equal(t, Wednesday, schedErr.Day)
	assert.Equal(t, 0, schedErr.Index)
	assert.Equal(t, "end", schedErr.Field)
	assert.Equal(t, "schedule.wednesday[0].end: must be HH:MM (24-hour)", err.Error())
}

func TestParseSchedule_EmptyIsSentinel(t *testing.T) {
	_, err := ParseSchedule(decode(t, `{"monday":[]}`))
	assert.ErrorIs(t, err, ErrEmptySchedule)
}

func TestParseSchedule_TypedResult(t *testing.T) {
	s, err := ParseSchedule(decode(t, `{"tuesday":[{"start":"09:30","end":"13:15"}],"monday":[],"extra":1}`))
	require.NoError(t, err)

	assert.Equal(t, []Weekday{Tuesday}, s.PopulatedDays())
	require.Len(t, s[Tuesday], 1)
	assert.Equal(t, "09:30", s[Tuesday][0].Start.String())
	assert.Equal(t, "13:15", s[Tuesday][0].End.String())
}

func TestSchedule_JSONRoundTripKeepsWireShape(t *testing.T) {
	s, err := ParseSchedule(decode(t, `{"monday":[{"start":"09:00","end":"18:00"}]}`))
	require.NoError(t, err)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"monday":[{"start":"09:00","end":"18:00"}]}`, string(out))

	assert.True(t, ValidateSchedule(s))
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("23:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59", tod.String())

	_, err = ParseTimeOfDay("7:05")
	assert.Error(t, err)

	var slot TimeSlot
	assert.Error(t, json.Unmarshal([]byte(`{"start":"10:00","end":"10:75"}`), &slot))
}
