package entity

import (
	"fmt"
	"regexp"

	"pymerp/internal/errors"
)

// Weekday is one of the seven keys of a weekly schedule document.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the schedule keys in calendar order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid checks if the Weekday is a valid value.
func (d Weekday) IsValid() bool {
	for _, w := range Weekdays {
		if w == d {
			return true
		}
	}

	return false
}

var timeOfDayPattern = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeOfDay is a 24-hour "HH:MM" wall clock time. The zero value is 00:00.
type TimeOfDay struct {
	minutes int
}

// ParseTimeOfDay only accepts the strict two-digit HH:MM form.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !timeOfDayPattern.MatchString(s) {
		return TimeOfDay{}, errors.Errorf("invalid time %q, expected HH:MM", s)
	}

	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')

	return TimeOfDay{minutes: h*60 + m}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

// TimeSlot is an availability range within a day. End may be earlier than Start,
// which is read as a range running past midnight.
type TimeSlot struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Schedule maps weekdays to ordered availability ranges.
type Schedule map[Weekday][]TimeSlot

// PopulatedDays returns the days that have at least one slot, in calendar order.
func (s Schedule) PopulatedDays() []Weekday {
	days := make([]Weekday, 0, len(s))
	for _, d := range Weekdays {
		if len(s[d]) > 0 {
			days = append(days, d)
		}
	}

	return days
}

// ToDocument renders the schedule in its wire/document shape.
func (s Schedule) ToDocument() map[string]any {
	doc := make(map[string]any, len(s))
	for _, d := range s.PopulatedDays() {
		slots := make([]any, 0, len(s[d]))
		for _, slot := range s[d] {
			slots = append(slots, map[string]any{
				"start": slot.Start.String(),
				"end":   slot.End.String(),
			})
		}
		doc[string(d)] = slots
	}

	return doc
}

// ErrEmptySchedule is returned when no weekday carries at least one slot.
var ErrEmptySchedule = errors.New("schedule must have at least one day with time slots")

// ScheduleError pinpoints the part of a schedule document that is malformed.
type ScheduleError struct {
	Day    Weekday
	Index  int // Slot index, -1 when the whole day is malformed
	Field  string
	Reason string
}

func (e *ScheduleError) Error() string {
	return e.Path() + ": " + e.Reason
}

// Path locates the failing element, e.g. "schedule.monday[2].start".
func (e *ScheduleError) Path() string {
	switch {
	case e.Day == "":
		return "schedule"
	case e.Index < 0:
		return fmt.Sprintf("schedule.%s", e.Day)
	case e.Field == "":
		return fmt.Sprintf("schedule.%s[%d]", e.Day, e.Index)
	default:
		return fmt.Sprintf("schedule.%s[%d].%s", e.Day, e.Index, e.Field)
	}
}

// ParseSchedule validates an untrusted, JSON-decoded schedule document and returns the
// typed schedule. Only the seven weekday keys are inspected; other keys are ignored.
// A present day must be an array whose every element has start and end in HH:MM.
// Parsing stops at the first malformed slot. Empty days are dropped and do not count
// towards the at-least-one-day requirement.
func ParseSchedule(raw any) (Schedule, error) {
	doc, ok := asDocument(raw)
	if !ok {
		return nil, &ScheduleError{Index: -1, Reason: "must be an object"}
	}

	schedule := make(Schedule)
	for _, day := range Weekdays {
		value, present := doc[string(day)]
		if !present || value == nil {
			continue
		}

		items, ok := value.([]any)
		if !ok {
			return nil, &ScheduleError{Day: day, Index: -1, Reason: "must be an array"}
		}

		slots := make([]TimeSlot, 0, len(items))
		for i, item := range items {
			slot, err := parseSlot(day, i, item)
			if err != nil {
				return nil, err
			}
			slots = append(slots, slot)
		}

		if len(slots) > 0 {
			schedule[day] = slots
		}
	}

	if len(schedule) == 0 {
		return nil, ErrEmptySchedule
	}

	return schedule, nil
}

// ValidateSchedule reports whether raw is a well-formed weekly schedule.
func ValidateSchedule(raw any) bool {
	_, err := ParseSchedule(raw)

	return err == nil
}

func parseSlot(day Weekday, index int, item any) (TimeSlot, error) {
	fields, ok := item.(map[string]any)
	if !ok {
		return TimeSlot{}, &ScheduleError{Day: day, Index: index, Reason: "must be an object with start and end"}
	}

	start, err := parseSlotField(day, index, "start", fields["start"])
	if err != nil {
		return TimeSlot{}, err
	}
	end, err := parseSlotField(day, index, "end", fields["end"])
	if err != nil {
		return TimeSlot{}, err
	}

	return TimeSlot{Start: start, End: end}, nil
}

func parseSlotField(day Weekday, index int, field string, value any) (TimeOfDay, error) {
	s, ok := value.(string)
	if !ok || s == "" {
		return TimeOfDay{}, &ScheduleError{Day: day, Index: index, Field: field, Reason: "is required"}
	}

	t, err := ParseTimeOfDay(s)
	if err != nil {
		return TimeOfDay{}, &ScheduleError{Day: day, Index: index, Field: field, Reason: "must be HH:MM (24-hour)"}
	}

	return t, nil
}

// asDocument accepts the generic decoded form and the typed Schedule itself.
func asDocument(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, v != nil
	case Schedule:
		if v == nil {
			return nil, false
		}

		return v.ToDocument(), true
	default:
		return nil, false
	}
}
