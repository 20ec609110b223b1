// ABOUTME: Event model, Tag enum, and the fixed comment vocabulary.
// ABOUTME: Value ranges and the recordedAt window live here too.
package models

import (
	"strings"
	"time"
)

// Tag is the category label of an event.
type Tag string

const (
	TagWeight   Tag = "weight"
	TagPushups  Tag = "pushups"
	TagExercise Tag = "exercise"
)

// AllTags lists the event vocabulary in draw order.
var AllTags = []Tag{TagWeight, TagPushups, TagExercise}

// IsValidTag checks if a string is a known tag.
func IsValidTag(s string) bool {
	for _, t := range AllTags {
		if string(t) == s {
			return true
		}
	}
	return false
}

// ValueRange is an inclusive integer range for a measured tag.
type ValueRange struct {
	Min int
	Max int
}

// Contains reports whether v lies within the range.
func (r ValueRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// TagRanges holds the value ranges of the measured tags. Weight is in kg.
// Exercise carries no value and has no entry.
var TagRanges = map[Tag]ValueRange{
	TagWeight:  {Min: 50, Max: 120},
	TagPushups: {Min: 10, Max: 100},
}

// ExerciseComments are the descriptions drawn for exercise events.
var ExerciseComments = []string{
	"Morning yoga session",
	"Evening run",
	"Cycling in the park",
	"Swimming laps",
	"Group fitness class",
}

// MeasurementComments returns the comment variants for a measured tag.
func MeasurementComments(tag Tag) []string {
	s := string(tag)
	return []string{
		capitalize(s) + " recorded",
		"",
		"Felt good after " + s,
		"Today's " + s + " progress",
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// TimestampLayout is the recordedAt text form: no zone, second precision.
const TimestampLayout = "2006-01-02 15:04:05"

// RecordedFrom and RecordedTo bound every generated recordedAt, inclusive.
var (
	RecordedFrom = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	RecordedTo   = time.Date(2026, time.July, 31, 23, 59, 59, 0, time.UTC)
)

// Event is a row of the events table. RecordedAt is kept as the stored text
// because other writers of the table are not bound to TimestampLayout.
type Event struct {
	ID         int64  `json:"id" yaml:"id"`
	Tag        Tag    `json:"tag" yaml:"tag"`
	Comment    string `json:"comment" yaml:"comment"`
	Value      string `json:"value" yaml:"value"`
	RecordedAt string `json:"recordedAt" yaml:"recordedAt"`
	RecordedBy string `json:"recordedBy" yaml:"recordedBy"`
}

// NewEvent creates an event for the given user email.
func NewEvent(tag Tag, recordedBy string) *Event {
	return &Event{
		Tag:        tag,
		RecordedBy: recordedBy,
	}
}

// WithValue sets the text-encoded measurement.
func (e *Event) WithValue(v string) *Event {
	e.Value = v
	return e
}

// WithComment sets the comment.
func (e *Event) WithComment(c string) *Event {
	e.Comment = c
	return e
}

// WithRecordedAt sets recordedAt from t, rendered in TimestampLayout.
func (e *Event) WithRecordedAt(t time.Time) *Event {
	e.RecordedAt = t.Format(TimestampLayout)
	return e
}

// RecordedTime parses the stored recordedAt text.
func (e *Event) RecordedTime() (time.Time, error) {
	return ParseRecordedAt(e.RecordedAt)
}

// ParseRecordedAt parses a recordedAt column value.
func ParseRecordedAt(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.UTC)
}
