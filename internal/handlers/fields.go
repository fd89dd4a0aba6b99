package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Layouts accepted for task deadlines. Values without a zone are read as UTC.
var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// blankJSON reports whether b is null or an empty string.
func blankJSON(b []byte) bool {
	b = bytes.TrimSpace(b)
	return bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`))
}

// LenientTime decodes a timestamp in RFC 3339 or local date-time form.
// null and "" leave it unset.
type LenientTime struct {
	value *time.Time
}

func (t *LenientTime) UnmarshalJSON(b []byte) error {
	t.value = nil
	if blankJSON(b) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("deadline must be a string: %w", err)
	}
	for _, layout := range deadlineLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.value = &parsed
			return nil
		}
	}
	return fmt.Errorf("invalid deadline %q", raw)
}

// Ptr returns the decoded time, nil when unset.
func (t LenientTime) Ptr() *time.Time {
	return t.value
}

// LenientUUID decodes an optional id. null and "" leave it unset.
type LenientUUID struct {
	value *uuid.UUID
}

func (u *LenientUUID) UnmarshalJSON(b []byte) error {
	u.value = nil
	if blankJSON(b) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("id must be a string: %w", err)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return err
	}
	u.value = &id
	return nil
}

// Ptr returns the decoded id, nil when unset.
func (u LenientUUID) Ptr() *uuid.UUID {
	return u.value
}
