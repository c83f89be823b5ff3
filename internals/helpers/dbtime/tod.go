package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tod is a wall-clock time of day stored as "HH:MM".
type Tod struct{ time.Time }

// From: take HH:MM from t, dropping date and zone.
func From(t time.Time) Tod {
	return Tod{
		Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC),
	}
}

// Parse accepts "H:MM", "HH:MM" or "HH:MM:SS". Seconds are dropped.
func Parse(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

// NormalizeHHMM returns s zero padded as "HH:MM", e.g. "9:05" → "09:05".
func NormalizeHHMM(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

func (t Tod) String() string {
	return t.Format("15:04")
}

// Scan: accepts time.Time or string ("HH:MM[:SS]")
func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*t = From(x)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	layout := "15:04"
	if strings.Count(s, ":") == 2 {
		layout = "15:04:05"
	}
	tt, err := time.Parse(layout, s)
	if err != nil {
		return fmt.Errorf("tod: invalid time %q", s)
	}
	*t = From(tt)
	return nil
}

// Value: stored as "HH:MM" so text comparison matches time order.
func (t Tod) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t Tod) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
