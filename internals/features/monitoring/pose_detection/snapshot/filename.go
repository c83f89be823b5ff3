package snapshot

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"invigileye_backend/internals/helpers/dbtime"
)

const (
	LevelHotSuspect = "Hot_Suspect"
	LevelSuspect    = "Suspect"
	LevelNormal     = "Normal"
)

const stampLayout = "20060102_150405"

// DisplayLayout is how snapshot times are shown to clients.
const DisplayLayout = "2006-01-02 15:04:05"

var ErrBadFilename = errors.New("snapshot filename does not match <Level>_<StudentId>_<YYYYMMDD>_<HHMMSS>.<jpg|jpeg|png>")

// Hot_Suspect must be tried before Suspect.
var levels = []string{LevelHotSuspect, LevelSuspect, LevelNormal}

// Meta is what a snapshot filename carries.
type Meta struct {
	Level     string
	StudentID string
	// TakenAt is the camera's wall clock read in the app timezone; the name carries no zone.
	TakenAt time.Time
}

func (m Meta) Timestamp() string { return m.TakenAt.Format(DisplayLayout) }

// IsImage reports whether name has a snapshot image extension.
func IsImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// ParseFilename reads e.g. "Hot_Suspect_Student_0_20260101_213419.jpg".
// The student id is everything between the level and the date, so it may hold
// underscores itself.
func ParseFilename(name string) (Meta, error) {
	if name != filepath.Base(name) || !IsImage(name) {
		return Meta{}, ErrBadFilename
	}
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	var m Meta
	for _, lv := range levels {
		if rest, ok := strings.CutPrefix(stem, lv+"_"); ok {
			m.Level = lv
			stem = rest
			break
		}
	}
	if m.Level == "" {
		return Meta{}, ErrBadFilename
	}

	// <student>_<YYYYMMDD>_<HHMMSS>
	if len(stem) < len(stampLayout)+2 {
		return Meta{}, ErrBadFilename
	}
	cut := len(stem) - len(stampLayout)
	if stem[cut-1] != '_' {
		return Meta{}, ErrBadFilename
	}
	stamp := stem[cut:]
	if !allDigitsExcept(stamp, 8) {
		return Meta{}, ErrBadFilename
	}
	t, err := time.ParseInLocation(stampLayout, stamp, dbtime.AppLocation())
	if err != nil {
		return Meta{}, ErrBadFilename
	}

	m.StudentID = stem[:cut-1]
	if m.StudentID == "" {
		return Meta{}, ErrBadFilename
	}
	m.TakenAt = t
	return m, nil
}

// allDigitsExcept: every byte is a digit except s[sep], which must be '_'.
func allDigitsExcept(s string, sep int) bool {
	for i := 0; i < len(s); i++ {
		if i == sep {
			if s[i] != '_' {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
