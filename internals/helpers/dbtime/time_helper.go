package dbtime

import (
	"log"
	"strings"
	"sync"
	"time"

	"invigileye_backend/internals/configs"
)

const DateLayout = "2006-01-02"

var (
	locOnce sync.Once
	appLoc  *time.Location
)

// AppLocation resolves APP_TIMEZONE once. Empty or unknown zones fall back to the
// server's local zone, which is what exam dates and times are written in.
func AppLocation() *time.Location {
	locOnce.Do(func() {
		appLoc = time.Local
		tz := strings.TrimSpace(configs.AppTimezone)
		if tz == "" {
			return
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("[WARN] APP_TIMEZONE=%q not found, using local time: %v", tz, err)
			return
		}
		appLoc = loc
	})
	return appLoc
}

// NowLocal is the current time in the exam timezone.
func NowLocal() time.Time {
	return time.Now().In(AppLocation())
}

// DateOf formats t as YYYY-MM-DD.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
