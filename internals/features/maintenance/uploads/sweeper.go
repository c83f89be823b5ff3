package uploads

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweep deletes regular files in dir last modified more than maxAge before now and
// returns how many went. maxAge 0 removes everything. A missing dir is not an error.
func Sweep(dir string, maxAge time.Duration, now time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := now.Add(-maxAge)
	deleted := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if maxAge > 0 && !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			log.Printf("[UPLOAD-SWEEP] remove %s: %v", e.Name(), err)
			continue
		}
		deleted++
	}
	return deleted, nil
}

// StartUploadSweeper schedules Sweep on spec and returns the running cron so the
// caller can Stop it on shutdown.
func StartUploadSweeper(spec, dir string, maxAge time.Duration) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(spec, func() {
		n, err := Sweep(dir, maxAge, time.Now())
		if err != nil {
			log.Printf("[UPLOAD-SWEEP] %s: %v", dir, err)
			return
		}
		if n > 0 {
			log.Printf("[UPLOAD-SWEEP] deleted %d orphaned uploads older than %s", n, maxAge)
		}
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[UPLOAD-SWEEP] started schedule=%q dir=%q maxAge=%s", spec, dir, maxAge)
	c.Start()
	return c, nil
}
