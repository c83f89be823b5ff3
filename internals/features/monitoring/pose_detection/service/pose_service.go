package service

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	alertDTO "invigileye_backend/internals/features/monitoring/alerts/dto"
	alertModel "invigileye_backend/internals/features/monitoring/alerts/model"
	alertService "invigileye_backend/internals/features/monitoring/alerts/service"
	poseDTO "invigileye_backend/internals/features/monitoring/pose_detection/dto"
	"invigileye_backend/internals/features/monitoring/pose_detection/snapshot"
)

// SnapshotURLPrefix is where snapshots are served from.
const SnapshotURLPrefix = "/api/pose-detection/snapshot/"

var ErrSnapshotNotFound = errors.New("snapshot not found")

// poseTypes are the alert types the pose pipeline writes.
var poseTypes = []string{alertModel.AlertTypeSuspicious, alertModel.AlertTypeCheating}

// ToAlert maps a camera report onto an alert row dated by the camera's detection
// time. created_at is stored as text, so it is kept in the same zone as
// autoCreateTime rows.
func ToAlert(req *poseDTO.PoseAlertRequest, now time.Time) *alertModel.AlertModel {
	m := &alertModel.AlertModel{
		ExamID:      req.ExamID.Ptr(),
		CreatedAt:   req.DetectedAt(now).Local(),
		Type:        alertModel.AlertTypeSuspicious,
		Severity:    alertModel.SeverityMedium,
		Description: req.SuspiciousActivities.String(),
	}
	if req.SuspicionLevel == snapshot.LevelHotSuspect {
		m.Type = alertModel.AlertTypeCheating
		m.Severity = alertModel.SeverityHigh
	}
	if req.StudentID != "" {
		s := req.StudentID
		m.StudentID = &s
	}
	if req.SnapshotPath != "" {
		u := SnapshotURLPrefix + filepath.Base(req.SnapshotPath)
		m.SnapshotURL = &u
	}
	return m
}

func StoreAlert(ctx context.Context, db *gorm.DB, req *poseDTO.PoseAlertRequest) (*alertModel.AlertModel, error) {
	m := ToAlert(req, time.Now())
	if err := alertService.Create(ctx, db, m); err != nil {
		return nil, err
	}
	log.Printf("[INFO] pose alert %d: %s %s (%s)", m.ID, req.StudentID, req.SuspicionLevel, m.Description)
	return m, nil
}

func ListAlerts(ctx context.Context, db *gorm.DB, examID uint) ([]alertModel.AlertModel, error) {
	return alertService.ListByExam(ctx, db, examID, poseTypes...)
}

func Stats(ctx context.Context, db *gorm.DB, examID uint) (alertDTO.AlertStats, error) {
	return alertService.Stats(ctx, db, examID, poseTypes...)
}

// ListSnapshots describes every parsable image in dir, newest file first. A missing
// dir is created and yields an empty list.
func ListSnapshots(dir string) ([]poseDTO.SnapshotItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				return nil, mkErr
			}
			return []poseDTO.SnapshotItem{}, nil
		}
		return nil, err
	}

	out := make([]poseDTO.SnapshotItem, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !snapshot.IsImage(e.Name()) {
			continue
		}
		meta, err := snapshot.ParseFilename(e.Name())
		if err != nil {
			log.Printf("[WARN] skip snapshot %q: %v", e.Name(), err)
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, poseDTO.SnapshotItem{
			Filename:     e.Name(),
			Level:        meta.Level,
			StudentID:    meta.StudentID,
			Timestamp:    meta.Timestamp(),
			RawTimestamp: info.ModTime(),
			Size:         info.Size(),
			URL:          SnapshotURLPrefix + e.Name(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RawTimestamp.After(out[j].RawTimestamp)
	})
	return out, nil
}

// ResolveSnapshot returns the on-disk path of name inside dir. Names that would
// leave dir are treated as absent.
func ResolveSnapshot(dir, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") || !snapshot.IsImage(name) {
		return "", ErrSnapshotNotFound
	}
	p := filepath.Join(dir, name)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", ErrSnapshotNotFound
	}
	return p, nil
}
