package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	examModel "invigileye_backend/internals/features/exams/exams/model"
	"invigileye_backend/internals/helpers/dbtime"
)

// OngoingExams keeps the scheduled exams dated today whose [exam_time, end_time]
// window (inclusive) contains now. Exams without an end_time never match.
// Result is ordered by start time, then id; the first entry is the one to show.
func OngoingExams(exams []examModel.ExamModel, now time.Time) []examModel.ExamModel {
	today := dbtime.DateOf(now)
	clock := dbtime.From(now).String()

	out := make([]examModel.ExamModel, 0)
	for _, e := range exams {
		if e.Status != examModel.ExamStatusScheduled || e.ExamDate != today || e.EndTime == nil {
			continue
		}
		start, err := dbtime.NormalizeHHMM(e.ExamTime)
		if err != nil {
			continue
		}
		end, err := dbtime.NormalizeHHMM(*e.EndTime)
		if err != nil {
			continue
		}
		if clock >= start && clock <= end {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		si, _ := dbtime.NormalizeHHMM(out[i].ExamTime)
		sj, _ := dbtime.NormalizeHHMM(out[j].ExamTime)
		if si != sj {
			return si < sj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// FindOngoingForInvigilator loads the invigilator's exams for today and filters them.
func FindOngoingForInvigilator(ctx context.Context, db *gorm.DB, email string, now time.Time) ([]examModel.ExamModel, error) {
	var rows []examModel.ExamModel
	err := db.WithContext(ctx).
		Where("invigilator_email = ? AND status = ? AND exam_date = ?",
			email, examModel.ExamStatusScheduled, dbtime.DateOf(now)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return OngoingExams(rows, now), nil
}
