package service

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	attendanceModel "invigileye_backend/internals/features/exams/attendance/model"
	examModel "invigileye_backend/internals/features/exams/exams/model"
)

// RosterRow is one accepted line of an uploaded student list.
type RosterRow struct {
	RollNumber string
	Name       string
	ImageURL   string
}

// RosterResult: Rows are accepted, Skipped counts rows dropped for a blank
// roll number or name, or a roll number already seen earlier in the file.
type RosterResult struct {
	Rows    []RosterRow
	Skipped int
}

type rosterColumn int

const (
	colUnknown rosterColumn = iota
	colRoll
	colName
	colImage
)

// header aliases, compared after lower-casing and dropping spaces, _ . and -
var rosterHeaderAliases = map[string]rosterColumn{
	"rollnumber":  colRoll,
	"rollno":      colRoll,
	"roll":        colRoll,
	"name":        colName,
	"studentname": colName,
	"imagepath":   colImage,
	"imageurl":    colImage,
	"image":       colImage,
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func headerKey(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '.', '-', '\t':
			return -1
		}
		return r
	}, h)
}

// ParseRoster reads the whole file before anything is written. Columns are found by
// header name; every field is trimmed.
func ParseRoster(r io.Reader) (RosterResult, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return RosterResult{}, nil
	}
	if err != nil {
		return RosterResult{}, fmt.Errorf("read roster header: %w", err)
	}

	idx := map[rosterColumn]int{colRoll: -1, colName: -1, colImage: -1}
	for i, h := range header {
		if col, ok := rosterHeaderAliases[headerKey(h)]; ok && idx[col] < 0 {
			idx[col] = i
		}
	}

	field := func(rec []string, col rosterColumn) string {
		i := idx[col]
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var res RosterResult
	seen := map[string]bool{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return RosterResult{}, fmt.Errorf("read roster: %w", err)
		}
		if isBlankRecord(rec) {
			continue
		}

		row := RosterRow{
			RollNumber: field(rec, colRoll),
			Name:       field(rec, colName),
			ImageURL:   field(rec, colImage),
		}
		if row.RollNumber == "" || row.Name == "" || seen[row.RollNumber] {
			res.Skipped++
			continue
		}
		seen[row.RollNumber] = true
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

func isBlankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// IngestRoster writes one student and one absent attendance row per roster row.
// Roll numbers the exam already has are skipped. Returns the number inserted.
func IngestRoster(tx *gorm.DB, examID uint, rows []RosterRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var existing []string
	if err := tx.Model(&attendanceModel.AttendanceModel{}).
		Where("exam_id = ?", examID).
		Pluck("roll_number", &existing).Error; err != nil {
		return 0, err
	}
	have := make(map[string]bool, len(existing))
	for _, r := range existing {
		have[r] = true
	}

	students := make([]examModel.StudentModel, 0, len(rows))
	attendance := make([]attendanceModel.AttendanceModel, 0, len(rows))
	for _, r := range rows {
		if have[r.RollNumber] {
			continue
		}
		have[r.RollNumber] = true

		var img *string
		if r.ImageURL != "" {
			v := r.ImageURL
			img = &v
		}
		students = append(students, examModel.StudentModel{
			ExamID:     examID,
			RollNumber: r.RollNumber,
			Name:       r.Name,
			ImageURL:   img,
		})
		attendance = append(attendance, attendanceModel.AttendanceModel{
			ExamID:     examID,
			RollNumber: r.RollNumber,
			Name:       r.Name,
			ImageURL:   img,
			Status:     attendanceModel.AttendanceAbsent,
		})
	}
	if len(students) == 0 {
		return 0, nil
	}

	if err := tx.CreateInBatches(&students, 200).Error; err != nil {
		return 0, fmt.Errorf("insert students: %w", err)
	}
	if err := tx.CreateInBatches(&attendance, 200).Error; err != nil {
		return 0, fmt.Errorf("insert attendance: %w", err)
	}
	return len(students), nil
}
