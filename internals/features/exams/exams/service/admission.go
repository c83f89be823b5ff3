package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	examModel "invigileye_backend/internals/features/exams/exams/model"
)

type ConflictKind string

const (
	ConflictRoom  ConflictKind = "room"
	ConflictClass ConflictKind = "class"
)

// ConflictError is returned when a slot is already taken.
type ConflictError struct {
	Kind     ConflictKind
	Message  string
	Conflict examModel.ExamModel
}

func (e *ConflictError) Error() string { return e.Message }

// Title is the short error label sent next to the message.
func (e *ConflictError) Title() string {
	if e.Kind == ConflictClass {
		return "Class scheduling conflict"
	}
	return "Room scheduling conflict"
}

// Slot is the part of an exam that admission looks at.
type Slot struct {
	Title    string
	Venue    string
	ExamDate string
	ExamTime string
	Section  *string
}

func SlotOf(m *examModel.ExamModel) Slot {
	return Slot{
		Title:    m.Title,
		Venue:    m.Venue,
		ExamDate: m.ExamDate,
		ExamTime: m.ExamTime,
		Section:  m.Section,
	}
}

func sectionKey(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// CheckAdmission runs the room check then the class check, first match wins.
// A missing section only matches another missing section. excludeID skips the
// exam being edited (0 for new exams). Must run in the same tx as the write.
func CheckAdmission(tx *gorm.DB, s Slot, excludeID uint) error {
	room, err := findOne(tx.Where(
		"venue = ? AND exam_date = ? AND exam_time = ? AND COALESCE(section, '') = ?",
		s.Venue, s.ExamDate, s.ExamTime, sectionKey(s.Section),
	), excludeID)
	if err != nil {
		return err
	}
	if room != nil {
		return &ConflictError{
			Kind: ConflictRoom,
			Message: fmt.Sprintf(
				"Room conflict: \"%s\" is already scheduled in %s%s on %s at %s. Please choose a different room, section, or time.",
				room.Title, room.Venue, room.SectionLabel(), room.ExamDate, room.ExamTime,
			),
			Conflict: *room,
		}
	}

	class, err := findOne(tx.Where(
		"title = ? AND exam_date = ? AND exam_time = ?",
		s.Title, s.ExamDate, s.ExamTime,
	), excludeID)
	if err != nil {
		return err
	}
	if class != nil {
		return &ConflictError{
			Kind: ConflictClass,
			Message: fmt.Sprintf(
				"Class conflict: \"%s\" already has an exam scheduled at %s on %s in %s%s. A class cannot have multiple exams at the same time.",
				class.Title, class.ExamTime, class.ExamDate, class.Venue, class.SectionLabel(),
			),
			Conflict: *class,
		}
	}
	return nil
}

func findOne(q *gorm.DB, excludeID uint) (*examModel.ExamModel, error) {
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var m examModel.ExamModel
	if err := q.Order("id ASC").Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// IsUniqueViolation: sqlite reports "UNIQUE constraint failed: ..."
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate")
}
