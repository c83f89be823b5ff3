package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	attendanceModel "invigileye_backend/internals/features/exams/attendance/model"
	examModel "invigileye_backend/internals/features/exams/exams/model"
	"invigileye_backend/internals/testhelpers"
)

func newAttendanceApp(t *testing.T) (*fiber.App, *gorm.DB, uint) {
	t.Helper()
	db := testhelpers.NewTestDB(t)

	exam := &examModel.ExamModel{Title: "CS101", Venue: "Room 1", ExamDate: "2025-06-01", ExamTime: "09:00", Status: examModel.ExamStatusScheduled}
	require.NoError(t, db.Create(exam).Error)
	for _, roll := range []string{"1", "101", "7"} {
		require.NoError(t, db.Create(&attendanceModel.AttendanceModel{
			ExamID: exam.ID, RollNumber: roll, Name: "Student " + roll, Status: attendanceModel.AttendanceAbsent,
		}).Error)
	}

	ctl := NewAttendanceController(db)
	ctl.Now = func() time.Time { return time.Date(2025, 6, 1, 9, 15, 0, 0, time.UTC) }

	app := fiber.New()
	app.Post("/api/attendance", ctl.Mark)
	app.Post("/api/attendance/bulk", ctl.MarkBulk)
	return app, db, exam.ID
}

func postRaw(t *testing.T, app *fiber.App, url, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return resp.StatusCode, out
}

func statusOf(t *testing.T, db *gorm.DB, examID uint, roll string) string {
	t.Helper()
	var row attendanceModel.AttendanceModel
	require.NoError(t, db.Where("exam_id = ? AND roll_number = ?", examID, roll).Take(&row).Error)
	return row.Status
}

func TestMarkBulkSkipsMalformedRecords(t *testing.T) {
	app, db, examID := newAttendanceApp(t)
	id := strconv.FormatUint(uint64(examID), 10)

	body := `{"records":[
		{"exam_id":` + id + `,"roll_number":"1","status":"present"},
		{"exam_id":` + id + `,"roll_number":101,"status":"present"},
		{"exam_id":` + id + `,"roll_number":"7","status":["present"]},
		"not a record"
	]}`
	code, out := postRaw(t, app, "/api/attendance/bulk", body)
	require.Equal(t, fiber.StatusOK, code, out)
	assert.EqualValues(t, 2, out["count"])

	assert.Equal(t, attendanceModel.AttendancePresent, statusOf(t, db, examID, "1"))
	assert.Equal(t, attendanceModel.AttendancePresent, statusOf(t, db, examID, "101"))
	assert.Equal(t, attendanceModel.AttendanceAbsent, statusOf(t, db, examID, "7"))
}

func TestMarkBulkRequiresRecordsArray(t *testing.T) {
	app, _, _ := newAttendanceApp(t)

	for _, body := range []string{`{}`, `{"records":"x"}`, `{"records":{"roll_number":"1"}}`} {
		code, out := postRaw(t, app, "/api/attendance/bulk", body)
		assert.Equal(t, fiber.StatusBadRequest, code, body)
		assert.Equal(t, "Records array is required", out["error"], body)
	}
}

func TestMarkAcceptsNumericRollNumber(t *testing.T) {
	app, db, examID := newAttendanceApp(t)

	code, out := postRaw(t, app, "/api/attendance", `{"exam_id":"`+strconv.FormatUint(uint64(examID), 10)+`","roll_number":101,"status":"Present"}`)
	require.Equal(t, fiber.StatusOK, code, out)
	assert.Equal(t, attendanceModel.AttendancePresent, statusOf(t, db, examID, "101"))

	code, out = postRaw(t, app, "/api/attendance", `{"exam_id":`+strconv.FormatUint(uint64(examID), 10)+`,"roll_number":"999","status":"present"}`)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Attendance record not found", out["error"])
}
