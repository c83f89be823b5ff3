package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	examModel "invigileye_backend/internals/features/exams/exams/model"
	requestDTO "invigileye_backend/internals/features/monitoring/requests/dto"
	requestModel "invigileye_backend/internals/features/monitoring/requests/model"
	helper "invigileye_backend/internals/helpers"
	"invigileye_backend/internals/testhelpers"
)

func TestBuildRequestFromPayload(t *testing.T) {
	req := &requestDTO.CreateRequestRequest{
		Type:    "material",
		Payload: json.RawMessage(`{"material_type":"Answer Sheet","quantity":5,"reason":"extra"}`),
	}
	req.Normalize()

	m, err := BuildRequest(validator.New(), req)
	require.NoError(t, err)
	assert.Equal(t, "Answer Sheet (Qty: 5) - extra", m.Description)
	assert.Equal(t, requestModel.RequestStatusPending, m.Status)
	assert.Nil(t, m.ExamID)

	p, err := requestModel.DecodePayload(m.Payload)
	require.NoError(t, err)
	assert.Equal(t, requestModel.RequestTypeMaterial, p.Kind())
}

func TestBuildRequestValidation(t *testing.T) {
	v := validator.New()

	_, err := BuildRequest(v, &requestDTO.CreateRequestRequest{})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Type is required", fe.Message)

	_, err = BuildRequest(v, &requestDTO.CreateRequestRequest{Type: "umc", Payload: json.RawMessage(`{"details":"x"}`)})
	var ve validator.ValidationErrors
	assert.ErrorAs(t, err, &ve)

	// a bare description is still accepted
	m, err := BuildRequest(v, &requestDTO.CreateRequestRequest{Type: "it", Description: "Printer jam"})
	require.NoError(t, err)
	assert.Equal(t, "Printer jam", m.Description)
	assert.Empty(t, m.Payload)
}

func TestRequestStatusToggle(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	exam := &examModel.ExamModel{Title: "CS101", Venue: "Room 1", ExamDate: "2025-06-01", ExamTime: "09:00", Status: "scheduled"}
	require.NoError(t, db.Create(exam).Error)

	m, err := BuildRequest(validator.New(), &requestDTO.CreateRequestRequest{
		ExamID: helper.FlexUint(exam.ID), Type: "it", Description: "Projector offline",
	})
	require.NoError(t, err)
	require.NoError(t, Create(ctx, db, m))

	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, UpdateStatus(ctx, db, m.ID, requestModel.RequestStatusResolved, now))
	got, err := Get(ctx, db, m.ID)
	require.NoError(t, err)
	assert.Equal(t, requestModel.RequestStatusResolved, got.Status)
	require.NotNil(t, got.ResolvedAt)

	require.NoError(t, UpdateStatus(ctx, db, m.ID, requestModel.RequestStatusPending, now.Add(time.Minute)))
	got, err = Get(ctx, db, m.ID)
	require.NoError(t, err)
	assert.Equal(t, requestModel.RequestStatusPending, got.Status)
	assert.Nil(t, got.ResolvedAt)

	assert.ErrorIs(t, UpdateStatus(ctx, db, 999, requestModel.RequestStatusResolved, now), ErrRequestNotFound)

	rows, err := List(ctx, db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].ExamTitle)
	assert.Equal(t, "CS101", *rows[0].ExamTitle)

	require.NoError(t, Delete(ctx, db, m.ID))
	assert.ErrorIs(t, Delete(ctx, db, m.ID), ErrRequestNotFound)
}
