package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadDescribe(t *testing.T) {
	qty := 5
	assert.Equal(t, "Answer Sheet (Qty: 5) - extra sheets",
		MaterialPayload{MaterialType: "Answer Sheet", Quantity: &qty, Reason: "extra sheets"}.Describe())
	assert.Equal(t, "Calculator - battery died",
		MaterialPayload{MaterialType: "Calculator", Reason: "battery died"}.Describe())
	assert.Equal(t, "Student ID: 21-001 - phone found, with - dashes",
		UMCPayload{StudentID: "21-001", Details: "phone found, with - dashes"}.Describe())
	assert.Equal(t, "Projector offline", ITPayload{Issue: "Projector offline"}.Describe())
}

func TestEncodeDecodePayloadKeepsVariant(t *testing.T) {
	raw, err := EncodePayload(UMCPayload{StudentID: "21-001", Details: "notes - hidden"})
	require.NoError(t, err)

	p, err := DecodePayload(raw)
	require.NoError(t, err)
	umc, ok := p.(UMCPayload)
	require.True(t, ok)
	assert.Equal(t, "notes - hidden", umc.Details)

	empty, err := DecodePayload(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestDecodePayloadAsTrimsAndRejectsUnknownKind(t *testing.T) {
	p, err := DecodePayloadAs(RequestTypeIT, []byte(`{"issue":"  wifi down "}`))
	require.NoError(t, err)
	assert.Equal(t, "wifi down", p.Describe())

	_, err = DecodePayloadAs("catering", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownPayloadKind)
}
