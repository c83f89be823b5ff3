package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
)

var ErrUnknownPayloadKind = errors.New("unknown request payload kind")

// Payload is the structured body of a request, one variant per request type.
type Payload interface {
	Kind() string
	// Describe renders the legacy description text, e.g.
	// "Answer Sheet (Qty: 5) - extra sheets" or "Student ID: 21-001 - phone found".
	Describe() string
}

type MaterialPayload struct {
	MaterialType string `json:"material_type" validate:"required"`
	Quantity     *int   `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Reason       string `json:"reason" validate:"required"`
}

func (MaterialPayload) Kind() string { return RequestTypeMaterial }

func (p MaterialPayload) Describe() string {
	var b strings.Builder
	b.WriteString(p.MaterialType)
	if p.Quantity != nil {
		fmt.Fprintf(&b, " (Qty: %d)", *p.Quantity)
	}
	if p.Reason != "" {
		b.WriteString(" - ")
		b.WriteString(p.Reason)
	}
	return b.String()
}

type UMCPayload struct {
	StudentID string `json:"student_id" validate:"required"`
	Details   string `json:"details" validate:"required"`
}

func (UMCPayload) Kind() string { return RequestTypeUMC }

func (p UMCPayload) Describe() string {
	return "Student ID: " + p.StudentID + " - " + p.Details
}

type ITPayload struct {
	Issue string `json:"issue" validate:"required"`
}

func (ITPayload) Kind() string { return RequestTypeIT }

func (p ITPayload) Describe() string { return p.Issue }

// storedPayload is the column shape: {"kind":"material","data":{...}}
type storedPayload struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// DecodePayloadAs parses a client payload for the given request type.
func DecodePayloadAs(kind string, raw []byte) (Payload, error) {
	switch kind {
	case RequestTypeMaterial:
		var p MaterialPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		p.MaterialType = strings.TrimSpace(p.MaterialType)
		p.Reason = strings.TrimSpace(p.Reason)
		return p, nil
	case RequestTypeUMC:
		var p UMCPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		p.StudentID = strings.TrimSpace(p.StudentID)
		p.Details = strings.TrimSpace(p.Details)
		return p, nil
	case RequestTypeIT:
		var p ITPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		p.Issue = strings.TrimSpace(p.Issue)
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPayloadKind, kind)
}

func EncodePayload(p Payload) (datatypes.JSON, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(storedPayload{Kind: p.Kind(), Data: data})
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}

// DecodePayload reads the payload column. An empty column yields nil, nil.
func DecodePayload(raw datatypes.JSON) (Payload, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var sp storedPayload
	if err := json.Unmarshal(raw, &sp); err != nil {
		return nil, err
	}
	return DecodePayloadAs(sp.Kind, sp.Data)
}
