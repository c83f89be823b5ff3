package helper

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexUint accepts 12 and "12". Anything else decodes to 0.
type FlexUint uint

func (f *FlexUint) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
	}
	n, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexUint(n)
	return nil
}

// Ptr returns nil for 0, for nullable foreign keys.
func (f FlexUint) Ptr() *uint {
	if f == 0 {
		return nil
	}
	v := uint(f)
	return &v
}
