package helper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexUint(t *testing.T) {
	cases := map[string]FlexUint{
		`{"id":12}`:    12,
		`{"id":"12"}`:  12,
		`{"id":" 7 "}`: 7,
		`{"id":null}`:  0,
		`{"id":"abc"}`: 0,
		`{}`:           0,
	}
	for in, want := range cases {
		var v struct {
			ID FlexUint `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(in), &v), in)
		assert.Equal(t, want, v.ID, in)
	}

	assert.Nil(t, FlexUint(0).Ptr())
	assert.Equal(t, uint(3), *FlexUint(3).Ptr())
}

func TestFlexString(t *testing.T) {
	cases := map[string]FlexString{
		`{"v":"101"}`:   "101",
		`{"v":101}`:     "101",
		`{"v":-3}`:      "-3",
		`{"v":null}`:    "",
		`{"v":true}`:    "",
		`{"v":{"a":1}}`: "",
		`{"v":[1,2]}`:   "",
		`{}`:            "",
	}
	for in, want := range cases {
		var v struct {
			V FlexString `json:"v"`
		}
		require.NoError(t, json.Unmarshal([]byte(in), &v), in)
		assert.Equal(t, want, v.V, in)
	}
}
