// FILE: lixenwraith/tlog/utility_test.go
package tlog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{"key=value", "key", "value", false},
		{" key = value ", "key", "value", false},
		{"key=a=b", "key", "a=b", false},
		{"key=", "key", "", false},
		{"=value", "", "", true},
		{"novalue", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := parseKeyValue(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestFmtErrorf(t *testing.T) {
	err := fmtErrorf("failed: %d", 3)
	assert.Equal(t, "tlog: failed: 3", err.Error())

	err = fmtErrorf("tlog: already prefixed")
	assert.Equal(t, "tlog: already prefixed", err.Error())

	base := errors.New("root")
	assert.ErrorIs(t, fmtErrorf("wrapped: %w", base), base)
}

func TestCombineErrors(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")

	assert.Nil(t, combineErrors(nil, nil))
	assert.Equal(t, e1, combineErrors(e1, nil))
	assert.Equal(t, e2, combineErrors(nil, e2))

	combined := combineErrors(e1, e2)
	assert.Equal(t, "first; second", combined.Error())
	assert.ErrorIs(t, combined, e2)
}

func TestJoinArgs(t *testing.T) {
	assert.Equal(t, "type=proc sequence=3", joinArgs([]any{"type", "proc", "sequence", 3}))
	assert.Equal(t, "a=1", joinArgs([]any{"a", 1, "dangling"}))
	assert.Equal(t, "", joinArgs(nil))
}
