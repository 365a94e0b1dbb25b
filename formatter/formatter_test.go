// FILE: lixenwraith/tlog/formatter/formatter_test.go
package formatter

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/tlog/sanitizer"
)

type point struct {
	X, Y int
}

type named string

type codeErr struct{ code int }

func (e *codeErr) Error() string { return fmt.Sprintf("code %d", e.code) }

type brokenStringer struct{}

func (brokenStringer) String() string { panic("no text") }

func (n named) String() string { return "named:" + string(n) }

func TestFormatterLine(t *testing.T) {
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("default layout", func(t *testing.T) {
		line := New().Line(ts, "[INFO]", "hello")
		assert.Equal(t, "Mon Jan 01 12:00:00 UTC 2024 | [INFO] | hello", line)
	})

	t.Run("custom layout", func(t *testing.T) {
		line := New().TimestampFormat(time.RFC3339).Line(ts, "[WARN]", "careful")
		assert.Equal(t, "2024-01-01T12:00:00Z | [WARN] | careful", line)
	})

	t.Run("empty layout keeps default", func(t *testing.T) {
		line := New().TimestampFormat("").Line(ts, "[T]", "x")
		assert.True(t, strings.HasPrefix(line, "Mon Jan 01"))
	})

	t.Run("sanitizer applied to message only", func(t *testing.T) {
		f := New(sanitizer.New().Policy(sanitizer.PolicyTxt))
		line := f.Line(ts, "[TAB\t]", "a\nb")
		assert.Equal(t, "Mon Jan 01 12:00:00 UTC 2024 | [TAB\t] | a<0a>b", line)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		line := New().Line(ts, "[INFO]", "x")
		assert.False(t, strings.HasSuffix(line, "\n"))
	})
}

func TestValue(t *testing.T) {
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		in       any
		expected string
	}{
		{"string", "plain", "plain"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"uint64", uint64(9), "9"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"nil", nil, "nil"},
		{"bytes", []byte{0xde, 0xad}, "dead"},
		{"error", errors.New("boom"), "boom"},
		{"stringer", named("n"), "named:n"},
		{"pointer error", &codeErr{code: 7}, "code 7"},
		{"typed nil error", (*codeErr)(nil), "nil"},
		{"typed nil stringer", (*brokenStringer)(nil), "nil"},
		{"panicking stringer", brokenStringer{}, "formatter.brokenStringer(panic: no text)"},
		{"time", ts, "2024-01-01T12:00:00Z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Value(tc.in, time.RFC3339))
		})
	}

	t.Run("struct uses spew", func(t *testing.T) {
		out := Value(point{X: 1, Y: 2}, "")
		assert.Contains(t, out, "formatter.point")
		assert.Contains(t, out, "X: (int) 1")
		assert.Contains(t, out, "Y: (int) 2")
	})

	t.Run("map keys sorted", func(t *testing.T) {
		out := Value(map[string]int{"b": 2, "a": 1}, "")
		assert.Less(t, strings.Index(out, `"a"`), strings.Index(out, `"b"`))
	})
}
