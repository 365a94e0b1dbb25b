// Package formatter renders tagged log lines of the form
// "<timestamp> | <tag> | <message>".
package formatter

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/tlog/sanitizer"
)

// DefaultTimestampFormat mirrors the classic "date" output with a zero-padded day
const DefaultTimestampFormat = "Mon Jan 02 15:04:05 MST 2006"

// Separator between the three line fields
const Separator = " | "

// dumper renders values that have no cheaper representation
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Formatter builds log lines. Configure it before sharing; Line is safe
// for concurrent use afterwards.
type Formatter struct {
	sanitizer       *sanitizer.Sanitizer
	timestampFormat string
}

// New creates a formatter with an optional sanitizer (passthrough if none)
func New(s ...*sanitizer.Sanitizer) *Formatter {
	var san *sanitizer.Sanitizer
	if len(s) > 0 && s[0] != nil {
		san = s[0]
	} else {
		san = sanitizer.New()
	}
	return &Formatter{
		sanitizer:       san,
		timestampFormat: DefaultTimestampFormat,
	}
}

// TimestampFormat sets the time layout; empty keeps the current one
func (f *Formatter) TimestampFormat(format string) *Formatter {
	if format != "" {
		f.timestampFormat = format
	}
	return f
}

// Sanitizer replaces the message sanitizer
func (f *Formatter) Sanitizer(s *sanitizer.Sanitizer) *Formatter {
	if s != nil {
		f.sanitizer = s
	}
	return f
}

// Line formats one entry without the trailing newline
func (f *Formatter) Line(ts time.Time, tag string, msg any) string {
	text := f.sanitizer.Sanitize(Value(msg, f.timestampFormat))

	var sb strings.Builder
	sb.Grow(len(f.timestampFormat) + len(tag) + len(text) + 2*len(Separator))
	sb.WriteString(ts.Format(f.timestampFormat))
	sb.WriteString(Separator)
	sb.WriteString(tag)
	sb.WriteString(Separator)
	sb.WriteString(text)
	return sb.String()
}

// Value converts any message value to text. Structured values fall back to
// a compact spew dump.
func Value(v any, timestampFormat string) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return hex.EncodeToString(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return "nil"
	case time.Time:
		if timestampFormat == "" {
			timestampFormat = DefaultTimestampFormat
		}
		return val.Format(timestampFormat)
	case error:
		return methodText(val, val.Error)
	case fmt.Stringer:
		return methodText(val, val.String)
	default:
		var b bytes.Buffer
		dumper.Fdump(&b, val)
		return string(bytes.TrimSpace(b.Bytes()))
	}
}

// methodText calls a text method that may panic. A nil pointer receiver
// renders as "nil"; other panics are reported inline.
func methodText(v any, method func() string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
				text = "nil"
				return
			}
			text = fmt.Sprintf("%T(panic: %v)", v, r)
		}
	}()
	return method()
}
