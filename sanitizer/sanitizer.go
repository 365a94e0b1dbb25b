// FILE: lixenwraith/tlog/sanitizer/sanitizer.go
// Package sanitizer rewrites message text before it is placed on a log line.
// Rules pair a rune filter with a transform; the first matching rule wins.
package sanitizer

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Filter flags for rune matching
const (
	FilterNonPrintable uint64 = 1 << iota // Runes rejected by strconv.IsPrint
	FilterControl                         // unicode.IsControl
	FilterNewline                         // '\n' and '\r' only
)

// Transform flags
const (
	TransformStrip     uint64 = 1 << iota // Drop the rune
	TransformHexEncode                    // Replace with "<xx..>" of its UTF-8 bytes
	TransformEscape                       // Backslash escape (\n, \t, \u0000)
)

// PolicyPreset names a pre-configured rule set
type PolicyPreset string

const (
	PolicyRaw    PolicyPreset = "raw"    // Passthrough
	PolicyTxt    PolicyPreset = "txt"    // Hex-encode anything non-printable, one entry per line
	PolicyEscape PolicyPreset = "escape" // Backslash-escape control characters
)

var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:    {},
	PolicyTxt:    {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyEscape: {{filter: FilterControl, transform: TransformEscape}},
}

type rule struct {
	filter    uint64
	transform uint64
}

// Sanitizer holds an ordered rule list. It keeps no scratch state, so a
// single instance is safe for concurrent use once configured.
type Sanitizer struct {
	rules []rule
}

// New creates a passthrough sanitizer
func New() *Sanitizer {
	return &Sanitizer{}
}

// ValidPolicy reports whether name is a known preset
func ValidPolicy(name string) bool {
	_, ok := policyRules[PolicyPreset(name)]
	return ok
}

// Rule appends a custom rule
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy appends the rules of a preset; unknown presets are ignored
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Sanitize applies the rules to data
func (s *Sanitizer) Sanitize(data string) string {
	if len(s.rules) == 0 {
		return data
	}

	buf := make([]byte, 0, len(data)+16)
	for _, r := range data {
		matched := false
		for _, rl := range s.rules {
			if matches(r, rl.filter) {
				buf = transform(buf, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			buf = utf8.AppendRune(buf, r)
		}
	}
	return string(buf)
}

func matches(r rune, mask uint64) bool {
	if mask&FilterNonPrintable != 0 && !strconv.IsPrint(r) {
		return true
	}
	if mask&FilterControl != 0 && unicode.IsControl(r) {
		return true
	}
	if mask&FilterNewline != 0 && (r == '\n' || r == '\r') {
		return true
	}
	return false
}

func transform(buf []byte, r rune, mask uint64) []byte {
	switch {
	case mask&TransformStrip != 0:
		return buf

	case mask&TransformHexEncode != 0:
		var rb [utf8.UTFMax]byte
		n := utf8.EncodeRune(rb[:], r)
		buf = append(buf, '<')
		buf = hex.AppendEncode(buf, rb[:n])
		return append(buf, '>')

	case mask&TransformEscape != 0:
		switch r {
		case '\n':
			return append(buf, '\\', 'n')
		case '\r':
			return append(buf, '\\', 'r')
		case '\t':
			return append(buf, '\\', 't')
		default:
			return append(buf, fmt.Sprintf("\\u%04x", r)...)
		}
	}
	return utf8.AppendRune(buf, r)
}
