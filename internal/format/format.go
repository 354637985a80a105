package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// CapitalizeWords lowercases the whole string and uppercases the first
// letter of each whitespace-separated word, re-joined with single
// spaces. Idempotent.
func CapitalizeWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// UnmaskCPF strips everything that is not a digit.
func UnmaskCPF(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskCPF renders a CPF as XXX.XXX.XXX-YY. Partial input gets as much of
// the mask as its digits cover, so the function also serves live typing.
// Masking already-masked input is a no-op.
func MaskCPF(s string) string {
	d := UnmaskCPF(s)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// Amount renders a monetary value with two decimal places and the
// currency prefix.
func Amount(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

// DateTime renders a backend timestamp as local date and time. The
// backend sends ISO-8601; anything unparseable is shown as-is.
func DateTime(s string) string {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Local().Format("02/01/2006 15:04:05")
		}
	}
	return s
}
