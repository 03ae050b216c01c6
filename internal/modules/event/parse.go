package event

import (
	"strconv"
	"strings"
)

// ParseAmount reads a money/hours field permissively. Empty or unparsable
// input yields nil, never zero, so a half-typed value cannot corrupt the
// saved record. A single comma followed by one or two digits reads as a
// decimal point ("12,5" -> 12.5); any other punctuation is stripped, so
// thousands separators pass through ("1,500" -> 1500).
func ParseAmount(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return &v
	}

	if i := strings.IndexByte(s, ','); i >= 0 && strings.Count(s, ",") == 1 {
		frac := len(s) - i - 1
		if frac >= 1 && frac <= 2 {
			if v, err := strconv.ParseFloat(s[:i]+"."+s[i+1:], 64); err == nil {
				return &v
			}
		}
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if v, err := strconv.ParseFloat(b.String(), 64); err == nil {
		return &v
	}
	return nil
}

// ParseCount reads an integer field with the same omitted-when-empty policy.
func ParseCount(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.Atoi(b.String())
	if err != nil {
		return nil
	}
	return &v
}

// FormatAmount renders a parsed amount back to a display string. Nil renders
// empty, matching the omitted-not-zero policy.
func FormatAmount(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
