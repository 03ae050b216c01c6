package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1500", 1500, true},
		{"1,500", 1500, true},
		{"1,500.50", 1500.5, true},
		{"12,5", 12.5, true},
		{"12.5", 12.5, true},
		{" 250 ", 250, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got := ParseAmount(tc.in)
		if !tc.ok {
			assert.Nil(t, got, "input %q", tc.in)
			continue
		}
		require.NotNil(t, got, "input %q", tc.in)
		assert.Equal(t, tc.want, *got, "input %q", tc.in)
	}
}

func TestParseCount(t *testing.T) {
	got := ParseCount("250 guests")
	require.NotNil(t, got)
	assert.Equal(t, 250, *got)

	assert.Nil(t, ParseCount(""))
	assert.Nil(t, ParseCount("soon"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "", FormatAmount(nil))
	v := 1500.5
	assert.Equal(t, "1500.5", FormatAmount(&v))
}
