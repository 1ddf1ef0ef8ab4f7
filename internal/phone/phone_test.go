package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"dashed 10 digits", "555-123-4567", "+15551234567"},
		{"bare 10 digits", "5551234567", "+15551234567"},
		{"11 digits with country code", "15551234567", "+15551234567"},
		{"formatted with punctuation", "(555) 123-4567", "+15551234567"},
		{"already canonical", "+1 555 123 4567", "+15551234567"},
		{"empty input", "", "+"},
		{"no digits at all", "call me", "+"},
		{"too few digits", "123", "+123"},
		{"11 digits not starting with 1", "25551234567", "+25551234567"},
		{"international length", "442079460958", "+442079460958"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalizeAlwaysPlusPrefixed(t *testing.T) {
	inputs := []string{"", "x", "911", "555-123-4567", "++++", "1 (555) 123-4567 ext. 9"}
	for _, in := range inputs {
		out := Normalize(in)
		assert.NotEmpty(t, out)
		assert.Equal(t, byte('+'), out[0])
	}
}
