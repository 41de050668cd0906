package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Test@X.com", "test@x.com"},
		{"trims", "  user@example.ph  ", "user@example.ph"},
		{"trims and lowercases", " MixED@Example.PH\t", "mixed@example.ph"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeEmail(tc.in))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "555-1234", NormalizePhone("  555-1234 "))
	// No reformatting: separators and leading zeros are preserved.
	assert.Equal(t, "0917-555-0101", NormalizePhone("0917-555-0101"))
	assert.Equal(t, "", NormalizePhone("   "))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Test@X.com", "  a@B.c ", "555-1234", " +63 917 555 0101", ""}
	for _, in := range inputs {
		e := NormalizeEmail(in)
		assert.Equal(t, e, NormalizeEmail(e))
		p := NormalizePhone(in)
		assert.Equal(t, p, NormalizePhone(p))
	}
}
