package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPimsleur(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tōkyō", "tookyoo"},
		{"shôgun", "shoogun"},
		{"ＫＯＮＮＩＣＨＩＨＡ", "konnichiha"},
		{"Sumimasen.", "sumimasen."},
		{"café", "cafe"},
		{"pan'ya", "pan'ya"},
		{"がっこう", "がっこう"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Pimsleur(tt.in), "input %q", tt.in)
	}
}
