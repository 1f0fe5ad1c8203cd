package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_StripsMarkup(t *testing.T) {
	for _, tc := range []struct {
		name, in, want string
	}{
		{"plain text untouched", "water outage in North Block", "water outage in North Block"},
		{"surrounding space trimmed", "  hello ward  ", "hello ward"},
		{"tags removed, text kept", "hello <b>ward</b>", "hello ward"},
		{"script content dropped entirely", "<script>alert(1)</script>", ""},
		{"bare tag leaves nothing", `<img src=x onerror=alert(1)>`, ""},
		{"empty stays empty", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.in))
		})
	}
}
