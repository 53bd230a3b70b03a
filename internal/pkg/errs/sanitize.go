package errs

import (
	"fmt"
	"strings"
)

// sanitize renders a value on a single line so it can be embedded in error messages.
func sanitize(value any) string {
	s := fmt.Sprintf("%v", value)
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}
