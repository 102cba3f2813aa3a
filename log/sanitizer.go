package log

import (
	"fmt"
	"strings"
)

// controlCharReplacer escapes characters that can forge extra log entries (CWE-117).
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Sanitize escapes newlines, carriage returns and tabs in a caller-supplied string.
func Sanitize(s string) string {
	return controlCharReplacer.Replace(s)
}

// ErrorField returns the field used to log err. In production only the
// error's type is logged, since error text often embeds caller input.
func ErrorField(err error, production bool) Field {
	if production {
		return String("error_type", fmt.Sprintf("%T", err))
	}

	return String("error", Sanitize(err.Error()))
}
