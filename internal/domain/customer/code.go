package customer

import (
	"fmt"
	"regexp"
)

// codePattern matches the human-facing customer code format.
var codePattern = regexp.MustCompile(`^CLIENTE_\d{3,}$`)

// FormatCode renders a sequence number as a customer code, zero-padded to
// three digits: FormatCode(7) = "CLIENTE_007".
func FormatCode(seq uint) string {
	return fmt.Sprintf("CLIENTE_%03d", seq)
}

// IsValidCode reports whether s is a well-formed customer code.
func IsValidCode(s string) bool {
	return codePattern.MatchString(s)
}
