package domain

import "strings"

// MaskEmail keeps the first character of the local part and the domain,
// so log lines never carry a full login identifier.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
