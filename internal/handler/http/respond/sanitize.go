package respond

import "regexp"

var (
	// Password embedded in a connection string DSN.
	dsnPasswordPattern = regexp.MustCompile(`://([^:/]+):([^@]+)@`)
	// Bearer tokens in error text, e.g. from upstream HTTP clients.
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._\-]+`)
)

// SanitizeError returns the error message with credentials masked so it
// can be logged safely.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")
	return msg
}
