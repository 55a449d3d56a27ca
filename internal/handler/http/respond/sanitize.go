package respond

import (
	"regexp"
)

var (
	// user:password@ inside cluster URLs
	urlCredentialPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
	// Authorization header values echoed in transport errors
	authHeaderPattern = regexp.MustCompile(`(?i)\b(ApiKey|Basic|Bearer)\s+[A-Za-z0-9+/=._-]+`)
)

// SanitizeError returns err's message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = urlCredentialPattern.ReplaceAllString(msg, "://$1:****@")
	msg = authHeaderPattern.ReplaceAllString(msg, "$1 ****")
	return msg
}
