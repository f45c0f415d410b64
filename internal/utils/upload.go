package utils

import (
	"strconv" // Millisecond timestamp formatting
	"strings" // Whitespace sanitization
	"time"    // Ingestion timestamp
	"unicode" // Whitespace classification
)

// GenerateUploadName builds the stored filename for an uploaded work file:
// the ingestion timestamp in milliseconds joined with the original name,
// every whitespace character replaced by an underscore. Two uploads sharing
// the exact same millisecond and filename would collide; accepted risk.
func GenerateUploadName(original string) string {
	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_' // Replace whitespace with underscore
		}
		return r
	}, original)
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + sanitized // <timestamp>-<sanitized-name>
}
