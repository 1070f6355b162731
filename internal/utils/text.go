package utils

import "fmt"

const (
	SummaryMaxLength = 100
	ellipsis         = "..."
)

// TruncateSummary cuts s to its first SummaryMaxLength characters and marks
// the cut with an ellipsis. Shorter strings are returned unchanged.
func TruncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= SummaryMaxLength {
		return s
	}
	return string(runes[:SummaryMaxLength]) + ellipsis
}

// FormatRuntime renders minutes as "2h 28m".
func FormatRuntime(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
