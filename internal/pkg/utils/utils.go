package utils

import "fmt"

// FormatDurationSeconds converts a duration in seconds to a display string.
// Both components are always present so listings stay aligned.
// Example: 7800 -> "2h 10m", 3600 -> "1h 0m"
func FormatDurationSeconds(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60

	return fmt.Sprintf("%dh %dm", h, m)
}
