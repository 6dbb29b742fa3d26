package models

import "strings"

// Recognized booking statuses. The store keeps status as an open string, so
// values outside this set are persisted and returned as-is.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// RecognizedStatuses is the display order used by status pickers.
var RecognizedStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsRecognizedStatus reports whether s is one of the known statuses (case-insensitive).
func IsRecognizedStatus(s string) bool {
	for _, known := range RecognizedStatuses {
		if strings.EqualFold(s, known) {
			return true
		}
	}
	return false
}
