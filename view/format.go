package view

import (
	"strings"

	"carwash/models"
	"carwash/utils"
)

// FormDateToWire converts a date input value (YYYY-MM-DD) into the DD/MM/YYYY
// format the API accepts.
func FormDateToWire(formDate string) (string, error) {
	return utils.FormDateToWire(formDate)
}

// WireDateFromBooking renders the booking date as DD/MM/YYYY, or "" if unset.
func WireDateFromBooking(b models.Booking) string {
	if b.BookingDate.IsZero() {
		return ""
	}
	return utils.FormatWireDate(b.BookingDate)
}

// FormDateFromBooking renders the booking date as a date input value
// (YYYY-MM-DD), or "" if unset.
func FormDateFromBooking(b models.Booking) string {
	if b.BookingDate.IsZero() {
		return ""
	}
	return b.BookingDate.UTC().Format(utils.FormDateLayout)
}

// DisplayDate renders the booking date for detail pages, e.g. "March 1, 2025".
func DisplayDate(b models.Booking) string {
	if b.BookingDate.IsZero() {
		return ""
	}
	return b.BookingDate.UTC().Format("January 2, 2006")
}

// StatusOption is one entry of the status picker.
type StatusOption struct {
	Value string
	Label string
}

// StatusOptions lists the recognized statuses in picker order.
func StatusOptions() []StatusOption {
	out := make([]StatusOption, 0, len(models.RecognizedStatuses))
	for _, s := range models.RecognizedStatuses {
		out = append(out, StatusOption{Value: s, Label: StatusLabel(s)})
	}
	return out
}

// StatusLabel capitalizes a recognized status. Anything else is shown verbatim.
func StatusLabel(status string) string {
	if !models.IsRecognizedStatus(status) {
		return status
	}
	lower := strings.ToLower(status)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// BadgeColors are the background and text colors of a status badge.
type BadgeColors struct {
	Background string
	Text       string
}

var badgeColors = map[string]BadgeColors{
	models.StatusPending:   {Background: "#fef3c7", Text: "#92400e"},
	models.StatusConfirmed: {Background: "#d1fae5", Text: "#065f46"},
	models.StatusCompleted: {Background: "#dbeafe", Text: "#1e40af"},
	models.StatusCancelled: {Background: "#fee2e2", Text: "#dc2626"},
}

// StatusBadge picks badge colors by status, case-insensitively; unknown
// statuses are gray.
func StatusBadge(status string) BadgeColors {
	if c, ok := badgeColors[strings.ToLower(status)]; ok {
		return c
	}
	return BadgeColors{Background: "#f3f4f6", Text: "#374151"}
}
