package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseWireDate parses a DD/MM/YYYY booking date into UTC midnight of that
// day, so the stored value does not depend on the server time zone.
// Day and month may omit their leading zero.
func ParseWireDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: expected DD/MM/YYYY", s)
	}
	day, errD := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errD != nil || errM != nil || errY != nil || len(parts[2]) != 4 {
		return time.Time{}, fmt.Errorf("invalid date %q: expected DD/MM/YYYY", s)
	}
	return civilDate(year, month, day, s)
}

// FormatWireDate renders t as DD/MM/YYYY using its UTC calendar day.
func FormatWireDate(t time.Time) string {
	return t.UTC().Format(WireDateLayout)
}

// FormDateToWire converts a YYYY-MM-DD form value into the DD/MM/YYYY wire format.
func FormDateToWire(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errD != nil || errM != nil || errY != nil || len(parts[0]) != 4 {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	t, err := civilDate(year, month, day, s)
	if err != nil {
		return "", err
	}
	return FormatWireDate(t), nil
}

// civilDate rejects out-of-range parts instead of letting time.Date normalise
// them (31/02 would otherwise become 02/03).
func civilDate(year, month, day int, raw string) (time.Time, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, fmt.Errorf("invalid date %q: out of range", raw)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, fmt.Errorf("invalid date %q: out of range", raw)
	}
	return t, nil
}
