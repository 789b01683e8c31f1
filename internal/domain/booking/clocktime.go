package booking

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedClockTime = errors.New("malformed clock time")

// ParseClockTime parses a 12-hour wall clock string ("hh:mm AM/PM") into
// 24-hour components. 12 AM maps to 00 and 12 PM stays 12.
func ParseClockTime(value string) (hour, minute int, err error) {
	parts := strings.Fields(strings.TrimSpace(value))
	if len(parts) != 2 {
		return 0, 0, ErrMalformedClockTime
	}

	marker := strings.ToUpper(parts[1])
	if marker != "AM" && marker != "PM" {
		return 0, 0, ErrMalformedClockTime
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return 0, 0, ErrMalformedClockTime
	}

	hour, err = strconv.Atoi(hm[0])
	if err != nil {
		return 0, 0, ErrMalformedClockTime
	}
	minute, err = strconv.Atoi(hm[1])
	if err != nil {
		return 0, 0, ErrMalformedClockTime
	}

	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, ErrMalformedClockTime
	}

	if marker == "PM" && hour < 12 {
		hour += 12
	}
	if marker == "AM" && hour == 12 {
		hour = 0 // midnight
	}

	return hour, minute, nil
}

// AppointmentInstant combines a calendar date with a 12-hour clock string
// into an absolute instant in the date's zone, with seconds zeroed.
func AppointmentInstant(date time.Time, clockTime string) (time.Time, error) {
	hour, minute, err := ParseClockTime(clockTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}
