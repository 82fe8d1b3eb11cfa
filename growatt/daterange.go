package growatt

import (
	"time"

	"github.com/michalkurzeja/go-clock"
)

// resolveDateRange normalizes an optional start/end pair for historical
// queries. Zero values default to today, a single present bound is copied to
// the other, and spans of 7 days or more are rejected before any network
// call. The 7-day boundary itself is invalid: only 0-6 day spans pass.
func resolveDateRange(start, end time.Time) (time.Time, time.Time, error) {
	switch {
	case start.IsZero() && end.IsZero():
		today := clock.Now()
		start, end = today, today
	case start.IsZero():
		start = end
	case end.IsZero():
		end = start
	}

	if end.Sub(start) >= 7*24*time.Hour {
		return time.Time{}, time.Time{}, ErrDateRangeTooWide
	}

	return start, end, nil
}

// resolveDate defaults a single optional date to today.
func resolveDate(date time.Time) time.Time {
	if date.IsZero() {
		return clock.Now()
	}

	return date
}

// resolveSerial picks the serial number for a call: an explicit argument wins
// over the service default configured at construction time.
func resolveSerial(explicit, fallback string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", ErrNoDeviceSerial
}

// resolveSerials is resolveSerial for batch calls taking a serial list.
func resolveSerials(explicit []string, fallback string) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}

	if fallback != "" {
		return []string{fallback}, nil
	}

	return nil, ErrNoDeviceSerial
}
