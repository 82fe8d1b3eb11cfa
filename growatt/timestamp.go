package growatt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Timestamp is a point in time that may be absent. The vendor encodes
// timestamps in three shapes depending on the endpoint: a millisecond epoch
// number, a "YYYY-MM-DD HH:MM:SS" text field, or a java.util.Calendar-style
// object with the year offset by 1900 and a zero-based month.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// TimestampOf returns a present Timestamp.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp{Time: t, Valid: true}
}

// calendarTime mirrors the vendor's serialized Calendar object. Both the v1
// key set (date/hours) and the variant with dayOfMonth/hourOfDay are found in
// the wild; the millisecond epoch wins when present.
type calendarTime struct {
	Year           Int `json:"year"`
	Month          Int `json:"month"`
	Date           Int `json:"date"`
	DayOfMonth     Int `json:"dayOfMonth"`
	Hours          Int `json:"hours"`
	HourOfDay      Int `json:"hourOfDay"`
	Minutes        Int `json:"minutes"`
	Minute         Int `json:"minute"`
	Seconds        Int `json:"seconds"`
	Second         Int `json:"second"`
	Time           Int `json:"time"`
	TimezoneOffset Int `json:"timezoneOffset"`
}

func firstValid(values ...Int) Int {
	for _, v := range values {
		if v.Valid {
			return v
		}
	}

	return Int{}
}

func (c calendarTime) toTime() (time.Time, bool) {
	if c.Time.Valid {
		return time.UnixMilli(c.Time.Int64).UTC(), true
	}

	if !c.Year.Valid {
		return time.Time{}, false
	}

	day := firstValid(c.Date, c.DayOfMonth)
	hour := firstValid(c.Hours, c.HourOfDay)
	minute := firstValid(c.Minutes, c.Minute)
	second := firstValid(c.Seconds, c.Second)

	t := time.Date(
		int(c.Year.Int64)+1900,
		time.Month(c.Month.Int64)+1,
		int(day.Int64),
		int(hour.Int64),
		int(minute.Int64),
		int(second.Int64),
		0,
		time.UTC,
	)

	return t, true
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	*t = Timestamp{}

	if isNullSentinel(b) {
		return nil
	}

	switch b[0] {
	case '{':
		var cal calendarTime
		if err := json.Unmarshal(b, &cal); err != nil {
			return errors.Wrap(err, "invalid calendar timestamp")
		}

		t.Time, t.Valid = cal.toTime()

		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return errors.Wrap(err, "invalid timestamp")
		}

		// Alarm times carry a stray fractional second ("2019-03-09 09:55:55.0")
		// and plant power samples omit the seconds ("2018-12-13 10:45").
		for _, layout := range []string{"2006-01-02 15:04:05.999", "2006-01-02 15:04", dateLayout} {
			if parsed, err := time.Parse(layout, s); err == nil {
				t.Time = parsed
				t.Valid = true

				return nil
			}
		}

		return errors.Errorf("invalid timestamp value: %s", b)
	default:
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return errors.Errorf("invalid epoch timestamp: %s", b)
		}

		t.Time = time.UnixMilli(ms).UTC()
		t.Valid = true

		return nil
	}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte(`null`), nil
	}

	return json.Marshal(t.Time.Format(dateTimeLayout))
}

// Date is a calendar day that may be absent. The wire format is "YYYY-MM-DD";
// plant energy aggregates also report bare "YYYY-MM" and "YYYY" values which
// decode to the first day of the period.
type Date struct {
	Time  time.Time
	Valid bool
}

// DateOf returns a present Date.
func DateOf(t time.Time) Date {
	return Date{Time: t, Valid: true}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	*d = Date{}

	if isNullSentinel(b) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "invalid date")
	}

	switch strings.Count(s, "-") {
	case 0:
		s += "-01-01"
	case 1:
		s += "-01"
	}

	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return errors.Errorf("invalid date value: %s", b)
	}

	d.Time = parsed
	d.Valid = true

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte(`null`), nil
	}

	return json.Marshal(d.Time.Format(dateLayout))
}

// ForcedTime is a time of day that may be absent. Charge/discharge period
// fields arrive as "H:M" without zero padding ("3:0" for 03:00). Malformed
// values decode to absent instead of failing, since several firmware
// revisions fill these fields with garbage.
type ForcedTime struct {
	Hour   int
	Minute int
	Valid  bool
}

// ForcedTimeOf returns a present ForcedTime.
func ForcedTimeOf(hour, minute int) ForcedTime {
	return ForcedTime{Hour: hour, Minute: minute, Valid: true}
}

func (f *ForcedTime) UnmarshalJSON(b []byte) error {
	*f = ForcedTime{}

	if isNullSentinel(b) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return nil
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil
	}

	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil
	}

	f.Hour = hour
	f.Minute = minute
	f.Valid = true

	return nil
}

func (f ForcedTime) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte(`null`), nil
	}

	return json.Marshal(fmt.Sprintf("%d:%d", f.Hour, f.Minute))
}

func (f ForcedTime) String() string {
	if !f.Valid {
		return ""
	}

	return fmt.Sprintf("%02d:%02d", f.Hour, f.Minute)
}
