package growatt

import "time"

// HistoryOptions narrows a historical data query. Zero-value Start/End both
// default to today; a single zero bound is copied from the other. Spans of
// 7 days or more are rejected before the request is sent.
type HistoryOptions struct {
	Start    time.Time
	End      time.Time
	Timezone string
	Page     int
	Limit    int
}

// resolve applies the date-range defaults and returns the effective bounds.
func (o HistoryOptions) resolve() (time.Time, time.Time, error) {
	return resolveDateRange(o.Start, o.End)
}

// AlarmOptions narrows an alarm query. A zero Date defaults to today.
type AlarmOptions struct {
	Date  time.Time
	Page  int
	Limit int
}
