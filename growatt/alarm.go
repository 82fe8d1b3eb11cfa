package growatt

// Alarm is a single device alarm. All device families report the same shape;
// start and end times carry a stray fractional second on the wire.
type Alarm struct {
	AlarmCode    Int       `json:"alarm_code"`
	Status       Int       `json:"status"`
	StartTime    Timestamp `json:"start_time"`
	EndTime      Timestamp `json:"end_time"`
	AlarmMessage String    `json:"alarm_message"`
}
