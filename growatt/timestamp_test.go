package growatt_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smartpv/growatt-go/growatt"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    growatt.Timestamp
		wantErr bool
	}{
		{
			name:  "millisecond epoch",
			input: `1544669100000`,
			want:  growatt.TimestampOf(time.UnixMilli(1544669100000).UTC()),
		},
		{
			name:  "datetime string",
			input: `"2019-03-09 09:55:55"`,
			want:  growatt.TimestampOf(time.Date(2019, time.March, 9, 9, 55, 55, 0, time.UTC)),
		},
		{
			name:  "datetime string with stray fraction",
			input: `"2019-03-09 09:55:55.0"`,
			want:  growatt.TimestampOf(time.Date(2019, time.March, 9, 9, 55, 55, 0, time.UTC)),
		},
		{
			name:  "power sample without seconds",
			input: `"2018-12-13 10:45"`,
			want:  growatt.TimestampOf(time.Date(2018, time.December, 13, 10, 45, 0, 0, time.UTC)),
		},
		{
			name:  "date only",
			input: `"2018-12-13"`,
			want:  growatt.TimestampOf(time.Date(2018, time.December, 13, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:  "calendar object with 1900-offset year and zero-based month",
			input: `{"year":118,"month":11,"date":13,"hours":10,"minutes":45,"seconds":0}`,
			want:  growatt.TimestampOf(time.Date(2018, time.December, 13, 10, 45, 0, 0, time.UTC)),
		},
		{
			name:  "calendar object epoch wins over fields",
			input: `{"year":100,"month":0,"date":1,"time":1544669100000}`,
			want:  growatt.TimestampOf(time.UnixMilli(1544669100000).UTC()),
		},
		{
			name:  "calendar variant key set",
			input: `{"year":118,"month":11,"dayOfMonth":13,"hourOfDay":10,"minute":45,"second":30}`,
			want:  growatt.TimestampOf(time.Date(2018, time.December, 13, 10, 45, 30, 0, time.UTC)),
		},
		{
			name:  "json null",
			input: `null`,
		},
		{
			name:  "empty string",
			input: `""`,
		},
		{
			name:    "garbage",
			input:   `"yesterday"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got growatt.Timestamp

			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    growatt.Date
		wantErr bool
	}{
		{
			name:  "full date",
			input: `"2018-12-13"`,
			want:  growatt.DateOf(time.Date(2018, time.December, 13, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:  "month aggregate",
			input: `"2018-12"`,
			want:  growatt.DateOf(time.Date(2018, time.December, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:  "year aggregate",
			input: `"2018"`,
			want:  growatt.DateOf(time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:  "json null",
			input: `null`,
		},
		{
			name:  "empty string",
			input: `""`,
		},
		{
			name:    "garbage",
			input:   `"13.12.2018"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got growatt.Date

			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForcedTime_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  growatt.ForcedTime
	}{
		{
			name:  "unpadded time",
			input: `"3:0"`,
			want:  growatt.ForcedTimeOf(3, 0),
		},
		{
			name:  "padded time",
			input: `"23:59"`,
			want:  growatt.ForcedTimeOf(23, 59),
		},
		{
			name:  "json null",
			input: `null`,
		},
		{
			name:  "empty string",
			input: `""`,
		},
		{
			name:  "garbage decodes to absent",
			input: `"not a time"`,
		},
		{
			name:  "out of range decodes to absent",
			input: `"25:00"`,
		},
		{
			name:  "numeric value decodes to absent",
			input: `0`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got growatt.ForcedTime

			err := json.Unmarshal([]byte(tt.input), &got)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeTypes_RoundTrip(t *testing.T) {
	t.Parallel()

	// Every decoded shape re-encodes in the canonical wire layout; absent
	// values re-encode as null.
	assert.Equal(t, `"2018-12-13 02:45:00"`, roundTripJSON[growatt.Timestamp](t, `1544669100000`))
	assert.Equal(t, `"2019-03-09 09:55:55"`, roundTripJSON[growatt.Timestamp](t, `"2019-03-09 09:55:55.0"`))
	assert.Equal(t, `"2018-12-13 10:45:00"`, roundTripJSON[growatt.Timestamp](t, `{"year":118,"month":11,"date":13,"hours":10,"minutes":45,"seconds":0}`))
	assert.Equal(t, `null`, roundTripJSON[growatt.Timestamp](t, `""`))
	assert.Equal(t, `"2018-12-13"`, roundTripJSON[growatt.Date](t, `"2018-12-13"`))
	assert.Equal(t, `"2018-12-01"`, roundTripJSON[growatt.Date](t, `"2018-12"`))
	assert.Equal(t, `null`, roundTripJSON[growatt.Date](t, `null`))
	assert.Equal(t, `"3:0"`, roundTripJSON[growatt.ForcedTime](t, `"3:0"`))
	assert.Equal(t, `null`, roundTripJSON[growatt.ForcedTime](t, `"25:00"`))
}

func TestForcedTime_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "03:05", growatt.ForcedTimeOf(3, 5).String())
	assert.Equal(t, "", growatt.ForcedTime{}.String())
}
