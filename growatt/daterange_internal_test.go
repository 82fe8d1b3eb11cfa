package growatt

import (
	"testing"
	"time"

	"github.com/michalkurzeja/go-clock"
	"github.com/stretchr/testify/assert"
)

func TestResolveDateRange(t *testing.T) { //nolint:paralleltest
	today := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	clock.Mock(today)
	t.Cleanup(func() {
		clock.Restore()
	})

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantStart time.Time
		wantEnd   time.Time
		wantErr   error
	}{
		{
			name:      "both zero default to today",
			wantStart: today,
			wantEnd:   today,
		},
		{
			name:      "missing start copies end",
			end:       time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "missing end copies start",
			start:     time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "six day span passes",
			start:     time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2024, time.June, 7, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.June, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "seven day span is rejected",
			start:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			end:     time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC),
			wantErr: ErrDateRangeTooWide,
		},
	}

	for _, tt := range tests { //nolint:paralleltest
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := resolveDateRange(tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestResolveDate(t *testing.T) { //nolint:paralleltest
	today := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	clock.Mock(today)
	t.Cleanup(func() {
		clock.Restore()
	})

	assert.Equal(t, today, resolveDate(time.Time{}))

	explicit := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, explicit, resolveDate(explicit))
}

func TestResolveSerial(t *testing.T) {
	t.Parallel()

	sn, err := resolveSerial("SN1", "DEFAULT")
	assert.NoError(t, err)
	assert.Equal(t, "SN1", sn)

	sn, err = resolveSerial("", "DEFAULT")
	assert.NoError(t, err)
	assert.Equal(t, "DEFAULT", sn)

	_, err = resolveSerial("", "")
	assert.ErrorIs(t, err, ErrNoDeviceSerial)
}

func TestResolveSerials(t *testing.T) {
	t.Parallel()

	sns, err := resolveSerials([]string{"SN1", "SN2"}, "DEFAULT")
	assert.NoError(t, err)
	assert.Equal(t, []string{"SN1", "SN2"}, sns)

	sns, err = resolveSerials(nil, "DEFAULT")
	assert.NoError(t, err)
	assert.Equal(t, []string{"DEFAULT"}, sns)

	_, err = resolveSerials(nil, "")
	assert.ErrorIs(t, err, ErrNoDeviceSerial)
}
