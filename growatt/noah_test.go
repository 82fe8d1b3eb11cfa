package growatt_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpv/growatt-go/growatt"
)

func TestNoahService_Details(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v4/new-api/queryDeviceInfo",
		requestForm: map[string][]string{
			"deviceSn":   {"NOAH001"},
			"deviceType": {"noah"},
		},
		responseCode: http.StatusOK,
		responseBody: `{
			"code": 0,
			"message": "SUCCESSFUL_OPERATION",
			"data": {
				"noah": [
					{
						"deviceSn": "NOAH001",
						"dataLogSn": "DL1",
						"alias": "balcony",
						"chargingSocHighLimit": 95,
						"chargingSocLowLimit": 10,
						"defaultPower": 200,
						"time1Enable": 1,
						"time1Start": "0:0",
						"time1End": "23:59",
						"time1Mode": 0,
						"time1Power": 200,
						"time2Enable": 0,
						"time2Start": "",
						"time2End": ""
					}
				]
			}
		}`,
	}))

	got, err := c.Noah.Details("NOAH001")

	require.NoError(t, err)
	require.NoError(t, got.Err())

	devices := got.Data.Devices()
	require.Len(t, devices, 1)

	device := devices[0]
	assert.Equal(t, growatt.StringOf("NOAH001"), device.DeviceSN)
	assert.Equal(t, growatt.FloatOf(95), device.ChargingSOCHighLimit)

	slots := device.TimeSlots()
	require.Len(t, slots, 9)

	assert.Equal(t, growatt.BoolOf(true), slots[0].Enabled)
	assert.Equal(t, growatt.ForcedTimeOf(0, 0), slots[0].Start)
	assert.Equal(t, growatt.ForcedTimeOf(23, 59), slots[0].End)
	assert.Equal(t, growatt.FloatOf(200), slots[0].Power)

	assert.Equal(t, growatt.BoolOf(false), slots[1].Enabled)
	assert.False(t, slots[1].Start.Valid)
}

func TestNoahService_SettingWriteActivePower(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v4/new-api/setActivePower",
		requestForm: map[string][]string{
			"deviceSn":    {"NOAH001"},
			"deviceType":  {"noah"},
			"activePower": {"400"},
		},
		responseCode: http.StatusOK,
		responseBody: `{"code": 0, "message": "SUCCESSFUL_OPERATION", "data": null}`,
	}))

	got, err := c.Noah.SettingWriteActivePower("NOAH001", 400)

	require.NoError(t, err)
	assert.NoError(t, got.Err())
}

func TestNoahService_SettingWriteActivePower_Validation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t))

	_, err := c.Noah.SettingWriteActivePower("NOAH001", 801)
	assert.Error(t, err)

	_, err = c.Noah.SettingWriteActivePower("NOAH001", -1)
	assert.Error(t, err)
}

func TestNoahService_SettingWriteTimeSegment(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v4/new-api/setTimeSegment",
		requestForm: map[string][]string{
			"deviceSn":      {"NOAH001"},
			"deviceType":    {"noah"},
			"timeSegmentId": {"2"},
			"startTime":     {"01:30"},
			"endTime":       {"05:00"},
			"mode":          {"1"},
			"power":         {"250"},
			"enable":        {"1"},
		},
		responseCode: http.StatusOK,
		responseBody: `{"code": 0, "message": "SUCCESSFUL_OPERATION", "data": null}`,
	}))

	got, err := c.Noah.SettingWriteTimeSegment("NOAH001", growatt.V4TimeSegment{
		Segment:      2,
		Start:        growatt.ForcedTimeOf(1, 30),
		End:          growatt.ForcedTimeOf(5, 0),
		LoadPriority: true,
		PowerWatt:    250,
		Enabled:      true,
	})

	require.NoError(t, err)
	assert.NoError(t, got.Err())
}

func TestNoahService_SettingWriteTimeSegment_Validation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t))

	for _, segment := range []int{0, 10} {
		_, err := c.Noah.SettingWriteTimeSegment("NOAH001", growatt.V4TimeSegment{Segment: segment})
		assert.Error(t, err)
	}
}
