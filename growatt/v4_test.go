package growatt_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpv/growatt-go/growatt"
)

func TestV4Service_DeviceList(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v4/new-api/queryDeviceList",
		requestForm:   map[string][]string{"page": {"1"}},
		responseCode:  http.StatusOK,
		responseBody: `{
			"code": 0,
			"message": "SUCCESSFUL_OPERATION",
			"data": {
				"count": 2,
				"data": [
					{"create_date": "2024-01-15 10:00:00", "datalogger_sn": "DL1", "device_sn": "SN1", "device_type": "wit"},
					{"create_date": "2024-02-20 09:30:00", "datalogger_sn": "DL2", "device_sn": "SN2", "device_type": "noah"}
				],
				"last_pager": true,
				"not_pager": false,
				"page_size": 100,
				"pages": 1,
				"start_count": 0
			}
		}`,
	}))

	got, err := c.V4.DeviceList(0)

	require.NoError(t, err)
	require.NoError(t, got.Err())
	require.NotNil(t, got.Data)
	require.Len(t, got.Data.Data, 2)

	assert.Equal(t, growatt.StringOf("SN1"), got.Data.Data[0].DeviceSN)
	assert.Equal(t, growatt.StringOf("wit"), got.Data.Data[0].DeviceType)
	assert.Equal(t, growatt.TimestampOf(time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)), got.Data.Data[0].CreateDate)
}

func TestV4Service_Envelope(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v4/new-api/queryDeviceList",
		requestForm:   map[string][]string{"page": {"1"}},
		responseCode:  http.StatusOK,
		responseBody:  `{"code": 100005, "message": "TOKEN_INVALID_ERROR", "data": null}`,
	}))

	got, err := c.V4.DeviceList(1)

	require.NoError(t, err)
	require.Error(t, got.Err())

	apiErr := growatt.APIError{}
	require.ErrorAs(t, got.Err(), &apiErr)
	assert.Equal(t, int64(100005), apiErr.Code)
}

func TestV4Service_SettingReadVppParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		parameterID string
		data        string
		wantValue   *growatt.Float
		wantPeriods []growatt.V4VppTimePeriod
	}{
		{
			name:        "scalar parameter",
			parameterID: "set_param_2",
			data:        `"100"`,
			wantValue:   floatPtr(growatt.FloatOf(100)),
		},
		{
			name:        "period schedule parameter",
			parameterID: "set_param_1",
			data:        `[{"percentage": 95, "startTime": 0, "endTime": 1440}]`,
			wantPeriods: []growatt.V4VppTimePeriod{
				{Percentage: growatt.IntOf(95), StartTime: growatt.IntOf(0), EndTime: growatt.IntOf(1440)},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, newTestHandler(t, call{
				requestMethod: http.MethodPost,
				requestPath:   "/v4/new-api/readVppParam",
				requestForm: map[string][]string{
					"deviceSn":    {"WIT001"},
					"deviceType":  {"wit"},
					"parameterId": {tt.parameterID},
				},
				responseCode: http.StatusOK,
				responseBody: `{"code": 0, "message": "SUCCESSFUL_OPERATION", "data": ` + tt.data + `}`,
			}))

			got, err := c.V4.SettingReadVppParam("WIT001", growatt.V4DeviceTypeWit, tt.parameterID)
			require.NoError(t, err)

			if tt.wantValue != nil {
				value, err := got.Value()
				require.NoError(t, err)
				assert.Equal(t, *tt.wantValue, value)
			}

			if tt.wantPeriods != nil {
				periods, err := got.TimePeriods()
				require.NoError(t, err)
				assert.Equal(t, tt.wantPeriods, periods)
			}
		})
	}
}

func TestV4Service_SettingReadVppParam_NoParameterID(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t))

	_, err := c.V4.SettingReadVppParam("WIT001", growatt.V4DeviceTypeWit, "")
	assert.ErrorIs(t, err, growatt.ErrNoParameterID)

	_, err = c.V4.SettingWriteVppParam("WIT001", growatt.V4DeviceTypeWit, "", "1")
	assert.ErrorIs(t, err, growatt.ErrNoParameterID)
}

func TestV4Service_SettingWriteOnOff(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v4/new-api/setOnOrOff",
		requestForm: map[string][]string{
			"deviceSn":   {"SPH001"},
			"deviceType": {"sph-s"},
			"onOff":      {"0"},
		},
		responseCode: http.StatusOK,
		responseBody: `{"code": 0, "message": "SUCCESSFUL_OPERATION", "data": null}`,
	}))

	got, err := c.V4.SettingWriteOnOff("SPH001", growatt.V4DeviceTypeSphs, false)

	require.NoError(t, err)
	assert.NoError(t, got.Err())
}

func TestV4Service_SettingWriteSocLimits_Validation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t))

	_, err := c.V4.SettingWriteSocUpperLimit("SN1", growatt.V4DeviceTypeNoah, 101)
	assert.Error(t, err)

	_, err = c.V4.SettingWriteSocLowerLimit("SN1", growatt.V4DeviceTypeNoah, -1)
	assert.Error(t, err)
}

func TestWitService_Energy_DefaultSerial(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v4/new-api/queryLastData",
		requestForm: map[string][]string{
			"deviceSn":   {"WIT001"},
			"deviceType": {"wit"},
		},
		responseCode: http.StatusOK,
		responseBody: `{
			"code": 0,
			"message": "SUCCESSFUL_OPERATION",
			"data": {
				"wit": [
					{"serialNum": "WIT001", "dataLogSn": "DL1", "soc": 72.5, "etoGridToday": 3.4}
				]
			}
		}`,
	}), growatt.WithDefaultSerial("WIT001"))

	got, err := c.Wit.Energy()

	require.NoError(t, err)
	require.NoError(t, got.Err())

	devices := got.Data.Devices()
	require.Len(t, devices, 1)
	assert.Equal(t, growatt.StringOf("WIT001"), devices[0].DeviceSN)
	assert.Equal(t, growatt.FloatOf(72.5), devices[0].Soc)
}

func TestWitService_NoSerial(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t))

	_, err := c.Wit.Energy()
	assert.ErrorIs(t, err, growatt.ErrNoDeviceSerial)
}

func TestWitService_EnergyHistory(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v4/new-api/queryHistoricalData",
		requestForm: map[string][]string{
			"deviceSn":   {"WIT001"},
			"deviceType": {"wit"},
			"date":       {"2024-06-15"},
		},
		responseCode: http.StatusOK,
		responseBody: `{
			"code": 0,
			"message": "SUCCESSFUL_OPERATION",
			"data": {
				"datas": [
					{"serialNum": "WIT001", "soc": 70},
					{"serialNum": "WIT001", "soc": 71.5}
				],
				"have_next": false,
				"start": 0
			}
		}`,
	}))

	got, err := c.Wit.EnergyHistory("WIT001", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotNil(t, got.Data)
	require.Len(t, got.Data.Datas, 2)
	assert.Equal(t, growatt.FloatOf(71.5), got.Data.Datas[1].Soc)
	assert.Equal(t, growatt.BoolOf(false), got.Data.HaveNext)
}

func TestWitService_SettingWriteActivePower_Validation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t))

	_, err := c.Wit.SettingWriteActivePower("WIT001", 101)
	assert.Error(t, err)

	_, err = c.Wit.SettingWriteActivePower("WIT001", -1)
	assert.Error(t, err)
}

func floatPtr(v growatt.Float) *growatt.Float {
	return &v
}
