package growatt_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpv/growatt-go/growatt"
)

func TestMinService_Settings(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodGet,
		requestPath:   "/v1/device/tlx/tlx_set_info",
		requestQuery:  "device_sn=SN1",
		responseCode:  http.StatusOK,
		responseBody: `{
			"data": {
				"onOff": "1",
				"disChargePowerCommand": "80.0",
				"chargeStopSoc": 95,
				"forcedStopSwitch1": 1,
				"forcedTimeStart1": "3:0",
				"forcedTimeStop1": "6:30",
				"serialNum": "SN1"
			},
			"datalogger_sn": "DL1",
			"device_sn": "SN1",
			"error_code": 0,
			"error_msg": null
		}`,
	}))

	got, err := c.Min.Settings("SN1")

	require.NoError(t, err)
	require.NoError(t, got.Err())
	require.NotNil(t, got.Data)

	assert.Equal(t, growatt.BoolOf(true), got.Data.OnOff)
	assert.Equal(t, growatt.FloatOf(80), got.Data.DischargePowerCommand)
	assert.Equal(t, growatt.FloatOf(95), got.Data.ChargeStopSOC)
	assert.Equal(t, growatt.ForcedTimeOf(3, 0), got.Data.ForcedTimeStart1)
	assert.Equal(t, growatt.ForcedTimeOf(6, 30), got.Data.ForcedTimeStop1)
	assert.Equal(t, growatt.StringOf("DL1"), got.DataloggerSN)
}

func TestMinService_SettingRead(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v1/readMinParam",
		requestForm: map[string][]string{
			"device_sn": {"SN1"},
			"paramId":   {"backflow_setting"},
			"startAddr": {"0"},
			"endAddr":   {"0"},
		},
		responseCode: http.StatusOK,
		responseBody: `{"data": "1", "error_code": 0, "error_msg": null}`,
	}))

	got, err := c.Min.SettingRead("SN1", growatt.SettingReadOptions{ParameterID: "backflow_setting"})

	require.NoError(t, err)
	assert.Equal(t, growatt.StringOf("1"), got.Data)
}

func TestMinService_SettingRead_BadOptions(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t))

	_, err := c.Min.SettingRead("SN1", growatt.SettingReadOptions{})
	assert.Error(t, err)

	start := 10
	_, err = c.Min.SettingRead("SN1", growatt.SettingReadOptions{ParameterID: "backflow_setting", StartAddress: &start})
	assert.Error(t, err)
}

func TestMinService_SettingWrite(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v1/tlxSet",
		requestForm: map[string][]string{
			"tlx_sn": {"SN1"},
			"type":   {"backflow_setting"},
			"param1": {"1"}, "param2": {"50"}, "param3": {""}, "param4": {""},
			"param5": {""}, "param6": {""}, "param7": {""}, "param8": {""},
			"param9": {""}, "param10": {""}, "param11": {""}, "param12": {""},
			"param13": {""}, "param14": {""}, "param15": {""}, "param16": {""},
			"param17": {""}, "param18": {""}, "param19": {""},
		},
		responseCode: http.StatusOK,
		responseBody: `{"data": "", "error_code": 0, "error_msg": null}`,
	}))

	got, err := c.Min.SettingWrite("SN1", "backflow_setting", "1", "50")

	require.NoError(t, err)
	assert.NoError(t, got.Err())
}

func TestMinService_SettingWrite_Validation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t))

	_, err := c.Min.SettingWrite("SN1", "backflow_setting")
	assert.Error(t, err)

	_, err = c.Min.SettingWrite("SN1", "set_any_reg", "1000")
	assert.Error(t, err)
}

func TestMinService_EnergyMultiple(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v1/device/tlx/tlxs_data",
		requestForm: map[string][]string{
			"tlxs":    {"SN1,SN2"},
			"pageNum": {"1"},
		},
		responseCode: http.StatusOK,
		responseBody: `{
			"data": {
				"SN1": {
					"dataloggerSn": "DL1",
					"SN1": {"pac": 1520.5, "eacToday": 4.2}
				},
				"SN2": {
					"dataloggerSn": "DL2",
					"SN2": null
				}
			},
			"tlxs": ["SN1", "SN2"],
			"error_code": 0,
			"error_msg": null
		}`,
	}))

	records, err := c.Min.EnergyMultiple([]string{"SN1", "SN2"}, 0)

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "SN1", records[0].DeviceSN)
	require.NotNil(t, records[0].Data)
	assert.Equal(t, growatt.FloatOf(1520.5), records[0].Data.Pac)

	assert.Equal(t, "SN2", records[1].DeviceSN)
	assert.Nil(t, records[1].Data)
}

func TestMinService_EnergyMultiple_TooManyDevices(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t))

	serials := make([]string, 101)
	for i := range serials {
		serials[i] = "SN"
	}

	_, err := c.Min.EnergyMultiple(serials, 1)
	assert.ErrorIs(t, err, growatt.ErrTooManySerials)
}
