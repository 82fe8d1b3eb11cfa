package growatt_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpv/growatt-go/growatt"
)

func TestVppService_Soc(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v1/device/vpp/getSocData",
		requestForm:   map[string][]string{"vppSn": {"VPP001"}},
		responseCode:  http.StatusOK,
		responseBody: `{
			"soc": 65.5,
			"datalogger_sn": "DL1",
			"device_sn": "VPP001",
			"error_code": 0,
			"error_msg": null
		}`,
	}))

	got, err := c.Vpp.Soc("VPP001")

	require.NoError(t, err)
	require.NoError(t, got.Err())
	assert.Equal(t, growatt.FloatOf(65.5), got.Soc)
	assert.Equal(t, growatt.StringOf("VPP001"), got.DeviceSN)
}

func TestVppService_Write(t *testing.T) {
	t.Parallel()

	// 08:10 goes on the wire as 8*24+10, matching the endpoint's odd
	// time-of-day encoding.
	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v1/vppRemoteSetNew",
		requestForm: map[string][]string{
			"vppSn":      {"VPP001"},
			"time":       {"202"},
			"percentage": {"-80"},
		},
		responseCode: http.StatusOK,
		responseBody: `{"data": 1, "error_code": 0, "error_msg": null}`,
	}))

	got, err := c.Vpp.Write("VPP001", 8, 10, -80)

	require.NoError(t, err)
	assert.Equal(t, growatt.IntOf(1), got.Data)
}

func TestVppService_Write_Validation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t))

	_, err := c.Vpp.Write("VPP001", 8, 10, 101)
	assert.Error(t, err)

	_, err = c.Vpp.Write("VPP001", 8, 10, -101)
	assert.Error(t, err)

	_, err = c.Vpp.Write("VPP001", 61, 0, 50)
	assert.Error(t, err)
}

func TestVppService_WriteMultiple(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v1/vppSetNew",
		requestForm: map[string][]string{
			"vppSn":       {"VPP001"},
			"timePeriods": {`[{"percentage":95,"startTime":60,"endTime":120},{"percentage":-60,"startTime":1080,"endTime":1170}]`},
		},
		responseCode: http.StatusOK,
		responseBody: `{"data": 1, "error_code": 0, "error_msg": null}`,
	}))

	got, err := c.Vpp.WriteMultiple("VPP001", []growatt.VppTimePeriod{
		{Percentage: 95, Start: growatt.ForcedTimeOf(1, 0), End: growatt.ForcedTimeOf(2, 0)},
		{Percentage: -60, Start: growatt.ForcedTimeOf(18, 0), End: growatt.ForcedTimeOf(19, 30)},
	})

	require.NoError(t, err)
	assert.NoError(t, got.Err())
}

func TestVppService_WriteMultiple_Validation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t))

	_, err := c.Vpp.WriteMultiple("VPP001", []growatt.VppTimePeriod{
		{Percentage: 101, Start: growatt.ForcedTimeOf(1, 0), End: growatt.ForcedTimeOf(2, 0)},
	})
	assert.Error(t, err)

	_, err = c.Vpp.WriteMultiple("VPP001", []growatt.VppTimePeriod{
		{Percentage: 50, Start: growatt.ForcedTimeOf(2, 0), End: growatt.ForcedTimeOf(1, 0)},
	})
	assert.Error(t, err)
}
