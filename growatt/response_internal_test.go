package growatt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseMeta_Err(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ResponseMeta{}.Err())
	assert.NoError(t, ResponseMeta{ErrorCode: IntOf(0)}.Err())

	err := ResponseMeta{ErrorCode: IntOf(10011), ErrorMsg: StringOf("error_permission_denied")}.Err()
	require.Error(t, err)

	apiErr := APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int64(10011), apiErr.Code)
	assert.Contains(t, apiErr.Error(), "no privilege access")
}

func TestV4ResponseMeta_Err(t *testing.T) {
	t.Parallel()

	assert.NoError(t, V4ResponseMeta{ErrorCode: IntOf(0)}.Err())

	err := V4ResponseMeta{ErrorCode: IntOf(100002), ErrorMsg: StringOf("device serial number error")}.Err()
	require.Error(t, err)

	apiErr := APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int64(100002), apiErr.Code)
	assert.Contains(t, apiErr.Error(), "device serial number error")
}

func TestReshapeBatch(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"data": {
			"SN1": {
				"dataloggerSn": "DL1",
				"SN1": {"soc": 55.5}
			},
			"SN2": {
				"dataloggerSn": "DL2",
				"SN2": null
			}
		},
		"tlxs": ["SN1", "SN2", "SN3"],
		"error_code": 0,
		"error_msg": null
	}`)

	type record struct {
		Soc Float `json:"soc"`
	}

	records, err := reshapeBatch[record](body, "tlxs")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "SN1", records[0].DeviceSN)
	assert.Equal(t, StringOf("DL1"), records[0].DataloggerSN)
	require.NotNil(t, records[0].Data)
	assert.Equal(t, FloatOf(55.5), records[0].Data.Soc)

	// Null payloads and serials missing from the data map yield empty records.
	assert.Equal(t, "SN2", records[1].DeviceSN)
	assert.Equal(t, StringOf("DL2"), records[1].DataloggerSN)
	assert.Nil(t, records[1].Data)

	assert.Equal(t, "SN3", records[2].DeviceSN)
	assert.Nil(t, records[2].Data)
}

func TestReshapeBatch_InvalidBody(t *testing.T) {
	t.Parallel()

	type record struct{}

	_, err := reshapeBatch[record]([]byte(`not json`), "tlxs")
	assert.Error(t, err)

	_, err = reshapeBatch[record]([]byte(`{"data":{},"tlxs":"not-a-list"}`), "tlxs")
	assert.Error(t, err)
}
