package growatt_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpv/growatt-go/growatt"
)

func TestPlantService_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodGet,
		requestPath:   "/v1/plant/list",
		requestQuery:  "page=2&perpage=20&search_keyword=home&search_type=name",
		responseCode:  http.StatusOK,
		responseBody: `{
			"data": {
				"count": 1,
				"plants": [
					{
						"plant_id": 1234,
						"name": "home roof",
						"city": "Oslo",
						"country": "Norway",
						"create_date": "2018-12-13",
						"current_power": 1.2,
						"peak_power": 5.5,
						"status": 1,
						"total_energy": "1024.5",
						"user_id": 42
					}
				]
			},
			"error_code": 0,
			"error_msg": null
		}`,
	}))

	got, err := c.Plant.List(growatt.PlantListOptions{
		Page:          2,
		Limit:         20,
		SearchType:    "name",
		SearchKeyword: "home",
	})

	require.NoError(t, err)
	require.NoError(t, got.Err())
	require.NotNil(t, got.Data)
	require.Len(t, got.Data.Plants, 1)

	plant := got.Data.Plants[0]
	assert.Equal(t, growatt.IntOf(1234), plant.PlantID)
	assert.Equal(t, growatt.StringOf("home roof"), plant.Name)
	assert.Equal(t, growatt.DateOf(time.Date(2018, time.December, 13, 0, 0, 0, 0, time.UTC)), plant.CreateDate)
	assert.Equal(t, growatt.FloatOf(1024.5), plant.TotalEnergy)
}

func TestPlantService_Power(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodGet,
		requestPath:   "/v1/plant/power",
		requestQuery:  "date=2018-12-13&plant_id=1234",
		responseCode:  http.StatusOK,
		responseBody: `{
			"data": {
				"count": 2,
				"powers": [
					{"time": "2018-12-13 10:45", "power": 1520.5},
					{"time": "2018-12-13 10:50", "power": null}
				]
			},
			"error_code": 0,
			"error_msg": null
		}`,
	}))

	got, err := c.Plant.Power(1234, time.Date(2018, time.December, 13, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotNil(t, got.Data)
	require.Len(t, got.Data.Powers, 2)

	assert.Equal(t, growatt.TimestampOf(time.Date(2018, time.December, 13, 10, 45, 0, 0, time.UTC)), got.Data.Powers[0].Time)
	assert.Equal(t, growatt.FloatOf(1520.5), got.Data.Powers[0].Power)
	assert.False(t, got.Data.Powers[1].Power.Valid)
}

func TestPlantService_EnergyHistory_RangeValidation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t))

	tests := []struct {
		name string
		opts growatt.PlantEnergyHistoryOptions
	}{
		{
			name: "day unit spanning more than a week",
			opts: growatt.PlantEnergyHistoryOptions{
				Start: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "month unit spanning more than a year",
			opts: growatt.PlantEnergyHistoryOptions{
				Unit:  growatt.TimeUnitMonth,
				Start: time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "year unit spanning more than twenty years",
			opts: growatt.PlantEnergyHistoryOptions{
				Unit:  growatt.TimeUnitYear,
				Start: time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := c.Plant.EnergyHistory(1234, tt.opts)
			assert.ErrorIs(t, err, growatt.ErrDateRangeTooWide)
		})
	}
}

func TestPlantService_EnergyHistory(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodGet,
		requestPath:   "/v1/plant/energy",
		requestQuery:  "end_date=2018-12-31&plant_id=1234&start_date=2018-01-01&time_unit=month",
		responseCode:  http.StatusOK,
		responseBody: `{
			"data": {
				"count": 2,
				"time_unit": "month",
				"energys": [
					{"date": "2018-01", "energy": 410.2},
					{"date": "2018-02", "energy": 515.8}
				]
			},
			"error_code": 0,
			"error_msg": null
		}`,
	}))

	got, err := c.Plant.EnergyHistory(1234, growatt.PlantEnergyHistoryOptions{
		Unit:  growatt.TimeUnitMonth,
		Start: time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2018, time.December, 31, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.NotNil(t, got.Data)
	assert.Equal(t, growatt.TimeUnitMonth, got.Data.TimeUnit)
	require.Len(t, got.Data.Energys, 2)
	assert.Equal(t, growatt.DateOf(time.Date(2018, time.February, 1, 0, 0, 0, 0, time.UTC)), got.Data.Energys[1].Date)
}

func TestPlantService_ByDevice(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodPost,
		requestPath:   "/v1/plant/sn_plant",
		requestForm:   map[string][]string{"device_sn": {"SN1"}},
		responseCode:  http.StatusOK,
		responseBody: `{
			"data": {
				"plant": {"plant_id": 1234, "name": "home roof"}
			},
			"error_code": 0,
			"error_msg": null
		}`,
	}))

	got, err := c.Plant.ByDevice("SN1")

	require.NoError(t, err)
	require.NotNil(t, got.Data)
	assert.Equal(t, growatt.IntOf(1234), got.Data.Plant.PlantID)
}
