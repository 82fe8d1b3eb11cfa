package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpv/growatt-go/growatt"
)

func newAPIStub(t *testing.T) *httptest.Server {
	t.Helper()

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/plant/list":
			_, err := w.Write([]byte(`{
				"data": {
					"count": 1,
					"plants": [{"plant_id": 1234, "name": "home roof", "current_power": 1520.5}]
				},
				"error_code": 0,
				"error_msg": null
			}`))
			assert.NoError(t, err)
		case "/v1/plant/data":
			_, err := w.Write([]byte(`{
				"data": {
					"current_power": 1520.5,
					"today_energy": 4.2,
					"monthly_energy": 120.7,
					"yearly_energy": 980.3,
					"total_energy": 5040.1,
					"peak_power_actual": 4820
				},
				"error_code": 0,
				"error_msg": null
			}`))
			assert.NoError(t, err)
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL)
		}
	}))

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestCollector_Collect(t *testing.T) {
	s := newAPIStub(t)

	client, err := growatt.NewClient("test-token", growatt.WithBaseURL(s.URL))
	require.NoError(t, err)

	c := newCollector(client, nil)

	expected := `
		# HELP growatt_up Whether the last plant list request against the Growatt API succeeded
		# TYPE growatt_up gauge
		growatt_up 1
		# HELP growatt_plant_scrape_success Whether scraping the plant production summary succeeded
		# TYPE growatt_plant_scrape_success gauge
		growatt_plant_scrape_success{plant_id="1234",plant_name="home roof"} 1
		# HELP growatt_plant_current_power_watts Current output power of the plant as reported by the API
		# TYPE growatt_plant_current_power_watts gauge
		growatt_plant_current_power_watts{plant_id="1234",plant_name="home roof"} 1520.5
		# HELP growatt_plant_energy_today_kwh Energy produced today in kilowatt-hours
		# TYPE growatt_plant_energy_today_kwh gauge
		growatt_plant_energy_today_kwh{plant_id="1234",plant_name="home roof"} 4.2
	`

	err = testutil.CollectAndCompare(c, strings.NewReader(expected),
		"growatt_up",
		"growatt_plant_scrape_success",
		"growatt_plant_current_power_watts",
		"growatt_plant_energy_today_kwh",
	)
	assert.NoError(t, err)
}

func TestCollector_Collect_PlantFilter(t *testing.T) {
	s := newAPIStub(t)

	client, err := growatt.NewClient("test-token", growatt.WithBaseURL(s.URL))
	require.NoError(t, err)

	c := newCollector(client, []int64{999})

	expected := `
		# HELP growatt_up Whether the last plant list request against the Growatt API succeeded
		# TYPE growatt_up gauge
		growatt_up 1
	`

	err = testutil.CollectAndCompare(c, strings.NewReader(expected),
		"growatt_up",
		"growatt_plant_scrape_success",
		"growatt_plant_current_power_watts",
	)
	assert.NoError(t, err)
}

func TestCollector_Collect_APIDown(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(func() {
		s.Close()
	})

	client, err := growatt.NewClient("test-token", growatt.WithBaseURL(s.URL))
	require.NoError(t, err)

	c := newCollector(client, nil)

	expected := `
		# HELP growatt_up Whether the last plant list request against the Growatt API succeeded
		# TYPE growatt_up gauge
		growatt_up 0
	`

	err = testutil.CollectAndCompare(c, strings.NewReader(expected), "growatt_up")
	assert.NoError(t, err)
}
