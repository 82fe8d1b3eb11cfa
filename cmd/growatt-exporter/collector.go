package main

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/smartpv/growatt-go/growatt"
)

var plantLabels = []string{"plant_id", "plant_name"}

// collector exposes plant-level production figures as Prometheus metrics. Each
// scrape lists the plants visible to the token and fetches their production
// summary; mind the vendor rate limit of one identical request per 5 minutes
// when choosing a scrape interval.
type collector struct {
	client   *growatt.Client
	plantIDs map[int64]struct{}

	up            *prometheus.Desc
	scrapeSuccess *prometheus.Desc
	currentPower  *prometheus.Desc
	peakPower     *prometheus.Desc
	todayEnergy   *prometheus.Desc
	monthEnergy   *prometheus.Desc
	yearEnergy    *prometheus.Desc
	totalEnergy   *prometheus.Desc
}

func newCollector(client *growatt.Client, plantIDs []int64) *collector {
	filter := make(map[int64]struct{}, len(plantIDs))
	for _, id := range plantIDs {
		filter[id] = struct{}{}
	}

	return &collector{
		client:   client,
		plantIDs: filter,
		up: prometheus.NewDesc(
			"growatt_up",
			"Whether the last plant list request against the Growatt API succeeded",
			nil,
			nil,
		),
		scrapeSuccess: prometheus.NewDesc(
			"growatt_plant_scrape_success",
			"Whether scraping the plant production summary succeeded",
			plantLabels,
			nil,
		),
		currentPower: prometheus.NewDesc(
			"growatt_plant_current_power_watts",
			"Current output power of the plant as reported by the API",
			plantLabels,
			nil,
		),
		peakPower: prometheus.NewDesc(
			"growatt_plant_peak_power_watts",
			"Peak output power observed by the API",
			plantLabels,
			nil,
		),
		todayEnergy: prometheus.NewDesc(
			"growatt_plant_energy_today_kwh",
			"Energy produced today in kilowatt-hours",
			plantLabels,
			nil,
		),
		monthEnergy: prometheus.NewDesc(
			"growatt_plant_energy_month_kwh",
			"Energy produced this month in kilowatt-hours",
			plantLabels,
			nil,
		),
		yearEnergy: prometheus.NewDesc(
			"growatt_plant_energy_year_kwh",
			"Energy produced this year in kilowatt-hours",
			plantLabels,
			nil,
		),
		totalEnergy: prometheus.NewDesc(
			"growatt_plant_energy_total_kwh",
			"Lifetime energy production in kilowatt-hours",
			plantLabels,
			nil,
		),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.up
	ch <- c.scrapeSuccess
	ch <- c.currentPower
	ch <- c.peakPower
	ch <- c.todayEnergy
	ch <- c.monthEnergy
	ch <- c.yearEnergy
	ch <- c.totalEnergy
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	list, err := c.client.Plant.List(growatt.PlantListOptions{})
	if err == nil {
		err = list.Err()
	}

	if err != nil {
		log.WithError(err).Error("failed to list plants")
		ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 0)

		return
	}

	ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 1)

	if list.Data == nil {
		return
	}

	var wg sync.WaitGroup

	for _, plant := range list.Data.Plants {
		if !plant.PlantID.Valid {
			continue
		}

		if _, ok := c.plantIDs[plant.PlantID.Int64]; len(c.plantIDs) > 0 && !ok {
			continue
		}

		wg.Add(1)

		go func(plant growatt.PlantData) {
			defer wg.Done()

			c.collectPlant(plant, ch)
		}(plant)
	}

	wg.Wait()
}

func (c *collector) collectPlant(plant growatt.PlantData, ch chan<- prometheus.Metric) {
	labels := []string{strconv.FormatInt(plant.PlantID.Int64, 10), plant.Name.String}

	overview, err := c.client.Plant.EnergyOverview(int(plant.PlantID.Int64))
	if err == nil {
		err = overview.Err()
	}

	if err != nil || overview.Data == nil {
		log.WithError(err).WithField("plant_id", plant.PlantID.Int64).Error("failed to fetch plant production summary")
		ch <- prometheus.MustNewConstMetric(c.scrapeSuccess, prometheus.GaugeValue, 0, labels...)

		return
	}

	ch <- prometheus.MustNewConstMetric(c.scrapeSuccess, prometheus.GaugeValue, 1, labels...)

	c.gauge(ch, c.currentPower, overview.Data.CurrentPower, labels)
	c.gauge(ch, c.peakPower, overview.Data.PeakPowerActual, labels)
	c.gauge(ch, c.todayEnergy, overview.Data.TodayEnergy, labels)
	c.gauge(ch, c.monthEnergy, overview.Data.MonthlyEnergy, labels)
	c.gauge(ch, c.yearEnergy, overview.Data.YearlyEnergy, labels)
	c.gauge(ch, c.totalEnergy, overview.Data.TotalEnergy, labels)
}

// gauge emits a single metric, skipping values the API reported as absent.
func (c *collector) gauge(ch chan<- prometheus.Metric, desc *prometheus.Desc, value growatt.Float, labels []string) {
	if !value.Valid {
		return
	}

	ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, value.Float64, labels...)
}
