package growatt

const (
	envSensorMetricsURI = "device/env/env_last_data"
	envSensorHistoryURI = "device/env/env_data"
)

// EnvSensorService reads the environmental sensors attached to a datalogger
// bus. Sensors are addressed by datalogger serial plus bus address; the
// addresses come from the datalogger service's ListEnvSensors.
type EnvSensorService struct {
	session *Session
}

// Metrics returns the latest measurements of one sensor.
func (s *EnvSensorService) Metrics(dataloggerSN string, address int) (*EnvSensorMetrics, error) {
	query := newParams().
		set("datalog_sn", dataloggerSN).
		setInt("address", address)

	body, err := s.session.get(envSensorMetricsURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[EnvSensorMetrics](body)
}

// MetricsHistory returns measurements for a date range of at most a week.
func (s *EnvSensorService) MetricsHistory(dataloggerSN string, address int, opts HistoryOptions) (*EnvSensorMetricsHistory, error) {
	start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	query := newParams().
		set("datalog_sn", dataloggerSN).
		setInt("address", address).
		setDate("start_date", start).
		setDate("end_date", end).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.get(envSensorHistoryURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[EnvSensorMetricsHistory](body)
}

// EnvSensorMetricsData is one measurement set of an environmental sensor.
type EnvSensorMetricsData struct {
	Address                  Int       `json:"addr"`
	AirPressure              Float     `json:"airPressure"`
	AlarmCode                String    `json:"alarmCode"`
	Calendar                 Timestamp `json:"calendar"`
	CommStatus               Int       `json:"commStatus"`
	DailyAvgSoilLvlPct       Float     `json:"dailyAvgSoilLvlPct"`
	DataloggerSN             String    `json:"dataLogSn"`
	DeviceStatus             Int       `json:"deviceStatus"`
	Efficiency               Float     `json:"efficiency"`
	EnvHumidity              Float     `json:"envHumidity"`
	EnvTemp                  Float     `json:"envTemp"`
	EtodayRadiation          Float     `json:"etodayRadiation"`
	EtotalRadiation          Float     `json:"etotalRadiation"`
	GasConcentration         Float     `json:"gasConcentration"`
	InternalPressure         Float     `json:"internalPressure"`
	InternalRelativeHumidity Float     `json:"internalRelativeHumidity"`
	InternalTempC            Float     `json:"internalTempC"`
	InternalTempF            Float     `json:"internalTempF"`
	LastFourMeasurementsAvg  Float     `json:"lastFourMeasurementsAvg"`
	PanelTemp                Float     `json:"panelTemp"`
	Radiant                  Float     `json:"radiant"`
	RainfallIntensity        Float     `json:"rainfallIntensity"`
	RunStatus                Int       `json:"runStatus"`
	SensorSignalGen          Float     `json:"sensorSingnalGen"`
	SnowDepth                Float     `json:"snowDepth"`
	TimeText                 Timestamp `json:"timeText"`
	TotalRainfall            Float     `json:"totalRainfall"`
	WindAngle                Float     `json:"windAngle"`
	WindSpeed                Float     `json:"windSpeed"`
}

// EnvSensorMetrics is the response of the latest-measurement call.
type EnvSensorMetrics struct {
	ResponseMeta
	Data         *EnvSensorMetricsData `json:"data"`
	DataloggerSN String                `json:"datalogger_sn"`
}

// EnvSensorMetricsHistoryData pages through historical measurements.
type EnvSensorMetricsHistoryData struct {
	Count        Int                    `json:"count"`
	DataloggerSN String                 `json:"datalogger_sn"`
	EnvData      []EnvSensorMetricsData `json:"env_data"`
}

// EnvSensorMetricsHistory is the response of the historical measurement call.
type EnvSensorMetricsHistory struct {
	ResponseMeta
	Data *EnvSensorMetricsHistoryData `json:"data"`
}
