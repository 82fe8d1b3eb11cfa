package growatt

const (
	smartMeterEnergyURI  = "device/ammeter/meter_last_data"
	smartMeterHistoryURI = "device/ammeter/meter_data"
)

// SmartMeterService reads the meters attached to a datalogger bus. Meters are
// addressed by datalogger serial plus bus address; the addresses come from the
// datalogger service's ListSmartMeters.
type SmartMeterService struct {
	session *Session
}

// Energy returns the latest reading of one meter.
func (s *SmartMeterService) Energy(dataloggerSN string, address int) (*SmartMeterEnergy, error) {
	query := newParams().
		set("datalog_sn", dataloggerSN).
		setInt("address", address)

	body, err := s.session.get(smartMeterEnergyURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[SmartMeterEnergy](body)
}

// EnergyHistory returns meter readings for a date range of at most a week.
func (s *SmartMeterService) EnergyHistory(dataloggerSN string, address int, opts HistoryOptions) (*SmartMeterEnergyHistory, error) {
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

	body, err := s.session.get(smartMeterHistoryURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[SmartMeterEnergyHistory](body)
}

// SmartMeterEnergyData is one reading of a smart meter.
type SmartMeterEnergyData struct {
	AActivePower                   Float     `json:"aActivePower"`
	ACurrent                       Float     `json:"aCurrent"`
	APowerFactor                   Float     `json:"aPowerFactor"`
	AReactivePower                 Float     `json:"aReactivePower"`
	AVoltage                       Float     `json:"aVoltage"`
	ActiveEnergy                   Float     `json:"activeEnergy"`
	ActiveNetTotalEnergy           Float     `json:"activeNetTotalEnergy"`
	ActivePower                    Float     `json:"activePower"`
	ActivePowerL1                  Float     `json:"activePowerL1"`
	ActivePowerL2                  Float     `json:"activePowerL2"`
	ActivePowerL3                  Float     `json:"activePowerL3"`
	ActivePowerMaxNeed             Float     `json:"activePowerMaxNeed"`
	ActivePowerNeed                Float     `json:"activePowerNeed"`
	Address                        Int       `json:"address"`
	Again                          Bool      `json:"again"`
	AlarmCode                      Int       `json:"alarmCode"`
	Alias                          String    `json:"alias"`
	ApparentEnergy                 Float     `json:"apparentEnergy"`
	ApparentPower                  Float     `json:"apparentPower"`
	ApparentPowerL1                Float     `json:"apparentPowerL1"`
	ApparentPowerL2                Float     `json:"apparentPowerL2"`
	ApparentPowerL3                Float     `json:"apparentPowerL3"`
	BActivePower                   Float     `json:"bActivePower"`
	BPowerFactor                   Float     `json:"bPowerFactor"`
	BReactivePower                 Float     `json:"bReactivePower"`
	CActivePower                   Float     `json:"cActivePower"`
	CPowerFactor                   Float     `json:"cPowerFactor"`
	CReactivePower                 Float     `json:"cReactivePower"`
	Calendar                       Timestamp `json:"calendar"`
	ComAddress                     Int       `json:"comAddress"`
	CommStatus                     Int       `json:"commStatus"`
	Current                        Float     `json:"current"`
	CurrentHarmonicAvg             Float     `json:"currentHarmonicAvg"`
	CurrentIa                      Float     `json:"currentIa"`
	CurrentIb                      Float     `json:"currentIb"`
	CurrentIc                      Float     `json:"currentIc"`
	CurrentL1                      Float     `json:"currentL1"`
	CurrentL2                      Float     `json:"currentL2"`
	CurrentL3                      Float     `json:"currentL3"`
	CurrentMaxNeed                 Float     `json:"currentMaxNeed"`
	CurrentNeed                    Float     `json:"currentNeed"`
	DataloggerSN                   String    `json:"dataLogSn"`
	DeviceSN                       String    `json:"deviceSn"`
	FeiLvBoZEnergy                 Float     `json:"feiLvBoZEnergy"`
	FeiLvFengZEnergy               Float     `json:"feiLvFengZEnergy"`
	FeiLvGuZEnergy                 Float     `json:"feiLvGuZEnergy"`
	FeiLvPingZEnergy               Float     `json:"feiLvPingZEnergy"`
	ForwardActiveMaxNeed           Float     `json:"forwardActiveMaxNeed"`
	ForwardActiveNeed              Float     `json:"forwardActiveNeed"`
	Frequency                      Float     `json:"frequency"`
	GridEnergy                     Float     `json:"gridEnergy"`
	GridFrequency                  Float     `json:"gridFrequency"`
	InstantTotalActivePower        Float     `json:"instantlyTotalActivePower"`
	InstantTotalApparentPower      Float     `json:"instantaneousTotalApparentPower"`
	InstantTotalReactivePower      Float     `json:"instantlyTotalReactivePower"`
	Lost                           Bool      `json:"lost"`
	ModeStatus                     Int       `json:"modeStatus"`
	MonthEnergy                    Float     `json:"monthEnergy"`
	NetTotalEnergy                 Float     `json:"netTotalEnergy"`
	PosiActiveNetTotalEnergy       Float     `json:"posiActiveNetTotalEnergy"`
	PosiActivePower                Float     `json:"posiActivePower"`
	PosiReactiveNetTotalEnergy     Float     `json:"posiReactiveNetTotalEnergy"`
	PosiReactivePower              Float     `json:"posiReactivePower"`
	PositiveActiveTodayEnergy      Float     `json:"positiveActiveTodayEnergy"`
	PositiveActiveTotalEnergy      Float     `json:"positiveActiveTotalEnergy"`
	PowerFactor                    Float     `json:"powerFactor"`
	PowerFactorL1                  Float     `json:"powerFactorL1"`
	PowerFactorL2                  Float     `json:"powerFactorL2"`
	PowerFactorL3                  Float     `json:"powerFactorL3"`
	ReactiveEnergy                 Float     `json:"reactiveEnergy"`
	ReactiveNetTotalEnergy         Float     `json:"reactiveNetTotalEnergy"`
	ReactivePower                  Float     `json:"reactivePower"`
	ReactivePowerL1                Float     `json:"reactivePowerL1"`
	ReactivePowerL2                Float     `json:"reactivePowerL2"`
	ReactivePowerL3                Float     `json:"reactivePowerL3"`
	ReverseActiveEnergy            Float     `json:"reverseActiveEnergy"`
	ReverseActiveMaxNeed           Float     `json:"reverseActiveMaxNeed"`
	ReverseActiveNeed              Float     `json:"reverseActiveNeed"`
	ReverseActiveNetTotalEnergy    Float     `json:"reverActiveNetTotalEnergy"`
	ReverseActivePower             Float     `json:"reverActivePower"`
	ReverseActiveTodayEnergy       Float     `json:"reverseActiveTodayEnergy"`
	ReverseActiveTotalEnergy       Float     `json:"reverseActiveTotalEnergy"`
	ReverseApparentEnergy          Float     `json:"reverApparentEnergy"`
	ReverseInstantTotalActivePower Float     `json:"reverseInstantlyTotalActivePower"`
	ReverseReactiveNetTotalEnergy  Float     `json:"reverReactiveNetTotalEnergy"`
	ReverseReactivePower           Float     `json:"reverReactivePower"`
	RunStatus                      Int       `json:"runStatus"`
	SoftCode                       Int       `json:"softCode"`
	SoftVersion                    Int       `json:"softVersion"`
	Thdi1                          Float     `json:"thdi1"`
	Thdi2                          Float     `json:"thdi2"`
	Thdi3                          Float     `json:"thdi3"`
	Thdv1                          Float     `json:"thdv1"`
	Thdv2                          Float     `json:"thdv2"`
	Thdv3                          Float     `json:"thdv3"`
	TimeText                       Timestamp `json:"timeText"`
	TodayEnergy                    Float     `json:"todayEnergy"`
	TotalActiveEnergyL1            Float     `json:"totalActiveEnergyL1"`
	TotalActiveEnergyL2            Float     `json:"totalActiveEnergyL2"`
	TotalActiveEnergyL3            Float     `json:"totalActiveEnergyL3"`
	TotalEnergy                    Float     `json:"totalEnergy"`
	TotalReactiveEnergyL1          Float     `json:"totalReactiveEnergyL1"`
	TotalReactiveEnergyL2          Float     `json:"totalReactiveEnergyL2"`
	TotalReactiveEnergyL3          Float     `json:"totalReactiveEnergyL3"`
	UserEnergy                     Float     `json:"userEnergy"`
	Voltage                        Float     `json:"voltage"`
	VoltageHarmonicAvg             Float     `json:"voltageHarmonicAvg"`
	VoltageL1                      Float     `json:"voltageL1"`
	VoltageL2                      Float     `json:"voltageL2"`
	VoltageL3                      Float     `json:"voltageL3"`
	VoltageUa                      Float     `json:"voltageUa"`
	VoltageUab                     Float     `json:"voltageUab"`
	VoltageUb                      Float     `json:"voltageUb"`
	VoltageUbc                     Float     `json:"voltageUbc"`
	VoltageUc                      Float     `json:"voltageUc"`
	VoltageUca                     Float     `json:"voltageUca"`
	WithTime                       Bool      `json:"withTime"`
	ZeroLineMaxNeed                Float     `json:"zeroLineMaxNeed"`
	ZeroLineNeed                   Float     `json:"zeroLineNeed"`
}

// SmartMeterEnergy is the response of the latest-reading call.
type SmartMeterEnergy struct {
	ResponseMeta
	Data         *SmartMeterEnergyData `json:"data"`
	DataloggerSN String                `json:"datalogger_sn"`
}

// SmartMeterEnergyHistoryData pages through historical readings.
type SmartMeterEnergyHistoryData struct {
	Count        Int                    `json:"count"`
	DataloggerSN String                 `json:"datalogger_sn"`
	MeterData    []SmartMeterEnergyData `json:"meter_data"`
}

// SmartMeterEnergyHistory is the response of the historical reading call.
type SmartMeterEnergyHistory struct {
	ResponseMeta
	Data *SmartMeterEnergyHistoryData `json:"data"`
}
