package growatt

const (
	hpsDetailsURI = "device/hps/hps_data_info"
	hpsEnergyURI  = "device/hps/hps_last_data"
	hpsHistoryURI = "device/hps/hps_data"
	hpsAlarmsURI  = "device/hps/alarm_data"
)

// HpsService covers HPS hybrid power stations (device type 9). An empty
// deviceSN falls back to the serial configured with WithDefaultSerial.
type HpsService struct {
	session *Session
}

// Details returns static device information.
func (s *HpsService) Details(deviceSN string) (*HpsDetails, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	body, err := s.session.get(hpsDetailsURI, newParams().set("device_sn", sn))
	if err != nil {
		return nil, err
	}

	return parseResponse[HpsDetails](body)
}

// Energy returns the latest telemetry snapshot.
func (s *HpsService) Energy(deviceSN string) (*HpsEnergy, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	body, err := s.session.post(hpsEnergyURI, newParams().set("hps_sn", sn))
	if err != nil {
		return nil, err
	}

	return parseResponse[HpsEnergy](body)
}

// EnergyHistory returns telemetry records for a date range of at most a week.
func (s *HpsService) EnergyHistory(deviceSN string, opts HistoryOptions) (*HpsEnergyHistory, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("hps_sn", sn).
		setDate("start_date", start).
		setDate("end_date", end).
		setOptString("timezone_id", opts.Timezone).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(hpsHistoryURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[HpsEnergyHistory](body)
}

// Alarms returns the alarms raised on one day.
func (s *HpsService) Alarms(deviceSN string, opts AlarmOptions) (*HpsAlarms, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("hps_sn", sn).
		setDate("date", resolveDate(opts.Date)).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(hpsAlarmsURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[HpsAlarms](body)
}

// HpsDetailData holds static device information of an HPS station.
type HpsDetailData struct {
	Address            Int       `json:"addr"`
	Alias              String    `json:"alias"`
	ChargeMonth        Float     `json:"chargeMonth"`
	DataloggerSN       String    `json:"dataLogSn"`
	DeviceType         Int       `json:"deviceType"`
	DischargeMonth     Float     `json:"disChargeMonth"`
	EChargeToday       Float     `json:"eChargeToday"`
	EDischargeToday    Float     `json:"eDischargeToday"`
	EDischargeTotal    Float     `json:"eDischargeTotal"`
	EnergyMonth        Float     `json:"energyMonth"`
	FwVersion          String    `json:"fwVersion"`
	GroupID            Int       `json:"groupId"`
	ID                 Int       `json:"id"`
	ImgPath            String    `json:"imgPath"`
	InnerVersion       String    `json:"innerVersion"`
	LastUpdateTime     Timestamp `json:"lastUpdateTime"`
	LastUpdateTimeText Timestamp `json:"lastUpdateTimeText"`
	Location           String    `json:"location"`
	Lost               Bool      `json:"lost"`
	Model              Int       `json:"model"`
	ModelText          String    `json:"modelText"`
	Normal             Float     `json:"normal"`
	ParentID           String    `json:"parentID"`
	PlantID            Int       `json:"plantId"`
	PlantName          String    `json:"plantname"`
	PortName           String    `json:"portName"`
	PowerMax           Float     `json:"powerMax"`
	PowerMaxText       String    `json:"powerMaxText"`
	PowerMaxTime       Timestamp `json:"powerMaxTime"`
	PvToday            Float     `json:"pvToday"`
	SerialNum          String    `json:"serialNum"`
	Status             Int       `json:"status"`
	StatusText         String    `json:"statusText"`
	TcpServerIP        String    `json:"tcpServerIp"`
	Timezone           Float     `json:"timezone"`
	TreeID             String    `json:"treeID"`
	TreeName           String    `json:"treeName"`
	Updating           Bool      `json:"updating"`
	UserName           String    `json:"userName"`
}

// HpsDetails is the response of the static-detail read.
type HpsDetails struct {
	ResponseMeta
	Data         *HpsDetailData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// HpsEnergyData is one telemetry snapshot of an HPS station.
type HpsEnergyData struct {
	Address                Int       `json:"address"`
	Again                  Bool      `json:"again"`
	AlarmCode1             Int       `json:"alarmCode1"`
	AlarmCode2             Int       `json:"alarmCode2"`
	Alias                  String    `json:"alias"`
	AtsBypass              Int       `json:"atsBypass"`
	BActivePower           Float     `json:"bActivePower"`
	BmsProtection          Int       `json:"bmsProtection"`
	BmsShowStatus          Int       `json:"bmsShowStatus"`
	BmsStatus              Int       `json:"bmsStatus"`
	BmsVoltStatus          Int       `json:"bmsVoltStatus"`
	Bvbus                  Float     `json:"bvbus"`
	BvbusNega              Float     `json:"bvbusNega"`
	BvbusPosi              Float     `json:"bvbusPosi"`
	BypassFreq             Float     `json:"bypassFreq"`
	Calendar               Timestamp `json:"calendar"`
	Capacity               Float     `json:"capacity"`
	DataloggerSN           String    `json:"dataLogSn"`
	Day                    String    `json:"day"`
	DgGridPower            Float     `json:"dgGridPower"`
	DgGridSelect           Int       `json:"dgGridSelect"`
	EBatChargeTimeTotal    Float     `json:"eBatChargeTimeTotal"`
	EBatChargeTotal        Float     `json:"eBatChargeTotal"`
	EBatDischargeTimeTotal Float     `json:"eBatDischargeTimeTotal"`
	EBatDischargeTotal     Float     `json:"eBatDischargeTotal"`
	EChargeTimeToday       Float     `json:"eChargeTimeToday"`
	EChargeToday           Float     `json:"eChargeToday"`
	EDischargeTimeToday    Float     `json:"eDischargeTimeToday"`
	EDischargeToday        Float     `json:"eDischargeToday"`
	EGridTimeToday         Float     `json:"eGridTimeToday"`
	EGridTimeTotal         Float     `json:"eGridTimeTotal"`
	EGridToday             Float     `json:"eGridToday"`
	EGridTotal             Float     `json:"eGridTotal"`
	ELoadTimeToday         Float     `json:"eLoadTimeToday"`
	ELoadTimeTotal         Float     `json:"eLoadTimeTotal"`
	ELoadToday             Float     `json:"eLoadToday"`
	ELoadTotal             Float     `json:"eLoadTotal"`
	EToGridTimeToday       Float     `json:"eToGridTimeToday"`
	EToGridTimeTotal       Float     `json:"eToGridTimeTotal"`
	EToGridToday           Float     `json:"eToGridToday"`
	EToGridTotal           Float     `json:"eToGridTotal"`
	Effectiveness          Float     `json:"effectiveness"`
	EpvTimeToday           Float     `json:"epvTimeToday"`
	EpvTimeTotal           Float     `json:"epvTimeTotal"`
	EpvToday               Float     `json:"epvToday"`
	EpvTotal               Float     `json:"epvTotal"`
	Fac                    Float     `json:"fac"`
	GridFreq               Float     `json:"gridFreq"`
	Ibat                   Float     `json:"ibat"`
	Ipv                    Float     `json:"ipv"`
	Ipv2                   Float     `json:"ipv2"`
	LoadActivePower        Float     `json:"loadActivePower"`
	LoadIa                 Float     `json:"loadIa"`
	LoadIb                 Float     `json:"loadIb"`
	LoadIc                 Float     `json:"loadIc"`
	LoadPf                 Float     `json:"loadPf"`
	LoadReactivePower      Float     `json:"loadReactivePower"`
	Lost                   Bool      `json:"lost"`
	MaxChargeCurr          Float     `json:"maxChargeCurr"`
	MaxDischargeCurr       Float     `json:"maxDischargeCurr"`
	MaxTemp                Float     `json:"maxTemp"`
	MaxVolt                Float     `json:"maxVolt"`
	MinTemp                Float     `json:"minTemp"`
	MinVolt                Float     `json:"minVolt"`
	Pac                    Float     `json:"pac"`
	Pac1                   Float     `json:"pac1"`
	Pac2                   Float     `json:"pac2"`
	Pf                     Float     `json:"pf"`
	PfSymbol               Int       `json:"pfSymbol"`
	Ppv                    Float     `json:"ppv"`
	Ppv1                   Float     `json:"ppv1"`
	Ppv2                   Float     `json:"ppv2"`
	Rac                    Float     `json:"rac"`
	RunModel               Int       `json:"runModel"`
	RunStatus              Int       `json:"runStatus"`
	SelfTime               Float     `json:"selfTime"`
	SerialNum              String    `json:"serialNum"`
	Status                 Int       `json:"status"`
	StatusText             String    `json:"statusText"`
	Temp1                  Float     `json:"temp1"`
	Temp2                  Float     `json:"temp2"`
	Temp3                  Float     `json:"temp3"`
	Time                   Timestamp `json:"time"`
	TypeFlag               Int       `json:"typeFlag"`
	Vbat                   Float     `json:"vbat"`
	Vpv                    Float     `json:"vpv"`
	Vpv2                   Float     `json:"vpv2"`
	WithTime               Bool      `json:"withTime"`
}

// HpsEnergy is the response of the latest-telemetry read.
type HpsEnergy struct {
	ResponseMeta
	Data         *HpsEnergyData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// HpsEnergyHistoryData pages through historical telemetry records.
type HpsEnergyHistoryData struct {
	Count           Int             `json:"count"`
	NextPageStartID Int             `json:"next_page_start_id"`
	DeviceSN        String          `json:"hps_sn"`
	DataloggerSN    String          `json:"datalogger_sn"`
	Datas           []HpsEnergyData `json:"datas"`
}

// HpsEnergyHistory is the response of the historical telemetry read.
type HpsEnergyHistory struct {
	ResponseMeta
	Data *HpsEnergyHistoryData `json:"data"`
}

// HpsAlarmsData lists the alarms of one day.
type HpsAlarmsData struct {
	Count    Int     `json:"count"`
	DeviceSN String  `json:"hps_sn"`
	Alarms   []Alarm `json:"alarms"`
}

// HpsAlarms is the response of the alarm read.
type HpsAlarms struct {
	ResponseMeta
	Data *HpsAlarmsData `json:"data"`
}
