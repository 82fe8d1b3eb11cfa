package growatt

const (
	pcsDetailsURI = "device/pcs/pcs_data_info"
	pcsEnergyURI  = "device/pcs/pcs_last_data"
	pcsHistoryURI = "device/pcs/pcs_data"
	pcsAlarmsURI  = "device/pcs/alarm_data"
)

// PcsService covers PCS battery power conversion systems (device type 8).
// An empty deviceSN falls back to the serial configured with
// WithDefaultSerial.
type PcsService struct {
	session *Session
}

// Details returns static device information.
func (s *PcsService) Details(deviceSN string) (*PcsDetails, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	body, err := s.session.get(pcsDetailsURI, newParams().set("device_sn", sn))
	if err != nil {
		return nil, err
	}

	return parseResponse[PcsDetails](body)
}

// Energy returns the latest telemetry snapshot.
func (s *PcsService) Energy(deviceSN string) (*PcsEnergy, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	body, err := s.session.post(pcsEnergyURI, newParams().set("pcs_sn", sn))
	if err != nil {
		return nil, err
	}

	return parseResponse[PcsEnergy](body)
}

// EnergyHistory returns telemetry records for a date range of at most a week.
func (s *PcsService) EnergyHistory(deviceSN string, opts HistoryOptions) (*PcsEnergyHistory, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("pcs_sn", sn).
		setDate("start_date", start).
		setDate("end_date", end).
		setOptString("timezone_id", opts.Timezone).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(pcsHistoryURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[PcsEnergyHistory](body)
}

// Alarms returns the alarms raised on one day.
func (s *PcsService) Alarms(deviceSN string, opts AlarmOptions) (*PcsAlarms, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("pcs_sn", sn).
		setDate("date", resolveDate(opts.Date)).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(pcsAlarmsURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[PcsAlarms](body)
}

// PcsDetailData holds static device information of a PCS unit.
type PcsDetailData struct {
	Address            Int       `json:"addr"`
	Alias              String    `json:"alias"`
	ChargeMonth        Float     `json:"chargeMonth"`
	DataloggerSN       String    `json:"dataLogSn"`
	DischargeMonth     Float     `json:"disChargeMonth"`
	EChargeToday       Float     `json:"eChargeToday"`
	EDischargeToday    Float     `json:"eDischargeToday"`
	EDischargeTotal    Float     `json:"eDischargeTotal"`
	EnergyDay          Float     `json:"energyDay"`
	EnergyMonth        Float     `json:"energyMonth"`
	FwVersion          String    `json:"fwVersion"`
	GroupID            Int       `json:"groupId"`
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
	PeakClipping       Float     `json:"peakClipping"`
	PeakClippingTotal  Float     `json:"peakClippingTotal"`
	PlantID            Int       `json:"plantId"`
	PlantName          String    `json:"plantname"`
	PortName           String    `json:"portName"`
	SerialNum          String    `json:"serialNum"`
	Status             Int       `json:"status"`
	StatusText         String    `json:"statusText"`
	TcpServerIP        String    `json:"tcpServerIp"`
	TreeID             String    `json:"treeID"`
	TreeName           String    `json:"treeName"`
	Updating           Bool      `json:"updating"`
	UserName           String    `json:"userName"`
}

// PcsDetails is the response of the static-detail read.
type PcsDetails struct {
	ResponseMeta
	Data         *PcsDetailData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// PcsEnergyData is one telemetry snapshot of a PCS unit.
type PcsEnergyData struct {
	Address             Int       `json:"address"`
	Again               Bool      `json:"again"`
	AlarmCode1          Int       `json:"alarmCode1"`
	AlarmCode2          Int       `json:"alarmCode2"`
	Alias               String    `json:"alias"`
	AtsBypass           Int       `json:"atsBypass"`
	BActivePower        Float     `json:"bActivePower"`
	BApparentPower      Float     `json:"bApparentPower"`
	BReactivePower      Float     `json:"bReactivePower"`
	BmsProtection       Int       `json:"bmsProtection"`
	BmsStatus           Int       `json:"bmsStatus"`
	BmsVoltStatus       Int       `json:"bmsVoltStatus"`
	Bvbus               Float     `json:"bvbus"`
	BvbusNega           Float     `json:"bvbusNega"`
	BvbusPosi           Float     `json:"bvbusPosi"`
	Bvpv                Float     `json:"bvpv"`
	BypassFreq          Float     `json:"bypassFreq"`
	Calendar            Timestamp `json:"calendar"`
	Capacity            Float     `json:"capacity"`
	DataloggerSN        String    `json:"dataLogSn"`
	Day                 String    `json:"day"`
	DgGridPower         Float     `json:"dgGridPower"`
	DgGridSelect        Int       `json:"dgGridSelect"`
	EChargeTimeToday    Float     `json:"eChargeTimeToday"`
	EChargeTimeTotal    Float     `json:"eChargeTimeTotal"`
	EChargeToday        Float     `json:"eChargeToday"`
	EChargeTotal        Float     `json:"eChargeTotal"`
	EDischargeTimeToday Float     `json:"eDischargeTimeToday"`
	EDischargeTimeTotal Float     `json:"eDischargeTimeTotal"`
	EDischargeToday     Float     `json:"eDischargeToday"`
	EDischargeTotal     Float     `json:"eDischargeTotal"`
	ElectricState       Int       `json:"electricState"`
	GridFreq            Float     `json:"gridFreq"`
	GridTimeToday       Float     `json:"gridTimeToday"`
	GridTimeTotal       Float     `json:"gridTimeTotal"`
	GridToday           Float     `json:"gridToday"`
	GridTotal           Float     `json:"gridTotal"`
	I1a                 Float     `json:"i1a"`
	I1b                 Float     `json:"i1b"`
	I1c                 Float     `json:"i1c"`
	LoadActivePower     Float     `json:"loadActivePower"`
	LoadApparentPower   Float     `json:"loadApparentPower"`
	LoadIa              Float     `json:"loadIa"`
	LoadIb              Float     `json:"loadIb"`
	LoadIc              Float     `json:"loadIc"`
	LoadPf              Float     `json:"loadPf"`
	LoadReactivePower   Float     `json:"loadReactivePower"`
	LoadTimeToday       Float     `json:"loadTimeToday"`
	LoadTimeTotal       Float     `json:"loadTimeTotal"`
	LoadToday           Float     `json:"loadToday"`
	LoadTotal           Float     `json:"loadTotal"`
	Lost                Bool      `json:"lost"`
	MaxChargeCurr       Float     `json:"maxChargeCurr"`
	MaxDischargeCurr    Float     `json:"maxDischargeCurr"`
	MaxTemp             Float     `json:"maxTemp"`
	MaxVolt             Float     `json:"maxVolt"`
	MinTemp             Float     `json:"minTemp"`
	MinVolt             Float     `json:"minVolt"`
	OutApparentPower    Float     `json:"outApparentPower"`
	OutReactivePower    Float     `json:"outReactivePower"`
	PacToBattery        Float     `json:"pacToBattery"`
	PacToGrid           Float     `json:"pacToGrid"`
	PcsActivePower      Float     `json:"pcsActivePower"`
	Pf                  Float     `json:"pf"`
	PfSymbol            Int       `json:"pfSymbol"`
	PowerGrid           Float     `json:"powerGird"`
	Ppv                 Float     `json:"ppv"`
	PvEnergy            Float     `json:"pvEnergy"`
	SelfTime            Float     `json:"selfTime"`
	SerialNum           String    `json:"serialNum"`
	Status              Int       `json:"status"`
	StatusText          String    `json:"statusText"`
	Temp1               Float     `json:"temp1"`
	Temp2               Float     `json:"temp2"`
	Temp3               Float     `json:"temp3"`
	Time                Timestamp `json:"time"`
	ToGridTimeToday     Float     `json:"toGridTimeToday"`
	ToGridTimeTotal     Float     `json:"toGridTimeTotal"`
	ToGridToday         Float     `json:"toGridToday"`
	ToGridTotal         Float     `json:"toGridTotal"`
	ToPowerGrid         Float     `json:"toPowerGird"`
	TypeFlag            Int       `json:"typeFlag"`
	VacFrequency        Float     `json:"vacFrequency"`
	Vacu                Float     `json:"vacu"`
	Vacv                Float     `json:"vacv"`
	Vacw                Float     `json:"vacw"`
	WithTime            Bool      `json:"withTime"`
}

// PcsEnergy is the response of the latest-telemetry read.
type PcsEnergy struct {
	ResponseMeta
	Data         *PcsEnergyData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// PcsEnergyHistoryData pages through historical telemetry records.
type PcsEnergyHistoryData struct {
	Count           Int             `json:"count"`
	NextPageStartID Int             `json:"next_page_start_id"`
	DeviceSN        String          `json:"pcs_sn"`
	DataloggerSN    String          `json:"datalogger_sn"`
	Datas           []PcsEnergyData `json:"datas"`
}

// PcsEnergyHistory is the response of the historical telemetry read.
type PcsEnergyHistory struct {
	ResponseMeta
	Data *PcsEnergyHistoryData `json:"data"`
}

// PcsAlarmsData lists the alarms of one day.
type PcsAlarmsData struct {
	Count    Int     `json:"count"`
	DeviceSN String  `json:"pcs_sn"`
	Alarms   []Alarm `json:"alarms"`
}

// PcsAlarms is the response of the alarm read.
type PcsAlarms struct {
	ResponseMeta
	Data *PcsAlarmsData `json:"data"`
}
