package growatt

const (
	maxDetailsURI = "device/max/max_data_info"
	maxEnergyURI  = "device/max/max_last_data"
	maxAlarmsURI  = "device/max/alarm_data"
)

// MaxService covers MAX-series commercial string inverters. Settings, batch
// telemetry and history are routed through the shared "tlx" endpoints, which
// is why those calls return the MIN-shaped models.
type MaxService struct {
	session *Session
}

// Settings reads the on-device setting block (shared tlx endpoint).
func (s *MaxService) Settings(deviceSN string) (*MinSettings, error) {
	body, err := s.session.get(minSettingsURI, newParams().set("device_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[MinSettings](body)
}

// SettingRead reads a single named parameter or a raw register range.
func (s *MaxService) SettingRead(deviceSN string, opts SettingReadOptions) (*SettingReadResult, error) {
	paramID, start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("device_sn", deviceSN).
		set("paramId", paramID).
		setInt("startAddr", start).
		setInt("endAddr", end)

	body, err := s.session.post(minSettingReadURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SettingReadResult](body)
}

// SettingWrite writes a named parameter or a raw register.
func (s *MaxService) SettingWrite(deviceSN, parameterID string, values ...string) (*SettingWriteResult, error) {
	normalized, err := normalizeSettingValues(parameterID, values, tlxSettingSlots)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("tlx_sn", deviceSN).
		set("type", parameterID).
		setSettingValues(normalized)

	body, err := s.session.post(minSettingWriteURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SettingWriteResult](body)
}

// Details returns static device information.
func (s *MaxService) Details(deviceSN string) (*MaxDetails, error) {
	body, err := s.session.get(maxDetailsURI, newParams().set("device_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[MaxDetails](body)
}

// Energy returns the latest telemetry snapshot.
func (s *MaxService) Energy(deviceSN string) (*MaxEnergy, error) {
	body, err := s.session.post(maxEnergyURI, newParams().set("max_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[MaxEnergy](body)
}

// EnergyMultiple returns the latest telemetry for up to 100 devices at once
// (shared tlx endpoint, MIN-shaped records).
func (s *MaxService) EnergyMultiple(deviceSNs []string, page int) ([]BatchRecord[MinEnergyData], error) {
	serials, err := joinSerials(deviceSNs)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set(minBatchListKey, serials).
		setPage("pageNum", page)

	body, err := s.session.post(minEnergyBatchURI, form)
	if err != nil {
		return nil, err
	}

	return reshapeBatch[MinEnergyData](body, minBatchListKey)
}

// EnergyHistory returns telemetry records for a date range of at most a week
// (shared tlx endpoint, MIN-shaped records).
func (s *MaxService) EnergyHistory(deviceSN string, opts HistoryOptions) (*MinEnergyHistory, error) {
	start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("tlx_sn", deviceSN).
		setDate("start_date", start).
		setDate("end_date", end).
		setOptString("timezone_id", opts.Timezone).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(minHistoryURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[MinEnergyHistory](body)
}

// Alarms returns the alarms raised on one day.
func (s *MaxService) Alarms(deviceSN string, opts AlarmOptions) (*MaxAlarms, error) {
	form := newParams().
		set("max_sn", deviceSN).
		setDate("date", resolveDate(opts.Date)).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(maxAlarmsURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[MaxAlarms](body)
}

// MaxDetailData holds static device information of a MAX inverter.
type MaxDetailData struct {
	ActiveRate           Float     `json:"activeRate"`
	Address              Int       `json:"addr"`
	Alias                String    `json:"alias"`
	BackflowDefaultPower Float     `json:"backflowDefaultPower"`
	BigDevice            Bool      `json:"bigDevice"`
	CommunicationVersion String    `json:"communicationVersion"`
	DataloggerSN         String    `json:"dataLogSn"`
	DeviceType           Int       `json:"deviceType"`
	Dtc                  Int       `json:"dtc"`
	EToday               Float     `json:"eToday"`
	ETotal               Float     `json:"eTotal"`
	EnergyDay            Float     `json:"energyDay"`
	EnergyMonth          Float     `json:"energyMonth"`
	ExportLimit          Int       `json:"exportLimit"`
	ExportLimitPowerRate Float     `json:"exportLimitPowerRate"`
	FacHigh              Float     `json:"facHigh"`
	FacLow               Float     `json:"facLow"`
	FwVersion            String    `json:"fwVersion"`
	GroupID              Int       `json:"groupId"`
	ImgPath              String    `json:"imgPath"`
	InnerVersion         String    `json:"innerVersion"`
	LastUpdateTime       Timestamp `json:"lastUpdateTime"`
	LastUpdateTimeText   Timestamp `json:"lastUpdateTimeText"`
	LcdLanguage          Int       `json:"lcdLanguage"`
	Location             String    `json:"location"`
	Lost                 Bool      `json:"lost"`
	Model                Int       `json:"model"`
	ModelText            String    `json:"modelText"`
	NormalPower          Float     `json:"normalPower"`
	OnOff                Bool      `json:"onOff"`
	ParentID             String    `json:"parentID"`
	Pf                   Float     `json:"pf"`
	PfModel              Float     `json:"pfModel"`
	PlantID              Int       `json:"plantId"`
	PlantName            String    `json:"plantname"`
	PortName             String    `json:"portName"`
	Power                Float     `json:"power"`
	PowerMax             Float     `json:"powerMax"`
	PowerMaxText         String    `json:"powerMaxText"`
	PowerMaxTime         Timestamp `json:"powerMaxTime"`
	PvPfCmdMemoryState   Bool      `json:"pvPfCmdMemoryState"`
	ReactiveRate         Float     `json:"reactiveRate"`
	RemainDay            Float     `json:"remainDay"`
	SerialNum            String    `json:"serialNum"`
	Status               Int       `json:"status"`
	StatusText           String    `json:"statusText"`
	StrNum               Int       `json:"strNum"`
	SysTime              Timestamp `json:"sysTime"`
	TcpServerIP          String    `json:"tcpServerIp"`
	Timezone             Float     `json:"timezone"`
	TreeID               String    `json:"treeID"`
	TreeName             String    `json:"treeName"`
	Updating             Bool      `json:"updating"`
	UserName             String    `json:"userName"`
	VacHigh              Float     `json:"vacHigh"`
	VacLow               Float     `json:"vacLow"`
	VoltageHighLimit     Float     `json:"voltageHighLimit"`
	VoltageLowLimit      Float     `json:"voltageLowLimit"`
}

// MaxDetails is the response of the static-detail read.
type MaxDetails struct {
	ResponseMeta
	Data         *MaxDetailData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// MaxEnergyData is one telemetry snapshot of a MAX inverter.
type MaxEnergyData struct {
	Address        Int       `json:"address"`
	AfciPv1        Int       `json:"afciPv1"`
	AfciPv2        Int       `json:"afciPv2"`
	AfciStatus     Int       `json:"afciStatus"`
	Again          Bool      `json:"again"`
	Alias          String    `json:"alias"`
	ApfStatus      Float     `json:"apfStatus"`
	ApfStatusText  String    `json:"apfStatusText"`
	Calendar       Timestamp `json:"calendar"`
	CompHarIr      Float     `json:"compharir"`
	CompHarIs      Float     `json:"compharis"`
	CompHarIt      Float     `json:"compharit"`
	CompQr         Float     `json:"compqr"`
	CompQs         Float     `json:"compqs"`
	CompQt         Float     `json:"compqt"`
	CtHarIr        Float     `json:"ctharir"`
	CtHarIs        Float     `json:"ctharis"`
	CtHarIt        Float     `json:"ctharit"`
	CtIr           Float     `json:"ctir"`
	CtIs           Float     `json:"ctis"`
	CtIt           Float     `json:"ctit"`
	CtQr           Float     `json:"ctqr"`
	CtQs           Float     `json:"ctqs"`
	CtQt           Float     `json:"ctqt"`
	DataloggerSN   String    `json:"dataLogSn"`
	Day            String    `json:"day"`
	DeratingMode   Int       `json:"deratingMode"`
	EacToday       Float     `json:"eacToday"`
	EacTotal       Float     `json:"eacTotal"`
	ERacToday      Float     `json:"eRacToday"`
	ERacTotal      Float     `json:"eRacTotal"`
	Epv1Today      Float     `json:"epv1Today"`
	Epv1Total      Float     `json:"epv1Total"`
	Epv2Today      Float     `json:"epv2Today"`
	Epv2Total      Float     `json:"epv2Total"`
	Epv3Today      Float     `json:"epv3Today"`
	Epv3Total      Float     `json:"epv3Total"`
	Epv4Today      Float     `json:"epv4Today"`
	Epv4Total      Float     `json:"epv4Total"`
	EpvTotal       Float     `json:"epvTotal"`
	Fac            Float     `json:"fac"`
	FaultCode1     Int       `json:"faultCode1"`
	FaultCode2     Int       `json:"faultCode2"`
	FaultType      Int       `json:"faultType"`
	FaultValue     Int       `json:"faultValue"`
	Gfci           Float     `json:"gfci"`
	Iacr           Float     `json:"iacr"`
	Iacs           Float     `json:"iacs"`
	Iact           Float     `json:"iact"`
	IpmTemperature Float     `json:"ipmTemperature"`
	Ipv1           Float     `json:"ipv1"`
	Ipv2           Float     `json:"ipv2"`
	Ipv3           Float     `json:"ipv3"`
	Ipv4           Float     `json:"ipv4"`
	Ipv5           Float     `json:"ipv5"`
	Ipv6           Float     `json:"ipv6"`
	Ipv7           Float     `json:"ipv7"`
	Ipv8           Float     `json:"ipv8"`
	Lost           Bool      `json:"lost"`
	NBusVoltage    Float     `json:"nBusVoltage"`
	OpFullwatt     Float     `json:"opFullwatt"`
	PBusVoltage    Float     `json:"pBusVoltage"`
	Pac            Float     `json:"pac"`
	Pacr           Float     `json:"pacr"`
	Pacs           Float     `json:"pacs"`
	Pact           Float     `json:"pact"`
	Pf             Float     `json:"pf"`
	PidBus         Float     `json:"pidBus"`
	PidFaultCode   Int       `json:"pidFaultCode"`
	PidStatus      Int       `json:"pidStatus"`
	PidStatusText  String    `json:"pidStatusText"`
	PowerToday     Float     `json:"powerToday"`
	PowerTotal     Float     `json:"powerTotal"`
	Ppv            Float     `json:"ppv"`
	Ppv1           Float     `json:"ppv1"`
	Ppv2           Float     `json:"ppv2"`
	Ppv3           Float     `json:"ppv3"`
	Ppv4           Float     `json:"ppv4"`
	Ppv5           Float     `json:"ppv5"`
	Ppv6           Float     `json:"ppv6"`
	Ppv7           Float     `json:"ppv7"`
	Ppv8           Float     `json:"ppv8"`
	PvIso          Float     `json:"pvIso"`
	Rac            Float     `json:"rac"`
	RDci           Float     `json:"rDci"`
	ReactPower     Float     `json:"reactPower"`
	ReactPowerMax  Float     `json:"reactPowerMax"`
	RealOpPercent  Float     `json:"realOPPercent"`
	SDci           Float     `json:"sDci"`
	SerialNum      String    `json:"serialNum"`
	Status         Int       `json:"status"`
	StatusText     String    `json:"statusText"`
	StrBreak       Int       `json:"strBreak"`
	StrFault       Int       `json:"strFault"`
	StrUnbalance   Int       `json:"strUnblance"`
	StrUnmatch     Int       `json:"strUnmatch"`
	TDci           Float     `json:"tDci"`
	Temperature    Float     `json:"temperature"`
	Temperature2   Float     `json:"temperature2"`
	Temperature3   Float     `json:"temperature3"`
	Temperature4   Float     `json:"temperature4"`
	Temperature5   Float     `json:"temperature5"`
	Time           Timestamp `json:"time"`
	TimeCalendar   Timestamp `json:"timeCalendar"`
	TimeTotal      Float     `json:"timeTotal"`
	Vacr           Float     `json:"vacr"`
	VacRs          Float     `json:"vacRs"`
	Vacs           Float     `json:"vacs"`
	VacSt          Float     `json:"vacSt"`
	Vact           Float     `json:"vact"`
	VacTr          Float     `json:"vacTr"`
	Vpv1           Float     `json:"vpv1"`
	Vpv2           Float     `json:"vpv2"`
	Vpv3           Float     `json:"vpv3"`
	Vpv4           Float     `json:"vpv4"`
	Vpv5           Float     `json:"vpv5"`
	Vpv6           Float     `json:"vpv6"`
	Vpv7           Float     `json:"vpv7"`
	Vpv8           Float     `json:"vpv8"`
	WPIDFaultValue Int       `json:"wPIDFaultValue"`
	WarnBit        Int       `json:"warnBit"`
	WarnCode       Int       `json:"warnCode"`
	WarningValue1  Int       `json:"warningValue1"`
	WarningValue2  Int       `json:"warningValue2"`
	WarningValue3  Int       `json:"warningValue3"`
	WithTime       Bool      `json:"withTime"`
}

// MaxEnergy is the response of the latest-telemetry read.
type MaxEnergy struct {
	ResponseMeta
	Data         *MaxEnergyData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// MaxAlarmsData lists the alarms of one day.
type MaxAlarmsData struct {
	Count    Int     `json:"count"`
	DeviceSN String  `json:"max_sn"`
	Alarms   []Alarm `json:"alarms"`
}

// MaxAlarms is the response of the alarm read.
type MaxAlarms struct {
	ResponseMeta
	Data *MaxAlarmsData `json:"data"`
}
