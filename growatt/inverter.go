package growatt

const (
	inverterSettingReadURI  = "readInverterParam"
	inverterSettingWriteURI = "inverterSet"
	inverterDetailsURI      = "device/inverter/inv_data_info"
	inverterEnergyURI       = "device/inverter/last_new_data"
	inverterEnergyBatchURI  = "device/inverter/invs_data"
	inverterHistoryURI      = "device/inverter/data"
	inverterAlarmsURI       = "device/inverter/alarm"

	inverterBatchListKey = "inverters"
)

// InverterService covers plain grid-tie inverters (device type 1).
type InverterService struct {
	session *Session
}

// SettingRead reads a single named parameter or a raw register range.
func (s *InverterService) SettingRead(deviceSN string, opts SettingReadOptions) (*SettingReadResult, error) {
	paramID, start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("device_sn", deviceSN).
		set("paramId", paramID).
		setInt("startAddr", start).
		setInt("endAddr", end)

	body, err := s.session.post(inverterSettingReadURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SettingReadResult](body)
}

// SettingWrite writes a named parameter. This family takes at most two
// command values (command_1, command_2) instead of the param1..19 scheme.
func (s *InverterService) SettingWrite(deviceSN, parameterID, value1, value2 string) (*SettingWriteResult, error) {
	if parameterID == "" {
		return nil, ErrNoParameterID
	}

	form := newParams().
		set("device_sn", deviceSN).
		set("paramId", parameterID).
		set("command_1", value1).
		set("command_2", value2)

	body, err := s.session.post(inverterSettingWriteURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SettingWriteResult](body)
}

// Details returns static device information.
func (s *InverterService) Details(deviceSN string) (*InverterDetails, error) {
	body, err := s.session.get(inverterDetailsURI, newParams().set("device_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[InverterDetails](body)
}

// Energy returns the latest telemetry snapshot.
func (s *InverterService) Energy(deviceSN string) (*InverterEnergy, error) {
	body, err := s.session.get(inverterEnergyURI, newParams().set("device_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[InverterEnergy](body)
}

// EnergyMultiple returns the latest telemetry for up to 100 devices at once.
func (s *InverterService) EnergyMultiple(deviceSNs []string, page int) ([]BatchRecord[InverterEnergyData], error) {
	serials, err := joinSerials(deviceSNs)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set(inverterBatchListKey, serials).
		setPage("pageNum", page)

	body, err := s.session.post(inverterEnergyBatchURI, form)
	if err != nil {
		return nil, err
	}

	return reshapeBatch[InverterEnergyData](body, inverterBatchListKey)
}

// EnergyHistory returns telemetry records for a date range of at most a week.
func (s *InverterService) EnergyHistory(deviceSN string, opts HistoryOptions) (*InverterEnergyHistory, error) {
	start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	query := newParams().
		set("device_sn", deviceSN).
		setDate("start_date", start).
		setDate("end_date", end).
		setOptString("timezone_id", opts.Timezone).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.get(inverterHistoryURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[InverterEnergyHistory](body)
}

// Alarms returns the alarms raised on one day.
func (s *InverterService) Alarms(deviceSN string, opts AlarmOptions) (*InverterAlarms, error) {
	query := newParams().
		set("device_sn", deviceSN).
		setDate("date", resolveDate(opts.Date)).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.get(inverterAlarmsURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[InverterAlarms](body)
}

// InverterDetailData holds static device information of a grid-tie inverter.
type InverterDetailData struct {
	Address              Int       `json:"addr"`
	Alias                String    `json:"alias"`
	BigDevice            Bool      `json:"bigDevice"`
	CommunicationVersion String    `json:"communicationVersion"`
	CreateDate           Timestamp `json:"createDate"`
	DataloggerSN         String    `json:"dataLogSn"`
	DeviceType           Int       `json:"deviceType"`
	EToday               Float     `json:"eToday"`
	ETotal               Float     `json:"eTotal"`
	EnergyDay            Float     `json:"energyDay"`
	EnergyMonth          Float     `json:"energyMonth"`
	FwVersion            String    `json:"fwVersion"`
	GroupID              Int       `json:"groupID"`
	ID                   Int       `json:"id"`
	ImgPath              String    `json:"imgPath"`
	InnerVersion         String    `json:"innerVersion"`
	IpmTemperature       Float     `json:"ipmTemperature"`
	LastUpdateTime       Timestamp `json:"lastUpdateTime"`
	LastUpdateTimeText   Timestamp `json:"lastUpdateTimeText"`
	LoadText             String    `json:"loadText"`
	Location             String    `json:"location"`
	Lost                 Bool      `json:"lost"`
	Model                Int       `json:"model"`
	ModelText            String    `json:"modelText"`
	NominalPower         Float     `json:"nominalPower"`
	ParentID             String    `json:"parentID"`
	PlantID              Int       `json:"plantId"`
	PlantName            String    `json:"plantname"`
	Power                Float     `json:"power"`
	PowerMax             Float     `json:"powerMax"`
	PowerMaxText         String    `json:"powerMaxText"`
	PowerMaxTime         Timestamp `json:"powerMaxTime"`
	RfStick              String    `json:"rfStick"`
	SerialNum            String    `json:"serialNum"`
	Status               Int       `json:"status"`
	StatusText           String    `json:"statusText"`
	TcpServerIP          String    `json:"tcpServerIp"`
	Temperature          Float     `json:"temperature"`
	Timezone             Float     `json:"timezone"`
	TreeID               String    `json:"treeID"`
	TreeName             String    `json:"treeName"`
	UpdateExist          Bool      `json:"updateExist"`
	Updating             Bool      `json:"updating"`
	UserID               Int       `json:"userID"`
	UserName             String    `json:"userName"`
}

// InverterDetails is the response of the static-detail read.
type InverterDetails struct {
	ResponseMeta
	Data         *InverterDetailData `json:"data"`
	DataloggerSN String              `json:"datalogger_sn"`
	DeviceSN     String              `json:"device_sn"`
}

// InverterEnergyData is the latest telemetry snapshot of a grid-tie inverter.
type InverterEnergyData struct {
	Again          Bool      `json:"again"`
	BigDevice      Bool      `json:"bigDevice"`
	DeratingMode   Int       `json:"deratingMode"`
	Epv1Today      Float     `json:"epv1Today"`
	Epv1Total      Float     `json:"epv1Total"`
	Epv2Today      Float     `json:"epv2Today"`
	Epv2Total      Float     `json:"epv2Total"`
	Epv3Today      Float     `json:"epv3Today"`
	Epv3Total      Float     `json:"epv3Total"`
	EpvTotal       Float     `json:"epvTotal"`
	ERacToday      Float     `json:"eRacToday"`
	ERacTotal      Float     `json:"eRacTotal"`
	Fac            Float     `json:"fac"`
	FaultType      Int       `json:"faultType"`
	Gfci           Float     `json:"gfci"`
	Iacr           Float     `json:"iacr"`
	Iacs           Float     `json:"iacs"`
	Iact           Float     `json:"iact"`
	ID             Int       `json:"id"`
	DeviceSN       String    `json:"inverterId"`
	IpmTemperature Float     `json:"ipmTemperature"`
	Ipv1           Float     `json:"ipv1"`
	Ipv2           Float     `json:"ipv2"`
	Ipv3           Float     `json:"ipv3"`
	NBusVoltage    Float     `json:"nBusVoltage"`
	OpFullwatt     Float     `json:"opFullwatt"`
	PBusVoltage    Float     `json:"pBusVoltage"`
	Pac            Float     `json:"pac"`
	Pacr           Float     `json:"pacr"`
	Pacs           Float     `json:"pacs"`
	Pact           Float     `json:"pact"`
	Pf             Float     `json:"pf"`
	PowerToday     Float     `json:"powerToday"`
	PowerTotal     Float     `json:"powerTotal"`
	Ppv            Float     `json:"ppv"`
	Ppv1           Float     `json:"ppv1"`
	Ppv2           Float     `json:"ppv2"`
	Ppv3           Float     `json:"ppv3"`
	PvIso          Float     `json:"pvIso"`
	Rac            Float     `json:"rac"`
	RDci           Float     `json:"rDci"`
	RealOpPercent  Float     `json:"realOPPercent"`
	SDci           Float     `json:"sDci"`
	Status         Int       `json:"status"`
	StatusText     String    `json:"statusText"`
	StrFault       Int       `json:"strFault"`
	TDci           Float     `json:"tDci"`
	Temperature    Float     `json:"temperature"`
	Time           Timestamp `json:"time"`
	TimeCalendar   Timestamp `json:"timeCalendar"`
	TimeTotal      Float     `json:"timeTotal"`
	TimeTotalText  String    `json:"timeTotalText"`
	Vacr           Float     `json:"vacr"`
	VacRs          Float     `json:"vacRs"`
	Vacs           Float     `json:"vacs"`
	VacSt          Float     `json:"vacSt"`
	Vact           Float     `json:"vact"`
	VacTr          Float     `json:"vacTr"`
	Vpv1           Float     `json:"vpv1"`
	Vpv2           Float     `json:"vpv2"`
	Vpv3           Float     `json:"vpv3"`
	WarnCode       Int       `json:"warnCode"`
	WPIDFaultValue Int       `json:"wPIDFaultValue"`
}

// InverterEnergy is the response of the latest-telemetry read.
type InverterEnergy struct {
	ResponseMeta
	Data         *InverterEnergyData `json:"data"`
	DataloggerSN String              `json:"datalogger_sn"`
	DeviceSN     String              `json:"device_sn"`
}

// InverterEnergyHistoryItem is one reduced historical telemetry record.
type InverterEnergyHistoryItem struct {
	Fac         Float     `json:"fac"`
	Iac1        Float     `json:"iac1"`
	Iac2        Float     `json:"iac2"`
	Iac3        Float     `json:"iac3"`
	Ipv1        Float     `json:"ipv1"`
	Ipv2        Float     `json:"ipv2"`
	Ipv3        Float     `json:"ipv3"`
	Power       Float     `json:"power"`
	PowerFactor Float     `json:"powerFactor"`
	Ppv         Float     `json:"ppv"`
	Ppv1        Float     `json:"ppv1"`
	Ppv2        Float     `json:"ppv2"`
	Ppv3        Float     `json:"ppv3"`
	Status      Int       `json:"status"`
	Temperature Float     `json:"temperature"`
	Time        Timestamp `json:"time"`
	TodayEnergy Float     `json:"todayEnergy"`
	TotalEnergy Float     `json:"totalEnergy"`
	Vac1        Float     `json:"vac1"`
	Vac2        Float     `json:"vac2"`
	Vac3        Float     `json:"vac3"`
	Vpv1        Float     `json:"vpv1"`
	Vpv2        Float     `json:"vpv2"`
	Vpv3        Float     `json:"vpv3"`
}

// InverterEnergyHistoryData pages through historical telemetry records.
type InverterEnergyHistoryData struct {
	Count           Int                         `json:"count"`
	NextPageStartID Int                         `json:"next_page_start_id"`
	DeviceSN        String                      `json:"sn"`
	DataloggerSN    String                      `json:"datalogger_sn"`
	Datas           []InverterEnergyHistoryItem `json:"datas"`
}

// InverterEnergyHistory is the response of the historical telemetry read.
type InverterEnergyHistory struct {
	ResponseMeta
	Data *InverterEnergyHistoryData `json:"data"`
}

// InverterAlarmsData lists the alarms of one day.
type InverterAlarmsData struct {
	Count    Int     `json:"count"`
	DeviceSN String  `json:"sn"`
	Alarms   []Alarm `json:"alarms"`
}

// InverterAlarms is the response of the alarm read.
type InverterAlarms struct {
	ResponseMeta
	Data *InverterAlarmsData `json:"data"`
}
