package growatt

const (
	storageSettingReadURI  = "readStorageParam"
	storageSettingWriteURI = "storageSet"
	storageDetailsURI      = "device/storage/storage_data_info"
	storageEnergyURI       = "device/storage/storage_last_data"
	storageHistoryURI      = "device/storage/storage_data"
	storageAlarmsURI       = "device/storage/alarm_data"
)

// StorageService covers SP-series energy storage machines (device type 2).
type StorageService struct {
	session *Session
}

// SettingRead reads a single named parameter or a raw register range.
func (s *StorageService) SettingRead(deviceSN string, opts SettingReadOptions) (*SettingReadResult, error) {
	paramID, start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("device_sn", deviceSN).
		set("paramId", paramID).
		setInt("startAddr", start).
		setInt("endAddr", end)

	body, err := s.session.post(storageSettingReadURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SettingReadResult](body)
}

// SettingWrite writes a named parameter or a raw register. This family takes
// at most four parameter values.
func (s *StorageService) SettingWrite(deviceSN, parameterID string, values ...string) (*SettingWriteResult, error) {
	normalized, err := normalizeSettingValues(parameterID, values, storageSettingSlots)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("storage_sn", deviceSN).
		set("type", parameterID).
		setSettingValues(normalized)

	body, err := s.session.post(storageSettingWriteURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SettingWriteResult](body)
}

// Details returns static device information.
func (s *StorageService) Details(deviceSN string) (*StorageDetails, error) {
	body, err := s.session.get(storageDetailsURI, newParams().set("device_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[StorageDetails](body)
}

// Energy returns the latest telemetry snapshot.
func (s *StorageService) Energy(deviceSN string) (*StorageEnergy, error) {
	body, err := s.session.post(storageEnergyURI, newParams().set("storage_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[StorageEnergy](body)
}

// EnergyHistory returns telemetry records for a date range of at most a week.
func (s *StorageService) EnergyHistory(deviceSN string, opts HistoryOptions) (*StorageEnergyHistory, error) {
	start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("storage_sn", deviceSN).
		setDate("start_date", start).
		setDate("end_date", end).
		setOptString("timezone_id", opts.Timezone).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(storageHistoryURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[StorageEnergyHistory](body)
}

// Alarms returns the alarms raised on one day.
func (s *StorageService) Alarms(deviceSN string, opts AlarmOptions) (*StorageAlarms, error) {
	form := newParams().
		set("storage_sn", deviceSN).
		setDate("date", resolveDate(opts.Date))

	body, err := s.session.post(storageAlarmsURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[StorageAlarms](body)
}

// StorageDetailData holds static device information of a storage machine.
type StorageDetailData struct {
	ACInModel            Float     `json:"acInModel"`
	Address              Int       `json:"addr"`
	Alias                String    `json:"alias"`
	BLightEn             Int       `json:"bLightEn"`
	BatLowToUtiVolt      Float     `json:"batLowToUtiVolt"`
	BatteryType          Int       `json:"batteryType"`
	BulkChargeVolt       Float     `json:"bulkChargeVolt"`
	BuzzerEn             Int       `json:"buzzerEN"`
	ChargeConfig         Int       `json:"chargeConfig"`
	CommunicationVersion String    `json:"communicationVersion"`
	DataloggerSN         String    `json:"dataLogSn"`
	DeviceType           Int       `json:"deviceType"`
	FloatChargeVolt      Float     `json:"floatChargeVolt"`
	FwVersion            String    `json:"fwVersion"`
	GroupID              Int       `json:"groupId"`
	ImgPath              String    `json:"imgPath"`
	InnerVersion         String    `json:"innerVersion"`
	LastUpdateTime       Timestamp `json:"lastUpdateTime"`
	LastUpdateTimeText   Timestamp `json:"lastUpdateTimeText"`
	Location             String    `json:"location"`
	Lost                 Bool      `json:"lost"`
	ManualStartEn        Float     `json:"manualStartEn"`
	MaxChargeCurr        Float     `json:"maxChargeCurr"`
	Model                Int       `json:"model"`
	ModelText            String    `json:"modelText"`
	OutputConfig         Float     `json:"outputConfig"`
	OutputFreqType       Int       `json:"outputFreqType"`
	OutputVoltType       Int       `json:"outputVoltType"`
	OverLoadRestart      Int       `json:"overLoadRestart"`
	OverTempRestart      Int       `json:"overTempRestart"`
	PCharge              Float     `json:"pCharge"`
	PDischarge           Float     `json:"pDischarge"`
	ParentID             String    `json:"parentID"`
	PlantID              Int       `json:"plantId"`
	PlantName            String    `json:"plantname"`
	PortName             String    `json:"portName"`
	PowSavingEn          Int       `json:"powSavingEn"`
	PvModel              Float     `json:"pvModel"`
	RateVA               Float     `json:"rateVA"`
	RateWatt             Float     `json:"rateWatt"`
	SciLossChkEn         Int       `json:"sciLossChkEn"`
	SerialNum            String    `json:"serialNum"`
	Status               Int       `json:"status"`
	StatusText           String    `json:"statusText"`
	SysTime              Timestamp `json:"sysTime"`
	TcpServerIP          String    `json:"tcpServerIp"`
	TreeID               String    `json:"treeID"`
	TreeName             String    `json:"treeName"`
	Updating             Bool      `json:"updating"`
	UserID               Int       `json:"userID"`
	UserName             String    `json:"userName"`
	UtiChargeEnd         Float     `json:"utiChargeEnd"`
	UtiChargeStart       Float     `json:"utiChargeStart"`
	UtiOutEnd            Float     `json:"utiOutEnd"`
	UtiOutStart          Float     `json:"utiOutStart"`
}

// StorageDetails is the response of the static-detail read.
type StorageDetails struct {
	ResponseMeta
	Data         *StorageDetailData `json:"data"`
	DataloggerSN String             `json:"datalogger_sn"`
	DeviceSN     String             `json:"device_sn"`
}

// StorageEnergyData is one telemetry snapshot of a storage machine.
type StorageEnergyData struct {
	Address                 Int       `json:"address"`
	Again                   Bool      `json:"again"`
	Alias                   String    `json:"alias"`
	BatTemp                 Float     `json:"batTemp"`
	BmsConstantVolt         Float     `json:"bmsConstantVolt"`
	BmsCurrent              Float     `json:"bmsCurrent"`
	BmsError                Int       `json:"bmsError"`
	BmsSoh                  Float     `json:"bmsSoh"`
	BmsStatus               Int       `json:"bmsStatus"`
	BmsTemperature          Float     `json:"bmsTemperature"`
	BmsWarnInfo             Int       `json:"bmsWarnInfo"`
	Calendar                Timestamp `json:"calendar"`
	Capacity                Float     `json:"capacity"`
	CapacityText            String    `json:"capacityText"`
	ChargeCurrent           Float     `json:"chgCurr"`
	ChargeMonth             Float     `json:"chargeMonth"`
	ChargeToStandbyReason   Int       `json:"chargeToStandbyReason"`
	ChargeWay               Int       `json:"chargeWay"`
	CycleCount              Int       `json:"cycleCount"`
	DataloggerSN            String    `json:"dataLogSn"`
	Day                     String    `json:"day"`
	DeviceType              Int       `json:"deviceType"`
	DischargeCurrent        Float     `json:"dischgCurr"`
	DischargeMonth          Float     `json:"disChargeMonth"`
	DischargeToStandby      Int       `json:"dischargeToStandbyReason"`
	EBatDischargeToday      Float     `json:"eBatDisChargeToday"`
	EBatDischargeTotal      Float     `json:"eBatDisChargeTotal"`
	EChargeToday            Float     `json:"eChargeToday"`
	EChargeTotal            Float     `json:"eChargeTotal"`
	EDischargeToday         Float     `json:"eDischargeToday"`
	EDischargeTotal         Float     `json:"eDischargeTotal"`
	EToGridToday            Float     `json:"eToGridToday"`
	EToGridTotal            Float     `json:"eToGridTotal"`
	EToUserToday            Float     `json:"eToUserToday"`
	EToUserTotal            Float     `json:"eToUserTotal"`
	EToday                  Float     `json:"etoday"`
	ETotal                  Float     `json:"etotal"`
	EacChargeToday          Float     `json:"eacChargeToday"`
	EacChargeTotal          Float     `json:"eacChargeTotal"`
	EacDischargeToday       Float     `json:"eacDisChargeToday"`
	EacDischargeTotal       Float     `json:"eacDisChargeTotal"`
	EopDischargeToday       Float     `json:"eopDischrToday"`
	EopDischargeTotal       Float     `json:"eopDischrTotal"`
	EpvToday                Float     `json:"epvToday"`
	EpvTotal                Float     `json:"epvTotal"`
	ErrorCode               Int       `json:"errorCode"`
	ErrorText               String    `json:"errorText"`
	FaultCode               Int       `json:"faultCode"`
	FreqGrid                Float     `json:"freqGrid"`
	FreqOutput              Float     `json:"freqOutPut"`
	IACCharge               Float     `json:"iAcCharge"`
	ICharge                 Float     `json:"iCharge"`
	IChargePV1              Float     `json:"iChargePV1"`
	IChargePV2              Float     `json:"iChargePV2"`
	IDischarge              Float     `json:"iDischarge"`
	IacToGrid               Float     `json:"iacToGrid"`
	IacToUser               Float     `json:"iacToUser"`
	InnerCWCode             String    `json:"innerCWCode"`
	IpmTemperature          Float     `json:"ipmTemperature"`
	Ipv                     Float     `json:"ipv"`
	LoadPercent             Float     `json:"loadPercent"`
	Lost                    Bool      `json:"lost"`
	NormalPower             Float     `json:"normalPower"`
	OutputCurrent           Float     `json:"outPutCurrent"`
	OutputPower             Float     `json:"outPutPower"`
	OutputVolt              Float     `json:"outPutVolt"`
	PACCharge               Float     `json:"pAcCharge"`
	PACInput                Float     `json:"pAcInPut"`
	PBat                    Float     `json:"pBat"`
	PCharge                 Float     `json:"pCharge"`
	PDischarge              Float     `json:"pDischarge"`
	PacToGrid               Float     `json:"pacToGrid"`
	PacToUser               Float     `json:"pacToUser"`
	Ppv                     Float     `json:"ppv"`
	Ppv2                    Float     `json:"ppv2"`
	RateVA                  Float     `json:"rateVA"`
	RateWatt                Float     `json:"rateWatt"`
	RemoteCntlEn            Int       `json:"remoteCntlEn"`
	SerialNum               String    `json:"serialNum"`
	Soh                     Float     `json:"soh"`
	Status                  Int       `json:"status"`
	StatusText              String    `json:"statusText"`
	SysOut                  Float     `json:"sysOut"`
	Temperature             Float     `json:"temperature"`
	Time                    Timestamp `json:"time"`
	VBat                    Float     `json:"vBat"`
	VBuck                   Float     `json:"vBuck"`
	VBus                    Float     `json:"vBus"`
	VGrid                   Float     `json:"vGrid"`
	Vac                     Float     `json:"vac"`
	Vpv                     Float     `json:"vpv"`
	Vpv2                    Float     `json:"vpv2"`
	WarnCode                Int       `json:"warnCode"`
	WarnInfo                Int       `json:"warnInfo"`
	WarnText                String    `json:"warnText"`
	WithTime                Bool      `json:"withTime"`
}

// StorageEnergy is the response of the latest-telemetry read.
type StorageEnergy struct {
	ResponseMeta
	Data         *StorageEnergyData `json:"data"`
	DataloggerSN String             `json:"datalogger_sn"`
	DeviceSN     String             `json:"device_sn"`
}

// StorageEnergyHistoryData pages through historical telemetry records.
type StorageEnergyHistoryData struct {
	Count           Int                 `json:"count"`
	NextPageStartID Int                 `json:"next_page_start_id"`
	DeviceSN        String              `json:"storage_sn"`
	DataloggerSN    String              `json:"datalogger_sn"`
	Datas           []StorageEnergyData `json:"datas"`
}

// StorageEnergyHistory is the response of the historical telemetry read.
type StorageEnergyHistory struct {
	ResponseMeta
	Data *StorageEnergyHistoryData `json:"data"`
}

// StorageAlarmsData lists the alarms of one day.
type StorageAlarmsData struct {
	Count    Int     `json:"count"`
	DeviceSN String  `json:"sn"`
	Alarms   []Alarm `json:"alarms"`
}

// StorageAlarms is the response of the alarm read.
type StorageAlarms struct {
	ResponseMeta
	Data *StorageAlarmsData `json:"data"`
}
