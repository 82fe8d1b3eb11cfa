package growatt

const (
	sphSettingReadURI  = "readMixParam"
	sphSettingWriteURI = "mixSet"
	sphDetailsURI      = "device/mix/mix_data_info"
	sphEnergyURI       = "device/mix/mix_last_data"
	sphEnergyBatchURI  = "device/mix/mixs_data"
	sphHistoryURI      = "device/mix/mix_data"
	sphAlarmsURI       = "device/mix/alarm_data"

	sphBatchListKey = "mixs"
)

// SphService covers SPH hybrid inverters (device type 5). The vendor names
// the endpoints after the family's old "MIX" branding.
type SphService struct {
	session *Session
}

// SettingRead reads a single named parameter or a raw register range.
func (s *SphService) SettingRead(deviceSN string, opts SettingReadOptions) (*SettingReadResult, error) {
	paramID, start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("device_sn", deviceSN).
		set("paramId", paramID).
		setInt("startAddr", start).
		setInt("endAddr", end)

	body, err := s.session.post(sphSettingReadURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SettingReadResult](body)
}

// SettingWrite writes a named parameter or a raw register.
func (s *SphService) SettingWrite(deviceSN, parameterID string, values ...string) (*SettingWriteResult, error) {
	normalized, err := normalizeSettingValues(parameterID, values, mixSettingSlots)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("mix_sn", deviceSN).
		set("type", parameterID).
		setSettingValues(normalized)

	body, err := s.session.post(sphSettingWriteURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SettingWriteResult](body)
}

// Details returns static device information.
func (s *SphService) Details(deviceSN string) (*SphDetails, error) {
	body, err := s.session.get(sphDetailsURI, newParams().set("device_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[SphDetails](body)
}

// Energy returns the latest telemetry snapshot.
func (s *SphService) Energy(deviceSN string) (*SphEnergy, error) {
	body, err := s.session.post(sphEnergyURI, newParams().set("mix_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[SphEnergy](body)
}

// EnergyMultiple returns the latest telemetry for up to 100 devices at once.
func (s *SphService) EnergyMultiple(deviceSNs []string, page int) ([]BatchRecord[SphEnergyData], error) {
	serials, err := joinSerials(deviceSNs)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set(sphBatchListKey, serials).
		setPage("pageNum", page)

	body, err := s.session.post(sphEnergyBatchURI, form)
	if err != nil {
		return nil, err
	}

	return reshapeBatch[SphEnergyData](body, sphBatchListKey)
}

// EnergyHistory returns telemetry records for a date range of at most a week.
func (s *SphService) EnergyHistory(deviceSN string, opts HistoryOptions) (*SphEnergyHistory, error) {
	start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("mix_sn", deviceSN).
		setDate("start_date", start).
		setDate("end_date", end).
		setOptString("timezone_id", opts.Timezone).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(sphHistoryURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SphEnergyHistory](body)
}

// Alarms returns the alarms raised on one day.
func (s *SphService) Alarms(deviceSN string, opts AlarmOptions) (*SphAlarms, error) {
	form := newParams().
		set("mix_sn", deviceSN).
		setDate("date", resolveDate(opts.Date)).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(sphAlarmsURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SphAlarms](body)
}

// SphDetailData holds static device information of an SPH hybrid inverter.
type SphDetailData struct {
	ACChargeEnable            Bool       `json:"acChargeEnable"`
	ActiveRate                Float      `json:"activeRate"`
	Address                   Int        `json:"addr"`
	Alias                     String     `json:"alias"`
	BatAgingTestStep          Int        `json:"bagingTestStep"`
	BatParallelNum            Int        `json:"batParallelNum"`
	BatSeriesNum              Int        `json:"batSeriesNum"`
	BatTempLowerLimitC        Float      `json:"batTempLowerLimitC"`
	BatTempLowerLimitD        Float      `json:"batTempLowerLimitD"`
	BatTempUpperLimitC        Float      `json:"batTempUpperLimitC"`
	BatTempUpperLimitD        Float      `json:"batTempUpperLimitD"`
	BatteryType               Int        `json:"batteryType"`
	Baudrate                  Float      `json:"wselectBaudrate"`
	BctAdjust                 Int        `json:"bctAdjust"`
	BctMode                   Int        `json:"bctMode"`
	BuckUpsFunEn              Bool       `json:"buckUpsFunEn"`
	BuckUpsVoltSet            Float      `json:"buckUPSVoltSet"`
	ChargePowerCommand        Float      `json:"chargePowerCommand"`
	ChargeTime1               String     `json:"chargeTime1"`
	ChargeTime2               String     `json:"chargeTime2"`
	ChargeTime3               String     `json:"chargeTime3"`
	ComAddress                Int        `json:"comAddress"`
	CommunicationVersion      String     `json:"communicationVersion"`
	CountrySelected           Int        `json:"countrySelected"`
	DataloggerSN              String     `json:"dataLogSn"`
	DeviceType                Int        `json:"deviceType"`
	DischargePowerCommand     Float      `json:"disChargePowerCommand"`
	DischargeTime1            String     `json:"dischargeTime1"`
	DischargeTime2            String     `json:"dischargeTime2"`
	DischargeTime3            String     `json:"dischargeTime3"`
	Dtc                       Int        `json:"dtc"`
	EnergyDay                 Float      `json:"energyDay"`
	EnergyMonth               Float      `json:"energyMonth"`
	EpsFreqSet                Float      `json:"epsFreqSet"`
	EpsFunEn                  Bool       `json:"epsFunEn"`
	EpsVoltSet                Int        `json:"epsVoltSet"`
	ExportLimit               Int        `json:"exportLimit"`
	ExportLimitPowerRate      Float      `json:"exportLimitPowerRate"`
	FloatChargeCurrentLimit   Float      `json:"floatChargeCurrentLimit"`
	ForcedChargeStopSwitch1   Bool       `json:"forcedChargeStopSwitch1"`
	ForcedChargeStopSwitch2   Bool       `json:"forcedChargeStopSwitch2"`
	ForcedChargeStopSwitch3   Bool       `json:"forcedChargeStopSwitch3"`
	ForcedChargeTimeStart1    ForcedTime `json:"forcedChargeTimeStart1"`
	ForcedChargeTimeStart2    ForcedTime `json:"forcedChargeTimeStart2"`
	ForcedChargeTimeStart3    ForcedTime `json:"forcedChargeTimeStart3"`
	ForcedChargeTimeStop1     ForcedTime `json:"forcedChargeTimeStop1"`
	ForcedChargeTimeStop2     ForcedTime `json:"forcedChargeTimeStop2"`
	ForcedChargeTimeStop3     ForcedTime `json:"forcedChargeTimeStop3"`
	ForcedDischargeStop1      Bool       `json:"forcedDischargeStopSwitch1"`
	ForcedDischargeStop2      Bool       `json:"forcedDischargeStopSwitch2"`
	ForcedDischargeStop3      Bool       `json:"forcedDischargeStopSwitch3"`
	ForcedDischargeTimeStart1 ForcedTime `json:"forcedDischargeTimeStart1"`
	ForcedDischargeTimeStart2 ForcedTime `json:"forcedDischargeTimeStart2"`
	ForcedDischargeTimeStart3 ForcedTime `json:"forcedDischargeTimeStart3"`
	ForcedDischargeTimeStop1  ForcedTime `json:"forcedDischargeTimeStop1"`
	ForcedDischargeTimeStop2  ForcedTime `json:"forcedDischargeTimeStop2"`
	ForcedDischargeTimeStop3  ForcedTime `json:"forcedDischargeTimeStop3"`
	FwVersion                 String     `json:"fwVersion"`
	GroupID                   Int        `json:"groupId"`
	ImgPath                   String     `json:"imgPath"`
	InnerVersion              String     `json:"innerVersion"`
	LastUpdateTime            Timestamp  `json:"lastUpdateTime"`
	LastUpdateTimeText        Timestamp  `json:"lastUpdateTimeText"`
	LcdLanguage               Int        `json:"lcdLanguage"`
	Location                  String     `json:"location"`
	Lost                      Bool       `json:"lost"`
	LvVoltage                 Float      `json:"lvVoltage"`
	Manufacturer              String     `json:"manufacturer"`
	MixACDischargeFrequency   Float      `json:"mixAcDischargeFrequency"`
	MixACDischargeVoltage     Float      `json:"mixAcDischargeVoltage"`
	MixOffGridEnable          Bool       `json:"mixOffGridEnable"`
	ModbusVersion             Int        `json:"modbusVersion"`
	Model                     Int        `json:"model"`
	ModelText                 String     `json:"modelText"`
	OnOff                     Bool       `json:"onOff"`
	PCharge                   Float      `json:"pCharge"`
	PDischarge                Float      `json:"pDischarge"`
	ParentID                  String     `json:"parentID"`
	PlantID                   Int        `json:"plantId"`
	PlantName                 String     `json:"plantname"`
	Pmax                      Float      `json:"pmax"`
	PortName                  String     `json:"portName"`
	PowerFactor               Float      `json:"powerFactor"`
	PowerMax                  Float      `json:"powerMax"`
	PriorityChoose            Int        `json:"priorityChoose"`
	PvActivePRate             Float      `json:"pvActivePRate"`
	PvGridVoltageHigh         Float      `json:"pvGridVoltageHigh"`
	PvGridVoltageLow          Float      `json:"pvGridVoltageLow"`
	PvOnOff                   Bool       `json:"pvOnOff"`
	PvPfCmdMemoryState        Bool       `json:"pvPfCmdMemoryState"`
	PvPowerFactor             Float      `json:"pvPowerFactor"`
	PvReactivePRate           Float      `json:"pvReactivePRate"`
	ReactiveRate              Float      `json:"reactiveRate"`
	SerialNum                 String     `json:"serialNum"`
	Status                    Int        `json:"status"`
	StatusText                String     `json:"statusText"`
	SysTime                   Timestamp  `json:"sysTime"`
	TcpServerIP               String     `json:"tcpServerIp"`
	TreeID                    String     `json:"treeID"`
	TreeName                  String     `json:"treeName"`
	UnderExcited              Int        `json:"underExcited"`
	Updating                  Bool       `json:"updating"`
	UserName                  String     `json:"userName"`
	UspFreqSet                Int        `json:"uspFreqSet"`
	VbatStartForCharge        Float      `json:"vbatStartforCharge"`
	VbatStartForDischarge     Float      `json:"vbatStartForDischarge"`
	VbatStopForCharge         Float      `json:"vbatStopForCharge"`
	VbatStopForDischarge      Float      `json:"vbatStopForDischarge"`
	VbatWarnClr               Float      `json:"vbatWarnClr"`
	VbatWarning               Float      `json:"vbatWarning"`
	Vnormal                   Float      `json:"vnormal"`
	VoltageHighLimit          Float      `json:"voltageHighLimit"`
	VoltageLowLimit           Float      `json:"voltageLowLimit"`
	WChargeSOCLowLimit1       Float      `json:"wchargeSOCLowLimit1"`
	WChargeSOCLowLimit2       Float      `json:"wchargeSOCLowLimit2"`
	WDischargeSOCLowLimit1    Float      `json:"wdisChargeSOCLowLimit1"`
	WDischargeSOCLowLimit2    Float      `json:"wdisChargeSOCLowLimit2"`
}

// SphDetails is the response of the static-detail read.
type SphDetails struct {
	ResponseMeta
	Data         *SphDetailData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// SphEnergyData is one telemetry snapshot of an SPH hybrid inverter.
type SphEnergyData struct {
	ACChargeEnergyToday Float     `json:"acChargeEnergyToday"`
	ACChargeEnergyTotal Float     `json:"acChargeEnergyTotal"`
	ACChargePower       Float     `json:"acChargePower"`
	Address             Int       `json:"address"`
	Again               Bool      `json:"again"`
	Alias               String    `json:"alias"`
	BatteryTemperature  Float     `json:"batteryTemperature"`
	BatteryType         Int       `json:"batteryType"`
	BmsBatteryCurr      Float     `json:"bmsBatteryCurr"`
	BmsBatteryTemp      Float     `json:"bmsBatteryTemp"`
	BmsBatteryVolt      Float     `json:"bmsBatteryVolt"`
	BmsConstantVolt     Float     `json:"bmsConstantVolt"`
	BmsCycleCnt         Int       `json:"bmsCycleCnt"`
	BmsDeltaVolt        Float     `json:"bmsDeltaVolt"`
	BmsError            Int       `json:"bmsError"`
	BmsFw               String    `json:"bmsFW"`
	BmsGaugeFCC         Float     `json:"bmsGaugeFCC"`
	BmsGaugeRM          Float     `json:"bmsGaugeRM"`
	BmsInfo             Int       `json:"bmsInfo"`
	BmsMaxCurr          Float     `json:"bmsMaxCurr"`
	BmsMaxDischargeCurr Float     `json:"bmsMaxDischgCurr"`
	BmsMCUVersion       String    `json:"bmsMCUVersion"`
	BmsPackInfo         Int       `json:"bmsPackInfo"`
	BmsSOC              Float     `json:"bmsSOC"`
	BmsSOH              Float     `json:"bmsSOH"`
	BmsStatus           Int       `json:"bmsStatus"`
	BmsUsingCap         Float     `json:"bmsUsingCap"`
	BmsWarnInfo         Int       `json:"bmsWarnInfo"`
	Calendar            Timestamp `json:"calendar"`
	DataloggerSN        String    `json:"dataLogSn"`
	Day                 String    `json:"day"`
	EacToday            Float     `json:"eacToday"`
	EacTotal            Float     `json:"eacTotal"`
	ECharge1Today       Float     `json:"echarge1Today"`
	ECharge1Total       Float     `json:"echarge1Total"`
	EDischarge1Today    Float     `json:"edischargeToday"`
	EDischarge1Total    Float     `json:"edischargeTotal"`
	ELocalLoadToday     Float     `json:"elocalLoadToday"`
	ELocalLoadTotal     Float     `json:"elocalLoadTotal"`
	EToGridToday        Float     `json:"etoGridToday"`
	EToGridTotal        Float     `json:"etogridTotal"`
	EToUserToday        Float     `json:"etoUserToday"`
	EToUserTotal        Float     `json:"etoUserTotal"`
	Epv1Today           Float     `json:"epv1Today"`
	Epv1Total           Float     `json:"epv1Total"`
	Epv2Today           Float     `json:"epv2Today"`
	Epv2Total           Float     `json:"epv2Total"`
	EpvTotal            Float     `json:"epvTotal"`
	ErrorCode           Int       `json:"errorCode"`
	ErrorText           String    `json:"errorText"`
	Fac                 Float     `json:"fac"`
	FaultBitCode        Int       `json:"faultBitCode"`
	FaultCode           Int       `json:"faultCode"`
	Lost                Bool      `json:"lost"`
	Pac                 Float     `json:"pac"`
	Pac1                Float     `json:"pac1"`
	Pac2                Float     `json:"pac2"`
	Pac3                Float     `json:"pac3"`
	PacToGridR          Float     `json:"pacToGridR"`
	PacToGridTotal      Float     `json:"pacToGridTotal"`
	PacToUserR          Float     `json:"pacToUserR"`
	PacToUserTotal      Float     `json:"pacToUserTotal"`
	Pcharge1            Float     `json:"pcharge1"`
	Pdischarge1         Float     `json:"pdischarge1"`
	PlocalLoadR         Float     `json:"plocalLoadR"`
	PlocalLoadTotal     Float     `json:"plocalLoadTotal"`
	Ppv                 Float     `json:"ppv"`
	Ppv1                Float     `json:"ppv1"`
	Ppv2                Float     `json:"ppv2"`
	PriorityChoose      Int       `json:"priorityChoose"`
	DeviceSN            String    `json:"serialNum"`
	Soc                 Float     `json:"soc"`
	SocText             String    `json:"socText"`
	Status              Int       `json:"status"`
	StatusText          String    `json:"statusText"`
	SysEn               Int       `json:"sysEn"`
	SysFaultWord        Int       `json:"sysFaultWord"`
	SysFaultWord1       Int       `json:"sysFaultWord1"`
	Temp1               Float     `json:"temp1"`
	Temp2               Float     `json:"temp2"`
	Temp3               Float     `json:"temp3"`
	Time                Timestamp `json:"time"`
	TimeTotal           Float     `json:"timeTotal"`
	UpsFac              Float     `json:"upsFac"`
	UpsLoadPercent      Float     `json:"upsLoadpercent"`
	UpsPF               Float     `json:"upsPF"`
	UpsPac1             Float     `json:"upsPac1"`
	UpsPac2             Float     `json:"upsPac2"`
	UpsPac3             Float     `json:"upsPac3"`
	UpsVac1             Float     `json:"upsVac1"`
	UwSysWorkMode       Int       `json:"uwSysWorkMode"`
	VBatDsp             Float     `json:"vBatDsp"`
	VBus1               Float     `json:"vBus1"`
	VBus2               Float     `json:"vBus2"`
	Vac1                Float     `json:"vac1"`
	Vac2                Float     `json:"vac2"`
	Vac3                Float     `json:"vac3"`
	Vbat                Float     `json:"vbat"`
	Vpv1                Float     `json:"vpv1"`
	Vpv2                Float     `json:"vpv2"`
	WarnCode            Int       `json:"warnCode"`
	WarnText            String    `json:"warnText"`
	WithTime            Bool      `json:"withTime"`
}

// SphEnergy is the response of the latest-telemetry read.
type SphEnergy struct {
	ResponseMeta
	Data         *SphEnergyData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// SphEnergyHistoryData pages through historical telemetry records.
type SphEnergyHistoryData struct {
	Count           Int             `json:"count"`
	NextPageStartID Int             `json:"next_page_start_id"`
	DeviceSN        String          `json:"mix_sn"`
	DataloggerSN    String          `json:"datalogger_sn"`
	Datas           []SphEnergyData `json:"datas"`
}

// SphEnergyHistory is the response of the historical telemetry read.
type SphEnergyHistory struct {
	ResponseMeta
	Data *SphEnergyHistoryData `json:"data"`
}

// SphAlarmsData lists the alarms of one day.
type SphAlarmsData struct {
	Count    Int     `json:"count"`
	DeviceSN String  `json:"mix_sn"`
	Alarms   []Alarm `json:"alarms"`
}

// SphAlarms is the response of the alarm read.
type SphAlarms struct {
	ResponseMeta
	Data *SphAlarmsData `json:"data"`
}
