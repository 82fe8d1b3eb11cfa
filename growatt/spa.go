package growatt

const (
	spaSettingReadURI  = "readSpaParam"
	spaSettingWriteURI = "spaSet"
	spaDetailsURI      = "device/spa/spa_data_info"
	spaEnergyURI       = "device/spa/spa_last_data"
	spaAlarmsURI       = "device/spa/alarm_data"
)

// SpaService covers SPA AC-coupled storage inverters (device type 6). Batch
// telemetry and history share the SPH "mix" endpoints and model shapes.
type SpaService struct {
	session *Session
}

// SettingRead reads a single named parameter or a raw register range.
func (s *SpaService) SettingRead(deviceSN string, opts SettingReadOptions) (*SettingReadResult, error) {
	paramID, start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("device_sn", deviceSN).
		set("paramId", paramID).
		setInt("startAddr", start).
		setInt("endAddr", end)

	body, err := s.session.post(spaSettingReadURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SettingReadResult](body)
}

// SettingWrite writes a named parameter or a raw register.
func (s *SpaService) SettingWrite(deviceSN, parameterID string, values ...string) (*SettingWriteResult, error) {
	normalized, err := normalizeSettingValues(parameterID, values, mixSettingSlots)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("spa_sn", deviceSN).
		set("type", parameterID).
		setSettingValues(normalized)

	body, err := s.session.post(spaSettingWriteURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SettingWriteResult](body)
}

// Details returns static device information.
func (s *SpaService) Details(deviceSN string) (*SpaDetails, error) {
	body, err := s.session.get(spaDetailsURI, newParams().set("device_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[SpaDetails](body)
}

// Energy returns the latest telemetry snapshot.
func (s *SpaService) Energy(deviceSN string) (*SpaEnergy, error) {
	body, err := s.session.post(spaEnergyURI, newParams().set("spa_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[SpaEnergy](body)
}

// EnergyMultiple returns the latest telemetry for up to 100 devices at once
// (shared mix endpoint, SPH-shaped records).
func (s *SpaService) EnergyMultiple(deviceSNs []string, page int) ([]BatchRecord[SphEnergyData], error) {
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

// EnergyHistory returns telemetry records for a date range of at most a week
// (shared mix endpoint, SPH-shaped records).
func (s *SpaService) EnergyHistory(deviceSN string, opts HistoryOptions) (*SphEnergyHistory, error) {
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
func (s *SpaService) Alarms(deviceSN string, opts AlarmOptions) (*SpaAlarms, error) {
	form := newParams().
		set("spa_sn", deviceSN).
		setDate("date", resolveDate(opts.Date)).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(spaAlarmsURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[SpaAlarms](body)
}

// SpaDetailData holds static device information of an SPA storage inverter.
type SpaDetailData struct {
	ActivePRate             Float      `json:"activePRate"`
	Address                 Int        `json:"addr"`
	Alias                   String     `json:"alias"`
	BatAgingTestStep        Int        `json:"bagingTestStep"`
	BatTempLowerLimitC      Float      `json:"batTempLowerLimitC"`
	BatTempLowerLimitD      Float      `json:"batTempLowerLimitD"`
	BatTempUpperLimitC      Float      `json:"batTempUpperLimitC"`
	BatTempUpperLimitD      Float      `json:"batTempUpperLimitD"`
	BatteryType             Int        `json:"batteryType"`
	Baudrate                Float      `json:"wselectBaudrate"`
	BctAdjust               Int        `json:"bctAdjust"`
	BctMode                 Int        `json:"bctMode"`
	BuckUpsFunEn            Bool       `json:"buckUpsFunEn"`
	BuckUpsVoltSet          Float      `json:"buckUPSVoltSet"`
	ChargePowerCommand      Float      `json:"chargePowerCommand"`
	ChargeTime1             String     `json:"chargeTime1"`
	ChargeTime2             String     `json:"chargeTime2"`
	ChargeTime3             String     `json:"chargeTime3"`
	ComAddress              Int        `json:"comAddress"`
	CommunicationVersion    String     `json:"communicationVersion"`
	CountrySelected         Int        `json:"countrySelected"`
	DataloggerSN            String     `json:"dataLogSn"`
	DischargePowerCommand   Float      `json:"disChargePowerCommand"`
	DischargeTime1          String     `json:"dischargeTime1"`
	DischargeTime2          String     `json:"dischargeTime2"`
	DischargeTime3          String     `json:"dischargeTime3"`
	Dtc                     Int        `json:"dtc"`
	EnergyDay               Float      `json:"energyDay"`
	EnergyMonth             Float      `json:"energyMonth"`
	EpsFreqSet              Float      `json:"epsFreqSet"`
	EpsFunEn                Bool       `json:"epsFunEn"`
	EpsVoltSet              Int        `json:"epsVoltSet"`
	EquipmentType           String     `json:"equipmentType"`
	FloatChargeCurrentLimit Float      `json:"floatChargeCurrentLimit"`
	ForcedChargeTimeStart1  ForcedTime `json:"forcedChargeTimeStart1"`
	ForcedChargeTimeStart2  ForcedTime `json:"forcedChargeTimeStart2"`
	ForcedChargeTimeStart3  ForcedTime `json:"forcedChargeTimeStart3"`
	ForcedChargeTimeStop1   ForcedTime `json:"forcedChargeTimeStop1"`
	ForcedChargeTimeStop2   ForcedTime `json:"forcedChargeTimeStop2"`
	ForcedChargeTimeStop3   ForcedTime `json:"forcedChargeTimeStop3"`
	FwVersion               String     `json:"fwVersion"`
	GroupID                 Int        `json:"groupId"`
	ImgPath                 String     `json:"imgPath"`
	InnerVersion            String     `json:"innerVersion"`
	LastUpdateTime          Timestamp  `json:"lastUpdateTime"`
	LastUpdateTimeText      Timestamp  `json:"lastUpdateTimeText"`
	LcdLanguage             Int        `json:"lcdLanguage"`
	LoadFirstStartTime1     ForcedTime `json:"loadFirstStartTime1"`
	LoadFirstStopTime1      ForcedTime `json:"loadFirstStopTime1"`
	LoadFirstSwitch1        Bool       `json:"loadFirstSwitch1"`
	Location                String     `json:"location"`
	Lost                    Bool       `json:"lost"`
	Manufacturer            String     `json:"manufacturer"`
	ModbusVersion           Int        `json:"modbusVersion"`
	Model                   Int        `json:"model"`
	ModelText               String     `json:"modelText"`
	OnOff                   Bool       `json:"onOff"`
	PCharge                 Float      `json:"pCharge"`
	PDischarge              Float      `json:"pDischarge"`
	ParentID                String     `json:"parentID"`
	PfCmdMemoryState        Bool       `json:"pfCmdMemoryState"`
	PlantID                 Int        `json:"plantId"`
	PlantName               String     `json:"plantname"`
	Pmax                    Float      `json:"pmax"`
	PortName                String     `json:"portName"`
	PowerFactor             Float      `json:"powerFactor"`
	PowerMax                Float      `json:"powerMax"`
	PriorityChoose          Int        `json:"priorityChoose"`
	SerialNum               String     `json:"serialNum"`
	SpaACDischargeFrequency Float      `json:"spaAcDischargeFrequency"`
	SpaACDischargeVoltage   Float      `json:"spaAcDischargeVoltage"`
	SpaOffGridEnable        Bool       `json:"spaOffGridEnable"`
	Status                  Int        `json:"status"`
	StatusText              String     `json:"statusText"`
	SysTime                 Timestamp  `json:"sysTime"`
	TcpServerIP             String     `json:"tcpServerIp"`
	TreeID                  String     `json:"treeID"`
	TreeName                String     `json:"treeName"`
	Updating                Bool       `json:"updating"`
	UserName                String     `json:"userName"`
	VacHigh                 Float      `json:"vacHigh"`
	VacLow                  Float      `json:"vacLow"`
	VbatStartForCharge      Float      `json:"vbatStartforCharge"`
	VbatStartForDischarge   Float      `json:"vbatStartForDischarge"`
	VbatStopForCharge       Float      `json:"vbatStopForCharge"`
	VbatStopForDischarge    Float      `json:"vbatStopForDischarge"`
	VbatWarnClr             Float      `json:"vbatWarnClr"`
	VbatWarning             Float      `json:"vbatWarning"`
	WChargeSOCLowLimit1     Float      `json:"wchargeSOCLowLimit1"`
	WChargeSOCLowLimit2     Float      `json:"wchargeSOCLowLimit2"`
	WDischargeSOCLowLimit1  Float      `json:"wdisChargeSOCLowLimit1"`
	WDischargeSOCLowLimit2  Float      `json:"wdisChargeSOCLowLimit2"`
}

// SpaDetails is the response of the static-detail read.
type SpaDetails struct {
	ResponseMeta
	Data         *SpaDetailData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// SpaEnergyData is one telemetry snapshot of an SPA storage inverter.
type SpaEnergyData struct {
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
	EpvInverterToday    Float     `json:"epvInverterToday"`
	EpvInverterTotal    Float     `json:"epvInverterTotal"`
	ErrorCode           Int       `json:"errorCode"`
	ErrorText           String    `json:"errorText"`
	Fac                 Float     `json:"fac"`
	FaultBitCode        Int       `json:"faultBitCode"`
	FaultCode           Int       `json:"faultCode"`
	Lost                Bool      `json:"lost"`
	Pac                 Float     `json:"pac"`
	Pac1                Float     `json:"pac1"`
	PacToGridR          Float     `json:"pacToGridR"`
	PacToGridTotal      Float     `json:"pacToGridTotal"`
	PacToUserR          Float     `json:"pacToUserR"`
	PacToUserTotal      Float     `json:"pacToUserTotal"`
	Pcharge1            Float     `json:"pcharge1"`
	Pdischarge1         Float     `json:"pdischarge1"`
	PlocalLoadR         Float     `json:"plocalLoadR"`
	PlocalLoadTotal     Float     `json:"plocalLoadTotal"`
	PpvInverter         Float     `json:"ppvInverter"`
	PriorityChoose      Int       `json:"priorityChoose"`
	DeviceSN            String    `json:"spa_sn"`
	Soc                 Float     `json:"soc"`
	SocText             String    `json:"socText"`
	Status              Int       `json:"status"`
	StatusText          String    `json:"statusText"`
	SysEn               Int       `json:"sysEn"`
	SysFaultWord        Int       `json:"sysFaultWord"`
	SysFaultWord1       Int       `json:"sysFaultWord1"`
	Temp1               Float     `json:"temp1"`
	Temp2               Float     `json:"temp2"`
	Time                Timestamp `json:"time"`
	TimeTotal           Float     `json:"timeTotal"`
	UpsFac              Float     `json:"upsFac"`
	UpsLoadPercent      Float     `json:"upsLoadpercent"`
	UpsPF               Float     `json:"upsPF"`
	UpsPac1             Float     `json:"upsPac1"`
	UpsVac1             Float     `json:"upsVac1"`
	UwSysWorkMode       Int       `json:"uwSysWorkMode"`
	VBatDsp             Float     `json:"vBatDsp"`
	VBus1               Float     `json:"vBus1"`
	VBus2               Float     `json:"vBus2"`
	Vac1                Float     `json:"vac1"`
	Vbat                Float     `json:"vbat"`
	WarnCode            Int       `json:"warnCode"`
	WarnText            String    `json:"warnText"`
	WithTime            Bool      `json:"withTime"`
}

// SpaEnergy is the response of the latest-telemetry read.
type SpaEnergy struct {
	ResponseMeta
	Data         *SpaEnergyData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// SpaAlarmsData lists the alarms of one day.
type SpaAlarmsData struct {
	Count    Int     `json:"count"`
	DeviceSN String  `json:"spa_sn"`
	Alarms   []Alarm `json:"alarms"`
}

// SpaAlarms is the response of the alarm read.
type SpaAlarms struct {
	ResponseMeta
	Data *SpaAlarmsData `json:"data"`
}
