package growatt

const (
	minSettingsURI     = "device/tlx/tlx_set_info"
	minSettingReadURI  = "readMinParam"
	minSettingWriteURI = "tlxSet"
	minDetailsURI      = "device/tlx/tlx_data_info"
	minEnergyURI       = "device/tlx/tlx_last_data"
	minEnergyBatchURI  = "device/tlx/tlxs_data"
	minHistoryURI      = "device/tlx/tlx_data"
	minAlarmsURI       = "device/tlx/alarm_data"

	minBatchListKey = "tlxs"
)

// MinService covers MIN/TLX-series inverters. The vendor routes this family
// through the "tlx" endpoints; MAX and GroBoost devices reuse several of them.
type MinService struct {
	session *Session
}

// Settings reads the full on-device setting block.
func (s *MinService) Settings(deviceSN string) (*MinSettings, error) {
	body, err := s.session.get(minSettingsURI, newParams().set("device_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[MinSettings](body)
}

// SettingRead reads a single named parameter or a raw register range.
func (s *MinService) SettingRead(deviceSN string, opts SettingReadOptions) (*SettingReadResult, error) {
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

// SettingWrite writes a named parameter (or, with parameter ID "set_any_reg",
// a raw register). Values are sent as param1..param19, unset slots as "".
func (s *MinService) SettingWrite(deviceSN, parameterID string, values ...string) (*SettingWriteResult, error) {
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
func (s *MinService) Details(deviceSN string) (*MinDetails, error) {
	body, err := s.session.get(minDetailsURI, newParams().set("device_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[MinDetails](body)
}

// Energy returns the latest telemetry snapshot.
func (s *MinService) Energy(deviceSN string) (*MinEnergy, error) {
	body, err := s.session.post(minEnergyURI, newParams().set("tlx_sn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[MinEnergy](body)
}

// EnergyMultiple returns the latest telemetry for up to 100 devices at once.
func (s *MinService) EnergyMultiple(deviceSNs []string, page int) ([]BatchRecord[MinEnergyData], error) {
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

// EnergyHistory returns telemetry records for a date range of at most a week.
func (s *MinService) EnergyHistory(deviceSN string, opts HistoryOptions) (*MinEnergyHistory, error) {
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
func (s *MinService) Alarms(deviceSN string, opts AlarmOptions) (*MinAlarms, error) {
	form := newParams().
		set("tlx_sn", deviceSN).
		setDate("date", resolveDate(opts.Date)).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(minAlarmsURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[MinAlarms](body)
}

// MinSettingsData is the on-device setting block of a MIN inverter. Field
// names follow the vendor's wire spelling, which is camelCase with a number
// of historical irregularities (disChargePowerCommand, uwHFRTEE, ...).
type MinSettingsData struct {
	ACCharge                       String     `json:"acCharge"`
	ACChargeEnable                 Bool       `json:"acChargeEnable"`
	ActivePowerEnable              Bool       `json:"activePowerEnable"`
	ActiveRate                     Float      `json:"activeRate"`
	AfciEnabled                    Int        `json:"afciEnabled"`
	AfciReset                      Int        `json:"afciReset"`
	AfciSelfCheck                  Int        `json:"afciSelfCheck"`
	AfciThresholdD                 Int        `json:"afciThresholdD"`
	AfciThresholdH                 Int        `json:"afciThresholdH"`
	AfciThresholdL                 Int        `json:"afciThresholdL"`
	BackflowDefaultPower           Float      `json:"backflowDefaultPower"`
	BackflowSingleCtrl             Int        `json:"backFlowSingleCtrl"`
	BdcMode                        Int        `json:"bdcMode"`
	BgridType                      Int        `json:"bgridType"`
	BsystemWorkMode                Float      `json:"bsystemWorkMode"`
	ChargePower                    Float      `json:"chargePower"`
	ChargePowerCommand             Float      `json:"chargePowerCommand"`
	ChargeStopSOC                  Float      `json:"chargeStopSoc"`
	CompatibleFlag                 Int        `json:"compatibleFlag"`
	DelayTime                      Int        `json:"delayTime"`
	DemandManageEnable             Int        `json:"demandManageEnable"`
	DischargePower                 String     `json:"dischargePower"`
	DischargePowerCommand          Float      `json:"disChargePowerCommand"`
	DischargeStopSOC               Float      `json:"dischargeStopSoc"`
	DryContactFuncEn               Bool       `json:"dryContactFuncEn"`
	DryContactOffRate              Float      `json:"dryContactOffRate"`
	DryContactOnRate               Float      `json:"dryContactOnRate"`
	DryContactPower                Float      `json:"dryContactPower"`
	EnableNLine                    Int        `json:"enableNLine"`
	EpsFreqSet                     Float      `json:"epsFreqSet"`
	EpsFunEn                       Bool       `json:"epsFunEn"`
	EpsVoltSet                     Int        `json:"epsVoltSet"`
	ExportLimit                    Int        `json:"exportLimit"`
	ExportLimitPowerRate           Float      `json:"exportLimitPowerRate"`
	ExterCommOffGridEn             Bool       `json:"exterCommOffGridEn"`
	FailSafeCurr                   Float      `json:"failSafeCurr"`
	FloatChargeCurrentLimit        Float      `json:"floatChargeCurrentLimit"`
	ForcedStopSwitch1              Int        `json:"forcedStopSwitch1"`
	ForcedStopSwitch2              Int        `json:"forcedStopSwitch2"`
	ForcedStopSwitch3              Int        `json:"forcedStopSwitch3"`
	ForcedStopSwitch4              Int        `json:"forcedStopSwitch4"`
	ForcedStopSwitch5              Int        `json:"forcedStopSwitch5"`
	ForcedStopSwitch6              Int        `json:"forcedStopSwitch6"`
	ForcedStopSwitch7              Int        `json:"forcedStopSwitch7"`
	ForcedStopSwitch8              Int        `json:"forcedStopSwitch8"`
	ForcedStopSwitch9              Int        `json:"forcedStopSwitch9"`
	ForcedTimeStart1               ForcedTime `json:"forcedTimeStart1"`
	ForcedTimeStart2               ForcedTime `json:"forcedTimeStart2"`
	ForcedTimeStart3               ForcedTime `json:"forcedTimeStart3"`
	ForcedTimeStart4               ForcedTime `json:"forcedTimeStart4"`
	ForcedTimeStart5               ForcedTime `json:"forcedTimeStart5"`
	ForcedTimeStart6               ForcedTime `json:"forcedTimeStart6"`
	ForcedTimeStart7               ForcedTime `json:"forcedTimeStart7"`
	ForcedTimeStart8               ForcedTime `json:"forcedTimeStart8"`
	ForcedTimeStart9               ForcedTime `json:"forcedTimeStart9"`
	ForcedTimeStop1                ForcedTime `json:"forcedTimeStop1"`
	ForcedTimeStop2                ForcedTime `json:"forcedTimeStop2"`
	ForcedTimeStop3                ForcedTime `json:"forcedTimeStop3"`
	ForcedTimeStop4                ForcedTime `json:"forcedTimeStop4"`
	ForcedTimeStop5                ForcedTime `json:"forcedTimeStop5"`
	ForcedTimeStop6                ForcedTime `json:"forcedTimeStop6"`
	ForcedTimeStop7                ForcedTime `json:"forcedTimeStop7"`
	ForcedTimeStop8                ForcedTime `json:"forcedTimeStop8"`
	ForcedTimeStop9                ForcedTime `json:"forcedTimeStop9"`
	FrequencyHighLimit             Float      `json:"frequencyHighLimit"`
	FrequencyLowLimit              Float      `json:"frequencyLowLimit"`
	GenChargeEnable                Int        `json:"genChargeEnable"`
	GenCtrl                        Int        `json:"genCtrl"`
	GenRatedPower                  Float      `json:"genRatedPower"`
	LastUpdateTime                 Timestamp  `json:"lastUpdateTime"`
	LastUpdateTimeText             Timestamp  `json:"lastUpdateTimeText"`
	LcdLanguage                    Int        `json:"lcdLanguage"`
	LimitDevice                    Float      `json:"limitDevice"`
	LoadingRate                    Float      `json:"loadingRate"`
	MaintainModeRequest            Int        `json:"maintainModeRequest"`
	MaxAllowCurr                   Float      `json:"maxAllowCurr"`
	OnGridDischargeStopSOC         Float      `json:"onGridDischargeStopSOC"`
	OnGridMode                     Int        `json:"onGridMode"`
	OnGridStatus                   Int        `json:"onGridStatus"`
	OnOff                          Bool       `json:"onOff"`
	OverFreDropPoint               Float      `json:"overFreDropPoint"`
	OverFreLoRedDelayTime          Float      `json:"overFreLoRedDelayTime"`
	OverFreLoRedSlope              Float      `json:"overFreLoRedSlope"`
	PeakShavingEnable              Float      `json:"peakShavingEnable"`
	Pf                             Float      `json:"pf"`
	PfModel                        Float      `json:"pfModel"`
	PfSysYear                      String     `json:"pfSysYear"`
	Pflinep1Lp                     Float      `json:"pflinep1Lp"`
	Pflinep1Pf                     Float      `json:"pflinep1Pf"`
	Pflinep2Lp                     Float      `json:"pflinep2Lp"`
	Pflinep2Pf                     Float      `json:"pflinep2Pf"`
	Pflinep3Lp                     Float      `json:"pflinep3Lp"`
	Pflinep3Pf                     Float      `json:"pflinep3Pf"`
	Pflinep4Lp                     Float      `json:"pflinep4Lp"`
	Pflinep4Pf                     Float      `json:"pflinep4Pf"`
	PowerDownEnable                Int        `json:"powerDownEnable"`
	PvGridFrequencyHigh            Float      `json:"pvGridFrequencyHigh"`
	PvGridFrequencyLow             Float      `json:"pvGridFrequencyLow"`
	PvGridVoltageHigh              Float      `json:"pvGridVoltageHigh"`
	PvGridVoltageLow               Float      `json:"pvGridVoltageLow"`
	PvPfCmdMemoryState             Bool       `json:"pvPfCmdMemoryState"`
	QPercentMax                    Float      `json:"qPercentMax"`
	QvH1                           Float      `json:"qvH1"`
	QvH2                           Float      `json:"qvH2"`
	QvL1                           Float      `json:"qvL1"`
	QvL2                           Float      `json:"qvL2"`
	ReactiveRate                   Float      `json:"reactiveRate"`
	Region                         Int        `json:"region"`
	RestartLoadingRate             Float      `json:"restartLoadingRate"`
	SafetyCorrespondNum            Float      `json:"safetyCorrespondNum"`
	SafetyNum                      Float      `json:"safetyNum"`
	SerialNum                      String     `json:"serialNum"`
	ShowPeakShaving                Int        `json:"showPeakShaving"`
	SysTime                        Timestamp  `json:"sysTime"`
	SysTimeText                    Timestamp  `json:"sysTimeText"`
	Time1Mode                      Int        `json:"time1Mode"`
	Time2Mode                      Int        `json:"time2Mode"`
	Time3Mode                      Int        `json:"time3Mode"`
	Time4Mode                      Int        `json:"time4Mode"`
	Time5Mode                      Int        `json:"time5Mode"`
	Time6Mode                      Int        `json:"time6Mode"`
	Time7Mode                      Int        `json:"time7Mode"`
	Time8Mode                      Int        `json:"time8Mode"`
	Time9Mode                      Int        `json:"time9Mode"`
	TlxExterCommOffGridEn          String     `json:"tlx_exter_comm_Off_GridEn"`
	TlxLcdLanguage                 Int        `json:"tlx_lcd_Language"`
	TlxOffGridEnable               Int        `json:"tlxOffGridEnable"`
	TlxOnOff                       Int        `json:"tlxOnOff"`
	TlxPf                          Float      `json:"tlxPf"`
	UbACChargingStopSOC            Float      `json:"ubAcChargingStopSOC"`
	UbPeakShavingBackupSOC         Float      `json:"ubPeakShavingBackupSOC"`
	UsBatteryType                  Int        `json:"usBatteryType"`
	UwACChargingMaxPowerLimit      Float      `json:"uwAcChargingMaxPowerLimit"`
	UwDemandMgtDownStrmPowerLimit  Float      `json:"uwDemandMgtDownStrmPowerLimit"`
	UwDemandMgtRevsePowerLimit     Float      `json:"uwDemandMgtRevsePowerLimit"`
	UwHFRT2EE                      Float      `json:"uwHFRT2EE"`
	UwHFRTEE                       Float      `json:"uwHFRTEE"`
	UwHVRT2EE                      Float      `json:"uwHVRT2EE"`
	UwHVRTEE                       Float      `json:"uwHVRTEE"`
	UwLFRT2EE                      Float      `json:"uwLFRT2EE"`
	UwLFRTEE                       Float      `json:"uwLFRTEE"`
	UwLVRT2EE                      Float      `json:"uwLVRT2EE"`
	UwLVRTEE                       Float      `json:"uwLVRTEE"`
	VbatStartForCharge             Float      `json:"vbatStartforCharge"`
	VbatStartForDischarge          Float      `json:"vbatStartForDischarge"`
	VbatStopForCharge              Float      `json:"vbatStopForCharge"`
	VbatStopForDischarge           Float      `json:"vbatStopForDischarge"`
	VbatWarnClr                    Float      `json:"vbatWarnClr"`
	VbatWarning                    Int        `json:"vbatWarning"`
	VoltageHighLimit               Float      `json:"voltageHighLimit"`
	VoltageLowLimit                Float      `json:"voltageLowLimit"`
	WChargeSOCLowLimit             Float      `json:"wchargeSOCLowLimit"`
	WDischargeSOCLowLimit          Float      `json:"wdisChargeSOCLowLimit"`
	WinModeEndTime                 String     `json:"winModeEndTime"`
	WinModeFlag                    Int        `json:"winModeFlag"`
	WinModeOffGridDischargeStopSOC Float      `json:"winModeOffGridDischargeStopSOC"`
	WinModeOnGridDischargeStopSOC  Float      `json:"winModeOnGridDischargeStopSOC"`
	WinModeStartTime               String     `json:"winModeStartTime"`
}

// MinSettings is the response of the setting-block read.
type MinSettings struct {
	ResponseMeta
	Data         *MinSettingsData `json:"data"`
	DataloggerSN String           `json:"datalogger_sn"`
	DeviceSN     String           `json:"device_sn"`
}

// MinDetailData holds static device information of a MIN inverter.
type MinDetailData struct {
	Address             Int       `json:"addr"`
	AfciVersion         String    `json:"afciVersion"`
	Alias               String    `json:"alias"`
	BatAgingTestStep    Int       `json:"bagingTestStep"`
	BatParallelNum      Int       `json:"batParallelNum"`
	BatSeriesNum        Int       `json:"batSeriesNum"`
	BatSysEnergy        Float     `json:"batSysEnergy"`
	BatTempLowerLimitC  Float     `json:"batTempLowerLimitC"`
	BatTempLowerLimitD  Float     `json:"batTempLowerLimitD"`
	BatTempUpperLimitC  Float     `json:"batTempUpperLimitC"`
	BatTempUpperLimitD  Float     `json:"batTempUpperLimitD"`
	BatteryType         Int       `json:"batteryType"`
	Baudrate            Float     `json:"wselectBaudrate"`
	BctAdjust           Int       `json:"bctAdjust"`
	BctMode             Int       `json:"bctMode"`
	BdcAuthVersion      Int       `json:"bdcAuthversion"`
	Children            []String  `json:"children"`
	CommunicationVer    String    `json:"communicationVersion"`
	Country             String    `json:"country"`
	DataloggerSN        String    `json:"dataLogSn"`
	DeviceType          Int       `json:"deviceType"`
	EToday              Float     `json:"eToday"`
	ETotal              Float     `json:"eTotal"`
	EnergyDay           Float     `json:"energyDay"`
	EnergyMonth         Float     `json:"energyMonth"`
	FwVersion           String    `json:"fwVersion"`
	GroupID             Int       `json:"groupId"`
	ImgPath             String    `json:"imgPath"`
	InnerVersion        String    `json:"innerVersion"`
	LastUpdateTime      Timestamp `json:"lastUpdateTime"`
	LastUpdateTimeText  Timestamp `json:"lastUpdateTimeText"`
	Location            String    `json:"location"`
	Lost                Bool      `json:"lost"`
	Model               Int       `json:"model"`
	ModelText           String    `json:"modelText"`
	ParentID            String    `json:"parentID"`
	PlantID             Int       `json:"plantId"`
	PlantName           String    `json:"plantname"`
	Pmax                Float     `json:"pmax"`
	PortName            String    `json:"portName"`
	Power               Float     `json:"power"`
	RecordText          String    `json:"recordText"`
	SerialNum           String    `json:"serialNum"`
	Status              Int       `json:"status"`
	StatusText          String    `json:"statusText"`
	TcpServerIP         String    `json:"tcpServerIp"`
	Timezone            Float     `json:"timezone"`
	TrackerModel        Int       `json:"trakerModel"`
	TreeID              String    `json:"treeID"`
	TreeName            String    `json:"treeName"`
	UpdateExist         Bool      `json:"updateExist"`
	UserName            String    `json:"userName"`
	VbatStartForCharge  Float     `json:"vbatStartforCharge"`
	VbatStopForCharge   Float     `json:"vbatStopForCharge"`
	VnormMax            Float     `json:"vnormMax"`
	VnormMin            Float     `json:"vnormMin"`
}

// MinDetails is the response of the static-detail read.
type MinDetails struct {
	ResponseMeta
	Data         *MinDetailData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// MinEnergyData is one telemetry snapshot of a MIN inverter, either the
// latest one or a historical record.
type MinEnergyData struct {
	Address             Int       `json:"address"`
	Again               Bool      `json:"again"`
	Alias               String    `json:"alias"`
	BatterySN           String    `json:"batterySN"`
	Bdc1ChargePower     Float     `json:"bdc1ChargePower"`
	Bdc1ChargeTotal     Float     `json:"bdc1ChargeTotal"`
	Bdc1DischargePower  Float     `json:"bdc1DischargePower"`
	Bdc1DischargeTotal  Float     `json:"bdc1DischargeTotal"`
	Bdc1FaultType       Int       `json:"bdc1FaultType"`
	Bdc1Ibat            Float     `json:"bdc1Ibat"`
	Bdc1Mode            Int       `json:"bdc1Mode"`
	Bdc1Soc             Float     `json:"bdc1Soc"`
	Bdc1Status          Int       `json:"bdc1Status"`
	Bdc1Temp1           Float     `json:"bdc1Temp1"`
	Bdc1Temp2           Float     `json:"bdc1Temp2"`
	Bdc1Vbat            Float     `json:"bdc1Vbat"`
	Bdc1WarnCode        Int       `json:"bdc1WarnCode"`
	BdcStatus           Int       `json:"bdcStatus"`
	BmsError2           Int       `json:"bmsError2"`
	BmsFaultType        Int       `json:"bmsFaultType"`
	BmsFwVersion        String    `json:"bmsFwVersion"`
	BmsIbat             Float     `json:"bmsIbat"`
	BmsMaxCurr          Float     `json:"bmsMaxCurr"`
	BmsSoc              Float     `json:"bmsSoc"`
	BmsSoh              Float     `json:"bmsSoh"`
	BmsStatus           Int       `json:"bmsStatus"`
	BmsVbat             Float     `json:"bmsVbat"`
	BmsWarnCode         Int       `json:"bmsWarnCode"`
	Calendar            Timestamp `json:"calendar"`
	DataloggerSN        String    `json:"dataLogSn"`
	Day                 String    `json:"day"`
	DcVoltage           Float     `json:"dcVoltage"`
	DeratingMode        Int       `json:"deratingMode"`
	DryContactStatus    Int       `json:"dryContactStatus"`
	EacChargeToday      Float     `json:"eacChargeToday"`
	EacChargeTotal      Float     `json:"eacChargeTotal"`
	EacToday            Float     `json:"eacToday"`
	EacTotal            Float     `json:"eacTotal"`
	EChargeToday        Float     `json:"echargeToday"`
	EChargeTotal        Float     `json:"echargeTotal"`
	EDischargeToday     Float     `json:"edischargeToday"`
	EDischargeTotal     Float     `json:"edischargeTotal"`
	ELocalLoadToday     Float     `json:"elocalLoadToday"`
	ELocalLoadTotal     Float     `json:"elocalLoadTotal"`
	EpsFac              Float     `json:"epsFac"`
	EpsIac1             Float     `json:"epsIac1"`
	EpsPac              Float     `json:"epsPac"`
	EpsPac1             Float     `json:"epsPac1"`
	EpsPf               Float     `json:"epsPf"`
	EpsVac1             Float     `json:"epsVac1"`
	Epv1Today           Float     `json:"epv1Today"`
	Epv1Total           Float     `json:"epv1Total"`
	Epv2Today           Float     `json:"epv2Today"`
	Epv2Total           Float     `json:"epv2Total"`
	Epv3Today           Float     `json:"epv3Today"`
	Epv3Total           Float     `json:"epv3Total"`
	Epv4Today           Float     `json:"epv4Today"`
	Epv4Total           Float     `json:"epv4Total"`
	EpvTotal            Float     `json:"epvTotal"`
	ErrorText           String    `json:"errorText"`
	ESelfToday          Float     `json:"eselfToday"`
	ESelfTotal          Float     `json:"eselfTotal"`
	ESystemToday        Float     `json:"esystemToday"`
	ESystemTotal        Float     `json:"esystemTotal"`
	EToGridToday        Float     `json:"etoGridToday"`
	EToGridTotal        Float     `json:"etoGridTotal"`
	EToUserToday        Float     `json:"etoUserToday"`
	EToUserTotal        Float     `json:"etoUserTotal"`
	Fac                 Float     `json:"fac"`
	FaultType           Int       `json:"faultType"`
	Gfci                Float     `json:"gfci"`
	Iac1                Float     `json:"iac1"`
	Iac2                Float     `json:"iac2"`
	Iac3                Float     `json:"iac3"`
	InvDelayTime        Float     `json:"invDelayTime"`
	Ipv1                Float     `json:"ipv1"`
	Ipv2                Float     `json:"ipv2"`
	Ipv3                Float     `json:"ipv3"`
	Ipv4                Float     `json:"ipv4"`
	IsAgain             Bool      `json:"isAgain"`
	Iso                 Float     `json:"iso"`
	LoadPercent         Float     `json:"loadPercent"`
	Lost                Bool      `json:"lost"`
	NBusVoltage         Float     `json:"nBusVoltage"`
	OpFullwatt          Float     `json:"opFullwatt"`
	OperatingMode       Int       `json:"operatingMode"`
	PBusVoltage         Float     `json:"pBusVoltage"`
	Pac                 Float     `json:"pac"`
	Pac1                Float     `json:"pac1"`
	Pac2                Float     `json:"pac2"`
	Pac3                Float     `json:"pac3"`
	PacToGridTotal      Float     `json:"pacToGridTotal"`
	PacToLocalLoad      Float     `json:"pacToLocalLoad"`
	PacToUserTotal      Float     `json:"pacToUserTotal"`
	Pf                  Float     `json:"pf"`
	Ppv                 Float     `json:"ppv"`
	Ppv1                Float     `json:"ppv1"`
	Ppv2                Float     `json:"ppv2"`
	Ppv3                Float     `json:"ppv3"`
	Ppv4                Float     `json:"ppv4"`
	PSelf               Float     `json:"pself"`
	PSystem             Float     `json:"psystem"`
	RealOpPercent       Float     `json:"realOPPercent"`
	SerialNum           String    `json:"serialNum"`
	Soc1                Float     `json:"soc1"`
	Soc2                Float     `json:"soc2"`
	Status              Int       `json:"status"`
	StatusText          String    `json:"statusText"`
	SysFaultWord        Int       `json:"sysFaultWord"`
	SysFaultWord1       Int       `json:"sysFaultWord1"`
	Temp1               Float     `json:"temp1"`
	Temp2               Float     `json:"temp2"`
	Temp3               Float     `json:"temp3"`
	Temp4               Float     `json:"temp4"`
	Temp5               Float     `json:"temp5"`
	Time                Timestamp `json:"time"`
	TimeTotal           Float     `json:"timeTotal"`
	TotalWorkingTime    Float     `json:"totalWorkingTime"`
	UwSysWorkMode       Int       `json:"uwSysWorkMode"`
	Vac1                Float     `json:"vac1"`
	Vac2                Float     `json:"vac2"`
	Vac3                Float     `json:"vac3"`
	VacRs               Float     `json:"vacRs"`
	VacSt               Float     `json:"vacSt"`
	VacTr               Float     `json:"vacTr"`
	Vpv1                Float     `json:"vpv1"`
	Vpv2                Float     `json:"vpv2"`
	Vpv3                Float     `json:"vpv3"`
	Vpv4                Float     `json:"vpv4"`
	WarnCode            Int       `json:"warnCode"`
	WarnCode1           Int       `json:"warnCode1"`
	WarnText            String    `json:"warnText"`
	WinMode             Int       `json:"winMode"`
	WinOffGridSOC       Float     `json:"winOffGridSOC"`
	WinOnGridSOC        Float     `json:"winOnGridSOC"`
	WinRequest          Int       `json:"winRequest"`
	WithTime            Bool      `json:"withTime"`
}

// MinEnergy is the response of the latest-telemetry read.
type MinEnergy struct {
	ResponseMeta
	Data         *MinEnergyData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// MinEnergyHistoryData pages through historical telemetry records.
type MinEnergyHistoryData struct {
	Count           Int             `json:"count"`
	NextPageStartID Int             `json:"next_page_start_id"`
	DeviceSN        String          `json:"tlx_sn"`
	DataloggerSN    String          `json:"datalogger_sn"`
	Datas           []MinEnergyData `json:"datas"`
}

// MinEnergyHistory is the response of the historical telemetry read.
type MinEnergyHistory struct {
	ResponseMeta
	Data *MinEnergyHistoryData `json:"data"`
}

// MinAlarmsData lists the alarms of one day.
type MinAlarmsData struct {
	Count    Int     `json:"count"`
	DeviceSN String  `json:"tlx_sn"`
	Alarms   []Alarm `json:"alarms"`
}

// MinAlarms is the response of the alarm read.
type MinAlarms struct {
	ResponseMeta
	Data *MinAlarmsData `json:"data"`
}
