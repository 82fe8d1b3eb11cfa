package growatt

import (
	"time"

	"github.com/pkg/errors"
)

// WitService covers WIT/WIS commercial storage inverters. The family only
// exists on the v4 "new-api" surface; all calls route through the shared v4
// service with the device type pinned to "wit".
type WitService struct {
	session *Session
	v4      *V4Service
}

// Details returns static device information for up to 100 devices. Without an
// explicit serial the session default is used.
func (s *WitService) Details(deviceSNs ...string) (*V4Details[WitDetailData], error) {
	sns, err := resolveSerials(deviceSNs, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return V4DetailsOf[WitDetailData](s.v4, V4DeviceTypeWit, sns...)
}

// Energy returns the latest telemetry snapshot for up to 100 devices.
func (s *WitService) Energy(deviceSNs ...string) (*V4Energy[WitEnergyData], error) {
	sns, err := resolveSerials(deviceSNs, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return V4EnergyOf[WitEnergyData](s.v4, V4DeviceTypeWit, sns...)
}

// EnergyHistory returns one day of telemetry records. A zero date defaults to
// today.
func (s *WitService) EnergyHistory(deviceSN string, date time.Time) (*V4EnergyHistory[WitEnergyData], error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return V4EnergyHistoryOf[WitEnergyData](s.v4, V4DeviceTypeWit, sn, date)
}

// EnergyHistoryMultiple returns one day of telemetry records for up to 100
// devices, keyed by serial number.
func (s *WitService) EnergyHistoryMultiple(date time.Time, deviceSNs ...string) (*V4EnergyHistoryMultiple[WitEnergyData], error) {
	sns, err := resolveSerials(deviceSNs, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return V4EnergyHistoryMultipleOf[WitEnergyData](s.v4, V4DeviceTypeWit, date, sns...)
}

// SettingReadVppParam reads one VPP parameter (set_param_1 ...). Only the WIT
// 100KTL3-H and WIS 215KTL3 storage models support the VPP parameter block.
func (s *WitService) SettingReadVppParam(deviceSN, parameterID string) (*V4VppParam, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return s.v4.SettingReadVppParam(sn, V4DeviceTypeWit, parameterID)
}

// SettingWriteVppParam writes one VPP parameter.
func (s *WitService) SettingWriteVppParam(deviceSN, parameterID, value string) (*V4SettingWrite, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return s.v4.SettingWriteVppParam(sn, V4DeviceTypeWit, parameterID, value)
}

// SettingWriteOnOff powers the device on or off.
func (s *WitService) SettingWriteOnOff(deviceSN string, on bool) (*V4SettingWrite, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return s.v4.SettingWriteOnOff(sn, V4DeviceTypeWit, on)
}

// SettingWriteActivePower sets the active power limit in percent (0-100).
func (s *WitService) SettingWriteActivePower(deviceSN string, percentage int) (*V4SettingWrite, error) {
	if percentage < 0 || percentage > 100 {
		return nil, errors.Errorf("active power percentage must be between 0 and 100, got %d", percentage)
	}

	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return s.v4.SettingWriteActivePower(sn, V4DeviceTypeWit, percentage)
}

// WitDetailData is the static device information of a WIT inverter. Wire
// names are camelCase with the usual vendor irregularities (dataLogSn,
// treeID, wselectBaudrate, saftyFunc).
type WitDetailData struct {
	ACStopChargingSOC       Float      `json:"acStopChargingSoc"`
	ActiveRate              Float      `json:"activeRate"`
	Address                 Int        `json:"addr"`
	Alias                   String     `json:"alias"`
	AntiBackflowFlag        Bool       `json:"antiBackflowFlag"`
	BatConnectionType       Int        `json:"batConnectionType"`
	BatSerialNum1           String     `json:"batSerialNum1"`
	BatSerialNum2           String     `json:"batSerialNum2"`
	BatSerialNum3           String     `json:"batSerialNum3"`
	Baudrate                Int        `json:"wselectBaudrate"`
	Bms1Enable              Bool       `json:"bms1Enable"`
	Bms2Enable              Bool       `json:"bms2Enable"`
	Bms3Enable              Bool       `json:"bms3Enable"`
	ChargeSOCLimit          Float      `json:"chargeSocLimit"`
	ComAddress              Int        `json:"comAddress"`
	CommunicationVersion    String     `json:"comVersion"`
	CountrySelected         Int        `json:"countrySelected"`
	DataloggerSN            String     `json:"dataLogSn"`
	DeviceType              Int        `json:"deviceType"`
	DischargeSOCLimit       Float      `json:"dischargeSocLimit"`
	DrmsEnable              Bool       `json:"drmsEnable"`
	DrmsMode                Int        `json:"drmsMode"`
	Dtc                     Int        `json:"dtc"`
	EnergyDay               Float      `json:"energyDay"`
	EnergyMonth             Float      `json:"energyMonth"`
	FacHigh                 Float      `json:"facHigh"`
	FacLow                  Float      `json:"facLow"`
	ForcedStopSwitch1       Bool       `json:"forcedStopSwitch1"`
	ForcedStopSwitch2       Bool       `json:"forcedStopSwitch2"`
	ForcedStopSwitch3       Bool       `json:"forcedStopSwitch3"`
	ForcedStopSwitch4       Bool       `json:"forcedStopSwitch4"`
	ForcedStopSwitch5       Bool       `json:"forcedStopSwitch5"`
	ForcedStopSwitch6       Bool       `json:"forcedStopSwitch6"`
	ForcedTimeStart1        ForcedTime `json:"forcedTimeStart1"`
	ForcedTimeStart2        ForcedTime `json:"forcedTimeStart2"`
	ForcedTimeStart3        ForcedTime `json:"forcedTimeStart3"`
	ForcedTimeStart4        ForcedTime `json:"forcedTimeStart4"`
	ForcedTimeStart5        ForcedTime `json:"forcedTimeStart5"`
	ForcedTimeStart6        ForcedTime `json:"forcedTimeStart6"`
	ForcedTimeStop1         ForcedTime `json:"forcedTimeStop1"`
	ForcedTimeStop2         ForcedTime `json:"forcedTimeStop2"`
	ForcedTimeStop3         ForcedTime `json:"forcedTimeStop3"`
	ForcedTimeStop4         ForcedTime `json:"forcedTimeStop4"`
	ForcedTimeStop5         ForcedTime `json:"forcedTimeStop5"`
	ForcedTimeStop6         ForcedTime `json:"forcedTimeStop6"`
	FreqHighLimit           Float      `json:"freqHighLimit"`
	FreqLowLimit            Float      `json:"freqLowLimit"`
	FwVersion               String     `json:"fwVersion"`
	GridMeterEnable         Bool       `json:"gridMeterEnable"`
	GridReconnectionTime    Int        `json:"gridReconnectionTime"`
	GroupID                 Int        `json:"groupId"`
	ID                      Int        `json:"id"`
	LastUpdateTime          Timestamp  `json:"lastUpdateTime"`
	LastUpdateTimeText      Timestamp  `json:"lastUpdateTimeText"`
	LcdLanguage             Int        `json:"lcdLanguage"`
	LineNDisconnectEnable   Bool       `json:"lineNdisconnectEnable"`
	Location                String     `json:"location"`
	Lost                    Bool       `json:"lost"`
	ModbusVersion           Int        `json:"modbusVersion"`
	Model                   Int        `json:"model"`
	ModelText               String     `json:"modelText"`
	OnOff                   Bool       `json:"onOff"`
	OuterCTEnable           Bool       `json:"outerCTEnable"`
	OverFreqDropPoint       Float      `json:"overFreDropPoint"`
	OverFreqLoadDelayTime   Float      `json:"overFreLoRedDelayTime"`
	OverFreqLoadResetTime   Float      `json:"overFreLoRedResTime"`
	OverFreqLoadSlope       Float      `json:"overFreLoRedSlope"`
	ParallelEnable          Bool       `json:"parallelEnable"`
	ParentID                String     `json:"parentID"`
	PfModel                 Float      `json:"pfModel"`
	Pflinep1LP              Float      `json:"pflinep1Lp"`
	Pflinep1PF              Float      `json:"pflinep1Pf"`
	Pflinep2LP              Float      `json:"pflinep2Lp"`
	Pflinep2PF              Float      `json:"pflinep2Pf"`
	Pflinep3LP              Float      `json:"pflinep3Lp"`
	Pflinep3PF              Float      `json:"pflinep3Pf"`
	Pflinep4LP              Float      `json:"pflinep4Lp"`
	Pflinep4PF              Float      `json:"pflinep4Pf"`
	PlantID                 Int        `json:"plantId"`
	PlantName               String     `json:"plantName"`
	Pmax                    Int        `json:"pmax"`
	PortName                String     `json:"portName"`
	PowerFactor             Float      `json:"powerFactor"`
	PowerUDForcedEnable     Bool       `json:"powerUDForcedEnable"`
	PvPfCmdMemoryState      Bool       `json:"pvPfCmdMemoryState"`
	ReactiveRate            Float      `json:"reactiveRate"`
	RestartTime             Int        `json:"restartTime"`
	SafetyFunction          Int        `json:"saftyFunc"`
	SerialNum               String     `json:"serialNum"`
	Status                  Int        `json:"status"`
	StatusText              String     `json:"statusText"`
	StrNum                  Int        `json:"strNum"`
	SysTime                 Timestamp  `json:"sysTime"`
	SysTimeText             Timestamp  `json:"sysTimeText"`
	TcpServerIP             String     `json:"tcpServerIp"`
	Timezone                Float      `json:"timezone"`
	TreeID                  String     `json:"treeID"`
	TreeName                String     `json:"treeName"`
	UnderFreqLoadDelayTime  Float      `json:"underfreqLoadDelayTime"`
	UnderFreqLoadEnable     Int        `json:"underfreqLoadEnable"`
	UnderFreqLoadPoint      Float      `json:"underfreqLoadPoint"`
	UnderFreqLoadResetTime  Float      `json:"underfreqLoadResTime"`
	UnderFreqLoadSlope      Int        `json:"underfreqLoadSlope"`
	Updating                Bool       `json:"updating"`
	UwACChargeEnable        Bool       `json:"uwACChargeEnable"`
	UwACChargePowerRate     Float      `json:"uwACChargePowerRate"`
	UwBatCap                Float      `json:"uwBatCap"`
	UwBatChargeStopSOC      Float      `json:"uwBatChargeStopSoc"`
	UwBatDischargeStopSOC   Float      `json:"uwBatDisChargeStopSoc"`
	UwBatMaxChargeCurrent   Float      `json:"uwBatMaxChargeCurrent"`
	UwBatMaxDischargeCurr   Float      `json:"uwBatMaxDisChargeCurrent"`
	UwBattEODVol            Float      `json:"uwBattEODVol"`
	UwBattMaxChargeVol      Float      `json:"uwBattMaxChargeVol"`
	UwDemandMangeEnable     Bool       `json:"uwDemandMangeEnable"`
	UwOffGridEnable         Bool       `json:"uwOffGridEnable"`
	UwOnOffChangeManualMode Int        `json:"uwOnOffChangeManualMode"`
	UwPcsType               Int        `json:"uwPcsType"`
	VacHigh                 Float      `json:"vacHigh"`
	VacLow                  Float      `json:"vacLow"`
	Version                 String     `json:"version"`
	Vnormal                 Float      `json:"vnormal"`
	VoltageHighLimit        Float      `json:"voltageHighLimit"`
	VoltageLowLimit         Float      `json:"voltageLowLimit"`
	VppVersion              Int        `json:"vppVersion"`
	VpvStart                Float      `json:"vpvStart"`
}

// WitEnergyData is one telemetry snapshot of a WIT inverter.
type WitEnergyData struct {
	ACChargeEnergyToday Float     `json:"acChargeEnergyToday"`
	ACChargeEnergyTotal Float     `json:"acChargeEnergyTotal"`
	Again               Bool      `json:"again"`
	BSoc                Float     `json:"bSoc"`
	BSoh                Float     `json:"bSoh"`
	BatPower            Float     `json:"batPower"`
	BatteryType         Int       `json:"batteryType"`
	BmsBatteryVolt      Float     `json:"bmsBatteryVolt"`
	Calendar            Timestamp `json:"calendar"`
	CurrentString1      Float     `json:"currentString1"`
	CurrentString2      Float     `json:"currentString2"`
	CurrentString3      Float     `json:"currentString3"`
	CurrentString4      Float     `json:"currentString4"`
	CurrentString5      Float     `json:"currentString5"`
	CurrentString6      Float     `json:"currentString6"`
	CurrentString7      Float     `json:"currentString7"`
	CurrentString8      Float     `json:"currentString8"`
	DataloggerSN        String    `json:"dataLogSn"`
	DeratingMode        Int       `json:"deratingMode"`
	DeviceSN            String    `json:"serialNum"`
	EacToday            Float     `json:"eacToday"`
	EacTotal            Float     `json:"eacTotal"`
	ECharge1Today       Float     `json:"echarge1Today"`
	ECharge1Total       Float     `json:"echarge1Total"`
	EDischarge1Today    Float     `json:"edischarge1Today"`
	EDischarge1Total    Float     `json:"edischarge1Total"`
	ELocalLoadToday     Float     `json:"elocalLoadToday"`
	ELocalLoadTotal     Float     `json:"elocalLoadTotal"`
	ESelfToday          Float     `json:"eselftoday"`
	ESelfTotal          Float     `json:"eselftotal"`
	ESystemToday        Float     `json:"esystemtoday"`
	ESystemTotal        Float     `json:"esystemtotal"`
	EToGridToday        Float     `json:"etoGridToday"`
	EToGridTotal        Float     `json:"etoGridTotal"`
	EToUserToday        Float     `json:"etoUserToday"`
	EToUserTotal        Float     `json:"etoUserTotal"`
	Epv1Today           Float     `json:"epv1Today"`
	Epv1Total           Float     `json:"epv1Total"`
	Epv2Today           Float     `json:"epv2Today"`
	Epv2Total           Float     `json:"epv2Total"`
	Epv3Today           Float     `json:"epv3Today"`
	Epv3Total           Float     `json:"epv3Total"`
	Epv4Today           Float     `json:"epv4Today"`
	Epv4Total           Float     `json:"epv4Total"`
	Epv5Today           Float     `json:"epv5Today"`
	Epv5Total           Float     `json:"epv5Total"`
	EpvToday            Float     `json:"epvToday"`
	EpvTotal            Float     `json:"epvTotal"`
	ErrorCode           Int       `json:"errorCode"`
	ErrorText           String    `json:"errorText"`
	Fac                 Float     `json:"fac"`
	FaultBitCode        Int       `json:"faultBitCode"`
	FaultCode           Int       `json:"faultCode"`
	FaultValue          Int       `json:"faultValue"`
	GenPower            Float     `json:"genPower"`
	Gfci                Float     `json:"gfci"`
	Iac1                Float     `json:"iac1"`
	Iac2                Float     `json:"iac2"`
	Iac3                Float     `json:"iac3"`
	Ipv1                Float     `json:"ipv1"`
	Ipv2                Float     `json:"ipv2"`
	Ipv3                Float     `json:"ipv3"`
	Ipv4                Float     `json:"ipv4"`
	Ipv5                Float     `json:"ipv5"`
	OffGridStatus       Int       `json:"offgridStatus"`
	OnOffGridState      Int       `json:"onOffGridState"`
	OpFullwatt          Float     `json:"opFullwatt"`
	PSelf               Float     `json:"pself"`
	PSystem             Float     `json:"psystem"`
	Pac                 Float     `json:"pac"`
	Pac1                Float     `json:"pac1"`
	Pac2                Float     `json:"pac2"`
	Pac3                Float     `json:"pac3"`
	PacToGridTotal      Float     `json:"pacToGridTotal"`
	PacToUserTotal      Float     `json:"pacToUserTotal"`
	Pf                  Float     `json:"pf"`
	PidBus              Float     `json:"pidBus"`
	PidFaultCode        Int       `json:"pidFaultCode"`
	PidStatus           Int       `json:"pidStatus"`
	PlocalLoadTotal     Float     `json:"plocalLoadTotal"`
	Ppv                 Float     `json:"ppv"`
	Ppv1                Float     `json:"ppv1"`
	Ppv2                Float     `json:"ppv2"`
	Ppv3                Float     `json:"ppv3"`
	Ppv4                Float     `json:"ppv4"`
	Ppv5                Float     `json:"ppv5"`
	PvIso               Float     `json:"pvIso"`
	RealOPPercent       Float     `json:"realOPPercent"`
	RunTime             Float     `json:"runTime"`
	Soc                 Float     `json:"soc"`
	Soh                 Float     `json:"soh"`
	Status              Int       `json:"status"`
	StatusText          String    `json:"statusText"`
	StrBreak            Int       `json:"strBreak"`
	StrUnbalance        Int       `json:"strUnblance"`
	StrUnmatch          Int       `json:"strUnmatch"`
	StrWarningValue1    Int       `json:"strWaringvalue1"`
	StrWarningValue2    Int       `json:"strWaringvalue2"`
	Temp1               Float     `json:"temp1"`
	Temp2               Float     `json:"temp2"`
	Temp3               Float     `json:"temp3"`
	Time                Timestamp `json:"time"`
	TimeTotal           Float     `json:"timeTotal"`
	VBat                Float     `json:"vbat"`
	VBatDsp             Float     `json:"vBatDsp"`
	VBusN               Float     `json:"vBusN"`
	VBusP               Float     `json:"vBusP"`
	VString1            Float     `json:"vString1"`
	VString2            Float     `json:"vString2"`
	VString3            Float     `json:"vString3"`
	VString4            Float     `json:"vString4"`
	VString5            Float     `json:"vString5"`
	VString6            Float     `json:"vString6"`
	VString7            Float     `json:"vString7"`
	VString8            Float     `json:"vString8"`
	Vac1                Float     `json:"vac1"`
	Vac2                Float     `json:"vac2"`
	Vac3                Float     `json:"vac3"`
	VacRS               Float     `json:"vacRs"`
	VacST               Float     `json:"vacSt"`
	VacTR               Float     `json:"vacTr"`
	VppWorkStatus       Int       `json:"vppWorkStatus"`
	Vpv1                Float     `json:"vpv1"`
	Vpv2                Float     `json:"vpv2"`
	Vpv3                Float     `json:"vpv3"`
	Vpv4                Float     `json:"vpv4"`
	Vpv5                Float     `json:"vpv5"`
	WarnCode            Int       `json:"warnCode"`
	WarnText            String    `json:"warnText"`
	WithTime            Bool      `json:"withTime"`
}
