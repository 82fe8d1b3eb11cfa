package growatt

import (
	"time"

	"github.com/pkg/errors"
)

// SphsService covers SPH 4000-10000TL3 BH-UP hybrid inverters ("sph-s"). The
// family only exists on the v4 "new-api" surface.
type SphsService struct {
	session *Session
	v4      *V4Service
}

// Details returns static device information for up to 100 devices. Without an
// explicit serial the session default is used.
func (s *SphsService) Details(deviceSNs ...string) (*V4Details[SphsDetailData], error) {
	sns, err := resolveSerials(deviceSNs, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return V4DetailsOf[SphsDetailData](s.v4, V4DeviceTypeSphs, sns...)
}

// Energy returns the latest telemetry snapshot for up to 100 devices.
func (s *SphsService) Energy(deviceSNs ...string) (*V4Energy[SphsEnergyData], error) {
	sns, err := resolveSerials(deviceSNs, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return V4EnergyOf[SphsEnergyData](s.v4, V4DeviceTypeSphs, sns...)
}

// EnergyHistory returns one day of telemetry records. A zero date defaults to
// today.
func (s *SphsService) EnergyHistory(deviceSN string, date time.Time) (*V4EnergyHistory[SphsEnergyData], error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return V4EnergyHistoryOf[SphsEnergyData](s.v4, V4DeviceTypeSphs, sn, date)
}

// EnergyHistoryMultiple returns one day of telemetry records for up to 100
// devices, keyed by serial number.
func (s *SphsService) EnergyHistoryMultiple(date time.Time, deviceSNs ...string) (*V4EnergyHistoryMultiple[SphsEnergyData], error) {
	sns, err := resolveSerials(deviceSNs, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return V4EnergyHistoryMultipleOf[SphsEnergyData](s.v4, V4DeviceTypeSphs, date, sns...)
}

// SettingWriteOnOff powers the device on or off.
func (s *SphsService) SettingWriteOnOff(deviceSN string, on bool) (*V4SettingWrite, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return s.v4.SettingWriteOnOff(sn, V4DeviceTypeSphs, on)
}

// SettingWriteActivePower sets the active power limit in percent (0-100).
func (s *SphsService) SettingWriteActivePower(deviceSN string, percentage int) (*V4SettingWrite, error) {
	if percentage < 0 || percentage > 100 {
		return nil, errors.Errorf("active power percentage must be between 0 and 100, got %d", percentage)
	}

	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return s.v4.SettingWriteActivePower(sn, V4DeviceTypeSphs, percentage)
}

// SphsDetailData is the static device information of an SPH-S inverter.
type SphsDetailData struct {
	ActiveRate             Float     `json:"activeRate"`
	Address                Int       `json:"addr"`
	Alias                  String    `json:"alias"`
	Baudrate               Int       `json:"wselectBaudrate"`
	ComAddress             Int       `json:"comAddress"`
	CommunicationVersion   String    `json:"communicationVersion"`
	CountrySelected        Int       `json:"countrySelected"`
	DataloggerSN           String    `json:"dataLogSn"`
	DeviceType             Int       `json:"deviceType"`
	Dtc                    Int       `json:"dtc"`
	EToday                 Float     `json:"eToday"`
	ETotal                 Float     `json:"eTotal"`
	EnergyDay              Float     `json:"energyDay"`
	EnergyMonth            Float     `json:"energyMonth"`
	ExportLimit            Int       `json:"exportLimit"`
	ExportLimitPowerRate   Float     `json:"exportLimitPowerRate"`
	Failsafe               Int       `json:"failsafe"`
	FreqHighLimit          Float     `json:"freqHighLimit"`
	FreqLowLimit           Float     `json:"freqLowLimit"`
	FwVersion              String    `json:"fwVersion"`
	GroupID                Int       `json:"groupId"`
	LastUpdateTime         Timestamp `json:"lastUpdateTime"`
	LastUpdateTimeText     Timestamp `json:"lastUpdateTimeText"`
	LcdLanguage            Int       `json:"lcdLanguage"`
	Location               String    `json:"location"`
	Lost                   Bool      `json:"lost"`
	Manufacturer           String    `json:"manufacturer"`
	ModbusVersion          Int       `json:"modbusVersion"`
	Model                  Int       `json:"model"`
	ModelText              String    `json:"modelText"`
	PCharge                Float     `json:"pCharge"`
	PDischarge             Float     `json:"pDischarge"`
	ParentID               String    `json:"parentID"`
	PlantID                Int       `json:"plantId"`
	PlantName              String    `json:"plantName"`
	Pmax                   Int       `json:"pmax"`
	PortName               String    `json:"portName"`
	Power                  Float     `json:"power"`
	PvPfCmdMemoryState     Bool      `json:"pvPfCmdMemoryState"`
	ReactiveOutputPriority Int       `json:"reactiveOutputPriority"`
	ReactiveRate           Float     `json:"reactiveRate"`
	ReactiveValue          Float     `json:"reactiveValue"`
	SerialNum              String    `json:"serialNum"`
	Status                 Int       `json:"status"`
	StatusText             String    `json:"statusText"`
	SysTime                Timestamp `json:"sysTime"`
	SysTimeText            Timestamp `json:"sysTimeText"`
	TcpServerIP            String    `json:"tcpServerIp"`
	Timezone               Float     `json:"timezone"`
	TreeID                 String    `json:"treeID"`
	TreeName               String    `json:"treeName"`
	Updating               Bool      `json:"updating"`
	UwGridWattDelay        Float     `json:"uwGridWattDelay"`
	UwNominalGridVolt      Float     `json:"uwNominalGridVolt"`
	UwReconnectStartSlope  Float     `json:"uwReconnectStartSlope"`
	Version                String    `json:"version"`
	Vnormal                Float     `json:"vnormal"`
	VoltageHighLimit       Float     `json:"voltageHighLimit"`
	VoltageLowLimit        Float     `json:"voltageLowLimit"`
}

// SphsEnergyData is one telemetry snapshot of an SPH-S inverter.
type SphsEnergyData struct {
	Again            Bool      `json:"again"`
	BatPower         Float     `json:"batPower"`
	BmsBatteryCurr   Float     `json:"bmsBatteryCurr"`
	BmsBatteryTemp   Float     `json:"bmsBatteryTemp"`
	BmsBatteryVolt   Float     `json:"bmsBatteryVolt"`
	BmsConstantVolt  Float     `json:"bmsConstantVolt"`
	BmsSOC           Int       `json:"bmsSOC"`
	BmsSOH           Int       `json:"bmsSOH"`
	BmsUsingCap      Float     `json:"bmsUsingCap"`
	Calendar         Timestamp `json:"calendar"`
	ChipType         Int       `json:"chipType"`
	DataloggerSN     String    `json:"dataLogSn"`
	DcTemp           Float     `json:"dcTemp"`
	DeviceSN         String    `json:"serialNum"`
	DeviceType       Int       `json:"deviceType"`
	EacToday         Float     `json:"eacToday"`
	EacTotal         Float     `json:"eacTotal"`
	ECharge1Today    Float     `json:"echarge1Today"`
	ECharge1Total    Float     `json:"echarge1Total"`
	EDischarge1Today Float     `json:"edischarge1Today"`
	EDischarge1Total Float     `json:"edischarge1Total"`
	ELocalLoadHour   Float     `json:"elocalLoadHour"`
	ELocalLoadMonth  Float     `json:"elocalLoadMonth"`
	ELocalLoadToday  Float     `json:"elocalLoadToday"`
	ELocalLoadTotal  Float     `json:"elocalLoadTotal"`
	ELocalLoadYear   Float     `json:"elocalLoadYear"`
	ESelfHour        Float     `json:"eselfHour"`
	ESelfMonth       Float     `json:"eselfMonth"`
	ESelfToday       Float     `json:"eselftoday"`
	ESelfTotal       Float     `json:"eselftotal"`
	ESelfYear        Float     `json:"eselfYear"`
	ESystemHour      Float     `json:"esystemHour"`
	ESystemMonth     Float     `json:"esystemMonth"`
	ESystemToday     Float     `json:"esystemtoday"`
	ESystemTotal     Float     `json:"esystemtotal"`
	ESystemYear      Float     `json:"esystemYear"`
	EToGridHour      Float     `json:"eToGridHour"`
	EToGridMonth     Float     `json:"eToGridMonth"`
	EToGridToday     Float     `json:"etoGridToday"`
	EToGridTotal     Float     `json:"etoGridTotal"`
	EToGridYear      Float     `json:"eToGridYear"`
	EToUserHour      Float     `json:"eToUserHour"`
	EToUserMonth     Float     `json:"eToUserMonth"`
	EToUserToday     Float     `json:"etoUserToday"`
	EToUserTotal     Float     `json:"etoUserTotal"`
	EToUserYear      Float     `json:"eToUserYear"`
	EpsIac1          Float     `json:"epsIac1"`
	EpsIac2          Float     `json:"epsIac2"`
	EpsVac2          Float     `json:"epsVac2"`
	Epv1Today        Float     `json:"epv1Today"`
	Epv1Total        Float     `json:"epv1Total"`
	Epv2Today        Float     `json:"epv2Today"`
	Epv2Total        Float     `json:"epv2Total"`
	Epv3Today        Float     `json:"epv3Today"`
	Epv3Total        Float     `json:"epv3Total"`
	EpvHour          Float     `json:"epvHour"`
	EpvMonth         Float     `json:"epvMonth"`
	EpvToday         Float     `json:"epvToday"`
	EpvTotal         Float     `json:"epvTotal"`
	EpvYear          Float     `json:"epvYear"`
	ErrorText        String    `json:"errorText"`
	Fac              Float     `json:"fac"`
	FaultBitCode     Int       `json:"faultBitCode"`
	FaultCode        Int       `json:"faultCode"`
	GenCurr          Float     `json:"genCurr"`
	GenEnergy        Float     `json:"genEnergy"`
	GenEnergyToday   Float     `json:"genEnergyToday"`
	GenFreq          Float     `json:"genFreq"`
	GenPower         Float     `json:"genPower"`
	GenVol           Float     `json:"genVol"`
	GridStatus       Int       `json:"gridStatus"`
	Iac1             Float     `json:"iac1"`
	Iac2             Float     `json:"iac2"`
	Ibat             Float     `json:"ibat"`
	InvTemp          Float     `json:"invTemp"`
	Ipv1             Float     `json:"ipv1"`
	Ipv2             Float     `json:"ipv2"`
	Ipv3             Float     `json:"ipv3"`
	LoadPower1       Float     `json:"loadPower1"`
	LoadPower2       Float     `json:"loadPower2"`
	Lost             Bool      `json:"lost"`
	PSelf            Float     `json:"pself"`
	PSystem          Float     `json:"psystem"`
	Pac              Float     `json:"pac"`
	Pac1             Float     `json:"pac1"`
	Pac2             Float     `json:"pac2"`
	PacToGridR       Float     `json:"pacToGridR"`
	PacToGridS       Float     `json:"pacToGridS"`
	PacToGridTotal   Float     `json:"pacToGridTotal"`
	PacToUserR       Float     `json:"pacToUserR"`
	PacToUserTotal   Float     `json:"pacToUserTotal"`
	PCharge1         Float     `json:"pcharge1"`
	PDischarge1      Float     `json:"pdischarge1"`
	Pf               Float     `json:"pf"`
	PlocalLoadR      Float     `json:"plocalLoadR"`
	PlocalLoadS      Float     `json:"plocalLoadS"`
	PlocalLoadTotal  Float     `json:"plocalLoadTotal"`
	Ppv              Float     `json:"ppv"`
	Ppv1             Float     `json:"ppv1"`
	Ppv2             Float     `json:"ppv2"`
	Ppv3             Float     `json:"ppv3"`
	RLoadVol         Float     `json:"rLoadVol"`
	RLocalEnergy     Float     `json:"rLocalEnergy"`
	SLoadVol         Float     `json:"sLoadVol"`
	SLocalEnergy     Float     `json:"sLocalEnergy"`
	Soc              Float     `json:"soc"`
	SpStatus         Int       `json:"spStatus"`
	Status           Int       `json:"status"`
	StatusText       String    `json:"statusText"`
	SysFaultWord     Int       `json:"sysFaultWord"`
	SysStatus        Int       `json:"sysStatus"`
	SystemFault      Int       `json:"systemFault"`
	SystemWarn       Int       `json:"systemWarn"`
	Time             Timestamp `json:"time"`
	TimeTotal        Float     `json:"timeTotal"`
	UpsFac           Float     `json:"upsFac"`
	UpsPac1          Float     `json:"upsPac1"`
	UpsPac2          Float     `json:"upsPac2"`
	UpsVac1          Float     `json:"upsVac1"`
	UwSysWorkMode    Int       `json:"uwSysWorkMode"`
	Vac1             Float     `json:"vac1"`
	Vac2             Float     `json:"vac2"`
	VBat             Float     `json:"vbat"`
	VBat1            Float     `json:"vbat1"`
	Vpv1             Float     `json:"vpv1"`
	Vpv2             Float     `json:"vpv2"`
	Vpv3             Float     `json:"vpv3"`
	WarnCode         Int       `json:"warnCode"`
	WarnText         String    `json:"warnText"`
	WithTime         Bool      `json:"withTime"`
}
