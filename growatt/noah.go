package growatt

import (
	"time"

	"github.com/pkg/errors"
)

// NoahService covers NOAH balcony storage units. The family only exists on
// the v4 "new-api" surface.
type NoahService struct {
	session *Session
	v4      *V4Service
}

// Details returns static device information, including the nine programmable
// working periods, for up to 100 devices.
func (s *NoahService) Details(deviceSNs ...string) (*V4Details[NoahDetailData], error) {
	sns, err := resolveSerials(deviceSNs, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return V4DetailsOf[NoahDetailData](s.v4, V4DeviceTypeNoah, sns...)
}

// Energy returns the latest telemetry snapshot for up to 100 devices.
func (s *NoahService) Energy(deviceSNs ...string) (*V4Energy[NoahEnergyData], error) {
	sns, err := resolveSerials(deviceSNs, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return V4EnergyOf[NoahEnergyData](s.v4, V4DeviceTypeNoah, sns...)
}

// EnergyHistory returns one day of telemetry records. A zero date defaults to
// today.
func (s *NoahService) EnergyHistory(deviceSN string, date time.Time) (*V4EnergyHistory[NoahEnergyData], error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return V4EnergyHistoryOf[NoahEnergyData](s.v4, V4DeviceTypeNoah, sn, date)
}

// EnergyHistoryMultiple returns one day of telemetry records for up to 100
// devices, keyed by serial number.
func (s *NoahService) EnergyHistoryMultiple(date time.Time, deviceSNs ...string) (*V4EnergyHistoryMultiple[NoahEnergyData], error) {
	sns, err := resolveSerials(deviceSNs, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return V4EnergyHistoryMultipleOf[NoahEnergyData](s.v4, V4DeviceTypeNoah, date, sns...)
}

// SettingWriteActivePower sets the output power in watts (0-800).
func (s *NoahService) SettingWriteActivePower(deviceSN string, watt int) (*V4SettingWrite, error) {
	if watt < 0 || watt > 800 {
		return nil, errors.Errorf("output power must be between 0 and 800 W, got %d", watt)
	}

	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return s.v4.SettingWriteActivePower(sn, V4DeviceTypeNoah, watt)
}

// SettingWriteSocUpperLimit sets the charge stop SOC in percent.
func (s *NoahService) SettingWriteSocUpperLimit(deviceSN string, percentage int) (*V4SettingWrite, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return s.v4.SettingWriteSocUpperLimit(sn, V4DeviceTypeNoah, percentage)
}

// SettingWriteSocLowerLimit sets the discharge stop SOC in percent.
func (s *NoahService) SettingWriteSocLowerLimit(deviceSN string, percentage int) (*V4SettingWrite, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return s.v4.SettingWriteSocLowerLimit(sn, V4DeviceTypeNoah, percentage)
}

// SettingWriteTimeSegment programs one of the nine working period slots.
func (s *NoahService) SettingWriteTimeSegment(deviceSN string, segment V4TimeSegment) (*V4SettingWrite, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	return s.v4.SettingWriteTimeSegment(sn, V4DeviceTypeNoah, segment)
}

// NoahTimeSlot is one programmed working period as reported by the device.
// Mode 0 prefers charging the battery, mode 1 powering the load.
type NoahTimeSlot struct {
	Enabled Bool       `json:"enable"`
	End     ForcedTime `json:"end"`
	Mode    Int        `json:"mode"`
	Power   Float      `json:"power"`
	Start   ForcedTime `json:"start"`
}

// NoahDetailData is the static device information of a NOAH unit. The nine
// working period slots arrive as flat time1_*..time9_* fields.
type NoahDetailData struct {
	Address               Int        `json:"addr"`
	Alias                 String     `json:"alias"`
	AssociatedInvSN       String     `json:"associatedInvSn"`
	BmsVersion            String     `json:"bmsVersion"`
	ChargingSOCHighLimit  Float      `json:"chargingSocHighLimit"`
	ChargingSOCLowLimit   Float      `json:"chargingSocLowLimit"`
	ComponentPower        Float      `json:"componentPower"`
	DataloggerSN          String     `json:"dataLogSn"`
	DefaultPower          Float      `json:"defaultPower"`
	DeviceSN              String     `json:"deviceSn"`
	EbmOrderNum           Int        `json:"ebmOrderNum"`
	FwVersion             String     `json:"fwVersion"`
	LastUpdateTime        Timestamp  `json:"lastUpdateTime"`
	LastUpdateTimeText    Timestamp  `json:"lastUpdateTimeText"`
	Location              String     `json:"location"`
	Lost                  Bool       `json:"lost"`
	Model                 String     `json:"model"`
	MpptVersion           String     `json:"mpptVersion"`
	OtaDeviceTypeCodeHigh String     `json:"otaDeviceTypeCodeHigh"`
	OtaDeviceTypeCodeLow  String     `json:"otaDeviceTypeCodeLow"`
	PdVersion             String     `json:"pdVersion"`
	PortName              String     `json:"portName"`
	SmartSocketPower      Float      `json:"smartSocketPower"`
	Status                Int        `json:"status"`
	SysTime               Timestamp  `json:"sysTime"`
	TempType              Int        `json:"tempType"`
	Time1Enable           Bool       `json:"time1Enable"`
	Time1End              ForcedTime `json:"time1End"`
	Time1Mode             Int        `json:"time1Mode"`
	Time1Power            Float      `json:"time1Power"`
	Time1Start            ForcedTime `json:"time1Start"`
	Time2Enable           Bool       `json:"time2Enable"`
	Time2End              ForcedTime `json:"time2End"`
	Time2Mode             Int        `json:"time2Mode"`
	Time2Power            Float      `json:"time2Power"`
	Time2Start            ForcedTime `json:"time2Start"`
	Time3Enable           Bool       `json:"time3Enable"`
	Time3End              ForcedTime `json:"time3End"`
	Time3Mode             Int        `json:"time3Mode"`
	Time3Power            Float      `json:"time3Power"`
	Time3Start            ForcedTime `json:"time3Start"`
	Time4Enable           Bool       `json:"time4Enable"`
	Time4End              ForcedTime `json:"time4End"`
	Time4Mode             Int        `json:"time4Mode"`
	Time4Power            Float      `json:"time4Power"`
	Time4Start            ForcedTime `json:"time4Start"`
	Time5Enable           Bool       `json:"time5Enable"`
	Time5End              ForcedTime `json:"time5End"`
	Time5Mode             Int        `json:"time5Mode"`
	Time5Power            Float      `json:"time5Power"`
	Time5Start            ForcedTime `json:"time5Start"`
	Time6Enable           Bool       `json:"time6Enable"`
	Time6End              ForcedTime `json:"time6End"`
	Time6Mode             Int        `json:"time6Mode"`
	Time6Power            Float      `json:"time6Power"`
	Time6Start            ForcedTime `json:"time6Start"`
	Time7Enable           Bool       `json:"time7Enable"`
	Time7End              ForcedTime `json:"time7End"`
	Time7Mode             Int        `json:"time7Mode"`
	Time7Power            Float      `json:"time7Power"`
	Time7Start            ForcedTime `json:"time7Start"`
	Time8Enable           Bool       `json:"time8Enable"`
	Time8End              ForcedTime `json:"time8End"`
	Time8Mode             Int        `json:"time8Mode"`
	Time8Power            Float      `json:"time8Power"`
	Time8Start            ForcedTime `json:"time8Start"`
	Time9Enable           Bool       `json:"time9Enable"`
	Time9End              ForcedTime `json:"time9End"`
	Time9Mode             Int        `json:"time9Mode"`
	Time9Power            Float      `json:"time9Power"`
	Time9Start            ForcedTime `json:"time9Start"`
}

// TimeSlots collects the nine flat period slots into a list, preserving the
// slot order.
func (d NoahDetailData) TimeSlots() []NoahTimeSlot {
	return []NoahTimeSlot{
		{Enabled: d.Time1Enable, End: d.Time1End, Mode: d.Time1Mode, Power: d.Time1Power, Start: d.Time1Start},
		{Enabled: d.Time2Enable, End: d.Time2End, Mode: d.Time2Mode, Power: d.Time2Power, Start: d.Time2Start},
		{Enabled: d.Time3Enable, End: d.Time3End, Mode: d.Time3Mode, Power: d.Time3Power, Start: d.Time3Start},
		{Enabled: d.Time4Enable, End: d.Time4End, Mode: d.Time4Mode, Power: d.Time4Power, Start: d.Time4Start},
		{Enabled: d.Time5Enable, End: d.Time5End, Mode: d.Time5Mode, Power: d.Time5Power, Start: d.Time5Start},
		{Enabled: d.Time6Enable, End: d.Time6End, Mode: d.Time6Mode, Power: d.Time6Power, Start: d.Time6Start},
		{Enabled: d.Time7Enable, End: d.Time7End, Mode: d.Time7Mode, Power: d.Time7Power, Start: d.Time7Start},
		{Enabled: d.Time8Enable, End: d.Time8End, Mode: d.Time8Mode, Power: d.Time8Power, Start: d.Time8Start},
		{Enabled: d.Time9Enable, End: d.Time9End, Mode: d.Time9Mode, Power: d.Time9Power, Start: d.Time9Start},
	}
}

// NoahEnergyData is one telemetry snapshot of a NOAH unit. The per-pack
// battery fields report up to four parallel packs.
type NoahEnergyData struct {
	Battery1ProtectStatus          Int       `json:"battery1ProtectStatus"`
	Battery1SerialNum              String    `json:"battery1SerialNum"`
	Battery1SOC                    Int       `json:"battery1Soc"`
	Battery1Temp                   Float     `json:"battery1Temp"`
	Battery1WarnStatus             Int       `json:"battery1WarnStatus"`
	Battery2ProtectStatus          Int       `json:"battery2ProtectStatus"`
	Battery2SerialNum              String    `json:"battery2SerialNum"`
	Battery2SOC                    Int       `json:"battery2Soc"`
	Battery2Temp                   Float     `json:"battery2Temp"`
	Battery2WarnStatus             Int       `json:"battery2WarnStatus"`
	Battery3ProtectStatus          Int       `json:"battery3ProtectStatus"`
	Battery3SerialNum              String    `json:"battery3SerialNum"`
	Battery3SOC                    Int       `json:"battery3Soc"`
	Battery3Temp                   Float     `json:"battery3Temp"`
	Battery3WarnStatus             Int       `json:"battery3WarnStatus"`
	Battery4ProtectStatus          Int       `json:"battery4ProtectStatus"`
	Battery4SerialNum              String    `json:"battery4SerialNum"`
	Battery4SOC                    Int       `json:"battery4Soc"`
	Battery4Temp                   Float     `json:"battery4Temp"`
	Battery4WarnStatus             Int       `json:"battery4WarnStatus"`
	BatteryPackageQuantity         Int       `json:"batteryPackageQuantity"`
	DataloggerSN                   String    `json:"dataLogSn"`
	DeviceSN                       String    `json:"deviceSn"`
	EacMonth                       Float     `json:"eacMonth"`
	EacToday                       Float     `json:"eacToday"`
	EacTotal                       Float     `json:"eacTotal"`
	EacYear                        Float     `json:"eacYear"`
	FaultStatus                    Int       `json:"faultStatus"`
	HeatingStatus                  Int       `json:"heatingStatus"`
	IsAgain                        Bool      `json:"isAgain"`
	MpptProtectStatus              Int       `json:"mpptProtectStatus"`
	Pac                            Float     `json:"pac"`
	PdWarnStatus                   Int       `json:"pdWarnStatus"`
	Ppv                            Float     `json:"ppv"`
	Status                         Int       `json:"status"`
	Time                           Timestamp `json:"time"`
	TotalBatteryPackChargingPower  Int       `json:"totalBatteryPackChargingPower"`
	TotalBatteryPackChargingStatus Int       `json:"totalBatteryPackChargingStatus"`
	TotalBatteryPackSOC            Int       `json:"totalBatteryPackSoc"`
	WorkMode                       Int       `json:"workMode"`
}
