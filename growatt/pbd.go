package growatt

const (
	pbdDetailsURI = "device/pbd/pbd_data_info"
	pbdEnergyURI  = "device/pbd/pbd_last_data"
	pbdHistoryURI = "device/pbd/pbd_data"
	pbdAlarmsURI  = "device/pbd/alarm_data"
)

// PbdService covers PBD DC charger cabinets (device type 10). An empty
// deviceSN falls back to the serial configured with WithDefaultSerial.
type PbdService struct {
	session *Session
}

// Details returns static device information.
func (s *PbdService) Details(deviceSN string) (*PbdDetails, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	body, err := s.session.get(pbdDetailsURI, newParams().set("device_sn", sn))
	if err != nil {
		return nil, err
	}

	return parseResponse[PbdDetails](body)
}

// Energy returns the latest telemetry snapshot.
func (s *PbdService) Energy(deviceSN string) (*PbdEnergy, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	body, err := s.session.post(pbdEnergyURI, newParams().set("pbd_sn", sn))
	if err != nil {
		return nil, err
	}

	return parseResponse[PbdEnergy](body)
}

// EnergyHistory returns telemetry records for a date range of at most a week.
func (s *PbdService) EnergyHistory(deviceSN string, opts HistoryOptions) (*PbdEnergyHistory, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("pbd_sn", sn).
		setDate("start_date", start).
		setDate("end_date", end).
		setOptString("timezone_id", opts.Timezone).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(pbdHistoryURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[PbdEnergyHistory](body)
}

// Alarms returns the alarms raised on one day.
func (s *PbdService) Alarms(deviceSN string, opts AlarmOptions) (*PbdAlarms, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("pbd_sn", sn).
		setDate("date", resolveDate(opts.Date)).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(pbdAlarmsURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[PbdAlarms](body)
}

// PbdDetailData holds static device information of a PBD cabinet.
type PbdDetailData struct {
	Address            Int       `json:"addr"`
	Alias              String    `json:"alias"`
	Biout              Float     `json:"biout"`
	BmsEnable          Bool      `json:"bmsEnable"`
	Bvout              Float     `json:"bvout"`
	ChargeMonth        Float     `json:"chargeMonth"`
	DataloggerSN       String    `json:"dataLogSn"`
	DischargeMonth     Float     `json:"disChargeMonth"`
	EChargeToday       Float     `json:"eChargeToday"`
	EDischargeToday    Float     `json:"eDischargeToday"`
	EDischargeTotal    Float     `json:"eDischargeTotal"`
	FwVersion          String    `json:"fwVersion"`
	GridDetectionTime  Float     `json:"gridDetectionTime"`
	GroupID            Int       `json:"groupId"`
	IChargeMax         Float     `json:"iOutMax"`
	ICharge            Float     `json:"icharge"`
	ImgPath            String    `json:"imgPath"`
	InnerVersion       String    `json:"innerVersion"`
	Ipv                Float     `json:"ipv"`
	Ipv1               Float     `json:"ipv1"`
	Ipv2               Float     `json:"ipv2"`
	LastUpdateTime     Timestamp `json:"lastUpdateTime"`
	LastUpdateTimeText Timestamp `json:"lastUpdateTimeText"`
	Location           String    `json:"location"`
	Lost               Bool      `json:"lost"`
	Model              Int       `json:"model"`
	ModelText          String    `json:"modelText"`
	Normal             Float     `json:"normal"`
	OnOff              Bool      `json:"onOff"`
	OutPowerMax        Float     `json:"outPowerMax"`
	ParentID           String    `json:"parentID"`
	PeakClipping       Float     `json:"peakClipping"`
	PeakClippingTotal  Float     `json:"peakClippingTotal"`
	PlantID            Int       `json:"plantId"`
	PortName           String    `json:"portName"`
	PowerStart         Float     `json:"powerStart"`
	RisoEnable         Bool      `json:"risoEnable"`
	RisoMin            Float     `json:"risomin"`
	RsAddr             Int       `json:"rsAddr"`
	Safety             Int       `json:"safety"`
	SerialNum          String    `json:"serialNum"`
	SocMax             Float     `json:"socMax"`
	SocMin             Float     `json:"socMin"`
	Status             Int       `json:"status"`
	StatusText         String    `json:"statusText"`
	TcpServerIP        String    `json:"tcpServerIp"`
	Timezone           Float     `json:"timezone"`
	TreeID             String    `json:"treeID"`
	TreeName           String    `json:"treeName"`
	Type               Int       `json:"type"`
	Updating           Bool      `json:"updating"`
	VStart             Float     `json:"vStart"`
	Vpv                Float     `json:"vpv"`
	Vpv1               Float     `json:"vpv1"`
	Vpv2               Float     `json:"vpv2"`
}

// PbdDetails is the response of the static-detail read.
type PbdDetails struct {
	ResponseMeta
	Data         *PbdDetailData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// PbdEnergyData is one telemetry snapshot of a PBD cabinet.
type PbdEnergyData struct {
	Address             Int       `json:"address"`
	Again               Bool      `json:"again"`
	AlarmCode1          Int       `json:"alarmCode1"`
	AlarmCode2          Int       `json:"alarmCode2"`
	Alias               String    `json:"alias"`
	BioutBuck1          Float     `json:"biOutBuck1"`
	BioutBuck2          Float     `json:"biOutBuck2"`
	Biout               Float     `json:"biout"`
	BmsProtection       Int       `json:"bmsProtection"`
	BmsStatus           Int       `json:"bmsStatus"`
	BmsVoltStatus       Int       `json:"bmsVoltStatus"`
	Bvbus               Float     `json:"bvbus"`
	Bvout               Float     `json:"bvout"`
	Calendar            Timestamp `json:"calendar"`
	Capacity            Float     `json:"capacity"`
	DataloggerSN        String    `json:"dataLogSn"`
	Day                 String    `json:"day"`
	EChargeTimeToday    Float     `json:"eChargeTimeToday"`
	EChargeTimeTotal    Float     `json:"eChargeTimeTotal"`
	EChargeToday        Float     `json:"eChargeToday"`
	EChargeTotal        Float     `json:"eChargeTotal"`
	EDischargeTimeToday Float     `json:"eDischargeTimeToday"`
	EDischargeTimeTotal Float     `json:"eDischargeTimeTotal"`
	EDischargeToday     Float     `json:"eDischargeToday"`
	EDischargeTotal     Float     `json:"eDischargeTotal"`
	EOutToday           Float     `json:"eOutToday"`
	EOutTotal           Float     `json:"eOutTotal"`
	ElectricState       Int       `json:"electricState"`
	EpvTimeToday        Float     `json:"epvTimeToday"`
	EpvTimeTotal        Float     `json:"epvTimeTotal"`
	EpvToday            Float     `json:"epvToday"`
	EpvTotal            Float     `json:"epvTotal"`
	Ipv                 Float     `json:"ipv"`
	Ipv1                Float     `json:"ipv1"`
	Ipv2                Float     `json:"ipv2"`
	Ipv3                Float     `json:"ipv3"`
	Lost                Bool      `json:"lost"`
	MaxChargeCurr       Float     `json:"maxChargeCurr"`
	MaxDischargeCurr    Float     `json:"maxDischargeCurr"`
	MaxTemp             Float     `json:"maxTemp"`
	MaxVolt             Float     `json:"maxVolt"`
	MinTemp             Float     `json:"minTemp"`
	MinVolt             Float     `json:"minVolt"`
	PbdBatPower         Float     `json:"pbdBatPower"`
	PbdOutPower         Float     `json:"pbdOutPowe"`
	Ppv                 Float     `json:"ppv"`
	Ppv1                Float     `json:"ppv1"`
	Ppv2                Float     `json:"ppv2"`
	Ppv3                Float     `json:"ppv3"`
	RisoBatN            Float     `json:"risoBatn"`
	RisoBatP            Float     `json:"risoBatp"`
	RisoBusN            Float     `json:"risoBusn"`
	RisoBusP            Float     `json:"risoBusp"`
	RisoPvN             Float     `json:"risoPVn"`
	RisoPvP             Float     `json:"risoPVp"`
	SelfTime            Float     `json:"selfTime"`
	SerialNum           String    `json:"serialNum"`
	Status              Int       `json:"status"`
	StatusText          String    `json:"statusText"`
	Temp                Float     `json:"temp"`
	Time                Timestamp `json:"time"`
	TypeFlag            Int       `json:"typeFlag"`
	Vbat                Float     `json:"vbat"`
	Vpv                 Float     `json:"vpv"`
	Vpv1                Float     `json:"vpv1"`
	Vpv2                Float     `json:"vpv2"`
	Vpv3                Float     `json:"vpv3"`
	WithTime            Bool      `json:"withTime"`
}

// PbdEnergy is the response of the latest-telemetry read.
type PbdEnergy struct {
	ResponseMeta
	Data         *PbdEnergyData `json:"data"`
	DataloggerSN String         `json:"datalogger_sn"`
	DeviceSN     String         `json:"device_sn"`
}

// PbdEnergyHistoryData pages through historical telemetry records.
type PbdEnergyHistoryData struct {
	Count           Int             `json:"count"`
	NextPageStartID Int             `json:"next_page_start_id"`
	DeviceSN        String          `json:"pbd_sn"`
	DataloggerSN    String          `json:"datalogger_sn"`
	Datas           []PbdEnergyData `json:"datas"`
}

// PbdEnergyHistory is the response of the historical telemetry read.
type PbdEnergyHistory struct {
	ResponseMeta
	Data *PbdEnergyHistoryData `json:"data"`
}

// PbdAlarmsData lists the alarms of one day.
type PbdAlarmsData struct {
	Count    Int     `json:"count"`
	DeviceSN String  `json:"pbd_sn"`
	Alarms   []Alarm `json:"alarms"`
}

// PbdAlarms is the response of the alarm read.
type PbdAlarms struct {
	ResponseMeta
	Data *PbdAlarmsData `json:"data"`
}
