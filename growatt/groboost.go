package growatt

const (
	groboostDetailsURI = "device/boost/boost_data_info"
	groboostMetricsURI = "device/boost/boost_last_data"
	groboostHistoryURI = "device/boost/boost_data"
)

// GroboostService covers GroBoost smart power controllers (device type 11).
// Batch reads ride on the shared tlx endpoint like the MIN family.
type GroboostService struct {
	session *Session
}

// Details returns static device information, including the latest snapshots
// of the meter, env sensor and SPCT readings attached to the controller.
func (s *GroboostService) Details(deviceSN string) (*GroboostDetails, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	body, err := s.session.get(groboostDetailsURI, newParams().set("device_sn", sn))
	if err != nil {
		return nil, err
	}

	return parseResponse[GroboostDetails](body)
}

// Metrics returns the latest telemetry snapshot.
func (s *GroboostService) Metrics(deviceSN string) (*GroboostMetrics, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	body, err := s.session.post(groboostMetricsURI, newParams().set("boost_sn", sn))
	if err != nil {
		return nil, err
	}

	return parseResponse[GroboostMetrics](body)
}

// MetricsMultiple returns the latest telemetry of up to 100 controllers at
// once via the shared tlx batch endpoint.
func (s *GroboostService) MetricsMultiple(deviceSNs []string, page int) ([]BatchRecord[BoostData], error) {
	sns, err := resolveSerials(deviceSNs, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	serials, err := joinSerials(sns)
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

	return reshapeBatch[BoostData](body, minBatchListKey)
}

// MetricsHistory returns telemetry records for a date range of at most a week.
func (s *GroboostService) MetricsHistory(deviceSN string, opts HistoryOptions) (*GroboostMetricsHistory, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	start, end, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("boost_sn", sn).
		setDate("start_date", start).
		setDate("end_date", end).
		setOptString("timezone_id", opts.Timezone).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.post(groboostHistoryURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[GroboostMetricsHistory](body)
}

// BoostData is one telemetry snapshot of a GroBoost controller. The three
// heater channels report as a/b/c prefixed fields.
type BoostData struct {
	Address          Int       `json:"addr"`
	AFreq            Float     `json:"afreq"`
	AIpv             Float     `json:"aipv"`
	AJobsModel       Int       `json:"ajobsModel"`
	ALoadNormalPower Float     `json:"aloadNormalPower"`
	AMaxTemp         Float     `json:"amaxTemp"`
	AMinTemp         Float     `json:"aminTemp"`
	AOnOff           Bool      `json:"aonOff"`
	APpv             Float     `json:"appv"`
	ASetPower        Float     `json:"asetPower"`
	AStartPower      Float     `json:"astartPower"`
	ATemp            Float     `json:"atemp"`
	ATime            String    `json:"atime"`
	ATotalEnergy     Float     `json:"atotalEnergy"`
	AVpv             Float     `json:"avpv"`
	BFreq            Float     `json:"bfreq"`
	BIpv             Float     `json:"bipv"`
	BLoadNormalPower Float     `json:"bloadNormalPower"`
	BMaxTemp         Float     `json:"bmaxTemp"`
	BMinTemp         Float     `json:"bminTemp"`
	BOnOff           Bool      `json:"bonOff"`
	BPpv             Float     `json:"bppv"`
	BStartPower      Float     `json:"bstartPower"`
	BTemp            Float     `json:"btemp"`
	BTime            String    `json:"btime"`
	BTotalEnergy     Float     `json:"btotalEnergy"`
	BVpv             Float     `json:"bvpv"`
	Calendar         Timestamp `json:"calendar"`
	CFreq            Float     `json:"cfreq"`
	CIpv             Float     `json:"cipv"`
	CLoadNormalPower Float     `json:"cloadNormalPower"`
	CMaxTemp         Float     `json:"cmaxTemp"`
	CMinTemp         Float     `json:"cminTemp"`
	COnOff           Bool      `json:"conOff"`
	CPpv             Float     `json:"cppv"`
	CStartPower      Float     `json:"cstartPower"`
	CTemp            Float     `json:"ctemp"`
	CTime            String    `json:"ctime"`
	CTotalEnergy     Float     `json:"ctotalEnergy"`
	Current          Float     `json:"current"`
	CVpv             Float     `json:"cvpv"`
	DataloggerSN     String    `json:"datalogger_sn"`
	DeviceType       String    `json:"deviceType"`
	DPower           Float     `json:"dpower"`
	DryContactOnOff  Bool      `json:"dryContactOnOff"`
	DryContactStatus Int       `json:"dryContactStatus"`
	DryContactTime   String    `json:"dryContactTime"`
	DTotalEnergy     Float     `json:"dtotalEnergy"`
	FwVersion        String    `json:"fwVersion"`
	JobsModel        Int       `json:"jobsModel"`
	LoadDeviceType   Int       `json:"loadDeviceType"`
	LoadPriority     Int       `json:"loadPriority"`
	MaxTemp          Float     `json:"maxTemp"`
	MinTime          Float     `json:"minTime"`
	Power            Float     `json:"power"`
	PowerFactor      Float     `json:"powerFactor"`
	ResetFactory     Int       `json:"resetFactory"`
	Restart          Int       `json:"restart"`
	RfCommand        String    `json:"rfCommand"`
	RfPair           Float     `json:"rfPair"`
	Rs485Addr        Int       `json:"rs485Addr"`
	Rs485Baudrate    Int       `json:"rs485BaudRate"`
	SerialNum        String    `json:"serialNum"`
	Status           Int       `json:"status"`
	SysTime          Timestamp `json:"sysTime"`
	TargetPower      Float     `json:"targetPower"`
	Temp             Float     `json:"temp"`
	TempEnable       Float     `json:"tempEnable"`
	Temperature      Float     `json:"temperature"`
	TimeText         Timestamp `json:"timeText"`
	TotalEnergy      Float     `json:"totalEneny"`
	TotalNumber      Int       `json:"totalNumber"`
	TuningState      Int       `json:"tuningState"`
	Version          String    `json:"version"`
	Voltage          Float     `json:"voltage"`
	WaterHeaterPower Float     `json:"waterHeaterPower"`
	WaterState       Int       `json:"waterState"`
	WithTime         Bool      `json:"withTime"`
}

// SpctData is the single-phase current transformer reading attached to a
// GroBoost controller.
type SpctData struct {
	ActiveEnergy     Float     `json:"activeEnergy"`
	ActivePower      Float     `json:"activePower"`
	Address          Int       `json:"address"`
	ApparentPower    Float     `json:"apparentPower"`
	Calendar         Timestamp `json:"calendar"`
	DataloggerSN     String    `json:"dataloggerSn"`
	DeviceSN         String    `json:"deviceSn"`
	FeiLvBoZEnergy   Float     `json:"feiLvBoZEnergy"`
	FeiLvFengZEnergy Float     `json:"feiLvFengZEnergy"`
	FeiLvGuZEnergy   Float     `json:"feiLvGuZEnergy"`
	FeiLvPingZEnergy Float     `json:"feiLvPingZEnergy"`
	GridEnergy       Float     `json:"gridEnergy"`
	GridEnergyToday  Float     `json:"gridEnergyToday"`
	InstallLocation  Float     `json:"installLocation"`
	Lost             Bool      `json:"lost"`
	PowerFactor      Float     `json:"powerFactor"`
	ReactiveEnergy   Float     `json:"reactiveEnergy"`
	ReactivePower    Float     `json:"reactivePower"`
	TimeText         String    `json:"timeText"`
	TotalEnergy      Float     `json:"totalEnergy"`
	UserEnergy       Float     `json:"userEnergy"`
	UserEnergyToday  Float     `json:"userEnergyToday"`
}

// GroboostDetailData holds static device information of a GroBoost
// controller plus the latest readings of its attached sensors.
type GroboostDetailData struct {
	Address            Int                   `json:"addr"`
	AmmeterData        *SmartMeterEnergyData `json:"ammeterData"`
	BoostData          *BoostData            `json:"boostData"`
	DataloggerSN       String                `json:"dataLogSn"`
	DeviceName         String                `json:"deviceName"`
	DeviceSN           String                `json:"deviceSn"`
	DeviceType         String                `json:"deviceType"`
	DeviceTypeInt      Int                   `json:"deviceTypeInt"`
	EnvData            *EnvSensorMetricsData `json:"envData"`
	ImgPath            String                `json:"imgPath"`
	Irradiantion       Float                 `json:"irradiantion"`
	Key                String                `json:"key"`
	LastUpdateTime     Timestamp             `json:"lastUpdateTime"`
	LastUpdateTimeText Timestamp             `json:"lastUpdateTimeText"`
	Level              Int                   `json:"level"`
	Location           String                `json:"location"`
	Lost               Bool                  `json:"lost"`
	MeterCT            Int                   `json:"meterCT"`
	ParentID           String                `json:"parentID"`
	ParentSN           String                `json:"parentSN"`
	PlantID            Int                   `json:"plantId"`
	PrMonth            Float                 `json:"prMonth"`
	Raillog            Bool                  `json:"raillog"`
	SpctData           *SpctData             `json:"spctData"`
	TcpServerIP        String                `json:"tcpServerIp"`
	Timezone           Float                 `json:"timezone"`
	TreeID             String                `json:"treeID"`
	TreeName           String                `json:"treeName"`
}

// GroboostDetails is the response of the static-detail read.
type GroboostDetails struct {
	ResponseMeta
	Data         *GroboostDetailData `json:"data"`
	DataloggerSN String              `json:"datalogger_sn"`
	DeviceSN     String              `json:"device_sn"`
}

// GroboostMetrics is the response of the latest-telemetry read.
type GroboostMetrics struct {
	ResponseMeta
	Data         *BoostData `json:"data"`
	DataloggerSN String     `json:"datalogger_sn"`
	DeviceSN     String     `json:"device_sn"`
}

// GroboostMetricsHistoryData pages through historical telemetry records.
type GroboostMetricsHistoryData struct {
	Count           Int         `json:"count"`
	NextPageStartID Int         `json:"next_page_start_id"`
	DeviceSN        String      `json:"boost_sn"`
	DataloggerSN    String      `json:"datalogger_sn"`
	Datas           []BoostData `json:"datas"`
}

// GroboostMetricsHistory is the response of the historical telemetry read.
type GroboostMetricsHistory struct {
	ResponseMeta
	Data *GroboostMetricsHistoryData `json:"data"`
}
