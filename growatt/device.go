package growatt

import "time"

const (
	deviceTypeInfoURI   = "device/check/sn"
	deviceEnergyDayURI  = "device/inverter/day_energy"
	deviceDataloggerURI = "device/sn_datalog"
	deviceCreateDateURI = "device/all/create_date"
)

// DeviceType is the numeric device class reported by the type lookup.
type DeviceType int

const (
	DeviceTypeInverter DeviceType = 16
	DeviceTypeSph      DeviceType = 17
	DeviceTypeMax      DeviceType = 18
	DeviceTypeSpa      DeviceType = 19
	DeviceTypeMin      DeviceType = 22
	DeviceTypePcs      DeviceType = 81
	DeviceTypeHps      DeviceType = 82
	DeviceTypePbd      DeviceType = 83
	DeviceTypeStorage  DeviceType = 96
	DeviceTypeWit      DeviceType = 218
	DeviceTypeSphs     DeviceType = 260
)

// DeviceService covers cross-family device lookups that work on any serial
// number regardless of the device class.
type DeviceService struct {
	session *Session
}

// TypeInfo resolves the device class of a serial number. Works for inverters
// and dataloggers alike.
func (s *DeviceService) TypeInfo(deviceSN string) (*DeviceTypeInfo, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	body, err := s.session.get(deviceTypeInfoURI, newParams().set("dataloggerSn", sn))
	if err != nil {
		return nil, err
	}

	return parseResponse[DeviceTypeInfo](body)
}

// EnergyDay returns the energy a device produced on one day. A zero date means
// today.
func (s *DeviceService) EnergyDay(deviceSN string, date time.Time) (*DeviceEnergyDay, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	query := newParams().
		set("device_sn", sn).
		setDate("date", resolveDate(date))

	body, err := s.session.get(deviceEnergyDayURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[DeviceEnergyDay](body)
}

// Datalogger looks up the datalogger a device reports through.
func (s *DeviceService) Datalogger(deviceSN string) (*DeviceDatalogger, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	body, err := s.session.post(deviceDataloggerURI, newParams().set("device_sn", sn))
	if err != nil {
		return nil, err
	}

	return parseResponse[DeviceDatalogger](body)
}

// CreateDates returns registration and last-contact timestamps for up to 100
// devices at once, keyed by serial number.
func (s *DeviceService) CreateDates(deviceSNs []string, page int) (*DeviceCreateDate, error) {
	sns, err := resolveSerials(deviceSNs, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	devices, err := joinSerials(sns)
	if err != nil {
		return nil, err
	}

	form := newParams().
		setPage("pageNum", page).
		set("devices", devices)

	body, err := s.session.post(deviceCreateDateURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[DeviceCreateDate](body)
}

// Plant looks up the plant a device is registered in. Shorthand for the plant
// service's ByDevice.
func (s *DeviceService) Plant(deviceSN string) (*PlantInfo, error) {
	sn, err := resolveSerial(deviceSN, s.session.defaultSerial)
	if err != nil {
		return nil, err
	}

	body, err := s.session.post(plantByDeviceURI, newParams().set("device_sn", sn))
	if err != nil {
		return nil, err
	}

	return parseResponse[PlantInfo](body)
}

// DeviceTypeInfo is the response of the device class lookup. Obj distinguishes
// inverters (1), storage machines (2), dataloggers (3) and others (4);
// DeviceType refines that to the concrete family.
type DeviceTypeInfo struct {
	DeviceType  Int    `json:"device_type"`
	Dtc         Int    `json:"dtc"`
	HaveMeter   Bool   `json:"have_meter"`
	InSystem    Bool   `json:"in_system"`
	Model       String `json:"model"`
	Msg         String `json:"msg"`
	NormalPower Int    `json:"normal_power"`
	Obj         Int    `json:"obj"`
	Result      Int    `json:"result"`
}

// DeviceEnergyDay is the response of the daily-energy read. Data is the
// production in kWh.
type DeviceEnergyDay struct {
	ResponseMeta
	Data         Float  `json:"data"`
	DataloggerSN String `json:"datalogger_sn"`
	DeviceSN     String `json:"device_sn"`
}

// DeviceDataloggerData carries the serial of the datalogger a device reports
// through.
type DeviceDataloggerData struct {
	DataloggerSN String `json:"datalogSN"`
}

// DeviceDatalogger is the response of the datalogger lookup.
type DeviceDatalogger struct {
	ResponseMeta
	Data *DeviceDataloggerData `json:"data"`
}

// DeviceBasicData holds the registration metadata of one device.
type DeviceBasicData struct {
	CreateTime     Timestamp `json:"createTime"`
	DataloggerSN   String    `json:"datalogSn"`
	DeviceName     String    `json:"deviceName"`
	DeviceSN       String    `json:"deviceSn"`
	DeviceType     String    `json:"deviceType"`
	LastUpdateTime Timestamp `json:"lastUpdateTime"`
	TableName      String    `json:"tableName"`
}

// DeviceCreateDate is the response of the batch registration read, keyed by
// device serial number.
type DeviceCreateDate struct {
	ResponseMeta
	Data map[string]DeviceBasicData `json:"data"`
}
