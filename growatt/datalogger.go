package growatt

const (
	dataloggerValidateURI = "device/datalogger/validate"
	envSensorListURI      = "device/env/env_list"
	smartMeterListURI     = "device/ammeter/meter_list"
)

// DataloggerService covers datalogger validation and the sensors attached to
// a datalogger's RS485 bus.
type DataloggerService struct {
	session *Session
}

// Validate checks a datalogger serial number against its verification code,
// the step required before adding the datalogger to a plant.
func (s *DataloggerService) Validate(dataloggerSN, validationCode string) (*DataloggerValidation, error) {
	form := newParams().
		set("datalogSn", dataloggerSN).
		set("valiCode", validationCode)

	body, err := s.session.post(dataloggerValidateURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[DataloggerValidation](body)
}

// ListEnvSensors returns the environmental sensors connected to a datalogger.
// The returned bus addresses feed the env sensor service's reads.
func (s *DataloggerService) ListEnvSensors(dataloggerSN string, page, limit int) (*EnvSensorList, error) {
	query := newParams().
		set("datalog_sn", dataloggerSN).
		setOptInt("page", page).
		setOptInt("perpage", limit)

	body, err := s.session.get(envSensorListURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[EnvSensorList](body)
}

// ListSmartMeters returns the smart meters connected to a datalogger. The
// returned bus addresses feed the smart meter service's reads.
func (s *DataloggerService) ListSmartMeters(dataloggerSN string, page, limit int) (*SmartMeterList, error) {
	query := newParams().
		set("datalog_sn", dataloggerSN).
		setOptInt("page", page).
		setOptInt("perpage", limit)

	body, err := s.session.get(smartMeterListURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[SmartMeterList](body)
}

// DataloggerValidationData identifies where a validated datalogger is already
// registered, if anywhere.
type DataloggerValidationData struct {
	DataloggerSN String `json:"datalogger_sn"`
	PlantID      Int    `json:"plant_id"`
	UserID       Int    `json:"user_id"`
}

// DataloggerValidation is the response of the validation call.
type DataloggerValidation struct {
	ResponseMeta
	Data *DataloggerValidationData `json:"data"`
}

// EnvSensorData is one environmental sensor on the datalogger bus. Device
// type 48 is the environmental tester.
type EnvSensorData struct {
	Address        Int       `json:"address"`
	DataloggerSN   String    `json:"datalog_sn"`
	DeviceName     String    `json:"deviceName"`
	DeviceType     String    `json:"deviceType"`
	LastUpdateTime Timestamp `json:"lastUpdateTime"`
	Lost           Bool      `json:"lost"`
}

// EnvSensorListData pages through the sensors of one datalogger.
type EnvSensorListData struct {
	Count        Int             `json:"count"`
	DataloggerSN String          `json:"datalogger_sn"`
	Envs         []EnvSensorData `json:"envs"`
}

// EnvSensorList is the response of the sensor list read.
type EnvSensorList struct {
	ResponseMeta
	Data *EnvSensorListData `json:"data"`
}

// SmartMeterData is one smart meter on the datalogger bus. Device types: 64
// smart meter, 66 SDM one-way, 67 SDM three-way, 70 CHNT one-way, 71 CHNT
// three-way.
type SmartMeterData struct {
	Address        Int       `json:"address"`
	DataloggerSN   String    `json:"datalog_sn"`
	DeviceName     String    `json:"deviceName"`
	DeviceType     String    `json:"deviceType"`
	LastUpdateTime Timestamp `json:"lastUpdateTime"`
	Lost           Bool      `json:"lost"`
}

// SmartMeterListData pages through the meters of one datalogger.
type SmartMeterListData struct {
	Count        Int              `json:"count"`
	DataloggerSN String           `json:"datalogger_sn"`
	Meters       []SmartMeterData `json:"meters"`
}

// SmartMeterList is the response of the meter list read.
type SmartMeterList struct {
	ResponseMeta
	Data *SmartMeterListData `json:"data"`
}
