package growatt

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

const (
	v4DeviceListURI    = "new-api/queryDeviceList"
	v4DetailsURI       = "new-api/queryDeviceInfo"
	v4EnergyURI        = "new-api/queryLastData"
	v4EnergyHistoryURI = "new-api/queryHistoricalData"
	v4ReadVppParamURI  = "new-api/readVppParam"
	v4SetVppParamURI   = "new-api/setVppParam"
	v4OnOffURI         = "new-api/setOnOrOff"
	v4ActivePowerURI   = "new-api/setActivePower"
	v4SocUpperLimitURI = "new-api/setSocUpperLimit"
	v4SocLowerLimitURI = "new-api/setSocLowerLimit"
	v4TimeSegmentURI   = "new-api/setTimeSegment"
)

// V4DeviceType selects the device family on the v4 "new-api" endpoints. The
// values match the device_type strings returned by DeviceList.
type V4DeviceType string

// Device families accepted by the v4 endpoints.
const (
	V4DeviceTypeInverter V4DeviceType = "inv"
	V4DeviceTypeStorage  V4DeviceType = "storage"
	V4DeviceTypeMax      V4DeviceType = "max"
	V4DeviceTypeSph      V4DeviceType = "sph"
	V4DeviceTypeSpa      V4DeviceType = "spa"
	V4DeviceTypeMin      V4DeviceType = "min"
	V4DeviceTypeWit      V4DeviceType = "wit"
	V4DeviceTypeSphs     V4DeviceType = "sph-s"
	V4DeviceTypeNoah     V4DeviceType = "noah"
)

// V4Service wraps the v4 "new-api" surface shared by all device families. The
// WIT, SPH-S and NOAH services route their calls through here; the other
// families can use it directly via the typed package-level helpers.
type V4Service struct {
	session *Session
}

// DeviceList pages through the devices visible to the API token. Only devices
// on this list may be queried through the v4 endpoints.
func (s *V4Service) DeviceList(page int) (*V4DeviceList, error) {
	body, err := s.session.postV4(v4DeviceListURI, newParams().setPage("page", page))
	if err != nil {
		return nil, err
	}

	return parseResponse[V4DeviceList](body)
}

// SettingReadVppParam reads one VPP parameter (set_param_1 ... set_param_n).
// Supported by WIT storage models only.
func (s *V4Service) SettingReadVppParam(deviceSN string, deviceType V4DeviceType, parameterID string) (*V4VppParam, error) {
	if parameterID == "" {
		return nil, ErrNoParameterID
	}

	form := newParams().
		set("deviceSn", deviceSN).
		set("deviceType", string(deviceType)).
		set("parameterId", parameterID)

	body, err := s.session.postV4(v4ReadVppParamURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[V4VppParam](body)
}

// SettingWriteVppParam writes one VPP parameter. Supported by WIT storage
// models only.
func (s *V4Service) SettingWriteVppParam(deviceSN string, deviceType V4DeviceType, parameterID, value string) (*V4SettingWrite, error) {
	if parameterID == "" {
		return nil, ErrNoParameterID
	}

	form := newParams().
		set("deviceSn", deviceSN).
		set("deviceType", string(deviceType)).
		set("parameterId", parameterID).
		set("value", value)

	body, err := s.session.postV4(v4SetVppParamURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[V4SettingWrite](body)
}

// SettingWriteOnOff powers a device on or off.
func (s *V4Service) SettingWriteOnOff(deviceSN string, deviceType V4DeviceType, on bool) (*V4SettingWrite, error) {
	onOff := 0
	if on {
		onOff = 1
	}

	form := newParams().
		set("deviceSn", deviceSN).
		set("deviceType", string(deviceType)).
		setInt("onOff", onOff)

	body, err := s.session.postV4(v4OnOffURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[V4SettingWrite](body)
}

// SettingWriteActivePower sets the active power limit. The unit depends on
// the family: a percentage for inverter and storage types, watts for NOAH
// balcony storage. Family services validate the range before calling here.
func (s *V4Service) SettingWriteActivePower(deviceSN string, deviceType V4DeviceType, activePower int) (*V4SettingWrite, error) {
	form := newParams().
		set("deviceSn", deviceSN).
		set("deviceType", string(deviceType)).
		setInt("activePower", activePower)

	body, err := s.session.postV4(v4ActivePowerURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[V4SettingWrite](body)
}

// SettingWriteSocUpperLimit sets the charge stop SOC in percent.
func (s *V4Service) SettingWriteSocUpperLimit(deviceSN string, deviceType V4DeviceType, percentage int) (*V4SettingWrite, error) {
	if percentage < 0 || percentage > 100 {
		return nil, errors.Errorf("soc limit must be between 0 and 100, got %d", percentage)
	}

	form := newParams().
		set("deviceSn", deviceSN).
		set("deviceType", string(deviceType)).
		setInt("soc", percentage)

	body, err := s.session.postV4(v4SocUpperLimitURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[V4SettingWrite](body)
}

// SettingWriteSocLowerLimit sets the discharge stop SOC in percent.
func (s *V4Service) SettingWriteSocLowerLimit(deviceSN string, deviceType V4DeviceType, percentage int) (*V4SettingWrite, error) {
	if percentage < 0 || percentage > 100 {
		return nil, errors.Errorf("soc limit must be between 0 and 100, got %d", percentage)
	}

	form := newParams().
		set("deviceSn", deviceSN).
		set("deviceType", string(deviceType)).
		setInt("soc", percentage)

	body, err := s.session.postV4(v4SocLowerLimitURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[V4SettingWrite](body)
}

// V4TimeSegment is one of the nine schedulable working periods of a NOAH
// device.
type V4TimeSegment struct {
	// Segment selects the period slot, 1-9.
	Segment int
	// Start and End bound the period within the day.
	Start ForcedTime
	End   ForcedTime
	// LoadPriority prefers powering the load over charging the battery.
	LoadPriority bool
	// PowerWatt is the output power of the period, 0-800 W.
	PowerWatt int
	// Enabled switches the period on.
	Enabled bool
}

// SettingWriteTimeSegment programs one working period slot.
func (s *V4Service) SettingWriteTimeSegment(deviceSN string, deviceType V4DeviceType, segment V4TimeSegment) (*V4SettingWrite, error) {
	if segment.Segment < 1 || segment.Segment > 9 {
		return nil, errors.Errorf("time segment number must be between 1 and 9, got %d", segment.Segment)
	}

	mode := 0
	if segment.LoadPriority {
		mode = 1
	}

	enabled := 0
	if segment.Enabled {
		enabled = 1
	}

	form := newParams().
		set("deviceSn", deviceSN).
		set("deviceType", string(deviceType)).
		setInt("timeSegmentId", segment.Segment).
		set("startTime", segment.Start.String()).
		set("endTime", segment.End.String()).
		setInt("mode", mode).
		setInt("power", segment.PowerWatt).
		setInt("enable", enabled)

	body, err := s.session.postV4(v4TimeSegmentURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[V4SettingWrite](body)
}

// details and friends fetch the raw body for the typed package-level helpers;
// Go methods cannot carry their own type parameters.

func (s *V4Service) details(deviceType V4DeviceType, deviceSNs []string) ([]byte, error) {
	serials, err := joinSerials(deviceSNs)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("deviceSn", serials).
		set("deviceType", string(deviceType))

	return s.session.postV4(v4DetailsURI, form)
}

func (s *V4Service) energy(deviceType V4DeviceType, deviceSNs []string) ([]byte, error) {
	serials, err := joinSerials(deviceSNs)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("deviceSn", serials).
		set("deviceType", string(deviceType))

	return s.session.postV4(v4EnergyURI, form)
}

func (s *V4Service) energyHistory(deviceType V4DeviceType, deviceSNs []string, date time.Time) ([]byte, error) {
	serials, err := joinSerials(deviceSNs)
	if err != nil {
		return nil, err
	}

	form := newParams().
		set("deviceSn", serials).
		set("deviceType", string(deviceType)).
		setDate("date", resolveDate(date))

	return s.session.postV4(v4EnergyHistoryURI, form)
}

// V4DetailsOf retrieves static details for up to 100 devices of one family,
// decoding each entry as T. The family services wrap this with their concrete
// models; other callers pick the matching detail type themselves.
func V4DetailsOf[T any](s *V4Service, deviceType V4DeviceType, deviceSNs ...string) (*V4Details[T], error) {
	body, err := s.details(deviceType, deviceSNs)
	if err != nil {
		return nil, err
	}

	return parseResponse[V4Details[T]](body)
}

// V4EnergyOf retrieves the latest telemetry for up to 100 devices of one
// family, decoding each entry as T.
func V4EnergyOf[T any](s *V4Service, deviceType V4DeviceType, deviceSNs ...string) (*V4Energy[T], error) {
	body, err := s.energy(deviceType, deviceSNs)
	if err != nil {
		return nil, err
	}

	return parseResponse[V4Energy[T]](body)
}

// V4EnergyHistoryOf retrieves one day of telemetry records for a single
// device, decoding each record as T. A zero date defaults to today.
func V4EnergyHistoryOf[T any](s *V4Service, deviceType V4DeviceType, deviceSN string, date time.Time) (*V4EnergyHistory[T], error) {
	body, err := s.energyHistory(deviceType, []string{deviceSN}, date)
	if err != nil {
		return nil, err
	}

	return parseResponse[V4EnergyHistory[T]](body)
}

// V4EnergyHistoryMultipleOf retrieves one day of telemetry records for up to
// 100 devices, keyed by serial number.
func V4EnergyHistoryMultipleOf[T any](s *V4Service, deviceType V4DeviceType, date time.Time, deviceSNs ...string) (*V4EnergyHistoryMultiple[T], error) {
	body, err := s.energyHistory(deviceType, deviceSNs, date)
	if err != nil {
		return nil, err
	}

	return parseResponse[V4EnergyHistoryMultiple[T]](body)
}

// V4DeviceData is one entry of the v4 device list.
type V4DeviceData struct {
	CreateDate   Timestamp `json:"create_date"`
	DataloggerSN String    `json:"datalogger_sn"`
	DeviceSN     String    `json:"device_sn"`
	DeviceType   String    `json:"device_type"`
}

// V4DeviceListData pages through the devices visible to the token.
type V4DeviceListData struct {
	Count      Int            `json:"count"`
	Data       []V4DeviceData `json:"data"`
	LastPager  Bool           `json:"last_pager"`
	NotPager   Bool           `json:"not_pager"`
	PageSize   Int            `json:"page_size"`
	Pages      Int            `json:"pages"`
	StartCount Int            `json:"start_count"`
}

// V4DeviceList is the response of the v4 device list read.
type V4DeviceList struct {
	V4ResponseMeta
	Data *V4DeviceListData `json:"data"`
}

// V4DeviceGroups is the per-family payload of the v4 detail and telemetry
// reads: a single map entry keyed by the family's list key ("wit", "sph-s",
// "noah", ...) holding the device entries.
type V4DeviceGroups[T any] map[string][]T

// Devices flattens the groups into one list. There is only ever one key, so
// no ordering concern arises.
func (g V4DeviceGroups[T]) Devices() []T {
	var out []T
	for _, devices := range g {
		out = append(out, devices...)
	}

	return out
}

// V4Details is the response of the batch static-detail read.
type V4Details[T any] struct {
	V4ResponseMeta
	Data V4DeviceGroups[T] `json:"data"`
}

// V4Energy is the response of the batch latest-telemetry read.
type V4Energy[T any] struct {
	V4ResponseMeta
	Data V4DeviceGroups[T] `json:"data"`
}

// V4EnergyHistoryData pages through one day of telemetry records.
type V4EnergyHistoryData[T any] struct {
	Datas    []T  `json:"datas"`
	HaveNext Bool `json:"have_next"`
	Start    Int  `json:"start"`
}

// V4EnergyHistory is the response of the single-device history read.
type V4EnergyHistory[T any] struct {
	V4ResponseMeta
	Data *V4EnergyHistoryData[T] `json:"data"`
}

// V4EnergyHistoryMultiple is the response of the multi-device history read,
// keyed by device serial number.
type V4EnergyHistoryMultiple[T any] struct {
	V4ResponseMeta
	Data map[string][]T `json:"data"`
}

// V4SettingWrite is the response of all v4 setting writes. Data carries no
// payload on success.
type V4SettingWrite struct {
	V4ResponseMeta
	Data json.RawMessage `json:"data"`
}

// V4VppTimePeriod is one entry of a VPP period schedule parameter. Start and
// end are minutes since midnight.
type V4VppTimePeriod struct {
	Percentage Int `json:"percentage"`
	StartTime  Int `json:"startTime"`
	EndTime    Int `json:"endTime"`
}

// V4VppParam is the response of the VPP parameter read. Data is a scalar for
// most parameters and a period list for the schedule ones; use Value or
// TimePeriods depending on the parameter read.
type V4VppParam struct {
	V4ResponseMeta
	Data json.RawMessage `json:"data"`
}

// Value decodes the parameter as a scalar.
func (p *V4VppParam) Value() (Float, error) {
	var v Float
	if err := json.Unmarshal(p.Data, &v); err != nil {
		return Float{}, errors.Wrap(err, "response validation failed")
	}

	return v, nil
}

// TimePeriods decodes the parameter as a period schedule.
func (p *V4VppParam) TimePeriods() ([]V4VppTimePeriod, error) {
	var v []V4VppTimePeriod
	if err := json.Unmarshal(p.Data, &v); err != nil {
		return nil, errors.Wrap(err, "response validation failed")
	}

	return v, nil
}
