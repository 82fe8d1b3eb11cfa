package growatt

import (
	"time"

	"github.com/michalkurzeja/go-clock"
)

const (
	plantListByUserURI = "plant/user_plant_list"
	plantListURI       = "plant/list"
	plantDetailsURI    = "plant/details"
	plantOverviewURI   = "plant/data"
	plantEnergyURI     = "plant/energy"
	plantPowerURI      = "plant/power"
	plantByDeviceURI   = "plant/sn_plant"
)

// TimeUnit selects the aggregation bucket of a plant energy history query.
type TimeUnit string

const (
	TimeUnitDay   TimeUnit = "day"
	TimeUnitMonth TimeUnit = "month"
	TimeUnitYear  TimeUnit = "year"
)

// PlantService covers plant management and plant-level production figures.
type PlantService struct {
	session *Session
}

// PlantListOptions narrows and pages the account-wide plant list. SearchType
// and SearchKeyword are sent together; the API supports searching by plant
// name.
type PlantListOptions struct {
	Page          int
	Limit         int
	SearchType    string
	SearchKeyword string
}

// PlantEnergyHistoryOptions bounds a production history query. Both dates
// default to today; a single present bound is copied to the other. The
// permitted span depends on Unit: up to a week for day buckets, the same or
// previous year for month buckets, and 20 years for year buckets.
type PlantEnergyHistoryOptions struct {
	Start time.Time
	End   time.Time
	Unit  TimeUnit
	Page  int
	Limit int
}

func (o PlantEnergyHistoryOptions) resolve() (time.Time, time.Time, TimeUnit, error) {
	unit := o.Unit
	if unit == "" {
		unit = TimeUnitDay
	}

	start, end := o.Start, o.End

	switch {
	case start.IsZero() && end.IsZero():
		today := clock.Now()
		start, end = today, today
	case start.IsZero():
		start = end
	case end.IsZero():
		end = start
	}

	switch unit {
	case TimeUnitYear:
		if end.Year()-start.Year() > 20 {
			return time.Time{}, time.Time{}, "", ErrDateRangeTooWide
		}
	case TimeUnitMonth:
		if end.Year()-start.Year() > 1 {
			return time.Time{}, time.Time{}, "", ErrDateRangeTooWide
		}
	default:
		if end.Sub(start) > 7*24*time.Hour {
			return time.Time{}, time.Time{}, "", ErrDateRangeTooWide
		}
	}

	return start, end, unit, nil
}

// List returns the plants visible to the API account.
func (s *PlantService) List(opts PlantListOptions) (*PlantList, error) {
	query := newParams().
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit).
		setOptString("search_type", opts.SearchType).
		setOptString("search_keyword", opts.SearchKeyword)

	body, err := s.session.get(plantListURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[PlantList](body)
}

// ListByUser returns the plants owned by one end user of the account.
func (s *PlantService) ListByUser(username string, page, limit int) (*PlantList, error) {
	form := newParams().
		set("user_name", username).
		setOptInt("page", page).
		setOptInt("perpage", limit)

	body, err := s.session.post(plantListByUserURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[PlantList](body)
}

// Details returns the master data of a plant.
func (s *PlantService) Details(plantID int) (*PlantDetails, error) {
	body, err := s.session.get(plantDetailsURI, newParams().setInt("plant_id", plantID))
	if err != nil {
		return nil, err
	}

	return parseResponse[PlantDetails](body)
}

// EnergyOverview returns the production summary of a plant: current power plus
// daily, monthly, yearly and lifetime energy.
func (s *PlantService) EnergyOverview(plantID int) (*PlantEnergyOverview, error) {
	body, err := s.session.get(plantOverviewURI, newParams().setInt("plant_id", plantID))
	if err != nil {
		return nil, err
	}

	return parseResponse[PlantEnergyOverview](body)
}

// EnergyHistory returns per-day, per-month or per-year production figures.
// Month buckets come back as the first day of the month and year buckets as
// January 1st.
func (s *PlantService) EnergyHistory(plantID int, opts PlantEnergyHistoryOptions) (*PlantEnergyHistory, error) {
	start, end, unit, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	query := newParams().
		setInt("plant_id", plantID).
		setDate("start_date", start).
		setDate("end_date", end).
		set("time_unit", string(unit)).
		setOptInt("page", opts.Page).
		setOptInt("perpage", opts.Limit)

	body, err := s.session.get(plantEnergyURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[PlantEnergyHistory](body)
}

// Power returns the power curve of a plant for one day, sampled every five
// minutes. A zero date means today.
func (s *PlantService) Power(plantID int, date time.Time) (*PlantPower, error) {
	query := newParams().
		setInt("plant_id", plantID).
		setDate("date", resolveDate(date))

	body, err := s.session.get(plantPowerURI, query)
	if err != nil {
		return nil, err
	}

	return parseResponse[PlantPower](body)
}

// ByDevice looks up the plant a device is registered in.
func (s *PlantService) ByDevice(deviceSN string) (*PlantInfo, error) {
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

// PlantData is one entry of the plant list.
type PlantData struct {
	City         String `json:"city"`
	Country      String `json:"country"`
	CreateDate   Date   `json:"create_date"`
	CurrentPower Float  `json:"current_power"`
	ImageURL     String `json:"image_url"`
	Installer    String `json:"installer"`
	Latitude     Float  `json:"latitude"`
	LatitudeD    String `json:"latitude_d"`
	LatitudeF    String `json:"latitude_f"`
	Locale       String `json:"locale"`
	Longitude    Float  `json:"longitude"`
	Name         String `json:"name"`
	Operator     String `json:"operator"`
	PeakPower    Float  `json:"peak_power"`
	PlantID      Int    `json:"plant_id"`
	Status       Int    `json:"status"`
	TotalEnergy  Float  `json:"total_energy"`
	UserID       Int    `json:"user_id"`
}

// PlantListData pages through the plants of an account.
type PlantListData struct {
	Count  Int         `json:"count"`
	Plants []PlantData `json:"plants"`
}

// PlantList is the response of the plant list reads.
type PlantList struct {
	ResponseMeta
	Data *PlantListData `json:"data"`
}

// PlantDetailModule describes one PV module array of a plant.
type PlantDetailModule struct {
	Manufacturer String `json:"module_man"`
	Model        String `json:"module_md"`
	NumModules   Int    `json:"num_modules"`
}

// PlantDetailDatalogger describes the dataloggers installed in a plant.
type PlantDetailDatalogger struct {
	Manufacturer String `json:"datalogger_man"`
	Model        String `json:"datalogger_md"`
	Count        Int    `json:"datalogger_num"`
}

// PlantDetailInverter describes the inverters installed in a plant.
type PlantDetailInverter struct {
	Manufacturer String `json:"inverter_man"`
	Model        String `json:"inverter_md"`
	Count        Int    `json:"inverter_num"`
}

// PlantDetailMax describes the MAX inverters installed in a plant.
type PlantDetailMax struct {
	Manufacturer String `json:"max_man"`
	Model        String `json:"max_md"`
	Count        Int    `json:"max_num"`
}

// PlantDetailData holds the master data of a plant.
type PlantDetailData struct {
	Address1                 String                  `json:"address1"`
	Address2                 String                  `json:"address2"`
	Arrays                   []PlantDetailModule     `json:"arrays"`
	City                     String                  `json:"city"`
	Country                  String                  `json:"country"`
	CreateDate               Date                    `json:"create_date"`
	Currency                 String                  `json:"currency"`
	Dataloggers              []PlantDetailDatalogger `json:"dataloggers"`
	Description              String                  `json:"description"`
	DesignerContact          String                  `json:"designercontact"`
	DesignerOrganization     String                  `json:"designerorganization"`
	Elevation                Float                   `json:"elevation"`
	FinancierContact         String                  `json:"financiercontact"`
	FinancierOrganization    String                  `json:"financierorganization"`
	FixedAzimuth             Float                   `json:"fixed_azimuth"`
	FixedTilt                Float                   `json:"fixed_tilt"`
	GridType                 String                  `json:"grid_type"`
	ImageURL                 String                  `json:"image_url"`
	InstalledACCapacity      Float                   `json:"installed_ac_capacity"`
	InstalledDCCapacity      Float                   `json:"installed_dc_capacity"`
	InstalledPanelArea       Float                   `json:"installed_panel_area"`
	InstallerContact         String                  `json:"installercontact"`
	InstallerOrganization    String                  `json:"installerorganization"`
	Inverters                []PlantDetailInverter   `json:"inverters"`
	IrradiationSensorType    String                  `json:"irradiationsensor_type"`
	JurisdictionContact      String                  `json:"jurisdictioncontact"`
	JurisdictionOrganization String                  `json:"jurisdictionorganization"`
	Latitude                 Float                   `json:"latitude"`
	Locale                   String                  `json:"locale"`
	Longitude                Float                   `json:"longitude"`
	Maxs                     []PlantDetailMax        `json:"maxs"`
	Name                     String                  `json:"name"`
	Notes                    String                  `json:"notes"`
	OfftakerContact          String                  `json:"offtakercontact"`
	OfftakerOrganization     String                  `json:"offtakerorganization"`
	OperatorContact          String                  `json:"operatorcontact"`
	OperatorOrganization     String                  `json:"operatororganization"`
	OwnerContact             String                  `json:"ownercontact"`
	OwnerOrganization        String                  `json:"ownerorganization"`
	PeakPower                Float                   `json:"peak_power"`
	PlantType                Int                     `json:"plant_type"`
	Postal                   String                  `json:"postal"`
	State                    String                  `json:"state"`
	Status                   String                  `json:"status"`
	Timezone                 String                  `json:"timezone"`
	TrackerType              String                  `json:"tracker_type"`
	UserID                   Int                     `json:"user_id"`
	WeatherType              String                  `json:"weather_type"`
	WeatherSensorMan         String                  `json:"weathersensor_man"`
	WeatherSensorModel       String                  `json:"weathersensor_md"`
	WeatherSensorNum         String                  `json:"weathersensor_num"`
}

// PlantDetails is the response of the master-data read.
type PlantDetails struct {
	ResponseMeta
	Data *PlantDetailData `json:"data"`
}

// PlantEnergyOverviewData summarizes the production of a plant.
type PlantEnergyOverviewData struct {
	CurrentPower    Float     `json:"current_power"`
	TodayEnergy     Float     `json:"today_energy"`
	MonthlyEnergy   Float     `json:"monthly_energy"`
	YearlyEnergy    Float     `json:"yearly_energy"`
	TotalEnergy     Float     `json:"total_energy"`
	PeakPowerActual Float     `json:"peak_power_actual"`
	Efficiency      Float     `json:"efficiency"`
	CarbonOffset    Float     `json:"carbon_offset"`
	LastUpdateTime  Timestamp `json:"last_update_time"`
	Timezone        String    `json:"timezone"`
}

// PlantEnergyOverview is the response of the production summary read.
type PlantEnergyOverview struct {
	ResponseMeta
	Data *PlantEnergyOverviewData `json:"data"`
}

// PlantEnergyHistoryDate is one production bucket. For month and year units
// the date marks the first day of the period.
type PlantEnergyHistoryDate struct {
	Date   Date  `json:"date"`
	Energy Float `json:"energy"`
}

// PlantEnergyHistoryData pages through production buckets.
type PlantEnergyHistoryData struct {
	Count    Int                      `json:"count"`
	TimeUnit TimeUnit                 `json:"time_unit"`
	Energys  []PlantEnergyHistoryDate `json:"energys"`
}

// PlantEnergyHistory is the response of the production history read.
type PlantEnergyHistory struct {
	ResponseMeta
	Data *PlantEnergyHistoryData `json:"data"`
}

// PlantPowerDate is one five-minute power sample.
type PlantPowerDate struct {
	Time  Timestamp `json:"time"`
	Power Float     `json:"power"`
}

// PlantPowerData pages through the power samples of one day.
type PlantPowerData struct {
	Count  Int              `json:"count"`
	Powers []PlantPowerDate `json:"powers"`
}

// PlantPower is the response of the power curve read.
type PlantPower struct {
	ResponseMeta
	Data *PlantPowerData `json:"data"`
}

// PlantInfoData wraps the plant a device belongs to.
type PlantInfoData struct {
	Plant PlantData `json:"plant"`
}

// PlantInfo is the response of the plant-by-device lookup.
type PlantInfo struct {
	ResponseMeta
	Data *PlantInfoData `json:"data"`
}
