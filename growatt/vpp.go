package growatt

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	vppSocURI           = "device/vpp/getSocData"
	vppWriteURI         = "vppRemoteSetNew"
	vppWriteMultipleURI = "vppSetNew"
)

// VppService covers the virtual power plant endpoints available for MIN, SPA
// and SPH storage models.
type VppService struct {
	session *Session
}

// Soc reads the current battery state of charge.
func (s *VppService) Soc(deviceSN string) (*VppSoc, error) {
	body, err := s.session.post(vppSocURI, newParams().set("vppSn", deviceSN))
	if err != nil {
		return nil, err
	}

	return parseResponse[VppSoc](body)
}

// Write sets a charge (positive) or discharge (negative) percentage taking
// effect at the given time of day.
func (s *VppService) Write(deviceSN string, hour, minute, percentage int) (*VppWrite, error) {
	// The endpoint encodes the time of day as hour*24+minute, not hour*60:
	// a vendor quirk, kept as documented.
	timeInt := hour*24 + minute
	if timeInt < 0 || timeInt > 1440 {
		return nil, errors.Errorf("time range must not exceed 24 hours, got %02d:%02d", hour, minute)
	}

	if percentage < -100 || percentage > 100 {
		return nil, errors.Errorf("percentage must be between -100 and 100, got %d", percentage)
	}

	form := newParams().
		set("vppSn", deviceSN).
		setInt("time", timeInt).
		setInt("percentage", percentage)

	body, err := s.session.post(vppWriteURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[VppWrite](body)
}

// VppTimePeriod is one entry of a charge/discharge schedule. Percentage is
// positive for charging and negative for discharging.
type VppTimePeriod struct {
	Percentage int
	Start      ForcedTime
	End        ForcedTime
}

// WriteMultiple sets a full charge/discharge schedule. Periods are validated
// before the request: percentages within -100..100 and each end after its
// start.
func (s *VppService) WriteMultiple(deviceSN string, periods []VppTimePeriod) (*VppWrite, error) {
	type wirePeriod struct {
		Percentage int `json:"percentage"`
		StartTime  int `json:"startTime"`
		EndTime    int `json:"endTime"`
	}

	encoded := make([]wirePeriod, 0, len(periods))

	for _, period := range periods {
		if period.Percentage < -100 || period.Percentage > 100 {
			return nil, errors.Errorf("percentage must be between -100 and 100, got %d", period.Percentage)
		}

		start := period.Start.Hour*60 + period.Start.Minute
		end := period.End.Hour*60 + period.End.Minute

		if end <= start {
			return nil, errors.Errorf("end time must be after start time, got %s ~ %s", period.Start, period.End)
		}

		encoded = append(encoded, wirePeriod{
			Percentage: period.Percentage,
			StartTime:  start,
			EndTime:    end,
		})
	}

	timePeriods, err := json.Marshal(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode time periods")
	}

	form := newParams().
		set("vppSn", deviceSN).
		set("timePeriods", string(timePeriods))

	body, err := s.session.post(vppWriteMultipleURI, form)
	if err != nil {
		return nil, err
	}

	return parseResponse[VppWrite](body)
}

// VppSoc is the response of the SOC read. The values sit at the envelope
// level rather than under a data key.
type VppSoc struct {
	ResponseMeta
	Soc          Float  `json:"soc"`
	DataloggerSN String `json:"datalogger_sn"`
	DeviceSN     String `json:"device_sn"`
}

// VppWrite is the response of both VPP writes.
type VppWrite struct {
	ResponseMeta
	Data Int `json:"data"`
}
