package growatt

import (
	"strconv"

	"github.com/pkg/errors"
)

// registerParameterID selects raw-register mode on the setting endpoints.
const registerParameterID = "set_any_reg"

// Number of param<N> slots accepted by the write endpoints; the storage
// family takes 4, the mix families 18, the tlx families 19.
const (
	storageSettingSlots = 4
	mixSettingSlots     = 18
	tlxSettingSlots     = 19
)

// SettingReadOptions selects what a setting read targets: either a
// predefined parameter by ID, or a raw Modbus register range. Exactly one of
// the two must be given.
type SettingReadOptions struct {
	ParameterID  string
	StartAddress *int
	EndAddress   *int
}

// resolve normalizes the options the way the vendor expects them on the
// wire: parameter mode pins both addresses to 0, register mode uses the
// parameter ID "set_any_reg" and copies a missing bound from the other.
func (o SettingReadOptions) resolve() (string, int, int, error) {
	hasRegisters := o.StartAddress != nil || o.EndAddress != nil

	switch {
	case o.ParameterID == "" && !hasRegisters:
		return "", 0, 0, errors.New("specify either parameter_id or start_address/end_address")
	case o.ParameterID != "" && hasRegisters:
		return "", 0, 0, errors.New("specify either parameter_id or start_address/end_address - not both")
	case o.ParameterID != "":
		return o.ParameterID, 0, 0, nil
	}

	start, end := o.StartAddress, o.EndAddress
	if start == nil {
		start = end
	}

	if end == nil {
		end = start
	}

	return registerParameterID, *start, *end, nil
}

// normalizeSettingValues validates and pads the parameter values of a setting
// write. Register mode ("set_any_reg") takes exactly the register number and
// the new value; every other parameter takes at least one value. Unused slots
// are sent as empty strings, as the API documentation requires.
func normalizeSettingValues(parameterID string, values []string, slots int) ([]string, error) {
	if len(values) > slots {
		return nil, errors.Errorf("at most %d parameter values are supported", slots)
	}

	if parameterID == registerParameterID {
		if len(values) != 2 {
			return nil, errors.New("set_any_reg requires exactly a register address and a new value")
		}
	} else if len(values) == 0 {
		return nil, errors.New("new value must be provided")
	}

	padded := make([]string, slots)
	copy(padded, values)

	return padded, nil
}

// setSettingValues adds param1..param19 to a setting write request.
func (p params) setSettingValues(values []string) params {
	for i, v := range values {
		p.Set("param"+strconv.Itoa(i+1), v)
	}

	return p
}

// SettingReadResult is the response of the parameter read endpoints. Data
// holds the raw parameter value as reported by the device.
type SettingReadResult struct {
	ResponseMeta
	Data String `json:"data"`
}

// SettingWriteResult is the response of the parameter write endpoints.
type SettingWriteResult struct {
	ResponseMeta
	Data String `json:"data"`
}
