package growatt

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ResponseMeta is the v1 error envelope present on every response. A non-zero
// error code never fails parsing; callers branch on it (or use Err) after the
// call returns.
type ResponseMeta struct {
	ErrorCode Int    `json:"error_code"`
	ErrorMsg  String `json:"error_msg"`
}

// Err returns an APIError when the vendor reported a non-zero error code.
func (m ResponseMeta) Err() error {
	if !m.ErrorCode.Valid || m.ErrorCode.Int64 == 0 {
		return nil
	}

	return APIError{Code: m.ErrorCode.Int64, Message: m.ErrorMsg.String}
}

// V4ResponseMeta is the envelope of the v4 "new-api" endpoints, which rename
// error_code to code and error_msg to message.
type V4ResponseMeta struct {
	ErrorCode Int    `json:"code"`
	ErrorMsg  String `json:"message"`
}

// Err returns an APIError when the vendor reported a non-zero error code.
func (m V4ResponseMeta) Err() error {
	if !m.ErrorCode.Valid || m.ErrorCode.Int64 == 0 {
		return nil
	}

	return APIError{Code: m.ErrorCode.Int64, Message: m.ErrorMsg.String}
}

// parseResponse validates a raw body against a response model. Shape
// mismatches surface as schema validation errors; vendor error envelopes do
// not.
func parseResponse[T any](body []byte) (*T, error) {
	out := new(T)
	if err := json.Unmarshal(body, out); err != nil {
		return nil, errors.Wrap(err, "response validation failed")
	}

	return out, nil
}

// BatchRecord is one device's slice of a multi-device response after
// reshaping (see reshapeBatch).
type BatchRecord[T any] struct {
	DeviceSN     string `json:"device_sn"`
	DataloggerSN String `json:"datalogger_sn"`
	Data         *T     `json:"data"`
}

// reshapeBatch flattens the multi-device payload shape
//
//	{"data": {"SN1": {"SN1": {...}, "dataloggerSn": "..."}, ...}, "<listKey>": ["SN1", ...]}
//
// into a uniform record list. The vendor keys the payload map by serial
// number (twice), which no flat schema can express, so the pivot happens here
// right after the fetch and before model validation.
func reshapeBatch[T any](body []byte, listKey string) ([]BatchRecord[T], error) {
	var envelope struct {
		Data map[string]json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "response validation failed")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, errors.Wrap(err, "response validation failed")
	}

	var serials []string

	if raw, ok := top[listKey]; ok {
		if err := json.Unmarshal(raw, &serials); err != nil {
			return nil, errors.Wrapf(err, "invalid %q device list", listKey)
		}
	}

	records := make([]BatchRecord[T], 0, len(serials))

	for _, sn := range serials {
		record := BatchRecord[T]{DeviceSN: sn}

		var entry struct {
			DataloggerSN String `json:"dataloggerSn"`
		}

		rawEntry, ok := envelope.Data[sn]
		if !ok {
			records = append(records, record)

			continue
		}

		if err := json.Unmarshal(rawEntry, &entry); err != nil {
			return nil, errors.Wrapf(err, "invalid batch entry for device %s", sn)
		}

		record.DataloggerSN = entry.DataloggerSN

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(rawEntry, &fields); err != nil {
			return nil, errors.Wrapf(err, "invalid batch entry for device %s", sn)
		}

		if rawData, ok := fields[sn]; ok && !isNullSentinel(rawData) {
			data := new(T)
			if err := json.Unmarshal(rawData, data); err != nil {
				return nil, errors.Wrapf(err, "response validation failed for device %s", sn)
			}

			record.Data = data
		}

		records = append(records, record)
	}

	return records, nil
}
