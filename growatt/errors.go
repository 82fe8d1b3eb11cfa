package growatt

import (
	"fmt"

	"github.com/pkg/errors"
)

// Configuration errors raised before any network call.
var (
	// ErrNoDeviceSerial is returned when neither an explicit serial number nor
	// a client default is available for a call.
	ErrNoDeviceSerial = errors.New("device serial number must be provided")

	// ErrDateRangeTooWide is returned when a historical query spans 7 days or
	// more; the vendor accepts at most a 6-day difference.
	ErrDateRangeTooWide = errors.New("date interval must not exceed 7 days")

	// ErrTooManySerials is returned when a batch call names more than 100
	// devices; the vendor caps batch requests at 100 serial numbers.
	ErrTooManySerials = errors.New("max 100 devices per request")

	// ErrNoParameterID is returned by setting writes that require a named
	// parameter.
	ErrNoParameterID = errors.New("parameter_id must be provided")
)

// HTTPError carries the status code and raw body of a non-2xx vendor reply.
type HTTPError struct {
	Status int
	Body   []byte
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("unexpected response code %d, body: %s", e.Status, e.Body)
}

// APIError is the vendor error envelope surfaced by ResponseMeta.Err. It is
// never returned implicitly: response parsing keeps non-zero error codes in
// the result and callers decide whether to treat them as failures.
type APIError struct {
	Code    int64
	Message string
}

func (e APIError) Error() string {
	msg := e.Message
	if generic := genericErrorMessage(e.Code); generic != "" {
		msg = fmt.Sprintf("%s (%s)", msg, generic)
	}

	return fmt.Sprintf("api error %d: %s", e.Code, msg)
}

// genericErrorMessage maps the error codes shared by all v1 endpoints to
// their documented meaning. Endpoint-specific codes are not translated.
func genericErrorMessage(code int64) string {
	switch code {
	case 0:
		return "normal"
	case 10011:
		return "no privilege access"
	case 10012:
		return "API rate limit exceeded (same request only once every 5 minutes)"
	case 10013:
		return "the number per page cannot be greater than 100"
	case 10014:
		return "the number of pages cannot be greater than 250 pages"
	case -1:
		return "please use the new domain name to access"
	default:
		return ""
	}
}
