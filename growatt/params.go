package growatt

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const maxBatchSerials = 100

// params collects query or form values for a single request. Helpers omit
// unset optionals, matching the vendor convention of leaving them out of the
// request entirely.
type params struct {
	url.Values
}

func newParams() params {
	return params{Values: url.Values{}}
}

func (p params) set(key, value string) params {
	p.Set(key, value)

	return p
}

func (p params) setInt(key string, value int) params {
	p.Set(key, strconv.Itoa(value))

	return p
}

// setPage adds a page number, defaulting to 1 when unset. Batch endpoints
// reject requests without an explicit page.
func (p params) setPage(key string, page int) params {
	if page <= 0 {
		page = 1
	}

	return p.setInt(key, page)
}

// setOptInt omits the value when it is zero, the library-wide marker for
// "use the vendor default".
func (p params) setOptInt(key string, value int) params {
	if value > 0 {
		p.Set(key, strconv.Itoa(value))
	}

	return p
}

func (p params) setOptString(key, value string) params {
	if value != "" {
		p.Set(key, value)
	}

	return p
}

func (p params) setDate(key string, value time.Time) params {
	p.Set(key, value.Format(dateLayout))

	return p
}

// joinSerials flattens a serial-number list into the comma-joined form the
// batch endpoints expect, enforcing the vendor's 100-device cap.
func joinSerials(serials []string) (string, error) {
	if len(serials) > maxBatchSerials {
		return "", ErrTooManySerials
	}

	return strings.Join(serials, ","), nil
}
