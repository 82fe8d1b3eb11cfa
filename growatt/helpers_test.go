package growatt_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpv/growatt-go/growatt"
)

const testToken = "test-api-token"

type call struct {
	requestMethod string
	requestPath   string
	requestQuery  string
	requestForm   url.Values

	responseCode int
	responseBody string
}

type testHandler struct {
	testingT       *testing.T
	calls          []call
	currentCallIdx int
}

func newTestHandler(t *testing.T, calls ...call) http.Handler {
	t.Helper()

	return &testHandler{
		testingT: t,
		calls:    calls,
	}
}

func (t *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if t.currentCallIdx >= len(t.calls) {
		t.testingT.Fatalf("unexpected request: %s %s", r.Method, r.URL)
	}

	call := t.calls[t.currentCallIdx]
	t.currentCallIdx++

	if r.Method != call.requestMethod {
		t.testingT.Fatalf("request method mismatch: want: %s, got: %s", call.requestMethod, r.Method)
	}

	if r.URL.EscapedPath() != call.requestPath {
		t.testingT.Fatalf("request path mismatch: want: %s, got: %s", call.requestPath, r.URL.Path)
	}

	if r.URL.RawQuery != call.requestQuery {
		t.testingT.Fatalf("request query mismatch: want: %s, got: %s", call.requestQuery, r.URL.RawQuery)
	}

	if got := r.Header.Get("token"); got != testToken {
		t.testingT.Fatalf("token header mismatch: want: %s, got: %s", testToken, got)
	}

	defer r.Body.Close()

	b, err := io.ReadAll(r.Body)
	assert.NoError(t.testingT, err)

	if call.requestForm != nil {
		form, err := url.ParseQuery(string(b))
		assert.NoError(t.testingT, err)
		assert.Equal(t.testingT, call.requestForm, form)
	}

	w.WriteHeader(call.responseCode)
	_, err = w.Write([]byte(call.responseBody))
	assert.NoError(t.testingT, err)
}

func newTestClient(t *testing.T, handler http.Handler, opts ...growatt.Option) *growatt.Client {
	t.Helper()

	s := httptest.NewServer(handler)
	t.Cleanup(func() {
		s.Close()
	})

	opts = append([]growatt.Option{growatt.WithBaseURL(s.URL)}, opts...)

	c, err := growatt.NewClient(testToken, opts...)
	require.NoError(t, err)

	return c
}
