package growatt_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpv/growatt-go/growatt"
)

func TestNewClient_NoToken(t *testing.T) {
	t.Parallel()

	_, err := growatt.NewClient("")
	assert.Error(t, err)
}

func TestNewClient_Options(t *testing.T) {
	t.Parallel()

	c, err := growatt.NewClient(testToken,
		growatt.WithBaseURL("https://openapi-au.growatt.com/"),
		growatt.WithHTTPClient(&http.Client{}),
		growatt.WithTimeout(10*time.Second),
		growatt.WithDefaultSerial("SN1"),
		growatt.WithCache(16),
	)

	require.NoError(t, err)
	assert.NotNil(t, c.Session)
}

func TestNewClient_InvalidCacheSize(t *testing.T) {
	t.Parallel()

	_, err := growatt.NewClient(testToken, growatt.WithCache(-1))
	assert.Error(t, err)
}

func TestSession_HTTPError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodGet,
		requestPath:   "/v1/plant/details",
		requestQuery:  "plant_id=1234",
		responseCode:  http.StatusInternalServerError,
		responseBody:  "server is on fire",
	}))

	_, err := c.Plant.Details(1234)
	require.Error(t, err)

	httpErr := growatt.HTTPError{}
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "server is on fire", string(httpErr.Body))
}

func TestSession_EmptyBody(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newTestHandler(t, call{
		requestMethod: http.MethodGet,
		requestPath:   "/v1/plant/details",
		requestQuery:  "plant_id=1234",
		responseCode:  http.StatusOK,
	}))

	_, err := c.Plant.Details(1234)
	assert.Error(t, err)
}

func TestSession_ServerGone(t *testing.T) {
	t.Parallel()

	s := httptest.NewServer(http.NotFoundHandler())
	s.Close()

	c, err := growatt.NewClient(testToken, growatt.WithBaseURL(s.URL))
	require.NoError(t, err)

	_, err = c.Plant.Details(1234)
	assert.Error(t, err)
}

func TestSession_Cache(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)

		_, err := w.Write([]byte(`{"data":{"count":0,"plants":[]},"error_code":0,"error_msg":null}`))
		assert.NoError(t, err)
	}))
	t.Cleanup(func() {
		s.Close()
	})

	c, err := growatt.NewClient(testToken, growatt.WithBaseURL(s.URL), growatt.WithCache(16))
	require.NoError(t, err)

	first, err := c.Plant.List(growatt.PlantListOptions{})
	require.NoError(t, err)

	second, err := c.Plant.List(growatt.PlantListOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load())

	// A different request signature misses the cache.
	_, err = c.Plant.List(growatt.PlantListOptions{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}
