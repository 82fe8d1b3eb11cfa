package growatt

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"
)

const (
	// DefaultBaseURL is the production endpoint of the Growatt OpenAPI.
	DefaultBaseURL = "https://openapi.growatt.com"

	tokenHeader       = "token"
	contentTypeHeader = "Content-Type"
	formContentType   = "application/x-www-form-urlencoded"

	apiV1Prefix = "/v1/"
	apiV4Prefix = "/v4/"
)

// Session performs authenticated calls against the Growatt OpenAPI and hands
// back the raw JSON body. It does not interpret the vendor error envelope
// beyond logging it; response models carry error_code/error_msg through to
// the caller.
type Session struct {
	httpClient    *http.Client
	baseURL       string
	token         string
	defaultSerial string
	cache         *lru.Cache
}

// NewSession returns a session authenticated with the given API token.
func NewSession(token string, opts ...Option) (*Session, error) {
	if token == "" {
		return nil, errors.New("no token provided")
	}

	s := &Session{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		token:      token,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Option configures a Session.
type Option func(*Session) error

// WithBaseURL points the session at a different server, e.g. a regional
// endpoint or a test double.
func WithBaseURL(baseURL string) Option {
	return func(s *Session) error {
		s.baseURL = strings.TrimRight(baseURL, "/")

		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client, typically to inject a
// transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *Session) error {
		s.httpClient = httpClient

		return nil
	}
}

// WithTimeout bounds every request. The default client has no timeout, which
// the vendor's occasionally slow aggregation endpoints will exploit.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Session) error {
		if s.httpClient == http.DefaultClient {
			s.httpClient = &http.Client{}
		}

		s.httpClient.Timeout = timeout

		return nil
	}
}

// WithDefaultSerial sets a fallback device serial number used by services
// operating on a single device (PCS, HPS, PBD, WIT, SPH-S, NOAH) when a call
// does not name one explicitly.
func WithDefaultSerial(deviceSN string) Option {
	return func(s *Session) error {
		s.defaultSerial = deviceSN

		return nil
	}
}

// WithCache enables an in-memory LRU response cache keyed by request
// signature. Intended for development and tests; the vendor rate-limits most
// read endpoints to one call per 5 minutes.
func WithCache(size int) Option {
	return func(s *Session) error {
		cache, err := lru.New(size)
		if err != nil {
			return errors.Wrap(err, "failed to create response cache")
		}

		s.cache = cache

		return nil
	}
}

// get performs a v1 GET request with query parameters.
func (s *Session) get(endpoint string, query params) ([]byte, error) {
	return s.request(http.MethodGet, apiV1Prefix+endpoint, query)
}

// post performs a v1 POST request with a form-encoded body.
func (s *Session) post(endpoint string, form params) ([]byte, error) {
	return s.request(http.MethodPost, apiV1Prefix+endpoint, form)
}

// postV4 performs a POST against the v4 "new-api" surface.
func (s *Session) postV4(endpoint string, form params) ([]byte, error) {
	return s.request(http.MethodPost, apiV4Prefix+endpoint, form)
}

func (s *Session) request(method, path string, values params) ([]byte, error) {
	encoded := ""
	if values.Values != nil {
		encoded = values.Encode()
	}

	signature := method + " " + path + "?" + encoded

	if s.cache != nil {
		if cached, ok := s.cache.Get(signature); ok {
			return cached.([]byte), nil
		}
	}

	req, err := s.buildRequest(method, path, encoded)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not perform http call")
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, HTTPError{Status: resp.StatusCode, Body: body}
	}

	if funk.IsEmpty(body) {
		return nil, errors.New("response body does not contain expected data")
	}

	s.inspectBody(path, body)

	if s.cache != nil {
		s.cache.Add(signature, body)
	}

	return body, nil
}

func (s *Session) buildRequest(method, path, encoded string) (*http.Request, error) {
	u := s.baseURL + path

	var body io.Reader

	if method == http.MethodGet {
		if encoded != "" {
			u += "?" + encoded
		}
	} else {
		body = strings.NewReader(encoded)
	}

	req, err := http.NewRequest(method, u, body) //nolint:noctx
	if err != nil {
		return nil, err
	}

	req.Header.Set(tokenHeader, s.token)

	if method != http.MethodGet {
		req.Header.Set(contentTypeHeader, formContentType)
	}

	return req, nil
}

// inspectBody logs advisory warnings the way the vendor surfaces them: an
// HTML login page instead of JSON, or a non-zero error envelope. Neither is
// treated as a failure here; callers inspect the parsed error code.
func (s *Session) inspectBody(path string, body []byte) {
	text := string(body)

	if strings.Contains(text, `<html data-name="login">`) {
		log.Error("login page shown instead of API response")

		return
	}

	if !json.Valid(body) {
		log.Errorf("response is not valid JSON: %s", text)

		return
	}

	var envelope struct {
		ErrorCode Int    `json:"error_code"`
		ErrorMsg  String `json:"error_msg"`
		Code      Int    `json:"code"`
		Message   String `json:"message"`
	}

	// Top-level arrays and other non-object bodies carry no error envelope.
	if err := json.Unmarshal(body, &envelope); err != nil {
		return
	}

	code := firstValid(envelope.ErrorCode, envelope.Code)
	if code.Valid && code.Int64 != 0 {
		msg := envelope.ErrorMsg
		if !msg.Valid {
			msg = envelope.Message
		}

		entry := log.WithField("endpoint", path).WithField("error_code", code.Int64)
		if generic := genericErrorMessage(code.Int64); generic != "" {
			entry = entry.WithField("hint", generic)
		}

		entry.Warnf("request failed with error code %d: %s", code.Int64, msg.String)
	}
}
