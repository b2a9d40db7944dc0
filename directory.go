package todostate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	uuid "github.com/nu7hatch/gouuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// maxResponseSize bounds the response bodies read from the directory. A user is a few hundred bytes.
const maxResponseSize = 1 << 20

// DefaultEndpoint is the base URL of the user directory; the user id is appended to it.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/users/"

var (
	// ErrNetwork is returned when the request to the user directory could not be made or completed.
	ErrNetwork = errors.New("network failure")

	// ErrStatusCode is returned in case the response from the user directory has a status code other than 200.
	ErrStatusCode = errors.New("unhandled status code")

	// ErrMalformedResponse is returned when the response body is not a JSON object with a non-empty name, or is
	// larger than 1 MiB.
	ErrMalformedResponse = errors.New("malformed response")
)

// DirectoryOption configures a Directory built with NewDirectory.
type DirectoryOption func(*Directory) error

// WithEndpoint sets the base URL of the user directory.
func WithEndpoint(endpoint string) DirectoryOption {
	return func(d *Directory) error {
		if _, err := url.Parse(endpoint); err != nil {
			return fmt.Errorf("endpoint: %w", err)
		}
		d.endpoint = endpoint
		return nil
	}
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(client *http.Client) DirectoryOption {
	return func(d *Directory) error {
		d.client = client
		return nil
	}
}

// WithTimeout bounds the duration of each request. There's no timeout by default.
func WithTimeout(timeout time.Duration) DirectoryOption {
	return func(d *Directory) error {
		d.timeout = timeout
		return nil
	}
}

// WithRateLimit makes requests wait so that no more than limit requests per second are made on average, with
// bursts of up to burst requests.
func WithRateLimit(limit rate.Limit, burst int) DirectoryOption {
	return func(d *Directory) error {
		d.limiter = rate.NewLimiter(limit, burst)
		return nil
	}
}

// WithWireLog is a directory option to log all requests and responses to the specified log file. Useful for
// debugging, shouldn't be needed in normal operation.
func WithWireLog(pathname string) DirectoryOption {
	return func(d *Directory) error {
		f, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err == nil {
			d.wlog = f
		}
		return err
	}
}

// WithWireLogWriter is like WithWireLog, but logs to w.
func WithWireLogWriter(w io.Writer) DirectoryOption {
	return func(d *Directory) error {
		d.wlog = w
		return nil
	}
}

// Directory is a client for a user directory serving users as JSON objects at endpoint + user id.
type Directory struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration

	// If non-nil, requests wait for it.
	limiter *rate.Limiter

	// Requests and responses are logged here, one per line, in JSON format.
	wlog io.Writer
}

// NewDirectory creates a user directory client.
func NewDirectory(opts ...DirectoryOption) (*Directory, error) {
	d := &Directory{
		endpoint: DefaultEndpoint,
		client:   http.DefaultClient,
		wlog:     io.Discard,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// user partially represents a user in the directory.
type user struct {
	Name *string `json:"name"`
}

type wireEntry struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id"`
	URL       string `json:"url,omitempty"`
	Status    int    `json:"status,omitempty"`
	Body      string `json:"body,omitempty"`
}

func (d *Directory) logWire(entry wireEntry) {
	b, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = d.wlog.Write(append(b, '\n'))
}

// UserName fetches the user with the given id and returns its name. Errors wrap ErrNetwork, ErrStatusCode or
// ErrMalformedResponse, or are the context's error if ctx is done while waiting for the rate limiter.
func (d *Directory) UserName(ctx context.Context, id string) (string, error) {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("user %q: %w", id, err)
		}
	}
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	target := d.endpoint + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("user %q: %w: %w", id, ErrNetwork, err)
	}
	var requestID string
	if u, err := uuid.NewV4(); err == nil {
		requestID = u.String()
		req.Header.Set("X-Request-Id", requestID)
	}
	req.Header.Set("Accept", "application/json")
	d.logWire(wireEntry{Type: "request", RequestID: requestID, URL: target})

	logEntry := log.WithFields(log.Fields{
		"op":         "user",
		"id":         id,
		"request_id": requestID,
	})
	r, err := d.client.Do(req)
	if err != nil {
		directoryRequests.WithLabelValues("network").Inc()
		return "", fmt.Errorf("user %q: %w: %w", id, ErrNetwork, err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logEntry.WithField("cause", err).Warning("Could not close response body")
		}
	}()
	b, err := io.ReadAll(io.LimitReader(r.Body, maxResponseSize+1))
	if err != nil {
		directoryRequests.WithLabelValues("network").Inc()
		return "", fmt.Errorf("user %q, read body: %w: %w", id, ErrNetwork, err)
	}
	d.logWire(wireEntry{Type: "response", RequestID: requestID, Status: r.StatusCode, Body: string(b)})
	switch r.StatusCode {
	case http.StatusOK:
		if len(b) > maxResponseSize {
			directoryRequests.WithLabelValues("malformed").Inc()
			return "", fmt.Errorf("user %q: body exceeds %d bytes: %w", id, maxResponseSize, ErrMalformedResponse)
		}
		var u user
		if err := json.Unmarshal(b, &u); err != nil {
			directoryRequests.WithLabelValues("malformed").Inc()
			return "", fmt.Errorf("user %q, unmarshal: %w: %w", id, ErrMalformedResponse, err)
		}
		if u.Name == nil || *u.Name == "" {
			directoryRequests.WithLabelValues("malformed").Inc()
			return "", fmt.Errorf("user %q: no name: %w", id, ErrMalformedResponse)
		}
		directoryRequests.WithLabelValues("ok").Inc()
		return *u.Name, nil
	default:
		directoryRequests.WithLabelValues("status").Inc()
		logEntry.WithFields(log.Fields{
			"code": r.StatusCode,
			"text": string(b),
		}).Debug("Unhandled response status code")
		return "", fmt.Errorf("user %q: %d: %w", id, r.StatusCode, ErrStatusCode)
	}
}
