package story

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/iw2rmb/stylerun"
	"github.com/iw2rmb/stylerun/run"
)

const (
	DefaultBaseURL = "https://under.place"
	DefaultTimeout = 10 * time.Second

	storiesPath = "/stories"
	maxBodySize = 1 << 20
)

// Receipt is the backend's answer to an accepted submission.
type Receipt struct {
	Message string
	// Timestamp is when the backend stored the story. It is zero when the
	// backend answered 200 without storing it.
	Timestamp time.Time
}

// Stored reports whether the backend confirmed persisting the story.
func (r Receipt) Stored() bool { return !r.Timestamp.IsZero() }

// StatusError is returned for non-200 responses.
type StatusError struct {
	StatusCode int
	// Message is the backend's message field, or the raw body when it has none.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("story: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("story: status %d: %s", e.StatusCode, e.Message)
}

// Client posts messages to a story backend. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each Send. Non-positive values disable the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient returns a client for baseURL. An empty baseURL uses
// DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		timeout: DefaultTimeout,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized backend URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Send validates msg.Code and posts msg. A non-200 answer is a *StatusError.
func (c *Client) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := ValidatePIN(msg.Code); err != nil {
		return Receipt{}, err
	}
	body, err := encodeMessage(msg)
	if err != nil {
		return Receipt{}, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+storiesPath, bytes.NewReader(body))
	if err != nil {
		return Receipt{}, fmt.Errorf("story: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", stylerun.UserAgent())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("story: post: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Receipt{}, fmt.Errorf("story: read response: %w", err)
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Int("runs", len(msg.Content)).
		Dur("took", time.Since(start)).
		Msg("story submitted")

	return decodeResponse(resp.StatusCode, raw)
}

func encodeMessage(msg Message) ([]byte, error) {
	content, err := run.Marshal(msg.Content)
	if err != nil {
		return nil, fmt.Errorf("story: encode content: %w", err)
	}
	body, err := sjson.SetBytes([]byte(`{}`), "code", msg.Code)
	if err != nil {
		return nil, fmt.Errorf("story: encode code: %w", err)
	}
	body, err = sjson.SetRawBytes(body, "content", content)
	if err != nil {
		return nil, fmt.Errorf("story: encode content: %w", err)
	}
	return body, nil
}

func decodeResponse(status int, raw []byte) (Receipt, error) {
	var message string
	var ts int64
	if gjson.ValidBytes(raw) {
		message = gjson.GetBytes(raw, "message").String()
		ts = gjson.GetBytes(raw, "timestamp").Int()
	} else {
		message = strings.TrimSpace(string(raw))
	}

	if status != http.StatusOK {
		return Receipt{}, &StatusError{StatusCode: status, Message: message}
	}
	rc := Receipt{Message: message}
	if ts > 0 {
		rc.Timestamp = time.UnixMilli(ts)
	}
	return rc, nil
}
