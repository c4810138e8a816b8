// Package dispatch issues authenticated HTTP calls to the Uzum Checkout API
// and classifies their outcomes. A Dispatcher is bound at construction to one
// execution mode, blocking or suspending; both modes share one round-trip and
// classification path, so identical raw responses always produce identical
// outcomes.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the documented production endpoint.
const DefaultBaseURL = "https://www.inplat-tech.ru/api/v1/"

// DefaultContentLanguage is the locale tag sent when none is configured.
const DefaultContentLanguage = "ru-RU"

// Credentials carries the per-merchant values attached to every request.
// Signature is the pre-computed ECDSA signature of the request body; its
// computation happens upstream and the value is used verbatim.
type Credentials struct {
	Signature       string
	TerminalID      string
	BearerToken     string // X-Merchant-Access-Token, optional
	Fingerprint     string // X-Fingerprint, set after successful mTLS, optional
	APIKey          string // X-API-Key, optional
	ContentLanguage string // defaults to DefaultContentLanguage
}

func (c Credentials) headers() map[string]string {
	lang := c.ContentLanguage
	if lang == "" {
		lang = DefaultContentLanguage
	}
	// Only gzip is advertised: resty decodes it itself, and setting the
	// header manually disables net/http's transparent handling for
	// anything else.
	h := map[string]string{
		"X-Signature":      c.Signature,
		"X-Terminal-Id":    c.TerminalID,
		"Content-Language": lang,
		"Accept":           "application/json",
		"Accept-Encoding":  "gzip",
		"Cache-Control":    "no-cache",
		"Content-Type":     "application/json",
	}
	if c.BearerToken != "" {
		h["X-Merchant-Access-Token"] = c.BearerToken
	}
	if c.Fingerprint != "" {
		h["X-Fingerprint"] = c.Fingerprint
	}
	if c.APIKey != "" {
		h["X-API-Key"] = c.APIKey
	}
	return h
}

// Dispatcher performs authenticated calls against one base URL with a header
// set frozen at construction. It owns its Session and never retries: every
// Send is a single attempt.
type Dispatcher struct {
	baseURL string
	headers map[string]string
	session *Session
	mode    Mode
	log     *zap.SugaredLogger
}

type options struct {
	baseURL string
	session *Session
	mode    Mode
	timeout time.Duration
	log     *zap.SugaredLogger
}

// Option adjusts dispatcher construction.
type Option func(*options)

// WithBaseURL overrides DefaultBaseURL. A trailing slash is appended when
// missing.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithSession supplies an externally created session. Its mode must match
// the dispatcher's mode.
func WithSession(s *Session) Option {
	return func(o *options) { o.session = s }
}

// WithMode selects the execution strategy. The default is ModeBlocking.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithTimeout bounds each call when the dispatcher creates its own session.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger attaches a logger for per-request debug output.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *options) { o.log = log }
}

// New builds a dispatcher whose header set is derived from creds. Signature
// and TerminalID are required; each optional credential present adds exactly
// one header.
func New(creds Credentials, opts ...Option) (*Dispatcher, error) {
	if strings.TrimSpace(creds.Signature) == "" {
		return nil, NewConfigError("signature is required")
	}
	if strings.TrimSpace(creds.TerminalID) == "" {
		return nil, NewConfigError("terminal id is required")
	}
	return NewWithHeaders(creds.headers(), opts...)
}

// NewWithHeaders builds a dispatcher from a fully assembled header set, for
// API surfaces whose authentication differs from the merchant credential
// scheme. The map is copied and frozen.
func NewWithHeaders(headers map[string]string, opts ...Option) (*Dispatcher, error) {
	o := options{baseURL: DefaultBaseURL, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	base := strings.TrimSpace(o.baseURL)
	if base == "" {
		return nil, NewConfigError("base url is empty")
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, NewConfigError("base url %q is not a valid absolute url", o.baseURL)
	}

	sess := o.session
	if sess == nil {
		sess = NewSession(o.mode, o.timeout)
	} else if sess.Mode() != o.mode {
		return nil, NewConfigError("session created for %s mode cannot serve a %s dispatcher", sess.Mode(), o.mode)
	}

	log := o.log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	frozen := make(map[string]string, len(headers))
	for k, v := range headers {
		frozen[k] = v
	}

	return &Dispatcher{
		baseURL: base,
		headers: frozen,
		session: sess,
		mode:    o.mode,
		log:     log,
	}, nil
}

// Mode reports the execution mode fixed at construction.
func (d *Dispatcher) Mode() Mode { return d.mode }

// Headers returns a copy of the frozen request header set.
func (d *Dispatcher) Headers() map[string]string {
	h := make(map[string]string, len(d.headers))
	for k, v := range d.headers {
		h[k] = v
	}
	return h
}

// Send issues one call to baseURL+path and returns a handle resolved with the
// classified outcome. In blocking mode the round trip runs on the calling
// goroutine and the returned future is already resolved; in suspending mode
// it resolves once the transport completes. Calls in flight concurrently may
// complete in any order.
//
// An empty method defaults to POST. Exactly one attempt is made per call;
// retrying is the caller's concern.
func (d *Dispatcher) Send(ctx context.Context, path string, payload map[string]any, method string) *Future {
	f := newFuture()
	if d.mode == ModeSuspending {
		go func() {
			f.resolve(d.roundTrip(ctx, path, payload, method))
		}()
		return f
	}
	f.resolve(d.roundTrip(ctx, path, payload, method))
	return f
}

// Close releases the owned session. Calling it again, or before any request
// was sent, is a no-op.
func (d *Dispatcher) Close() { d.session.Close() }

func (d *Dispatcher) roundTrip(ctx context.Context, path string, payload map[string]any, method string) (map[string]any, error) {
	if method == "" {
		method = http.MethodPost
	}
	fullURL := d.baseURL + strings.TrimPrefix(path, "/")

	req := d.session.client.R().
		SetContext(ctx).
		SetHeaders(d.headers)
	// A nil payload means no body at all; a GET with an empty payload also
	// sends none.
	if payload != nil && !(method == http.MethodGet && len(payload) == 0) {
		req.SetBody(payload)
	}

	resp, err := req.Execute(method, fullURL)
	if err != nil {
		return nil, transportError(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return nil, &Error{Kind: KindDecode, HTTPStatus: resp.StatusCode(), cause: err}
	}

	code, present := errorCodeField(decoded)
	d.log.Debugw("checkout api response",
		"method", method,
		"url", fullURL,
		"status", resp.StatusCode(),
		"errorCode", code,
	)

	if resp.StatusCode() == http.StatusOK && (!present || code == 0) {
		return decoded, nil
	}
	return nil, &Error{
		Kind:         Classify(resp.StatusCode(), code, present),
		HTTPStatus:   resp.StatusCode(),
		AppErrorCode: code,
		CodePresent:  present,
		Body:         decoded,
	}
}

// transportError maps failures that occur before any response is received:
// timeouts become NotResponding, everything else NetworkUnavailable.
func transportError(err error) *Error {
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return &Error{Kind: KindNotResponding, cause: err}
	}
	return &Error{Kind: KindNetworkUnavailable, cause: err}
}

// errorCodeField extracts the integral errorCode from the decoded body. A
// missing, null, non-numeric or fractional value counts as absent.
func errorCodeField(body map[string]any) (int64, bool) {
	n, ok := body["errorCode"].(float64)
	if !ok || n != math.Trunc(n) {
		return 0, false
	}
	return int64(n), true
}
