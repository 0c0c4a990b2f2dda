// Package fetch fournit un client HTTP borné (timeout, taille max, user agent,
// cadence des requêtes) utilisé par toutes les stratégies réseau.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultMaxBytes  = 10_000_000
	DefaultUserAgent = "tubesum/1.0"
)

// Erreurs exportées
var (
	ErrStatus   = errors.New("unexpected HTTP status")
	ErrTooLarge = errors.New("response body too large")
)

// StatusError porte le code HTTP d'une réponse non-2xx.
// errors.Is(err, ErrStatus) est vrai.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", ErrStatus, e.Status)
}

func (e *StatusError) Unwrap() error { return ErrStatus }

// Options configure un Client. Les valeurs nulles prennent les défauts.
type Options struct {
	Timeout   time.Duration
	MaxBytes  int64
	UserAgent string
	// RequestsPerSecond limite la cadence globale ; <= 0 désactive la limite.
	RequestsPerSecond float64
	HTTPClient        *http.Client
}

// Client est sûr pour un usage concurrent.
type Client struct {
	http      *http.Client
	timeout   time.Duration
	maxBytes  int64
	userAgent string
	limiter   *rate.Limiter
}

func NewClient(opts Options) *Client {
	c := &Client{
		http:      opts.HTTPClient,
		timeout:   opts.Timeout,
		maxBytes:  opts.MaxBytes,
		userAgent: opts.UserAgent,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.maxBytes <= 0 {
		c.maxBytes = DefaultMaxBytes
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if opts.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return c
}

// RequestOption ajuste une requête particulière.
type RequestOption func(*request)

type request struct {
	timeout time.Duration
	headers http.Header
}

// WithTimeout remplace le timeout du client pour cette requête.
func WithTimeout(d time.Duration) RequestOption {
	return func(r *request) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithHeader ajoute un en-tête (ex: User-Agent navigateur, Authorization).
func WithHeader(key, value string) RequestOption {
	return func(r *request) { r.headers.Set(key, value) }
}

// GetBytes télécharge rawURL et retourne les octets du corps.
// Note : tout est lu en mémoire (OK pour des sous-titres ou une page HTML).
func (c *Client) GetBytes(ctx context.Context, rawURL string, opts ...RequestOption) ([]byte, error) {
	return c.do(ctx, http.MethodGet, rawURL, nil, opts)
}

// PostBytes envoie body et retourne le corps de la réponse.
func (c *Client) PostBytes(ctx context.Context, rawURL string, body []byte, opts ...RequestOption) ([]byte, error) {
	return c.do(ctx, http.MethodPost, rawURL, body, opts)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body []byte, opts []RequestOption) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	// valider l'URL tôt
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("fetch: invalid url %q: %w", rawURL, err)
	}

	r := request{timeout: c.timeout, headers: http.Header{}}
	r.headers.Set("User-Agent", c.userAgent)
	for _, o := range opts {
		o(&r)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("fetch: rate limit wait: %w", err)
		}
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, rd)
	if err != nil {
		return nil, fmt.Errorf("fetch: new request: %w", err)
	}
	req.Header = r.headers

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		return nil, fmt.Errorf("fetch %s: %w", rawURL, &StatusError{Code: resp.StatusCode, Status: resp.Status})
	}

	// Content-Length connu et trop grand -> échouer vite
	if resp.ContentLength > c.maxBytes {
		return nil, fmt.Errorf("fetch: content-length %d exceeds limit %d: %w", resp.ContentLength, c.maxBytes, ErrTooLarge)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1)) // +1 pour détecter dépassement
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(data)) > c.maxBytes {
		return nil, fmt.Errorf("fetch: body exceeds %d bytes: %w", c.maxBytes, ErrTooLarge)
	}
	return data, nil
}
