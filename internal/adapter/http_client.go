// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/model-hub-client/internal/config"
	"github.com/MKhiriev/model-hub-client/internal/logger"
	"github.com/MKhiriev/model-hub-client/internal/notify"
	"github.com/MKhiriev/model-hub-client/internal/store"
	"github.com/go-resty/resty/v2"
	"github.com/google/go-querystring/query"
)

const (
	defaultAPIPath        = "/api"
	defaultRequestTimeout = 30 * time.Second
	contentTypeJSON       = "application/json"
)

// Client is the configured HTTP client of the model-hub API.
type Client struct {
	Auth         AuthAPI
	Models       ModelAPI
	Interactions InteractionAPI

	http     *resty.Client
	baseURL  string
	storage  store.KeyValueStorage
	reporter notify.Reporter
	logger   *logger.Logger
}

// NewClient builds a [Client] for cfg. The bearer token is read from storage
// before every request; failures are reported to reporter (nil discards them).
//
// Returns [ErrInvalidBaseURL] when the API location cannot be resolved.
func NewClient(cfg config.ClientAdapter, storage store.KeyValueStorage, reporter notify.Reporter, log *logger.Logger) (*Client, error) {
	if storage == nil {
		return nil, errors.New("adapter: token storage is nil")
	}
	if reporter == nil {
		reporter = notify.Nop()
	}
	if log == nil {
		log = logger.Nop()
	}

	baseURL, err := resolveBaseURL(cfg.APIURL, cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	c := &Client{
		baseURL:  baseURL,
		storage:  storage,
		reporter: reporter,
		logger:   log,
	}

	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", contentTypeJSON).
		SetLogger(restyLogger{log}).
		OnBeforeRequest(c.attachToken).
		OnAfterResponse(c.checkResponse).
		OnError(c.reportFailure)

	c.Auth = &authAPI{client: c}
	c.Models = &modelAPI{client: c}
	c.Interactions = &interactionAPI{client: c}

	return c, nil
}

// BaseURL returns the resolved API root every call path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// resolveBaseURL returns apiURL as-is when it is absolute, otherwise joins the
// normalised server address with the apiURL path.
func resolveBaseURL(apiURL, address string) (string, error) {
	apiURL = strings.TrimSpace(apiURL)
	if apiURL == "" {
		apiURL = defaultAPIPath
	}

	if strings.Contains(apiURL, "://") {
		u, err := url.Parse(apiURL)
		if err != nil {
			return "", err
		}
		if u.Scheme == "" || u.Host == "" {
			return "", fmt.Errorf("api url must include host and scheme")
		}
		return strings.TrimRight(u.String(), "/"), nil
	}

	base, err := normalizeBaseURL(address)
	if err != nil {
		return "", err
	}

	path := strings.Trim(apiURL, "/")
	if path == "" {
		return base, nil
	}
	return base + "/" + path, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// attachToken runs before every request. A missing token leaves the request
// anonymous; an unreadable storage rejects it.
func (c *Client) attachToken(_ *resty.Client, req *resty.Request) error {
	token, err := c.storage.Get(req.Context(), store.TokenKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read token: %w", ErrRequestInterception, err)
	}

	if token = strings.TrimSpace(token); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return nil
}

// checkResponse runs after every received response.
func (c *Client) checkResponse(_ *resty.Client, resp *resty.Response) error {
	c.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("api call")

	return mapHTTPError(resp)
}

// reportFailure is resty's error hook: it fires once per failed call no matter
// which stage failed.
func (c *Client) reportFailure(req *resty.Request, err error) {
	c.logger.Warn().
		Err(err).
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("api call failed")

	c.reporter.Report(req.Context(), failureMessage(err))
}

type requestOption func(req *resty.Request) error

func withBody(body any) requestOption {
	return func(req *resty.Request) error {
		req.SetHeader("Content-Type", contentTypeJSON).SetBody(body)
		return nil
	}
}

// withQuery encodes params through their `url` struct tags; zero values
// tagged omitempty are left out.
func withQuery(params any) requestOption {
	return func(req *resty.Request) error {
		values, err := query.Values(params)
		if err != nil {
			return fmt.Errorf("encode query: %w", err)
		}
		req.SetQueryParamsFromValues(values)
		return nil
	}
}

func withPathParam(name, value string) requestOption {
	return func(req *resty.Request) error {
		req.SetPathParam(name, value)
		return nil
	}
}

// call executes one API call and returns the decoded success body.
func call[T any](ctx context.Context, c *Client, method, path string, opts ...requestOption) (T, error) {
	var out T

	req := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		ExpectContentType(contentTypeJSON)

	for _, opt := range opts {
		if err := opt(req); err != nil {
			var zero T
			return zero, fmt.Errorf("%s %s: %w", method, path, err)
		}
	}

	if _, err := req.Execute(method, path); err != nil {
		var zero T
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}

	return out, nil
}

// restyLogger routes resty's own diagnostics into the application log.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(strings.TrimSpace(format), v...)
}
