package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

const (
	routeSignup = "/user/signup"
	routeSignin = "/user/signin"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the HTTP implementation of [ServerAdapter]
// from the client's adapter settings. A bare host:port address gets the
// http scheme.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
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

func (h *httpServerAdapter) Signup(ctx context.Context, creds models.Credentials) (models.Response, error) {
	return h.post(ctx, routeSignup, creds)
}

func (h *httpServerAdapter) Signin(ctx context.Context, creds models.Credentials) (models.Response, error) {
	return h.post(ctx, routeSignin, creds)
}

// post sends creds and decodes the envelope. A FAILED envelope is a valid
// answer, even on 400, and is returned without error.
func (h *httpServerAdapter) post(ctx context.Context, route string, creds models.Credentials) (models.Response, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post(route)
	if err != nil {
		return models.Response{}, fmt.Errorf("%s request: %w", route, err)
	}

	h.logger.Debug().
		Str("route", route).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Msg("server responded")

	var envelope models.Response
	if jsonErr := json.Unmarshal(resp.Body(), &envelope); jsonErr == nil && envelope.Status != "" {
		return envelope, nil
	}

	if err = mapHTTPError(resp); err != nil {
		return models.Response{}, err
	}

	return models.Response{}, fmt.Errorf("%w from %s: %q", ErrUnexpectedResponse, route, resp.String())
}
