package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-event-gate/internal/config"
	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/MKhiriev/go-event-gate/internal/utils"
	"github.com/MKhiriev/go-event-gate/models"
)

// HeaderRequestID carries a per-request UUID so failed submissions can be
// correlated with server logs.
const HeaderRequestID = "X-Request-ID"

type httpRegistrationAdapter struct {
	client   *utils.HTTPClient
	endpoint string
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPRegistrationAdapter constructs an HTTP/REST implementation of
// [RegistrationAdapter]. It validates adapterCfg.RegistrationURL and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if the URL is empty or is not an absolute http(s) URL.
func NewHTTPRegistrationAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RegistrationAdapter, error) {
	endpoint, err := normalizeURL(adapterCfg.RegistrationURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registration url: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)

	return &httpRegistrationAdapter{
		client:   client,
		endpoint: endpoint,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: address must include http(s) scheme and host", ErrInvalidURL)
	}

	return u.String(), nil
}

// Submit implements [RegistrationAdapter].
func (h *httpRegistrationAdapter) Submit(ctx context.Context, record models.RegistrationRecord) error {
	requestID := h.ids.Generate()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(HeaderRequestID, requestID).
		SetBody(record).
		Post(h.endpoint)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpRegistrationAdapter.Submit").
			Str("request_id", requestID).
			Msg("registration request failed")
		return fmt.Errorf("%w: register request: %w", ErrSubmissionFailed, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().
			Str("func", "httpRegistrationAdapter.Submit").
			Str("request_id", requestID).
			Int("status", resp.StatusCode()).
			Msg("registration rejected by server")
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	h.logger.Debug().
		Str("func", "httpRegistrationAdapter.Submit").
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Msg("registration accepted")

	return nil
}
