package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/MKhiriev/go-event-gate/internal/utils"
)

type assetAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewAssetAdapter returns an [AssetAdapter] whose HTTP requests time out
// after timeout.
func NewAssetAdapter(timeout time.Duration, logger *logger.Logger) AssetAdapter {
	client := utils.NewHTTPClient(timeout)

	return &assetAdapter{client: client, logger: logger}
}

// IsRemote reports whether location is fetched over HTTP.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Fetch implements [AssetAdapter].
func (a *assetAdapter) Fetch(ctx context.Context, location string) ([]byte, error) {
	if IsRemote(location) {
		return a.fetchRemote(ctx, location)
	}
	return a.fetchLocal(ctx, location)
}

func (a *assetAdapter) fetchRemote(ctx context.Context, location string) ([]byte, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get(location)
	if err != nil {
		return nil, fmt.Errorf("asset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, location)
		}
		return nil, err
	}

	return resp.Body(), nil
}

func (a *assetAdapter) fetchLocal(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(location)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, location)
	}
	if err != nil {
		a.logger.Err(err).Str("func", "assetAdapter.fetchLocal").Str("path", location).Msg("failed to read asset")
		return nil, fmt.Errorf("read asset: %w", err)
	}

	return data, nil
}
