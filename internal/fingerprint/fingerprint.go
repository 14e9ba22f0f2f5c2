package fingerprint

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-event-gate/internal/logger"
	"golang.org/x/crypto/blake2b"
)

// Device is the default [Fingerprinter]. The digest is computed lazily on
// the first successful call and reused for the lifetime of the process.
type Device struct {
	sources []Source
	logger  *logger.Logger

	mu    sync.Mutex
	value string
}

// Option configures a [Device].
type Option func(*Device)

// WithSources replaces the default entropy sources.
func WithSources(sources ...Source) Option {
	return func(d *Device) {
		d.sources = sources
	}
}

func NewDevice(log *logger.Logger, opts ...Option) *Device {
	d := &Device{
		sources: DefaultSources(),
		logger:  log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Fingerprint returns the hex encoded blake2b-256 digest of the collected
// components. Failures are not cached, so a later call may still succeed.
func (d *Device) Fingerprint(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.value != "" {
		return d.value, nil
	}

	value, err := d.compute(ctx)
	if err != nil {
		return "", err
	}

	d.value = value
	return value, nil
}

func (d *Device) compute(ctx context.Context) (string, error) {
	components := make([]string, 0, len(d.sources))

	for _, src := range d.sources {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("fingerprint collection interrupted: %w", err)
		}

		value, err := src.Collect(ctx)
		if err != nil {
			d.logger.Debug().Err(err).
				Str("func", "Device.compute").
				Str("source", src.Name()).
				Msg("entropy source unavailable")
			continue
		}
		if value == "" {
			continue
		}

		components = append(components, src.Name()+"="+value)
	}

	if len(components) == 0 {
		return "", ErrNoEntropy
	}

	return digest(components), nil
}

func digest(components []string) string {
	// New256 only fails for oversized keys
	h, _ := blake2b.New256(nil)
	for _, c := range components {
		h.Write([]byte(c))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
