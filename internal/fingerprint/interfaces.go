// Package fingerprint derives an opaque, stable per-device identifier.
//
// The identifier is a blake2b-256 digest over whatever hardware and host
// entropy the platform exposes. It is not a secret and it is not
// validated by anyone: it only marks a device as registered.
package fingerprint

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/fingerprint_mock.go -package=mock

// Fingerprinter produces the device fingerprint.
type Fingerprinter interface {
	Fingerprint(ctx context.Context) (string, error)
}

// Source contributes one named component of entropy. An empty value means
// the source has nothing to offer on this platform.
type Source interface {
	Name() string
	Collect(ctx context.Context) (string, error)
}
