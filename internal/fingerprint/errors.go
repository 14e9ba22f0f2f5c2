package fingerprint

import "errors"

// ErrNoEntropy is returned when every source failed or returned nothing.
var ErrNoEntropy = errors.New("no device entropy available")
