// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote registration endpoint and for fetching static assets.
//
// [RegistrationAdapter] decouples the service layer from the underlying
// protocol; the package ships an HTTP/REST implementation built on resty
// ([NewHTTPRegistrationAdapter]). [AssetAdapter] loads the companion document
// either from the local filesystem or over HTTP.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling. Every submission failure additionally wraps [ErrSubmissionFailed].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-event-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RegistrationAdapter delivers a visitor's registration to the remote
// endpoint.
type RegistrationAdapter interface {
	// Submit POSTs record as JSON. Any 2xx response is success; a transport
	// error or any other status is returned wrapped in [ErrSubmissionFailed].
	// The response body is never interpreted.
	Submit(ctx context.Context, record models.RegistrationRecord) error
}

// AssetAdapter loads static assets such as the companion document.
type AssetAdapter interface {
	// Fetch returns the bytes at location, which is either an http(s) URL or
	// a local file path. A missing asset yields [ErrAssetNotFound].
	Fetch(ctx context.Context, location string) ([]byte, error)
}
