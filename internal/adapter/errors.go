package adapter

import "errors"

var (
	// ErrSubmissionFailed wraps every failed registration POST.
	ErrSubmissionFailed = errors.New("registration submission failed")

	// ErrAssetNotFound is returned when an asset is missing locally or the
	// server answers 404.
	ErrAssetNotFound = errors.New("asset not found")

	ErrInvalidURL = errors.New("invalid url")
)

// HTTP status family errors produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
