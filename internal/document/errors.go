package document

import "errors"

// User-facing state messages.
const (
	MsgEngineUnavailable = "Document engine not loaded yet."
	MsgOpenFailed        = "Failed to load document."
	MsgPageRenderFailed  = "Failed to render page %d."
	MsgNoDocument        = "No document loaded."
	MsgPrintingDisabled  = "Printing is disabled"
)

var (
	ErrEngineUnavailable = errors.New("document engine unavailable")
	ErrDocumentOpen      = errors.New("failed to open document")
	ErrPageRender        = errors.New("failed to render page")
	ErrSurfacesNotReady  = errors.New("surfaces not ready")
	ErrPageOutOfRange    = errors.New("page out of range")
	ErrStaleGeneration   = errors.New("renderer was re-initialized")

	ErrRestrictionActive = errors.New("restriction already acquired")
	ErrNilHost           = errors.New("host is nil")
)
