package tui

// Page names known to [RootModel].
const (
	pageGate     = "gate"
	pageUnlocked = "unlocked"
	pageViewer   = "viewer"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page as the next message instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

type registerResultMsg struct {
	err error
}

type downloadRequestMsg struct{}

type documentDownloadedMsg struct {
	path string
	err  error
}

type logoutResultMsg struct {
	err error
}

type loggedOutMsg struct{}

type mountViewerMsg struct{}

type documentOpenedMsg struct {
	generation uint64
	err        error
}

type pagesRenderedMsg struct {
	generation uint64
	err        error
}

type screenSavedMsg struct {
	path string
	err  error
}

type clipboardMsg struct {
	success string
	err     error
}
