// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-event-gate terminal client.
//
// All Msg* constants are human-readable strings shown to the visitor in
// inline form messages, alert overlays and toasts. Keeping them in one place
// ensures consistent wording throughout the UI.
package app

const (
	// MsgAllFieldsRequired is shown inline when any registration field is
	// blank on submit.
	MsgAllFieldsRequired = "All fields are required."

	// MsgFixErrorBeforeSubmitting is shown in a blocking alert when the email
	// field still fails company-email validation on submit.
	MsgFixErrorBeforeSubmitting = "Fix the error before submitting."

	// MsgRegistrationSubmitted is the success toast after the registration
	// endpoint accepted the record.
	MsgRegistrationSubmitted = "Registration submitted successfully."

	// MsgRegistrationFailed is the error toast for any failure of the
	// fingerprint, persist or submit steps.
	MsgRegistrationFailed = "Registration failed. Please try again."

	// MsgSubmitting is the busy label of the submit button.
	MsgSubmitting = "Loading..."

	// MsgDocumentDownloaded is the success toast after the book was saved;
	// the argument is the written path.
	MsgDocumentDownloaded = "Book saved to %s"

	// MsgDocumentDownloadFailed prefixes the error toast of a failed
	// download.
	MsgDocumentDownloadFailed = "Download failed: %s"

	// MsgNothingToCopy is shown when the visitor copies the book path before
	// downloading it.
	MsgNothingToCopy = "Download the book first."

	// MsgPathCopied confirms the downloaded path was copied to the clipboard.
	MsgPathCopied = "Path copied to clipboard."

	// MsgPageTextCopied confirms the visible page text was copied.
	MsgPageTextCopied = "Page text copied to clipboard."

	// MsgClipboardFailed prefixes a clipboard error toast.
	MsgClipboardFailed = "Clipboard unavailable: %s"

	// MsgLogoutFailed is the error toast when the device token could not be
	// removed.
	MsgLogoutFailed = "Logout failed. Please try again."

	// MsgLoggedOut confirms the device token was removed.
	MsgLoggedOut = "You have been logged out."

	// MsgCopyDisabled is shown when the context menu was suppressed in the
	// viewer.
	MsgCopyDisabled = "Copying is disabled"

	// MsgScreenSaved confirms a screen dump was written; the argument is the
	// written path.
	MsgScreenSaved = "Screen saved to %s"

	// MsgScreenSaveFailed prefixes the error toast of a failed screen dump.
	MsgScreenSaveFailed = "Saving failed: %s"

	// MsgNetworkUnavailable replaces low-level transport errors.
	MsgNetworkUnavailable = "Network is unavailable or the server is unreachable"
)
