// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It reads the device unlock state from durable local storage and runs the
// terminal UI starting at the registration form or the unlocked page.
package client
