// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the client configuration satisfies all invariants
// before it is used at startup.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Adapter.RegistrationURL)
	if err != nil || u.Scheme == "" || u.Host == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Document.URL == "" || cfg.Document.Engine == "" || cfg.Document.DownloadDir == "" {
		return ErrInvalidDocumentConfigs
	}

	if cfg.Notifications.Duration <= 0 {
		return ErrInvalidNotificationConfigs
	}

	return nil
}
