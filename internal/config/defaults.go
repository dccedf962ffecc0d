// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other source.
const (
	DefaultOutputFormat          = "json"
	DefaultDotEnvPath            = ".env"
	DefaultTokenIssuer           = "hhconfig"
	DefaultTokenDuration         = time.Hour
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultAdapterRequestTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			OutputFormat:  DefaultOutputFormat,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
	}
}
