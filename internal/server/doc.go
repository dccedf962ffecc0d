// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the config server's HTTP transport, including signal
// handling and graceful shutdown.
package server
