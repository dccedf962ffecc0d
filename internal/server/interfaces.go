// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the config server.
//
// RunServer blocks until a stop signal arrives or the listener fails;
// Shutdown drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
