// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the config server. It
// serves the rendered build-tool configuration and the snapshot API, and
// owns the tracing, logging, compression and authentication middleware.
package http
