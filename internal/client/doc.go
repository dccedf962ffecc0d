// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the hhconfig command-line runtime.
//
// It assembles the build-tool configuration locally, or fetches it from a
// config server, and delivers it to a file, stdout or the clipboard.
package client
