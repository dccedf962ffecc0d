// Package config provides configuration loading, merging, and validation
// facilities for hhconfig.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables, after a .env file has been loaded into the
//     process environment
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetStructuredConfig]. Binaries that need more
// than the shared invariants call the matching Validate method.
package config
