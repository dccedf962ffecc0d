// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ToolConfig is the complete configuration object handed to the external
// smart-contract build tool. Field names follow the tool's schema so the
// value can be serialized as-is.
type ToolConfig struct {
	Solidity    SolidityConfig    `json:"solidity" yaml:"solidity"`
	Networks    NetworkTable      `json:"networks" yaml:"networks"`
	GasReporter GasReporterConfig `json:"gasReporter" yaml:"gasReporter"`

	// Plugins lists the tool plugins the configuration expects to be loaded.
	// It is not part of the configuration object itself and is only emitted
	// by the JS module renderer.
	Plugins []string `json:"-" yaml:"-"`
}

// SolidityConfig describes the compiler version and its settings.
type SolidityConfig struct {
	Version  string           `json:"version" yaml:"version"`
	Settings CompilerSettings `json:"settings" yaml:"settings"`
}

// CompilerSettings wraps the optimizer block of the compiler settings.
type CompilerSettings struct {
	Optimizer Optimizer `json:"optimizer" yaml:"optimizer"`
}

// Optimizer is the opaque (enabled, runs) pair passed to the compiler.
type Optimizer struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs"`
}

// GasReporterConfig configures the gas reporting plugin.
type GasReporterConfig struct {
	Currency string `json:"currency" yaml:"currency"`
	GasPrice int    `json:"gasPrice" yaml:"gasPrice"`
	Enabled  bool   `json:"enabled" yaml:"enabled"`
}

// Clone returns a deep copy of the configuration.
func (c ToolConfig) Clone() ToolConfig {
	cloned := c
	cloned.Networks = c.Networks.Clone()
	if c.Plugins != nil {
		cloned.Plugins = append([]string(nil), c.Plugins...)
	}
	return cloned
}
