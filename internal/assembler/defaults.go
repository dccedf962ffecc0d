// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assembler

import (
	"slices"

	"github.com/MKhiriev/hhconfig/models"
)

// Static configuration values.
const (
	CompilerVersion  = "0.8.7"
	OptimizerEnabled = true
	OptimizerRuns    = 20

	CoverageNetwork = "coverage"
	CoverageURL     = "http://localhost:8555"

	DevNetwork              = "hardhat"
	DevInitialBaseFeePerGas = int64(1)

	ReporterCurrency = "USD"
	ReporterGasPrice = 120
)

var plugins = []string{
	"@nomiclabs/hardhat-waffle",
	"@nomiclabs/hardhat-truffle5",
	"solidity-coverage",
	"@nomiclabs/hardhat-solhint",
	"hardhat-gas-reporter",
	"hardhat-contract-sizer",
}

// StaticConfig returns a fresh copy of the fixed part of the configuration:
// compiler settings, the local coverage and development networks, and the
// gas reporter block. gasReport is the only input and drives the reporter's
// enabled flag.
func StaticConfig(gasReport bool) models.ToolConfig {
	baseFee := DevInitialBaseFeePerGas

	return models.ToolConfig{
		Solidity: models.SolidityConfig{
			Version: CompilerVersion,
			Settings: models.CompilerSettings{
				Optimizer: models.Optimizer{
					Enabled: OptimizerEnabled,
					Runs:    OptimizerRuns,
				},
			},
		},
		Networks: models.NetworkTable{
			CoverageNetwork: {URL: CoverageURL},
			DevNetwork:      {InitialBaseFeePerGas: &baseFee},
		},
		GasReporter: models.GasReporterConfig{
			Currency: ReporterCurrency,
			GasPrice: ReporterGasPrice,
			Enabled:  gasReport,
		},
		Plugins: slices.Clone(plugins),
	}
}
