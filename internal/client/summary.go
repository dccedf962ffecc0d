// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/hhconfig/internal/render"
	"github.com/MKhiriev/hhconfig/models"
)

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(12)
	nameStyle  = lipgloss.NewStyle().Bold(true).Width(10)
	offStyle   = lipgloss.NewStyle().Faint(true)
)

// renderSummary describes cfg for a human. Accounts are always shown
// redacted.
func renderSummary(cfg models.ToolConfig) string {
	cfg = render.Redact(cfg)

	var b strings.Builder
	b.WriteString(titleStyle.Render("hhconfig"))
	b.WriteString("\n\n")

	optimizer := "off"
	if cfg.Solidity.Settings.Optimizer.Enabled {
		optimizer = fmt.Sprintf("on, %d runs", cfg.Solidity.Settings.Optimizer.Runs)
	}
	writeRow(&b, "solidity", fmt.Sprintf("%s (optimizer %s)", cfg.Solidity.Version, optimizer))

	reporter := offStyle.Render("disabled")
	if cfg.GasReporter.Enabled {
		reporter = fmt.Sprintf("%s @ %d gwei", cfg.GasReporter.Currency, cfg.GasReporter.GasPrice)
	}
	writeRow(&b, "gas report", reporter)

	b.WriteString("\n")
	for _, name := range cfg.Networks.Names() {
		d := cfg.Networks[name]

		target := d.URL
		if target == "" {
			target = "in-process"
		}
		line := nameStyle.Render(name) + " " + target
		if len(d.Accounts) > 0 {
			line += "  " + strings.Join(d.Accounts, ", ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if !hasRemoteNetworks(cfg) {
		b.WriteString("\n")
		b.WriteString(offStyle.Render("remote networks disabled: INFURA_PROJECT_ID or PRIVATE_KEY not set"))
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func hasRemoteNetworks(cfg models.ToolConfig) bool {
	for _, d := range cfg.Networks {
		if len(d.Accounts) > 0 {
			return true
		}
	}
	return false
}
