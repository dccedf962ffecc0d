// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"strings"

	"github.com/MKhiriev/hhconfig/internal/keys"
	"github.com/MKhiriev/hhconfig/models"
)

const redactedAccount = "<redacted>"

// Redact returns a copy of cfg whose signing accounts are replaced by a
// placeholder naming the address they control. cfg is not modified.
func Redact(cfg models.ToolConfig) models.ToolConfig {
	redacted := cfg.Clone()
	for name, d := range redacted.Networks {
		for i, account := range d.Accounts {
			d.Accounts[i] = redactAccount(account)
		}
		redacted.Networks[name] = d
	}
	return redacted
}

func redactAccount(account string) string {
	addr, err := keys.Address(strings.TrimPrefix(account, "0x"))
	if err != nil {
		return redactedAccount
	}
	return "<redacted:" + addr + ">"
}
