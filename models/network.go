// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// NetworkDescriptor holds the connection parameters of a single network
// entry of the build-tool configuration.
//
// Remote networks set URL and exactly one account. The local development
// network sets only InitialBaseFeePerGas, the coverage network only URL.
type NetworkDescriptor struct {
	URL                  string   `json:"url,omitempty" yaml:"url,omitempty"`
	Accounts             []string `json:"accounts,omitempty" yaml:"accounts,omitempty"`
	InitialBaseFeePerGas *int64   `json:"initialBaseFeePerGas,omitempty" yaml:"initialBaseFeePerGas,omitempty"`
}

// NetworkTable maps a network name to its descriptor.
type NetworkTable map[string]NetworkDescriptor

// Names returns the network names of the table in lexical order.
func (t NetworkTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the table so callers can modify the result
// without touching the original.
func (t NetworkTable) Clone() NetworkTable {
	if t == nil {
		return nil
	}

	cloned := make(NetworkTable, len(t))
	for name, d := range t {
		c := NetworkDescriptor{URL: d.URL}
		if d.Accounts != nil {
			c.Accounts = append([]string(nil), d.Accounts...)
		}
		if d.InitialBaseFeePerGas != nil {
			fee := *d.InitialBaseFeePerGas
			c.InitialBaseFeePerGas = &fee
		}
		cloned[name] = c
	}
	return cloned
}
