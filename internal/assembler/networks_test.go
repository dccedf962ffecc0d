// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hhconfig/models"
)

func TestBuildNetworkTable_BothPresent(t *testing.T) {
	table := BuildNetworkTable("abc123", "deadbeef")

	require.Len(t, table, 4)
	assert.ElementsMatch(t, []string{"mainnet", "ropsten", "rinkeby", "kovan"}, table.Names())

	for name, d := range table {
		assert.Contains(t, d.URL, "abc123", name)
		assert.Equal(t, []string{"0xdeadbeef"}, d.Accounts, name)
		assert.Nil(t, d.InitialBaseFeePerGas, name)
	}
}

func TestBuildNetworkTable_MainnetScenario(t *testing.T) {
	table := BuildNetworkTable("abc123", "deadbeef")

	mainnet, ok := table[Mainnet]
	require.True(t, ok)
	assert.Equal(t, "https://mainnet.infura.io/v3/abc123", mainnet.URL)
	assert.Equal(t, []string{"0xdeadbeef"}, mainnet.Accounts)
}

func TestBuildNetworkTable_URLPerNetwork(t *testing.T) {
	table := BuildNetworkTable("p", "k")

	assert.Equal(t, "https://ropsten.infura.io/v3/p", table[Ropsten].URL)
	assert.Equal(t, "https://rinkeby.infura.io/v3/p", table[Rinkeby].URL)
	assert.Equal(t, "https://kovan.infura.io/v3/p", table[Kovan].URL)
}

func TestBuildNetworkTable_MissingCredentials(t *testing.T) {
	tests := []struct {
		name       string
		projectID  string
		privateKey string
	}{
		{name: "empty project id", projectID: "", privateKey: "deadbeef"},
		{name: "empty private key", projectID: "abc123", privateKey: ""},
		{name: "both empty", projectID: "", privateKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := BuildNetworkTable(tt.projectID, tt.privateKey)
			require.NotNil(t, table)
			assert.Empty(t, table)
		})
	}
}

func TestBuildNetworkTable_PassesValuesVerbatim(t *testing.T) {
	table := BuildNetworkTable("not a project/id", "0xnot-hex")

	require.Len(t, table, 4)
	assert.Equal(t, "https://kovan.infura.io/v3/not a project/id", table[Kovan].URL)
	assert.Equal(t, []string{"0x0xnot-hex"}, table[Kovan].Accounts)
}

func TestBuildNetworkTable_Idempotent(t *testing.T) {
	first := BuildNetworkTable("abc123", "deadbeef")
	second := BuildNetworkTable("abc123", "deadbeef")

	assert.Equal(t, first, second)

	// results do not share backing storage
	first[Mainnet].Accounts[0] = "changed"
	assert.Equal(t, []string{"0xdeadbeef"}, second[Mainnet].Accounts)
}

func TestSupportedNetworks(t *testing.T) {
	names := SupportedNetworks()
	assert.Equal(t, []string{"mainnet", "ropsten", "rinkeby", "kovan"}, names)

	names[0] = "changed"
	assert.Equal(t, Mainnet, SupportedNetworks()[0])
}

func TestNetworkTable_AllOrNothing(t *testing.T) {
	inputs := []string{"", "x", "abc123"}
	for _, p := range inputs {
		for _, k := range inputs {
			n := len(BuildNetworkTable(p, k))
			assert.Contains(t, []int{0, 4}, n, "project=%q key=%q", p, k)
		}
	}
}

func TestNetworkTable_Clone(t *testing.T) {
	fee := int64(3)
	original := models.NetworkTable{
		"a": {URL: "u", Accounts: []string{"0x1"}, InitialBaseFeePerGas: &fee},
	}

	cloned := original.Clone()
	require.Equal(t, original, cloned)

	*cloned["a"].InitialBaseFeePerGas = 7
	cloned["a"].Accounts[0] = "0x2"

	assert.Equal(t, int64(3), *original["a"].InitialBaseFeePerGas)
	assert.Equal(t, "0x1", original["a"].Accounts[0])
}
