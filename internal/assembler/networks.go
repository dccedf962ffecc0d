// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assembler

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/hhconfig/models"
)

// Remote network names. The set is fixed: a network table holds either all
// of them or none.
const (
	Mainnet = "mainnet"
	Ropsten = "ropsten"
	Rinkeby = "rinkeby"
	Kovan   = "kovan"
)

const (
	// ProviderDomain is the RPC provider host suffix used in remote URLs.
	ProviderDomain = "infura.io"

	accountPrefix = "0x"
)

var remoteNetworks = []string{Mainnet, Ropsten, Rinkeby, Kovan}

// SupportedNetworks returns the remote network names in declaration order.
func SupportedNetworks() []string {
	return slices.Clone(remoteNetworks)
}

// NetworkURL returns the provider endpoint of network for projectID.
func NetworkURL(network, projectID string) string {
	return fmt.Sprintf("https://%s.%s/v3/%s", network, ProviderDomain, projectID)
}

// BuildNetworkTable returns the remote network entries unlocked by the
// given credentials.
//
// When both projectID and privateKey are non-empty the table holds one
// entry per supported network, each pointing at the provider URL for
// projectID and signing with "0x"+privateKey. Otherwise the table is empty.
// Neither value is validated.
func BuildNetworkTable(projectID, privateKey string) models.NetworkTable {
	if projectID == "" || privateKey == "" {
		return models.NetworkTable{}
	}

	table := make(models.NetworkTable, len(remoteNetworks))
	for _, name := range remoteNetworks {
		table[name] = models.NetworkDescriptor{
			URL:      NetworkURL(name, projectID),
			Accounts: []string{accountPrefix + privateKey},
		}
	}
	return table
}
