// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hhconfig/internal/keys"
	"github.com/MKhiriev/hhconfig/models"
)

const validKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestAssemble_NoCredentials(t *testing.T) {
	cfg, err := New().Assemble(models.Credentials{})
	require.NoError(t, err)

	require.Len(t, cfg.Networks, 2)
	assert.Equal(t, "http://localhost:8555", cfg.Networks[CoverageNetwork].URL)

	dev, ok := cfg.Networks[DevNetwork]
	require.True(t, ok)
	require.NotNil(t, dev.InitialBaseFeePerGas)
	assert.Equal(t, int64(1), *dev.InitialBaseFeePerGas)
	assert.Empty(t, dev.URL)
}

func TestAssemble_StaticBlocks(t *testing.T) {
	cfg, err := New().Assemble(models.Credentials{})
	require.NoError(t, err)

	assert.Equal(t, "0.8.7", cfg.Solidity.Version)
	assert.True(t, cfg.Solidity.Settings.Optimizer.Enabled)
	assert.Equal(t, 20, cfg.Solidity.Settings.Optimizer.Runs)

	assert.Equal(t, "USD", cfg.GasReporter.Currency)
	assert.Equal(t, 120, cfg.GasReporter.GasPrice)
	assert.False(t, cfg.GasReporter.Enabled)

	assert.Contains(t, cfg.Plugins, "hardhat-gas-reporter")
}

func TestAssemble_GasReport(t *testing.T) {
	cfg, err := New().Assemble(models.Credentials{GasReport: true})
	require.NoError(t, err)
	assert.True(t, cfg.GasReporter.Enabled)
}

func TestAssemble_WithCredentials(t *testing.T) {
	cfg, err := New().Assemble(models.Credentials{ProjectID: "abc123", PrivateKey: "deadbeef"})
	require.NoError(t, err)

	require.Len(t, cfg.Networks, 6)
	assert.Equal(t, "https://mainnet.infura.io/v3/abc123", cfg.Networks[Mainnet].URL)
	assert.Equal(t, []string{"0xdeadbeef"}, cfg.Networks[Mainnet].Accounts)
	assert.Equal(t, CoverageURL, cfg.Networks[CoverageNetwork].URL)
	assert.Contains(t, cfg.Networks, DevNetwork)
}

func TestAssemble_PartialCredentials(t *testing.T) {
	cfg, err := New().Assemble(models.Credentials{ProjectID: "", PrivateKey: "deadbeef"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{CoverageNetwork, DevNetwork}, cfg.Networks.Names())
}

func TestAssemble_DoesNotShareStaticState(t *testing.T) {
	a := New()

	first, err := a.Assemble(models.Credentials{})
	require.NoError(t, err)
	*first.Networks[DevNetwork].InitialBaseFeePerGas = 99
	first.Networks["extra"] = models.NetworkDescriptor{}

	second, err := a.Assemble(models.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), *second.Networks[DevNetwork].InitialBaseFeePerGas)
	assert.NotContains(t, second.Networks, "extra")
}

func TestAssemble_Idempotent(t *testing.T) {
	creds := models.Credentials{ProjectID: "abc123", PrivateKey: "deadbeef", GasReport: true}

	first, err := New().Assemble(creds)
	require.NoError(t, err)
	second, err := New().Assemble(creds)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssemble_StrictKeys(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{
			name:  "valid key",
			creds: models.Credentials{ProjectID: "p", PrivateKey: validKey},
		},
		{
			name:    "malformed key",
			creds:   models.Credentials{ProjectID: "p", PrivateKey: "deadbeef"},
			wantErr: keys.ErrMalformedKey,
		},
		{
			name:    "prefixed key",
			creds:   models.Credentials{ProjectID: "p", PrivateKey: "0x" + validKey},
			wantErr: keys.ErrPrefixedKey,
		},
		{
			// the key is unused without a project id, so it is not checked
			name:  "malformed key without project id",
			creds: models.Credentials{PrivateKey: "deadbeef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(WithStrictKeys(true)).Assemble(tt.creds)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidPrivateKey)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAssemble_LenientKeysPassThrough(t *testing.T) {
	cfg, err := New(WithStrictKeys(false)).Assemble(models.Credentials{ProjectID: "p", PrivateKey: "nothex"})
	require.NoError(t, err)
	assert.Equal(t, []string{"0xnothex"}, cfg.Networks[Kovan].Accounts)
}

func TestMergeNetworks_RemoteTakesPrecedence(t *testing.T) {
	dst := models.NetworkTable{
		"shared": {URL: "http://static"},
		"static": {URL: "http://only-static"},
	}
	src := models.NetworkTable{
		"shared": {URL: "http://remote", Accounts: []string{"0x1"}},
	}

	require.NoError(t, mergeNetworks(dst, src))

	assert.Equal(t, "http://remote", dst["shared"].URL)
	assert.Equal(t, []string{"0x1"}, dst["shared"].Accounts)
	assert.Equal(t, "http://only-static", dst["static"].URL)
}
