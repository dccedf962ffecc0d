// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keys checks the shape of deployer private keys and derives the
// account address they control.
package keys

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// ErrEmptyKey is returned when no key material is provided.
	ErrEmptyKey = errors.New("private key is empty")

	// ErrPrefixedKey is returned when the key already carries the 0x prefix.
	// The prefix is added when the key is placed into a network descriptor.
	ErrPrefixedKey = errors.New("private key must not start with 0x")

	// ErrMalformedKey is returned when the key is not a 32-byte hex-encoded
	// secp256k1 scalar.
	ErrMalformedKey = errors.New("malformed private key")
)

// ValidatePrivateKey reports whether key is a usable hex-encoded secp256k1
// private key without the 0x prefix.
func ValidatePrivateKey(key string) error {
	_, err := parse(key)
	return err
}

// Address returns the EIP-55 checksummed address controlled by key.
func Address(key string) (string, error) {
	pk, err := parse(key)
	if err != nil {
		return "", err
	}
	return crypto.PubkeyToAddress(pk.PublicKey).Hex(), nil
}

func parse(key string) (*ecdsa.PrivateKey, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if strings.HasPrefix(key, "0x") || strings.HasPrefix(key, "0X") {
		return nil, ErrPrefixedKey
	}

	pk, err := crypto.HexToECDSA(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	return pk, nil
}
