// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals configuration snapshots at rest. Snapshots embed the
// deployer private key, so they are never persisted in plain text.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer encrypts and decrypts opaque payloads with a key derived from an
// operator passphrase.
type Sealer interface {
	// Seal encrypts plaintext and returns a base64 blob of the form
	// salt || nonce || ciphertext. Every call uses a fresh salt and nonce.
	Seal(plaintext []byte) (string, error)

	// Open reverses Seal. It fails when the blob is malformed or was sealed
	// with a different passphrase.
	Open(sealed string) ([]byte, error)
}
