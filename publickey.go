// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package opaque

import (
	"fmt"

	"github.com/nyxcrypto/opaque/internal/encoding"
)

// publicKeyEnvelopeSize is the fixed envelope width that accommodates both
// 32-byte (Ristretto255, X25519) and 33-byte (compressed P-256) encodings;
// the trailing byte is zero-padded for 32-byte groups, per spec.md §9.
const publicKeyEnvelopeSize = 33

// PublicKey is a Config-tagged AKE public key, monomorphic across every
// supported group via a fixed 33-byte envelope. Equality is by (Config,
// bytes); Bytes returns the group-correct truncation, never the raw envelope.
type PublicKey struct {
	config   Config
	envelope [publicKeyEnvelopeSize]byte
	length   int
}

func newPublicKey(config Config, encoded []byte) PublicKey {
	var pk PublicKey

	pk.config = config
	pk.length = len(encoded)
	copy(pk.envelope[:], encoded)

	return pk
}

// Config returns the cipher suite this public key was produced under.
func (p PublicKey) Config() Config {
	return p.config
}

// Bytes returns the group-correct encoding (32 or 33 bytes), truncated from the envelope.
func (p PublicKey) Bytes() []byte {
	out := make([]byte, p.length)
	copy(out, p.envelope[:p.length])

	return out
}

// Equal reports whether two public keys share a Config and encoding.
func (p PublicKey) Equal(other PublicKey) bool {
	return p.config.Equal(other.config) && p.length == other.length && p.envelope == other.envelope
}

// Serialize encodes the public key as its Config followed by a length byte and the
// group-correct encoding (the envelope truncated to that length).
func (p PublicKey) Serialize() []byte {
	return encoding.Concatenate(p.config.Serialize(), encoding.I2OSP(p.length, 1), p.envelope[:p.length])
}

func deserializePublicKey(data []byte) (PublicKey, []byte, error) {
	config, rest, err := DeserializeConfig(data)
	if err != nil {
		return PublicKey{}, nil, err
	}

	if len(rest) < 1 {
		return PublicKey{}, nil, fmt.Errorf("%w: truncated public key length", ErrConfig)
	}

	n := encoding.OS2IP(rest[:1])
	rest = rest[1:]

	if n > publicKeyEnvelopeSize || len(rest) < n {
		return PublicKey{}, nil, fmt.Errorf("%w: invalid public key length", ErrConfig)
	}

	return newPublicKey(config, rest[:n]), rest[n:], nil
}

// DeserializePublicKey decodes a PublicKey previously produced by Serialize.
func DeserializePublicKey(data []byte) (PublicKey, error) {
	pk, rest, err := deserializePublicKey(data)
	if err != nil {
		return PublicKey{}, err
	}

	if len(rest) != 0 {
		return PublicKey{}, fmt.Errorf("%w: trailing bytes after public key", ErrConfig)
	}

	return pk, nil
}
