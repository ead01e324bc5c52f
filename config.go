// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package opaque implements the OPAQUE augmented password-authenticated key
// exchange: a client proves knowledge of a password to a server and both
// sides derive an authenticated shared session, without the server ever
// learning the password or storing a password-equivalent. It exposes a
// registration flow that bootstraps a server-held credential file and a
// login flow that verifies a credential and derives a client-only export
// key, over a runtime-selectable cipher suite (AKE group, OPRF group, hash
// family, memory-hard function).
package opaque

import (
	"fmt"

	"github.com/nyxcrypto/opaque/internal"
	"github.com/nyxcrypto/opaque/internal/ake"
	"github.com/nyxcrypto/opaque/internal/encoding"
	"github.com/nyxcrypto/opaque/internal/hash"
	"github.com/nyxcrypto/opaque/internal/oprf"
)

// Config is an immutable cipher-suite selection: the AKE group, OPRF group,
// hash family, and memory-hard function a registration or login flow runs
// over. Two Configs compare equal iff all four selectors and the MHF
// parameters match; Config is the identity carried on every message, state,
// and file the library produces.
type Config struct {
	Ake   Ake
	Group Group
	Hash  Hash
	Mhf   Mhf
}

// NewConfig validates the four selectors and returns a Config. MHF parameters
// are validated when built with NewArgon2Params/NewPbkdf2Params; NewConfig
// checks only the selector bytes and does not re-check the Mhf value.
func NewConfig(ake Ake, group Group, hsh Hash, mhf Mhf) (Config, error) {
	switch ake {
	case AkeRistretto255, AkeX25519, AkeP256:
	default:
		return Config{}, fmt.Errorf("%w: invalid ake selector %d", ErrConfig, ake)
	}

	switch group {
	case GroupRistretto255, GroupP256:
	default:
		return Config{}, fmt.Errorf("%w: invalid oprf group selector %d", ErrConfig, group)
	}

	switch hsh {
	case HashSha2, HashSha3, HashBlake3:
	default:
		return Config{}, fmt.Errorf("%w: invalid hash selector %d", ErrConfig, hsh)
	}

	return Config{Ake: ake, Group: group, Hash: hsh, Mhf: mhf}, nil
}

// DefaultConfig returns the library's recommended suite: Ristretto255 for
// both AKE and OPRF, SHA-2, and the Argon2 defaults.
func DefaultConfig() Config {
	c, err := NewConfig(AkeRistretto255, GroupRistretto255, HashSha2, NewArgon2Mhf(DefaultArgon2Params()))
	if err != nil {
		panic("opaque: default configuration is always valid")
	}

	return c
}

// Equal reports whether two Configs select the same cipher suite.
func (c Config) Equal(other Config) bool {
	return c == other
}

// String renders the Config for logs, in the teacher's hand-written Debug style.
func (c Config) String() string {
	return fmt.Sprintf("Config{Ake: %s, Group: %s, Hash: %s, Mhf: %s}", c.Ake, c.Group, c.Hash, c.Mhf)
}

// width reports the hash digest-size tier paired with the OPRF group: wide
// for Ristretto255, narrow for P-256.
func (c Config) width() hash.Width {
	if c.Group == GroupP256 {
		return hash.Narrow
	}

	return hash.Wide
}

func (c Config) hashFamily() hash.Family {
	switch c.Hash {
	case HashSha3:
		return hash.Sha3
	case HashBlake3:
		return hash.Blake3
	default:
		return hash.Sha2
	}
}

// oprfID maps Config.Group onto internal/oprf's identifier; the two enums
// share the same Ristretto255=0, P256=1 ordering by construction.
func (c Config) oprfID() oprf.ID {
	return oprf.ID(c.Group)
}

// tag is an opaque per-suite discriminator mixed into nothing cryptographic;
// it exists only so internal.Suite carries a cheap identity for diagnostics.
func (c Config) tag() byte {
	return byte(c.Ake)<<4 | byte(c.Group)<<3 | byte(c.Hash)<<1 | byte(c.Mhf.family)
}

// resolve maps a Config onto the fully-resolved runtime Suite the protocol
// engine operates on, per SPEC_FULL.md's cipher-suite registry layer.
func (c Config) resolve() (*internal.Suite, error) {
	w := c.width()
	fam := c.hashFamily()

	if !hash.Available(fam, w) {
		return nil, fmt.Errorf("%w: hash family unavailable in this build", ErrConfig)
	}

	akeGroup := ake.Resolve(ake.ID(c.Ake))
	kdf := hash.NewKDF(fam, w)
	mac := hash.NewMAC(fam, w)

	return &internal.Suite{
		Tag:          c.tag(),
		AKE:          akeGroup,
		OPRF:         c.oprfID(),
		HashFamily:   fam,
		HashWidth:    w,
		KDF:          kdf,
		MAC:          mac,
		Mhf:          c.Mhf.resolve(),
		NonceLen:     internal.NonceLength,
		EnvelopeSize: internal.NonceLength + mac.Size(),
		Context:      nil,
	}, nil
}

// Serialize encodes the Config as its selector bytes, the MHF parameter
// block, and a reserved (always-empty) context vector, matching the
// teacher's id-bytes-plus-context layout.
func (c Config) Serialize() []byte {
	return encoding.Concatenate(
		[]byte{byte(c.Ake), byte(c.Group), byte(c.Hash)},
		c.Mhf.serialize(),
		encoding.EncodeVector(nil),
	)
}

// DeserializeConfig decodes a Config from the front of data, returning the
// remaining bytes so callers can go on to decode the payload that follows a
// self-describing message, file, or state encoding.
func DeserializeConfig(data []byte) (Config, []byte, error) {
	if len(data) < 3 {
		return Config{}, nil, fmt.Errorf("%w: truncated config encoding", ErrConfig)
	}

	akeSel, groupSel, hashSel := Ake(data[0]), Group(data[1]), Hash(data[2])

	mhfVal, rest, err := deserializeMhf(data[3:])
	if err != nil {
		return Config{}, nil, err
	}

	_, rest, err = encoding.DecodeVector(rest)
	if err != nil {
		return Config{}, nil, fmt.Errorf("%w: truncated config context", ErrConfig)
	}

	cfg, err := NewConfig(akeSel, groupSel, hashSel, mhfVal)
	if err != nil {
		return Config{}, nil, err
	}

	return cfg, rest, nil
}
