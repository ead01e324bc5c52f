// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal holds the resolved, non-exported runtime representation of
// a Config (the "Suite") plus the handful of cross-cutting helpers (secure
// randomness, shared length constants) every other internal package depends
// on. It deliberately does not import internal/ake, internal/oprf,
// internal/envelope, or internal/masking — those depend on this package, not
// the other way around; the root package wires concrete implementations in.
package internal

import (
	"crypto/rand"
	"errors"

	"github.com/bytemare/crypto"

	"github.com/nyxcrypto/opaque/internal/hash"
	"github.com/nyxcrypto/opaque/internal/mhf"
)

// SeedLength is the width of the server's random OPRF seed and of the seed
// the client's long-term AKE key pair is derived from.
const SeedLength = 32

// NonceLength is the width of the nonces used in the envelope and the 3DH handshake.
const NonceLength = 32

// ErrConfigurationInvalidLength describes a serialized Config too short to
// contain its fixed-width selector bytes. The root package's DeserializeConfig
// reports that case as ErrConfig, so nothing in this module returns it.
var ErrConfigurationInvalidLength = errors.New("internal: invalid configuration encoding length")

// AKEGroup is the capability set internal/ake's concrete group
// implementations satisfy; declared here (rather than imported) so this
// package never has to depend on internal/ake.
type AKEGroup interface {
	KeyGen() (sk, pk []byte)
	DH(sk, peerPK []byte) ([]byte, error)
	PkLen() int
	SkLen() int
	ValidatePublicKey(pk []byte) error
	DeriveKeyPair(seed, info []byte) (sk, pk []byte)
}

// OPRFGroup is the capability set internal/oprf's resolved identifier
// exposes, declared here for the same reason as AKEGroup.
type OPRFGroup interface {
	Group() crypto.Group
	DeriveKey(seed, info []byte) *crypto.Scalar
	Blind(input []byte) (blind *crypto.Scalar, blinded *crypto.Element)
	Evaluate(key *crypto.Scalar, blinded *crypto.Element) *crypto.Element
	Finalize(input []byte, blind *crypto.Scalar, evaluated *crypto.Element) []byte
}

// Suite is the fully resolved runtime tuple a Config maps to: concrete AKE
// and OPRF group implementations, hash/KDF/MAC instances sized for the
// selected family and group width, the MHF instance, and the fixed lengths
// derived from them. Every internal package below operates on a *Suite,
// never on the public Config directly.
type Suite struct {
	Tag          byte
	AKE          AKEGroup
	OPRF         OPRFGroup
	HashFamily   hash.Family
	HashWidth    hash.Width
	KDF          *hash.KDF
	MAC          *hash.MAC
	Mhf          mhf.Mhf
	NonceLen     int
	EnvelopeSize int
	Context      []byte
}

// NewHash returns a fresh incremental hasher matching the Suite's transcript
// hash. A fresh instance per transcript is required since hash.Hash carries
// running state; KDF and MAC, by contrast, are stateless and shared.
func (s *Suite) NewHash() *hash.Hash {
	return hash.New(s.HashFamily, s.HashWidth)
}

// RandomBytes returns length bytes read from a CSPRNG; it panics if the
// system RNG is unavailable, matching the teacher's posture that entropy
// failures are an unrecoverable environment fault, not a normal error path.
func RandomBytes(length int) []byte {
	out := make([]byte, length)
	if _, err := rand.Read(out); err != nil {
		panic("internal: system randomness unavailable: " + err.Error())
	}

	return out
}
