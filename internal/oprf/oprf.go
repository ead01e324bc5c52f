// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package oprf implements the base-mode Elliptic Curve Oblivious
// Pseudorandom Function that OPAQUE uses to turn a password into a
// server-blind, MHF-ready seed, generalized over the two permitted OPRF
// groups (Ristretto255, P-256).
package oprf

import (
	"crypto/sha512"

	"github.com/bytemare/crypto"

	"github.com/nyxcrypto/opaque/internal/encoding"
	"github.com/nyxcrypto/opaque/internal/tag"
)

// mode distinguishes base (non-verifiable) OPRF from the verifiable mode; OPAQUE only uses base mode.
const mode = 0

// ID identifies the OPRF-capable prime-order group to use.
type ID byte

const (
	// Ristretto255 selects the Ristretto255 group.
	Ristretto255 ID = iota
	// P256 selects the NIST P-256 group.
	P256
)

// Group returns the concrete prime-order group backing this OPRF identifier.
func (i ID) Group() crypto.Group {
	if i == P256 {
		return crypto.P256Sha256
	}

	return crypto.Ristretto255Sha512
}

// contextString is the OPRF context string mixed into every domain-separation tag, per the OPRF draft.
func (i ID) contextString() []byte {
	return encoding.Concatenate(
		[]byte(tag.OPRF),
		encoding.I2OSP(mode, 1),
		encoding.I2OSP(int(i.Group()), 2),
	)
}

func (i ID) dst(prefix string) []byte {
	return encoding.Concatenate([]byte(prefix), i.contextString())
}

// DeriveKey maps seed and a domain-separating info string onto a scalar in
// the group, used for the OPRF key each ServerConfig derives once from its
// seed.
func (i ID) DeriveKey(seed, info []byte) *crypto.Scalar {
	return i.Group().HashToScalar(encoding.Concatenate(seed, info), i.dst("DeriveKeyPair"))
}

// Blind hides input behind a fresh random scalar, returning the blind (kept
// by the client) and the blinded group element (sent to the server).
func (i ID) Blind(input []byte) (blind *crypto.Scalar, blinded *crypto.Element) {
	g := i.Group()
	blind = g.NewScalar().Random()
	p := g.HashToGroup(input, i.dst("HashToGroup-"))

	return blind, p.Multiply(blind)
}

// Evaluate applies the server's per-credential key to a client-blinded element.
func (i ID) Evaluate(key *crypto.Scalar, blinded *crypto.Element) *crypto.Element {
	return blinded.Multiply(key)
}

// Finalize removes the blind from the server's evaluation and hashes the
// result together with the original input, producing the OPRF output the
// protocol engine feeds to the MHF.
func (i ID) Finalize(input []byte, blind *crypto.Scalar, evaluated *crypto.Element) []byte {
	unblinded := evaluated.Multiply(blind.Invert())

	h := sha512.New()
	h.Write(encoding.EncodeVector(input))
	h.Write(encoding.EncodeVector(unblinded.Encode()))
	h.Write([]byte("Finalize"))

	return h.Sum(nil)
}
