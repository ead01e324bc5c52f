// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ake implements the 3DH authenticated key exchange embedded in
// OPAQUE, generalized over three possible AKE groups (Ristretto255, X25519,
// P-256) behind one Group capability set.
package ake

import (
	"crypto/sha512"
	"errors"

	"github.com/bytemare/crypto"
	"golang.org/x/crypto/curve25519"

	"github.com/nyxcrypto/opaque/internal"
	"github.com/nyxcrypto/opaque/internal/encoding"
)

// ErrInvalidPublicKey is returned when a peer-supplied AKE public key is
// malformed or fails group membership validation.
var ErrInvalidPublicKey = errors.New("ake: invalid public key encoding")

// akeDeriveKeyPairDST domain-separates DeriveKeyPair from every other
// hash-to-scalar use of the same prime-order group (the OPRF blind/evaluate
// path uses its own DST, scoped by internal/oprf.ID.dst).
const akeDeriveKeyPairDST = "OPAQUE-AKE-DeriveAuthKeyPair"

// Group is the AKE group capability set: key generation, Diffie-Hellman,
// public-key validation, and deterministic key-pair derivation from a seed,
// over raw byte encodings. Ristretto255 and P-256 are backed by
// github.com/bytemare/crypto's prime-order group arithmetic; X25519 is a raw
// Montgomery-curve Diffie-Hellman with no group structure to share with the
// OPRF layer, so it is implemented directly over golang.org/x/crypto/curve25519
// instead.
type Group interface {
	KeyGen() (sk, pk []byte)
	DH(sk, peerPK []byte) ([]byte, error)
	PkLen() int
	SkLen() int
	ValidatePublicKey(pk []byte) error
	// DeriveKeyPair deterministically derives a static key pair from seed and
	// a domain-separating info string, over this AKE group — never over the
	// suite's (possibly distinct) OPRF group. Used to recover the client's
	// long-term AKE key pair from the envelope during registration and login.
	DeriveKeyPair(seed, info []byte) (sk, pk []byte)
}

// ID identifies which concrete AKE group a Config selected.
type ID byte

const (
	// Ristretto255 selects the Ristretto255 prime-order group.
	Ristretto255 ID = iota
	// X25519 selects raw X25519 Diffie-Hellman.
	X25519
	// P256 selects the NIST P-256 prime-order group.
	P256
)

// Resolve returns the concrete Group implementation for id.
func Resolve(id ID) Group {
	switch id {
	case X25519:
		return x25519Group{}
	case P256:
		return primeOrderGroup{g: crypto.P256Sha256}
	default:
		return primeOrderGroup{g: crypto.Ristretto255Sha512}
	}
}

// primeOrderGroup adapts github.com/bytemare/crypto's Group to the ake.Group
// capability set, used for Ristretto255 and P-256.
type primeOrderGroup struct {
	g crypto.Group
}

func (p primeOrderGroup) KeyGen() (sk, pk []byte) {
	scalar := p.g.NewScalar().Random()
	point := p.g.Base().Multiply(scalar)

	return scalar.Encode(), point.Encode()
}

func (p primeOrderGroup) DH(sk, peerPK []byte) ([]byte, error) {
	scalar := p.g.NewScalar()
	if err := scalar.Decode(sk); err != nil {
		return nil, ErrInvalidPublicKey
	}

	point := p.g.NewElement()
	if err := point.Decode(peerPK); err != nil {
		return nil, ErrInvalidPublicKey
	}

	return point.Multiply(scalar).Encode(), nil
}

func (p primeOrderGroup) PkLen() int {
	return p.g.ElementLength()
}

func (p primeOrderGroup) SkLen() int {
	return p.g.ScalarLength()
}

func (p primeOrderGroup) ValidatePublicKey(pk []byte) error {
	if len(pk) != p.g.ElementLength() {
		return ErrInvalidPublicKey
	}

	if err := p.g.NewElement().Decode(pk); err != nil {
		return ErrInvalidPublicKey
	}

	return nil
}

func (p primeOrderGroup) DeriveKeyPair(seed, info []byte) (sk, pk []byte) {
	scalar := p.g.HashToScalar(encoding.Concatenate(seed, info), []byte(akeDeriveKeyPairDST))
	point := p.g.Base().Multiply(scalar)

	return scalar.Encode(), point.Encode()
}

// x25519Group implements ake.Group directly over curve25519, the one AKE
// selector spec's Config exposes that has no corresponding OPRF-capable
// prime-order group in github.com/bytemare/crypto.
type x25519Group struct{}

func (x25519Group) KeyGen() (sk, pk []byte) {
	sk = internal.RandomBytes(curve25519.ScalarSize)
	// Clamp per RFC 7748 so every generated scalar is a valid X25519 private key.
	sk[0] &= 248
	sk[31] &= 127
	sk[31] |= 64

	pub, err := curve25519.X25519(sk, curve25519.Basepoint)
	if err != nil {
		panic("ake: X25519 base-point multiplication cannot fail for a clamped scalar")
	}

	return sk, pub
}

func (x25519Group) DH(sk, peerPK []byte) ([]byte, error) {
	shared, err := curve25519.X25519(sk, peerPK)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	return shared, nil
}

func (x25519Group) PkLen() int { return curve25519.PointSize }
func (x25519Group) SkLen() int { return curve25519.ScalarSize }

func (x25519Group) ValidatePublicKey(pk []byte) error {
	if len(pk) != curve25519.PointSize {
		return ErrInvalidPublicKey
	}

	return nil
}

// DeriveKeyPair derives a static X25519 key pair from seed and info.
// curve25519 has no hash-to-scalar primitive, so the scalar is a clamped
// SHA-512 digest of seed || info || the DST, the same clamping KeyGen
// applies to fresh random bytes.
func (x25519Group) DeriveKeyPair(seed, info []byte) (sk, pk []byte) {
	digest := sha512.Sum512(encoding.Concatenate(seed, info, []byte(akeDeriveKeyPairDST)))
	sk = make([]byte, curve25519.ScalarSize)
	copy(sk, digest[:curve25519.ScalarSize])
	sk[0] &= 248
	sk[31] &= 127
	sk[31] |= 64

	pub, err := curve25519.X25519(sk, curve25519.Basepoint)
	if err != nil {
		panic("ake: X25519 base-point multiplication cannot fail for a clamped scalar")
	}

	return sk, pub
}
