// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package hash adapts the SHA-2, SHA-3, and BLAKE3 hash families behind one
// capability set (incremental Write/Sum, fixed output size, HMAC, HKDF),
// matching the uniform primitives-adapter shape the protocol engine expects
// regardless of which family a Config selects.
package hash

import (
	stdcrypto "crypto"
	stdhash "hash"

	crypto256 "crypto/sha256"
	crypto512 "crypto/sha512"

	bmhash "github.com/bytemare/hash"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// Family identifies a hash family independent of digest width.
type Family byte

const (
	// Sha2 selects SHA-256 or SHA-512 depending on Width.
	Sha2 Family = iota
	// Sha3 selects SHA3-256 or SHA3-512 depending on Width.
	Sha3
	// Blake3 produces a 64-byte Hash.Sum digest via its XOF, regardless of
	// Width; HMAC and HKDF run over BLAKE3's standard 32-byte output.
	Blake3
)

// String renders the family the way original_source's hand-written Debug impl does.
func (f Family) String() string {
	switch f {
	case Sha2:
		return "SHA-2"
	case Sha3:
		return "SHA-3"
	case Blake3:
		return "BLAKE3"
	default:
		return "unknown hash family"
	}
}

// Width picks the digest-size tier to pair with a Family. The root package
// chooses it from the OPRF group alone: Ristretto255 uses the 512-bit-class
// member, P-256 the 256-bit-class member.
type Width byte

const (
	// Narrow selects the 256-bit-class member of the family.
	Narrow Width = iota
	// Wide selects the 512-bit-class member of the family.
	Wide
)

func stdlibID(f Family, w Width) stdcrypto.Hash {
	switch {
	case f == Sha2 && w == Narrow:
		return stdcrypto.SHA256
	case f == Sha2 && w == Wide:
		return stdcrypto.SHA512
	case f == Sha3 && w == Narrow:
		return stdcrypto.SHA3_256
	case f == Sha3 && w == Wide:
		return stdcrypto.SHA3_512
	default:
		return 0
	}
}

// Available reports whether the given (family, width) pair is usable in this
// build, mirroring the teacher's Configuration.verify() availability checks.
func Available(f Family, w Width) bool {
	if f == Blake3 {
		return true
	}

	id := stdlibID(f, w)

	return id != 0 && bmhash.Hash(id).Available()
}

func newCtor(f Family, w Width) func() stdhash.Hash {
	switch {
	case f == Blake3:
		return func() stdhash.Hash { return blake3.New() }
	case f == Sha3 && w == Wide:
		return sha3.New512
	case f == Sha3 && w == Narrow:
		return sha3.New256
	case f == Sha2 && w == Wide:
		return crypto512.New
	default:
		return crypto256.New
	}
}

func size(f Family, w Width) int {
	if f == Blake3 {
		return 64
	}

	if w == Wide {
		return 64
	}

	return 32
}

// Hash is an incremental hasher sized per the resolved (family, width) pair.
type Hash struct {
	family Family
	width  Width
	h      stdhash.Hash
	b3     *blake3.Hasher
	size   int
}

// New builds a Hash for the given family and width.
func New(f Family, w Width) *Hash {
	hh := &Hash{family: f, width: w, size: size(f, w)}
	if f == Blake3 {
		hh.b3 = blake3.New()
		return hh
	}

	hh.h = newCtor(f, w)()

	return hh
}

// Write adds more data to the running hash.
func (hh *Hash) Write(p []byte) {
	if hh.b3 != nil {
		_, _ = hh.b3.Write(p)
		return
	}

	hh.h.Write(p)
}

// Sum returns the hash's output so far. For BLAKE3 this reads 64 bytes out of
// its XOF, per the adapter's requirement that BLAKE3 produce a fixed 64-byte
// digest regardless of group width.
func (hh *Hash) Sum() []byte {
	if hh.b3 != nil {
		out := make([]byte, 64)
		_, _ = hh.b3.Digest().Read(out)

		return out
	}

	return hh.h.Sum(nil)
}

// Size returns the digest size in bytes.
func (hh *Hash) Size() int {
	return hh.size
}

// BlockSize returns the underlying hash's block size, needed for HMAC.
func (hh *Hash) BlockSize() int {
	if hh.b3 != nil {
		return 64
	}

	return hh.h.BlockSize()
}

// Reset clears the running hash state for reuse.
func (hh *Hash) Reset() {
	if hh.b3 != nil {
		hh.b3.Reset()
		return
	}

	hh.h.Reset()
}
