// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package opaque

// Ake selects which authenticated-key-exchange group the 3DH handshake runs over.
type Ake byte

const (
	// AkeRistretto255 runs 3DH over the Ristretto255 prime-order group.
	AkeRistretto255 Ake = iota
	// AkeX25519 runs 3DH over raw X25519 Diffie-Hellman.
	AkeX25519
	// AkeP256 runs 3DH over the NIST P-256 prime-order group.
	AkeP256
)

// String renders the AKE selector for logs and error messages.
func (a Ake) String() string {
	switch a {
	case AkeRistretto255:
		return "Ristretto255"
	case AkeX25519:
		return "X25519"
	case AkeP256:
		return "P256"
	default:
		return "unknown AKE group"
	}
}

// Group selects which prime-order group backs the OPRF.
type Group byte

const (
	// GroupRistretto255 selects the Ristretto255 group.
	GroupRistretto255 Group = iota
	// GroupP256 selects the NIST P-256 group.
	GroupP256
)

// String renders the OPRF group selector for logs and error messages.
func (g Group) String() string {
	if g == GroupP256 {
		return "P256"
	}

	return "Ristretto255"
}

// Hash selects the hash family backing the transcript hash, KDF, and MAC.
type Hash byte

const (
	// HashSha2 selects SHA-256 or SHA-512, sized by the OPRF group's width.
	HashSha2 Hash = iota
	// HashSha3 selects SHA3-256 or SHA3-512, sized by the OPRF group's width.
	HashSha3
	// HashBlake3 selects BLAKE3: a 64-byte XOF output for the transcript hash,
	// regardless of group width; the MAC and KDF use BLAKE3's 32-byte output.
	HashBlake3
)

// String renders the hash selector for logs and error messages.
func (h Hash) String() string {
	switch h {
	case HashSha3:
		return "SHA-3"
	case HashBlake3:
		return "BLAKE3"
	default:
		return "SHA-2"
	}
}
