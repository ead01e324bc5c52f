// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package mhf adapts Argon2 and PBKDF2 behind the single capability the
// protocol engine needs: stretch an OPRF output to a target length, using an
// empty salt, because OPAQUE's own per-credential randomness is already
// mixed in upstream of the MHF.
package mhf

import (
	"crypto/sha256"
	"crypto/sha512"
	stdhash "hash"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// Mhf stretches input to outputLen bytes.
type Mhf interface {
	Stretch(input []byte, outputLen int) []byte
}

// Argon2Variant selects between Argon2id and Argon2d.
type Argon2Variant byte

const (
	// Argon2ID is the hybrid data-independent/dependent variant, and the library default.
	Argon2ID Argon2Variant = iota
	// Argon2D is the data-dependent variant.
	//
	// golang.org/x/crypto/argon2 exposes only Argon2i (Key) and Argon2id
	// (IDKey), not Argon2d. Argon2D is served by Argon2i here — the other
	// non-id variant the library provides — rather than failing the
	// selector outright; see DESIGN.md.
	Argon2D
)

// Argon2 is a fully-parameterized Argon2 MHF instance.
//
// PCost is capped to a uint8 here because golang.org/x/crypto/argon2's Key
// and IDKey take a uint8 thread count; the public Argon2Params type still
// validates the full spec range (up to 0x00FFFFFF) at construction, so
// values above 255 are accepted by the Config layer and silently capped at
// invocation time rather than rejected — see DESIGN.md.
type Argon2 struct {
	Variant Argon2Variant
	MCost   uint32
	TCost   uint32
	PCost   uint8
}

// Stretch runs Argon2 over input with an empty salt and returns outputLen bytes.
func (a Argon2) Stretch(input []byte, outputLen int) []byte {
	salt := []byte{}

	if a.Variant == Argon2D {
		return argon2.Key(input, salt, a.TCost, a.MCost, a.PCost, uint32(outputLen)) //nolint:gosec // width is protocol-bounded.
	}

	return argon2.IDKey(input, salt, a.TCost, a.MCost, a.PCost, uint32(outputLen)) //nolint:gosec // width is protocol-bounded.
}

// Pbkdf2HashID selects the HMAC hash PBKDF2 iterates over.
type Pbkdf2HashID byte

const (
	// Pbkdf2Sha256 selects HMAC-SHA256, and the library default.
	Pbkdf2Sha256 Pbkdf2HashID = iota
	// Pbkdf2Sha512 selects HMAC-SHA512.
	Pbkdf2Sha512
)

// Pbkdf2 is a fully-parameterized PBKDF2 MHF instance.
type Pbkdf2 struct {
	Hash   Pbkdf2HashID
	Rounds uint32
}

// Stretch runs PBKDF2 over input with an empty salt and returns outputLen bytes.
func (p Pbkdf2) Stretch(input []byte, outputLen int) []byte {
	var ctor func() stdhash.Hash
	if p.Hash == Pbkdf2Sha512 {
		ctor = sha512.New
	} else {
		ctor = sha256.New
	}

	return pbkdf2.Key(input, nil, int(p.Rounds), outputLen, ctor) //nolint:gosec // rounds is protocol-bounded.
}
