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
	"github.com/nyxcrypto/opaque/internal/mhf"
)

// Parameter ranges taken from the primitives' published limits; centralized
// here so the validation in NewArgon2Params/NewPbkdf2Params stays in one place.
const (
	minArgon2MCost uint32 = 8
	maxArgon2MCost uint32 = 0x0FFFFFFF
	minArgon2TCost uint32 = 1
	minArgon2PCost uint32 = 1
	maxArgon2PCost uint32 = 0x00FFFFFF

	minPbkdf2Rounds uint32 = 1

	// defaultPbkdf2Rounds is the spec's documented default.
	defaultPbkdf2Rounds uint32 = 10000
)

// Argon2Algorithm selects the Argon2 variant.
type Argon2Algorithm byte

const (
	// Argon2ID is the hybrid data-independent/dependent variant.
	Argon2ID Argon2Algorithm = iota
	// Argon2D is the data-dependent variant.
	Argon2D
)

// String renders the algorithm selector, in the teacher's hand-written Debug style.
func (a Argon2Algorithm) String() string {
	if a == Argon2D {
		return "Argon2d"
	}

	return "Argon2id"
}

// Argon2Params is a validated set of Argon2 cost parameters.
type Argon2Params struct {
	Algorithm Argon2Algorithm
	MCost     uint32
	TCost     uint32
	PCost     uint32
}

// NewArgon2Params validates mCost, tCost, and pCost against the published
// Argon2 limits, returning ErrMhfConfig on any out-of-range value.
func NewArgon2Params(algorithm Argon2Algorithm, mCost, tCost, pCost uint32) (Argon2Params, error) {
	if mCost < minArgon2MCost || mCost > maxArgon2MCost {
		return Argon2Params{}, fmt.Errorf("%w: m_cost %d out of range", ErrMhfConfig, mCost)
	}

	if tCost < minArgon2TCost {
		return Argon2Params{}, fmt.Errorf("%w: t_cost %d out of range", ErrMhfConfig, tCost)
	}

	if pCost < minArgon2PCost || pCost > maxArgon2PCost {
		return Argon2Params{}, fmt.Errorf("%w: p_cost %d out of range", ErrMhfConfig, pCost)
	}

	return Argon2Params{Algorithm: algorithm, MCost: mCost, TCost: tCost, PCost: pCost}, nil
}

// DefaultArgon2Params returns golang.org/x/crypto/argon2's own documented
// recommendation for interactive logins: time=1, 64 MiB, 4 threads.
func DefaultArgon2Params() Argon2Params {
	p, err := NewArgon2Params(Argon2ID, 64*1024, 1, 4)
	if err != nil {
		panic("opaque: default argon2 parameters are always in range")
	}

	return p
}

// Pbkdf2Hash selects the HMAC hash PBKDF2 iterates over.
type Pbkdf2Hash byte

const (
	// Pbkdf2Sha256 selects HMAC-SHA256.
	Pbkdf2Sha256 Pbkdf2Hash = iota
	// Pbkdf2Sha512 selects HMAC-SHA512.
	Pbkdf2Sha512
)

// String renders the PBKDF2 hash selector, in the teacher's hand-written Debug style.
func (h Pbkdf2Hash) String() string {
	if h == Pbkdf2Sha512 {
		return "SHA512"
	}

	return "SHA256"
}

// Pbkdf2Params is a validated set of PBKDF2 cost parameters.
type Pbkdf2Params struct {
	Hash   Pbkdf2Hash
	Rounds uint32
}

// NewPbkdf2Params validates rounds, returning ErrMhfConfig if it is zero.
func NewPbkdf2Params(hsh Pbkdf2Hash, rounds uint32) (Pbkdf2Params, error) {
	if rounds < minPbkdf2Rounds {
		return Pbkdf2Params{}, fmt.Errorf("%w: rounds %d out of range", ErrMhfConfig, rounds)
	}

	return Pbkdf2Params{Hash: hsh, Rounds: rounds}, nil
}

// DefaultPbkdf2Params returns the spec's documented default: HMAC-SHA256 at 10,000 rounds.
func DefaultPbkdf2Params() Pbkdf2Params {
	p, err := NewPbkdf2Params(Pbkdf2Sha256, defaultPbkdf2Rounds)
	if err != nil {
		panic("opaque: default pbkdf2 parameters are always in range")
	}

	return p
}

type mhfFamily byte

const (
	mhfArgon2 mhfFamily = iota
	mhfPbkdf2
)

// Mhf is a validated memory-hard-function selection: either Argon2 or PBKDF2
// parameters, carried as part of a Config.
type Mhf struct {
	family mhfFamily
	argon2 Argon2Params
	pbkdf2 Pbkdf2Params
}

// NewArgon2Mhf wraps validated Argon2 parameters as an Mhf selection.
func NewArgon2Mhf(p Argon2Params) Mhf {
	return Mhf{family: mhfArgon2, argon2: p}
}

// NewPbkdf2Mhf wraps validated PBKDF2 parameters as an Mhf selection.
func NewPbkdf2Mhf(p Pbkdf2Params) Mhf {
	return Mhf{family: mhfPbkdf2, pbkdf2: p}
}

// String renders the Mhf selection, in the teacher's hand-written Debug style.
func (m Mhf) String() string {
	if m.family == mhfPbkdf2 {
		return fmt.Sprintf("PBKDF2(%s, %d rounds)", m.pbkdf2.Hash, m.pbkdf2.Rounds)
	}

	return fmt.Sprintf("%s(m=%d, t=%d, p=%d)", m.argon2.Algorithm, m.argon2.MCost, m.argon2.TCost, m.argon2.PCost)
}

// resolve maps the selection onto the internal MHF capability.
func (m Mhf) resolve() mhf.Mhf {
	if m.family == mhfPbkdf2 {
		h := mhf.Pbkdf2Sha256
		if m.pbkdf2.Hash == Pbkdf2Sha512 {
			h = mhf.Pbkdf2Sha512
		}

		return mhf.Pbkdf2{Hash: h, Rounds: m.pbkdf2.Rounds}
	}

	v := mhf.Argon2ID
	if m.argon2.Algorithm == Argon2D {
		v = mhf.Argon2D
	}

	pCost := m.argon2.PCost
	if pCost > 255 {
		// golang.org/x/crypto/argon2 takes a uint8 thread count; see internal/mhf.Argon2's doc.
		pCost = 255
	}

	return mhf.Argon2{Variant: v, MCost: m.argon2.MCost, TCost: m.argon2.TCost, PCost: uint8(pCost)}
}

func (m Mhf) serialize() []byte {
	if m.family == mhfPbkdf2 {
		return encoding.Concatenate(
			[]byte{byte(mhfPbkdf2), byte(m.pbkdf2.Hash)},
			encoding.Uint32(m.pbkdf2.Rounds),
		)
	}

	return encoding.Concatenate(
		[]byte{byte(mhfArgon2), byte(m.argon2.Algorithm)},
		encoding.Uint32(m.argon2.MCost),
		encoding.Uint32(m.argon2.TCost),
		encoding.Uint32(m.argon2.PCost),
	)
}

func deserializeMhf(data []byte) (Mhf, []byte, error) {
	if len(data) < 2 {
		return Mhf{}, nil, fmt.Errorf("%w: truncated mhf encoding", ErrConfig)
	}

	family := mhfFamily(data[0])

	switch family {
	case mhfPbkdf2:
		if len(data) < 6 {
			return Mhf{}, nil, fmt.Errorf("%w: truncated pbkdf2 parameters", ErrConfig)
		}

		p, err := NewPbkdf2Params(Pbkdf2Hash(data[1]), encoding.DecodeUint32(data[2:6]))
		if err != nil {
			return Mhf{}, nil, err
		}

		return NewPbkdf2Mhf(p), data[6:], nil
	default:
		if len(data) < 14 {
			return Mhf{}, nil, fmt.Errorf("%w: truncated argon2 parameters", ErrConfig)
		}

		p, err := NewArgon2Params(
			Argon2Algorithm(data[1]),
			encoding.DecodeUint32(data[2:6]),
			encoding.DecodeUint32(data[6:10]),
			encoding.DecodeUint32(data[10:14]),
		)
		if err != nil {
			return Mhf{}, nil, err
		}

		return NewArgon2Mhf(p), data[14:], nil
	}
}
