// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hash

import (
	"crypto/hmac"
)

// MAC is the HMAC-based transcript-authentication capability used by the 3DH
// handshake to produce and verify the server and client MACs.
type MAC struct {
	family Family
	width  Width
	size   int
}

// NewMAC builds a MAC over the given family and width.
func NewMAC(f Family, w Width) *MAC {
	return &MAC{family: f, width: w, size: hmac.New(newCtor(f, w), nil).Size()}
}

// MAC computes HMAC(key, data) using the resolved hash family.
func (m *MAC) MAC(key, data []byte) []byte {
	h := hmac.New(newCtor(m.family, m.width), key)
	h.Write(data)

	return h.Sum(nil)
}

// Equal performs a constant-time comparison of two MAC tags, as required by
// the protocol's constant-time credential-checking discipline.
func (m *MAC) Equal(a, b []byte) bool {
	return hmac.Equal(a, b)
}

// Size returns the MAC's output size in bytes: the underlying hash's Sum
// length, which is 32 for BLAKE3 (HMAC runs over BLAKE3's standard output,
// not the 64-byte XOF read that Hash.Sum uses).
func (m *MAC) Size() int {
	return m.size
}
