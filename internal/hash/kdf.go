// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hash

import "golang.org/x/crypto/hkdf"

// KDF is the HKDF-based key-derivation capability used throughout the 3DH key
// schedule (internal/ake) and the credential-seed expansion (internal/envelope).
type KDF struct {
	family Family
	width  Width
	size   int
}

// NewKDF builds a KDF over the given family and width.
func NewKDF(f Family, w Width) *KDF {
	return &KDF{family: f, width: w, size: size(f, w)}
}

// Extract is the HKDF-Extract step: PRK = HKDF-Extract(salt, ikm).
func (k *KDF) Extract(salt, ikm []byte) []byte {
	return hkdf.Extract(newCtor(k.family, k.width), ikm, salt)
}

// Expand is the HKDF-Expand step, producing length bytes of output keying
// material from secret and info.
func (k *KDF) Expand(secret, info []byte, length int) []byte {
	r := hkdf.Expand(newCtor(k.family, k.width), secret, info)
	out := make([]byte, length)
	_, _ = r.Read(out) // hkdf.Expand's reader never errors short of length limits we never hit.

	return out
}

// Size returns the family's digest size at this width (64 for BLAKE3), the
// length used for expanded keys such as the masking key, the MHF output, and
// the 3DH MAC keys.
func (k *KDF) Size() int {
	return k.size
}
