// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package opaque

// ExportKeySize is the fixed width of an ExportKey, independent of the
// suite's transcript hash width: deriveExportKey always HKDF-Expands the
// randomized password directly to ExportKeySize bytes, so the output is
// never padded — HKDF-Expand produces exactly as many bytes as requested
// regardless of the underlying hash's native size.
const ExportKeySize = 64

// ExportKey is a 64-byte client-only secret derived during both registration
// and login, stable across sessions for the same password and server
// credential. It is suitable for encrypting client data held by the server.
// Go has no destructors; callers must call Wipe before releasing an
// ExportKey, per spec.md §9.
type ExportKey struct {
	bytes [ExportKeySize]byte
}

func newExportKey(raw []byte) ExportKey {
	var k ExportKey

	copy(k.bytes[:], raw)

	return k
}

// Bytes returns a copy of the export key's 64 bytes.
func (k ExportKey) Bytes() []byte {
	out := make([]byte, ExportKeySize)
	copy(out, k.bytes[:])

	return out
}

// Equal performs a constant-time-irrelevant comparison suitable for tests;
// it is not used on any credential-verification path.
func (k ExportKey) Equal(other ExportKey) bool {
	return k.bytes == other.bytes
}

// Wipe zeroes the export key's bytes in place.
func (k *ExportKey) Wipe() {
	for i := range k.bytes {
		k.bytes[i] = 0
	}
}
