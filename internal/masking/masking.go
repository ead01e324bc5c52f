// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package masking hides the server's credential response (its public key and
// the client's envelope) behind a KDF-derived one-time pad keyed by the
// per-credential masking key, so an eavesdropper without that key cannot
// distinguish a real response from the simulated one returned for an
// unregistered account.
package masking

import (
	"github.com/nyxcrypto/opaque/internal"
	"github.com/nyxcrypto/opaque/internal/encoding"
)

const padLabel = "CredentialResponsePad"

// Mask produces the masking nonce and the masked (serverPublicKey ||
// envelope) payload. If nonce is empty, a fresh random one is drawn.
func Mask(s *internal.Suite, nonce, maskingKey, serverPublicKey, envelope []byte) (maskingNonce, maskedResponse []byte) {
	if len(nonce) == 0 {
		nonce = internal.RandomBytes(internal.NonceLength)
	}

	cleartext := encoding.Concatenate(serverPublicKey, envelope)
	pad := s.KDF.Expand(maskingKey, encoding.SuffixString(nonce, padLabel), len(cleartext))

	return nonce, xor(cleartext, pad)
}

// Unmask reverses Mask given the same maskingKey and the nonce that
// accompanied the masked response.
func Unmask(s *internal.Suite, nonce, maskingKey, maskedResponse []byte) (serverPublicKey, envelope []byte) {
	pad := s.KDF.Expand(maskingKey, encoding.SuffixString(nonce, padLabel), len(maskedResponse))
	cleartext := xor(maskedResponse, pad)
	pkLen := s.AKE.PkLen()

	return cleartext[:pkLen], cleartext[pkLen:]
}

func xor(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}

	return out
}
