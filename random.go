// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package opaque

import "github.com/nyxcrypto/opaque/internal"

// RandomBytes returns n bytes read from a CSPRNG, for callers that need
// auxiliary randomness (e.g. generating a credential identifier) outside the
// protocol's own internal sampling.
func RandomBytes(n int) []byte {
	return internal.RandomBytes(n)
}
