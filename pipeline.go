// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package opaque

import (
	"github.com/bytemare/crypto"

	"github.com/nyxcrypto/opaque/internal"
	"github.com/nyxcrypto/opaque/internal/encoding"
	"github.com/nyxcrypto/opaque/internal/tag"
)

// randomizedPassword runs the OPRF-finalize step and feeds its output through
// the configured MHF, then extracts a uniform secret the rest of the
// protocol derives keys from. Shared by registration and login since both
// sides of the client run the identical OPRF-to-randomized-password pipeline
// (spec.md §4.5).
func randomizedPassword(suite *internal.Suite, password []byte, blind *crypto.Scalar, evaluated *crypto.Element) []byte {
	oprfOutput := suite.OPRF.Finalize(password, blind, evaluated)
	stretched := suite.Mhf.Stretch(oprfOutput, suite.KDF.Size())

	return suite.KDF.Extract(nil, encoding.Concatenate(oprfOutput, stretched))
}

func deriveMaskingKey(suite *internal.Suite, randomizedPwd []byte) []byte {
	return suite.KDF.Expand(randomizedPwd, []byte(tag.MaskingKey), suite.KDF.Size())
}

func deriveExportKey(suite *internal.Suite, randomizedPwd []byte) ExportKey {
	return newExportKey(suite.KDF.Expand(randomizedPwd, []byte(tag.ExportKey), ExportKeySize))
}
