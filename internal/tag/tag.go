// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package tag holds the protocol label constants mixed into hashes and key
// derivations throughout the OPAQUE registration and login flows.
package tag

const (
	// LabelPrefix is prepended to every HKDF-expand-label used in the 3DH key schedule.
	LabelPrefix = "OPAQUE-"

	// VersionTag identifies the protocol version mixed into the AKE transcript hash.
	VersionTag = "OPAQUEv1-"

	// OPRF is the OPRF context-string tag, per the OPRF draft's DST construction.
	OPRF = "OPRF"

	// DeriveKeyPair labels the server's OPRF key, derived once per ServerConfig from its OPRF seed.
	DeriveKeyPair = "OPAQUE-DeriveKeyPair"

	// ExpandOPRF is the label for a per-credential OPRF seed expansion. The OPRF key here is
	// derived once per ServerConfig, so no code path uses this label.
	ExpandOPRF = "OprfKey"

	// DerivePrivateKey labels the OPRF-style derivation of the client's long-term AKE key pair
	// from the randomized password and envelope nonce.
	DerivePrivateKey = "PrivateKey"

	// ExpandPrivateKey labels the KDF expansion that mixes the envelope nonce into the seed
	// consumed by DerivePrivateKey.
	ExpandPrivateKey = "PrivateKey"

	// Handshake labels the handshake secret derived from the 3DH shared secret.
	Handshake = "HandshakeSecret"

	// SessionKey labels the session secret derived from the 3DH shared secret.
	SessionKey = "SessionKey"

	// MacServer labels the server's transcript MAC key.
	MacServer = "ServerMAC"

	// MacClient labels the client's transcript MAC key.
	MacClient = "ClientMAC"

	// MaskingKey labels the KDF expansion that derives the per-credential key
	// used to mask and unmask the server's credential response during login.
	MaskingKey = "MaskingKey"

	// ExportKey labels the KDF expansion that derives the client-only export
	// key surfaced by both registration and login.
	ExportKey = "ExportKey"
)
