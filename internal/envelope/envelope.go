// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package envelope implements the credential envelope: the server-stored,
// client-recoverable record binding a client's long-term AKE key pair to the
// server's public key and the session's identities. It replaces the
// teacher's internal/keyrecovery under the vocabulary spec.md itself uses
// ("Envelope", "RegistrationFinalization").
package envelope

import (
	"github.com/nyxcrypto/opaque/internal"
	"github.com/nyxcrypto/opaque/internal/encoding"
	"github.com/nyxcrypto/opaque/internal/tag"
)

const authKeyLabel = "AuthKey"

// DeriveAuthKeyPair derives the client's long-term AKE key pair from the
// randomized password and the envelope nonce, over the suite's AKE group —
// not the OPRF group, which may be a different selector entirely (an
// AkeX25519 suite pairs with a Ristretto255 or P-256 OPRF group; the two
// groups share no element/scalar encoding). Deterministic, so the same
// password recovers the same key pair on every future login.
func DeriveAuthKeyPair(s *internal.Suite, randomizedPwd, nonce []byte) (sk, pk []byte) {
	seed := s.KDF.Expand(randomizedPwd, encoding.SuffixString(nonce, tag.ExpandPrivateKey), internal.SeedLength)

	return s.AKE.DeriveKeyPair(seed, []byte(tag.DerivePrivateKey))
}

func authTag(s *internal.Suite, randomizedPwd, nonce, serverPublicKey, clientIdentity, serverIdentity []byte) []byte {
	authKey := s.KDF.Expand(randomizedPwd, encoding.SuffixString(nonce, authKeyLabel), s.KDF.Size())
	context := encoding.Concatenate(
		nonce,
		serverPublicKey,
		encoding.EncodeVector(clientIdentity),
		encoding.EncodeVector(serverIdentity),
	)

	return s.MAC.MAC(authKey, context)
}

// Store builds a new envelope during registration: a fresh nonce plus an
// authentication tag binding the nonce to the server's public key and the
// session identities, so any tampering is caught by Recover during login.
// It returns the envelope bytes and the client's derived public key, which
// the caller places in the registration record for the server's 3DH use.
func Store(
	s *internal.Suite,
	randomizedPwd, serverPublicKey, clientIdentity, serverIdentity []byte,
) (envelope []byte, clientPublicKey []byte) {
	nonce := internal.RandomBytes(internal.NonceLength)
	_, pk := DeriveAuthKeyPair(s, randomizedPwd, nonce)
	mac := authTag(s, randomizedPwd, nonce, serverPublicKey, clientIdentity, serverIdentity)

	return encoding.Concatenate(nonce, mac), pk
}

// Recover reopens an envelope during login. It returns ok=false on any
// mismatch (wrong password, wrong server public key, tampered bytes) without
// distinguishing the cause — callers must collapse every false into the
// single Credentials error the protocol's login contract requires.
func Recover(
	s *internal.Suite,
	randomizedPwd, serverPublicKey, clientIdentity, serverIdentity, envelope []byte,
) (sk, pk []byte, ok bool) {
	if len(envelope) != s.EnvelopeSize {
		return nil, nil, false
	}

	nonce := envelope[:internal.NonceLength]
	gotTag := envelope[internal.NonceLength:]
	wantTag := authTag(s, randomizedPwd, nonce, serverPublicKey, clientIdentity, serverIdentity)

	if !s.MAC.Equal(wantTag, gotTag) {
		return nil, nil, false
	}

	sk, pk = DeriveAuthKeyPair(s, randomizedPwd, nonce)

	return sk, pk, true
}
