// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ake

import (
	"github.com/nyxcrypto/opaque/internal"
	"github.com/nyxcrypto/opaque/internal/encoding"
	"github.com/nyxcrypto/opaque/internal/hash"
	"github.com/nyxcrypto/opaque/internal/tag"
	"github.com/nyxcrypto/opaque/message"
)

func buildLabel(length int, label, context []byte) []byte {
	return encoding.Concat3(
		encoding.I2OSP(length, 2),
		encoding.EncodeVectorLen(encoding.SuffixString([]byte(tag.LabelPrefix), string(label)), 1),
		encoding.EncodeVectorLen(context, 1),
	)
}

func expand(kdf *hash.KDF, secret, hkdfLabel []byte) []byte {
	return kdf.Expand(secret, hkdfLabel, kdf.Size())
}

func expandLabel(kdf *hash.KDF, secret, label, context []byte) []byte {
	return expand(kdf, secret, buildLabel(kdf.Size(), label, context))
}

func deriveSecret(kdf *hash.KDF, secret, label, context []byte) []byte {
	return expandLabel(kdf, secret, label, context)
}

// macKeys holds the two transcript-MAC keys derived from the 3DH shared secret.
type macKeys struct {
	serverMacKey, clientMacKey []byte
}

func deriveKeys(kdf *hash.KDF, ikm, context []byte) (k *macKeys, sessionSecret []byte) {
	prk := kdf.Extract(nil, ikm)
	handshakeSecret := deriveSecret(kdf, prk, []byte(tag.Handshake), context)
	sessionSecret = deriveSecret(kdf, prk, []byte(tag.SessionKey), context)

	return &macKeys{
		serverMacKey: expandLabel(kdf, handshakeSecret, []byte(tag.MacServer), nil),
		clientMacKey: expandLabel(kdf, handshakeSecret, []byte(tag.MacClient), nil),
	}, sessionSecret
}

// transcriptHash folds the identities and both login messages into the
// running transcript hash that anchors the 3DH handshake.
func transcriptHash(s *internal.Suite, clientIdentity, serverIdentity []byte, ke1 *message.KE1, ke2 *message.KE2) []byte {
	h := s.NewHash()
	h.Write([]byte(tag.VersionTag))
	h.Write(encoding.EncodeVector(s.Context))
	h.Write(encoding.EncodeVector(clientIdentity))
	h.Write(ke1.Serialize(s))
	h.Write(encoding.EncodeVector(serverIdentity))
	h.Write(ke2.CredentialResponse.Serialize(s))
	h.Write(ke2.ServerNonce)
	h.Write(ke2.ServerPublicKeyshare)

	return h.Sum()
}

// k3dh runs the three Diffie-Hellman computations 3DH combines
// (ephemeral-ephemeral, ephemeral-static, static-ephemeral; which is which is
// implicit in the keys the caller passes) and concatenates their outputs,
// which core3DH then extracts and expands into the handshake and session
// secrets.
func k3dh(g internal.AKEGroup, sk1, pk1, sk2, pk2, sk3, pk3 []byte) ([]byte, error) {
	e1, err := g.DH(sk1, pk1)
	if err != nil {
		return nil, err
	}

	e2, err := g.DH(sk2, pk2)
	if err != nil {
		return nil, err
	}

	e3, err := g.DH(sk3, pk3)
	if err != nil {
		return nil, err
	}

	return encoding.Concat3(e1, e2, e3), nil
}

// core3DH derives the session secret and both transcript MACs from the raw
// 3DH shared-secret material and the login transcript.
func core3DH(
	s *internal.Suite,
	clientIdentity, serverIdentity []byte,
	ikm []byte,
	ke1 *message.KE1,
	ke2 *message.KE2,
) (sessionSecret, serverMac, clientMac []byte) {
	th := transcriptHash(s, clientIdentity, serverIdentity, ke1, ke2)

	keys, sessionSecret := deriveKeys(s.KDF, ikm, th)
	serverMac = s.MAC.MAC(keys.serverMacKey, th)

	h2 := s.NewHash()
	h2.Write(th)
	h2.Write(serverMac)
	transcript2 := h2.Sum()

	clientMac = s.MAC.MAC(keys.clientMacKey, transcript2)

	return sessionSecret, serverMac, clientMac
}
