// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package message defines the wire payloads exchanged during OPAQUE
// registration and login. These types are config-agnostic: they hold
// already-encoded group elements and raw byte fields, and know how to
// serialize themselves given the internal.Suite resolved from a Config. The
// root package wraps each of these in a public, Config-tagged message type
// (RegistrationRequest, RegistrationResponse, ... LoginFinalization) — see
// spec.md §3's "Messages" and §6's wire-format description for why the
// Config tag lives one layer up instead of here.
package message

import (
	"errors"

	"github.com/bytemare/crypto"

	"github.com/nyxcrypto/opaque/internal"
	"github.com/nyxcrypto/opaque/internal/encoding"
)

// ErrInvalidMessageLength is returned when a message's encoded length is
// inconsistent with the suite it is being deserialized under.
var ErrInvalidMessageLength = errors.New("message: invalid message length for this configuration")

func decodeElement(s *internal.Suite, data []byte) (*crypto.Element, []byte, error) {
	n := s.OPRF.Group().ElementLength()
	if len(data) < n {
		return nil, nil, ErrInvalidMessageLength
	}

	e := s.OPRF.Group().NewElement()
	if err := e.Decode(data[:n]); err != nil {
		return nil, nil, ErrInvalidMessageLength
	}

	return e, data[n:], nil
}

// RegistrationRequest is the client's blinded password, sent to start registration.
type RegistrationRequest struct {
	BlindedMessage *crypto.Element
}

// Serialize encodes the request as its blinded element.
func (r *RegistrationRequest) Serialize(_ *internal.Suite) []byte {
	return r.BlindedMessage.Encode()
}

// DeserializeRegistrationRequest decodes a RegistrationRequest under suite s.
func DeserializeRegistrationRequest(s *internal.Suite, data []byte) (*RegistrationRequest, error) {
	e, _, err := decodeElement(s, data)
	if err != nil {
		return nil, err
	}

	return &RegistrationRequest{BlindedMessage: e}, nil
}

// RegistrationResponse is the server's OPRF evaluation plus its AKE public key.
type RegistrationResponse struct {
	EvaluatedMessage *crypto.Element
	ServerPublicKey  []byte
}

// Serialize encodes the response as evaluated element || server public key.
func (r *RegistrationResponse) Serialize(_ *internal.Suite) []byte {
	return encoding.Concatenate(r.EvaluatedMessage.Encode(), r.ServerPublicKey)
}

// DeserializeRegistrationResponse decodes a RegistrationResponse under suite s.
func DeserializeRegistrationResponse(s *internal.Suite, data []byte) (*RegistrationResponse, error) {
	e, rest, err := decodeElement(s, data)
	if err != nil {
		return nil, err
	}

	if len(rest) != s.AKE.PkLen() {
		return nil, ErrInvalidMessageLength
	}

	return &RegistrationResponse{EvaluatedMessage: e, ServerPublicKey: rest}, nil
}

// RegistrationRecord is the client's final registration message: its
// recovered public key, masking key, and envelope. The server stores this
// (alongside the Config and server PublicKey active at the time) as the
// ServerFile.
type RegistrationRecord struct {
	ClientPublicKey []byte
	MaskingKey      []byte
	Envelope        []byte
}

// Serialize encodes the record as client public key || masking key || envelope.
func (r *RegistrationRecord) Serialize(_ *internal.Suite) []byte {
	return encoding.Concatenate(r.ClientPublicKey, r.MaskingKey, r.Envelope)
}

// DeserializeRegistrationRecord decodes a RegistrationRecord under suite s.
func DeserializeRegistrationRecord(s *internal.Suite, data []byte) (*RegistrationRecord, error) {
	pkLen := s.AKE.PkLen()
	mkLen := s.KDF.Size()
	want := pkLen + mkLen + s.EnvelopeSize

	if len(data) != want {
		return nil, ErrInvalidMessageLength
	}

	return &RegistrationRecord{
		ClientPublicKey: data[:pkLen],
		MaskingKey:      data[pkLen : pkLen+mkLen],
		Envelope:        data[pkLen+mkLen:],
	}, nil
}

// CredentialRequest is the client's blinded password, sent to start login.
type CredentialRequest struct {
	BlindedMessage *crypto.Element
}

// Serialize encodes the request as its blinded element.
func (r *CredentialRequest) Serialize(_ *internal.Suite) []byte {
	return r.BlindedMessage.Encode()
}

// DeserializeCredentialRequest decodes a CredentialRequest under suite s.
func DeserializeCredentialRequest(s *internal.Suite, data []byte) (*CredentialRequest, error) {
	e, _, err := decodeElement(s, data)
	if err != nil {
		return nil, err
	}

	return &CredentialRequest{BlindedMessage: e}, nil
}

// CredentialResponse is the server's masked credential response during login.
type CredentialResponse struct {
	EvaluatedMessage *crypto.Element
	MaskingNonce     []byte
	MaskedResponse   []byte
}

// NewCredentialResponse builds a CredentialResponse from its parts.
func NewCredentialResponse(evaluated *crypto.Element, maskingNonce, maskedResponse []byte) *CredentialResponse {
	return &CredentialResponse{
		EvaluatedMessage: evaluated,
		MaskingNonce:     maskingNonce,
		MaskedResponse:   maskedResponse,
	}
}

// Serialize encodes the response as evaluated element || masking nonce || masked response.
func (r *CredentialResponse) Serialize(_ *internal.Suite) []byte {
	return encoding.Concatenate(r.EvaluatedMessage.Encode(), r.MaskingNonce, r.MaskedResponse)
}

// DeserializeCredentialResponse decodes a CredentialResponse under suite s.
func DeserializeCredentialResponse(s *internal.Suite, data []byte) (*CredentialResponse, error) {
	e, rest, err := decodeElement(s, data)
	if err != nil {
		return nil, err
	}

	if len(rest) < s.NonceLen {
		return nil, ErrInvalidMessageLength
	}

	maskedLen := s.AKE.PkLen() + s.EnvelopeSize
	if len(rest) != s.NonceLen+maskedLen {
		return nil, ErrInvalidMessageLength
	}

	return &CredentialResponse{
		EvaluatedMessage: e,
		MaskingNonce:     rest[:s.NonceLen],
		MaskedResponse:   rest[s.NonceLen:],
	}, nil
}

// KE1 is the client's login request: its credential request plus an
// ephemeral AKE public key and nonce for the 3DH handshake.
type KE1 struct {
	CredentialRequest    *CredentialRequest
	ClientNonce          []byte
	ClientPublicKeyshare []byte
}

// Serialize encodes KE1 as credential request || client nonce || client ephemeral public key.
func (k *KE1) Serialize(s *internal.Suite) []byte {
	return encoding.Concatenate(k.CredentialRequest.Serialize(s), k.ClientNonce, k.ClientPublicKeyshare)
}

// DeserializeKE1 decodes a KE1 under suite s.
func DeserializeKE1(s *internal.Suite, data []byte) (*KE1, error) {
	elemLen := s.OPRF.Group().ElementLength()
	pkLen := s.AKE.PkLen()

	if len(data) != elemLen+s.NonceLen+pkLen {
		return nil, ErrInvalidMessageLength
	}

	cr, err := DeserializeCredentialRequest(s, data[:elemLen])
	if err != nil {
		return nil, err
	}

	return &KE1{
		CredentialRequest:    cr,
		ClientNonce:          data[elemLen : elemLen+s.NonceLen],
		ClientPublicKeyshare: data[elemLen+s.NonceLen:],
	}, nil
}

// KE2 is the server's login response: its credential response plus an
// ephemeral AKE public key, nonce, and server MAC for the 3DH handshake.
type KE2 struct {
	CredentialResponse   *CredentialResponse
	ServerNonce          []byte
	ServerPublicKeyshare []byte
	ServerMac            []byte
}

// Serialize encodes KE2 as credential response || server nonce || server ephemeral public key || server MAC.
func (k *KE2) Serialize(s *internal.Suite) []byte {
	return encoding.Concatenate(
		k.CredentialResponse.Serialize(s),
		k.ServerNonce,
		k.ServerPublicKeyshare,
		k.ServerMac,
	)
}

// DeserializeKE2 decodes a KE2 under suite s.
func DeserializeKE2(s *internal.Suite, data []byte) (*KE2, error) {
	elemLen := s.OPRF.Group().ElementLength()
	credLen := elemLen + s.NonceLen + s.AKE.PkLen() + s.EnvelopeSize
	pkLen := s.AKE.PkLen()
	macLen := s.MAC.Size()

	want := credLen + s.NonceLen + pkLen + macLen
	if len(data) != want {
		return nil, ErrInvalidMessageLength
	}

	cr, err := DeserializeCredentialResponse(s, data[:credLen])
	if err != nil {
		return nil, err
	}

	rest := data[credLen:]

	return &KE2{
		CredentialResponse:   cr,
		ServerNonce:          rest[:s.NonceLen],
		ServerPublicKeyshare: rest[s.NonceLen : s.NonceLen+pkLen],
		ServerMac:            rest[s.NonceLen+pkLen:],
	}, nil
}

// KE3 is the client's final login message: the authentication tag proving it derived the same session keys.
type KE3 struct {
	ClientMac []byte
}

// Serialize encodes KE3 as the client MAC.
func (k *KE3) Serialize(_ *internal.Suite) []byte {
	return k.ClientMac
}

// DeserializeKE3 decodes a KE3 under suite s.
func DeserializeKE3(s *internal.Suite, data []byte) (*KE3, error) {
	if len(data) != s.MAC.Size() {
		return nil, ErrInvalidMessageLength
	}

	return &KE3{ClientMac: data}, nil
}
