// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ake

import (
	"errors"

	"github.com/nyxcrypto/opaque/internal"
	"github.com/nyxcrypto/opaque/internal/encoding"
	"github.com/nyxcrypto/opaque/message"
)

// ErrInvalidClientMac is returned when the client's KE3 authentication tag
// does not match the one the server derived from the 3DH secret.
var ErrInvalidClientMac = errors.New("ake: invalid client mac")

// ErrStateNotEmpty is returned by UnmarshalState when the Server already holds session state.
var ErrStateNotEmpty = errors.New("ake: server state already set")

// Server holds the server's ephemeral AKE state between producing KE2 and consuming KE3.
type Server struct {
	ephemeralSecretKey []byte
	ephemeralPublicKey []byte
	nonce              []byte
	expectedClientMac  []byte
	sessionSecret      []byte
}

// NewServer returns a new, empty 3DH server.
func NewServer() *Server {
	return &Server{}
}

// Response produces KE2 in answer to ke1, given the server's static AKE key
// pair, the client's static public key recovered from the registration
// record (or a fake one, in the simulated-login branch), and the identities
// bound into the transcript.
func (srv *Server) Response(
	s *internal.Suite,
	clientIdentity, serverIdentity []byte,
	serverStaticSecretKey, serverStaticPublicKey []byte,
	clientStaticPublicKey []byte,
	ke1 *message.KE1,
	response *message.CredentialResponse,
) (*message.KE2, error) {
	srv.ephemeralSecretKey, srv.ephemeralPublicKey = s.AKE.KeyGen()
	srv.nonce = internal.RandomBytes(s.NonceLen)

	ke2 := &message.KE2{
		CredentialResponse:   response,
		ServerNonce:          srv.nonce,
		ServerPublicKeyshare: srv.ephemeralPublicKey,
	}

	ikm, err := k3dh(s.AKE,
		srv.ephemeralSecretKey, ke1.ClientPublicKeyshare,
		serverStaticSecretKey, ke1.ClientPublicKeyshare,
		srv.ephemeralSecretKey, clientStaticPublicKey,
	)
	if err != nil {
		return nil, err
	}

	sessionSecret, serverMac, clientMac := core3DH(s, clientIdentity, serverIdentity, ikm, ke1, ke2)
	ke2.ServerMac = serverMac
	srv.sessionSecret = sessionSecret
	srv.expectedClientMac = clientMac

	_ = serverStaticPublicKey // bound into the transcript via CredentialResponse, not the 3DH triple directly.

	return ke2, nil
}

// Finalize verifies the client's KE3 authentication tag.
func (srv *Server) Finalize(s *internal.Suite, ke3 *message.KE3) error {
	if !s.MAC.Equal(srv.expectedClientMac, ke3.ClientMac) {
		return ErrInvalidClientMac
	}

	return nil
}

// SessionKey returns the session secret established by a successful Response/Finalize pair.
func (srv *Server) SessionKey() []byte {
	return srv.sessionSecret
}

// MarshalState serializes the server's post-Response session state, so a
// ServerLogin can be resumed after the process holding it restarts. Not part
// of the six public message types; an addition carried over from the
// teacher's SerializeState/SetAKEState, per SPEC_FULL.md §5.
func (srv *Server) MarshalState() []byte {
	return encoding.Concatenate(
		encoding.EncodeVector(srv.expectedClientMac),
		encoding.EncodeVector(srv.sessionSecret),
	)
}

// UnmarshalState restores server state previously produced by MarshalState.
func (srv *Server) UnmarshalState(data []byte) error {
	if len(srv.expectedClientMac) != 0 || len(srv.sessionSecret) != 0 {
		return ErrStateNotEmpty
	}

	mac, rest, err := encoding.DecodeVector(data)
	if err != nil {
		return err
	}

	secret, _, err := encoding.DecodeVector(rest)
	if err != nil {
		return err
	}

	srv.expectedClientMac = mac
	srv.sessionSecret = secret

	return nil
}
