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
	"github.com/nyxcrypto/opaque/message"
)

// ErrInvalidServerMac is returned when the server's authentication tag in KE2
// does not match what the client independently derives from the shared 3DH
// secret — the login transcript has been tampered with, or the client is not
// talking to the server it thinks it is.
var ErrInvalidServerMac = errors.New("ake: invalid server mac")

// Client holds the client's ephemeral AKE state between producing KE1 and consuming KE2.
type Client struct {
	ephemeralSecretKey []byte
	ephemeralPublicKey []byte
	nonce              []byte
	sessionSecret      []byte
}

// NewClient returns a new, empty 3DH client.
func NewClient() *Client {
	return &Client{}
}

// Start generates the client's ephemeral key share and nonce for inclusion in KE1.
func (c *Client) Start(s *internal.Suite) (nonce, publicKeyshare []byte) {
	c.ephemeralSecretKey, c.ephemeralPublicKey = s.AKE.KeyGen()
	c.nonce = internal.RandomBytes(s.NonceLen)

	return c.nonce, c.ephemeralPublicKey
}

// Finalize consumes the server's KE2, verifies its MAC against the 3DH secret
// the client independently derives, and produces KE3. A non-nil error here
// is the AKE-layer signal that folds into the protocol engine's single
// user-visible Credentials outcome — see the login engine for that mapping.
func (c *Client) Finalize(
	s *internal.Suite,
	clientIdentity, serverIdentity []byte,
	clientStaticSecretKey []byte,
	serverStaticPublicKey []byte,
	ke1 *message.KE1,
	ke2 *message.KE2,
) (*message.KE3, error) {
	ikm, err := k3dh(s.AKE,
		c.ephemeralSecretKey, ke2.ServerPublicKeyshare,
		c.ephemeralSecretKey, serverStaticPublicKey,
		clientStaticSecretKey, ke2.ServerPublicKeyshare,
	)
	if err != nil {
		return nil, err
	}

	sessionSecret, serverMac, clientMac := core3DH(s, clientIdentity, serverIdentity, ikm, ke1, ke2)

	if !s.MAC.Equal(serverMac, ke2.ServerMac) {
		return nil, ErrInvalidServerMac
	}

	c.sessionSecret = sessionSecret

	return &message.KE3{ClientMac: clientMac}, nil
}

// SessionKey returns the session secret established by a successful Finalize.
func (c *Client) SessionKey() []byte {
	return c.sessionSecret
}
