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
	"github.com/nyxcrypto/opaque/internal/tag"
)

// ServerConfig binds a Config to a server's long-term AKE key pair and OPRF
// seed, sampled once from a CSPRNG at construction. Losing it makes every
// ServerFile created under it unusable. It is read-only after construction
// and safe to share by reference across concurrent ServerLogin/
// ServerRegistration calls.
//
// Credential-identifier management beyond what OPAQUE itself requires is a
// Non-goal (spec.md §1); the OPRF key derived here is a single per-server
// key shared by every account rather than one derived per credential
// identifier — see DESIGN.md.
type ServerConfig struct {
	config        Config
	suite         *internal.Suite
	privateKey    []byte
	rawPublicKey  []byte
	publicKey     PublicKey
	oprfSeed      []byte
	oprfKey       *crypto.Scalar
}

// NewServerConfig samples a fresh AKE key pair and OPRF seed under config.
func NewServerConfig(config Config) (*ServerConfig, error) {
	suite, err := config.resolve()
	if err != nil {
		return nil, err
	}

	sk, pk := suite.AKE.KeyGen()
	seed := internal.RandomBytes(internal.SeedLength)
	oprfKey := suite.OPRF.DeriveKey(seed, []byte(tag.DeriveKeyPair))

	return &ServerConfig{
		config:       config,
		suite:        suite,
		privateKey:   sk,
		rawPublicKey: pk,
		publicKey:    newPublicKey(config, pk),
		oprfSeed:     seed,
		oprfKey:      oprfKey,
	}, nil
}

// Config returns the cipher suite this ServerConfig runs under.
func (sc *ServerConfig) Config() Config {
	return sc.config
}

// PublicKey returns the server's long-term AKE public key.
func (sc *ServerConfig) PublicKey() PublicKey {
	return sc.publicKey
}
