// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package opaque

// ClientConfig pairs a Config with the client's optional expectation of the
// server's public key, used to detect impostor servers during registration
// and login.
type ClientConfig struct {
	config            Config
	expectedPublicKey *PublicKey
}

// NewClientConfig validates that, if provided, expectedPublicKey was
// produced under config, then returns a ClientConfig.
func NewClientConfig(config Config, expectedPublicKey *PublicKey) (*ClientConfig, error) {
	if expectedPublicKey != nil && !expectedPublicKey.config.Equal(config) {
		return nil, ErrConfig
	}

	return &ClientConfig{config: config, expectedPublicKey: expectedPublicKey}, nil
}

// Config returns the cipher suite this ClientConfig runs under.
func (c *ClientConfig) Config() Config {
	return c.config
}

// ExpectedPublicKey returns the server public key this client expects, if any.
func (c *ClientConfig) ExpectedPublicKey() *PublicKey {
	return c.expectedPublicKey
}
