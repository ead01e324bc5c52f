// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package opaque

import (
	"fmt"

	"github.com/bytemare/crypto"

	"github.com/nyxcrypto/opaque/internal"
	"github.com/nyxcrypto/opaque/internal/envelope"
	"github.com/nyxcrypto/opaque/message"
)

// ClientRegistration is the one-shot client-side registration state: created
// by Register, consumed by Finish.
type ClientRegistration struct {
	clientConfig *ClientConfig
	suite        *internal.Suite
	password     []byte
	blind        *crypto.Scalar
	done         bool
}

// Register draws OPRF randomness for password and emits a RegistrationRequest.
func Register(clientConfig *ClientConfig, password []byte) (*ClientRegistration, *RegistrationRequest, error) {
	suite, err := clientConfig.config.resolve()
	if err != nil {
		return nil, nil, err
	}

	blind, blinded := suite.OPRF.Blind(password)

	state := &ClientRegistration{
		clientConfig: clientConfig,
		suite:        suite,
		password:     password,
		blind:        blind,
	}

	req := &RegistrationRequest{
		config:  clientConfig.config,
		payload: &message.RegistrationRequest{BlindedMessage: blinded},
	}

	return state, req, nil
}

// Finish consumes the server's RegistrationResponse, recovering the client's
// long-term key pair and deriving the registration record and export key.
// No identities beyond the server's public key are bound into the
// envelope — spec.md §1 excludes credential-identifier management beyond
// what OPAQUE itself requires, and the public API here never accepts one;
// see DESIGN.md.
func (c *ClientRegistration) Finish(response *RegistrationResponse) (ClientFile, *RegistrationFinalization, ExportKey, error) {
	if c.done {
		return ClientFile{}, nil, ExportKey{}, fmt.Errorf("%w: %w", ErrOpaque, errStateReused)
	}

	c.done = true

	if !response.config.Equal(c.clientConfig.config) {
		return ClientFile{}, nil, ExportKey{}, ErrConfig
	}

	observed := newPublicKey(c.clientConfig.config, response.payload.ServerPublicKey)

	if expected := c.clientConfig.expectedPublicKey; expected != nil && !expected.Equal(observed) {
		return ClientFile{}, nil, ExportKey{}, ErrInvalidServer
	}

	randomizedPwd := randomizedPassword(c.suite, c.password, c.blind, response.payload.EvaluatedMessage)

	envelopeBytes, clientPublicKey := envelope.Store(c.suite, randomizedPwd, response.payload.ServerPublicKey, nil, nil)
	maskingKey := deriveMaskingKey(c.suite, randomizedPwd)
	exportKey := deriveExportKey(c.suite, randomizedPwd)

	record := &message.RegistrationRecord{
		ClientPublicKey: clientPublicKey,
		MaskingKey:      maskingKey,
		Envelope:        envelopeBytes,
	}

	finalization := &RegistrationFinalization{config: c.clientConfig.config, payload: record}
	file := newClientFile(observed)

	return file, finalization, exportKey, nil
}
