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
	"github.com/nyxcrypto/opaque/internal/ake"
	"github.com/nyxcrypto/opaque/internal/envelope"
	"github.com/nyxcrypto/opaque/internal/masking"
	"github.com/nyxcrypto/opaque/message"
)

// ClientLogin is the one-shot client-side login state: created by Login, consumed by Finish.
type ClientLogin struct {
	clientConfig      *ClientConfig
	suite             *internal.Suite
	password          []byte
	blind             *crypto.Scalar
	ake               *ake.Client
	ke1               *message.KE1
	expectedPublicKey *PublicKey
	done              bool
}

// Login merges the expectation carried by clientConfig and file (if
// present), draws OPRF and AKE randomness, and emits a LoginRequest.
//
// file may be nil — a client attempting its first login under a pinned
// server expectation without a prior ClientFile, or a client that has
// deliberately chosen not to pin one.
func Login(clientConfig *ClientConfig, file *ClientFile, password []byte) (*ClientLogin, *LoginRequest, error) {
	var effective *PublicKey

	if file != nil {
		if !file.Config().Equal(clientConfig.config) {
			return nil, nil, ErrConfig
		}

		filePK := file.ServerPublicKey()

		if clientConfig.expectedPublicKey != nil && !clientConfig.expectedPublicKey.Equal(filePK) {
			return nil, nil, ErrConfigPublicKey
		}

		effective = &filePK
	} else {
		effective = clientConfig.expectedPublicKey
	}

	suite, err := clientConfig.config.resolve()
	if err != nil {
		return nil, nil, err
	}

	blind, blinded := suite.OPRF.Blind(password)

	akeClient := ake.NewClient()
	nonce, pubShare := akeClient.Start(suite)

	ke1 := &message.KE1{
		CredentialRequest:    &message.CredentialRequest{BlindedMessage: blinded},
		ClientNonce:          nonce,
		ClientPublicKeyshare: pubShare,
	}

	state := &ClientLogin{
		clientConfig:      clientConfig,
		suite:             suite,
		password:          password,
		blind:             blind,
		ake:               akeClient,
		ke1:               ke1,
		expectedPublicKey: effective,
	}

	req := &LoginRequest{config: clientConfig.config, payload: ke1}

	return state, req, nil
}

// Finish consumes the server's LoginResponse. Any credential-verification
// failure — wrong password, unknown account, tampered ServerFile, or an
// invalid 3DH server MAC — collapses to ErrCredentials, per spec.md §4.4 and
// §9's anti-enumeration discipline.
func (c *ClientLogin) Finish(response *LoginResponse) (ClientFile, *LoginFinalization, ExportKey, error) {
	if c.done {
		return ClientFile{}, nil, ExportKey{}, fmt.Errorf("%w: %w", ErrOpaque, errStateReused)
	}

	c.done = true

	if !response.config.Equal(c.clientConfig.config) {
		return ClientFile{}, nil, ExportKey{}, ErrConfig
	}

	ke2 := response.payload

	randomizedPwd := randomizedPassword(c.suite, c.password, c.blind, ke2.CredentialResponse.EvaluatedMessage)
	maskingKey := deriveMaskingKey(c.suite, randomizedPwd)

	serverPublicKeyBytes, envelopeBytes := masking.Unmask(
		c.suite, ke2.CredentialResponse.MaskingNonce, maskingKey, ke2.CredentialResponse.MaskedResponse,
	)

	clientSK, _, ok := envelope.Recover(c.suite, randomizedPwd, serverPublicKeyBytes, nil, nil, envelopeBytes)
	if !ok {
		return ClientFile{}, nil, ExportKey{}, ErrCredentials
	}

	ke3, err := c.ake.Finalize(c.suite, nil, nil, clientSK, serverPublicKeyBytes, c.ke1, ke2)
	if err != nil {
		return ClientFile{}, nil, ExportKey{}, ErrCredentials
	}

	observed := newPublicKey(c.clientConfig.config, serverPublicKeyBytes)

	if c.expectedPublicKey != nil && !c.expectedPublicKey.Equal(observed) {
		return ClientFile{}, nil, ExportKey{}, ErrInvalidServer
	}

	exportKey := deriveExportKey(c.suite, randomizedPwd)
	finalization := &LoginFinalization{config: c.clientConfig.config, payload: ke3}
	file := newClientFile(observed)

	return file, finalization, exportKey, nil
}
