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

	"github.com/nyxcrypto/opaque/message"
)

// ServerRegistration is the one-shot server-side registration state: created
// by (*ServerConfig).Register, consumed by Finish.
type ServerRegistration struct {
	serverConfig *ServerConfig
	done         bool
}

// Register evaluates the client's blinded password under the server's
// per-server OPRF key and emits a RegistrationResponse carrying the server's
// public key. Fails ErrConfig if request's suite does not match sc's.
func (sc *ServerConfig) Register(request *RegistrationRequest) (*ServerRegistration, *RegistrationResponse, error) {
	if !request.config.Equal(sc.config) {
		return nil, nil, ErrConfig
	}

	evaluated := sc.suite.OPRF.Evaluate(sc.oprfKey, request.payload.BlindedMessage)

	resp := &RegistrationResponse{
		config: sc.config,
		payload: &message.RegistrationResponse{
			EvaluatedMessage: evaluated,
			ServerPublicKey:  sc.rawPublicKey,
		},
	}

	return &ServerRegistration{serverConfig: sc}, resp, nil
}

// Finish consumes the client's RegistrationFinalization, producing a
// ServerFile tagged with the server's current public key.
func (sr *ServerRegistration) Finish(finalization *RegistrationFinalization) (*ServerFile, error) {
	if sr.done {
		return nil, fmt.Errorf("%w: %w", ErrOpaque, errStateReused)
	}

	sr.done = true

	if !finalization.config.Equal(sr.serverConfig.config) {
		return nil, ErrConfig
	}

	return newServerFile(sr.serverConfig.publicKey, finalization.payload), nil
}
