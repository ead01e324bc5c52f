// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package opaque

import (
	"errors"
	"fmt"

	"github.com/nyxcrypto/opaque/internal"
	"github.com/nyxcrypto/opaque/internal/ake"
	"github.com/nyxcrypto/opaque/internal/masking"
	"github.com/nyxcrypto/opaque/message"
)

// ServerLogin is the one-shot server-side login state: created by
// (*ServerConfig).Login, consumed by Finish.
type ServerLogin struct {
	serverConfig *ServerConfig
	ake          *ake.Server
	done         bool
}

// Login evaluates the client's blinded password and produces a LoginResponse.
// If file is nil, it runs a simulated exchange — a fake client public key,
// random masking key, and all-zero envelope of the correct size — that is
// well-formed and indistinguishable from a real account's response up to the
// client's final credential check, preventing a user-enumeration oracle
// (spec.md §4.4, §9). The simulated branch is carried over from the
// teacher's GetFakeRecord; see SPEC_FULL.md §5.
func (sc *ServerConfig) Login(file *ServerFile, request *LoginRequest) (*ServerLogin, *LoginResponse, error) {
	if !request.config.Equal(sc.config) {
		return nil, nil, ErrConfig
	}

	if file != nil && !file.PublicKey().Equal(sc.publicKey) {
		return nil, nil, ErrServerFile
	}

	var clientPublicKey, maskingKey, envelopeBytes []byte

	if file != nil {
		clientPublicKey = file.record.ClientPublicKey
		maskingKey = file.record.MaskingKey
		envelopeBytes = file.record.Envelope
	} else {
		_, fakePK := sc.suite.AKE.KeyGen()
		clientPublicKey = fakePK
		maskingKey = internal.RandomBytes(sc.suite.KDF.Size())
		envelopeBytes = make([]byte, sc.suite.EnvelopeSize)
	}

	ke1 := request.payload
	evaluated := sc.suite.OPRF.Evaluate(sc.oprfKey, ke1.CredentialRequest.BlindedMessage)

	maskingNonce, maskedResponse := masking.Mask(sc.suite, nil, maskingKey, sc.rawPublicKey, envelopeBytes)
	credResponse := message.NewCredentialResponse(evaluated, maskingNonce, maskedResponse)

	akeServer := ake.NewServer()

	ke2, err := akeServer.Response(sc.suite, nil, nil, sc.privateKey, sc.rawPublicKey, clientPublicKey, ke1, credResponse)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOpaque, err)
	}

	state := &ServerLogin{serverConfig: sc, ake: akeServer}
	resp := &LoginResponse{config: sc.config, payload: ke2}

	return state, resp, nil
}

// Finish consumes the client's LoginFinalization, verifying its 3DH MAC.
func (sl *ServerLogin) Finish(finalization *LoginFinalization) error {
	if sl.done {
		return fmt.Errorf("%w: %w", ErrOpaque, errStateReused)
	}

	sl.done = true

	if !finalization.config.Equal(sl.serverConfig.config) {
		return ErrConfig
	}

	if err := sl.ake.Finalize(sl.serverConfig.suite, finalization.payload); err != nil {
		if errors.Is(err, ake.ErrInvalidClientMac) {
			return ErrCredentials
		}

		return fmt.Errorf("%w: %w", ErrOpaque, err)
	}

	return nil
}

// MarshalState serializes the server's post-Login session state, so a
// ServerLogin can be resumed after the process holding it restarts. Not part
// of the six public message types; carried over from the teacher's
// SerializeState/SetAKEState (SPEC_FULL.md §5).
func (sl *ServerLogin) MarshalState() []byte {
	return sl.ake.MarshalState()
}

// UnmarshalState restores a ServerLogin previously serialized by MarshalState.
func UnmarshalState(serverConfig *ServerConfig, data []byte) (*ServerLogin, error) {
	akeServer := ake.NewServer()
	if err := akeServer.UnmarshalState(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpaque, err)
	}

	return &ServerLogin{serverConfig: serverConfig, ake: akeServer}, nil
}
