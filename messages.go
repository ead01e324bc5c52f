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

	"github.com/nyxcrypto/opaque/internal/encoding"
	"github.com/nyxcrypto/opaque/message"
)

// RegistrationRequest is the client's blinded password, sent to start registration.
type RegistrationRequest struct {
	config  Config
	payload *message.RegistrationRequest
}

// Config returns the cipher suite this message was produced under.
func (m *RegistrationRequest) Config() Config { return m.config }

// Serialize encodes the message as its Config followed by the wire payload.
func (m *RegistrationRequest) Serialize() []byte {
	suite, _ := m.config.resolve()
	return encoding.Concatenate(m.config.Serialize(), m.payload.Serialize(suite))
}

// DeserializeRegistrationRequest decodes a RegistrationRequest previously produced by Serialize.
func DeserializeRegistrationRequest(data []byte) (*RegistrationRequest, error) {
	config, rest, err := DeserializeConfig(data)
	if err != nil {
		return nil, err
	}

	suite, err := config.resolve()
	if err != nil {
		return nil, err
	}

	payload, err := message.DeserializeRegistrationRequest(suite, rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpaque, err)
	}

	return &RegistrationRequest{config: config, payload: payload}, nil
}

// RegistrationResponse is the server's OPRF evaluation plus its AKE public key.
type RegistrationResponse struct {
	config  Config
	payload *message.RegistrationResponse
}

// Config returns the cipher suite this message was produced under.
func (m *RegistrationResponse) Config() Config { return m.config }

// Serialize encodes the message as its Config followed by the wire payload.
func (m *RegistrationResponse) Serialize() []byte {
	suite, _ := m.config.resolve()
	return encoding.Concatenate(m.config.Serialize(), m.payload.Serialize(suite))
}

// DeserializeRegistrationResponse decodes a RegistrationResponse previously produced by Serialize.
func DeserializeRegistrationResponse(data []byte) (*RegistrationResponse, error) {
	config, rest, err := DeserializeConfig(data)
	if err != nil {
		return nil, err
	}

	suite, err := config.resolve()
	if err != nil {
		return nil, err
	}

	payload, err := message.DeserializeRegistrationResponse(suite, rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpaque, err)
	}

	return &RegistrationResponse{config: config, payload: payload}, nil
}

// RegistrationFinalization is the client's final registration message: its
// recovered public key, masking key, and envelope.
type RegistrationFinalization struct {
	config  Config
	payload *message.RegistrationRecord
}

// Config returns the cipher suite this message was produced under.
func (m *RegistrationFinalization) Config() Config { return m.config }

// Serialize encodes the message as its Config followed by the wire payload.
func (m *RegistrationFinalization) Serialize() []byte {
	suite, _ := m.config.resolve()
	return encoding.Concatenate(m.config.Serialize(), m.payload.Serialize(suite))
}

// DeserializeRegistrationFinalization decodes a RegistrationFinalization previously produced by Serialize.
func DeserializeRegistrationFinalization(data []byte) (*RegistrationFinalization, error) {
	config, rest, err := DeserializeConfig(data)
	if err != nil {
		return nil, err
	}

	suite, err := config.resolve()
	if err != nil {
		return nil, err
	}

	payload, err := message.DeserializeRegistrationRecord(suite, rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpaque, err)
	}

	return &RegistrationFinalization{config: config, payload: payload}, nil
}

// LoginRequest is the client's login request: KE1.
type LoginRequest struct {
	config  Config
	payload *message.KE1
}

// Config returns the cipher suite this message was produced under.
func (m *LoginRequest) Config() Config { return m.config }

// Serialize encodes the message as its Config followed by the wire payload.
func (m *LoginRequest) Serialize() []byte {
	suite, _ := m.config.resolve()
	return encoding.Concatenate(m.config.Serialize(), m.payload.Serialize(suite))
}

// DeserializeLoginRequest decodes a LoginRequest previously produced by Serialize.
func DeserializeLoginRequest(data []byte) (*LoginRequest, error) {
	config, rest, err := DeserializeConfig(data)
	if err != nil {
		return nil, err
	}

	suite, err := config.resolve()
	if err != nil {
		return nil, err
	}

	payload, err := message.DeserializeKE1(suite, rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpaque, err)
	}

	return &LoginRequest{config: config, payload: payload}, nil
}

// LoginResponse is the server's login response: KE2.
type LoginResponse struct {
	config  Config
	payload *message.KE2
}

// Config returns the cipher suite this message was produced under.
func (m *LoginResponse) Config() Config { return m.config }

// Serialize encodes the message as its Config followed by the wire payload.
func (m *LoginResponse) Serialize() []byte {
	suite, _ := m.config.resolve()
	return encoding.Concatenate(m.config.Serialize(), m.payload.Serialize(suite))
}

// DeserializeLoginResponse decodes a LoginResponse previously produced by Serialize.
func DeserializeLoginResponse(data []byte) (*LoginResponse, error) {
	config, rest, err := DeserializeConfig(data)
	if err != nil {
		return nil, err
	}

	suite, err := config.resolve()
	if err != nil {
		return nil, err
	}

	payload, err := message.DeserializeKE2(suite, rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpaque, err)
	}

	return &LoginResponse{config: config, payload: payload}, nil
}

// LoginFinalization is the client's final login message: KE3.
type LoginFinalization struct {
	config  Config
	payload *message.KE3
}

// Config returns the cipher suite this message was produced under.
func (m *LoginFinalization) Config() Config { return m.config }

// Serialize encodes the message as its Config followed by the wire payload.
func (m *LoginFinalization) Serialize() []byte {
	suite, _ := m.config.resolve()
	return encoding.Concatenate(m.config.Serialize(), m.payload.Serialize(suite))
}

// DeserializeLoginFinalization decodes a LoginFinalization previously produced by Serialize.
func DeserializeLoginFinalization(data []byte) (*LoginFinalization, error) {
	config, rest, err := DeserializeConfig(data)
	if err != nil {
		return nil, err
	}

	suite, err := config.resolve()
	if err != nil {
		return nil, err
	}

	payload, err := message.DeserializeKE3(suite, rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpaque, err)
	}

	return &LoginFinalization{config: config, payload: payload}, nil
}
