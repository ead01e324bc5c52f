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

// ServerFile is the persistable credential record a server stores per user:
// the OPAQUE registration record plus the server PublicKey active at
// registration. A ServerFile may be read concurrently by any number of
// ServerLogin.Login calls — it is a pure credential record.
type ServerFile struct {
	publicKey PublicKey
	record    *message.RegistrationRecord
}

func newServerFile(publicKey PublicKey, record *message.RegistrationRecord) *ServerFile {
	return &ServerFile{publicKey: publicKey, record: record}
}

// Config returns the cipher suite this ServerFile was produced under.
func (f *ServerFile) Config() Config {
	return f.publicKey.config
}

// PublicKey returns the server public key that was active when this file was registered.
func (f *ServerFile) PublicKey() PublicKey {
	return f.publicKey
}

// Serialize encodes the ServerFile as its public key followed by the registration record.
func (f *ServerFile) Serialize() []byte {
	suite, err := f.publicKey.config.resolve()
	if err != nil {
		panic("opaque: serializing a ServerFile built under an invalid config: " + err.Error())
	}

	return encoding.Concatenate(f.publicKey.Serialize(), f.record.Serialize(suite))
}

// DeserializeServerFile decodes a ServerFile previously produced by Serialize.
func DeserializeServerFile(data []byte) (*ServerFile, error) {
	pk, rest, err := deserializePublicKey(data)
	if err != nil {
		return nil, err
	}

	suite, err := pk.config.resolve()
	if err != nil {
		return nil, err
	}

	record, err := message.DeserializeRegistrationRecord(suite, rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpaque, err)
	}

	return newServerFile(pk, record), nil
}
