// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package opaque

// ClientFile is a client-side record pinning the server's public key, so a
// later login can refuse an impostor server. A ClientFile produced by
// registration or a successful login is equal to any other ClientFile
// produced for the same account under the same ServerConfig.
type ClientFile struct {
	serverPublicKey PublicKey
}

func newClientFile(serverPublicKey PublicKey) ClientFile {
	return ClientFile{serverPublicKey: serverPublicKey}
}

// Config returns the cipher suite this ClientFile was produced under.
func (f ClientFile) Config() Config {
	return f.serverPublicKey.config
}

// ServerPublicKey returns the server public key this file pins.
func (f ClientFile) ServerPublicKey() PublicKey {
	return f.serverPublicKey
}

// Equal reports whether two ClientFiles pin the same server public key.
func (f ClientFile) Equal(other ClientFile) bool {
	return f.serverPublicKey.Equal(other.serverPublicKey)
}

// Serialize encodes the ClientFile. The server public key's own Serialize
// already carries the Config, so the file adds nothing further.
func (f ClientFile) Serialize() []byte {
	return f.serverPublicKey.Serialize()
}

// DeserializeClientFile decodes a ClientFile previously produced by Serialize.
func DeserializeClientFile(data []byte) (ClientFile, error) {
	pk, err := DeserializePublicKey(data)
	if err != nil {
		return ClientFile{}, err
	}

	return newClientFile(pk), nil
}
