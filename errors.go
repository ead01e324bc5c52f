// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package opaque

import "errors"

// ErrOpaque is any internal protocol failure not otherwise classified.
var ErrOpaque = errors.New("opaque: protocol failure")

// ErrInvalidServer is returned when the server public key observed during a
// protocol run differs from the one the caller was told to expect.
var ErrInvalidServer = errors.New("opaque: server public key does not match the expected one")

// ErrMhfConfig is returned when an Argon2 or PBKDF2 parameter is out of range
// at construction time.
var ErrMhfConfig = errors.New("opaque: memory-hard function parameter out of range")

// ErrConfig is returned when two objects that must share a Config do not.
var ErrConfig = errors.New("opaque: configuration mismatch")

// ErrConfigPublicKey is returned when a ClientConfig's expected public key
// and a ClientFile's stored public key disagree within one ClientLogin.
var ErrConfigPublicKey = errors.New("opaque: client config and client file disagree on the expected server public key")

// ErrCredentials is the single surfaced outcome for any client-side
// login-verification failure: wrong password, unknown user, or a tampered
// ServerFile. It must never be distinguished from its causes.
var ErrCredentials = errors.New("opaque: invalid credentials")

// ErrServerFile is returned when the server detects that a supplied
// ServerFile was produced under a different ServerConfig.
var ErrServerFile = errors.New("opaque: server file was created under a different server configuration")

// errStateReused is returned when a one-shot state object (ClientRegistration,
// ClientLogin, ServerRegistration, ServerLogin) is finished more than once.
// Not part of the spec's enumerated error set; wrapped in ErrOpaque.
var errStateReused = errors.New("opaque: state already consumed")
