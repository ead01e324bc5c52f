// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package encoding provides the length-prefixed vector and fixed-width integer
// encodings shared by every wire payload and key-schedule label in the
// protocol engine. It has no knowledge of cipher suites; callers pass already
// group-encoded bytes.
package encoding

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrVectorTooShort is returned when decoding a length-prefixed vector from a
// buffer shorter than its declared length.
var ErrVectorTooShort = errors.New("encoding: truncated length-prefixed vector")

// I2OSP is the integer-to-octet-string primitive: it encodes value as a
// big-endian byte string of exactly length bytes.
func I2OSP(value, length int) []byte {
	if length <= 0 {
		panic("encoding: I2OSP length must be positive")
	}

	out := make([]byte, length)
	v := uint64(value) //nolint:gosec // value is always a small protocol-internal length.

	for i := length - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}

	return out
}

// OS2IP is the inverse of I2OSP: it decodes a big-endian byte string into an integer.
func OS2IP(data []byte) int {
	var v uint64
	for _, b := range data {
		v = v<<8 | uint64(b)
	}

	return int(v) //nolint:gosec // protocol-internal lengths never overflow int.
}

// EncodeVector prepends a 2-byte big-endian length to data.
func EncodeVector(data []byte) []byte {
	return EncodeVectorLen(data, 2)
}

// EncodeVectorLen prepends a big-endian length of lenBytes bytes to data.
func EncodeVectorLen(data []byte, lenBytes int) []byte {
	return Concatenate(I2OSP(len(data), lenBytes), data)
}

// DecodeVector reads a 2-byte big-endian length-prefixed vector off the front
// of in, returning the vector and the remaining bytes.
func DecodeVector(in []byte) (vector, rest []byte, err error) {
	return DecodeVectorLen(in, 2)
}

// DecodeVectorLen reads a length-prefixed vector whose length field is
// lenBytes bytes wide off the front of in.
func DecodeVectorLen(in []byte, lenBytes int) (vector, rest []byte, err error) {
	if len(in) < lenBytes {
		return nil, nil, ErrVectorTooShort
	}

	length := OS2IP(in[:lenBytes])
	if len(in) < lenBytes+length {
		return nil, nil, fmt.Errorf("%w: declared %d, have %d", ErrVectorTooShort, length, len(in)-lenBytes)
	}

	return in[lenBytes : lenBytes+length], in[lenBytes+length:], nil
}

// Concatenate returns the concatenation of all the given byte slices.
func Concatenate(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// Concat3 concatenates exactly three byte slices; a small, allocation-light
// convenience used in the hot path of the 3DH transcript and key schedule.
func Concat3(a, b, c []byte) []byte {
	out := make([]byte, 0, len(a)+len(b)+len(c))
	out = append(out, a...)
	out = append(out, b...)

	return append(out, c...)
}

// SuffixString appends the ASCII bytes of suffix to data.
func SuffixString(data []byte, suffix string) []byte {
	return Concatenate(data, []byte(suffix))
}

// Uint32 encodes a uint32 as 4 big-endian bytes, used by Argon2/PBKDF2 parameter serialization.
func Uint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)

	return b
}

// DecodeUint32 decodes 4 big-endian bytes into a uint32.
func DecodeUint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}
