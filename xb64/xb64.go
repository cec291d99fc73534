// #region <editor-fold desc="Preamble">
// Copyright (c) 2022 Teal.Finance contributors
//
// This file is part of Teal.Finance/tiny64, a tiny Base64 codec.
// Teal.Finance/tiny64 is free software: you can redistribute it
// and/or modify it under the terms of the GNU Lesser General Public License
// either version 3 or any later version, at the licensee’s option.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// Teal.Finance/tiny64 is distributed WITHOUT ANY WARRANTY.
// For more details, see the LICENSE file (alongside the source files)
// or online at <https://www.gnu.org/licenses/lgpl-3.0.html>
// #endregion </editor-fold>

// package xb64 provides convenient Encode()
// and Decode() functions on top of the allocation-free "b64" package.
package xb64

import (
	"fmt"

	"github.com/teal-finance/tiny64/b64"
)

// Encode encodes a slice of bytes into a Base64 string
// allocating the destination buffer at the right size.
func Encode(bin []byte) string {
	str := make([]byte, b64.EncodedLen(len(bin)))
	n := b64.Encode(str, bin)
	return string(str[:n])
}

// Decode decodes a Base64 string into a slice of bytes
// allocating the destination buffer at the right size.
// Decode rejects malformed input.
func Decode(str string) ([]byte, error) {
	src := []byte(str)
	bin := make([]byte, b64.DecodedLen(src))

	n, err := b64.DecodeStrict(bin, src)
	if err != nil {
		return nil, fmt.Errorf("b64.DecodeStrict %w", err)
	}

	return bin[:n], nil
}

// DecodeLenient decodes without any validation:
// it stops at the first '=' and decodes unknown characters as zero bits.
func DecodeLenient(str string) []byte {
	src := []byte(str)
	bin := make([]byte, b64.MaxDecodedLen(len(src)))
	n := b64.Decode(bin, src)
	return bin[:n]
}
