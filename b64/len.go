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

package b64

// EncodedLen returns the length of the Base64 encoding of n bytes,
// padding included, NUL terminator excluded.
func EncodedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the number of bytes represented by the Base64 text src:
// 6*len(src)/8 minus the trailing '=' (at most two are counted).
//
// The result is exact for well-formed text (length multiple of 4,
// padding only at the end) and for unpadded text.
// It is an approximation for malformed input
// and is never negative.
func DecodedLen(src []byte) int {
	numEq := 0
	for i := len(src) - 1; i >= 0 && src[i] == padding && numEq < 2; i-- {
		numEq++
	}

	n := (6*len(src))/8 - numEq
	if n < 0 {
		return 0
	}
	return n
}

// MaxDecodedLen returns the maximum number of bytes Decode may write
// for any text of n characters, including malformed text.
func MaxDecodedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 3) / 4 * 3
}
