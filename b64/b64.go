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

// Package b64 implements the standard Base64 encoding
// (RFC 4648 section 4: A-Z a-z 0-9 + / with = padding)
// on buffers owned by the caller.
//
// Encode, Decode and their Strict variants never allocate:
// the caller sizes the destination with EncodedLen or DecodedLen,
// plus one optional byte receiving a NUL terminator.
// The package keeps no state except its read-only alphabet table,
// so all functions are safe for concurrent use.
//
// Decode is lenient: it stops at the first '=' and packs
// any unknown character as zero bits, without reporting it.
// DecodeStrict validates the input and reports a CorruptInputError instead.
package b64

// pack converts 3 bytes into 4 values of 6 bits.
func pack(a4 *[4]byte, a3 *[3]byte) {
	a4[0] = (a3[0] & 0xfc) >> 2
	a4[1] = ((a3[0] & 0x03) << 4) | ((a3[1] & 0xf0) >> 4)
	a4[2] = ((a3[1] & 0x0f) << 2) | ((a3[2] & 0xc0) >> 6)
	a4[3] = a3[2] & 0x3f
}

// unpack converts 4 values of 6 bits back into 3 bytes.
func unpack(a3 *[3]byte, a4 *[4]byte) {
	a3[0] = (a4[0] << 2) | ((a4[1] & 0x30) >> 4)
	a3[1] = ((a4[1] & 0x0f) << 4) | ((a4[2] & 0x3c) >> 2)
	a3[2] = ((a4[2] & 0x03) << 6) | a4[3]
}

// Encode writes the Base64 encoding of src into dst
// and returns the number of written characters, always EncodedLen(len(src)).
//
// dst must hold at least EncodedLen(len(src)) bytes, else Encode panics.
// When dst has one more byte, a NUL terminator is written after the last character.
func Encode(dst, src []byte) int {
	var a3 [3]byte
	var a4 [4]byte
	n := 0

	for len(src) >= 3 {
		a3 = [3]byte{src[0], src[1], src[2]}
		pack(&a4, &a3)
		for _, v := range a4 {
			dst[n] = std.encode[v]
			n++
		}
		src = src[3:]
	}

	// the last group is zero-padded: only leftover+1 characters carry data
	if leftover := len(src); leftover > 0 {
		a3 = [3]byte{}
		copy(a3[:], src)
		pack(&a4, &a3)
		for i := 0; i <= leftover; i++ {
			dst[n] = std.encode[a4[i]]
			n++
		}
		for i := leftover; i < 3; i++ {
			dst[n] = padding
			n++
		}
	}

	terminate(dst, n)
	return n
}

// Decode writes the bytes represented by the Base64 text src into dst
// and returns the number of written bytes.
//
// Decode stops at the first '=' wherever it appears.
// A trailing group of 2 or 3 characters gives 1 or 2 bytes,
// a dangling single character gives nothing.
// Characters outside the alphabet are decoded as zero bits
// without any error: use DecodeStrict to detect them.
//
// dst must hold at least DecodedLen(src) bytes for well-formed input, else Decode panics.
// When dst has one more byte, a NUL terminator is written after the last byte.
func Decode(dst, src []byte) int {
	var a3 [3]byte
	var a4 [4]byte
	n, i := 0, 0

	for _, c := range src {
		if c == padding {
			break
		}

		a4[i], _ = std.lookup(c)
		i++

		if i == 4 {
			unpack(&a3, &a4)
			dst[n] = a3[0]
			dst[n+1] = a3[1]
			dst[n+2] = a3[2]
			n += 3
			i = 0
		}
	}

	if i > 0 {
		for j := i; j < 4; j++ {
			a4[j] = 0
		}
		unpack(&a3, &a4)
		for j := 0; j < i-1; j++ {
			dst[n] = a3[j]
			n++
		}
	}

	terminate(dst, n)
	return n
}

// terminate writes the NUL marker when dst has room for it.
func terminate(dst []byte, n int) {
	if n < len(dst) {
		dst[n] = 0
	}
}
