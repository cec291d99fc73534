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

import (
	"errors"
	"strconv"
)

// ErrShortBuffer is returned by the Strict functions
// when the destination cannot hold the whole result.
var ErrShortBuffer = errors.New("b64: short destination buffer")

// CorruptInputError is the offset of the first invalid byte in the Base64 text.
type CorruptInputError int64

func (e CorruptInputError) Error() string {
	return "b64: illegal base64 data at input byte " + strconv.FormatInt(int64(e), 10)
}

// EncodeStrict is Encode returning ErrShortBuffer
// instead of panicking when dst is too small.
func EncodeStrict(dst, src []byte) (int, error) {
	if len(dst) < EncodedLen(len(src)) {
		return 0, ErrShortBuffer
	}
	return Encode(dst, src), nil
}

// DecodeStrict is Decode rejecting malformed text.
//
// Padding is optional, but when present, it must complete the last group of 4
// and nothing but '=' may follow it (two at most).
// A dangling single character is rejected.
// Errors are CorruptInputError or ErrShortBuffer, dst is left untouched on error.
func DecodeStrict(dst, src []byte) (int, error) {
	end, err := validate(src)
	if err != nil {
		return 0, err
	}

	if len(dst) < decodedSize(end) {
		return 0, ErrShortBuffer
	}

	return Decode(dst, src[:end]), nil
}

// validate returns the number of data characters (padding excluded).
func validate(src []byte) (int, error) {
	end := len(src)

	for i, c := range src {
		if c == padding {
			end = i
			break
		}
		if _, ok := std.lookup(c); !ok {
			return 0, CorruptInputError(i)
		}
	}

	for i := end; i < len(src); i++ {
		if src[i] != padding {
			return 0, CorruptInputError(i)
		}
	}

	numEq := len(src) - end
	switch {
	case numEq > 2:
		return 0, CorruptInputError(end + 2)
	case numEq > 0 && len(src)%4 != 0:
		return 0, CorruptInputError(end)
	case end%4 == 1:
		return 0, CorruptInputError(end - 1)
	}

	return end, nil
}

// decodedSize is the exact number of bytes given by n valid data characters.
func decodedSize(n int) int {
	size := n / 4 * 3
	if leftover := n % 4; leftover > 1 {
		size += leftover - 1
	}
	return size
}
