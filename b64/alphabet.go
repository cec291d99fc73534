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

import "fmt"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789+/"

// base is 64.
const base = len(alphabet)

const (
	padding = '='
	invalid = 0xFF // marks the bytes outside the alphabet in the decode table
)

//nolint:gochecknoglobals // built at init time, read-only afterwards
var std = newTable(alphabet)

// table is an optimized form of the encoding characters.
type table struct {
	decode [256]byte
	encode [base]byte
}

// newTable panics if the passed string is not 64 bytes long,
// or does not contain 64 distinct characters.
func newTable(s string) *table {
	if len(s) != base {
		panic(fmt.Sprintf("b64: alphabet must be %d bytes long, got %d", base, len(s)))
	}

	t := new(table)
	copy(t.encode[:], s)
	for i := range t.decode {
		t.decode[i] = invalid
	}

	distinct := 0
	for i, c := range t.encode {
		if t.decode[c] == invalid {
			distinct++
		}
		t.decode[c] = byte(i)
	}

	if distinct != base || t.decode[padding] != invalid {
		panic(fmt.Sprintf("b64: alphabet must contain %d distinct characters other than %q", base, padding))
	}

	return t
}

// lookup converts a Base64 character to its 6-bit value.
// ok is false when c is not part of the alphabet (the padding '=' included),
// in which case v is zero.
func (t *table) lookup(c byte) (v byte, ok bool) {
	v = t.decode[c]
	if v == invalid {
		return 0, false
	}
	return v, true
}

// Alphabet returns the 64 characters used by the encoding, in index order.
func Alphabet() string { return alphabet }

// IsAlphabet reports whether c is one of the 64 encoding characters.
func IsAlphabet(c byte) bool {
	_, ok := std.lookup(c)
	return ok
}
