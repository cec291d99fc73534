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

package xb64_test

import (
	"encoding/base64"
	"errors"
	"reflect"
	"testing"

	"github.com/teal-finance/tiny64/b64"
	"github.com/teal-finance/tiny64/xb64"
)

var cases = []struct {
	name string
	bin  []byte
}{
	{"nil", nil},
	{"empty", []byte{}},
	{"zero", []byte{0}},
	{"one", []byte{1}},
	{"two", []byte{2}},
	{"2zeros", []byte{0, 0}},
	{"3ones", []byte{1, 1, 1}},
	{"64zeros", make([]byte, 64)},
	{"65zeros", make([]byte, 65)},
	{"ascii", []byte("c'est une longue chason")},
	{"utf8", []byte("Garçon, un café très fort !")},
}

func TestEncode(t *testing.T) {
	t.Parallel()

	for _, c := range cases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			str := xb64.Encode(c.bin)

			na := len(str)
			if na > 70 {
				na = 70 // print max the first 70 characters
			}
			t.Logf("str len=%d [:%d]=%q", len(str), na, str[:na])

			if want := base64.StdEncoding.EncodeToString(c.bin); str != want {
				t.Errorf("Encode() = %q, encoding/base64 gives %q", str, want)
			}

			got, err := xb64.Decode(str)
			if err != nil {
				t.Errorf("Decode() error = %v", err)
				return
			}

			if (len(got) == 0) && (len(c.bin) == 0) {
				return
			}

			if !reflect.DeepEqual(got, c.bin) {
				t.Errorf("Decode() = %v, want %v", got, c.bin)
			}

			if lenient := xb64.DecodeLenient(str); !reflect.DeepEqual(lenient, c.bin) {
				t.Errorf("DecodeLenient() = %v, want %v", lenient, c.bin)
			}
		})
	}
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	_, err := xb64.Decode("Zm9v*mFy")

	var corrupt b64.CorruptInputError
	if !errors.As(err, &corrupt) {
		t.Fatalf("Decode() error = %v, want a wrapped CorruptInputError", err)
	}
	if corrupt != 4 {
		t.Errorf("Decode() offset = %d, want 4", corrupt)
	}
}

func TestDecodeLenientMalformed(t *testing.T) {
	t.Parallel()

	// more padding than DecodedLen expects must not overflow
	if got := xb64.DecodeLenient("Zm9vZm8=="); string(got) != "foofo" {
		t.Errorf("DecodeLenient() = %q, want %q", got, "foofo")
	}

	if got := xb64.DecodeLenient("Zm9v=Zm9v"); string(got) != "foo" {
		t.Errorf("DecodeLenient() = %q, want %q", got, "foo")
	}
}
