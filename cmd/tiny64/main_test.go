// Copyright 2022 Teal.Finance/tiny64 contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec under the MIT License.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/teal-finance/tiny64/b64"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    string
		decode  bool
		lenient bool
		wantErr bool
	}{
		{"encode empty", "", "\n", false, false, false},
		{"encode", "foobar", "Zm9vYmFy\n", false, false, false},
		{"encode padded", "fo", "Zm8=\n", false, false, false},
		{"decode", "Zm9vYmFy\n", "foobar", true, false, false},
		{"decode spaces", "  Zm8=\r\n", "fo", true, false, false},
		{"decode unpadded", "Zm8", "fo", true, false, false},
		{"decode corrupt", "Zm9*", "", true, false, true},
		{"decode bad padding", "Zm8==", "", true, false, true},
		{"lenient corrupt", "Zm9!", "fo@", true, true, false},
		{"lenient stops at =", "Zm8=Zm9v", "fo", true, true, false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			err := convert(bytes.NewBufferString(c.in), &out, c.decode, c.lenient)
			if (err != nil) != c.wantErr {
				t.Fatalf("convert() error = %v, wantErr %v", err, c.wantErr)
			}
			if c.wantErr {
				return
			}
			if got := out.String(); got != c.want {
				t.Errorf("convert() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestConvertCorruptError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := convert(bytes.NewBufferString("Zm9*"), &out, true, false)

	var corrupt b64.CorruptInputError
	if !errors.As(err, &corrupt) {
		t.Fatalf("convert() error = %v, want a CorruptInputError", err)
	}
	if corrupt != 3 {
		t.Errorf("offset = %d, want 3", corrupt)
	}
	if out.Len() > 0 {
		t.Errorf("output = %q, want nothing", out.String())
	}
}

func TestRunFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bin := filepath.Join(dir, "data.bin")
	txt := filepath.Join(dir, "data.b64")
	back := filepath.Join(dir, "back.bin")

	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i * 7)
	}
	if err := os.WriteFile(bin, data, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := run(config{input: bin, output: txt}); err != nil {
		t.Fatal("encode:", err)
	}
	if err := run(config{input: txt, output: back, decode: true}); err != nil {
		t.Fatal("decode:", err)
	}

	got, err := os.ReadFile(back)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, data) {
		t.Error("round trip through files differs")
	}

	if err := run(config{input: filepath.Join(dir, "missing")}); err == nil {
		t.Error("want error for missing input file")
	}
}

func TestServeBadMaxBody(t *testing.T) {
	t.Parallel()

	if err := run(config{serve: true, maxBody: "1 XiB"}); err == nil {
		t.Error("want error for invalid -max-body")
	}
}

func TestSplitClean(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{" , ,", []string{}},
		{"http://a", []string{"http://a"}},
		{"http://a, http://b ,", []string{"http://a", "http://b"}},
	}

	for _, c := range cases {
		if got := splitClean(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("splitClean(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
