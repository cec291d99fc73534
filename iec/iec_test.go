// Copyright 2022 Teal.Finance/tiny64 contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec under the MIT License.
// SPDX-License-Identifier: MIT

package iec_test

import (
	"testing"

	"github.com/teal-finance/tiny64/iec"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1 << 20, "1.0 MiB"},
		{5 << 30, "5.0 GiB"},
	}

	for _, c := range cases {
		if got := iec.Format(c.size); got != c.want {
			t.Errorf("Format(%d) = %q, want %q", c.size, got, c.want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"4096", 4096, false},
		{"12 B", 12, false},
		{"64KiB", 64 << 10, false},
		{" 1 MiB ", 1 << 20, false},
		{"2gib", 2 << 30, false},
		{"1 XiB", 0, true},
		{"MiB", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"9000000 EiB", 0, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := iec.Parse(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", c.in, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("Parse(%q) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}
