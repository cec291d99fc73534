// Copyright (c) 2022 Teal.Finance contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec, under the MIT License.
// SPDX-License-Identifier: MIT

package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/teal-finance/tiny64/security"
)

func TestSanitizeLineBreaks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "/encode", "/encode"},
		{"CR", "/a\rb", "/a<CR>b"},
		{"CRLF", "/a\r\nb", "/a<CR><LF>b"},
	}

	for _, c := range cases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := security.SanitizeLineBreaks(c.in); got != c.want {
				t.Errorf("SanitizeLineBreaks(%q) = %q, want %q", c.in, got, c.want)
			}
			if got := security.DoesContainLineBreak(c.in); got != (c.in != c.want) {
				t.Errorf("DoesContainLineBreak(%q) = %v", c.in, got)
			}
		})
	}
}

func TestRejectLineBreakInURI(t *testing.T) {
	t.Parallel()

	h := security.RejectLineBreakInURI("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest(http.MethodGet, "/encode", nil)
	r.RequestURI = "/encode\nforged log line"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
