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

//nolint:testpackage // test unexported middleware
package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d", w.Code)
	}
	return w.Body.String()
}

func TestCodecCounters(t *testing.T) {
	t.Parallel()

	m := New("tiny64")
	m.Codec(OpEncode, 3, 4)
	m.Codec(OpEncode, 3, 4)
	m.Codec(OpDecode, 4, 3)
	m.Corrupt()

	body := scrape(t, m)

	for _, want := range []string{
		`tiny64_codec_bytes_in{op="encode"} 6`,
		`tiny64_codec_bytes_out{op="encode"} 8`,
		`tiny64_codec_bytes_in{op="decode"} 4`,
		`tiny64_codec_corrupt_input 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %q in /metrics", want)
		}
	}
}

func TestNilMetrics(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.Codec(OpDecode, 1, 1)
	m.Corrupt()

	mw, connState := m.StartServer(9999)
	if mw != nil || connState != nil {
		t.Error("a nil Metrics must not start any server")
	}
}

func TestCountAndConnState(t *testing.T) {
	t.Parallel()

	m := New("t")

	h := m.count(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/decode", nil))

	hook := m.updateConnCounters()
	hook(nil, http.StateNew)
	hook(nil, http.StateActive)
	hook(nil, http.StateNew)
	hook(nil, http.StateClosed)

	body := scrape(t, m)

	for _, want := range []string{
		`t_http_request_duration_seconds_count{method="POST",status="error"} 1`,
		`t_http_conn 1`,
		`t_http_new 2`,
		`t_http_req 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %q in /metrics", want)
		}
	}
}
