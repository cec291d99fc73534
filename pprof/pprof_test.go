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

package pprof_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/teal-finance/tiny64/pprof"
)

func TestHandler(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/debug/pprof/", "/debug/pprof/cmdline"} {
		w := httptest.NewRecorder()
		pprof.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %v status = %d", path, w.Code)
		}
	}
}

func TestWriteCPUProfile(t *testing.T) {
	dir := t.TempDir()

	pprof.WriteCPUProfile(dir).Stop()

	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); err != nil {
		t.Errorf("missing CPU profile: %v", err)
	}
}
