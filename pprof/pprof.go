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

// Package pprof serves the /debug/pprof endpoints
// and writes CPU profiles of the command line tool.
package pprof

import (
	"net/http"
	"net/http/pprof"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/profile"
	"github.com/teal-finance/emo"
)

var log = emo.NewZone("pprof")

type Stoppable interface {
	Stop()
}

// WriteCPUProfile writes cpu.pprof within dir until Stop() is called:
//
//	defer pprof.WriteCPUProfile(".").Stop()
func WriteCPUProfile(dir string) Stoppable {
	return profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
}

// StartServer serves the PProf endpoints on localhost in background.
// Port zero disables them.
func StartServer(port int) {
	if port <= 0 {
		return
	}

	addr := "localhost:" + strconv.Itoa(port)

	go func() {
		log.Info("Enable PProf endpoints: http://" + addr + "/debug/pprof")
		err := http.ListenAndServe(addr, Handler()) //nolint:gosec // localhost only
		log.Error("PProf server stopped:", err)
	}()
}

func Handler() http.Handler {
	r := chi.NewRouter()

	r.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	r.HandleFunc("/debug/pprof/profile", pprof.Profile)
	r.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	r.HandleFunc("/debug/pprof/trace", pprof.Trace)
	r.NotFound(pprof.Index) // also serves /debug/pprof/{heap,goroutine,block…}

	return r
}
