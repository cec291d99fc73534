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

//nolint:testpackage // test unexported visitors
package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimit(t *testing.T) {
	t.Parallel()

	rl := New(2, 1, false, "")
	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 4)
	for _, addr := range []string{"10.0.0.1:1", "10.0.0.1:2", "10.0.0.1:3", "10.0.0.2:1"} {
		r := httptest.NewRequest(http.MethodPost, "/encode", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		codes = append(codes, w.Code)
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusOK}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request #%d status = %d, want %d", i, codes[i], want[i])
		}
	}
}

func TestBadRemoteAddr(t *testing.T) {
	t.Parallel()

	h := New(1, 1, false, "").Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "no-port"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestForget(t *testing.T) {
	t.Parallel()

	rl := New(1, 1, true, "")
	rl.getVisitor("a")
	rl.getVisitor("b")
	rl.visitors["a"].lastSeen = time.Now().Add(-time.Hour)

	rl.forget(time.Now().Add(-forgetAfter))

	if _, ok := rl.visitors["a"]; ok {
		t.Error("visitor a should be forgotten")
	}
	if _, ok := rl.visitors["b"]; !ok {
		t.Error("visitor b should be kept")
	}
}

func TestStop(t *testing.T) {
	t.Parallel()

	rl := New(1, 1, false, "")

	exited := make(chan struct{})
	go func() {
		rl.removeOldVisitors()
		close(exited)
	}()

	rl.Stop()
	rl.Stop() // idempotent

	select {
	case <-rl.Done():
	default:
		t.Error("Done() not closed after Stop()")
	}

	select {
	case <-exited:
	case <-time.After(5 * time.Second):
		t.Fatal("cleanup goroutine still running after Stop()")
	}

	var nilLimiter *ReqLimiter
	nilLimiter.Stop()
}
