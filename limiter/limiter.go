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

// Package limiter throttles the incoming requests per client IP.
package limiter

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/teal-finance/emo"
	"golang.org/x/time/rate"

	"github.com/teal-finance/tiny64/reserr"
)

var log = emo.NewZone("limiter")

const (
	cleanupPeriod = 1 * time.Minute
	forgetAfter   = 3 * time.Minute
)

type ReqLimiter struct {
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
	resErr   reserr.ResErr
	cleaning sync.Once
	stopping sync.Once
	done     chan struct{}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New creates a limiter allowing maxReqBurst requests at once
// and maxReqPerMinute in the long run, ten times more in devMode.
func New(maxReqBurst, maxReqPerMinute int, devMode bool, resErr reserr.ResErr) *ReqLimiter {
	if devMode {
		maxReqBurst *= 10
		maxReqPerMinute *= 10
	}

	return &ReqLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(maxReqPerMinute) / 60),
		burst:    maxReqBurst,
		mu:       sync.Mutex{},
		resErr:   resErr,
		cleaning: sync.Once{},
		stopping: sync.Once{},
		done:     make(chan struct{}),
	}
}

// Limit rejects the request with 429 when the client exceeds its rate.
func (rl *ReqLimiter) Limit(next http.Handler) http.Handler {
	log.Info("Middleware RateLimiter: burst", rl.burst, "rate/s", float64(rl.limit))

	rl.cleaning.Do(func() { go rl.removeOldVisitors() })

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			rl.resErr.Write(w, r, http.StatusInternalServerError, "Internal Server Error #3")
			log.Warning("in ", r.Method, r.RemoteAddr, r.RequestURI, "- Error SplitHostPort", err)
			return
		}

		if !rl.getVisitor(ip).Allow() {
			rl.resErr.Write(w, r, http.StatusTooManyRequests, "Too Many Requests")
			log.Warning("rej", r.Method, r.RemoteAddr, r.RequestURI, "TooManyRequests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Stop ends the background cleanup of the idle visitors.
// The middleware keeps limiting the requests.
func (rl *ReqLimiter) Stop() {
	if rl == nil {
		return
	}
	rl.stopping.Do(func() { close(rl.done) })
}

// Done is closed by Stop.
func (rl *ReqLimiter) Done() <-chan struct{} { return rl.done }

func (rl *ReqLimiter) removeOldVisitors() {
	ticker := time.NewTicker(cleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.forget(time.Now().Add(-forgetAfter))
		}
	}
}

// forget drops the visitors not seen since the deadline.
func (rl *ReqLimiter) forget(deadline time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if v.lastSeen.Before(deadline) {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *ReqLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{
			limiter:  rate.NewLimiter(rl.limit, rl.burst),
			lastSeen: time.Time{},
		}
		rl.visitors[ip] = v
	}

	v.lastSeen = time.Now()

	return v.limiter
}
