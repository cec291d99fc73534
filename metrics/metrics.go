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

// Package metrics exports the web traffic and codec counters to Prometheus.
package metrics

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/teal-finance/emo"

	"github.com/teal-finance/tiny64/chain"
	"github.com/teal-finance/tiny64/security"
)

var log = emo.NewZone("metrics")

// Codec operations counted by the codec counters.
const (
	OpEncode = "encode"
	OpDecode = "decode"
)

type Metrics struct {
	registry *prometheus.Registry

	mu   sync.Mutex
	conn float64 // Number of current active HTTP connections

	connGauge  prometheus.Gauge
	iniCounter prometheus.Counter
	reqCounter prometheus.Counter
	resCounter prometheus.Counter
	hijCounter prometheus.Counter
	duration   *prometheus.HistogramVec

	bytesIn  *prometheus.CounterVec
	bytesOut *prometheus.CounterVec
	corrupt  prometheus.Counter
}

// New registers all the collectors within a dedicated registry.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		mu:       sync.Mutex{},
		conn:     0,

		connGauge:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Subsystem: "http", Name: "conn", Help: "Number of current active HTTP connections"}),
		iniCounter: prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Subsystem: "http", Name: "new", Help: "Total initiated HTTP connections since startup"}),
		reqCounter: prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Subsystem: "http", Name: "req", Help: "Total requested HTTP connections since startup"}),
		resCounter: prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Subsystem: "http", Name: "res", Help: "Total responded HTTP connections since startup"}),
		hijCounter: prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Subsystem: "http", Name: "hij", Help: "Total hijacked HTTP connections since startup"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help: "Duration of the HTTP requests", Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),

		bytesIn:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Subsystem: "codec", Name: "bytes_in", Help: "Total bytes given to the codec"}, []string{"op"}),
		bytesOut: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Subsystem: "codec", Name: "bytes_out", Help: "Total bytes produced by the codec"}, []string{"op"}),
		corrupt:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Subsystem: "codec", Name: "corrupt_input", Help: "Total rejected Base64 inputs"}),
	}

	m.registry.MustRegister(
		m.connGauge, m.iniCounter, m.reqCounter, m.resCounter, m.hijCounter, m.duration,
		m.bytesIn, m.bytesOut, m.corrupt,
		collectors.NewGoCollector(),
		collectors.NewBuildInfoCollector(),
	)

	return m
}

// StartServer starts the Prometheus export server in background
// and returns the middleware and the connection hook to install on the main server.
// A nil Metrics or a port <= 0 disables the export.
func (m *Metrics) StartServer(port int) (chain.Chain, func(net.Conn, http.ConnState)) {
	if m == nil || port <= 0 {
		log.Info("Disable Prometheus, export port:", port)
		return nil, nil
	}

	addr := ":" + strconv.Itoa(port)

	go func() {
		err := http.ListenAndServe(addr, m.Handler()) //nolint:gosec // metrics server on internal port
		log.Error("Prometheus export stopped:", err)
	}()

	log.Info("Prometheus export http://localhost" + addr + "/metrics")

	return chain.New(m.count), m.updateConnCounters()
}

// Handler returns the endpoint "/metrics".
func (m *Metrics) Handler() http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return r
}

// Codec counts the bytes processed by one codec operation.
// Codec is a no-op on a nil Metrics.
func (m *Metrics) Codec(op string, in, out int) {
	if m == nil {
		return
	}
	m.bytesIn.WithLabelValues(op).Add(float64(in))
	m.bytesOut.WithLabelValues(op).Add(float64(out))
}

// Corrupt counts one rejected Base64 input.
func (m *Metrics) Corrupt() {
	if m == nil {
		return
	}
	m.corrupt.Inc()
}

// count measures the request duration depending on incoming requests and outgoing responses.
func (m *Metrics) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		record := &statusRecorder{ResponseWriter: w, Status: "success"}

		next.ServeHTTP(record, r)

		duration := time.Since(start)
		m.duration.WithLabelValues(r.Method, record.Status).Observe(duration.Seconds())

		uri := security.SanitizeLineBreaks(r.RequestURI)
		log.Debug("out", r.RemoteAddr, r.Method, uri, duration, record.Status)
	})
}

// updateConnCounters counts the number of HTTP client connections.
func (m *Metrics) updateConnCounters() (connState func(net.Conn, http.ConnState)) {
	return func(_ net.Conn, cs http.ConnState) {
		switch cs {
		// StateNew: the client just connects, the server expects its request.
		case http.StateNew:
			m.iniCounter.Inc()
			m.addConn(+1)

		// StateActive: a request is being received.
		case http.StateActive:
			m.reqCounter.Inc()

		// StateIdle: the server has handled the request and waits in keep-alive state.
		case http.StateIdle:
			m.resCounter.Inc()

		// StateHijacked: terminal state.
		case http.StateHijacked:
			m.hijCounter.Inc()
			m.addConn(-1)

		// StateClosed: terminal state.
		case http.StateClosed:
			m.addConn(-1)
		}
	}
}

func (m *Metrics) addConn(delta float64) {
	m.mu.Lock()
	m.conn += delta
	m.connGauge.Set(m.conn)
	m.mu.Unlock()
}

type statusRecorder struct {
	http.ResponseWriter
	Status string
}

func (r *statusRecorder) WriteHeader(status int) {
	if status >= http.StatusBadRequest {
		r.Status = "error"
	}

	r.ResponseWriter.WriteHeader(status)
}
