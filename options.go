// Copyright 2022 Teal.Finance/tiny64 contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec under the MIT License.
// SPDX-License-Identifier: MIT

package tiny64

import (
	"github.com/teal-finance/tiny64/metrics"
	"github.com/teal-finance/tiny64/reserr"
)

type Option func(*Server)

// WithDev multiplies the rate limits by ten,
// allows the DevOrigins and enables verbose CORS logs.
func WithDev(enable ...bool) Option {
	devMode := true
	if len(enable) > 0 {
		devMode = enable[0]

		if len(enable) >= 2 {
			panic("tiny64.WithDev() must be called with zero or one argument")
		}
	}

	return func(s *Server) {
		s.devMode = devMode
	}
}

// WithDocURL sets the documentation URL inserted in the JSON error responses.
func WithDocURL(docURL string) Option {
	return func(s *Server) {
		s.resErr = reserr.New(docURL)
	}
}

// WithPProf serves the /debug/pprof endpoints on localhost:port.
func WithPProf(port int) Option {
	return func(s *Server) {
		s.pprofPort = port
	}
}

// WithProm counts the web traffic and the codec usage.
// A positive port exports them to Prometheus on /metrics.
func WithProm(port int, namespace string) Option {
	if namespace == "" {
		namespace = "tiny64"
	}

	return func(s *Server) {
		s.expPort = port
		s.metrics = metrics.New(namespace)
	}
}

// WithReqLogs logs the incoming HTTP requests:
// 0 disables the logs, 1 logs IP and URI (default),
// 2 logs also some request headers.
func WithReqLogs(verbosity ...int) Option {
	v := 1
	if len(verbosity) > 0 {
		v = verbosity[0]
	}

	return func(s *Server) { s.reqLogs = v }
}

// WithLimiter limits the request rate per client IP.
// Defaults: burst=20 and perMinute=4*burst.
func WithLimiter(values ...int) Option {
	var burst, perMinute int

	switch len(values) {
	case 0:
		burst = 20
		perMinute = 4 * burst
	case 1:
		burst = values[0]
		perMinute = 4 * burst
	case 2:
		burst = values[0]
		perMinute = values[1]
	default:
		panic("tiny64.WithLimiter() must be called with less than three arguments")
	}

	return func(s *Server) {
		s.reqBurst = burst
		s.reqMinute = perMinute
	}
}

// WithServerHeader sets the Server HTTP header to "program-version".
func WithServerHeader(program string) Option {
	return func(s *Server) {
		s.version = Version(program, "")
	}
}

// WithOrigins sets the origin prefixes allowed by CORS.
func WithOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = append(s.origins, origins...)
	}
}

// WithMaxBody limits the size of the request body, DefaultMaxBody when n <= 0.
func WithMaxBody(n int64) Option {
	if n <= 0 {
		n = DefaultMaxBody
	}

	return func(s *Server) {
		s.maxBody = n
	}
}
