// Copyright 2022 Teal.Finance/tiny64 contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec under the MIT License.
// SPDX-License-Identifier: MIT

// Package tiny64 serves the b64 codec over HTTP
// including middlewares to manage rate-limit, CORS,
// web traffic, Prometheus export and PProf.
package tiny64

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/teal-finance/emo"

	"github.com/teal-finance/tiny64/chain"
	"github.com/teal-finance/tiny64/cors"
	"github.com/teal-finance/tiny64/limiter"
	"github.com/teal-finance/tiny64/metrics"
	"github.com/teal-finance/tiny64/pprof"
	"github.com/teal-finance/tiny64/reqlog"
	"github.com/teal-finance/tiny64/reserr"
	"github.com/teal-finance/tiny64/security"
)

var log = emo.NewZone("tiny64")

// DefaultMaxBody is the default limit of the request body size (1 MiB).
const DefaultMaxBody = 1 << 20

// DevOrigins provides the development origins:
//   - yarn run vite --port 3000
//   - localhost:8085 on multidevices: web autoreload using https://github.com/synw/fwr
//   - 192.168.1.x + any port on tablet
var DevOrigins = []string{"http://localhost:", "http://192.168.1."}

type Server struct {
	resErr     reserr.ResErr
	metrics    *metrics.Metrics
	reqLimiter *limiter.ReqLimiter

	version string
	origins []string
	maxBody int64

	pprofPort int
	expPort   int
	reqBurst  int
	reqMinute int
	devMode   bool
	reqLogs   int
}

// New creates the codec server, see the With* options.
func New(opts ...Option) *Server {
	s := &Server{
		resErr:     "",
		metrics:    nil,
		reqLimiter: nil,
		version:    "",
		origins:    nil,
		maxBody:    DefaultMaxBody,
		pprofPort:  0,
		expPort:    0,
		reqBurst:   0,
		reqMinute:  0,
		devMode:    false,
		reqLogs:    0,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.devMode {
		s.origins = append(s.origins, DevOrigins...)
	}

	if s.reqMinute > 0 {
		s.reqLimiter = limiter.New(s.reqBurst, s.reqMinute, s.devMode, s.resErr)
	}

	return s
}

// Handler returns the codec API wrapped by the middleware chain.
// The Prometheus middleware is only installed by Run.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.NotFound(s.resErr.InvalidPath)
	r.MethodNotAllowed(s.resErr.MethodNotAllowed)

	r.Post("/encode", s.encode)
	r.Post("/decode", s.decode)
	r.Get("/len/encoded/{n}", s.encodedLen)
	r.Post("/len/decoded", s.decodedLen)
	r.Get("/version", s.versionInfo)

	return s.middlewares().Then(r)
}

func (s *Server) middlewares() chain.Chain {
	return chain.New(
		security.RejectLineBreakInURI(s.resErr),
		s.requestLogger(),
		s.rateLimiter(),
		s.serverHeader(),
		s.corsHandler(),
	)
}

func (s *Server) requestLogger() chain.Middleware {
	switch s.reqLogs {
	case 0:
		return nil
	case 1:
		return reqlog.LogRequests
	default:
		return reqlog.LogVerbose
	}
}

func (s *Server) rateLimiter() chain.Middleware {
	if s.reqLimiter == nil {
		return nil
	}
	return s.reqLimiter.Limit
}

func (s *Server) serverHeader() chain.Middleware {
	if s.version == "" {
		return nil
	}
	return ServerHeader(s.version)
}

func (s *Server) corsHandler() chain.Middleware {
	if len(s.origins) == 0 {
		return nil
	}
	return cors.Handler(s.origins, s.devMode)
}

// Run serves the codec API until ctx is done, then shuts the server down.
// Optionally it also starts the metrics and the PProf servers in background.
// The rate limiter cleanup stops with the server.
func (s *Server) Run(ctx context.Context, port int) error {
	defer s.reqLimiter.Stop()

	pprof.StartServer(s.pprofPort)

	mw, connState := s.metrics.StartServer(s.expPort)

	server := http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           mw.Then(s.Handler()),
		TLSConfig:         nil,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 1 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       10 * time.Second,
		MaxHeaderBytes:    1024,
		TLSNextProto:      nil,
		ConnState:         connState,
		ErrorLog:          nil,
		BaseContext:       nil,
		ConnContext:       nil,
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		done <- server.Shutdown(shutdownCtx) //nolint:contextcheck // parent is already done
	}()

	log.Info("Server listening on http://localhost" + server.Addr)

	err := server.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		log.Error("Try to listen port", port, ": sudo ncat -l", port)
		log.Error("Get the process using port", port, ": sudo ss -pan | grep", port)
		return err
	}

	return <-done
}

// ServerHeader sets the Server HTTP header in the response.
func ServerHeader(version string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log.Info("Middleware response HTTP header: Set Server", version)

		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Server", version)
				next.ServeHTTP(w, r)
			})
	}
}
