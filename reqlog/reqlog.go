// Copyright 2022 Teal.Finance/tiny64 contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec under the MIT License.
// SPDX-License-Identifier: MIT

// Package reqlog logs the incoming requests:
// requester IP, method, sanitized URI and optionally some request headers.
package reqlog

import (
	"net/http"

	"github.com/teal-finance/emo"

	"github.com/teal-finance/tiny64/security"
)

var log = emo.NewZone("req")

// LogRequests is the middleware logging the requester IP and the requested URI.
func LogRequests(next http.Handler) http.Handler {
	log.Info("Middleware logger: requester IP and sanitized URI")

	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			log.Info(Line(r))
			next.ServeHTTP(w, r)
		})
}

// LogVerbose is LogRequests plus some headers describing the requester.
func LogVerbose(next http.Handler) http.Handler {
	log.Info("Middleware logger: requester IP, sanitized URI and also: " + HeadersExplanation)

	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			log.Info(VerboseLine(r))
			next.ServeHTTP(w, r)
		})
}

// Line formats the requester IP and the requested URI.
func Line(r *http.Request) string {
	return "in  " + r.RemoteAddr + " " + r.Method + " " + security.SanitizeLineBreaks(r.RequestURI)
}

// VerboseLine is Line followed by the headers listed in HeadersExplanation.
func VerboseLine(r *http.Request) string {
	line := Line(r)
	for _, h := range []struct{ key, name string }{
		{"U", "User-Agent"},
		{"A", "Accept"},
		{"E", "Accept-Encoding"},
		{"T", "Content-Type"},
		{"N", "Content-Length"},
	} {
		if v := r.Header.Get(h.name); v != "" {
			line += " " + h.key + "=" + security.SanitizeLineBreaks(v)
		}
	}
	return line
}

// HeadersExplanation describes the abbreviations of VerboseLine.
const HeadersExplanation = `
U=User-Agent, name and version of the client.
A=Accept, the content types the client prefers.
E=Accept-Encoding, the compression formats the client supports.
T=Content-Type of the request body.
N=Content-Length of the request body.`
