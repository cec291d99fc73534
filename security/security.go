// Copyright (c) 2022 Teal.Finance contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec, under the MIT License.
// SPDX-License-Identifier: MIT

// Package security protects the logs against injection.
package security

import (
	"net/http"
	"strings"

	"github.com/teal-finance/emo"

	"github.com/teal-finance/tiny64/reserr"
)

var log = emo.NewZone("security")

// DoesContainLineBreak returns true if input string
// contains a Carriage Return "\r" or a Line Feed "\n"
// to prevent log injection.
func DoesContainLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

// SanitizeLineBreaks replaces
// Carriage Return "\r" by <CR> and
// Line Feed "\n" by <LF>.
func SanitizeLineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r", "<CR>")
	s = strings.ReplaceAll(s, "\n", "<LF>")
	return s
}

// RejectLineBreakInURI rejects HTTP requests having
// a Carriage Return "\r" or a Line Feed "\n"
// within the URI to prevent log injection.
func RejectLineBreakInURI(resErr reserr.ResErr) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log.Info("Middleware security: RejectLineBreakInURI")

		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				if DoesContainLineBreak(r.RequestURI) {
					resErr.Write(w, r, http.StatusBadRequest, "Invalid URI containing a line break (CR or LF)")
					log.Warning("reject URI with <CR> or <LF>:", SanitizeLineBreaks(r.RequestURI))
					return
				}

				next.ServeHTTP(w, r)
			})
	}
}
