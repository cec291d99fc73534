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

// Package cors restricts the browser origins allowed to call the codec API.
package cors

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
	"github.com/teal-finance/emo"
)

var log = emo.NewZone("cors")

// Handler allows GET and POST from the given origin prefixes.
// Without origins, only same-origin requests are served.
func Handler(origins []string, debug bool) func(next http.Handler) http.Handler {
	options := cors.Options{
		AllowedOrigins:         []string{},
		AllowOriginFunc:        nil,
		AllowOriginRequestFunc: nil,
		AllowedMethods:         []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:         []string{"Origin", "Accept", "Content-Type", "If-None-Match"},
		ExposedHeaders:         []string{"ETag"},
		MaxAge:                 24 * 3600,
		AllowCredentials:       false,
		OptionsPassthrough:     false,
		OptionsSuccessStatus:   http.StatusNoContent,
		Debug:                  debug,
	}

	origins = InsertSchema(origins)

	if len(origins) == 1 {
		options.AllowOriginFunc = oneOrigin(origins[0])
	} else {
		options.AllowOriginFunc = multipleOriginPrefixes(origins)
	}

	log.Info("CORS: Methods", options.AllowedMethods,
		"Headers", options.AllowedHeaders, "MaxAge", options.MaxAge)

	return cors.New(options).Handler
}

// InsertSchema returns a copy of origins where "http://" prefixes
// the addresses without schema.
func InsertSchema(origins []string) []string {
	out := make([]string, len(origins))
	for i, o := range origins {
		if !strings.HasPrefix(o, "https://") && !strings.HasPrefix(o, "http://") {
			o = "http://" + o
		}
		out[i] = o
	}
	return out
}

func oneOrigin(addr string) func(string) bool {
	log.Info("CORS: Set one origin:", addr)

	return func(origin string) bool {
		return origin == addr
	}
}

func multipleOriginPrefixes(addrPrefixes []string) func(origin string) bool {
	log.Info("CORS: Set origin prefixes:", addrPrefixes)

	return func(origin string) bool {
		for _, prefix := range addrPrefixes {
			if strings.HasPrefix(origin, prefix) {
				return true
			}
		}

		log.Debug("CORS: Refuse", origin, "without prefixes", addrPrefixes)

		return false
	}
}
