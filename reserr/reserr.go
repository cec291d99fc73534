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

// Package reserr writes the JSON error responses of the HTTP API.
package reserr

import (
	"net/http"

	"github.com/teal-finance/emo"
)

var log = emo.NewZone("reserr")

const (
	pathInvalid      = "Path is not valid. Please refer to the documentation."
	methodNotAllowed = "Method not allowed on this path. Please refer to the documentation."
)

// ResErr is the documentation URL inserted in every error response.
type ResErr string

func New(docURL string) ResErr {
	return ResErr(docURL)
}

func (resErr ResErr) InvalidPath(w http.ResponseWriter, r *http.Request) {
	resErr.Write(w, r, http.StatusBadRequest, pathInvalid)
}

func (resErr ResErr) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	resErr.Write(w, r, http.StatusMethodNotAllowed, methodNotAllowed)
}

//easyjson:json
type msg struct {
	Error string `json:"error"`
	Doc   string `json:"doc,omitempty"`
	Path  string `json:"path,omitempty"`
	Query string `json:"query,omitempty"`
}

// Write replies the JSON error message.
// The easyjson marshaler escapes control characters and invalid UTF-8
// coming from the URL-decoded path.
func (resErr ResErr) Write(w http.ResponseWriter, r *http.Request, statusCode int, text string) {
	m := msg{
		Error: text,
		Doc:   string(resErr),
		Path:  "",
		Query: "",
	}

	if r != nil {
		m.Path = r.URL.Path
		m.Query = r.URL.RawQuery
	}

	b, err := m.MarshalJSON()
	if err != nil {
		log.Warning("ResErr MarshalJSON", m, "err:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	if _, err = w.Write(b); err != nil {
		log.Warning("ResErr Write", m, "err:", err)
	}
}
