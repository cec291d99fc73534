// Copyright 2022 Teal.Finance/tiny64 contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec under the MIT License.
// SPDX-License-Identifier: MIT

package tiny64

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/teal-finance/tiny64/b64"
	"github.com/teal-finance/tiny64/metrics"
)

//easyjson:json
type lenResponse struct {
	Len int `json:"len"`
}

//easyjson:json
type versionResponse struct {
	Version    string `json:"version"`
	Short      string `json:"short,omitempty"`
	LastCommit string `json:"last_commit,omitempty"`
}

// encode replies the Base64 text of the raw request body.
func (s *Server) encode(w http.ResponseWriter, r *http.Request) {
	bin, ok := s.readBody(w, r)
	if !ok {
		return
	}

	txt := make([]byte, b64.EncodedLen(len(bin)))
	n := b64.Encode(txt, bin)
	s.metrics.Codec(metrics.OpEncode, len(bin), n)

	s.reply(w, r, "text/plain; charset=utf-8", txt[:n])
}

// decode replies the bytes of the Base64 request body.
// Malformed text is rejected unless the query contains lenient=true.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) {
	lenient, err := parseBool(r.URL.Query().Get("lenient"))
	if err != nil {
		s.resErr.Write(w, r, http.StatusBadRequest, "lenient must be a boolean")
		return
	}

	txt, ok := s.readBody(w, r)
	if !ok {
		return
	}
	txt = bytes.TrimSpace(txt)

	var bin []byte
	if lenient {
		bin = make([]byte, b64.MaxDecodedLen(len(txt)))
		bin = bin[:b64.Decode(bin, txt)]
	} else {
		bin = make([]byte, b64.DecodedLen(txt))
		n, err := b64.DecodeStrict(bin, txt)
		if err != nil {
			s.metrics.Corrupt()
			s.resErr.Write(w, r, http.StatusBadRequest, err.Error())
			log.Debug("decode:", err)
			return
		}
		bin = bin[:n]
	}

	s.metrics.Codec(metrics.OpDecode, len(txt), len(bin))

	s.reply(w, r, "application/octet-stream", bin)
}

// encodedLen replies the Base64 length of n bytes.
func (s *Server) encodedLen(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil || n < 0 {
		s.resErr.Write(w, r, http.StatusBadRequest, "want a positive integer")
		return
	}

	s.replyJSON(w, r, lenResponse{Len: b64.EncodedLen(n)})
}

// decodedLen replies the number of bytes represented by the Base64 request body.
func (s *Server) decodedLen(w http.ResponseWriter, r *http.Request) {
	txt, ok := s.readBody(w, r)
	if !ok {
		return
	}

	s.replyJSON(w, r, lenResponse{Len: b64.DecodedLen(bytes.TrimSpace(txt))})
}

func (s *Server) versionInfo(w http.ResponseWriter, r *http.Request) {
	info := VersionInfo(s.version)

	resp := versionResponse{Version: info[0]}
	for _, line := range info[1:] {
		if short, ok := strings.CutPrefix(line, shortPrefix); ok {
			resp.Short = short
		}
		if commit, ok := strings.CutPrefix(line, lastCommitPrefix); ok {
			resp.LastCommit = commit
		}
	}

	s.replyJSON(w, r, resp)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err == nil {
		return body, true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.resErr.Write(w, r, http.StatusRequestEntityTooLarge,
			"Request body exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
		return nil, false
	}

	s.resErr.Write(w, r, http.StatusBadRequest, "Cannot read request body")
	log.Warning("read body", r.Method, r.URL.Path, err)
	return nil, false
}

type jsonMarshaler interface {
	MarshalJSON() ([]byte, error)
}

func (s *Server) replyJSON(w http.ResponseWriter, r *http.Request, v jsonMarshaler) {
	b, err := v.MarshalJSON()
	if err != nil {
		s.resErr.Write(w, r, http.StatusInternalServerError, "Cannot serialize the response")
		log.Error("MarshalJSON", v, err)
		return
	}

	s.reply(w, r, "application/json", b)
}

// reply sets the ETag and answers 304 Not Modified to the GET requests
// having a matching If-None-Match header.
func (s *Server) reply(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	tag := ETag(body)
	w.Header().Set("ETag", tag)

	if r.Method == http.MethodGet && r.Header.Get("If-None-Match") == tag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if _, err := w.Write(body); err != nil {
		log.Warning("write", r.Method, r.URL.Path, err)
	}
}

// parseBool accepts the empty string as false.
func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
