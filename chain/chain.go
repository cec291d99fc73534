// Copyright (c) 2014      Justinas Stankevicius
// Copyright (c) 2015-2016 contributors of alice
// Copyright (c) 2021-2022 Teal.Finance contributors
//
// This file is a modified copy from https://github.com/justinas/alice
//
// SPDX-License-Identifier: MIT

// Package chain composes the HTTP middleware of the codec API.
package chain

import "net/http"

// Middleware is a constructor function returning a http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain is a list of middleware applied in order:
// the first one receives the request first.
type Chain []Middleware

// New memorizes the middleware, nil ones are ignored.
func New(mw ...Middleware) Chain {
	return Chain{}.Append(mw...)
}

// Append returns a new chain with mw added at the end of the request flow.
// The receiver is never modified.
func (c Chain) Append(mw ...Middleware) Chain {
	out := make(Chain, 0, len(c)+len(mw))
	out = append(out, c...)
	for _, m := range mw {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

// Then wraps h: New(m1, m2).Then(h) is m1(m2(h)).
// A nil handler is replaced by http.DefaultServeMux.
func (c Chain) Then(h http.Handler) http.Handler {
	if h == nil {
		h = http.DefaultServeMux
	}
	for i := len(c) - 1; i >= 0; i-- {
		h = c[i](h)
	}
	return h
}

func (c Chain) ThenFunc(fn http.HandlerFunc) http.Handler {
	if fn == nil {
		return c.Then(nil)
	}
	return c.Then(fn)
}
