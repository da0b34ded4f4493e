// Copyright (c) 2025, NutriAI Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

const corsWildcard = "*"

// anyMethodBase is the method list prebuilt for a "*" method policy.
var anyMethodBase = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// corsPolicy applies rs/cors. rs/cors matches methods exactly, so with a
// "*" method policy a request for a method outside anyMethodBase gets a
// policy extended with that method.
type corsPolicy struct {
	opts      cors.Options
	base      *cors.Cors
	anyMethod bool
}

// newCORS builds the cross-origin middleware. A wildcard origin combined
// with credentials reflects the request origin, since browsers refuse
// "Access-Control-Allow-Origin: *" on credentialed requests.
func newCORS(cfg CORSConfig) *corsPolicy {
	opts := cors.Options{
		AllowedOrigins:       cfg.AllowedOrigins,
		AllowedMethods:       cfg.AllowedMethods,
		AllowedHeaders:       cfg.AllowedHeaders,
		ExposedHeaders:       cfg.ExposedHeaders,
		AllowCredentials:     cfg.AllowCredentials,
		MaxAge:               cfg.MaxAge,
		OptionsSuccessStatus: http.StatusNoContent,
	}

	if cfg.AllowCredentials && slices.Contains(cfg.AllowedOrigins, corsWildcard) {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(string) bool { return true }
	}

	p := &corsPolicy{}
	if slices.Contains(cfg.AllowedMethods, corsWildcard) {
		p.anyMethod = true
		opts.AllowedMethods = slices.Clone(anyMethodBase)
	}
	p.opts = opts
	p.base = cors.New(opts)
	return p
}

// Handler wraps next with the policy.
func (p *corsPolicy) Handler(next http.Handler) http.Handler {
	base := p.base.Handler(next)
	if !p.anyMethod {
		return base
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := corsRequestMethod(r)
		if method == "" || slices.Contains(p.opts.AllowedMethods, method) {
			base.ServeHTTP(w, r)
			return
		}
		opts := p.opts
		opts.AllowedMethods = append(slices.Clone(p.opts.AllowedMethods), method)
		cors.New(opts).Handler(next).ServeHTTP(w, r)
	})
}

// corsRequestMethod is the method a request asks permission for: the
// Access-Control-Request-Method of a preflight, else its own method.
func corsRequestMethod(r *http.Request) string {
	if r.Method == http.MethodOptions {
		if m := r.Header.Get("Access-Control-Request-Method"); m != "" {
			return m
		}
	}
	return r.Method
}
