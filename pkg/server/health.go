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
	"time"

	nerrors "github.com/nutriai/nutriai-api/pkg/errors"
	"github.com/nutriai/nutriai-api/pkg/serializer"
)

// HealthResponse represents the liveness response.
type HealthResponse struct {
	OK bool `json:"ok" yaml:"ok"`
}

// ReadyResponse represents the readiness response.
type ReadyResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{OK: true})
}

// handleReady handles GET /ready
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()

	if !ready {
		serializer.RespondJSON(w, http.StatusServiceUnavailable, ReadyResponse{
			Status:    "not_ready",
			Timestamp: time.Now().UTC(),
			Reason:    "service is not accepting traffic",
		})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ReadyResponse{
		Status:    "ready",
		Timestamp: time.Now().UTC(),
	})
}

// handleNotFound answers any path without a registered handler.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusNotFound, nerrors.ErrCodeNotFound, "Not Found", false,
		map[string]any{"path": r.URL.Path})
}

// allowGet rejects anything but GET and HEAD with a 405, reporting whether
// the request may proceed.
func allowGet(w http.ResponseWriter, r *http.Request) bool {
	return AllowMethods(w, r, http.MethodGet, http.MethodHead)
}

// AllowMethods writes a 405 with an Allow header unless r.Method is listed.
func AllowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}

	allow := ""
	for i, m := range methods {
		if i > 0 {
			allow += ", "
		}
		allow += m
	}
	w.Header().Set("Allow", allow)
	WriteError(w, r, http.StatusMethodNotAllowed, nerrors.ErrCodeMethodNotAllowed,
		"Method Not Allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": methods,
		})
	return false
}
