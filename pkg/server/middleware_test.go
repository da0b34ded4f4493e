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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func newBareServer(limit rate.Limit, burst int) *Server {
	cfg := NewConfig()
	cfg.RateLimit = limit
	cfg.RateLimitBurst = burst
	return &Server{
		config:      cfg,
		rateLimiter: rate.NewLimiter(limit, burst),
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	provided := uuid.New().String()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "generates when missing", header: ""},
		{name: "replaces invalid", header: "not-a-uuid"},
		{name: "keeps valid", header: provided, wantSame: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newBareServer(100, 200)

			var captured string
			handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				captured = RequestIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if _, err := uuid.Parse(captured); err != nil {
				t.Errorf("expected valid UUID, got %q", captured)
			}
			if tt.wantSame && captured != tt.header {
				t.Errorf("expected %s, got %s", tt.header, captured)
			}
			if !tt.wantSame && captured == tt.header {
				t.Errorf("expected a generated ID, got %s", captured)
			}
			if rec.Header().Get("X-Request-Id") != captured {
				t.Errorf("expected X-Request-Id header %s, got %s", captured, rec.Header().Get("X-Request-Id"))
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	s := newBareServer(0, 1)

	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	first := httptest.NewRecorder()
	handler(first, httptest.NewRequest(http.MethodGet, "/test", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}
	if first.Header().Get("X-RateLimit-Limit") == "" {
		t.Error("expected X-RateLimit-Limit header")
	}

	second := httptest.NewRecorder()
	handler(second, httptest.NewRequest(http.MethodGet, "/test", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, second.Code)
	}
	if second.Header().Get("Retry-After") != "1" {
		t.Errorf("expected Retry-After 1, got %q", second.Header().Get("Retry-After"))
	}

	var resp ErrorResponse
	if err := json.Unmarshal(second.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !resp.Retryable {
		t.Error("expected rate limit error to be retryable")
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newBareServer(100, 200)

	handler := s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/test", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Code != "INTERNAL" {
		t.Errorf("expected code INTERNAL, got %s", resp.Code)
	}
}

func TestVersionMiddleware(t *testing.T) {
	s := newBareServer(100, 200)

	var captured any
	handler := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Context().Value(contextKeyAPIVersion)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	if captured != DefaultAPIVersion {
		t.Errorf("expected %s in context, got %v", DefaultAPIVersion, captured)
	}
	if rec.Header().Get("X-API-Version") != DefaultAPIVersion {
		t.Errorf("expected X-API-Version %s, got %s", DefaultAPIVersion, rec.Header().Get("X-API-Version"))
	}
}

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"empty", "", "v1"},
		{"plain json", "application/json", "v1"},
		{"vendor v1", "application/vnd.nutriai.v1+json", "v1"},
		{"vendor with params", "text/html, application/vnd.nutriai.v1+json; q=0.9", "v1"},
		{"unsupported version", "application/vnd.nutriai.v9+json", "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if got := negotiateAPIVersion(req); got != tt.want {
				t.Errorf("negotiateAPIVersion() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResponseWriterIgnoresSecondWriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.Status() != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, rw.Status())
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected recorded status %d, got %d", http.StatusCreated, rec.Code)
	}
}

func TestTimeoutMiddleware(t *testing.T) {
	s := newBareServer(100, 200)
	s.config.HandlerTimeout = time.Minute

	var hasDeadline bool
	handler := s.timeoutMiddleware(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusOK)
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	if !hasDeadline {
		t.Error("expected request context to carry a deadline")
	}
}
