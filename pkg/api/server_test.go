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

package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nutriai/nutriai-api/pkg/config"
	"github.com/nutriai/nutriai-api/pkg/server"
)

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	if name != "nutriaid" {
		t.Errorf("name = %q, want %q", name, "nutriaid")
	}
	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}
	if version == "" || commit == "" || date == "" {
		t.Error("build variables should not be empty")
	}
}

// TestRouteConfiguration verifies that every application route is registered
func TestRouteConfiguration(t *testing.T) {
	routes := Routes(config.Settings{})

	want := []string{"/", "/__env", "/__whoami", "/generate_meal_plan", "/shopping_aggregate"}
	for _, path := range want {
		if h, ok := routes[path]; !ok || h == nil {
			t.Errorf("expected %s route to be registered", path)
		}
	}
	if len(routes) != len(want) {
		t.Errorf("expected exactly %d routes, got %d", len(want), len(routes))
	}
}

func newTestHandler(settings config.Settings) http.Handler {
	return server.New(server.WithHandler(Routes(settings))).Handler()
}

// TestEndpoints drives the wired handler the way a client would
func TestEndpoints(t *testing.T) {
	h := newTestHandler(config.Settings{Demo: true})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantJSON   string
	}{
		{
			name:       "root",
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
			wantJSON:   `{"message":"NutriAI API OK","schema":"per_day_items_v1","version":"v1.2","demo":true}`,
		},
		{
			name:       "health",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusOK,
			wantJSON:   `{"ok":true}`,
		},
		{
			name:       "env",
			method:     http.MethodGet,
			path:       "/__env",
			wantStatus: http.StatusOK,
			wantJSON:   `{"schema":"per_day_items_v1","version":"v1.2","demo":true,"NUTRIAI_DEMO":null}`,
		},
		{
			name:       "aggregate",
			method:     http.MethodPost,
			path:       "/shopping_aggregate",
			body:       `{"per_day":[{"day":1,"items":[{"name":"Rice","qty":100,"unit":" g "},{"name":"rice","qty":50,"unit":"g"}]}]}`,
			wantStatus: http.StatusOK,
			wantJSON:   `{"Rice":{"qty":150,"unit":"g"}}`,
		},
		{
			name:       "aggregate without per_day",
			method:     http.MethodPost,
			path:       "/shopping_aggregate",
			body:       `{}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "plan out of range",
			method:     http.MethodPost,
			path:       "/generate_meal_plan",
			body:       `{"age":30,"gender":"f","weight":60,"goal":"x","days":15}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown path",
			method:     http.MethodGet,
			path:       "/v1/recipe",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d; body: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantJSON != "" {
				assertJSONEqual(t, tt.wantJSON, w.Body.String())
			}
			if w.Header().Get("X-Request-Id") == "" && tt.path != "/health" {
				t.Error("expected X-Request-Id header on application routes")
			}
		})
	}
}

// TestPlanFeedsAggregator verifies a generated plan is a valid aggregation payload
func TestPlanFeedsAggregator(t *testing.T) {
	h := newTestHandler(config.Settings{Demo: true})

	req := httptest.NewRequest(http.MethodPost, "/generate_meal_plan",
		strings.NewReader(`{"age":30,"gender":"f","weight":60,"goal":"x","days":2}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("plan failed: %d %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/shopping_aggregate", strings.NewReader(w.Body.String()))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("aggregate failed: %d %s", w.Code, w.Body.String())
	}

	want := `{"Riz":{"qty":400,"unit":"g"},"Poulet":{"qty":300,"unit":"g"},"Pomme":{"qty":2,"unit":"pc"}}`
	if got := strings.TrimSpace(w.Body.String()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

// TestEndpointConcurrency tests that the handlers are safe for concurrent use
func TestEndpointConcurrency(t *testing.T) {
	h := newTestHandler(config.Settings{})

	const numRequests = 10
	done := make(chan int, numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodPost, "/shopping_aggregate",
				strings.NewReader(`{"per_day":[{"items":[{"name":"Σ","qty":1,"unit":"g"}]}]}`))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			done <- w.Code
		}()
	}

	timeout := time.After(5 * time.Second)
	for i := 0; i < numRequests; i++ {
		select {
		case code := <-done:
			if code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, code)
			}
		case <-timeout:
			t.Fatal("timeout waiting for concurrent requests to complete")
		}
	}
}

// TestRunStopsOnContextCancel verifies Run returns cleanly once ctx is done
func TestRunStopsOnContextCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := Run(ctx, config.Settings{}, server.WithPort(port)); err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}

func assertJSONEqual(t *testing.T, want, got string) {
	t.Helper()
	var w, g any
	if err := json.Unmarshal([]byte(want), &w); err != nil {
		t.Fatalf("invalid expected JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(got), &g); err != nil {
		t.Fatalf("invalid response JSON %q: %v", got, err)
	}
	wb, _ := json.Marshal(w)
	gb, _ := json.Marshal(g)
	if string(wb) != string(gb) {
		t.Errorf("expected %s, got %s", wb, gb)
	}
}
