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

package serializer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusCreated, map[string]any{"ok": true})

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"ok":true}` {
		t.Errorf("unexpected body %s", got)
	}
}

func TestRespondJSONEncodingFailure(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		ct   string
		want Format
	}{
		{"", FormatJSON},
		{"application/json", FormatJSON},
		{"application/json; charset=utf-8", FormatJSON},
		{"application/yaml", FormatYAML},
		{"Application/X-YAML", FormatYAML},
		{"text/yaml; charset=utf-8", FormatYAML},
		{"text/plain", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.ct, func(t *testing.T) {
			if got := FormatFromContentType(tt.ct); got != tt.want {
				t.Errorf("FormatFromContentType(%q) = %s, want %s", tt.ct, got, tt.want)
			}
		})
	}
}

func TestDecodeBody(t *testing.T) {
	t.Run("json keeps numbers exact", func(t *testing.T) {
		v, err := DecodeBody(strings.NewReader(`{"qty": 0.1, "n": 3}`), "application/json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		obj := v.(map[string]any)
		if _, ok := obj["qty"].(json.Number); !ok {
			t.Errorf("expected json.Number, got %T", obj["qty"])
		}
	})

	t.Run("yaml body", func(t *testing.T) {
		body := "per_day:\n  - day: 1\n    items:\n      - {name: Rice, qty: 100, unit: g}\n"
		v, err := DecodeBody(strings.NewReader(body), "application/yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		obj := v.(map[string]any)
		days, ok := obj["per_day"].([]any)
		if !ok || len(days) != 1 {
			t.Fatalf("expected one day, got %#v", obj["per_day"])
		}
		day := days[0].(map[string]any)
		if _, ok := day["items"].([]any); !ok {
			t.Errorf("expected items list, got %T", day["items"])
		}
	})

	t.Run("yaml non-string keys are normalized", func(t *testing.T) {
		v, err := DecodeBody(strings.NewReader("1: one\n2: two\n"), "text/yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := v.(map[string]any); !ok {
			t.Errorf("expected map[string]any, got %T", v)
		}
	})

	errorCases := []struct {
		name string
		body string
		ct   string
	}{
		{"empty", "", "application/json"},
		{"whitespace", "  \n", "application/json"},
		{"invalid json", `{"per_day": [`, "application/json"},
		{"invalid yaml", "per_day: [\n", "application/yaml"},
		{"trailing data", `{} {}`, "application/json"},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeBody(strings.NewReader(tt.body), tt.ct); err == nil {
				t.Error("expected error")
			}
		})
	}

	t.Run("nil body", func(t *testing.T) {
		if _, err := DecodeBody(nil, ""); err == nil {
			t.Error("expected error for nil body")
		}
	})
}

func TestDecodeObject(t *testing.T) {
	if _, err := DecodeObject(strings.NewReader(`{"per_day": []}`), ""); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, body := range []string{`[]`, `"text"`, `42`, `null`} {
		if _, err := DecodeObject(strings.NewReader(body), ""); err == nil {
			t.Errorf("expected error for body %s", body)
		}
	}
}
