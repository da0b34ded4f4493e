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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"plan.json": FormatJSON,
		"PLAN.YAML": FormatYAML,
		"plan.yml":  FormatYAML,
		"plan.txt":  FormatJSON,
		"plan":      FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestFromReader(t *testing.T) {
	v, err := FromReader(FormatYAML, strings.NewReader("per_day: []\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(map[string]any)["per_day"].([]any); !ok {
		t.Errorf("expected per_day list, got %#v", v)
	}

	if _, err := FromReader(FormatTable, strings.NewReader("x")); err == nil {
		t.Error("expected error for table format")
	}
	if _, err := FromReader(FormatJSON, nil); err == nil {
		t.Error("expected error for nil reader")
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	if err := os.WriteFile(path, []byte("per_day:\n  - day: 1\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	v, err := FromFile(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(map[string]any); !ok {
		t.Errorf("expected object, got %T", v)
	}

	if _, err := FromFile(filepath.Join(dir, "missing.json"), ""); err == nil {
		t.Error("expected error for missing file")
	}
}
