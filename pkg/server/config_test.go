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
	"testing"
	"time"

	"github.com/nutriai/nutriai-api/pkg/defaults"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")

	cfg := NewConfig()

	if cfg.Port != defaults.ServerPort {
		t.Errorf("expected port %d, got %d", defaults.ServerPort, cfg.Port)
	}
	if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
		t.Errorf("expected shutdown timeout %v, got %v", defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
	}
	if !cfg.CORS.AllowCredentials {
		t.Error("expected credentials to be allowed by default")
	}
}

func TestNewConfigPortFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{"valid", "8081", 8081},
		{"zero ignored", "0", defaults.ServerPort},
		{"out of range ignored", "70000", defaults.ServerPort},
		{"garbage ignored", "http", defaults.ServerPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.env)
			if got := NewConfig().Port; got != tt.want {
				t.Errorf("expected port %d, got %d", tt.want, got)
			}
		})
	}
}

func TestNewConfigShutdownTimeoutFromEnv(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")

	if got := NewConfig().ShutdownTimeout; got != 5*time.Second {
		t.Errorf("expected 5s, got %v", got)
	}
}
