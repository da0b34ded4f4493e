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

// Package info serves the static service-description endpoints.
package info

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/nutriai/nutriai-api/pkg/config"
	"github.com/nutriai/nutriai-api/pkg/serializer"
	"github.com/nutriai/nutriai-api/pkg/server"
)

// RootMessage is the greeting returned by GET /.
const RootMessage = "NutriAI API OK"

// RootResponse is the body of GET /.
type RootResponse struct {
	Message string `json:"message"`
	Schema  string `json:"schema"`
	Version string `json:"version"`
	Demo    bool   `json:"demo"`
}

// EnvResponse is the body of GET /__env. NutriAIDemo is null when the
// variable was unset at startup.
type EnvResponse struct {
	Schema      string  `json:"schema"`
	Version     string  `json:"version"`
	Demo        bool    `json:"demo"`
	NutriAIDemo *string `json:"NUTRIAI_DEMO"`
}

// WhoAmIResponse is the body of GET /__whoami.
type WhoAmIResponse struct {
	File string `json:"file"`
}

// Handler serves the info endpoints from Settings captured at startup.
type Handler struct {
	settings   config.Settings
	executable func() (string, error)
}

// NewHandler returns a Handler reporting settings.
func NewHandler(settings config.Settings) *Handler {
	return &Handler{
		settings:   settings,
		executable: os.Executable,
	}
}

// HandleRoot handles GET /
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethods(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, RootResponse{
		Message: RootMessage,
		Schema:  config.SchemaName,
		Version: config.AppVersion,
		Demo:    h.settings.Demo,
	})
}

// HandleEnv handles GET /__env
func (h *Handler) HandleEnv(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethods(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, EnvResponse{
		Schema:      config.SchemaName,
		Version:     config.AppVersion,
		Demo:        h.settings.Demo,
		NutriAIDemo: h.settings.DemoRaw,
	})
}

// HandleWhoAmI handles GET /__whoami by reporting the absolute path of the
// running executable.
func (h *Handler) HandleWhoAmI(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethods(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	file, err := h.executable()
	if err != nil {
		slog.Error("failed to resolve executable", "error", err)
		server.WriteErrorFromErr(w, r, err, "Failed to resolve executable path", nil)
		return
	}
	if resolved, err := filepath.EvalSymlinks(file); err == nil {
		file = resolved
	}
	if abs, err := filepath.Abs(file); err == nil {
		file = abs
	}

	serializer.RespondJSON(w, http.StatusOK, WhoAmIResponse{File: file})
}
