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
	"log/slog"
	"net/http"

	"github.com/nutriai/nutriai-api/pkg/config"
	"github.com/nutriai/nutriai-api/pkg/info"
	"github.com/nutriai/nutriai-api/pkg/logging"
	"github.com/nutriai/nutriai-api/pkg/mealplan"
	"github.com/nutriai/nutriai-api/pkg/server"
	"github.com/nutriai/nutriai-api/pkg/shopping"
)

const (
	name           = "nutriaid"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/nutriai/nutriai-api/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the application route table for settings.
func Routes(settings config.Settings) map[string]http.HandlerFunc {
	ih := info.NewHandler(settings)
	mh := mealplan.NewHandler(settings)
	sh := shopping.NewHandler()

	return map[string]http.HandlerFunc{
		"/":                   ih.HandleRoot,
		"/__env":              ih.HandleEnv,
		"/__whoami":           ih.HandleWhoAmI,
		"/generate_meal_plan": mh.HandleGenerate,
		"/shopping_aggregate": sh.HandleAggregate,
	}
}

// Serve starts the API server with settings read from the environment and
// blocks until shutdown.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	return Run(context.Background(), config.FromEnv())
}

// Run serves the API with the given settings until ctx is done or the
// process receives SIGINT/SIGTERM. Options are applied after the defaults.
func Run(ctx context.Context, settings config.Settings, opts ...server.Option) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"schema", config.SchemaName,
		"apiVersion", config.AppVersion,
		"demo", settings.Demo,
	)

	s := server.New(append([]server.Option{
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(settings)),
	}, opts...)...)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
