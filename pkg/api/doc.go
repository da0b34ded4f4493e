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

// Package api provides the HTTP API layer for the NutriAI service.
//
// This package is a thin wrapper around pkg/server: it captures Settings
// once at startup and registers the application handlers.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /                    - service banner with schema, version and demo flag
//   - GET /__env               - the same plus the raw NUTRIAI_DEMO value
//   - GET /__whoami            - absolute path of the running executable
//   - POST /generate_meal_plan - stub plan for 1..14 days
//   - POST /shopping_aggregate - aggregated shopping list from per_day items
//
// System Endpoints (no rate limiting):
//   - GET /health  - {"ok": true}
//   - GET /ready   - readiness check
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -X POST http://localhost:10000/shopping_aggregate \
//	  -H "Content-Type: application/json" \
//	  -d '{"per_day":[{"day":1,"items":[{"name":"Rice","qty":100,"unit":"g"}]}]}'
//
// # Configuration
//
//   - PORT: HTTP server port (default: 10000)
//   - NUTRIAI_DEMO: fill generated plans with a demo meal (1, true, yes, y, on)
//   - LOG_LEVEL: logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/nutriai/nutriai-api/pkg/api.version=1.0.0'"
package api
