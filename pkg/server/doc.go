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

// Package server hosts HTTP handlers behind a shared production stack.
//
// The server wraps the handlers it is given with:
//
//   - Request ID tracking (X-Request-Id)
//   - API version negotiation (X-API-Version)
//   - Panic recovery returning structured 500 errors
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Request logging through log/slog
//   - Prometheus RED metrics
//
// Every route, including preflight requests, passes through a permissive
// CORS layer (github.com/rs/cors).
//
// # System Endpoints
//
//   - GET /health  - liveness, always {"ok": true}
//   - GET /ready   - readiness, 503 while starting or draining
//   - GET /metrics - Prometheus exposition
//
// Paths without a handler receive a structured 404. A handler registered
// at "/" matches only the root path.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("nutriaid"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/shopping_aggregate": h.HandleAggregate,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run stops on SIGINT or SIGTERM and drains in-flight requests within
// Config.ShutdownTimeout. When started by systemd with Type=notify, the
// server reports READY=1 once listening and STOPPING=1 on shutdown.
//
// # Configuration
//
//   - PORT: listen port (default 10000)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget (default 30)
//
// # Errors
//
// Error responses share one shape:
//
//	{
//	  "detail": "per_day must be a list",
//	  "code": "VALIDATION_FAILED",
//	  "message": "per_day must be a list",
//	  "requestId": "4f1c...",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": false
//	}
package server
