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

// Package defaults provides centralized configuration constants for the NutriAI API.
//
// This package defines timeout values, request limits, and server defaults used
// across the codebase. Centralizing these values keeps the HTTP server, the
// handlers, and the CLI consistent.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.HandlerTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - HTTP handlers: 15s, always below the server write timeout
//   - Server shutdown: 30s for graceful shutdown
package defaults
