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

// Package cli implements the nutriai command-line tool.
//
// # Commands
//
// serve - Run the HTTP API:
//
//	nutriai serve [--port 10000] [--demo]
//
// aggregate - Turn a plan document into a shopping list:
//
//	nutriai aggregate --input plan.yaml [--format json|yaml|table] [--output list.json]
//
// plan - Generate a meal plan:
//
//	nutriai plan --days 3 [--demo] [--format json|yaml|table]
//
// The two offline commands compose:
//
//	nutriai plan --days 7 --demo --output plan.json
//	nutriai aggregate --input plan.json --format table
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL     Logging verbosity
//	NUTRIAI_DEMO  Demo meal fill (1, true, yes, y, on)
//	PORT          Listen port for serve
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/nutriai/nutriai-api/pkg/cli.version=1.0.0'"
package cli
