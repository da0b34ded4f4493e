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

// Package logging configures structured JSON logging on top of log/slog.
//
// # Features
//
//   - JSON output to stderr with module and version attributes
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("nutriaid", "v1.2")
//	    slog.Info("aggregating", "days", 7)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("nutriai", "v1.2", "warn")
//
// Converting to a standard library logger (e.g. for http.Server.ErrorLog):
//
//	stdLogger := logging.NewLogLogger(slog.LevelError, false)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug nutriaid
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "nutriaid",
//	    "version": "v1.2",
//	    "port": 10000
//	}
package logging
