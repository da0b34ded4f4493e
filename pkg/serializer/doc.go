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

// Package serializer provides encoding and decoding of API payloads in multiple formats.
//
// # Overview
//
// The serializer package handles conversion between Go values and JSON, YAML,
// and human-readable tables. It is shared by the HTTP handlers (request
// decoding, JSON responses) and the CLI (plan files in, shopping lists out).
//
// # Supported Formats
//
// JSON:
//   - Default for request bodies and responses
//   - Numbers decode as json.Number so quantities keep their exact text
//
// YAML:
//   - Accepted for request bodies sent with a YAML Content-Type
//   - Used by the CLI for human-readable output
//
// Table:
//   - Write-only, for terminal viewing
//   - Values implementing Tabular render their own rows
//
// # Usage
//
// Decoding a request body:
//
//	payload, err := serializer.DecodeObject(r.Body, r.Header.Get("Content-Type"))
//
// Writing a response:
//
//	serializer.RespondJSON(w, http.StatusOK, result)
//
// Writing CLI output:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	err := w.Serialize(ctx, result)
package serializer
