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
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//
// Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	default:
		slog.Debug("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// FromReader decodes a JSON or YAML document from r into generic values,
// the same shapes DecodeBody produces.
func FromReader(format Format, r io.Reader) (any, error) {
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}
	if r == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return decodeBytes(data, format)
}

// FromFile decodes the document at path. The path "-" reads stdin as JSON
// unless format says otherwise; an empty format is inferred from the extension.
func FromFile(path string, format Format) (any, error) {
	if path == "-" {
		if format == "" {
			format = FormatJSON
		}
		return FromReader(format, os.Stdin)
	}

	if format == "" {
		format = FormatFromPath(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return FromReader(format, f)
}
