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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// Serialize first to detect errors before writing headers
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

// FormatFromContentType maps a request Content-Type to a decode format.
// YAML media types select FormatYAML; everything else decodes as JSON.
func FormatFromContentType(contentType string) Format {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	// Extract media type (strip charset and other params)
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeBody reads a JSON or YAML document from body, choosing the format
// from contentType, and returns it as generic values: objects become
// map[string]any, arrays []any, JSON numbers json.Number.
func DecodeBody(body io.Reader, contentType string) (any, error) {
	if body == nil {
		return nil, fmt.Errorf("request body cannot be nil")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("request body is empty")
	}

	return decodeBytes(data, FormatFromContentType(contentType))
}

// DecodeObject is DecodeBody restricted to documents whose top level is an object.
func DecodeObject(body io.Reader, contentType string) (map[string]any, error) {
	v, err := DecodeBody(body, contentType)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("request body must be an object, got %s", typeName(v))
	}
	return obj, nil
}

// DecodeObjectContext is DecodeObject bounded by ctx: reading stops once ctx
// is done and the context error is returned.
func DecodeObjectContext(ctx context.Context, body io.Reader, contentType string) (map[string]any, error) {
	if body == nil {
		return nil, fmt.Errorf("request body cannot be nil")
	}
	obj, err := DecodeObject(&contextReader{ctx: ctx, r: body}, contentType)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	return obj, err
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func decodeBytes(data []byte, format Format) (any, error) {
	var v any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse YAML body: %w", err)
		}
		return normalizeYAML(v), nil
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to parse JSON body: %w", err)
		}
		if dec.More() {
			return nil, fmt.Errorf("failed to parse JSON body: trailing data after document")
		}
		return v, nil
	}
}

// normalizeYAML converts map[any]any nodes (non-string keys) into
// map[string]any so callers see the same shapes as JSON decoding produces.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = normalizeYAML(child)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[fmt.Sprintf("%v", k)] = normalizeYAML(child)
		}
		return out
	case []any:
		for i, child := range t {
			t[i] = normalizeYAML(child)
		}
		return t
	default:
		return v
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, int, int64, uint64, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
