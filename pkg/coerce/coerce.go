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

// Package coerce converts loosely typed decoded values (from JSON or YAML)
// into Go scalars using lenient, schema-style rules.
//
// Every function reports success with a bool instead of an error: callers
// decide whether a failed conversion drops the value or rejects the request.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// String accepts only string values. Numbers and booleans are not stringified.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Float converts numbers, booleans and numeric strings to a finite float64.
// Strings are trimmed before parsing. NaN and infinities are rejected.
func Float(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case int32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case uint:
		f = float64(t)
	case json.Number:
		parsed, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case bool:
		if t {
			f = 1
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// twoTo63 bounds the int64 range for float inputs.
const twoTo63 = 1 << 63

// Int converts integers, integral floats, booleans and integral numeric
// strings to int. Every input form shares one rule: the value must be
// integral and fit in int64. Values with a fractional part are rejected.
func Int(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), true
		}
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return int(i), true
		}
	}

	f, ok := Float(v)
	if !ok || f != math.Trunc(f) || f < -twoTo63 || f >= twoTo63 {
		return 0, false
	}
	return int(f), true
}

// List reports whether v is a decoded array.
func List(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// Object reports whether v is a decoded object.
func Object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}
