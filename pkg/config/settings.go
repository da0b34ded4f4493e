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

package config

import (
	"os"
	"strings"
)

const (
	// EnvVarDemo toggles demo fill for generated meal plans.
	EnvVarDemo = "NUTRIAI_DEMO"

	// SchemaName identifies the per-day payload layout served by the API.
	SchemaName = "per_day_items_v1"

	// AppVersion is the public API version string.
	AppVersion = "v1.2"
)

// LookupFunc resolves an environment variable, reporting whether it is set.
type LookupFunc func(key string) (string, bool)

// Settings is the process-wide, read-only configuration captured at startup.
// It is passed to handlers explicitly; nothing mutates it after Load returns.
type Settings struct {
	// Demo enables demo fill in the meal-plan generator.
	Demo bool

	// DemoRaw is the raw NUTRIAI_DEMO value, nil when the variable is unset.
	DemoRaw *string
}

// Load builds Settings from the given lookup function.
func Load(lookup LookupFunc) Settings {
	if lookup == nil {
		return Settings{}
	}

	var s Settings
	if v, ok := lookup(EnvVarDemo); ok {
		raw := v
		s.DemoRaw = &raw
		s.Demo = ParseBool(v)
	}
	return s
}

// FromEnv builds Settings from the process environment.
func FromEnv() Settings {
	return Load(os.LookupEnv)
}

// ParseBool reports whether v is one of the accepted truthy spellings:
// 1, true, yes, y, on (case-insensitive, surrounding whitespace ignored).
func ParseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
