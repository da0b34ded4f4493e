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

package shopping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Entry is the aggregated quantity for one shopping-list line.
type Entry struct {
	Qty  float64 `json:"qty" yaml:"qty"`
	Unit string  `json:"unit" yaml:"unit"`
}

// Result maps display names to entries and remembers insertion order.
// Setting a name that is already present replaces its entry in place.
// The zero value is an empty Result ready to use.
type Result struct {
	names   []string
	entries map[string]Entry
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{entries: make(map[string]Entry)}
}

// Set stores e under name.
func (r *Result) Set(name string, e Entry) {
	if r.entries == nil {
		r.entries = make(map[string]Entry)
	}
	if _, exists := r.entries[name]; !exists {
		r.names = append(r.names, name)
	}
	r.entries[name] = e
}

// Get returns the entry stored under name.
func (r *Result) Get(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Len returns the number of entries.
func (r *Result) Len() int {
	return len(r.names)
}

// Names returns the display names in insertion order.
func (r *Result) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Map returns the entries as a plain map.
func (r *Result) Map() map[string]Entry {
	out := make(map[string]Entry, len(r.entries))
	for k, v := range r.entries {
		out[k] = v
	}
	return out
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.entries[name])
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the entries as a YAML mapping in insertion order.
func (r *Result) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range r.names {
		var val yaml.Node
		if err := val.Encode(r.entries[name]); err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&val,
		)
	}
	return node, nil
}

// TableRows renders one row per entry for tabular output.
func (r *Result) TableRows() ([]string, [][]string) {
	rows := make([][]string, 0, len(r.names))
	for _, name := range r.names {
		e := r.entries[name]
		rows = append(rows, []string{name, strconv.FormatFloat(e.Qty, 'g', -1, 64), e.Unit})
	}
	return []string{"NAME", "QTY", "UNIT"}, rows
}
