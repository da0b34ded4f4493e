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
	"github.com/nutriai/nutriai-api/pkg/coerce"
)

// Item is one ingredient quantity taken from a plan.
type Item struct {
	Name string  `json:"name" yaml:"name"`
	Qty  float64 `json:"qty" yaml:"qty"`
	Unit string  `json:"unit" yaml:"unit"`
}

// ParseItem coerces a decoded candidate into an Item. name and unit must be
// present strings and qty must convert to a finite number; anything else
// reports false. Unknown fields are ignored.
func ParseItem(raw any) (Item, bool) {
	obj, ok := coerce.Object(raw)
	if !ok {
		return Item{}, false
	}

	name, ok := coerce.String(obj["name"])
	if !ok {
		return Item{}, false
	}
	qty, ok := coerce.Float(obj["qty"])
	if !ok {
		return Item{}, false
	}
	unit, ok := coerce.String(obj["unit"])
	if !ok {
		return Item{}, false
	}

	return Item{Name: name, Qty: qty, Unit: unit}, true
}
