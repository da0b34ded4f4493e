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

const (
	fieldPerDay = "per_day"
	fieldItems  = "items"
	fieldMeals  = "meals"
)

// Extraction is the outcome of walking a per_day list.
type Extraction struct {
	// Items holds the coerced items in traversal order.
	Items []Item
	// Dropped counts item candidates that failed coercion.
	Dropped int
	// SkippedDays counts day entries that were not objects or matched neither shape.
	SkippedDays int
}

// Extract walks perDay in order and collects every item candidate that
// coerces cleanly. Days are read as Shape A (items) first, then Shape B
// (meals[].items); anything else is skipped.
func Extract(perDay []any) Extraction {
	var ex Extraction
	for _, rawDay := range perDay {
		day, ok := coerce.Object(rawDay)
		if !ok {
			ex.SkippedDays++
			continue
		}

		if items, ok := coerce.List(day[fieldItems]); ok {
			ex.collect(items)
			continue
		}

		meals, ok := coerce.List(day[fieldMeals])
		if !ok {
			ex.SkippedDays++
			continue
		}
		for _, rawMeal := range meals {
			meal, ok := coerce.Object(rawMeal)
			if !ok {
				continue
			}
			if items, ok := coerce.List(meal[fieldItems]); ok {
				ex.collect(items)
			}
		}
	}
	return ex
}

func (ex *Extraction) collect(candidates []any) {
	for _, c := range candidates {
		it, ok := ParseItem(c)
		if !ok {
			ex.Dropped++
			continue
		}
		ex.Items = append(ex.Items, it)
	}
}
