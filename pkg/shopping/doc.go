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

// Package shopping turns per-day meal plans into an aggregated shopping list.
//
// # Payload Shapes
//
// The aggregator accepts a top-level object with a per_day list. Each day may
// use either layout, and the two may be mixed within one request:
//
//	Shape A: {"day": 1, "items": [{"name": "Rice", "qty": 100, "unit": "g"}]}
//	Shape B: {"day": 1, "meals": [{"items": [{"name": "Rice", "qty": 100, "unit": "g"}]}]}
//
// When a day carries a list-valued items field it is read as Shape A and its
// meals are ignored.
//
// # Tolerance
//
// Only a missing or non-list per_day is an error (ErrPerDayNotList). Day
// entries that are not objects or match neither shape are skipped, and item
// candidates that cannot be coerced to {name, qty, unit} are dropped. Neither
// case is reported to the caller.
//
// # Aggregation
//
// Items are grouped by (lower(trim(name)), trim(unit)) and their quantities
// summed with plain float64 addition. Each group is listed under the original
// spelling of the first item seen for it, and the Result preserves the order
// in which groups were first seen.
package shopping
