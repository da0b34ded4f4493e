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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nutriai/nutriai-api/pkg/coerce"
	nerrors "github.com/nutriai/nutriai-api/pkg/errors"
)

// ErrPerDayNotList is returned when the payload has no per_day field or the
// field is not a list.
var ErrPerDayNotList = nerrors.New(nerrors.ErrCodeValidation, "per_day must be a list")

// Key groups items: the trimmed, lower-cased name and the trimmed unit.
// Unit case is preserved.
type Key struct {
	Name string
	Unit string
}

// normalizer builds keys. It holds a Caser, which is stateful, so a
// normalizer must not be shared between goroutines.
type normalizer struct {
	lower cases.Caser
}

func newNormalizer() *normalizer {
	return &normalizer{lower: cases.Lower(language.Und)}
}

func (n *normalizer) key(it Item) Key {
	return Key{
		Name: n.lower.String(strings.TrimSpace(it.Name)),
		Unit: strings.TrimSpace(it.Unit),
	}
}

// KeyOf returns the aggregation key for it.
func KeyOf(it Item) Key {
	return newNormalizer().key(it)
}

// Aggregate sums quantities per Key. Each group appears once in the Result,
// under the name of the first item seen for it, in first-seen order.
// Sums use plain float64 addition and are not rounded.
func Aggregate(items []Item) *Result {
	n := newNormalizer()

	order := make([]Key, 0, len(items))
	totals := make(map[Key]float64, len(items))
	display := make(map[Key]string, len(items))

	for _, it := range items {
		k := n.key(it)
		if _, seen := display[k]; !seen {
			display[k] = it.Name
			order = append(order, k)
		}
		totals[k] += it.Qty
	}

	res := NewResult()
	for _, k := range order {
		res.Set(display[k], Entry{Qty: totals[k], Unit: k.Unit})
	}
	return res
}

// AggregatePayload validates payload and aggregates every item it carries.
// The only failure is ErrPerDayNotList; malformed days and items are skipped.
func AggregatePayload(payload map[string]any) (*Result, error) {
	res, _, err := aggregatePayload(payload)
	return res, err
}

func aggregatePayload(payload map[string]any) (*Result, Extraction, error) {
	perDay, ok := coerce.List(payload[fieldPerDay])
	if !ok {
		return nil, Extraction{}, ErrPerDayNotList
	}

	ex := Extract(perDay)
	return Aggregate(ex.Items), ex, nil
}
