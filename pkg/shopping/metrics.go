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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	itemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutriai_shopping_items_total",
			Help: "Item candidates seen by the aggregator, by outcome",
		},
		[]string{"outcome"},
	)

	daysSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutriai_shopping_days_skipped_total",
			Help: "Day entries skipped because they matched neither payload shape",
		},
	)

	resultEntries = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nutriai_shopping_result_entries",
			Help:    "Number of distinct entries per aggregated shopping list",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

func recordExtraction(ex Extraction, entries int) {
	itemsTotal.WithLabelValues("accepted").Add(float64(len(ex.Items)))
	itemsTotal.WithLabelValues("dropped").Add(float64(ex.Dropped))
	daysSkipped.Add(float64(ex.SkippedDays))
	resultEntries.Observe(float64(entries))
}
