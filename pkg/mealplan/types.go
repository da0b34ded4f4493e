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

package mealplan

import (
	"strconv"
)

// Request is a validated plan request.
type Request struct {
	Age    int     `json:"age" yaml:"age"`
	Gender string  `json:"gender" yaml:"gender"`
	Weight float64 `json:"weight" yaml:"weight"`
	Goal   string  `json:"goal" yaml:"goal"`
	Days   int     `json:"days" yaml:"days"`
}

// MealItem is one ingredient in a meal.
type MealItem struct {
	Name string  `json:"name" yaml:"name"`
	Qty  float64 `json:"qty" yaml:"qty"`
	Unit string  `json:"unit" yaml:"unit"`
}

// Meal groups items under an optional name.
type Meal struct {
	Name  *string    `json:"name" yaml:"name"`
	Items []MealItem `json:"items" yaml:"items"`
}

// PlanDay holds the meals for one day, numbered from 1.
type PlanDay struct {
	Day   int    `json:"day" yaml:"day"`
	Meals []Meal `json:"meals" yaml:"meals"`
}

// Response is a generated plan. Its per_day layout is accepted as-is by the
// shopping aggregator.
type Response struct {
	PerDay []PlanDay `json:"per_day" yaml:"per_day"`
}

// TableRows renders one row per item; days without meals get a single
// placeholder row.
func (r *Response) TableRows() ([]string, [][]string) {
	header := []string{"DAY", "MEAL", "ITEM", "QTY", "UNIT"}
	var rows [][]string
	for _, d := range r.PerDay {
		day := strconv.Itoa(d.Day)
		if len(d.Meals) == 0 {
			rows = append(rows, []string{day, "-", "-", "-", "-"})
			continue
		}
		for _, m := range d.Meals {
			name := "-"
			if m.Name != nil {
				name = *m.Name
			}
			for _, it := range m.Items {
				rows = append(rows, []string{day, name, it.Name, strconv.FormatFloat(it.Qty, 'g', -1, 64), it.Unit})
			}
		}
	}
	return header, rows
}
