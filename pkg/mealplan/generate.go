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

const demoMealName = "Démo"

func demoMeals() []Meal {
	name := demoMealName
	return []Meal{
		{
			Name: &name,
			Items: []MealItem{
				{Name: "Riz", Qty: 200, Unit: "g"},
				{Name: "Poulet", Qty: 150, Unit: "g"},
				{Name: "Pomme", Qty: 1, Unit: "pc"},
			},
		},
	}
}

// Generate builds a plan of req.Days days. Only the day count and the demo
// flag affect the result.
func Generate(req *Request, demo bool) *Response {
	days := 0
	if req != nil && req.Days > 0 {
		days = req.Days
	}

	resp := &Response{PerDay: make([]PlanDay, 0, days)}
	for i := 1; i <= days; i++ {
		meals := []Meal{}
		if demo {
			meals = demoMeals()
		}
		resp.PerDay = append(resp.PerDay, PlanDay{Day: i, Meals: meals})
	}
	return resp
}
