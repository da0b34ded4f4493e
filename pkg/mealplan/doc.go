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

// Package mealplan generates per-day meal plans.
//
// The generator is a stub: the requester's age, gender, weight and goal are
// validated but do not influence the plan. With demo fill off every day has
// an empty meal list; with demo fill on every day holds the same placeholder
// meal of rice, chicken and an apple.
//
// A plan covers 1 to 14 days:
//
//	req, err := mealplan.ParseRequest(body)
//	if err != nil {
//	    // *ValidationError lists every violated field
//	}
//	plan := mealplan.Generate(req, settings.Demo)
package mealplan
