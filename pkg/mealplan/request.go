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
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nutriai/nutriai-api/pkg/coerce"
	"github.com/nutriai/nutriai-api/pkg/defaults"
)

// FieldError describes one rejected request field. The layout matches the
// detail entries FastAPI clients already parse.
type FieldError struct {
	Type  string         `json:"type" yaml:"type"`
	Loc   []string       `json:"loc" yaml:"loc"`
	Msg   string         `json:"msg" yaml:"msg"`
	Input any            `json:"input,omitempty" yaml:"input,omitempty"`
	Ctx   map[string]any `json:"ctx,omitempty" yaml:"ctx,omitempty"`
}

// ValidationError collects every field violation found in a request.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg))
	}
	return fmt.Sprintf("%d validation error(s): %s", len(e.Errors), strings.Join(parts, "; "))
}

func (e *ValidationError) add(fe FieldError) {
	e.Errors = append(e.Errors, fe)
}

func bodyLoc(field string) []string {
	if field == "" {
		return []string{"body"}
	}
	return []string{"body", field}
}

// NewBodyError reports a body that could not be read as an object at all.
func NewBodyError(kind, msg string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Type: kind, Loc: bodyLoc(""), Msg: msg}}}
}

// ParseRequest validates a decoded body. All five fields are required.
// age and days take integers, integral floats or integer strings; weight
// takes any finite number or numeric string; gender and goal must be
// strings; days must be within 1..defaults.MaxPlanDays.
func ParseRequest(body map[string]any) (*Request, error) {
	if body == nil {
		return nil, NewBodyError("model_attributes_type",
			"Input should be a valid dictionary or object to extract fields from")
	}

	var (
		req  Request
		verr ValidationError
	)

	req.Age, _ = intField(body, "age", &verr)
	req.Gender, _ = stringField(body, "gender", &verr)
	req.Weight, _ = floatField(body, "weight", &verr)
	req.Goal, _ = stringField(body, "goal", &verr)

	if days, ok := intField(body, "days", &verr); ok {
		switch {
		case days <= 0:
			verr.add(FieldError{
				Type:  "greater_than",
				Loc:   bodyLoc("days"),
				Msg:   "Input should be greater than 0",
				Input: body["days"],
				Ctx:   map[string]any{"gt": 0},
			})
		case days > defaults.MaxPlanDays:
			verr.add(FieldError{
				Type:  "less_than_equal",
				Loc:   bodyLoc("days"),
				Msg:   "Input should be less than or equal to " + strconv.Itoa(defaults.MaxPlanDays),
				Input: body["days"],
				Ctx:   map[string]any{"le": defaults.MaxPlanDays},
			})
		default:
			req.Days = days
		}
	}

	if len(verr.Errors) > 0 {
		return nil, &verr
	}
	return &req, nil
}

func lookup(body map[string]any, field string, verr *ValidationError) (any, bool) {
	v, ok := body[field]
	if !ok {
		verr.add(FieldError{Type: "missing", Loc: bodyLoc(field), Msg: "Field required"})
		return nil, false
	}
	return v, true
}

func stringField(body map[string]any, field string, verr *ValidationError) (string, bool) {
	v, ok := lookup(body, field, verr)
	if !ok {
		return "", false
	}
	s, ok := coerce.String(v)
	if !ok {
		verr.add(FieldError{Type: "string_type", Loc: bodyLoc(field), Msg: "Input should be a valid string", Input: v})
		return "", false
	}
	return s, true
}

func floatField(body map[string]any, field string, verr *ValidationError) (float64, bool) {
	v, ok := lookup(body, field, verr)
	if !ok {
		return 0, false
	}
	f, ok := coerce.Float(v)
	if !ok {
		kind, msg := "float_type", "Input should be a valid number"
		if _, isString := v.(string); isString {
			kind, msg = "float_parsing", "Input should be a valid number, unable to parse string as a number"
		}
		verr.add(FieldError{Type: kind, Loc: bodyLoc(field), Msg: msg, Input: v})
		return 0, false
	}
	return f, true
}

func intField(body map[string]any, field string, verr *ValidationError) (int, bool) {
	v, ok := lookup(body, field, verr)
	if !ok {
		return 0, false
	}
	i, ok := coerce.Int(v)
	if !ok {
		kind, msg := "int_type", "Input should be a valid integer"
		switch {
		case isString(v):
			kind, msg = "int_parsing", "Input should be a valid integer, unable to parse string as an integer"
		case hasFraction(v):
			kind, msg = "int_from_float", "Input should be a valid integer, got a number with a fractional part"
		}
		verr.add(FieldError{Type: kind, Loc: bodyLoc(field), Msg: msg, Input: v})
		return 0, false
	}
	return i, true
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func hasFraction(v any) bool {
	switch v.(type) {
	case float64, float32, json.Number:
		f, ok := coerce.Float(v)
		return ok && f != math.Trunc(f)
	}
	return false
}
