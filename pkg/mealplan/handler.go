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
	"errors"
	"log/slog"
	"net/http"

	"github.com/nutriai/nutriai-api/pkg/config"
	"github.com/nutriai/nutriai-api/pkg/defaults"
	nerrors "github.com/nutriai/nutriai-api/pkg/errors"
	"github.com/nutriai/nutriai-api/pkg/serializer"
	"github.com/nutriai/nutriai-api/pkg/server"
)

// Handler serves the plan generation endpoint.
type Handler struct {
	demo         bool
	maxBodyBytes int64
}

// NewHandler returns a Handler that fills plans according to settings.Demo.
func NewHandler(settings config.Settings) *Handler {
	return &Handler{
		demo:         settings.Demo,
		maxBodyBytes: defaults.MaxRequestBodyBytes,
	}
}

// HandleGenerate handles POST /generate_meal_plan.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethods(w, r, http.MethodPost) {
		return
	}

	body, err := server.DecodeObjectBody(w, r, h.maxBodyBytes)
	if err != nil {
		if nerrors.CodeOf(err) == nerrors.ErrCodeValidation {
			verr := NewBodyError("model_attributes_type", errors.Unwrap(err).Error())
			server.WriteValidationError(w, r, "Invalid request body", verr.Errors)
			return
		}
		server.WriteErrorFromErr(w, r, err, "Invalid request body", nil)
		return
	}

	req, err := ParseRequest(body)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			server.WriteValidationError(w, r, "Request validation failed", verr.Errors)
			return
		}
		server.WriteErrorFromErr(w, r, err, "Meal plan request failed", nil)
		return
	}

	plan := Generate(req, h.demo)
	slog.Debug("meal plan generated",
		"requestID", server.RequestIDFromContext(r.Context()),
		"days", req.Days,
		"demo", h.demo,
	)

	serializer.RespondJSON(w, http.StatusOK, plan)
}
