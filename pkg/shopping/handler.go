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
	"log/slog"
	"net/http"

	"github.com/nutriai/nutriai-api/pkg/defaults"
	"github.com/nutriai/nutriai-api/pkg/serializer"
	"github.com/nutriai/nutriai-api/pkg/server"
)

// Handler serves the aggregation endpoint.
type Handler struct {
	maxBodyBytes int64
}

// NewHandler returns a Handler that accepts bodies up to
// defaults.MaxRequestBodyBytes.
func NewHandler() *Handler {
	return &Handler{maxBodyBytes: defaults.MaxRequestBodyBytes}
}

// HandleAggregate handles POST /shopping_aggregate.
//
// The body is a JSON (or YAML, by Content-Type) object with a per_day list.
// The response maps each display name to its summed {qty, unit}.
func (h *Handler) HandleAggregate(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethods(w, r, http.MethodPost) {
		return
	}

	payload, err := server.DecodeObjectBody(w, r, h.maxBodyBytes)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid request body", nil)
		return
	}

	res, ex, err := aggregatePayload(payload)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Aggregation failed", nil)
		return
	}

	recordExtraction(ex, res.Len())
	slog.Debug("shopping list aggregated",
		"requestID", server.RequestIDFromContext(r.Context()),
		"items", len(ex.Items),
		"dropped", ex.Dropped,
		"skippedDays", ex.SkippedDays,
		"entries", res.Len(),
	)

	serializer.RespondJSON(w, http.StatusOK, res)
}
