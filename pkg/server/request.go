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

package server

import (
	"context"
	stderrors "errors"
	"net/http"

	nerrors "github.com/nutriai/nutriai-api/pkg/errors"
	"github.com/nutriai/nutriai-api/pkg/serializer"
)

// DecodeObjectBody reads the request body as a JSON or YAML object, limited
// to maxBytes and to the request deadline. Failures are StructuredErrors:
// PAYLOAD_TOO_LARGE for oversized bodies, TIMEOUT when the deadline passes
// and VALIDATION_FAILED for anything undecodable or not an object.
func DecodeObjectBody(w http.ResponseWriter, r *http.Request, maxBytes int64) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")
	obj, err := serializer.DecodeObjectContext(r.Context(),
		http.MaxBytesReader(w, r.Body, maxBytes), contentType)
	if err == nil {
		return obj, nil
	}

	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		return nil, nerrors.NewWithContext(nerrors.ErrCodePayloadTooLarge, "Request body too large",
			map[string]any{"limit": tooLarge.Limit})
	case stderrors.Is(err, context.DeadlineExceeded):
		return nil, nerrors.Wrap(nerrors.ErrCodeTimeout, "Request deadline exceeded", err)
	default:
		return nil, nerrors.WrapWithContext(nerrors.ErrCodeValidation, "Invalid request body", err,
			map[string]any{"contentType": contentType})
	}
}
