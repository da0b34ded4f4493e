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
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	nerrors "github.com/nutriai/nutriai-api/pkg/errors"
	"github.com/nutriai/nutriai-api/pkg/serializer"
)

// ErrorResponse is the body of every error reply.
// Detail carries the client-facing description: a string for most errors,
// or a list of field violations for request validation failures.
type ErrorResponse struct {
	Detail    any            `json:"detail"`
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code nerrors.ErrorCode) int {
	switch code {
	case nerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case nerrors.ErrCodeValidation:
		return http.StatusUnprocessableEntity
	case nerrors.ErrCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case nerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case nerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case nerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case nerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case nerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code nerrors.ErrorCode) bool {
	switch code {
	case nerrors.ErrCodeTimeout,
		nerrors.ErrCodeUnavailable,
		nerrors.ErrCodeRateLimitExceeded,
		nerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// WriteError writes a structured error response. The message doubles as
// the detail field.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code nerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	writeErrorResponse(w, r, statusCode, ErrorResponse{
		Detail:    message,
		Code:      string(code),
		Message:   message,
		Details:   details,
		Retryable: retryable,
	})
}

// WriteValidationError writes a 422 response whose detail lists the
// individual violations.
func WriteValidationError(w http.ResponseWriter, r *http.Request, message string, detail any) {
	writeErrorResponse(w, r, http.StatusUnprocessableEntity, ErrorResponse{
		Detail:  detail,
		Code:    string(nerrors.ErrCodeValidation),
		Message: message,
	})
}

// WriteErrorFromErr renders err, using its code and context when it is a
// StructuredError and falling back to an internal error with message otherwise.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, message string, details map[string]any) {
	var se *nerrors.StructuredError
	if stderrors.As(err, &se) {
		extra := map[string]any{}
		if se.Cause != nil {
			extra["error"] = se.Cause.Error()
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), mergeDetails(mergeDetails(se.Context, details), extra))
		return
	}

	WriteError(w, r, http.StatusInternalServerError, nerrors.ErrCodeInternal, message,
		retryableFromCode(nerrors.ErrCodeInternal), mergeDetails(details, map[string]any{"error": err.Error()}))
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, statusCode int, resp ErrorResponse) {
	resp.RequestID = RequestIDFromContext(r.Context())
	if resp.RequestID == "" {
		resp.RequestID = uuid.New().String()
	}
	resp.Timestamp = time.Now().UTC()

	serializer.RespondJSON(w, statusCode, resp)
}
