// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to decode request body",
//	    err,
//	    map[string]any{
//	        "contentType": r.Header.Get("Content-Type"),
//	    },
//	)
//
// The HTTP layer maps each ErrorCode to a status code, so handlers can
// return a StructuredError and let server.WriteErrorFromErr render it.
package errors
