package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/toolver/toolver/pkg/errors"
	"github.com/toolver/toolver/pkg/serializer"
)

// HTTPStatusFromCode maps an error code to the HTTP status it should
// be served with. Unknown codes map to 500.
func HTTPStatusFromCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRequest, errors.ErrCodeMalformedVersion:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may retry the request
// that produced the given error code.
func retryableFromCode(code errors.ErrorCode) bool {
	switch code {
	case errors.ErrCodeTimeout, errors.ErrCodeRateLimitExceeded, errors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps, with values from the second
// map taking precedence. Returns nil when both are empty so the
// details field is omitted from the JSON response.
func mergeDetails(base, extra map[string]any) map[string]any {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// WriteError writes a structured error response with the request ID
// from the context, generating one if the middleware did not run.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := GetRequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from err.
// Structured errors carry their own code, message, and context; the
// cause chain is surfaced under the "error" detail key. Any other
// error is reported as an internal error with the fallback message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMsg string, extraDetails map[string]any) {

	var structured *errors.StructuredError
	if stderrors.As(err, &structured) {
		details := mergeDetails(structured.Context, extraDetails)
		if structured.Cause != nil {
			if details == nil {
				details = make(map[string]any, 1)
			}
			details["error"] = structured.Cause.Error()
		}
		WriteError(w, r, HTTPStatusFromCode(structured.Code), structured.Code,
			structured.Message, retryableFromCode(structured.Code), details)
		return
	}

	details := mergeDetails(nil, extraDetails)
	if err != nil {
		if details == nil {
			details = make(map[string]any, 1)
		}
		details["error"] = err.Error()
	}
	WriteError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal,
		fallbackMsg, retryableFromCode(errors.ErrCodeInternal), details)
}
