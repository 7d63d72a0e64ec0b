package errors

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

var exposeCause atomic.Bool

// ExposeInternalCause controls whether the wrapped cause of a 5xx error is
// copied into details.error. Production deployments keep it off.
func ExposeInternalCause(enabled bool) {
	exposeCause.Store(enabled)
}

func ResponseFor(err error) (int, ErrorResponse) {
	appErr := AsAppError(err)

	details := appErr.Details
	if exposeCause.Load() && appErr.Err != nil && appErr.HTTPStatus >= http.StatusInternalServerError {
		details = make(map[string]any, len(appErr.Details)+1)
		for k, v := range appErr.Details {
			details[k] = v
		}
		details["error"] = appErr.Err.Error()
	}

	return appErr.StatusCode(), ErrorResponse{
		Success: false,
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: details,
	}
}

func WriteError(w http.ResponseWriter, err error) {
	status, response := ResponseFor(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response)
}
