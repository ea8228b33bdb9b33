package httpx

import (
	"net/http"

	apperrors "github.com/gs1ops/edimon/internal/errors"
)

// WriteAppError maps an application error to its HTTP status and writes the
// JSON error response. A refresh that cannot reach the legacy store surfaces
// as an explicit failure, never as an empty page.
func WriteAppError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeConfiguration, apperrors.ErrCodeInvalidPage:
		status = http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeTimeout, apperrors.ErrCodeCanceled:
		status = http.StatusGatewayTimeout
	case apperrors.ErrCodeStoreUnavailable:
		status = http.StatusServiceUnavailable
	case apperrors.ErrCodeInternal:
		status = http.StatusInternalServerError
	}
	if code == "" {
		code = apperrors.ErrCodeInternal
	}

	WriteError(w, ErrorParams{Code: status, ErrCode: string(code), Err: err})
}
