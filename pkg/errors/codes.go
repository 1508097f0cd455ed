package errors

import "net/http"

// ErrorCode is a string identifier for a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	CodeOK      ErrorCode = "OK"
	CodeUnknown ErrorCode = "COMMON_000"

	CodeInternal           ErrorCode = "COMMON_001"
	CodeInvalidParam       ErrorCode = "COMMON_002"
	CodeNotFound           ErrorCode = "COMMON_003"
	CodeRateLimit          ErrorCode = "COMMON_004"
	CodeServiceUnavailable ErrorCode = "COMMON_005"
	CodeSerialization      ErrorCode = "COMMON_006"
	CodeCacheError         ErrorCode = "COMMON_007"
)

// Spectrum module error codes.
const (
	CodeModalityUnsupported ErrorCode = "SPC_001"
	CodeNucleusUnsupported  ErrorCode = "SPC_002"
	CodeEmptyDescriptor     ErrorCode = "SPC_003"
)

// Catalog module error codes.
const (
	CodeMoleculeNotFound ErrorCode = "CAT_001"
)

// errorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var errorCodeHTTPStatus = map[ErrorCode]int{
	CodeInternal:           http.StatusInternalServerError,
	CodeInvalidParam:       http.StatusBadRequest,
	CodeNotFound:           http.StatusNotFound,
	CodeRateLimit:          http.StatusTooManyRequests,
	CodeServiceUnavailable: http.StatusServiceUnavailable,
	CodeSerialization:      http.StatusInternalServerError,
	CodeCacheError:         http.StatusInternalServerError,

	CodeModalityUnsupported: http.StatusBadRequest,
	CodeNucleusUnsupported:  http.StatusBadRequest,
	CodeEmptyDescriptor:     http.StatusUnprocessableEntity,

	CodeMoleculeNotFound: http.StatusNotFound,
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode, defaulting
// to 500 for unmapped codes.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether the ErrorCode maps to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError reports whether the ErrorCode maps to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}
