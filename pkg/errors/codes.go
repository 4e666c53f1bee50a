package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeDatabaseError      ErrorCode = "COMMON_012"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeExternalService    ErrorCode = "COMMON_014"
	ErrCodeNotImplemented     ErrorCode = "COMMON_015"
)

// Aliases used throughout the codebase for readability.
const (
	CodeInternal       = ErrCodeInternal
	CodeInvalidParam   = ErrCodeBadRequest
	CodeUnauthorized   = ErrCodeUnauthorized
	CodeForbidden      = ErrCodeForbidden
	CodeNotFound       = ErrCodeNotFound
	CodeConflict       = ErrCodeConflict
	CodeRateLimit      = ErrCodeTooManyRequests
	CodeNotImplemented = ErrCodeNotImplemented
	CodeOK             = ErrorCode("OK")

	// Domain specific aliases
	CodeInvalidElement   = ErrCodeGraphInvalidElement
	CodeIndexOutOfRange  = ErrCodeGraphIndexOutOfRange
	CodeSelfBond         = ErrCodeGraphSelfBond
	CodeMoleculeNotFound = ErrCodeMoleculeNotFound
	CodeSessionNotFound  = ErrCodeSessionNotFound
	CodeFragmentNotFound = ErrCodeFragmentNotFound
)

// Graph Editing Error Codes
const (
	// ErrCodeGraphInvalidElement is returned when a non-physical tool marker
	// (atomic number 0) is placed as an atom.
	ErrCodeGraphInvalidElement ErrorCode = "GRF_001"

	// ErrCodeGraphIndexOutOfRange is returned when a bond or removal references
	// an atom index outside the current atom sequence.
	ErrCodeGraphIndexOutOfRange ErrorCode = "GRF_002"

	// ErrCodeGraphSelfBond is returned when a bond request has both endpoints
	// on the same atom index.
	ErrCodeGraphSelfBond ErrorCode = "GRF_003"

	// ErrCodeGraphUnknownElement is returned when an element symbol is not
	// present in the registry at all.
	ErrCodeGraphUnknownElement ErrorCode = "GRF_004"

	// ErrCodeGraphInvalidBondType is returned for bond type values outside the
	// single/double/triple/aromatic set.
	ErrCodeGraphInvalidBondType ErrorCode = "GRF_005"
)

// Saved Molecule Error Codes
const (
	ErrCodeMoleculeNotFound      ErrorCode = "MOL_001"
	ErrCodeMoleculeAlreadyExists ErrorCode = "MOL_002"
	ErrCodeMoleculeInvalidName   ErrorCode = "MOL_003"
	ErrCodeMoleculeEmptyGraph    ErrorCode = "MOL_004"
)

// Editing Session Error Codes
const (
	ErrCodeSessionNotFound      ErrorCode = "SES_001"
	ErrCodeSessionLimitExceeded ErrorCode = "SES_002"
)

// Fragment Library Error Codes
const (
	ErrCodeFragmentNotFound ErrorCode = "FRG_001"
	ErrCodeFragmentInvalid  ErrorCode = "FRG_002"
)

// Infrastructure aliases (kept so call sites read by concern, not by table).
const (
	CodeDBConnectionError = ErrCodeDatabaseError
	CodeDatabaseError     = ErrCodeDatabaseError
	CodeDBQueryError      = ErrCodeDatabaseError
	CodeCacheError        = ErrCodeCacheError
	CodeMessageQueueError = ErrCodeExternalService
	CodeStorageError      = ErrCodeExternalService
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusBadGateway,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeGraphInvalidElement:  http.StatusBadRequest,
	ErrCodeGraphIndexOutOfRange: http.StatusBadRequest,
	ErrCodeGraphSelfBond:        http.StatusBadRequest,
	ErrCodeGraphUnknownElement:  http.StatusBadRequest,
	ErrCodeGraphInvalidBondType: http.StatusBadRequest,

	ErrCodeMoleculeNotFound:      http.StatusNotFound,
	ErrCodeMoleculeAlreadyExists: http.StatusConflict,
	ErrCodeMoleculeInvalidName:   http.StatusBadRequest,
	ErrCodeMoleculeEmptyGraph:    http.StatusBadRequest,

	ErrCodeSessionNotFound:      http.StatusNotFound,
	ErrCodeSessionLimitExceeded: http.StatusTooManyRequests,

	ErrCodeFragmentNotFound: http.StatusNotFound,
	ErrCodeFragmentInvalid:  http.StatusBadRequest,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeUnauthorized:       "unauthorized",
	ErrCodeForbidden:          "forbidden",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",
	ErrCodeNotImplemented:     "not implemented",

	ErrCodeGraphInvalidElement:  "element is a non-physical tool marker",
	ErrCodeGraphIndexOutOfRange: "atom index out of range",
	ErrCodeGraphSelfBond:        "bond endpoints must differ",
	ErrCodeGraphUnknownElement:  "unknown element symbol",
	ErrCodeGraphInvalidBondType: "invalid bond type",

	ErrCodeMoleculeNotFound:      "molecule not found",
	ErrCodeMoleculeAlreadyExists: "molecule already exists",
	ErrCodeMoleculeInvalidName:   "invalid molecule name",
	ErrCodeMoleculeEmptyGraph:    "molecule graph is empty",

	ErrCodeSessionNotFound:      "editing session not found",
	ErrCodeSessionLimitExceeded: "editing session limit exceeded",

	ErrCodeFragmentNotFound: "fragment not found",
	ErrCodeFragmentInvalid:  "invalid fragment definition",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
