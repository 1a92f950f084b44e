package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"adsynth-workers/internal/engine/brandkit"
	"adsynth-workers/internal/engine/variation"
	"adsynth-workers/internal/models"
)

type ErrorCode string

const (
	ErrCodeInvalidProfile        ErrorCode = "INVALID_PROFILE"
	ErrCodeInvalidInput          ErrorCode = "INVALID_INPUT"
	ErrCodeLookupGap             ErrorCode = "LOOKUP_GAP"
	ErrCodeAdSetGenerationFailed ErrorCode = "AD_SET_GENERATION_FAILED"

	ErrCodeUnknownPlatform ErrorCode = "UNKNOWN_PLATFORM"
	ErrCodeUnknownSegment  ErrorCode = "UNKNOWN_SEGMENT"

	ErrCodeBrandKitNotFound ErrorCode = "BRAND_KIT_NOT_FOUND"
	ErrCodeBrandKitInvalid  ErrorCode = "BRAND_KIT_INVALID"

	ErrCodeExportFailed ErrorCode = "EXPORT_FAILED"

	ErrCodeCacheUnavailable     ErrorCode = "CACHE_UNAVAILABLE"
	ErrCodeDatabaseQueryFailed  ErrorCode = "DATABASE_QUERY_FAILED"
	ErrCodeDatabaseInsertFailed ErrorCode = "DATABASE_INSERT_FAILED"

	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
	ErrCodeBusinessRule     ErrorCode = "BUSINESS_RULE_VIOLATION"
	ErrCodeExternalService  ErrorCode = "EXTERNAL_SERVICE_ERROR"
	ErrCodeTimeout          ErrorCode = "TIMEOUT_ERROR"
	ErrCodeResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"
	ErrCodeAuthentication   ErrorCode = "AUTHENTICATION_ERROR"
)

type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata sets a metadata key and returns the same error for chaining.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidProfileError(details string) *StandardError {
	return newError(ErrCodeInvalidProfile, "Product profile is invalid", details, false)
}

func NewInvalidInputError(details string) *StandardError {
	return newError(ErrCodeInvalidInput, "Invalid job input", details, false)
}

func NewLookupGapError(details string) *StandardError {
	return newError(ErrCodeLookupGap, "Static table has no entry for the requested key", details, false)
}

func NewAdSetGenerationFailedError(angle models.AngleType, err error) *StandardError {
	return newError(ErrCodeAdSetGenerationFailed, "Ad set generation aborted",
		fmt.Sprintf("angle: %s, error: %s", angle, err.Error()), false)
}

func NewUnknownPlatformError(platform string) *StandardError {
	return newError(ErrCodeUnknownPlatform, "Unknown ad platform", fmt.Sprintf("platform: %s", platform), false)
}

func NewUnknownSegmentError(motivation string) *StandardError {
	return newError(ErrCodeUnknownSegment, "Unknown buying motivation", fmt.Sprintf("motivation: %s", motivation), false)
}

func NewBrandKitNotFoundError(kitID string) *StandardError {
	return newError(ErrCodeBrandKitNotFound, "Brand kit not found", fmt.Sprintf("kitId: %s", kitID), false)
}

func NewBrandKitInvalidError(details string) *StandardError {
	return newError(ErrCodeBrandKitInvalid, "Brand kit failed validation", details, false)
}

func NewExportFailedError(format string, err error) *StandardError {
	return newError(ErrCodeExportFailed, "CSV export failed",
		fmt.Sprintf("format: %s, error: %s", format, err.Error()), false)
}

func NewDatabaseQueryFailedError(query string, err error) *StandardError {
	return newError(ErrCodeDatabaseQueryFailed, "Database query execution error",
		fmt.Sprintf("query: %s, error: %s", query, err.Error()), true)
}

func NewDatabaseInsertFailedError(err error) *StandardError {
	return newError(ErrCodeDatabaseInsertFailed, "Database insert operation failed", err.Error(), true)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false)
}

func NewBusinessRuleError(message, details string) *StandardError {
	return newError(ErrCodeBusinessRule, message, details, false)
}

func NewExternalServiceError(service string, err error) *StandardError {
	return newError(ErrCodeExternalService, fmt.Sprintf("External service '%s' error", service), err.Error(), true)
}

func NewTimeoutError(service string, err error) *StandardError {
	return newError(ErrCodeTimeout, fmt.Sprintf("Service '%s' timeout", service), err.Error(), true)
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return newError(ErrCodeResourceNotFound, fmt.Sprintf("Resource not found in %s", service), details, false)
}

func NewAuthenticationError(details string) *StandardError {
	return newError(ErrCodeAuthentication, "Authentication failed", details, false)
}

// FromEngineError classifies an error returned by the engine packages. A
// StandardError already in the chain is returned as is.
func FromEngineError(err error) *StandardError {
	if err == nil {
		return nil
	}

	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}

	var setErr *variation.AdSetError
	if stderrors.As(err, &setErr) {
		cause := FromEngineError(setErr.Err)
		return NewAdSetGenerationFailedError(setErr.Angle, setErr.Err).
			WithMetadata("failedAngle", string(setErr.Angle)).
			WithMetadata("causeCode", string(cause.Code))
	}

	if stderrors.Is(err, brandkit.ErrKitNotFound) {
		return newError(ErrCodeBrandKitNotFound, "Brand kit not found", err.Error(), false)
	}

	var inputErrs models.InputErrors
	if stderrors.As(err, &inputErrs) {
		return NewInvalidProfileError(err.Error()).WithMetadata("fields", inputErrs.Fields())
	}

	var inputErr *models.InputError
	if stderrors.As(err, &inputErr) {
		switch inputErr.Field {
		case "platform":
			return NewUnknownPlatformError(inputErr.Reason)
		case "motivation":
			return NewUnknownSegmentError(inputErr.Reason)
		}
		return NewInvalidInputError(err.Error()).WithMetadata("field", inputErr.Field)
	}

	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return NewTimeoutError("engine", err)
	case stderrors.Is(err, models.ErrLookupGap):
		return NewLookupGapError(err.Error())
	case stderrors.Is(err, models.ErrInvalidInput):
		return NewInvalidInputError(err.Error())
	default:
		return NewInternalError(err)
	}
}

var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInvalidProfile:        "INVALID_PROFILE",
	ErrCodeInvalidInput:          "INVALID_INPUT",
	ErrCodeLookupGap:             "LOOKUP_GAP",
	ErrCodeAdSetGenerationFailed: "AD_SET_GENERATION_FAILED",
	ErrCodeUnknownPlatform:       "UNKNOWN_PLATFORM",
	ErrCodeUnknownSegment:        "UNKNOWN_SEGMENT",
	ErrCodeBrandKitNotFound:      "BRAND_KIT_NOT_FOUND",
	ErrCodeBrandKitInvalid:       "BRAND_KIT_INVALID",
	ErrCodeExportFailed:          "EXPORT_FAILED",
	ErrCodeCacheUnavailable:      "CACHE_UNAVAILABLE",
	ErrCodeDatabaseQueryFailed:   "DATABASE_ERROR",
	ErrCodeDatabaseInsertFailed:  "DATABASE_ERROR",
	ErrCodeInternal:              "INTERNAL_ERROR",
}

// GetRetryCount returns how many times the broker should retry a job failing
// with code. Engine errors are deterministic and never retried.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseQueryFailed, ErrCodeDatabaseInsertFailed, ErrCodeCacheUnavailable,
		ErrCodeExternalService:
		return 3
	case ErrCodeTimeout:
		return 2
	default:
		return 0
	}
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "PROFILE") || strings.Contains(codeStr, "INPUT"):
		return "VALIDATION"
	case strings.Contains(codeStr, "LOOKUP") || strings.Contains(codeStr, "AD_SET"):
		return "ENGINE"
	case strings.Contains(codeStr, "PLATFORM") || strings.Contains(codeStr, "SEGMENT"):
		return "CREATIVE"
	case strings.Contains(codeStr, "BRAND_KIT"):
		return "BRAND"
	case strings.Contains(codeStr, "EXPORT"):
		return "EXPORT"
	case strings.Contains(codeStr, "DATABASE"):
		return "DATABASE"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	default:
		return "OTHER"
	}
}
