package zra

import (
	"errors"
	"fmt"

	"github.com/zra-sdk/zra-demo/internal/constants"
)

// FailureKind distinguishes why a dispatch did not produce a payload.
type FailureKind string

const (
	FailureNone       FailureKind = ""
	FailureValidation FailureKind = "validation"
	FailureService    FailureKind = "service"
	FailureTransport  FailureKind = "transport"
)

// ValidationError means the input was rejected locally; nothing was sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ServiceError means the service answered and reported a failure.
type ServiceError struct {
	Op         string
	Message    string
	StatusCode int
}

func (e *ServiceError) Error() string {
	return e.Message
}

// TransportError means no usable response arrived: the call failed, or the body
// could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Classify reports the failure kind of err. Errors outside the taxonomy count as
// transport failures.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureNone
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return FailureValidation
	}
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return FailureService
	}
	return FailureTransport
}

// UserMessage is the text shown to the operator for err.
func UserMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr.Message
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return fmt.Sprintf(constants.MsgNetworkErrorFmt, transportErr.Err.Error())
	}
	return fmt.Sprintf(constants.MsgNetworkErrorFmt, err.Error())
}
