package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a finance query failed
type ErrorKind int

const (
	KindUpstream ErrorKind = iota
	KindConfiguration
	KindInvalidArgument
	KindMissingParameter
	KindMethodNotAllowed
	KindNoData
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "ConfigurationError"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindMissingParameter:
		return "MissingParameter"
	case KindMethodNotAllowed:
		return "MethodNotAllowed"
	case KindNoData:
		return "NoData"
	default:
		return "UpstreamError"
	}
}

// QueryError is returned by the gateway for every failed query.
// Err holds the upstream cause for KindUpstream and is nil otherwise.
// Param names the offending parameter when it is not the action or time range.
type QueryError struct {
	Kind   ErrorKind
	Action Action
	Param  string
	Err    error
}

func (e *QueryError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s (%s)", e.Kind, e.Param)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Kind, e.Action, e.Err)
	}
	if e.Action != "" {
		return fmt.Sprintf("%s (%s)", e.Kind, e.Action)
	}
	return e.Kind.String()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, treating anything that is not a
// *QueryError as an upstream failure
func KindOf(err error) ErrorKind {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return KindUpstream
}

// IsClientError reports whether err was caused by the caller or by missing
// configuration rather than by the upstream service
func IsClientError(err error) bool {
	switch KindOf(err) {
	case KindConfiguration, KindInvalidArgument, KindMissingParameter, KindMethodNotAllowed, KindNoData:
		return true
	}
	return false
}
