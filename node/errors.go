package node

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind tags a Failure.
type FailureKind int

const (
	MissingParameter FailureKind = iota
	InvalidJSON
	InvalidPayloadShape
	UnsupportedOperation
	RemoteCallFailed
)

func (k FailureKind) String() string {
	switch k {
	case MissingParameter:
		return "MissingParameter"
	case InvalidJSON:
		return "InvalidJson"
	case InvalidPayloadShape:
		return "InvalidPayloadShape"
	case UnsupportedOperation:
		return "UnsupportedOperation"
	case RemoteCallFailed:
		return "RemoteCallFailed"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Failure is the structured failure raised anywhere between parameter
// extraction and the remote call. Only the fields relevant to Kind are set.
type Failure struct {
	Kind FailureKind

	ParameterNames []string // MissingParameter
	ParameterLabel string   // InvalidJSON
	Reason         string   // InvalidPayloadShape
	Operation      string   // UnsupportedOperation
	Resource       string   // UnsupportedOperation
	Cause          error    // RemoteCallFailed
}

func (f *Failure) Error() string {
	switch f.Kind {
	case MissingParameter:
		if len(f.ParameterNames) == 1 {
			return fmt.Sprintf("Parameter %q is required", f.ParameterNames[0])
		}
		return fmt.Sprintf("Missing required fields: %s", joinNames(f.ParameterNames))
	case InvalidJSON:
		return fmt.Sprintf("Invalid JSON in parameter %q", f.ParameterLabel)
	case InvalidPayloadShape:
		return fmt.Sprintf("Invalid payload: %s", f.Reason)
	case UnsupportedOperation:
		return fmt.Sprintf("The operation %q is not supported for resource %q.", f.Operation, f.Resource)
	case RemoteCallFailed:
		if f.Cause == nil {
			return "remote call failed"
		}
		return f.Cause.Error()
	default:
		return f.Kind.String()
	}
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

func missingParameter(names ...string) *Failure {
	return &Failure{Kind: MissingParameter, ParameterNames: names}
}

func invalidJSON(label string) *Failure {
	return &Failure{Kind: InvalidJSON, ParameterLabel: label}
}

func invalidPayloadShape(reason string) *Failure {
	return &Failure{Kind: InvalidPayloadShape, Reason: reason}
}

func unsupportedOperation(operation, resource string) *Failure {
	return &Failure{Kind: UnsupportedOperation, Operation: operation, Resource: resource}
}

// asFailure returns err as a *Failure, wrapping anything that is not
// already one as a RemoteCallFailed.
func asFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Kind: RemoteCallFailed, Cause: err}
}

// IsFailureKind reports whether err is or wraps a Failure of the given kind.
func IsFailureKind(err error, kind FailureKind) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == kind
}

// ExecutionError is returned from Execute when a failure is fatal,
// i.e. the host has not enabled continue-on-fail.
type ExecutionError struct {
	Node      string
	ItemIndex int
	Cause     error
}

func (e *ExecutionError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%s [item %d]: %v", e.Node, e.ItemIndex, e.Cause)
	}
	return fmt.Sprintf("[item %d]: %v", e.ItemIndex, e.Cause)
}

func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// errorMessage extracts a user-facing message from a caught value.
func errorMessage(v any) string {
	switch t := v.(type) {
	case nil:
		return "Unknown error"
	case error:
		return t.Error()
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
