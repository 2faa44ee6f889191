// core/variant/errors.go
package variant

import (
	"errors"
	"fmt"
)

// Kind is the stable failure classification reported to callers.
type Kind string

const (
	KindInvalidParameter   Kind = "invalid_parameter"
	KindUnsupportedBackend Kind = "unsupported_backend"
	KindAdapterTranslation Kind = "adapter_translation"
	KindExecution          Kind = "execution"
	KindTimeout            Kind = "timeout"
	KindMissingOutput      Kind = "missing_output"
	KindEmptyOutput        Kind = "empty_output"
	KindMalformedOutput    Kind = "malformed_output"
)

// Stage identifies where in the run the failure originated.
type Stage string

const (
	StageValidating Stage = "validating"
	StageResolving  Stage = "resolving"
	StagePlanning   Stage = "planning"
	StageExecuting  Stage = "executing"
	StageVerifying  Stage = "verifying"
)

// Error is the single structured failure type the variant core reports.
// Exactly one Error reaches the caller per failed run; it carries the kind,
// the originating stage, and the most relevant diagnostic context.
type Error struct {
	Kind    Kind
	Stage   Stage
	Field   string // offending request field, validation failures only
	Backend string
	Msg     string
	Log     string // bounded captured process output, execution-stage failures only
	Err     error
}

func (e *Error) Error() string {
	s := string(e.Kind)
	if e.Field != "" {
		s += " (" + e.Field + ")"
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match on kind: errors.Is(err, &Error{Kind: KindTimeout}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of err, or "" if err is not a variant Error.
func KindOf(err error) Kind {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}

func invalidParam(field, format string, args ...any) *Error {
	return &Error{
		Kind:  KindInvalidParameter,
		Stage: StageValidating,
		Field: field,
		Msg:   fmt.Sprintf(format, args...),
	}
}

func translationErr(backend, format string, args ...any) *Error {
	return &Error{
		Kind:    KindAdapterTranslation,
		Stage:   StagePlanning,
		Backend: backend,
		Msg:     fmt.Sprintf(format, args...),
	}
}
