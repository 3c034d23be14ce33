package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError so callers can branch on the failure category
// without matching on messages.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindInvalidReference
	KindTranscriptUnavailable
	KindTranscriptEmpty
	KindGeneration
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidReference:
		return "invalid_reference"
	case KindTranscriptUnavailable:
		return "transcript_unavailable"
	case KindTranscriptEmpty:
		return "transcript_empty"
	case KindGeneration:
		return "generation"
	default:
		return "internal"
	}
}

// User-facing messages.
const (
	MsgInvalidReference      = "Invalid YouTube URL."
	MsgTranscriptUnavailable = "Could not retrieve transcript. Please make sure the video has captions."
	MsgTranscriptEmpty       = "No transcript found for this video."
	MsgGeneric               = "Something went wrong. Please try again."
)

type AppError struct {
	Kind    Kind   `json:"-"`
	Code    int    `json:"-"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, code int, op string, err error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func InvalidInput(op string, err error, message string) *AppError {
	return newError(KindInvalidInput, http.StatusBadRequest, op, err, message)
}

func Internal(op string, err error) *AppError {
	return newError(KindInternal, http.StatusInternalServerError, op, err, MsgGeneric)
}

func InvalidReference(op string, err error) *AppError {
	return newError(KindInvalidReference, http.StatusBadRequest, op, err, MsgInvalidReference)
}

// TranscriptUnavailable covers every transcript lookup failure. The cause is
// kept for logs only; the message is the same for all of them.
func TranscriptUnavailable(op string, err error) *AppError {
	return newError(KindTranscriptUnavailable, http.StatusNotFound, op, err, MsgTranscriptUnavailable)
}

func TranscriptEmpty(op string) *AppError {
	return newError(KindTranscriptEmpty, http.StatusNotFound, op, nil, MsgTranscriptEmpty)
}

func Generation(op string, err error) *AppError {
	return newError(KindGeneration, http.StatusBadGateway, op, err, MsgGeneric)
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf reports the kind of err. Errors that are not AppErrors are internal.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// UserMessage returns the message safe to show an end user.
func UserMessage(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Message
	}
	return MsgGeneric
}

// StatusCode maps err to an HTTP status.
func StatusCode(err error) int {
	if appErr, ok := As(err); ok && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
