// Package errors defines the error kinds reported by flatjson.
//
// Library entry points that degrade instead of failing (ParseTolerant,
// PermissiveParse, ParseQuotedPairs, Serialize) never return these. They
// surface from strict parsing, configuration, rendering and the CLI.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel causes, matched with errors.Is
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrTrailingData    = errors.New("unexpected data after top-level value")
	ErrNumberRange     = errors.New("number out of range")
	ErrFileNotFound    = errors.New("file not found")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe data to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrUnknownStrategy = errors.New("unknown parse strategy")
	ErrUnknownKeyCase  = errors.New("unknown key case")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrUnknownMode     = errors.New("unknown mode")
	ErrNoStrategies    = errors.New("no parse strategies configured")
)

// Kind is the stage of the pipeline an error comes from
type Kind string

const (
	KindInput   Kind = "input"
	KindParsing Kind = "parsing"
	KindConfig  Kind = "config"
	KindRender  Kind = "render"
	KindOutput  Kind = "output"
	KindUnknown Kind = "unknown"
)

// AppError carries the kind, a short message and the underlying cause.
// Two AppErrors match under errors.Is when their kinds are equal, so
// errors.Is(err, &AppError{Kind: KindParsing}) tests the kind of err.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return string(e.Kind) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// NewInputError reports a problem reading input
func NewInputError(message string, err error) *AppError {
	return newError(KindInput, message, err)
}

// NewParsingError reports text that is not a well-formed structured value
func NewParsingError(message string, err error) *AppError {
	return newError(KindParsing, message, err)
}

// NewConfigError reports an invalid configuration value
func NewConfigError(message string, err error) *AppError {
	return newError(KindConfig, message, err)
}

// NewRenderError reports a value that could not be rendered to text
func NewRenderError(message string, err error) *AppError {
	return newError(KindRender, message, err)
}

// NewOutputError reports a problem writing output
func NewOutputError(message string, err error) *AppError {
	return newError(KindOutput, message, err)
}

// KindOf returns the kind of the first AppError in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

var kindPrefixes = map[Kind]string{
	KindInput:   "Input error",
	KindParsing: "Parsing error",
	KindConfig:  "Configuration error",
	KindRender:  "Render error",
	KindOutput:  "Output error",
}

var causeHints = []struct {
	cause error
	hint  string
}{
	{ErrEmptyInput, "The input is empty. Please provide some text to parse."},
	{ErrInvalidJSON, "The input contains invalid JSON. Use the tolerant or permissive mode for non-standard input."},
	{ErrFileNotFound, "The specified file could not be found. Please check the file path."},
	{ErrNoInput, "No input provided. Please specify a file with -i or pipe data to stdin."},
	{ErrInvalidFilePath, "Invalid file path. Please provide a valid file path."},
}

// UserFriendlyError renders err for the terminal. AppErrors are shown as
// "<Kind prefix>: <message>"; bare sentinel causes get a hint.
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if prefix, ok := kindPrefixes[appErr.Kind]; ok {
			return prefix + ": " + appErr.Message
		}
		return "Error: " + appErr.Message
	}

	for _, h := range causeHints {
		if errors.Is(err, h.cause) {
			return "Error: " + h.hint
		}
	}
	return fmt.Sprintf("Error: %v", err)
}
