package fmrierr

import (
	"errors"
	"fmt"
)

// Kind identifies the class of problem found while parsing an identifier.
type Kind int

const (
	UnknownKind Kind = iota
	InvalidCharacter
	EmptyPackageName
	MalformedPublisherClause
	InvalidSegment
	MalformedVersionClause
)

var kindStr = []string{
	"UnknownKind",
	"InvalidCharacter",
	"EmptyPackageName",
	"MalformedPublisherClause",
	"InvalidSegment",
	"MalformedVersionClause",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) || k < 0 {
		return kindStr[0]
	}

	return kindStr[k]
}

var (
	// ErrInvalidCharacter indicates an '@' was found in a package name or publisher.
	ErrInvalidCharacter = &ParseError{Kind: InvalidCharacter}

	// ErrEmptyPackageName indicates nothing remained of the package name after stripping.
	ErrEmptyPackageName = &ParseError{Kind: EmptyPackageName}

	// ErrMalformedPublisherClause indicates "pkg://" was misplaced or not followed by "publisher/".
	ErrMalformedPublisherClause = &ParseError{Kind: MalformedPublisherClause}

	// ErrInvalidSegment indicates a component, build or branch slot is not a dotted run of digits.
	ErrInvalidSegment = &ParseError{Kind: InvalidSegment}

	// ErrMalformedVersionClause indicates a structural problem with the version clause as a whole.
	ErrMalformedVersionClause = &ParseError{Kind: MalformedVersionClause}
)

// ParseError describes why a raw string could not be turned into a value.
type ParseError struct {
	Kind   Kind
	Input  string
	Detail string
	Err    error
}

func New(kind Kind, input, detail string) *ParseError {
	return &ParseError{
		Kind:   kind,
		Input:  input,
		Detail: detail,
	}
}

func Wrap(kind Kind, input string, err error) *ParseError {
	return &ParseError{
		Kind:  kind,
		Input: input,
		Err:   err,
	}
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Input != "" {
		msg = fmt.Sprintf("%s in %q", msg, e.Input)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches any ParseError of the same kind, so the package-level sentinels can be used with errors.Is.
func (e *ParseError) Is(target error) bool {
	var t *ParseError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == UnknownKind || t.Kind == e.Kind
}

// KindOf returns the kind of the first ParseError found in the chain of err.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return UnknownKind
}
