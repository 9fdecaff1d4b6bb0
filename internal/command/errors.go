package command

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	InvalidFlag ErrorKind = iota
	InvalidValue
	MissingValue
	// ConflictingFlags is reserved; Parse does not detect conflicts.
	ConflictingFlags
)

var (
	ErrInvalidFlag      = errors.New("invalid flag")
	ErrInvalidValue     = errors.New("invalid value")
	ErrMissingValue     = errors.New("missing value")
	ErrConflictingFlags = errors.New("conflicting flags")
)

// ParseError describes why a command line could not be parsed.
type ParseError struct {
	Kind  ErrorKind
	Flag  string
	Value string
	// Other is the second flag of a conflict.
	Other string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidFlag:
		return fmt.Sprintf("invalid flag: %s", e.Flag)
	case InvalidValue:
		return fmt.Sprintf("invalid value '%s' for flag %s", e.Value, e.Flag)
	case MissingValue:
		return fmt.Sprintf("missing value for flag %s", e.Flag)
	case ConflictingFlags:
		return fmt.Sprintf("conflicting flags: %s and %s", e.Flag, e.Other)
	}
	return "parse error"
}

// Is matches the sentinel for the error's kind.
func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case InvalidFlag:
		return target == ErrInvalidFlag
	case InvalidValue:
		return target == ErrInvalidValue
	case MissingValue:
		return target == ErrMissingValue
	case ConflictingFlags:
		return target == ErrConflictingFlags
	}
	return false
}

func invalidFlag(flag string) error {
	return &ParseError{Kind: InvalidFlag, Flag: flag}
}

func invalidValue(flag, value string) error {
	return &ParseError{Kind: InvalidValue, Flag: flag, Value: value}
}

func missingValue(flag string) error {
	return &ParseError{Kind: MissingValue, Flag: flag}
}
