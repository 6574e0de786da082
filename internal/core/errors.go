package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for schema and constraint failures. Callers match them
// with errors.Is.
var (
	ErrInvalidSchema     = errors.New("invalid command schema")
	ErrMissingDependency = errors.New("missing co-required argument")
	ErrMissingRequired   = errors.New("missing required argument")
	ErrNoFilesystem      = errors.New("no filesystem for path arguments")
	ErrNoHandler         = errors.New("command has no handler")
	ErrRequirementUnmet  = errors.New("command requirement unmet")
)

// ErrorKind identifies a ParseError variant. The set is closed: every
// failure the parsing pipeline can produce is one of these.
type ErrorKind int

const (
	ForbiddenArgName ErrorKind = iota
	EmptyFlagArg
	DuplicateFlag
	DuplicateNamedArg
	DuplicateDefaultArg
	NamelessAfterNamedArg
	UnknownCommand
	ConversionError
)

func (k ErrorKind) String() string {
	switch k {
	case ForbiddenArgName:
		return "forbidden argument name"
	case EmptyFlagArg:
		return "empty flag argument"
	case DuplicateFlag:
		return "duplicate flag"
	case DuplicateNamedArg:
		return "duplicate named argument"
	case DuplicateDefaultArg:
		return "duplicate default argument"
	case NamelessAfterNamedArg:
		return "positional argument after named argument"
	case UnknownCommand:
		return "unknown command"
	case ConversionError:
		return "conversion error"
	}

	return "unknown parse error"
}

// ParseError is a parse or validation finding. Position indexes into the
// argument vector handed to Execute. Name, Value, and Want are filled per
// kind: Name carries the argument or flag involved, Value the raw token
// or offending text, Want the expected type for conversion failures.
type ParseError struct {
	Kind     ErrorKind
	Position int
	Name     string
	Value    string
	Want     ArgType
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ForbiddenArgName:
		return fmt.Sprintf("%s in %q at argument %d", e.Kind, e.Value, e.Position)
	case EmptyFlagArg:
		return fmt.Sprintf("%s at argument %d", e.Kind, e.Position)
	case DuplicateFlag:
		return fmt.Sprintf("%s %q at argument %d", e.Kind, e.Name, e.Position)
	case DuplicateNamedArg, DuplicateDefaultArg:
		return fmt.Sprintf("%s %q at argument %d", e.Kind, e.Name, e.Position)
	case NamelessAfterNamedArg:
		return fmt.Sprintf("%s at argument %d", e.Kind, e.Position)
	case UnknownCommand:
		return fmt.Sprintf("%s %q at argument %d", e.Kind, e.Name, e.Position)
	case ConversionError:
		return fmt.Sprintf("cannot convert %q to %s for %q at argument %d", e.Value, e.Want, e.Name, e.Position)
	}

	return e.Kind.String()
}

// Is matches two ParseErrors by kind, so errors.Is(err, &ParseError{Kind: k})
// tests the variant without comparing positions.
func (e *ParseError) Is(target error) bool {
	var other *ParseError
	if !errors.As(target, &other) {
		return false
	}

	return e.Kind == other.Kind
}
