// Package argyle is a schema-driven command-line argument parser and
// dispatcher. A consumer declares a Command — named, positional, and flag
// parameters with types, defaults, requirement relationships, and
// subcommands — and Execute turns a raw argument vector into a validated,
// typed Record handed to the command's handler.
//
// The pipeline is: tokenize → resolve (subcommand hand-off, positional
// buffering, named collection) → default-arity matching → flag-cluster
// expansion → typed coercion → concurrent File/Folder resolution →
// constraint validation → dispatch. Any stage short-circuits with an
// error and the handler is never called.
package argyle

import (
	"context"

	"github.com/argyle-sh/argyle/fsys"
	"github.com/argyle-sh/argyle/internal/core"
)

// --- Re-exported types from core ---

// ArgType is the declared type of a parameter.
type ArgType = core.ArgType

// Arg declares a single parameter of a Command.
type Arg = core.Arg

// Param pairs an argument name with its declaration.
type Param = core.Param

// Command is an immutable schema node, shared read-only across calls.
type Command = core.Command

// Record is the ordered, typed argument record handed to handlers.
type Record = core.Record

// Value is a typed argument value, one variant per ArgType.
type Value = core.Value

// Result carries the handler's return value and any advisory warnings.
type Result = core.Result

// ParseError is a parse or validation finding with its argument position.
type ParseError = core.ParseError

// ErrorKind identifies a ParseError variant.
type ErrorKind = core.ErrorKind

// Re-export ArgType constants.
const (
	TypeBool   = core.TypeBool
	TypeNat    = core.TypeNat
	TypeInt    = core.TypeInt
	TypeString = core.TypeString
	TypeFloat  = core.TypeFloat
	TypeFile   = core.TypeFile
	TypeFolder = core.TypeFolder
)

// Re-export ErrorKind constants.
const (
	ForbiddenArgName      = core.ForbiddenArgName
	EmptyFlagArg          = core.EmptyFlagArg
	DuplicateFlag         = core.DuplicateFlag
	DuplicateNamedArg     = core.DuplicateNamedArg
	DuplicateDefaultArg   = core.DuplicateDefaultArg
	NamelessAfterNamedArg = core.NamelessAfterNamedArg
	UnknownCommand        = core.UnknownCommand
	ConversionError       = core.ConversionError
)

// Re-export sentinel errors for constraint and schema failures.
var (
	ErrInvalidSchema     = core.ErrInvalidSchema
	ErrMissingDependency = core.ErrMissingDependency
	ErrMissingRequired   = core.ErrMissingRequired
	ErrNoFilesystem      = core.ErrNoFilesystem
	ErrNoHandler         = core.ErrNoHandler
	ErrRequirementUnmet  = core.ErrRequirementUnmet
)

// --- Value constructors ---

// Bool returns a Bool-typed value.
func Bool(v bool) Value { return core.Bool(v) }

// Nat returns a Nat-typed value.
func Nat(v uint64) Value { return core.Nat(v) }

// Int returns an Int-typed value.
func Int(v int64) Value { return core.Int(v) }

// Float returns a Float-typed value.
func Float(v float64) Value { return core.Float(v) }

// String returns a String-typed value.
func String(v string) Value { return core.String(v) }

// FilePath returns an unresolved File-typed value holding a path.
func FilePath(path string) Value { return core.FilePath(path) }

// FolderPath returns an unresolved Folder-typed value holding a path.
func FolderPath(path string) Value { return core.FolderPath(path) }

// --- Public API ---

// Execute parses args against cmd, resolves File and Folder arguments
// through fs, and dispatches to the selected command's handler. args
// excludes the program name. The returned Result carries advisory
// warnings even when an error is also returned.
func Execute(ctx context.Context, cmd *Command, args []string, fs fsys.FS) (Result, error) {
	return core.Execute(ctx, cmd, args, fs)
}
