package core

import (
	"context"
	"fmt"
	"strings"
)

// flagsName is the reserved key under which a short-flag cluster is
// resolved; no argument may be declared with it.
const flagsName = "flags"

// ArgType is the declared type of a parameter. It drives both storage and
// coercion.
type ArgType int

const (
	TypeBool ArgType = iota
	TypeNat
	TypeInt
	TypeString
	TypeFloat
	TypeFile
	TypeFolder
)

func (t ArgType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeNat:
		return "nat"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	case TypeFloat:
		return "float"
	case TypeFile:
		return "file"
	case TypeFolder:
		return "folder"
	}

	return "unknown"
}

// Arg declares a single parameter of a Command.
type Arg struct {
	// Help describes the argument. Opaque to the pipeline.
	Help string

	Type ArgType

	// Required arguments must resolve to a value; a required argument
	// cannot also carry a Default.
	Required bool

	// Requires names sibling arguments that must also be present whenever
	// this argument is.
	Requires []string

	// Default is used when the argument is absent from input.
	Default *Value

	// FlagChars lists single-character shortcuts for Bool arguments; each
	// character toggles presence.
	FlagChars string

	// Flags maps single-character shortcuts to the value they select, for
	// non-Bool arguments. Mapped values must be of the argument's type.
	Flags map[rune]Value

	// OneOf restricts the argument to the listed values. Empty means any
	// value of the type is allowed.
	OneOf []Value

	// Validate runs against the coerced value.
	Validate func(Value) error
}

// Param pairs an argument name with its declaration. Commands hold params
// in a slice to preserve declaration order.
type Param struct {
	Name string
	Arg  Arg
}

// Command is an immutable schema node. Construct once, share freely:
// every execute call reads the schema and never writes it.
type Command struct {
	// Help describes the command. Opaque to the pipeline.
	Help string

	// Args declares parameters in order. Names must be unique and must
	// not be the literal "flags".
	Args []Param

	// DefaultParams are the positional arity groups: the group whose
	// length equals the number of supplied positionals is paired with
	// them in order. No two groups may share a length.
	DefaultParams [][]string

	// Requires is a conjunction of "at least one of" clauses over
	// argument names. An empty clause imposes nothing.
	Requires [][]string

	// Subcommands maps literal tokens to child commands. A command may
	// declare arity groups or subcommands, not both.
	Subcommands map[string]*Command

	// Validate runs against the fully typed record, after coercion and
	// path resolution.
	Validate func(*Record) error

	// Handler receives the validated record; invoked only if every prior
	// stage succeeds.
	Handler func(context.Context, *Record) (any, error)
}

// Check verifies the schema's static invariants, recursing into
// subcommands. Execute runs it before reading any token.
func (c *Command) Check() error {
	names := make(map[string]bool, len(c.Args))
	shortcuts := make(map[rune]bool)

	for _, p := range c.Args {
		if err := checkParam(p, names, shortcuts); err != nil {
			return err
		}
	}

	for _, p := range c.Args {
		for _, dep := range p.Arg.Requires {
			if !names[dep] {
				return fmt.Errorf("%w: argument %q requires undeclared %q", ErrInvalidSchema, p.Name, dep)
			}
		}
	}

	if len(c.DefaultParams) > 0 && len(c.Subcommands) > 0 {
		return fmt.Errorf("%w: default params and subcommands are mutually exclusive", ErrInvalidSchema)
	}

	if err := checkDefaultParams(c.DefaultParams, names); err != nil {
		return err
	}

	for _, clause := range c.Requires {
		for _, name := range clause {
			if !names[name] {
				return fmt.Errorf("%w: requirement names undeclared argument %q", ErrInvalidSchema, name)
			}
		}
	}

	for token, sub := range c.Subcommands {
		if sub == nil {
			return fmt.Errorf("%w: subcommand %q is nil", ErrInvalidSchema, token)
		}

		if err := sub.Check(); err != nil {
			return err
		}
	}

	return nil
}

func checkParam(p Param, names map[string]bool, shortcuts map[rune]bool) error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty argument name", ErrInvalidSchema)
	}

	if p.Name == flagsName {
		return fmt.Errorf("%w: argument name %q is reserved", ErrInvalidSchema, flagsName)
	}

	if names[p.Name] {
		return fmt.Errorf("%w: duplicate argument name %q", ErrInvalidSchema, p.Name)
	}

	names[p.Name] = true

	if p.Arg.Required && p.Arg.Default != nil {
		return fmt.Errorf("%w: required argument %q carries a default", ErrInvalidSchema, p.Name)
	}

	if err := checkShape(p); err != nil {
		return err
	}

	if err := checkValueTypes(p); err != nil {
		return err
	}

	return registerShortcuts(p, shortcuts)
}

// checkShape enforces the flag-shortcut shape: Bool args use the plain
// character-set form, everything else the value-mapping form.
func checkShape(p Param) error {
	if p.Arg.Type == TypeBool && len(p.Arg.Flags) > 0 {
		return fmt.Errorf("%w: bool argument %q must use FlagChars, not Flags", ErrInvalidSchema, p.Name)
	}

	if p.Arg.Type != TypeBool && p.Arg.FlagChars != "" {
		return fmt.Errorf("%w: non-bool argument %q must use Flags, not FlagChars", ErrInvalidSchema, p.Name)
	}

	return nil
}

func checkValueTypes(p Param) error {
	if p.Arg.Default != nil && p.Arg.Default.Type() != p.Arg.Type {
		return fmt.Errorf(
			"%w: default for %q is %s, want %s",
			ErrInvalidSchema, p.Name, p.Arg.Default.Type(), p.Arg.Type,
		)
	}

	for _, v := range p.Arg.OneOf {
		if v.Type() != p.Arg.Type {
			return fmt.Errorf(
				"%w: oneOf value for %q is %s, want %s",
				ErrInvalidSchema, p.Name, v.Type(), p.Arg.Type,
			)
		}
	}

	for c, v := range p.Arg.Flags {
		if v.Type() != p.Arg.Type {
			return fmt.Errorf(
				"%w: flag %q for %q maps to %s, want %s",
				ErrInvalidSchema, string(c), p.Name, v.Type(), p.Arg.Type,
			)
		}
	}

	return nil
}

func registerShortcuts(p Param, shortcuts map[rune]bool) error {
	for _, c := range p.Arg.FlagChars {
		if shortcuts[c] {
			return fmt.Errorf("%w: flag %q already defined", ErrInvalidSchema, string(c))
		}

		shortcuts[c] = true
	}

	for c := range p.Arg.Flags {
		if shortcuts[c] {
			return fmt.Errorf("%w: flag %q already defined", ErrInvalidSchema, string(c))
		}

		shortcuts[c] = true
	}

	return nil
}

func checkDefaultParams(groups [][]string, names map[string]bool) error {
	lengths := make(map[int]bool, len(groups))

	for _, group := range groups {
		if lengths[len(group)] {
			return fmt.Errorf("%w: two default groups of length %d", ErrInvalidSchema, len(group))
		}

		lengths[len(group)] = true

		for _, name := range group {
			if !names[name] {
				return fmt.Errorf("%w: default group names undeclared argument %q", ErrInvalidSchema, name)
			}
		}

		if hasDuplicate(group) {
			return fmt.Errorf("%w: default group repeats a name: %s", ErrInvalidSchema, strings.Join(group, ", "))
		}
	}

	return nil
}

func hasDuplicate(names []string) bool {
	seen := make(map[string]bool, len(names))

	for _, n := range names {
		if seen[n] {
			return true
		}

		seen[n] = true
	}

	return false
}
