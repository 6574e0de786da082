package core

import (
	"strconv"
	"strings"
)

// expandFlags distributes the short-flag cluster over the active command's
// arguments: Bool shortcuts become bare presence, value-mapped shortcuts
// supply their typed value directly. Characters matching no declared
// shortcut are ignored. A shortcut whose argument already resolved fails
// with DuplicateNamedArg at the cluster token's position.
func (res *resolution) expandFlags() *ParseError {
	for _, c := range res.cluster {
		p, ok := paramForShortcut(res.cmd, c)
		if !ok {
			continue
		}

		if _, dup := res.resolved[p.Name]; dup {
			return &ParseError{Kind: DuplicateNamedArg, Position: res.clusterPos, Name: p.Name}
		}

		if p.Arg.Type == TypeBool {
			res.resolved[p.Name] = raw{pos: res.clusterPos}
			continue
		}

		v := p.Arg.Flags[c]
		res.resolved[p.Name] = raw{pos: res.clusterPos, typed: &v}
	}

	return nil
}

func paramForShortcut(cmd *Command, c rune) (Param, bool) {
	for _, p := range cmd.Args {
		if p.Arg.Type == TypeBool {
			if strings.ContainsRune(p.Arg.FlagChars, c) {
				return p, true
			}

			continue
		}

		if _, ok := p.Arg.Flags[c]; ok {
			return p, true
		}
	}

	return Param{}, false
}

// coerce converts every resolved raw value to its declared type, in
// declaration order, applying defaults for absent arguments. File and
// Folder values stay as paths for the resolution phase.
func coerce(cmd *Command, res *resolution) (*Record, *ParseError) {
	rec := newRecord()

	for _, p := range cmd.Args {
		rw, ok := res.resolved[p.Name]
		if !ok {
			if p.Arg.Default != nil {
				rec.set(p.Name, *p.Arg.Default)
			}

			continue
		}

		var v Value

		if rw.typed != nil {
			v = *rw.typed
		} else {
			coerced, perr := coerceRaw(p, rw)
			if perr != nil {
				return nil, perr
			}

			v = coerced
		}

		if perr := checkOneOf(p, v, rw); perr != nil {
			return nil, perr
		}

		rec.set(p.Name, v)
	}

	return rec, nil
}

// coerceRaw is the typed coercion matrix: one case per ArgType.
func coerceRaw(p Param, rw raw) (Value, *ParseError) {
	conv := func() *ParseError {
		return &ParseError{
			Kind:     ConversionError,
			Position: rw.pos,
			Name:     p.Name,
			Value:    rw.value,
			Want:     p.Arg.Type,
		}
	}

	switch p.Arg.Type {
	case TypeBool:
		// Bare presence implies true.
		if !rw.hasValue {
			return Bool(true), nil
		}

		switch rw.value {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}

		return Value{}, conv()

	case TypeNat:
		if !rw.hasValue {
			return Value{}, conv()
		}

		n, err := strconv.ParseUint(rw.value, 10, 64)
		if err != nil {
			return Value{}, conv()
		}

		return Nat(n), nil

	case TypeInt:
		if !rw.hasValue {
			return Value{}, conv()
		}

		n, err := strconv.ParseInt(rw.value, 10, 64)
		if err != nil {
			return Value{}, conv()
		}

		return Int(n), nil

	case TypeFloat:
		if !rw.hasValue {
			return Value{}, conv()
		}

		f, err := strconv.ParseFloat(rw.value, 64)
		if err != nil {
			return Value{}, conv()
		}

		return Float(f), nil

	case TypeString:
		// Pass through unchanged; bare presence yields the empty string.
		return String(rw.value), nil

	case TypeFile:
		return FilePath(rw.value), nil

	case TypeFolder:
		return FolderPath(rw.value), nil
	}

	return Value{}, conv()
}

// checkOneOf treats a value outside the declared restriction set as one
// more coercion failure.
func checkOneOf(p Param, v Value, rw raw) *ParseError {
	if len(p.Arg.OneOf) == 0 {
		return nil
	}

	for _, allowed := range p.Arg.OneOf {
		if v.Equal(allowed) {
			return nil
		}
	}

	return &ParseError{
		Kind:     ConversionError,
		Position: rw.pos,
		Name:     p.Name,
		Value:    v.String(),
		Want:     p.Arg.Type,
	}
}
