package core

// raw is a pre-coercion value stored under a parameter name. A raw with
// hasValue false records bare presence (e.g. `--verbose`). typed, when
// set, came from a value-mapped flag shortcut and bypasses string
// coercion.
type raw struct {
	value    string
	hasValue bool
	pos      int
	typed    *Value
}

// resolution is the per-call mutable state of the resolver: the active
// command after any subcommand hand-off, the name→raw map, the buffered
// positionals, and the accumulated advisory warnings.
type resolution struct {
	cmd        *Command
	resolved   map[string]raw
	defaults   []token
	cluster    []rune
	clusterPos int
	warnings   []*ParseError
}

// resolve walks the argument vector left to right against root, switching
// the active command on subcommand tokens and collecting named and
// positional values. The returned resolution is valid for its warnings
// even when a fatal ParseError is also returned.
func resolve(root *Command, args []string) (*resolution, *ParseError) {
	res := &resolution{cmd: root, resolved: map[string]raw{}}
	named := false

	for i, a := range args {
		tok, perr := tokenize(a, i)
		if perr != nil {
			return res, perr
		}

		if tok.warning != nil {
			res.warnings = append(res.warnings, tok.warning)
		}

		switch tok.kind {
		case tokenPositional:
			if perr := res.takePositional(tok, named); perr != nil {
				return res, perr
			}

		case tokenNamed:
			named = true

			if _, dup := res.resolved[tok.name]; dup {
				return res, &ParseError{Kind: DuplicateNamedArg, Position: i, Name: tok.name}
			}

			res.resolved[tok.name] = raw{value: tok.value, hasValue: tok.hasValue, pos: i}

		case tokenFlags:
			named = true

			if _, dup := res.resolved[flagsName]; dup {
				return res, &ParseError{Kind: DuplicateNamedArg, Position: i, Name: flagsName}
			}

			res.resolved[flagsName] = raw{pos: i}
			res.cluster = tok.flags
			res.clusterPos = i
		}
	}

	return res, nil
}

// takePositional buffers a positional token, or consumes it as a
// subcommand selector when the active command declares subcommands.
func (res *resolution) takePositional(tok token, named bool) *ParseError {
	if named {
		return &ParseError{Kind: NamelessAfterNamedArg, Position: tok.pos}
	}

	if len(res.cmd.Subcommands) > 0 {
		sub, ok := res.cmd.Subcommands[tok.value]
		if !ok {
			return &ParseError{Kind: UnknownCommand, Position: tok.pos, Name: tok.value}
		}

		res.cmd = sub

		return nil
	}

	res.defaults = append(res.defaults, tok)

	return nil
}

// applyDefaults pairs buffered positionals with the arity group whose
// length matches their count. With no matching group the positionals stay
// unassigned.
func (res *resolution) applyDefaults() *ParseError {
	group, ok := res.arityGroup()
	if !ok {
		return nil
	}

	for i, name := range group {
		tok := res.defaults[i]

		if _, dup := res.resolved[name]; dup {
			return &ParseError{Kind: DuplicateDefaultArg, Position: tok.pos, Name: name}
		}

		res.resolved[name] = raw{value: tok.value, hasValue: true, pos: tok.pos}
	}

	return nil
}

func (res *resolution) arityGroup() ([]string, bool) {
	for _, group := range res.cmd.DefaultParams {
		if len(group) == len(res.defaults) {
			return group, true
		}
	}

	return nil, false
}
