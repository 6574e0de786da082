package core

import "strings"

type tokenKind int

const (
	tokenPositional tokenKind = iota
	tokenNamed
	tokenFlags
)

// token is one classified argument from the input vector. warning, when
// set, is advisory: it rides along without aborting the parse.
type token struct {
	kind     tokenKind
	pos      int
	name     string
	value    string
	hasValue bool
	flags    []rune
	warning  *ParseError
}

// tokenize classifies a single raw argument at index pos of the vector.
func tokenize(raw string, pos int) (token, *ParseError) {
	if body, ok := strings.CutPrefix(raw, "--"); ok {
		return tokenizeNamed(raw, body, pos)
	}

	if strings.HasPrefix(raw, "-") {
		return tokenizeFlags(raw, pos), nil
	}

	return token{kind: tokenPositional, pos: pos, value: raw}, nil
}

func tokenizeNamed(raw, body string, pos int) (token, *ParseError) {
	name := body
	value := ""
	hasValue := false

	if eq := strings.Index(body, "="); eq >= 0 {
		name = body[:eq]
		value = body[eq+1:]
		hasValue = true
	}

	for _, r := range name {
		if !isASCIILetter(r) {
			return token{}, &ParseError{Kind: ForbiddenArgName, Position: pos, Value: raw}
		}
	}

	return token{kind: tokenNamed, pos: pos, name: name, value: value, hasValue: hasValue}, nil
}

func tokenizeFlags(raw string, pos int) token {
	t := token{kind: tokenFlags, pos: pos}

	body := raw[1:]
	if body == "" {
		t.warning = &ParseError{Kind: EmptyFlagArg, Position: pos}
		return t
	}

	seen := make(map[rune]bool, len(body))

	for _, r := range body {
		if seen[r] {
			if t.warning == nil {
				t.warning = &ParseError{Kind: DuplicateFlag, Position: pos, Name: string(r)}
			}

			continue
		}

		seen[r] = true
		t.flags = append(t.flags, r)
	}

	return t
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
