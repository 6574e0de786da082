package core

import (
	"fmt"
	"strings"
)

// checkConstraints evaluates every requirement layer against the typed
// record: required arguments, per-argument co-requirements, the
// command-level CNF, per-argument validators, and finally the
// command-level validator. The first failure wins.
func checkConstraints(cmd *Command, rec *Record) error {
	for _, p := range cmd.Args {
		if p.Arg.Required && !rec.Has(p.Name) {
			return fmt.Errorf("%w: %s", ErrMissingRequired, p.Name)
		}
	}

	for _, p := range cmd.Args {
		if !rec.Has(p.Name) {
			continue
		}

		for _, dep := range p.Arg.Requires {
			if !rec.Has(dep) {
				return fmt.Errorf("%w: %s requires %s", ErrMissingDependency, p.Name, dep)
			}
		}
	}

	for _, clause := range cmd.Requires {
		// An empty clause imposes nothing.
		if len(clause) == 0 {
			continue
		}

		if !clauseSatisfied(clause, rec) {
			return fmt.Errorf("%w: one of %s", ErrRequirementUnmet, strings.Join(clause, ", "))
		}
	}

	for _, p := range cmd.Args {
		if p.Arg.Validate == nil {
			continue
		}

		v, ok := rec.Get(p.Name)
		if !ok {
			continue
		}

		if err := p.Arg.Validate(v); err != nil {
			return err
		}
	}

	if cmd.Validate != nil {
		if err := cmd.Validate(rec); err != nil {
			return err
		}
	}

	return nil
}

func clauseSatisfied(clause []string, rec *Record) bool {
	for _, name := range clause {
		if rec.Has(name) {
			return true
		}
	}

	return false
}
