/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Sentinel errors and the configuration error type for the species grammar engine.
Configuration problems are reported once, when a grammar is built; every query afterwards is
total and only fails for unknown names, duplicate labels or ill-founded recursion.
*/

package grammar

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the root of every grammar construction failure.
	ErrConfiguration = errors.New("grammar: invalid configuration")
	// ErrEmptyGrammar indicates New was called without any rules.
	ErrEmptyGrammar = fmt.Errorf("%w: grammar has no rules", ErrConfiguration)
	// ErrUnknownRule indicates a query addressed a name the grammar does not define.
	ErrUnknownRule = errors.New("grammar: unknown rule")
	// ErrDuplicateLabel indicates a label set passed to List contains a repeated label.
	ErrDuplicateLabel = errors.New("grammar: labels must be pairwise distinct")
	// ErrIllFounded indicates a rule recursed into itself at the same size, so the class
	// has unboundedly many derivations of that size.
	ErrIllFounded = errors.New("grammar: ill-founded recursion")
	// ErrNotImplemented is returned by operations that are declared but not supported.
	ErrNotImplemented = errors.New("grammar: not implemented")
)

// ConfigurationError describes a single rule that cannot be bound into its grammar.
type ConfigurationError struct {
	Rule    string // name of the offending rule
	Operand string // operand name that failed to resolve, if any
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Operand != "" {
		return fmt.Sprintf("grammar: rule %q references undefined rule %q", e.Rule, e.Operand)
	}
	return fmt.Sprintf("grammar: rule %q: %s", e.Rule, e.Reason)
}

// Unwrap lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
