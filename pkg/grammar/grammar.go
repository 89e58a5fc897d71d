/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar.go
Description: Grammar registry for the species engine. New validates that every operand name
resolves, binds each rule to its name and to the grammar, and solves valuations once. After
that the grammar is read-only and answers Count and List queries by rule name.
*/

package grammar

import (
	"fmt"
	"io"
	"math/big"
	"slices"

	"github.com/sirupsen/logrus"
)

// Grammar is a validated, solved set of named rules.
type Grammar struct {
	rules  map[string]Rule
	names  []string
	passes int
	logger logrus.FieldLogger
}

// Option configures a Grammar at construction.
type Option func(*Grammar)

// WithLogger routes solver diagnostics to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Grammar) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New validates rules, binds them and computes their valuations.
// It fails with a *ConfigurationError when a rule references a name that is not a key of rules.
// Rule values are bound to the returned grammar and must not be reused in another one.
func New(rules map[string]Rule, opts ...Option) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyGrammar
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	g := &Grammar{
		rules:  make(map[string]Rule, len(rules)),
		logger: quiet,
	}
	for _, opt := range opts {
		opt(g)
	}

	for name := range rules {
		g.names = append(g.names, name)
	}
	slices.Sort(g.names)

	if err := check(rules, g.names); err != nil {
		return nil, err
	}

	for _, name := range g.names {
		g.rules[name] = rules[name]
		rules[name].bind(name, g)
	}

	if err := g.solve(); err != nil {
		return nil, err
	}
	return g, nil
}

// check verifies referential closure, reporting the first problem in name order.
func check(rules map[string]Rule, names []string) error {
	var problems []*ConfigurationError
	for _, name := range names {
		r := rules[name]
		if r == nil {
			problems = append(problems, &ConfigurationError{Rule: name, Reason: "nil rule"})
			continue
		}
		for _, op := range r.Operands() {
			if _, ok := rules[op]; !ok {
				problems = append(problems, &ConfigurationError{Rule: name, Operand: op})
			}
		}
	}
	switch len(problems) {
	case 0:
		return nil
	case 1:
		return problems[0]
	default:
		return fmt.Errorf("%w (and %d more)", problems[0], len(problems)-1)
	}
}

// Rule returns the rule bound to name.
func (g *Grammar) Rule(name string) (Rule, bool) {
	r, ok := g.rules[name]
	return r, ok
}

// Names returns the rule names in sorted order.
func (g *Grammar) Names() []string { return slices.Clone(g.names) }

// Len returns the number of rules.
func (g *Grammar) Len() int { return len(g.names) }

// Passes returns how many solver scans ran, the final quiet scan included.
func (g *Grammar) Passes() int { return g.passes }

func (g *Grammar) lookup(name string) (Rule, error) {
	r, ok := g.rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return r, nil
}

// Valuation returns the valuation of the named rule.
func (g *Grammar) Valuation(name string) (int, error) {
	r, err := g.lookup(name)
	if err != nil {
		return 0, err
	}
	return r.Valuation(), nil
}

// Valuations returns every rule's valuation keyed by name.
func (g *Grammar) Valuations() map[string]int {
	out := make(map[string]int, len(g.rules))
	for name, r := range g.rules {
		out[name] = r.Valuation()
	}
	return out
}

// Count returns the number of structures of size n in the named class.
// Sizes below the class valuation, negative ones included, count zero.
func (g *Grammar) Count(name string, n int) (*big.Int, error) {
	r, err := g.lookup(name)
	if err != nil {
		return nil, err
	}
	return r.Count(n)
}

// List builds every structure of the named class over labels. A label set whose size
// admits no structure yields an empty slice.
func (g *Grammar) List(name string, labels []Label) ([]any, error) {
	r, err := g.lookup(name)
	if err != nil {
		return nil, err
	}
	return r.List(labels)
}

// Rank would map a structure of the named class to its index in List order.
func (g *Grammar) Rank(name string, labels []Label, structure any) (*big.Int, error) {
	return nil, fmt.Errorf("%w: rank of %q", ErrNotImplemented, name)
}

// Unrank would build the structure of the named class at index in List order.
func (g *Grammar) Unrank(name string, labels []Label, index *big.Int) (any, error) {
	return nil, fmt.Errorf("%w: unrank of %q", ErrNotImplemented, name)
}
