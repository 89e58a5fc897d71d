/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rules.go
Description: Rule hierarchy of the species engine. A Rule is one named combinatorial class;
the unit variants (atomic and empty) and the disjoint union live here, the three product
variants live in product.go. Every variant carries its own valuation update, counting and
listing logic so the solver and the query layer never switch on variant identity.
*/

package grammar

import (
	"fmt"
	"math"
	"math/big"
)

// Label is one atom of a label set. Labels in a set must be pairwise distinct.
type Label = int

// Infinity is the valuation of a class that has not been solved yet, or that is empty.
const Infinity = math.MaxInt

// Rule is a combinatorial class inside a Grammar.
// The interface is sealed: the only implementations are the variants of this package.
type Rule interface {
	// Name returns the key the rule is bound to, or "" before the grammar is built.
	Name() string
	// Valuation returns the smallest size of any structure in the class.
	Valuation() int
	// Count returns the number of structures of size n.
	Count(n int) (*big.Int, error)
	// List builds every structure over the given labels, whose count is the structure size.
	List(labels []Label) ([]any, error)
	// Operands returns the names this rule refers to.
	Operands() []string

	bind(name string, g *Grammar)
	relax() bool
	count(q *query, n int) (*big.Int, error)
	list(q *query, labels []Label) ([]any, error)
}

// base holds the state every variant shares once bound.
type base struct {
	name      string
	g         *Grammar
	valuation int
}

func (b *base) Name() string   { return b.name }
func (b *base) Valuation() int { return b.valuation }

func (b *base) bind(name string, g *Grammar) {
	b.name = name
	b.g = g
}

// operand resolves a referenced class through the owning grammar.
func (b *base) operand(name string) (Rule, error) {
	if b.g == nil {
		return nil, &ConfigurationError{Rule: b.name, Reason: "rule is not bound to a grammar"}
	}
	r, ok := b.g.rules[name]
	if !ok {
		return nil, &ConfigurationError{Rule: b.name, Operand: name}
	}
	return r, nil
}

// AtomicUnit is the class holding one structure of size 1, built from its single label.
type AtomicUnit struct {
	base
	build func(Label) any
}

// Atom returns the size-1 class. A nil build callback yields the label itself.
func Atom(build func(Label) any) *AtomicUnit {
	if build == nil {
		build = func(l Label) any { return l }
	}
	return &AtomicUnit{base: base{valuation: 1}, build: build}
}

func (a *AtomicUnit) Operands() []string { return nil }
func (a *AtomicUnit) relax() bool        { return false }
func (a *AtomicUnit) String() string     { return "Atom" }

func (a *AtomicUnit) Count(n int) (*big.Int, error)      { return countRule(a, n) }
func (a *AtomicUnit) List(labels []Label) ([]any, error) { return listRule(a, labels) }

func (a *AtomicUnit) count(_ *query, n int) (*big.Int, error) {
	if n == 1 {
		return big.NewInt(1), nil
	}
	return new(big.Int), nil
}

func (a *AtomicUnit) list(_ *query, labels []Label) ([]any, error) {
	if len(labels) != 1 {
		return nil, nil
	}
	return []any{a.build(labels[0])}, nil
}

// EmptyUnit is the class holding one fixed structure of size 0.
type EmptyUnit struct {
	base
	payload any
}

// Empty returns the size-0 class whose only structure is payload.
func Empty(payload any) *EmptyUnit {
	return &EmptyUnit{base: base{valuation: 0}, payload: payload}
}

func (e *EmptyUnit) Operands() []string { return nil }
func (e *EmptyUnit) relax() bool        { return false }
func (e *EmptyUnit) String() string     { return fmt.Sprintf("Empty(%v)", e.payload) }

func (e *EmptyUnit) Count(n int) (*big.Int, error)      { return countRule(e, n) }
func (e *EmptyUnit) List(labels []Label) ([]any, error) { return listRule(e, labels) }

func (e *EmptyUnit) count(_ *query, n int) (*big.Int, error) {
	if n == 0 {
		return big.NewInt(1), nil
	}
	return new(big.Int), nil
}

func (e *EmptyUnit) list(_ *query, labels []Label) ([]any, error) {
	if len(labels) != 0 {
		return nil, nil
	}
	return []any{e.payload}, nil
}

// UnionRule is the disjoint union of two classes. Disjointness is the grammar author's
// responsibility; the engine cannot check it.
type UnionRule struct {
	base
	left, right string
}

// Union returns the union of the classes named left and right.
func Union(left, right string) *UnionRule {
	return &UnionRule{base: base{valuation: Infinity}, left: left, right: right}
}

func (u *UnionRule) Operands() []string { return []string{u.left, u.right} }
func (u *UnionRule) String() string     { return fmt.Sprintf("Union(%s, %s)", u.left, u.right) }

func (u *UnionRule) Count(n int) (*big.Int, error)      { return countRule(u, n) }
func (u *UnionRule) List(labels []Label) ([]any, error) { return listRule(u, labels) }

func (u *UnionRule) relax() bool {
	v := min(u.valuation, u.g.rules[u.left].Valuation(), u.g.rules[u.right].Valuation())
	if v == u.valuation {
		return false
	}
	u.valuation = v
	return true
}

func (u *UnionRule) count(q *query, n int) (*big.Int, error) {
	l, err := u.operand(u.left)
	if err != nil {
		return nil, err
	}
	r, err := u.operand(u.right)
	if err != nil {
		return nil, err
	}
	cl, err := q.count(l, n)
	if err != nil {
		return nil, err
	}
	cr, err := q.count(r, n)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(cl, cr), nil
}

func (u *UnionRule) list(q *query, labels []Label) ([]any, error) {
	l, err := u.operand(u.left)
	if err != nil {
		return nil, err
	}
	r, err := u.operand(u.right)
	if err != nil {
		return nil, err
	}
	lefts, err := q.list(l, labels)
	if err != nil {
		return nil, err
	}
	rights, err := q.list(r, labels)
	if err != nil {
		return nil, err
	}
	return append(lefts, rights...), nil
}
