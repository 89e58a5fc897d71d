/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: count.go
Description: Per-query state shared by the counting and listing engines. Each top-level
Count or List call owns a fresh query, so concurrent callers never share memo tables.
*/

package grammar

import (
	"fmt"
	"math/big"
)

// sizeKey addresses one sub-problem: a rule at a given size.
type sizeKey struct {
	rule string
	n    int
}

// query memoizes counts and tracks the sub-problems currently on the call stack.
type query struct {
	counts map[sizeKey]*big.Int
	active map[sizeKey]bool
}

func newQuery() *query {
	return &query{
		counts: make(map[sizeKey]*big.Int),
		active: make(map[sizeKey]bool),
	}
}

// enter marks key as in progress. Reaching the same rule at the same size again means
// the recursion can never bottom out.
func (q *query) enter(key sizeKey) error {
	if q.active[key] {
		return fmt.Errorf("%w: rule %q re-entered at size %d", ErrIllFounded, key.rule, key.n)
	}
	q.active[key] = true
	return nil
}

func (q *query) leave(key sizeKey) {
	delete(q.active, key)
}

// count returns the memoized count of r at size n. The result is shared and must not be mutated.
func (q *query) count(r Rule, n int) (*big.Int, error) {
	if n < r.Valuation() {
		return new(big.Int), nil
	}
	key := sizeKey{rule: r.Name(), n: n}
	if c, ok := q.counts[key]; ok {
		return c, nil
	}
	if err := q.enter(key); err != nil {
		return nil, err
	}
	defer q.leave(key)

	c, err := r.count(q, n)
	if err != nil {
		return nil, err
	}
	q.counts[key] = c
	return c, nil
}

func (q *query) list(r Rule, labels []Label) ([]any, error) {
	if len(labels) < r.Valuation() {
		return nil, nil
	}
	key := sizeKey{rule: r.Name(), n: len(labels)}
	if err := q.enter(key); err != nil {
		return nil, err
	}
	defer q.leave(key)
	return r.list(q, labels)
}

// countRule runs a fresh counting query rooted at r and hands back a caller-owned result.
func countRule(r Rule, n int) (*big.Int, error) {
	c, err := newQuery().count(r, n)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(c), nil
}

// listRule validates the label set and runs a fresh listing query rooted at r.
func listRule(r Rule, labels []Label) ([]any, error) {
	seen := make(map[Label]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("%w: label %d appears twice", ErrDuplicateLabel, l)
		}
		seen[l] = struct{}{}
	}
	out, err := newQuery().list(r, labels)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []any{}
	}
	return out, nil
}
