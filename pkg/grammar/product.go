/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: product.go
Description: The three product variants of the species engine. They share valuation
arithmetic and the listing loop, and differ in how labels are split between the operands:
ordered products split by label order, labelled products freely and boxed products with the
smallest label pinned to the left operand. Each variant's counting formula weighs its
convolution by exactly the number of splits its enumerator produces.
*/

package grammar

import (
	"fmt"
	"iter"
	"math/big"
)

// Pair is the structure built by a product whose build callback is nil.
type Pair struct {
	Left, Right any
}

func (p Pair) String() string { return fmt.Sprintf("(%v, %v)", p.Left, p.Right) }

// product holds what the product variants share.
type product struct {
	base
	left, right string
	build       func(l, r any) any
}

func newProduct(left, right string, build func(l, r any) any) product {
	if build == nil {
		build = func(l, r any) any { return Pair{Left: l, Right: r} }
	}
	return product{base: base{valuation: Infinity}, left: left, right: right, build: build}
}

func (p *product) Operands() []string { return []string{p.left, p.right} }

func (p *product) relax() bool {
	v := addValuations(p.g.rules[p.left].Valuation(), p.g.rules[p.right].Valuation())
	if v == p.valuation {
		return false
	}
	p.valuation = v
	return true
}

// addValuations adds two valuations, keeping Infinity absorbing.
func addValuations(a, b int) int {
	if a == Infinity || b == Infinity {
		return Infinity
	}
	return a + b
}

func (p *product) operands() (Rule, Rule, error) {
	l, err := p.operand(p.left)
	if err != nil {
		return nil, nil, err
	}
	r, err := p.operand(p.right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

// convolve sums weight(n, k) * countL(k) * countR(n-k) for k from max(kmin, vL) to n - vR.
// A nil weight counts every k once.
func (p *product) convolve(q *query, n, kmin int, weight func(n, k int) *big.Int) (*big.Int, error) {
	l, r, err := p.operands()
	if err != nil {
		return nil, err
	}
	total := new(big.Int)
	term := new(big.Int)
	for k := max(kmin, l.Valuation()); k <= n-r.Valuation(); k++ {
		cl, err := q.count(l, k)
		if err != nil {
			return nil, err
		}
		if cl.Sign() == 0 {
			continue
		}
		cr, err := q.count(r, n-k)
		if err != nil {
			return nil, err
		}
		term.Mul(cl, cr)
		if weight != nil {
			term.Mul(term, weight(n, k))
		}
		total.Add(total, term)
	}
	return total, nil
}

// enumerate builds every product structure: split sizes ascending, then splits in
// enumerator order, then left structures, then right structures.
func (p *product) enumerate(q *query, labels []Label, kmin int, splits splitter) ([]any, error) {
	l, r, err := p.operands()
	if err != nil {
		return nil, err
	}
	var out []any
	n := len(labels)
	for k := max(kmin, l.Valuation()); k <= n-r.Valuation(); k++ {
		for head, tail := range splits(labels, k) {
			lefts, err := q.list(l, head)
			if err != nil {
				return nil, err
			}
			if len(lefts) == 0 {
				continue
			}
			rights, err := q.list(r, tail)
			if err != nil {
				return nil, err
			}
			for _, a := range lefts {
				for _, b := range rights {
					out = append(out, p.build(a, b))
				}
			}
		}
	}
	return out, nil
}

func binomial(n, k int) *big.Int {
	return new(big.Int).Binomial(int64(n), int64(k))
}

// OrderedProduct pairs structures where, for a left size k, the k smallest labels always
// go to the left operand.
type OrderedProduct struct{ product }

// Ordered returns the ordered product of left and right. A nil build yields a Pair.
func Ordered(left, right string, build func(l, r any) any) *OrderedProduct {
	return &OrderedProduct{newProduct(left, right, build)}
}

func (p *OrderedProduct) String() string {
	return fmt.Sprintf("Ordered(%s, %s)", p.left, p.right)
}

// Splits enumerates the label splits of size k used when listing p.
func (p *OrderedProduct) Splits(labels []Label, k int) iter.Seq2[[]Label, []Label] {
	return orderedSplits(labels, k)
}

func (p *OrderedProduct) Count(n int) (*big.Int, error)      { return countRule(p, n) }
func (p *OrderedProduct) List(labels []Label) ([]any, error) { return listRule(p, labels) }

func (p *OrderedProduct) count(q *query, n int) (*big.Int, error) {
	return p.convolve(q, n, 0, nil)
}

func (p *OrderedProduct) list(q *query, labels []Label) ([]any, error) {
	return p.enumerate(q, labels, 0, orderedSplits)
}

// LabelledProduct is the labelled product: any k of the n labels may form the left structure.
type LabelledProduct struct{ product }

// Labelled returns the labelled product of left and right. A nil build yields a Pair.
func Labelled(left, right string, build func(l, r any) any) *LabelledProduct {
	return &LabelledProduct{newProduct(left, right, build)}
}

func (p *LabelledProduct) String() string {
	return fmt.Sprintf("Labelled(%s, %s)", p.left, p.right)
}

// Splits enumerates the label splits of size k used when listing p.
func (p *LabelledProduct) Splits(labels []Label, k int) iter.Seq2[[]Label, []Label] {
	return labelledSplits(labels, k)
}

func (p *LabelledProduct) Count(n int) (*big.Int, error)      { return countRule(p, n) }
func (p *LabelledProduct) List(labels []Label) ([]any, error) { return listRule(p, labels) }

func (p *LabelledProduct) count(q *query, n int) (*big.Int, error) {
	return p.convolve(q, n, 0, binomial)
}

func (p *LabelledProduct) list(q *query, labels []Label) ([]any, error) {
	return p.enumerate(q, labels, 0, labelledSplits)
}

// BoxedProduct is the boxed product: the smallest label always belongs to the left structure.
type BoxedProduct struct{ product }

// Boxed returns the boxed product of left and right. A nil build yields a Pair.
func Boxed(left, right string, build func(l, r any) any) *BoxedProduct {
	return &BoxedProduct{newProduct(left, right, build)}
}

func (p *BoxedProduct) String() string {
	return fmt.Sprintf("Boxed(%s, %s)", p.left, p.right)
}

// Splits enumerates the label splits of size k used when listing p.
func (p *BoxedProduct) Splits(labels []Label, k int) iter.Seq2[[]Label, []Label] {
	return boxedSplits(labels, k)
}

func (p *BoxedProduct) Count(n int) (*big.Int, error)      { return countRule(p, n) }
func (p *BoxedProduct) List(labels []Label) ([]any, error) { return listRule(p, labels) }

// The pinned label leaves C(n-1, k-1) choices for the rest of the left structure.
func (p *BoxedProduct) count(q *query, n int) (*big.Int, error) {
	return p.convolve(q, n, 1, func(n, k int) *big.Int { return binomial(n-1, k-1) })
}

func (p *BoxedProduct) list(q *query, labels []Label) ([]any, error) {
	return p.enumerate(q, labels, 1, boxedSplits)
}
