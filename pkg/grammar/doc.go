// Package grammar implements a combinatorial species engine: named classes built from
// atoms, empty objects, disjoint unions and three kinds of labelled products, with exact
// counting and exhaustive listing of their structures.
//
// Overview:
//
//   - A grammar is a map from names to rules. Rules refer to each other by name, so
//     definitions may be mutually or self recursive (a Tree whose Node holds two Trees).
//   - New checks that every referenced name exists, binds the rules, and solves the
//     valuation (minimum structure size) of every class by fixpoint relaxation.
//   - Count(name, n) returns the exact number of structures of size n as a *big.Int.
//   - List(name, labels) builds every structure over a concrete set of distinct labels.
//
// Constructors:
//
//   - Atom(build):               one structure of size 1, built from its label.
//   - Empty(payload):            one structure of size 0.
//   - Union(a, b):               disjoint union; count(n) = a(n) + b(n).
//   - Ordered(a, b, build):      the k smallest labels go to a;
//     count(n) = Σ a(k)·b(n−k).
//   - Labelled(a, b, build):     any k labels go to a;
//     count(n) = Σ C(n,k)·a(k)·b(n−k).
//   - Boxed(a, b, build):        the smallest label is pinned to a;
//     count(n) = Σ C(n−1,k−1)·a(k)·b(n−k), k ≥ 1.
//
// Every product's label-split enumerator (see the Splits methods) yields exactly the
// number of splits its formula weighs, so len(List(name, L)) == Count(name, len(L)) for
// every rule and every label set L.
//
// Degenerate inputs are not errors: a size below the valuation counts zero and a label
// set of the wrong size lists nothing.
//
// Error handling (sentinel errors):
//
//   - ErrConfiguration: root of construction failures; *ConfigurationError names the
//     rule and the undefined operand.
//   - ErrEmptyGrammar:   New was given no rules.
//   - ErrUnknownRule:    a query named a rule the grammar does not define.
//   - ErrDuplicateLabel: List was given a label twice.
//   - ErrIllFounded:     a rule reached itself at the same size, so the recursion has
//     no base case (for example A = Union(E, B), B = Ordered(E, A)).
//   - ErrNotImplemented: Rank and Unrank.
//
// Concurrency:
//
// A Grammar is read-only once New returns. Count and List allocate their memo tables per
// call, so any number of goroutines may query the same grammar.
//
// Listing is exhaustive and the number of structures grows exponentially with the size
// for most classes; it is meant for small exact verification, not bulk generation.
package grammar
