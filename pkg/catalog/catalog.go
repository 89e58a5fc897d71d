/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: catalog.go
Description: Sample grammars for the species engine: cycles, ordered binary trees,
increasing binary trees, binary search trees and labelled-node trees. Each entry knows its
start rule and the counts it must produce for the first sizes, which the verify command
checks. Rules are created fresh on every call because rules bind to a single grammar.
*/

package catalog

import (
	"fmt"
	"slices"
	"sort"

	"github.com/kleascm/akaylee-species/pkg/grammar"
)

// Entry describes one sample grammar.
type Entry struct {
	Name        string
	Description string
	Start       string
	Expected    []int64 // counts of Start for sizes 0, 1, 2, ...
	rules       func() map[string]grammar.Rule
}

// Rules returns a fresh rule map for the entry.
func (e Entry) Rules() map[string]grammar.Rule {
	return e.rules()
}

// Build returns the solved grammar for the entry.
func (e Entry) Build(opts ...grammar.Option) (*grammar.Grammar, error) {
	g, err := grammar.New(e.rules(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build grammar %s: %w", e.Name, err)
	}
	return g, nil
}

var entries = []Entry{
	{
		Name:        "cycles",
		Description: "Cyclic arrangements of the labels, plus the empty cycle",
		Start:       "Cycle",
		Expected:    []int64{1, 1, 1, 2, 6, 24},
		rules:       cycles,
	},
	{
		Name:        "ordered-binary-trees",
		Description: "Binary trees with labelled leaves placed in label order",
		Start:       "Tree",
		Expected:    []int64{0, 1, 1, 2, 5, 14},
		rules:       orderedBinaryTrees,
	},
	{
		Name:        "increasing-binary-trees",
		Description: "Binary trees whose labels increase along every branch",
		Start:       "Tree",
		Expected:    []int64{1, 1, 2, 6, 24, 120},
		rules:       increasingBinaryTrees,
	},
	{
		Name:        "binary-search-trees",
		Description: "Binary trees with each node holding the smallest label of its subtree",
		Start:       "Tree",
		Expected:    []int64{1, 1, 2, 5, 14, 42},
		rules:       binarySearchTrees,
	},
	{
		Name:        "labelled-node-trees",
		Description: "Binary trees with freely labelled nodes",
		Start:       "Tree",
		Expected:    []int64{1, 1, 4, 30, 336, 5040},
		rules:       labelledNodeTrees,
	},
}

// All returns every sample grammar, sorted by name.
func All() []Entry {
	out := slices.Clone(entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the sample grammar called name.
func Lookup(name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("unknown grammar %q (available: %v)", name, Names())
}

// Names returns the sample grammar names, sorted.
func Names() []string {
	names := make([]string, 0, len(entries))
	for _, e := range All() {
		names = append(names, e.Name)
	}
	return names
}

// cycles: a cycle is the smallest label followed by a permutation of the rest.
func cycles() map[string]grammar.Rule {
	prepend := func(l, rest any) any {
		return slices.Concat(Cycle{l.(grammar.Label)}, rest.(Cycle))
	}
	return map[string]grammar.Rule{
		"Cycle":         grammar.Union("Empty", "NonEmpty"),
		"NonEmpty":      grammar.Boxed("Letter", "Perms", prepend),
		"Perms":         grammar.Union("Empty", "NonEmptyPerms"),
		"NonEmptyPerms": grammar.Labelled("Letter", "Perms", prepend),
		"Letter":        grammar.Atom(nil),
		"Empty":         grammar.Empty(Cycle{}),
	}
}

func orderedBinaryTrees() map[string]grammar.Rule {
	return map[string]grammar.Rule{
		"Tree": grammar.Union("Node", "Char"),
		"Node": grammar.Ordered("Tree", "Tree", joinTrees),
		"Char": grammar.Atom(labelledLeaf),
	}
}

func increasingBinaryTrees() map[string]grammar.Rule {
	return map[string]grammar.Rule{
		"Tree":  grammar.Union("Node", "Leaf"),
		"Node":  grammar.Ordered("Label", "STree", labelNode),
		"Label": grammar.Atom(nil),
		"STree": grammar.Labelled("Tree", "Tree", subtrees),
		"Leaf":  grammar.Empty((*BinTree)(nil)),
	}
}

func binarySearchTrees() map[string]grammar.Rule {
	return map[string]grammar.Rule{
		"Tree":  grammar.Union("Node", "Leaf"),
		"Node":  grammar.Boxed("Label", "STree", labelNode),
		"Label": grammar.Atom(nil),
		"STree": grammar.Ordered("Tree", "Tree", subtrees),
		"Leaf":  grammar.Empty((*BinTree)(nil)),
	}
}

func labelledNodeTrees() map[string]grammar.Rule {
	return map[string]grammar.Rule{
		"Tree":     grammar.Union("Node", "Leaf"),
		"Node":     grammar.Labelled("Label", "Subtrees", labelNode),
		"Label":    grammar.Atom(nil),
		"Subtrees": grammar.Labelled("Tree", "Tree", subtrees),
		"Leaf":     grammar.Empty((*BinTree)(nil)),
	}
}
