/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: helpers_test.go
Description: Grammars shared by the grammar package tests. Structures are built as label
slices or grammar.Pair values so that fmt rendering tells any two of them apart.
*/

package grammar_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/kleascm/akaylee-species/pkg/grammar"
	"github.com/stretchr/testify/require"
)

func prepend(a, b any) any {
	return slices.Concat([]int{a.(int)}, b.([]int))
}

func cycleRules() map[string]grammar.Rule {
	return map[string]grammar.Rule{
		"Cycle":         grammar.Union("Empty", "NonEmpty"),
		"NonEmptyPerms": grammar.Labelled("Letter", "Perms", prepend),
		"NonEmpty":      grammar.Boxed("Letter", "Perms", prepend),
		"Perms":         grammar.Union("Empty", "NonEmptyPerms"),
		"Letter":        grammar.Atom(nil),
		"Empty":         grammar.Empty([]int{}),
	}
}

func ordBinTreeRules() map[string]grammar.Rule {
	return map[string]grammar.Rule{
		"Tree": grammar.Union("Node", "Char"),
		"Node": grammar.Ordered("Tree", "Tree", nil),
		"Char": grammar.Atom(nil),
	}
}

func incrBinTreeRules() map[string]grammar.Rule {
	return map[string]grammar.Rule{
		"Tree":  grammar.Union("Node", "Leaf"),
		"Node":  grammar.Ordered("Label", "STree", nil),
		"Label": grammar.Atom(nil),
		"STree": grammar.Labelled("Tree", "Tree", nil),
		"Leaf":  grammar.Empty("."),
	}
}

func searchTreeRules() map[string]grammar.Rule {
	return map[string]grammar.Rule{
		"Tree":  grammar.Union("Node", "Leaf"),
		"Node":  grammar.Boxed("Label", "STree", nil),
		"Label": grammar.Atom(nil),
		"STree": grammar.Ordered("Tree", "Tree", nil),
		"Leaf":  grammar.Empty("."),
	}
}

func labelledNodeTreeRules() map[string]grammar.Rule {
	return map[string]grammar.Rule{
		"Tree":     grammar.Union("Node", "Leaf"),
		"Node":     grammar.Labelled("Label", "Subtrees", nil),
		"Label":    grammar.Atom(nil),
		"Subtrees": grammar.Labelled("Tree", "Tree", nil),
		"Leaf":     grammar.Empty("."),
	}
}

type fixture struct {
	name     string
	rules    func() map[string]grammar.Rule
	start    string
	expected []int64
}

var fixtures = []fixture{
	{"cycles", cycleRules, "Cycle", []int64{1, 1, 1, 2, 6, 24}},
	{"ordered binary trees", ordBinTreeRules, "Tree", []int64{0, 1, 1, 2, 5, 14}},
	{"increasing binary trees", incrBinTreeRules, "Tree", []int64{1, 1, 2, 6, 24, 120}},
	{"binary search trees", searchTreeRules, "Tree", []int64{1, 1, 2, 5, 14, 42}},
	{"labelled node trees", labelledNodeTreeRules, "Tree", []int64{1, 1, 4, 30, 336, 5040}},
}

func mustBuild(t testing.TB, rules map[string]grammar.Rule) *grammar.Grammar {
	t.Helper()
	g, err := grammar.New(rules)
	require.NoError(t, err)
	return g
}

// render turns structures into comparable strings.
func render(structures []any) []string {
	out := make([]string, len(structures))
	for i, s := range structures {
		out[i] = fmt.Sprint(s)
	}
	return out
}
