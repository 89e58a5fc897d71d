/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: catalog_test.go
Description: Tests for the sample grammars: expected counts, listing agreement and the
shape of the structures each grammar builds.
*/

package catalog_test

import (
	"slices"
	"testing"

	"github.com/kleascm/akaylee-species/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogNames(t *testing.T) {
	assert.Equal(t, []string{
		"binary-search-trees",
		"cycles",
		"increasing-binary-trees",
		"labelled-node-trees",
		"ordered-binary-trees",
	}, catalog.Names())

	_, err := catalog.Lookup("forests")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycles")
}

func TestCatalogExpectedCounts(t *testing.T) {
	for _, e := range catalog.All() {
		t.Run(e.Name, func(t *testing.T) {
			g, err := e.Build()
			require.NoError(t, err)
			for n, want := range e.Expected {
				got, err := g.Count(e.Start, n)
				require.NoError(t, err)
				assert.Equal(t, want, got.Int64(), "count(%d)", n)

				labels := make([]int, n)
				for i := range labels {
					labels[i] = n - i
				}
				structures, err := g.List(e.Start, labels)
				require.NoError(t, err)
				assert.Len(t, structures, int(want))
			}
		})
	}
}

func TestCatalogRulesAreFresh(t *testing.T) {
	e, err := catalog.Lookup("cycles")
	require.NoError(t, err)

	first, err := e.Build()
	require.NoError(t, err)
	second, err := e.Build()
	require.NoError(t, err)

	a, _ := first.Rule("Cycle")
	b, _ := second.Rule("Cycle")
	assert.NotSame(t, a, b)
}

func TestCycles(t *testing.T) {
	e, err := catalog.Lookup("cycles")
	require.NoError(t, err)
	g, err := e.Build()
	require.NoError(t, err)

	out, err := g.List("Cycle", []int{2, 4, 3, 1})
	require.NoError(t, err)
	require.Len(t, out, 6)
	for _, s := range out {
		c, ok := s.(catalog.Cycle)
		require.True(t, ok)
		assert.Equal(t, 1, c[0], "cycles start at their smallest label")
		assert.ElementsMatch(t, []int{1, 2, 3, 4}, []int(c))
	}

	empty, err := g.List("Cycle", nil)
	require.NoError(t, err)
	require.Len(t, empty, 1)
	assert.Equal(t, "()", empty[0].(catalog.Cycle).String())
}

func TestTreesUseEveryLabelOnce(t *testing.T) {
	labels := []int{7, 3, 5, 1}
	for _, name := range []string{
		"ordered-binary-trees",
		"increasing-binary-trees",
		"binary-search-trees",
		"labelled-node-trees",
	} {
		t.Run(name, func(t *testing.T) {
			e, err := catalog.Lookup(name)
			require.NoError(t, err)
			g, err := e.Build()
			require.NoError(t, err)

			out, err := g.List(e.Start, labels)
			require.NoError(t, err)
			require.Len(t, out, int(e.Expected[len(labels)]))

			seen := make(map[string]bool)
			for _, s := range out {
				tree, ok := s.(*catalog.BinTree)
				require.True(t, ok)
				assert.Equal(t, len(labels), tree.Size())
				assert.ElementsMatch(t, labels, tree.Labels())
				assert.False(t, seen[tree.String()], "duplicate tree %s", tree)
				seen[tree.String()] = true
			}
		})
	}
}

func TestOrderedBinaryTreeLeavesAreSorted(t *testing.T) {
	e, err := catalog.Lookup("ordered-binary-trees")
	require.NoError(t, err)
	g, err := e.Build()
	require.NoError(t, err)

	out, err := g.List("Tree", []int{9, 2, 6})
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, s := range out {
		assert.True(t, slices.IsSorted(s.(*catalog.BinTree).Labels()))
	}
	assert.Equal(t, "(2 (6 9))", out[0].(*catalog.BinTree).String())
	assert.Equal(t, "((2 6) 9)", out[1].(*catalog.BinTree).String())
}

func TestIncreasingBinaryTreesIncreaseAlongBranches(t *testing.T) {
	e, err := catalog.Lookup("increasing-binary-trees")
	require.NoError(t, err)
	g, err := e.Build()
	require.NoError(t, err)

	out, err := g.List("Tree", []int{4, 1, 3, 2})
	require.NoError(t, err)
	require.Len(t, out, 24)

	var increasing func(t *catalog.BinTree) bool
	increasing = func(t *catalog.BinTree) bool {
		if t == nil {
			return true
		}
		for _, c := range []*catalog.BinTree{t.Left, t.Right} {
			if c != nil && c.Label < t.Label {
				return false
			}
		}
		return increasing(t.Left) && increasing(t.Right)
	}
	for _, s := range out {
		assert.True(t, increasing(s.(*catalog.BinTree)), "%v", s)
	}
}
