/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: structures.go
Description: Domain objects built by the sample grammars and the build callbacks that
assemble them.
*/

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kleascm/akaylee-species/pkg/grammar"
)

// Cycle lists the labels of a cycle starting from its smallest label.
type Cycle []grammar.Label

func (c Cycle) String() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = strconv.Itoa(l)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// BinTree is a binary tree node. A nil *BinTree is an empty leaf.
// Leaf-labelled trees keep labels on childless nodes only; node-labelled
// trees label every non-nil node.
type BinTree struct {
	Label    grammar.Label
	HasLabel bool
	Left     *BinTree
	Right    *BinTree

	leaf bool // built as a labelled leaf
}

// Size returns the number of labels in the tree.
func (t *BinTree) Size() int {
	if t == nil {
		return 0
	}
	n := t.Left.Size() + t.Right.Size()
	if t.HasLabel {
		n++
	}
	return n
}

// Labels returns the tree labels in infix order.
func (t *BinTree) Labels() []grammar.Label {
	if t == nil {
		return nil
	}
	out := t.Left.Labels()
	if t.HasLabel {
		out = append(out, t.Label)
	}
	return append(out, t.Right.Labels()...)
}

func (t *BinTree) String() string {
	switch {
	case t == nil:
		return "."
	case t.leaf:
		return strconv.Itoa(t.Label)
	case t.HasLabel:
		return fmt.Sprintf("(%s %d %s)", t.Left, t.Label, t.Right)
	default:
		return fmt.Sprintf("(%s %s)", t.Left, t.Right)
	}
}

// labelledLeaf builds the leaf of a leaf-labelled tree.
func labelledLeaf(l grammar.Label) any {
	return &BinTree{Label: l, HasLabel: true, leaf: true}
}

// joinTrees builds an unlabelled internal node.
func joinTrees(l, r any) any {
	return &BinTree{Left: l.(*BinTree), Right: r.(*BinTree)}
}

// subtrees pairs two trees for a labelNode to consume.
func subtrees(l, r any) any {
	return [2]*BinTree{l.(*BinTree), r.(*BinTree)}
}

// labelNode builds a labelled node over a pair of subtrees.
func labelNode(l, children any) any {
	c := children.([2]*BinTree)
	return &BinTree{Label: l.(grammar.Label), HasLabel: true, Left: c[0], Right: c[1]}
}
