/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: partition.go
Description: Label-partition enumerators for the three product variants. For a split size k
each enumerator yields (head, tail) pairs with |head| = k and tail the complement of head.
Ordered products split by label order, labelled products by every k-subset and boxed
products by every k-subset holding the smallest label. Each split is yielded exactly once,
which is what keeps listing in agreement with the counting formulas.
*/

package grammar

import (
	"iter"
	"slices"
)

// splitter enumerates the (head, tail) splits of labels for one split size.
type splitter func(labels []Label, k int) iter.Seq2[[]Label, []Label]

// orderedSplits yields the single split whose head is the k smallest labels.
// Head and tail are both in ascending order.
func orderedSplits(labels []Label, k int) iter.Seq2[[]Label, []Label] {
	return func(yield func(head, tail []Label) bool) {
		if k < 0 || k > len(labels) {
			return
		}
		sorted := slices.Clone(labels)
		slices.Sort(sorted)
		yield(slices.Clone(sorted[:k]), slices.Clone(sorted[k:]))
	}
}

// labelledSplits yields every k-subset of labels as head, in lexicographic order of
// input positions. Head and tail keep the input order.
func labelledSplits(labels []Label, k int) iter.Seq2[[]Label, []Label] {
	return func(yield func(head, tail []Label) bool) {
		if k < 0 || k > len(labels) {
			return
		}
		combinations(len(labels), k, func(idx []int) bool {
			head, tail := pick(labels, idx, 0)
			return yield(head, tail)
		})
	}
}

// boxedSplits yields every k-subset containing the smallest label. The smallest label
// leads the head; the remaining head labels and the tail keep the input order.
func boxedSplits(labels []Label, k int) iter.Seq2[[]Label, []Label] {
	return func(yield func(head, tail []Label) bool) {
		if k < 1 || k > len(labels) {
			return
		}
		at := 0
		for i, l := range labels {
			if l < labels[at] {
				at = i
			}
		}
		rest := make([]Label, 0, len(labels)-1)
		rest = append(rest, labels[:at]...)
		rest = append(rest, labels[at+1:]...)

		combinations(len(rest), k-1, func(idx []int) bool {
			head, tail := pick(rest, idx, 1)
			head = append(head, 0)
			copy(head[1:], head)
			head[0] = labels[at]
			return yield(head, tail)
		})
	}
}

// pick splits labels into the positions listed in idx and the others.
// The head gets extra spare capacity for callers that prepend.
func pick(labels []Label, idx []int, extra int) (head, tail []Label) {
	head = make([]Label, 0, len(idx)+extra)
	tail = make([]Label, 0, len(labels)-len(idx))
	j := 0
	for i, l := range labels {
		if j < len(idx) && idx[j] == i {
			head = append(head, l)
			j++
			continue
		}
		tail = append(tail, l)
	}
	return head, tail
}

// combinations calls visit with every increasing k-tuple of positions in [0, n),
// stopping early when visit returns false. visit must not retain idx.
func combinations(n, k int, visit func(idx []int) bool) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !visit(idx) {
			return
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
