/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: check.go
Description: The checks run for one grammar at one size: valuation consistency, expected
counts, list/count agreement, distinctness of the listed structures and a digest of the
listing order.
*/

package verify

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/kleascm/akaylee-species/pkg/grammar"
	"golang.org/x/crypto/blake2b"
)

// CheckResult is the outcome of checking one grammar at one size
type CheckResult struct {
	Grammar   string        `json:"grammar"`
	Rule      string        `json:"rule"`
	Size      int           `json:"size"`
	Count     string        `json:"count"`
	Expected  string        `json:"expected,omitempty"`
	Listed    int           `json:"listed"`
	Listing   bool          `json:"listing"` // false when the size is above MaxListSize
	Digest    string        `json:"digest,omitempty"`
	Passed    bool          `json:"passed"`
	Failures  []string      `json:"failures,omitempty"`
	Duration  time.Duration `json:"duration"`
	Completed bool          `json:"-"`
}

func (r *CheckResult) fail(format string, args ...interface{}) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// task is one unit of work for the pool
type task struct {
	target  Target
	grammar *grammar.Grammar
	size    int
}

// listingLabels returns n distinct labels in a scrambled but fixed order.
func listingLabels(n int) []grammar.Label {
	labels := make([]grammar.Label, 0, n)
	for i := n; i >= 1; i -= 2 {
		labels = append(labels, i)
	}
	for i := 1 + n%2; i < n; i += 2 {
		labels = append(labels, i)
	}
	return labels
}

// digest hashes the rendering of each structure in listing order
func digest(structures []any) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	for _, s := range structures {
		fmt.Fprintf(h, "%v\n", s)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// run performs every check for t and returns the result.
func (t task) run(maxListSize int) CheckResult {
	start := time.Now()
	res := CheckResult{
		Grammar:   t.target.Name,
		Rule:      t.target.Start,
		Size:      t.size,
		Completed: true,
	}
	defer func() {
		res.Passed = len(res.Failures) == 0
		res.Duration = time.Since(start)
	}()

	count, err := t.grammar.Count(t.target.Start, t.size)
	if err != nil {
		res.fail("count failed: %v", err)
		return res
	}
	res.Count = count.String()

	if t.size < len(t.target.Expected) {
		want := big.NewInt(t.target.Expected[t.size])
		res.Expected = want.String()
		if count.Cmp(want) != 0 {
			res.fail("count %s, expected %s", count, want)
		}
	}

	v, err := t.grammar.Valuation(t.target.Start)
	if err != nil {
		res.fail("valuation failed: %v", err)
		return res
	}
	switch {
	case t.size < v && count.Sign() != 0:
		res.fail("count %s below valuation %d", count, v)
	case t.size == v && count.Sign() == 0:
		res.fail("no structure at valuation %d", v)
	}

	if t.size > maxListSize {
		return res
	}
	res.Listing = true

	structures, err := t.grammar.List(t.target.Start, listingLabels(t.size))
	if err != nil {
		res.fail("list failed: %v", err)
		return res
	}
	res.Listed = len(structures)
	if !count.IsInt64() || count.Int64() != int64(res.Listed) {
		res.fail("count %s, listed %d", count, res.Listed)
	}

	seen := make(map[string]bool, len(structures))
	for _, s := range structures {
		key := fmt.Sprint(s)
		if seen[key] {
			res.fail("duplicate structure %s", key)
			break
		}
		seen[key] = true
	}

	if res.Digest, err = digest(structures); err != nil {
		res.fail("digest failed: %v", err)
	}
	return res
}
