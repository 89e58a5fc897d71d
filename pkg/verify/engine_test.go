/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine_test.go
Description: Tests for the verification engine: catalog runs, reported failures,
listing digests, the listing size guard and cancellation.
*/

package verify

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCatalog(t *testing.T, cfg *Config) *Report {
	t.Helper()
	targets, err := CatalogTargets(cfg.Grammars)
	require.NoError(t, err)
	engine, err := NewEngine(cfg, targets, nil)
	require.NoError(t, err)
	report, err := engine.Run(context.Background())
	require.NoError(t, err)
	return report
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.ErrorContains(t, (&Config{MaxSize: -1, Workers: 1}).Validate(), "max_size")
	assert.ErrorContains(t, (&Config{Workers: 0}).Validate(), "workers")
	assert.ErrorContains(t, (&Config{Workers: 1, MaxListSize: -2}).Validate(), "max_list_size")

	_, err := NewEngine(&Config{Workers: 0}, nil, nil)
	assert.ErrorContains(t, err, "invalid verify config")
	_, err = NewEngine(DefaultConfig(), nil, nil)
	assert.ErrorContains(t, err, "no grammars")
}

func TestCatalogPasses(t *testing.T) {
	report := runCatalog(t, &Config{MaxSize: 5, Workers: 4, MaxListSize: 5})

	assert.True(t, report.Passed(), "%+v", report.Results)
	assert.Equal(t, 5*6, report.Checks)
	assert.NotEmpty(t, report.RunID)
	for _, r := range report.Results {
		assert.True(t, r.Listing)
		assert.Equal(t, r.Expected, r.Count)
		assert.Len(t, r.Digest, 64)
	}
}

func TestResultsKeepTaskOrder(t *testing.T) {
	report := runCatalog(t, &Config{Grammars: []string{"cycles", "binary-search-trees"}, MaxSize: 3, Workers: 3, MaxListSize: 3})

	var order []string
	for _, r := range report.Results {
		order = append(order, r.Grammar)
	}
	assert.Equal(t, []string{
		"cycles", "cycles", "cycles", "cycles",
		"binary-search-trees", "binary-search-trees", "binary-search-trees", "binary-search-trees",
	}, order)
	for i, r := range report.Results {
		assert.Equal(t, i%4, r.Size)
	}
}

func TestWrongExpectationIsReported(t *testing.T) {
	targets, err := CatalogTargets([]string{"cycles"})
	require.NoError(t, err)
	targets[0].Expected = []int64{1, 1, 1, 3}

	engine, err := NewEngine(&Config{MaxSize: 4, Workers: 2, MaxListSize: 4}, targets, nil)
	require.NoError(t, err)
	report, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Passed())
	assert.Equal(t, 1, report.Failures)
	bad := report.Results[3]
	assert.False(t, bad.Passed)
	assert.Equal(t, "2", bad.Count)
	assert.Equal(t, "3", bad.Expected)
	assert.Equal(t, []string{"count 2, expected 3"}, bad.Failures)
	assert.Empty(t, report.Results[4].Expected)
	assert.True(t, report.Results[4].Passed)
}

func TestDigestsAreStable(t *testing.T) {
	cfg := &Config{MaxSize: 4, Workers: 3, MaxListSize: 4}
	first := runCatalog(t, cfg)
	second := runCatalog(t, cfg)

	require.Equal(t, first.Checks, second.Checks)
	assert.NotEqual(t, first.RunID, second.RunID)
	for i := range first.Results {
		assert.Equal(t, first.Results[i].Digest, second.Results[i].Digest)
	}
}

func TestListingGuard(t *testing.T) {
	report := runCatalog(t, &Config{Grammars: []string{"labelled-node-trees"}, MaxSize: 5, Workers: 1, MaxListSize: 2})

	require.Len(t, report.Results, 6)
	for _, r := range report.Results {
		assert.Equal(t, r.Size <= 2, r.Listing, "size %d", r.Size)
		if !r.Listing {
			assert.Zero(t, r.Listed)
			assert.Empty(t, r.Digest)
		}
	}
	assert.Equal(t, "5040", report.Results[5].Count)
	assert.True(t, report.Passed())
}

func TestCancelledRun(t *testing.T) {
	targets, err := CatalogTargets(nil)
	require.NoError(t, err)
	engine, err := NewEngine(&Config{MaxSize: 5, Workers: 1, MaxListSize: 5}, targets, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := engine.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Less(t, report.Checks, 30)
}

func TestUnknownGrammar(t *testing.T) {
	_, err := CatalogTargets([]string{"forests"})
	assert.ErrorContains(t, err, "unknown grammar")
}

func TestListingLabels(t *testing.T) {
	for n := 0; n <= 7; n++ {
		labels := listingLabels(n)
		require.Len(t, labels, n)
		sorted := slices.Sorted(slices.Values(labels))
		for i, l := range sorted {
			assert.Equal(t, i+1, l)
		}
	}
	assert.Equal(t, []int{5, 3, 1, 2, 4}, listingLabels(5))
}

func TestPoolRejectsAfterShutdown(t *testing.T) {
	p := newWorkerPool(2)
	ran := make(chan struct{}, 1)
	require.NoError(t, p.Submit(context.Background(), func() { ran <- struct{}{} }))
	p.Shutdown()
	<-ran
	assert.ErrorIs(t, p.Submit(context.Background(), func() {}), ErrPoolShutdown)
}
