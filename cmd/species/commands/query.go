/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: query.go
Description: Query commands: grammars, valuations, count and list.
*/

package commands

import (
	"fmt"
	"slices"
	"time"

	"github.com/kleascm/akaylee-species/pkg/catalog"
	"github.com/kleascm/akaylee-species/pkg/grammar"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunGrammars lists the sample grammars with their start rules and known counts
func RunGrammars(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🌳 Species - Sample Grammars")
	fmt.Fprintln(out, "============================")
	fmt.Fprintln(out)

	for i, e := range catalog.All() {
		fmt.Fprintf(out, "%d. %s\n", i+1, e.Name)
		fmt.Fprintf(out, "   Description: %s\n", e.Description)
		fmt.Fprintf(out, "   Start rule: %s\n", e.Start)
		fmt.Fprintf(out, "   Counts: %v\n", e.Expected)
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "✨ Use --grammar with count, list or valuations to explore one")
	return nil
}

// RunValuations prints the valuation of every rule, one per line
func RunValuations(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	g, entry, _, err := buildGrammar(logger)
	if err != nil {
		return err
	}
	logger.LogValuations(entry.Name, g.Passes(), g.Valuations())

	out := cmd.OutOrStdout()
	for _, name := range g.Names() {
		v, _ := g.Valuation(name)
		if v == grammar.Infinity {
			fmt.Fprintf(out, "%s\tempty\n", name)
			continue
		}
		fmt.Fprintf(out, "%s\t%d\n", name, v)
	}
	return nil
}

// RunCount prints the number of structures of sizes 0..max, one per line
func RunCount(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	g, entry, rule, err := buildGrammar(logger)
	if err != nil {
		return err
	}

	maxSize := viper.GetInt("max")
	if maxSize < 0 {
		return fmt.Errorf("max must be non-negative, got %d", maxSize)
	}

	out := cmd.OutOrStdout()
	for n := 0; n <= maxSize; n++ {
		count, err := g.Count(rule, n)
		if err != nil {
			return fmt.Errorf("failed to count %s at size %d: %w", rule, n, err)
		}
		logger.LogCount(entry.Name, rule, n, count.String())
		fmt.Fprintf(out, "%d\t%s\n", n, count)
	}
	return nil
}

// RunList prints every structure built on the requested labels, one per line
func RunList(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	g, entry, rule, err := buildGrammar(logger)
	if err != nil {
		return err
	}

	labels, err := listLabels(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	structures, err := g.List(rule, labels)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", rule, err)
	}
	logger.LogListing(entry.Name, rule, labels, len(structures), time.Since(start))

	out := cmd.OutOrStdout()
	for _, s := range structures {
		fmt.Fprintln(out, s)
	}
	return nil
}

// listLabels returns the --labels flag, or 1..size when no labels are given
func listLabels(cmd *cobra.Command) ([]grammar.Label, error) {
	labels, err := cmd.Flags().GetIntSlice("labels")
	if err != nil {
		return nil, err
	}
	if len(labels) > 0 {
		return slices.Clone(labels), nil
	}
	size := viper.GetInt("size")
	if size < 0 {
		return nil, fmt.Errorf("size must be non-negative, got %d", size)
	}
	labels = make([]grammar.Label, size)
	for i := range labels {
		labels[i] = i + 1
	}
	return labels, nil
}
