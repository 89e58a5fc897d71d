/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: root.go
Description: Root command and subcommand wiring. Flags are bound to viper keys of the
same name when a command runs, so config files and SPECIES_* environment variables can
set any of them.
*/

package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the species command tree
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "species",
		Short: "Species - count and list combinatorial structures from grammars",
		Long: `Species evaluates grammars of combinatorial classes built from atoms, empty
structures, unions and products. It computes how many structures of each size a class
holds and lists them over concrete labels, and verifies the bundled sample grammars
against their known counting sequences.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			return LoadConfig()
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Configuration file path")
	rootCmd.PersistentFlags().String("log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().String("log-dir", "", "Log output directory (console only when empty)")

	grammarsCmd := &cobra.Command{
		Use:   "grammars",
		Short: "List the sample grammars",
		Args:  cobra.NoArgs,
		RunE:  RunGrammars,
	}

	valuationsCmd := &cobra.Command{
		Use:   "valuations",
		Short: "Print the valuation of every rule of a grammar",
		Args:  cobra.NoArgs,
		RunE:  RunValuations,
	}
	valuationsCmd.Flags().String("grammar", "", "Sample grammar name")
	valuationsCmd.MarkFlagRequired("grammar")

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Count the structures of each size up to --max",
		Args:  cobra.NoArgs,
		RunE:  RunCount,
	}
	countCmd.Flags().String("grammar", "", "Sample grammar name")
	countCmd.Flags().String("rule", "", "Rule to count (defaults to the grammar's start rule)")
	countCmd.Flags().Int("max", 10, "Largest size to count")
	countCmd.MarkFlagRequired("grammar")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the structures built on a set of labels",
		Args:  cobra.NoArgs,
		RunE:  RunList,
	}
	listCmd.Flags().String("grammar", "", "Sample grammar name")
	listCmd.Flags().String("rule", "", "Rule to list (defaults to the grammar's start rule)")
	listCmd.Flags().Int("size", 0, "List over the labels 1..size")
	listCmd.Flags().IntSlice("labels", nil, "List over these labels, e.g. 3,1,2")
	listCmd.MarkFlagRequired("grammar")
	listCmd.MarkFlagsMutuallyExclusive("size", "labels")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify counts and listings of the sample grammars",
		Long: `Verify checks every selected grammar for sizes 0..--max: counts against the known
sequence, counts against listings, distinct listed structures and a digest of the
listing order. JSON and HTML reports are written to --report-dir. Exits non-zero when
any check fails.`,
		Args: cobra.NoArgs,
		RunE: RunVerify,
	}
	verifyCmd.Flags().StringSlice("grammars", nil, "Grammars to verify (all when empty)")
	verifyCmd.Flags().Int("max", 6, "Largest size to check")
	verifyCmd.Flags().Int("workers", 0, "Concurrent checks (number of CPUs when 0)")
	verifyCmd.Flags().Int("max-list-size", 6, "Skip listing above this size")
	verifyCmd.Flags().String("report-dir", "./reports", "Report output directory")

	rootCmd.AddCommand(grammarsCmd, valuationsCmd, countCmd, listCmd, verifyCmd)
	return rootCmd
}
