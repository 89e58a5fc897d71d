/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: verify.go
Description: The verify command. Runs the verification engine over the selected sample
grammars, writes the reports and fails when any check fails.
*/

package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/kleascm/akaylee-species/pkg/reporting"
	"github.com/kleascm/akaylee-species/pkg/verify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// verifyConfig reads the verify settings from viper
func verifyConfig() *verify.Config {
	config := verify.DefaultConfig()
	config.Grammars = viper.GetStringSlice("grammars")
	config.MaxSize = viper.GetInt("max")
	config.MaxListSize = viper.GetInt("max-list-size")
	if workers := viper.GetInt("workers"); workers != 0 {
		config.Workers = workers
	}
	return config
}

// RunVerify runs verification and writes the JSON and HTML reports
func RunVerify(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	config := verifyConfig()
	targets, err := verify.CatalogTargets(config.Grammars)
	if err != nil {
		return err
	}
	engine, err := verify.NewEngine(config, targets, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	report, runErr := engine.Run(ctx)
	if report == nil {
		return runErr
	}

	writer := reporting.NewReportWriter(viper.GetString("report-dir"), logger.GetLogger())
	jsonPath, htmlPath, err := writer.Write(report)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔍 Verification %s\n", report.RunID)
	for _, r := range report.Results {
		if !r.Passed {
			fmt.Fprintf(out, "   ✗ %s size %d: %v\n", r.Grammar, r.Size, r.Failures)
		}
	}
	fmt.Fprintf(out, "   %d checks, %d failures in %s\n", report.Checks, report.Failures, report.Duration)
	fmt.Fprintf(out, "   Reports: %s, %s\n", jsonPath, htmlPath)

	if runErr != nil {
		return runErr
	}
	if !report.Passed() {
		return fmt.Errorf("verification failed: %d of %d checks failed", report.Failures, report.Checks)
	}
	return nil
}
