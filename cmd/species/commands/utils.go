/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the species commands: configuration loading, logging
setup and grammar lookup.
*/

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/akaylee-species/pkg/catalog"
	"github.com/kleascm/akaylee-species/pkg/grammar"
	"github.com/kleascm/akaylee-species/pkg/logging"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	viper.SetEnvPrefix("SPECIES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// SetupLogging creates the command logger from the log-* settings
func SetupLogging(out io.Writer) (*logging.Logger, error) {
	config := logging.DefaultLoggerConfig()
	config.Level = logging.LogLevel(viper.GetString("log-level"))
	config.Format = logging.LogFormat(viper.GetString("log-format"))
	config.OutputDir = viper.GetString("log-dir")
	config.Output = out

	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}

// buildGrammar builds the sample grammar named by the grammar setting and resolves the
// rule setting, falling back to the grammar's start rule.
func buildGrammar(logger *logging.Logger) (*grammar.Grammar, catalog.Entry, string, error) {
	entry, err := catalog.Lookup(viper.GetString("grammar"))
	if err != nil {
		return nil, catalog.Entry{}, "", err
	}
	g, err := entry.Build(grammar.WithLogger(logger.GetLogger()))
	if err != nil {
		return nil, catalog.Entry{}, "", err
	}

	rule := viper.GetString("rule")
	if rule == "" {
		rule = entry.Start
	}
	if _, ok := g.Rule(rule); !ok {
		return nil, catalog.Entry{}, "", fmt.Errorf("grammar %s: %w: %q", entry.Name, grammar.ErrUnknownRule, rule)
	}
	return g, entry, rule, nil
}
