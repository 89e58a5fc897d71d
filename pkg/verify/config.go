/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Configuration for verification runs. Populated from viper by the CLI and
validated before the engine starts.
*/

package verify

import (
	"fmt"
	"runtime"
)

// Config holds the settings of one verification run
type Config struct {
	Grammars    []string `json:"grammars" mapstructure:"grammars"`           // empty means every catalog grammar
	MaxSize     int      `json:"max_size" mapstructure:"max_size"`           // sizes 0..MaxSize are checked
	Workers     int      `json:"workers" mapstructure:"workers"`             // concurrent checks
	MaxListSize int      `json:"max_list_size" mapstructure:"max_list_size"` // listing is skipped above this size
}

// DefaultConfig returns the configuration used when no flags or config file are given
func DefaultConfig() *Config {
	return &Config{
		MaxSize:     6,
		Workers:     runtime.NumCPU(),
		MaxListSize: 6,
	}
}

// Validate checks the Config for invalid values.
func (c *Config) Validate() error {
	if c.MaxSize < 0 {
		return fmt.Errorf("max_size must be non-negative, got %d", c.MaxSize)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.MaxListSize < 0 {
		return fmt.Errorf("max_list_size must be non-negative, got %d", c.MaxListSize)
	}
	return nil
}
