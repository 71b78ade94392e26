package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the recognized configuration surface. Every field has
// a flag counterpart; an explicitly set flag wins over the file.
type fileConfig struct {
	Sizes      []int    `yaml:"sizes"`
	TrialCount int      `yaml:"trial_count"`
	Seed       int64    `yaml:"seed"`
	Algorithms []string `yaml:"algorithms"`
	KeyField   string   `yaml:"key_field"`
	Direction  string   `yaml:"direction"`
	Search     bool     `yaml:"search"`
	Pace       float64  `yaml:"pace"`
	Output     string   `yaml:"output"`
}

// loadFileConfig reads the YAML config and folds it into the flag values,
// leaving alone anything the user set explicitly on the command line.
func loadFileConfig(cmd *cobra.Command, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	set := cmd.Flags().Changed
	if len(fc.Sizes) > 0 && !set("sizes") {
		flags.sizes = fc.Sizes
	}
	if fc.TrialCount > 0 && !set("trials") {
		flags.trials = fc.TrialCount
	}
	if fc.Seed != 0 && !set("seed") {
		flags.seed = fc.Seed
	}
	if len(fc.Algorithms) > 0 && !set("algorithms") {
		flags.algorithms = fc.Algorithms
	}
	if fc.KeyField != "" && !set("key-field") {
		flags.keyField = fc.KeyField
	}
	if fc.Direction != "" && !set("direction") {
		flags.direction = fc.Direction
	}
	if fc.Search && !set("search") {
		flags.search = true
	}
	if fc.Pace > 0 && !set("pace") {
		flags.pace = fc.Pace
	}
	if fc.Output != "" && !set("out") {
		flags.outPath = fc.Output
	}
	return nil
}
