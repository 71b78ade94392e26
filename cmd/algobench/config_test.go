package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileConfig_AppliesValues(t *testing.T) {
	path := writeTempConfig(t, `
sizes: [50, 500]
trial_count: 7
seed: 99
algorithms: [merge, insertion]
key_field: start_station
direction: desc
search: true
output: out.txt
`)

	// Fresh flag state: nothing set on the command line.
	defer resetFlags(t)
	if err := loadFileConfig(rootCmd, path); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(flags.sizes, []int{50, 500}) {
		t.Errorf("sizes = %v, want [50 500]", flags.sizes)
	}
	if flags.trials != 7 {
		t.Errorf("trials = %d, want 7", flags.trials)
	}
	if flags.seed != 99 {
		t.Errorf("seed = %d, want 99", flags.seed)
	}
	if !reflect.DeepEqual(flags.algorithms, []string{"merge", "insertion"}) {
		t.Errorf("algorithms = %v", flags.algorithms)
	}
	if flags.keyField != "start_station" {
		t.Errorf("keyField = %q", flags.keyField)
	}
	if flags.direction != "desc" {
		t.Errorf("direction = %q", flags.direction)
	}
	if !flags.search {
		t.Error("search not enabled")
	}
	if flags.outPath != "out.txt" {
		t.Errorf("outPath = %q", flags.outPath)
	}
}

func TestLoadFileConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, "trial_count: 9\n")

	defer resetFlags(t)
	if err := loadFileConfig(rootCmd, path); err != nil {
		t.Fatal(err)
	}

	if flags.trials != 9 {
		t.Errorf("trials = %d, want 9", flags.trials)
	}
	if flags.keyField != "duration_minutes" {
		t.Errorf("keyField = %q, want default", flags.keyField)
	}
}

func TestLoadFileConfig_BadYAML(t *testing.T) {
	path := writeTempConfig(t, "sizes: [not numbers")

	defer resetFlags(t)
	if err := loadFileConfig(rootCmd, path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFileConfig_MissingFile(t *testing.T) {
	if err := loadFileConfig(rootCmd, "/nonexistent/bench.yaml"); err == nil {
		t.Fatal("expected read error")
	}
}

// resetFlags restores the package-level flag values mutated by a test.
func resetFlags(t *testing.T) {
	t.Helper()
	flags.sizes = []int{100, 1000, 10000}
	flags.trials = 5
	flags.seed = 42
	flags.algorithms = []string{"merge", "quicksort", "baseline"}
	flags.keyField = "duration_minutes"
	flags.direction = "asc"
	flags.search = false
	flags.pace = 0
	flags.outPath = "search_sort_benchmarks.txt"
}
