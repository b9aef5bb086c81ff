package generator_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/spurcorr/generator"
)

// benchmarkDates draws payloads from a fresh DateGenerator per iteration batch.
// It resets the timer after construction and fails on unexpected errors.
func benchmarkDates(b *testing.B, opts generator.DateOptions) {
	g, err := generator.NewDateGenerator(opts)
	if err != nil {
		b.Fatalf("NewDateGenerator failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = g.Next(); err != nil {
			b.Fatalf("Next failed: %v", err)
		}
	}
}

// BenchmarkDateGenerator_WithReplacement measures the unconstrained draw path.
func BenchmarkDateGenerator_WithReplacement(b *testing.B) {
	opts := generator.DefaultDateOptions()
	opts.Seed = 42
	benchmarkDates(b, opts)
}

// BenchmarkFileItemGenerator_WithReplacement measures uniform pool draws
// over a 1000-item file.
func BenchmarkFileItemGenerator_WithReplacement(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(&sb, "item_%d\n", i)
	}
	path := filepath.Join(b.TempDir(), "pool.txt")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		b.Fatalf("write pool: %v", err)
	}

	opts := generator.DefaultItemOptions()
	opts.Seed = 42
	g, err := generator.NewFileItemGenerator(path, opts)
	if err != nil {
		b.Fatalf("NewFileItemGenerator failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = g.Next(); err != nil {
			b.Fatalf("Next failed: %v", err)
		}
	}
}
