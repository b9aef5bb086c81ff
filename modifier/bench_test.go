package modifier_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/spurcorr/modifier"
)

// benchText is a ~200-token document assembled from the long fixture.
var benchText = strings.Repeat(longText+" ", 9)

// benchmarkItemInjection runs Modify b.N times with the given placement.
func benchmarkItemInjection(b *testing.B, loc modifier.Location) {
	opts := modifier.DefaultOptions()
	opts.Location = loc
	opts.Seed = 42

	inject, err := modifier.ItemInjectionFromList[int]([]string{"1999-12-31", "2000-01-01", "2024-06-30"}, opts)
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err = inject.Modify(benchText, 1); err != nil {
			b.Fatalf("Modify failed: %v", err)
		}
	}
}

// BenchmarkItemInjection_End measures the append-only fast path.
func BenchmarkItemInjection_End(b *testing.B) {
	benchmarkItemInjection(b, modifier.End)
}

// BenchmarkItemInjection_Random measures per-payload slice insertion.
func BenchmarkItemInjection_Random(b *testing.B) {
	benchmarkItemInjection(b, modifier.Random)
}

// BenchmarkHTMLInjection_LevelSpan measures the tag scan plus span splice.
func BenchmarkHTMLInjection_LevelSpan(b *testing.B) {
	opts := modifier.DefaultHTMLOptions()
	opts.Location = modifier.End
	opts.Level = 2
	opts.Seed = 42

	inject, err := modifier.HTMLInjectionFromList[int]([]string{"<p> </p>", "<b> </b>"}, opts)
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}
	doc := "<div>intro " + "<span>" + benchText + "</span>" + " outro</div>"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = inject.Modify(doc, 1); err != nil {
			b.Fatalf("Modify failed: %v", err)
		}
	}
}
