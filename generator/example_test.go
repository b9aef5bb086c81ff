package generator_test

import (
	"fmt"

	"github.com/katalvlaran/spurcorr/generator"
)

// ExampleFunc adapts a plain closure into a payload source.
func ExampleFunc() {
	calls := 0
	gen := generator.Func(func() (string, error) {
		calls++
		return fmt.Sprintf("token-%d", calls), nil
	})

	a, _ := gen.Next()
	b, _ := gen.Next()
	fmt.Println(a, b)
	// Output: token-1 token-2
}

// ExampleNewDateGenerator draws reproducible synthetic dates.
func ExampleNewDateGenerator() {
	opts := generator.DefaultDateOptions()
	opts.Seed = 42

	g1, _ := generator.NewDateGenerator(opts)
	g2, _ := generator.NewDateGenerator(opts)

	d1, _ := g1.Next()
	d2, _ := g2.Next()
	fmt.Println(len(d1), d1 == d2)
	// Output: 10 true
}

// ExampleNewRNG shows the shared seed policy: equal seeds, equal streams.
func ExampleNewRNG() {
	a := generator.NewRNG(7)
	b := generator.NewRNG(7)
	fmt.Println(a.Intn(1000) == b.Intn(1000))
	// Output: true
}
