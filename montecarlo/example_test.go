package montecarlo_test

import (
	"fmt"

	"github.com/katalvlaran/vanilla/montecarlo"
	"github.com/katalvlaran/vanilla/option"
)

// ExamplePrice estimates the reference half-year call from 400k seeded
// paths. The exact value is ≈ 6.5611; rather than pin a
// seed-dependent digit string, the example checks the estimate against
// the error bar the result itself reports.
func ExamplePrice() {
	o := option.Option{S: 200, K: 205, R: 0.02, Sigma: 0.14, T: 0.5}

	res, err := montecarlo.Price(o, montecarlo.Options{Paths: 400_000, Seed: 42, Workers: 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	const exact = 6.5611
	off := res.Price - exact
	if off < 0 {
		off = -off
	}
	fmt.Printf("paths=%d\nwidth<0.1=%v\nwithin 3 widths=%v\n",
		res.Paths, res.ConfWidth < 0.1, off < 3*res.ConfWidth)
	// Output:
	// paths=400000
	// width<0.1=true
	// within 3 widths=true
}
