// SPDX-License-Identifier: MIT

package fdm_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vanilla/fdm"
	"github.com/katalvlaran/vanilla/option"
)

// ExamplePrice solves the reference half-year call on the default
// 5000×500 grid; the explicit scheme lands within a penny of the
// closed-form 6.5611.
func ExamplePrice() {
	o := option.Option{S: 200, K: 205, R: 0.02, Sigma: 0.14, T: 0.5}

	price, err := fdm.Price(o, fdm.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("call=%.1f\n", price)
	// Output:
	// call=6.6
}

// ExamplePrice_unstable shows the stability gate: four time layers over
// five hundred price steps put Δt far past 1/(σ²(M−1)+r/2), and the
// solver refuses to produce a number.
func ExamplePrice_unstable() {
	o := option.Option{S: 200, K: 205, R: 0.02, Sigma: 0.14, T: 0.5}

	opts := fdm.DefaultOptions()
	opts.TimeSteps = 4

	_, err := fdm.Price(o, opts)
	fmt.Println("unstable:", errors.Is(err, fdm.ErrUnstable))
	// Output:
	// unstable: true
}
