// SPDX-License-Identifier: MIT

package inference_test

import (
	"fmt"

	"github.com/katalvlaran/bayesnet/builder"
	"github.com/katalvlaran/bayesnet/inference"
	"github.com/katalvlaran/bayesnet/network"
)

// ExampleEliminationAsk computes the classic burglary posterior given that
// both neighbors called.
//
//	B   E
//	 \ /
//	  A
//	 / \
//	J   M
func ExampleEliminationAsk() {
	net, err := builder.BuildNetwork(nil, builder.Alarm())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, err := inference.EliminationAsk(net, "B", network.Evidence{"J": true, "M": true})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("P(B=f|J,M) = %.4f\n", d.False)
	fmt.Printf("P(B=t|J,M) = %.4f\n", d.True)

	// Output:
	// P(B=f|J,M) = 0.7158
	// P(B=t|J,M) = 0.2842
}

// ExampleAsk runs both algorithms by name on the sprinkler network.
func ExampleAsk() {
	net, err := builder.BuildNetwork(nil, builder.Sprinkler())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, alg := range []inference.Algorithm{inference.Enumeration, inference.Elimination} {
		d, err := inference.Ask(alg, net, "Rain", network.Evidence{"WetGrass": true})
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %.4f\n", alg, d.True)
	}

	// Output:
	// enum: 0.7079
	// elim: 0.7079
}

// ExampleNormalize scales an unnormalized pair.
func ExampleNormalize() {
	d, _ := inference.Normalize(inference.Distribution{False: 1, True: 3})
	fmt.Println(d)

	// Output:
	// (0.25, 0.75)
}
