// SPDX-License-Identifier: MIT

package inference

import (
	"fmt"

	"github.com/katalvlaran/bayesnet/network"
)

// engine computes the normalized posterior of x for evidence that does not
// mention x.
type engine func(net *network.Network, x string, e network.Evidence, o Options) (Distribution, error)

// Ask dispatches to EnumerationAsk or EliminationAsk by name.
//
// Errors:
//   - ErrUnknownAlgorithm for any alg other than Enumeration/Elimination,
//     plus everything the selected engine returns.
func Ask(alg Algorithm, net *network.Network, x string, e network.Evidence, opts ...Option) (Distribution, error) {
	switch alg {
	case Enumeration:
		return EnumerationAsk(net, x, e, opts...)
	case Elimination:
		return EliminationAsk(net, x, e, opts...)
	default:
		return Distribution{}, fmt.Errorf("Ask(%q): %w", string(alg), ErrUnknownAlgorithm)
	}
}

// run validates the query, then calls eng. When x is itself observed, the
// answer is a point mass on the observed value, provided that value has
// non-zero probability given the rest of the evidence.
func run(method string, eng engine, net *network.Network, x string, e network.Evidence, opts []Option) (Distribution, error) {
	if net == nil {
		return Distribution{}, fmt.Errorf("%s: %w", method, ErrNilNetwork)
	}
	if !net.Has(x) {
		return Distribution{}, fmt.Errorf("%s(%q): %w", method, x, network.ErrUnknownVariable)
	}
	if err := net.CheckEvidence(e); err != nil {
		return Distribution{}, fmt.Errorf("%s(%q): %w", method, x, err)
	}
	o := gatherOptions(opts)

	observed, isObserved := e[x]
	if !isObserved {
		d, err := eng(net, x, e, o)
		if err != nil {
			return Distribution{}, fmt.Errorf("%s(%q): %w", method, x, err)
		}

		return d, nil
	}

	d, err := eng(net, x, e.Without(x), o)
	if err != nil {
		return Distribution{}, fmt.Errorf("%s(%q): %w", method, x, err)
	}
	if d.P(observed) == 0 {
		return Distribution{}, fmt.Errorf("%s(%q): observed %s=%t has zero probability: %w",
			method, x, x, observed, ErrDegenerateDistribution)
	}
	if observed {
		return Distribution{False: 0, True: 1}, nil
	}

	return Distribution{False: 1, True: 0}, nil
}
