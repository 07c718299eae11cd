// SPDX-License-Identifier: MIT

package inference

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/bayesnet/network"
)

// EnumerationAsk returns P(x | e) by summing the full joint over every
// hidden variable.
//
// Implementation:
//   - Stage 1: order := net.TopologicalOrder().
//   - Stage 2: for x ∈ {false, true}, extend e with x and take the
//     depth-first sum of the joint over the unobserved variables.
//   - Stage 3: Normalize the pair.
//
// Errors:
//   - ErrNilNetwork, network.ErrUnknownVariable (x or an evidence key).
//   - ErrDegenerateDistribution if the evidence has probability zero.
//   - context.Canceled / context.DeadlineExceeded from Options.Ctx.
//
// Complexity:
//   - Time O(n · 2^h), h = number of hidden variables; Space O(n).
//
// Observed query variables are answered with a point mass; see Ask.
func EnumerationAsk(net *network.Network, x string, e network.Evidence, opts ...Option) (Distribution, error) {
	return run("EnumerationAsk", enumerationAsk, net, x, e, opts)
}

func enumerationAsk(net *network.Network, x string, e network.Evidence, o Options) (Distribution, error) {
	en := &enumerator{
		ctx:   o.Ctx,
		net:   net,
		order: net.TopologicalOrder(),
		work:  e.Clone(),
	}

	var pair [2]float64
	for i, v := range []bool{false, true} {
		en.work[x] = v
		p, err := en.all(0)
		if err != nil {
			return Distribution{}, err
		}
		pair[i] = p
	}

	raw := Distribution{False: pair[0], True: pair[1]}
	o.Logger.Debug("enumeration done",
		slog.String("query", x),
		slog.Int("evidence", len(e)),
		slog.Float64("false", raw.False),
		slog.Float64("true", raw.True))

	return Normalize(raw)
}

// enumerator holds one working evidence map that is extended and restored
// while the recursion walks the topological order.
type enumerator struct {
	ctx   context.Context
	net   *network.Network
	order []string
	work  network.Evidence
}

// all returns the sum over the unobserved variables in order[i:] of the
// product of their conditional probabilities, consistent with work.
func (en *enumerator) all(i int) (float64, error) {
	if i == len(en.order) {
		return 1, nil
	}
	if err := en.ctx.Err(); err != nil {
		return 0, err
	}
	y := en.order[i]

	if _, fixed := en.work[y]; fixed {
		p, err := en.net.QueryGiven(y, en.work)
		if err != nil {
			return 0, err
		}
		rest, err := en.all(i + 1)
		if err != nil {
			return 0, err
		}

		return p * rest, nil
	}

	sum := 0.0
	for _, v := range []bool{true, false} {
		en.work[y] = v
		p, err := en.net.QueryGiven(y, en.work)
		if err != nil {
			return 0, err
		}
		rest, err := en.all(i + 1)
		if err != nil {
			return 0, err
		}
		sum += p * rest
	}
	delete(en.work, y)

	return sum, nil
}
