// SPDX-License-Identifier: MIT

package inference

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/bayesnet/factor"
	"github.com/katalvlaran/bayesnet/network"
)

// EliminationAsk returns P(x | e) by variable elimination.
//
// Implementation:
//   - Stage 1: start with no eliminated variables and no factors.
//   - Stage 2: among variables whose children are all eliminated, pick the
//     one with the smallest score (Options.Heuristic; ties go to the
//     lexicographically smallest name).
//   - Stage 3: Make its factor and append it.
//   - Stage 4: if it is hidden (neither x nor observed), SumOut it.
//   - Stage 5: mark it eliminated; repeat until every variable is.
//   - Stage 6: multiply the remaining factors; the product must be over
//     exactly [x]. Normalize its two entries.
//
// Behavior highlights:
//   - A variable observed together with all its parents contributes a
//     scalar factor. Normalization cancels it unless it is zero, in which
//     case the query fails with ErrDegenerateDistribution like enumeration.
//   - A hidden variable is summed out only after all its children have
//     been processed, so no later factor can mention it.
//
// Errors:
//   - ErrNilNetwork, network.ErrUnknownVariable (x or an evidence key).
//   - ErrDegenerateDistribution if the evidence has probability zero.
//   - ErrScopeMismatch if the final product is not over [x].
//   - factor.ErrScopeTooLarge if an intermediate factor exceeds
//     factor.MaxScope variables.
//   - any error returned by Options.OnEliminate.
//   - context.Canceled / context.DeadlineExceeded from Options.Ctx.
//
// Complexity:
//   - Time O(n² + n · 2^w), w = widest intermediate factor; Space O(2^w).
func EliminationAsk(net *network.Network, x string, e network.Evidence, opts ...Option) (Distribution, error) {
	return run("EliminationAsk", eliminationAsk, net, x, e, opts)
}

func eliminationAsk(net *network.Network, x string, e network.Evidence, o Options) (Distribution, error) {
	el := &eliminator{
		net:        net,
		query:      x,
		evidence:   e,
		opts:       o,
		eliminated: make(map[string]bool, net.Len()),
	}

	for len(el.eliminated) < net.Len() {
		if err := o.Ctx.Err(); err != nil {
			return Distribution{}, err
		}
		if err := el.step(); err != nil {
			return Distribution{}, err
		}
	}

	final, err := factor.Product(el.factors...)
	if err != nil {
		return Distribution{}, err
	}
	scope := final.Scope()
	if len(scope) != 1 || scope[0] != x {
		return Distribution{}, fmt.Errorf("final scope %v, want [%s]: %w", scope, x, ErrScopeMismatch)
	}
	values := final.Values()
	raw := Distribution{False: values[0], True: values[1]}
	o.Logger.Debug("elimination done",
		slog.String("query", x),
		slog.Int("evidence", len(e)),
		slog.Float64("false", raw.False),
		slog.Float64("true", raw.True))

	return Normalize(raw)
}

// eliminator is the state of one elimination run.
type eliminator struct {
	net        *network.Network
	query      string
	evidence   network.Evidence
	opts       Options
	eliminated map[string]bool
	factors    []*factor.Factor
}

// step selects, processes and marks one variable.
func (el *eliminator) step() error {
	name, width, err := el.next()
	if err != nil {
		return err
	}
	if el.opts.OnEliminate != nil {
		if err := el.opts.OnEliminate(name, width); err != nil {
			return err
		}
	}

	f, err := factor.Make(el.net, name, el.evidence)
	if err != nil {
		return err
	}
	el.factors = append(el.factors, f)

	_, observed := el.evidence[name]
	hidden := name != el.query && !observed
	if hidden {
		el.factors, err = factor.SumOut(name, el.factors)
		if err != nil {
			return err
		}
	}
	el.eliminated[name] = true

	el.opts.Logger.Debug("eliminate",
		slog.String("var", name),
		slog.Int("width", width),
		slog.Bool("summed", hidden),
		slog.Int("factors", len(el.factors)))

	return nil
}

// next returns the frontier variable with the minimum heuristic score,
// together with its factor-variable count. Names are scanned in ascending
// order and only a strictly smaller score replaces the current pick.
func (el *eliminator) next() (string, int, error) {
	var (
		best      string
		bestScore = -1
		bestWidth int
	)
	for _, name := range el.net.Names() {
		if el.eliminated[name] || !el.ready(name) {
			continue
		}
		scope, err := factor.ScopeOf(el.net, name, el.evidence)
		if err != nil {
			return "", 0, err
		}
		score := len(scope)
		if el.opts.Heuristic == MinScope {
			score = el.joinedWidth(name, scope)
		}
		if bestScore < 0 || score < bestScore {
			best, bestScore, bestWidth = name, score, len(scope)
		}
	}
	if bestScore < 0 {
		// unreachable for a validated network: the sinks of the remaining
		// subgraph are always ready
		return "", 0, fmt.Errorf("no eliminable variable left: %w", network.ErrCycleDetected)
	}

	return best, bestWidth, nil
}

// ready reports whether every child of name has been eliminated.
func (el *eliminator) ready(name string) bool {
	children, _ := el.net.Children(name)
	for _, c := range children {
		if !el.eliminated[c] {
			return false
		}
	}

	return true
}

// joinedWidth is the number of distinct variables in scope and in every
// running factor that mentions name.
func (el *eliminator) joinedWidth(name string, scope []string) int {
	seen := make(map[string]struct{}, len(scope))
	for _, v := range scope {
		seen[v] = struct{}{}
	}
	for _, f := range el.factors {
		if !f.Contains(name) {
			continue
		}
		for _, v := range f.Scope() {
			seen[v] = struct{}{}
		}
	}

	return len(seen)
}
