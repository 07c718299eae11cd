// SPDX-License-Identifier: MIT

package inference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/bayesnet/internal/logging"
)

var (
	// ErrNilNetwork is returned when a nil *network.Network is passed.
	ErrNilNetwork = errors.New("inference: network is nil")

	// ErrDegenerateDistribution indicates the unnormalized pair sums to zero
	// (the evidence has probability zero under the model) or is not finite.
	ErrDegenerateDistribution = errors.New("inference: degenerate distribution")

	// ErrScopeMismatch indicates the final elimination factor is not over
	// exactly the query variable. It signals an internal defect, not bad input.
	ErrScopeMismatch = errors.New("inference: final factor scope mismatch")

	// ErrUnknownAlgorithm indicates an algorithm name other than enum/elim.
	ErrUnknownAlgorithm = errors.New("inference: unknown algorithm")

	// ErrUnknownHeuristic indicates an elimination heuristic name that is not recognized.
	ErrUnknownHeuristic = errors.New("inference: unknown heuristic")
)

// Distribution is a (possibly unnormalized) pair of likelihoods for a
// binary query variable.
type Distribution struct {
	False float64
	True  float64
}

// P returns the entry for value v.
func (d Distribution) P(v bool) float64 {
	if v {
		return d.True
	}

	return d.False
}

// Sum returns False + True.
func (d Distribution) Sum() float64 { return d.False + d.True }

// String renders the pair as "(false, true)".
func (d Distribution) String() string {
	return fmt.Sprintf("(%g, %g)", d.False, d.True)
}

// Algorithm names an exact inference algorithm.
type Algorithm string

const (
	// Enumeration is brute-force summation over the full joint.
	Enumeration Algorithm = "enum"
	// Elimination is variable elimination over factors.
	Elimination Algorithm = "elim"
)

// ParseAlgorithm maps "enum"/"elim" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case Enumeration, Elimination:
		return Algorithm(s), nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
	}
}

// Heuristic selects the next variable to eliminate among the frontier.
type Heuristic int

const (
	// ParentCount scores a candidate by the size of the factor its own table
	// would produce (non-evidence parents, plus itself if unobserved).
	ParentCount Heuristic = iota

	// MinScope scores a candidate by the width of the factor that summing
	// it out would create: its own scope joined with the scopes of every
	// running factor that mentions it.
	MinScope
)

// String returns the CLI name of the heuristic.
func (h Heuristic) String() string {
	switch h {
	case ParentCount:
		return "parents"
	case MinScope:
		return "minscope"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// ParseHeuristic maps "parents"/"minscope" to a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch s {
	case "parents":
		return ParentCount, nil
	case "minscope":
		return MinScope, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownHeuristic)
	}
}

// Option configures optional behavior of the inference engines.
type Option func(*Options)

// Options holds configurable parameters for a query.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Logger receives Debug records for each engine step. Defaults to a
	// logger that discards everything.
	Logger *slog.Logger

	// Heuristic orders variable elimination. Default ParentCount.
	// Enumeration ignores it.
	Heuristic Heuristic

	// OnEliminate, if non-nil, is invoked each time elimination selects a
	// variable, with the variable and its factor-variable count.
	// Returning an error aborts the query with that error.
	OnEliminate func(name string, width int) error
}

// DefaultOptions returns Options with a background context, a discarding
// logger, the ParentCount heuristic and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    logging.NewNop(),
		Heuristic: ParentCount,
	}
}

// WithContext sets the Context checked between engine steps.
// Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the structured logger. Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHeuristic sets the elimination ordering heuristic.
// Panics on an unknown value.
func WithHeuristic(h Heuristic) Option {
	if h != ParentCount && h != MinScope {
		panic(fmt.Sprintf("inference: WithHeuristic(%d): unknown heuristic", int(h)))
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithOnEliminate installs fn as the elimination step hook.
func WithOnEliminate(fn func(name string, width int) error) Option {
	return func(o *Options) {
		o.OnEliminate = fn
	}
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
