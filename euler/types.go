// File: types.go
// Role: Options, the circuit state machine and the result type.

package euler

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphtask/core"
)

// State is a step of the circuit builder state machine.
type State int

const (
	// StateSeeking scans the current row for an unconsumed edge.
	StateSeeking State = iota
	// StateAdvancing moves along the discovered edge to its target.
	StateAdvancing
	// StateStuck means the current row has no unconsumed edge.
	StateStuck
	// StateRetrying restarts the walk from the next vertex.
	StateRetrying
	// StateDone means every edge is stamped and the walk is closed.
	StateDone
	// StateFailed means every start was exhausted or an inconsistency was found.
	StateFailed
)

var stateNames = [...]string{"Seeking", "Advancing", "Stuck", "Retrying", "Done", "Failed"}

// String implements fmt.Stringer.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Strategy selects the circuit construction algorithm.
type Strategy int

const (
	// StrategyRestart is the greedy walk with restart-from-next-vertex.
	StrategyRestart Strategy = iota
	// StrategyHierholzer is tour splicing (always succeeds on connected even graphs).
	StrategyHierholzer
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyRestart:
		return "restart"
	case StrategyHierholzer:
		return "hierholzer"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "restart" / "hierholzer" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "restart":
		return StrategyRestart, nil
	case "hierholzer":
		return StrategyHierholzer, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
	}
}

// Option configures BuildCircuit via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and hooks for BuildCircuit.
type Options struct {
	// Ctx allows cancellation; checked once per walk step.
	Ctx context.Context

	// Strategy selects the construction algorithm.
	Strategy Strategy

	// OnState observes every state transition together with the vertex the
	// walk is at (the start vertex for Retrying/Done, nil for Failed).
	OnState func(s State, at *core.Vertex)

	// CheckConnectivity rejects graphs whose edges span several components
	// before any walk is attempted.
	CheckConnectivity bool

	// LabelLookup resolves consumed cells through core.ArcLabel and
	// FindArcByLabel instead of the source vertex's incident list.
	// Requires unique vertex labels.
	LabelLookup bool

	err error
}

// DefaultOptions returns background context, StrategyRestart, a no-op hook,
// no connectivity pre-check and incident-list arc resolution.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: StrategyRestart,
		OnState:  func(State, *core.Vertex) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the construction algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyRestart && s != StrategyHierholzer {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithOnState registers a state-transition hook.
func WithOnState(fn func(s State, at *core.Vertex)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnState = fn
		}
	}
}

// WithConnectivityCheck enables the connectivity pre-check.
func WithConnectivityCheck() Option {
	return func(o *Options) { o.CheckConnectivity = true }
}

// WithLabelLookup resolves arcs by synthesized label.
func WithLabelLookup() Option {
	return func(o *Options) { o.LabelLookup = true }
}

// Circuit is the result of a successful BuildCircuit.
type Circuit struct {
	// Start is the vertex the closed walk begins and ends at.
	Start *core.Vertex

	// Arcs lists the walked arcs; Arcs[k].Order() == k+1.
	Arcs []*core.Arc

	// Attempts counts the walks started (1 when the first start succeeded).
	Attempts int

	// Strategy is the algorithm that produced the circuit.
	Strategy Strategy
}

// Len returns the number of edges in the circuit.
func (c *Circuit) Len() int { return len(c.Arcs) }

// Vertices returns the closed vertex walk: Start, then the target of every arc.
// Its length is Len()+1.
func (c *Circuit) Vertices() []*core.Vertex {
	out := make([]*core.Vertex, 0, len(c.Arcs)+1)
	out = append(out, c.Start)
	for _, a := range c.Arcs {
		out = append(out, a.Target())
	}

	return out
}

// String renders the walk as "v1 -> v2 -> … -> v1".
func (c *Circuit) String() string {
	vs := c.Vertices()
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.Label()
	}

	return strings.Join(parts, " -> ")
}
