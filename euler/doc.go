// Package euler decides whether a core.Graph admits an Eulerian circuit and,
// when it does, stamps every edge with its position in one.
//
// What
//
//   - CheckFeasible(m): validates an adjacency snapshot (non-empty, cells in
//     {0,1}, zero diagonal, symmetric) and requires every row to have an even
//     number of neighbors. Connectivity is not re-checked here.
//   - BuildCircuit(g, opts...): runs CheckFeasible on a fresh snapshot, then
//     walks a working copy of the matrix and stamps arc traversal orders 1..E.
//   - Verify(g): checks that the stamped orders describe a closed walk using
//     every logical edge exactly once.
//
// Strategies
//
//	StrategyRestart (default): greedy walk. From the current row, take the
//	first unconsumed cell scanning left to right, consume it (forward cell → 2,
//	mirror cell → 0), stamp the arc, move to the column. A walk that gets stuck
//	before the edge budget is spent is discarded: orders are reset, a fresh
//	matrix is derived, and the walk restarts from the next vertex in list
//	order. Exhausting every start fails with ErrNotConstructible. No
//	backtracking happens inside a walk, so some connected even graphs may
//	still fail.
//
//	StrategyHierholzer: tour splicing with the same left-to-right tie-break.
//	Always succeeds on connected even graphs; traversal orders differ from the
//	greedy walk for graphs the greedy walk cannot finish in one attempt.
//
// State machine (observable through WithOnState):
//
//	Seeking → Advancing → Seeking … → Done
//	           Seeking → Stuck → Retrying → Seeking …
//	any → Failed
//
// Graphs with vertices but no edges are a trivial closed circuit of length
// zero (Done immediately). Graphs without vertices fail with ErrEmptyGraph.
//
// Complexity (V vertices, E edges)
//
//   - CheckFeasible: O(V²).
//   - StrategyRestart: O(V² + E·(V + deg)) per attempt, up to V attempts.
//   - StrategyHierholzer: O(V² + E·(V + deg)).
//   - Memory: O(V²) for the working matrix; the walk uses an explicit loop,
//     so call depth is constant regardless of E.
package euler
