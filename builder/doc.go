// Package builder populates core.Graph stores with deterministic fixtures and
// with random connected simple graphs.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(label, bopts, cons...): creates the graph, resolves options,
//     applies constructors in order.
//   - Stochastic constructors:
//     – RandomTree(n):      connected random tree; each new vertex attaches to a
//     uniformly chosen previously created vertex.
//     – RandomSimple(n, m): RandomTree(n) plus m-(n-1) random extra edges, no
//     loops and no parallel edges (the classic createRandomSimpleGraph).
//   - Deterministic constructors:
//     – Cycle(n), Path(n), Complete(n), EdgeList(labels, pairs).
//   - Configuration primitives:
//     – BuilderOption / builderConfig.
//     – WithSeed, WithRand, WithIDScheme, WithMaxVertices.
//
// Vertex labels:
//
//	The default ID scheme maps index i to "v"+(i+1). Constructors create
//	vertices from the highest index down to 0, and core prepends, so the
//	resulting vertex list always reads v1, v2, …, vn.
//
// Every undirected edge is emitted through core.CreateEdge, i.e. as a mirror
// pair of arcs labeled "a<from>_<to>" / "a<to>_<from>".
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs.
//   - Validation first: invalid sizes fail with ErrInvalidArgument before any
//     vertex is created.
//   - No runtime panics; option constructors panic on meaningless values.
package builder
