// Package graph provides a generic in-memory directed acyclic graph with
// identity-based nodes, cycle-safe edge insertion, breadth- and depth-first
// traversal, deterministic topological ordering, and connected-component
// partitioning.
//
// # Identity
//
// Nodes are keyed by a [Hasher] applied to their label. The default hasher
// (used by [New] and [Init]) hashes the label's fmt representation with
// xxhash; [NewFunc] accepts a custom identity function. Hashers must be pure
// and collision-free over the active label set - colliding labels silently
// collapse to one node.
//
// # Acyclicity
//
// [Graph.Connect] refuses self-loops and edges that would close a directed
// cycle, checked with a reachability walk at insertion time. The invariant
// is enforced once at the store boundary, so ordering, layout, and partition
// code never handles cycles. Undirected semantics are out of scope: a
// "bidirectional edge" would itself be a two-cycle and is rejected.
//
// # Sequences
//
// [Walk] (traversal) and [Parts] (partition) are pull-based, finite,
// one-shot sequences. A Walk borrows its graph read-only; Parts drains its
// graph. Neither may be used across an external mutation of the source -
// iterator invalidation is the caller's obligation. [Graph.Ordering] is
// recomputed fresh per call and returns a plain slice.
//
// All operations are synchronous and single-threaded; callers needing
// concurrent access must serialize externally.
package graph
