// Package clust enumerates orbits of integral site clusters under crystal
// symmetry: prim-periodic orbits and local orbits around a phenomenal
// cluster, with per-cluster invariant groups.
//
// What:
//
//   - IntegralCluster is an ordered sequence of integral site coordinates
//     with sorting, translation, and a deterministic total order.
//   - Invariants is the cheap comparable summary of a cluster (size plus
//     sorted pairwise distances, plus distances to the phenomenal cluster in
//     the local form) used to prune equivalents before canonicalisation.
//   - Neighborhood factories produce candidate sites per orbit branch;
//     cluster filters bound the admitted clusters.
//   - MakePrimPeriodicOrbits / MakeLocalOrbits run the branch-and-filter
//     enumeration; MakeClusterGroups / MakeLocalClusterGroups attach the
//     invariant group of every orbit element.
//
// Translation-coset canonicalisation:
//
//	PrimPeriodicCopyApply sorts the transformed cluster and translates it so
//	its first element sits in the origin unit cell: prim-periodic orbits
//	quotient by lattice translation. LocalCopyApply sorts only — a
//	phenomenal cluster breaks translational symmetry, so two local clusters
//	differing by a lattice translation stay distinct. This asymmetry is the
//	load-bearing design choice of the engine.
//
// Custom generators bypass the site and cluster filters on purpose: they
// exist to force inclusion of otherwise-excluded clusters, optionally with
// all of their subclusters.
//
// Complexity:
//
//   - MakePrimPeriodicOrbits: O(branches · |prev| · |candidates| · |reps|)
//     cluster canonicalisations; every cluster operation is O(n log n) for
//     n-site clusters.
//
// Errors:
//
//   - ErrEmptyRepresentation: no symmetry representation supplied.
//   - ErrCutoffRadiusSize: fewer cutoff radii than orbit branches.
package clust
