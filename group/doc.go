// Package group provides permutations, symmetry-group subgroup views, and
// the generic orbit algorithms used by the supercell and cluster layers.
//
// What:
//
//   - Permutation is a total map on {0, …, N-1} stored with the convention
//     perm[new] = old: applying the operation moves the value at old to
//     position new. Composition is value-flow: Compose(p, q)[n] = q[p[n]].
//   - SymGroup is a lazy subgroup of a parent group, identified by sorted
//     indices into the parent. Elements may carry translation parts that
//     differ from the parent's (cluster-invariant groups).
//   - MakeOrbit, MakeCanonicalElement, MakeEquivalenceMap and
//     MakeInvariantSubgroups are the group-action primitives shared by every
//     orbit construction in this module. They are generic over the element
//     type and the operation representation.
//
// Why:
//
//	Orbits of supercell lattices and orbits of integral clusters share the
//	same closure/canonicalisation/stabiliser algebra; only the action
//	differs. Keeping the algorithms generic keeps the two engines in
//	lock-step.
//
// No algebraic closure is checked anywhere: callers are responsible for
// providing element sets that are groups in context.
//
// Complexity:
//
//   - MakeOrbit: O(|reps|·(A + log n)) with A the action cost.
//   - MultiplicationTable: O(n²·(C + n·E)) with C compose cost, E equality.
//
// Errors:
//
//   - ErrIndexOutOfRange: a head-group index does not name a parent element.
//   - ErrSizeMismatch: |element| != |head_group_index|.
//   - ErrNotClosed: a product has no match in the element list.
//   - ErrNoIdentity: the element list contains no identity.
package group
