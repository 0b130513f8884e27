// Package crysym is your in-memory toolkit for crystallographic symmetry:
// supercell permutation representations and orbits of integral site clusters.
//
// 🚀 What is crysym?
//
//	A modern, immutable-after-construction library that brings together:
//		• Lattice primitives: lattices, superlattices, symmetry operations
//		• Point & factor groups: generated straight from a primitive structure
//		• Index converters: linear index ↔ (b, i, j, k) with periodic wrapping
//		• Supercell symmetry: translation & factor-group site permutations
//		• Canonical forms: canonical supercell lattices and their equivalents
//		• Orbit engines: prim-periodic and local cluster orbits with
//		  per-cluster invariant groups
//
// ✨ Why choose crysym?
//
//   - Deterministic – every enumeration is ordered and reproducible
//   - Rock-solid guarantees – exact integer arithmetic for all lattice
//     indexing, explicit tolerances for everything real-valued
//   - Share freely – all results are immutable after construction and safe
//     for concurrent reads without locks
//   - Extensible – site filters, cluster filters and custom orbit generators
//     plug into the enumeration loop
//
// Under the hood, everything is organized under six subpackages:
//
//	lattice/   — Lattice, Superlattice, SymOp, canonical lattice forms
//	cell/      — UnitCell, UnitCellCoord and symmetry action on them
//	group/     — Permutation, SymGroup and generic orbit algorithms
//	prim/      — primitive structures, factor groups, site representations
//	supercell/ — index converters, SupercellSymInfo, canonical supercells
//	clust/     — IntegralCluster, invariants, orbit enumeration engines
//
// Quick ASCII example:
//
//	    prim ──▶ factor group ──▶ site reps
//	      │                          │
//	      ▼                          ▼
//	  supercell ──▶ permutations   orbits ──▶ cluster groups
//
// See the group package documentation for the permutation convention
// (perm[new] = old) and the clust package documentation for the
// translation-coset canonicalisation rules.
//
//	go get github.com/katalvlaran/crysym
package crysym
