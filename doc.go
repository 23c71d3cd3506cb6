// Package dasl implements DASL, a Dense Array Skip List: a single-writer,
// in-memory, ordered set of 64-bit unsigned integer keys.
//
// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS A DENSE ARRAY SKIP LIST?
// ═══════════════════════════════════════════════════════════════════════════════
// A classic skip list towers one key per node, with each node carrying a
// random-height array of forward pointers. DASL inverts the packing: each
// node carries a small *array* of up to ArrSize keys (and ArrSize parallel
// down-pointers), and the "tower" is built by nodes at level ℓ pointing down
// to the level-(ℓ-1) nodes whose leader (slot 0) matches one of their keys.
//
//	Level 1: HEAD ---------> [10|  ] -----------------> [50|  ] --------> NULL
//	                            |                           |
//	Level 0: HEAD -> [10|20|30|40] -> [41|42|  |  ] -> [50|60|70|80] --> NULL
//
// Packing several keys per node amortizes a pointer-chase over ArrSize
// comparisons instead of one, at the cost of a trickier insertion path:
// arrays fill up and must split (or, cheaper, raise a leader key to the
// parent level without touching the array at all).
//
// See DESIGN.md in the repository root for design rationale and the
// trade-offs between the insertion policies.
package dasl

// ArrSize is the number of keys (and down-pointers) packed into one node.
const ArrSize = 4

// MaxHeight is the absolute cap on the number of levels.
const MaxHeight = 50
