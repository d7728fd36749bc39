// Package render converts virtual trees into live host subtrees and
// reconciles live trees against new virtual trees.
//
// Render is creation-only: it always produces a fresh subtree. Mount is
// the one-time entry point that places a rendered tree under a container
// element located by id. Patch is the reconciler: given the parent of a
// live node, the new virtual node and the previous virtual node it was
// rendered from, it mutates the live tree to match with minimal host
// operations.
//
// Reconciliation is strictly index-positional. Children are compared by
// sibling index only; a reordering of otherwise-identical children is
// treated as independent value changes at each index, never as a move.
package render
