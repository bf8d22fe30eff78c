// Package memo persists discovered monodromy on disk so that repeated
// runs over the same curve skip the most expensive stage. Records are
// stored in a badger database keyed by a versioned prefix and the
// canonical curve string; anything that fails to decode, or was
// written by a different record version, is treated as a miss and
// silently recomputed by the caller.
package memo
