package board

// debugChecks gates the panics that guard internal invariants (double-adding
// an attacker, moving from an empty square, overflowing a MoveList) the way
// a debug_assert! would in a build that still bothered to compile them in.
// Flip to false for a release build that trusts its own bookkeeping.
const debugChecks = true
