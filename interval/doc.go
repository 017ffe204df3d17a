// Package interval implements closed interval arithmetic over IEEE-754
// float64 pairs, the numeric substrate for the evaluator's interval-mode
// clauses (spec.md §3, §4.1).
//
// What:
//
//   - Interval is an ordered pair (Lo, Hi) with Lo <= Hi, unless both bounds
//     are NaN (the "undefined" interval, used for domain errors).
//   - One arithmetic function per opcode that has interval semantics,
//     following the contracts spec.md §4.1 lists explicitly.
//
// Why:
//
//   - Spatial subdivision rendering (the evaluator's primary external
//     consumer) needs a sound enclosure of a function's range over a box,
//     not an exact one: wide conservative envelopes for transcendentals are
//     an explicit non-goal of exactness (spec.md §1).
//
// Soundness contract: for every opcode with a defined interval rule, and for
// every scalar point inside the operand intervals, the scalar result of the
// same opcode lies inside the returned interval. MOD is a documented,
// intentional exception — see Mod's doc comment and spec.md §9.
package interval
