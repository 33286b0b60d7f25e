// Package simulate projects a student's final CGPA from a profile
// snapshot (see pkg/profile).
//
// Two operations:
//
//   - Simulator.RequiredAverage: the exact average SGPA the remaining
//     semesters require to land on a target. Deterministic; a result
//     above ScaleMax means the target is unreachable, and with no
//     semesters left it returns the 0.0 sentinel.
//
//   - Simulator.Project: a Monte Carlo projection over the named
//     scenarios from Scenarios. Each scenario assigns a mean SGPA per
//     pending semester; per sample, every pending semester draws from
//     N(mean, 0.3) truncated into [5.0, 10.0]. Aggregation yields mean,
//     std-dev and max CGPA plus per-target achievement odds, with and
//     without extra credits.
//
// The simulator owns no state beyond aggregates precomputed at New;
// Project is read-only with respect to the profile and safe to call
// repeatedly. Sampling uses fresh randomness unless the caller injects
// a seeded *rand.Rand, which makes a run exactly reproducible.
//
// Verdicts: Classify buckets the best with-extra probability of a
// target into unreachable (<1%), difficult (<50%) or achievable.
package simulate
