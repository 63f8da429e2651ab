// Package match turns raw section and basket labels into comparable keys and
// looks them up in the coefficient dataset.
//
// Key functions:
//   - NormalizeStage1, NormalizeStage2: canonical section keys
//   - Match: the primary, secondary and basket-only lookup phases
//   - MatchNearby: proximity-gated lookup for per-chapter exports
//   - Choose: picks between two candidate sets by basket distance
//   - Suggest: closest dataset keys for a key that matched nothing
package match
