// Package drawing reads and writes entity snapshots: the texts and circles
// exported from a drawing as YAML or JSON.
//
// Entities implement spatial.Label and spatial.Bounded, so the core never
// sees whether a label was a single-line or a multi-line text.
package drawing
