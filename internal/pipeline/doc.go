// Package pipeline runs the four reconciliation variants over a loaded
// drawing snapshot and dataset table:
//
//   - Pair labels basket numbers with the letters of their nearest cage label.
//   - Coefficients assigns baskets to sections and looks up each section.
//   - Chapters looks up every section from the baskets around it.
//   - Walls finds the texts around each wall and groups what they resolve to.
//
// Every variant builds its full Outcome before anything is written; callers
// persist it afterwards.
package pipeline
