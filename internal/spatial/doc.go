// Package spatial answers the proximity questions the reconciler asks about
// drawing labels.
//
// Key functions:
//   - NearestOf: the closest candidate to a reference label
//   - Assign: nearest-anchor grouping of satellite labels
//   - Index.Within: labels inside a radius, closest first
//   - FindIntersecting: expanding-radius search around a container
//
// All searches are linear scans.
package spatial
