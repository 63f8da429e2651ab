// Package diagnostic collects record-level problems found while
// reconciling a drawing against the dataset.
//
// Nothing in here aborts a run. Fatal conditions are plain errors; a
// Diagnostics value travels next to the results and is printed in the run
// summary. Typical entries:
//   - dataset rows that could not be parsed
//   - baskets with no section to belong to
//   - sections matched by basket alone, or not matched at all
//   - labels that could not be traced back to a dataset row
package diagnostic
