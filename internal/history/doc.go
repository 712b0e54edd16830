package history

// Package history implements the append-only print history ledger: a CSV
// file with a header row written exactly once, records appended in
// submission order, and wholesale Clear as the only way anything is removed.
