// Package expenses provides the functions and types for keeping a personal
// expense ledger. It is designed to be local-first and auditable: all data
// lives in a single human-readable CSV file under the user's control.
//
// The core functionalities include:
//   - Ledger Management: Recording discrete spending events (date, category,
//     description, amount) in an append-only, insertion-ordered record list.
//   - Aggregation: Grouping records by category and summing amounts to
//     produce per-category totals and a grand total.
//   - Data Persistence: Encoding and decoding the ledger to and from a flat
//     CSV table with full-snapshot overwrite semantics.
//
// This package serves as the foundational logic for the `spent` command-line
// tool.
package expenses
