// Package subshare implements the ledger of a shared subscription: a small
// group of members splits a yearly subscription price into equal slots, and
// each member's monthly payments are tracked, summarized and audited.
//
// The core functionalities include:
//   - Record Store: one JSON record per year, loaded with safe defaults when
//     absent or corrupt, and saved atomically (temp file then rename).
//   - Ledger Operations: member add/remove, paid/unpaid toggles with an
//     append-only change history, settings updates, and bulk month updates.
//   - Summaries: price per slot, per-member paid/owed amounts and payment
//     rates, and year-level aggregates, all recomputed on demand.
//   - Backup: whole-store export into a single bundle, and restore with
//     per-year overwrite.
//
// This package serves as the foundational logic for the `scs` command-line
// tool, which is a thin presentation layer over these operations.
package subshare
