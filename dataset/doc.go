// Package dataset provides the tabular data context business rules
// resolve field values against.
//
// A Dataset holds three things:
//
//   - named Tables: ordered columns and column-indexed rows, the shape
//     of a materialized query result
//   - a FieldCollection: flat single-row field records keyed by class
//     name, field name, and row ID, matched case-insensitively
//   - an active-row registry mapping a class name to the row ID
//     single-row resolution should read when the caller names none
//
// Datasets are plain mutable values with no internal locking; callers
// own any concurrency.
//
// # Loaders
//
// Datasets can be built programmatically or materialized from external
// sources:
//
//   - Load / LoadFile / LoadDir decode the YAML dataset format
//   - LoadTable materializes a table from any database/sql source
//   - MarshalBinary / UnmarshalBinary snapshot a dataset as msgpack,
//     with Store / Fetch helpers for keeping snapshots in a Cache
//   - Watch reloads a YAML dataset file whenever it changes on disk
package dataset
