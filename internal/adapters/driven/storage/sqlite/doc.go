// Package sqlite provides a SQLite-based implementation of driven.StateStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. The session state is a single key/value table; the deck
// controller stores the whole slide sequence as one JSON value.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Each applied version is recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.slidedeck/data/state.db
package sqlite
