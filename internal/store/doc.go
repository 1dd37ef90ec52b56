// Package store persists terminology entries in a local SQLite database.
// The terms table is created on open if missing, and imports use
// INSERT OR IGNORE so a source term is only ever written once.
package store
