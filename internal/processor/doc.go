// Package processor contains the import pipeline for termimport. It checks
// the input file, runs the CSV parser, persists the parsed terms into the
// SQLite store, and reports the final counts. This package serves as the
// coordinator between the parsing and persistence components.
package processor
