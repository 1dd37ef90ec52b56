// Package terms defines the terminology entry model and the CSV parser
// that turns a bilingual glossary file into a list of normalized terms.
// It handles encoding fallback (UTF-8 then GBK), header skipping, and
// per-row validation with diagnostic output.
package terms
