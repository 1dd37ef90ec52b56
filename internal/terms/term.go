package terms

// Term is one terminology mapping from a source-language term to its
// translation. Source is the unique key used for deduplication.
type Term struct {
	Source        string
	Target        string
	CaseSensitive bool
}

// Stats summarizes a parse run for reporting.
type Stats struct {
	// DataRows is the number of non-blank rows after the header.
	DataRows int
	// Skipped is the number of data rows rejected (too few columns,
	// empty source or target).
	Skipped int
}
