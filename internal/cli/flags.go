package cli

// Default file locations used when neither configuration nor positional
// arguments provide them.
const (
	DefaultStorePath = "terms.db"
	DefaultCSVPath   = "edTerms.csv"
)

// Flags holds all resolved command-line values.
type Flags struct {
	CfgFile   string
	StorePath string
	CSVPath   string
}

// NewFlags creates a new Flags instance with default values.
func NewFlags() *Flags {
	return &Flags{
		StorePath: DefaultStorePath,
		CSVPath:   DefaultCSVPath,
	}
}

// ResolvePaths applies configuration overrides and positional arguments, in
// that order, on top of the built-in defaults. Positional arguments win.
func (f *Flags) ResolvePaths(args []string, storeFromConfig, csvFromConfig string) {
	if storeFromConfig != "" {
		f.StorePath = storeFromConfig
	}
	if csvFromConfig != "" {
		f.CSVPath = csvFromConfig
	}
	if len(args) > 0 {
		f.StorePath = args[0]
	}
	if len(args) > 1 {
		f.CSVPath = args[1]
	}
}
