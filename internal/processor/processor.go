package processor

import (
	"fmt"
	"os"

	"codeberg.org/snonux/termimport/internal/cli"
	"codeberg.org/snonux/termimport/internal/store"
	"codeberg.org/snonux/termimport/internal/terms"
)

// Run executes one import: parse the CSV file, insert the terms into the
// store, and print a summary. A CSV without any valid terms is a successful
// no-op; the store is not touched in that case.
func Run(flags *cli.Flags) error {
	fmt.Printf("Store file: %s\n", flags.StorePath)
	fmt.Printf("CSV file: %s\n", flags.CSVPath)

	if _, err := os.Stat(flags.CSVPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("CSV file %s does not exist", flags.CSVPath)
		}
		return fmt.Errorf("check CSV file %s: %w", flags.CSVPath, err)
	}

	parsed, _, err := terms.ParseFile(flags.CSVPath)
	if err != nil {
		return err
	}
	if len(parsed) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no valid terms found, nothing to import")
		return nil
	}

	st, err := store.Open(flags.StorePath)
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Printf("Store %s ready, importing terms...\n", flags.StorePath)

	res, err := st.ImportTerms(parsed)
	if err != nil {
		return err
	}

	fmt.Printf("%d terms read, %d imported, %d duplicates skipped, %d failed\n",
		len(parsed), res.Imported, res.Duplicates, res.Failed)
	return nil
}
