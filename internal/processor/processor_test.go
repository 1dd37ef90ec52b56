package processor

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/termimport/internal/cli"
	"codeberg.org/snonux/termimport/internal/store"
	"codeberg.org/snonux/termimport/internal/testutil"
)

func countStored(t *testing.T, path string) int {
	t.Helper()
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()
	n, err := s.CountTerms()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestRunImportsTerms(t *testing.T) {
	dir := t.TempDir()
	flags := &cli.Flags{
		StorePath: filepath.Join(dir, "terms.db"),
		CSVPath:   testutil.CreateTestCSV(t, dir, "terms.csv", "Recruit,新兵,1", "Water world,水行星,"),
	}

	if err := Run(flags); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if n := countStored(t, flags.StorePath); n != 2 {
		t.Fatalf("expected 2 stored terms, got %d", n)
	}

	// A second run over the same file must not add anything.
	if err := Run(flags); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if n := countStored(t, flags.StorePath); n != 2 {
		t.Fatalf("expected 2 stored terms after rerun, got %d", n)
	}
}

func TestRunSkipsBadRows(t *testing.T) {
	dir := t.TempDir()
	flags := &cli.Flags{
		StorePath: filepath.Join(dir, "terms.db"),
		CSVPath:   testutil.CreateTestCSV(t, dir, "terms.csv", "Recruit", "Colony,殖民地,"),
	}

	if err := Run(flags); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if n := countStored(t, flags.StorePath); n != 1 {
		t.Fatalf("expected 1 stored term, got %d", n)
	}
}

func TestRunZeroTermsIsNoOp(t *testing.T) {
	dir := t.TempDir()
	flags := &cli.Flags{
		StorePath: filepath.Join(dir, "terms.db"),
		CSVPath:   testutil.CreateTestCSV(t, dir, "terms.csv"),
	}

	if err := Run(flags); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := os.Stat(flags.StorePath); !os.IsNotExist(err) {
		t.Fatalf("expected store file to stay absent, stat err = %v", err)
	}
}

func TestRunMissingCSV(t *testing.T) {
	dir := t.TempDir()
	flags := &cli.Flags{
		StorePath: filepath.Join(dir, "terms.db"),
		CSVPath:   filepath.Join(dir, "missing.csv"),
	}

	if err := Run(flags); err == nil {
		t.Fatal("Run() expected error for missing CSV file")
	}
	if _, err := os.Stat(flags.StorePath); !os.IsNotExist(err) {
		t.Fatalf("expected no store file to be created, stat err = %v", err)
	}
}
