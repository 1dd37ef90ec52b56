package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/termimport/internal"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "termimport [store-file] [csv-file]" {
		t.Errorf("Expected Use to be 'termimport [store-file] [csv-file]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Terminology Table Importer") {
		t.Errorf("Expected Short description to contain 'Terminology Table Importer'")
	}

	if cmd.Version != internal.Version {
		t.Errorf("Expected Version %s, got %s", internal.Version, cmd.Version)
	}

	var flag *pflag.Flag = cmd.PersistentFlags().Lookup("config")
	if flag == nil {
		t.Error("Expected persistent flag 'config' to be registered")
	}
}

func TestInitConfigEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("TERMIMPORT_STORE_PATH", "env.db")
	t.Setenv("TERMIMPORT_CSV_PATH", "env.csv")

	InitConfig("")

	if got := ConfiguredStorePath(); got != "env.db" {
		t.Errorf("ConfiguredStorePath() = %q, want env.db", got)
	}
	if got := ConfiguredCSVPath(); got != "env.csv" {
		t.Errorf("ConfiguredCSVPath() = %q, want env.csv", got)
	}
}

func TestRootCommandRejectsExtraArgs(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if err := cmd.Args(cmd, []string{"a.db", "b.csv", "extra"}); err == nil {
		t.Error("Expected error for more than two positional arguments")
	}
	if err := cmd.Args(cmd, []string{"a.db", "b.csv"}); err != nil {
		t.Errorf("Expected two positional arguments to be accepted, got %v", err)
	}
}
