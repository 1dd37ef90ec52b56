package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/termimport/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termimport [store-file] [csv-file]",
		Short: "Terminology Table Importer",
		Long: `termimport loads a bilingual terminology CSV file into a local
SQLite database, skipping terms whose source entry already exists.

The CSV starts with a header row (its content is not validated) followed by
data rows of the form: source,target[,case_sensitive]. The case_sensitive
column accepts 1 or true; anything else means false.

Examples:
  termimport                         # Import edTerms.csv into terms.db
  termimport myterms.db              # Custom database file
  termimport myterms.db myterms.csv  # Custom database and CSV files`,
		Args:    cobra.MaximumNArgs(2),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.termimport.yaml)")
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".termimport" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".termimport")
	}

	// Environment variables: store.path maps to TERMIMPORT_STORE_PATH
	viper.SetEnvPrefix("TERMIMPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ConfiguredStorePath returns the store path from config or environment,
// or empty when none is set.
func ConfiguredStorePath() string {
	return viper.GetString("store.path")
}

// ConfiguredCSVPath returns the CSV path from config or environment,
// or empty when none is set.
func ConfiguredCSVPath() string {
	return viper.GetString("csv.path")
}
