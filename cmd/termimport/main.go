package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/termimport/internal/cli"
	"codeberg.org/snonux/termimport/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(args []string, flags *cli.Flags) error {
	flags.ResolvePaths(args, cli.ConfiguredStorePath(), cli.ConfiguredCSVPath())
	return processor.Run(flags)
}
