// Package cli provides command-line interface setup and configuration
// for the termimport tool. It handles argument parsing, command creation,
// and configuration management using cobra and viper.
package cli
