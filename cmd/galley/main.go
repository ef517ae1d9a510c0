// Package main is the entry point for the galley CLI, which converts
// extracted document interchange files to clean Markdown.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/galleydoc/galley"
)

// Exit codes distinguish failure classes so scripts can branch on them.
const (
	exitSuccess          = 0
	exitUsage            = 1
	exitUnsupportedType  = 2
	exitExtractionFailed = 3
	exitScannedNoText    = 4
)

// rootCmd is the base command for the galley CLI.
var rootCmd = &cobra.Command{
	Use:   "galley",
	Short: "Convert extracted documents to clean, grep-friendly Markdown",
	Long: `galley normalizes extracted document content into Markdown: it reflows
hard-wrapped paragraphs, repairs end-of-line hyphenation, strips repeating
headers and footers, renders tables as GitHub-flavored Markdown, and
canonicalizes whitespace.

Input is the JSON document interchange format produced by an extraction
front end. Each conversion is a subcommand: convert handles one file,
batch walks a directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./galley.yaml or ~/.config/galley/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("galley")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "galley"))
		}
	}

	viper.SetEnvPrefix("GALLEY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exitCodeFor maps a conversion error to its process exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, galley.ErrUnsupportedType):
		return exitUnsupportedType
	case errors.Is(err, galley.ErrScannedNoText):
		return exitScannedNoText
	case errors.Is(err, galley.ErrExtractionFailed):
		return exitExtractionFailed
	default:
		return exitUsage
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCodeFor(err))
	}
}
