// Package main provides the recruitment workbench CLI: resume parsing,
// candidate-to-job matching, and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/recruitment-workbench/internal/config"
	"github.com/jonathan/recruitment-workbench/internal/parser"
)

var rootCmd = &cobra.Command{
	Use:   "workbench",
	Short: "Recruitment workbench",
	Long:  "Recruitment workbench extracts text from resumes, parses them into candidate profiles, and ranks candidates against job postings.",
}

var (
	flagConfig  string
	flagVerbose bool
	flagLogJSON bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Emit logs as JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file named by --config and layers the
// root-level flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if flagLogJSON {
		cfg.LogJSON = true
	}
	return cfg, nil
}

// newParser builds a resume parser, honoring the configured vocabulary
// override.
func newParser(cfg *config.Config) (*parser.Parser, error) {
	if cfg.VocabularyPath == "" {
		return parser.New(), nil
	}
	vocab, err := parser.LoadVocabulary(cfg.VocabularyPath)
	if err != nil {
		return nil, err
	}
	return parser.New(parser.WithVocabulary(vocab)), nil
}
