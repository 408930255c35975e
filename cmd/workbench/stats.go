package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruitment-workbench/internal/engine"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize how a candidate pool scores against a job posting",
	RunE:  runStats,
}

var (
	statsJobFile    string
	statsResumeDir  string
	statsJSONOutput bool
)

func init() {
	statsCmd.Flags().StringVar(&statsJobFile, "job", "", "Path to job posting JSON file (required)")
	statsCmd.Flags().StringVar(&statsResumeDir, "resumes", "", "Directory of resume files (required)")
	statsCmd.Flags().BoolVar(&statsJSONOutput, "json", false, "Print stats as JSON")
	_ = statsCmd.MarkFlagRequired("job")
	_ = statsCmd.MarkFlagRequired("resumes")
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := newParser(cfg)
	if err != nil {
		return err
	}

	job, err := loadJobPosting(statsJobFile)
	if err != nil {
		return err
	}
	candidates, err := parseResumeDir(p, statsResumeDir)
	if err != nil {
		return err
	}

	stats := engine.New().MatchingStats(job, candidates)
	if statsJSONOutput {
		return printJSON(stats)
	}

	fmt.Printf("Matching stats for %q\n", job.Title)
	fmt.Printf("  Candidates: %d\n", stats.TotalCandidates)
	fmt.Printf("  Excellent (>=90): %d\n", stats.ExcellentMatches)
	fmt.Printf("  Good (70-89):     %d\n", stats.GoodMatches)
	fmt.Printf("  Fair (50-69):     %d\n", stats.FairMatches)
	fmt.Printf("  Poor (<50):       %d\n", stats.PoorMatches)
	fmt.Printf("  Average score: %.1f\n", stats.AverageScore)
	fmt.Printf("  Highest score: %.1f\n", stats.HighestScore)
	fmt.Printf("  Lowest score:  %.1f\n", stats.LowestScore)
	return nil
}
