package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruitment-workbench/internal/engine"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a directory of resumes against a job posting",
	Long:  "Parse every resume in a directory, score each candidate against the job posting, and print the ranking.",
	RunE:  runRank,
}

var (
	rankJobFile    string
	rankResumeDir  string
	rankTop        int
	rankMinScore   float64
	rankJSONOutput bool
)

func init() {
	rankCmd.Flags().StringVar(&rankJobFile, "job", "", "Path to job posting JSON file (required)")
	rankCmd.Flags().StringVar(&rankResumeDir, "resumes", "", "Directory of resume files (required)")
	rankCmd.Flags().IntVarP(&rankTop, "top", "k", 0, "Limit output to the top K candidates (0 = all)")
	rankCmd.Flags().Float64Var(&rankMinScore, "min-score", 0, "Drop candidates scoring below this value")
	rankCmd.Flags().BoolVar(&rankJSONOutput, "json", false, "Print match results as JSON")
	_ = rankCmd.MarkFlagRequired("job")
	_ = rankCmd.MarkFlagRequired("resumes")
	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := newParser(cfg)
	if err != nil {
		return err
	}

	job, err := loadJobPosting(rankJobFile)
	if err != nil {
		return err
	}
	candidates, err := parseResumeDir(p, rankResumeDir)
	if err != nil {
		return err
	}

	eng := engine.New()
	results := eng.TopK(job, candidates, rankTop)
	if rankMinScore > 0 {
		results = eng.AboveThreshold(job, candidates, rankMinScore)
		if rankTop > 0 && len(results) > rankTop {
			results = results[:rankTop]
		}
	}

	if rankJSONOutput {
		return printJSON(results)
	}

	names := make(map[string]string, len(candidates))
	for _, c := range candidates {
		names[c.ID.String()] = c.Name
	}

	fmt.Printf("Ranking for %q (%d candidates)\n\n", job.Title, len(candidates))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCANDIDATE\tSCORE\tGRADE\tSKILLS\tEXPERIENCE")
	for i, r := range results {
		name := names[r.CandidateID.String()]
		if name == "" {
			name = r.CandidateID.String()
		}
		expMark := "no"
		if r.ExperienceMatch {
			expMark = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%.1f\t%s\t%d/%d\t%s\n",
			i+1, name, r.Score, r.Grade(), r.SkillMatchCount, r.TotalSkills, expMark)
	}
	return w.Flush()
}
