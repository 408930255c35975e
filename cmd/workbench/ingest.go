package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruitment-workbench/internal/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <resume-file>...",
	Short: "Parse resumes and store the candidates",
	Long:  "Parse one or more resume files and persist the resulting candidate profiles to the database.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngest,
}

var ingestUpdate bool

func init() {
	ingestCmd.Flags().BoolVar(&ingestUpdate, "update", false, "Update existing candidates on duplicate email instead of skipping")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := newParser(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	stored := 0
	for _, path := range args {
		candidate, err := p.ParseFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", path, err)
			continue
		}

		err = st.CreateCandidate(ctx, candidate)
		if errors.Is(err, store.ErrDuplicateEmail) && ingestUpdate {
			existing, getErr := st.GetCandidateByEmail(ctx, candidate.Email)
			if getErr != nil || existing == nil {
				fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", path, err)
				continue
			}
			candidate.ID = existing.ID
			candidate.CreatedAt = existing.CreatedAt
			err = st.UpdateCandidate(ctx, candidate)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", path, err)
			continue
		}

		stored++
		fmt.Printf("Stored %s (%s)\n", candidate.ID, candidate.Summary())
	}

	if stored == 0 {
		return fmt.Errorf("no candidates stored")
	}
	fmt.Printf("Stored %d of %d resumes\n", stored, len(args))
	return nil
}
