package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/recruitment-workbench/internal/config"
	"github.com/jonathan/recruitment-workbench/internal/store"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage stored job postings",
}

var jobsImportCmd = &cobra.Command{
	Use:   "import <job-file.json>",
	Short: "Validate a job posting JSON file and store it",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsImport,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored job postings",
	RunE:  runJobsList,
}

var jobsActivateCmd = &cobra.Command{
	Use:   "activate <job-id>",
	Short: "Mark a stored job posting active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setJobActive(args[0], true)
	},
}

var jobsDeactivateCmd = &cobra.Command{
	Use:   "deactivate <job-id>",
	Short: "Mark a stored job posting inactive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setJobActive(args[0], false)
	},
}

var jobsListActiveOnly bool

func init() {
	jobsListCmd.Flags().BoolVar(&jobsListActiveOnly, "active", false, "Show only active postings")
	jobsCmd.AddCommand(jobsImportCmd, jobsListCmd, jobsActivateCmd, jobsDeactivateCmd)
	rootCmd.AddCommand(jobsCmd)
}

// openStore connects to the configured database.
func openStore(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL or database_url in the config file)")
	}
	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := st.Init(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func runJobsImport(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	job, err := loadJobPosting(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.CreateJobPosting(ctx, job); err != nil {
		return err
	}
	fmt.Printf("Imported job posting %s (%s)\n", job.ID, job.Title)
	return nil
}

func runJobsList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	jobs, err := st.ListJobPostings(ctx, jobsListActiveOnly)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("No job postings found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tLOCATION\tSALARY\tACTIVE")
	for _, j := range jobs {
		active := "no"
		if j.Active {
			active = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", j.ID, j.Title, j.Location, j.SalaryRange(), active)
	}
	return w.Flush()
}

func setJobActive(rawID string, active bool) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid job ID %q: %w", rawID, err)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SetJobPostingActive(ctx, id, active); err != nil {
		return err
	}
	state := "inactive"
	if active {
		state = "active"
	}
	fmt.Printf("Job posting %s is now %s\n", id, state)
	return nil
}
