package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/recruitment-workbench/internal/extract"
	"github.com/jonathan/recruitment-workbench/internal/model"
	"github.com/jonathan/recruitment-workbench/internal/parser"
	"github.com/jonathan/recruitment-workbench/internal/schemas"
)

// jobPostingDocument mirrors model.JobPosting for import, with an optional
// active flag that defaults to true when absent.
type jobPostingDocument struct {
	model.JobPosting
	Active *bool `json:"active,omitempty"`
}

// loadJobPosting reads a job posting JSON file, validates it against the
// schema, and decodes it. Postings without an ID get a fresh one.
func loadJobPosting(path string) (*model.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job posting file: %w", err)
	}
	if err := schemas.ValidateJobPosting(data); err != nil {
		return nil, err
	}

	var doc jobPostingDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse job posting JSON: %w", err)
	}

	job := doc.JobPosting
	job.Active = doc.Active == nil || *doc.Active
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job posting: %w", err)
	}
	return &job, nil
}

// parseResumeDir parses every supported resume file directly under dir, in
// lexical order. Files that fail to parse are reported and skipped.
func parseResumeDir(p *parser.Parser, dir string) ([]*model.Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !extract.IsSupported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	var candidates []*model.Candidate
	for _, path := range paths {
		candidate, err := p.ParseFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", path, err)
			continue
		}
		candidates = append(candidates, candidate)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no parsable resumes found in %s", dir)
	}
	return candidates, nil
}

func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
