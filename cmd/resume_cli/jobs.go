package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-cli/internal/fetch"
	"github.com/jonathan/resume-cli/internal/ingestion"
	"github.com/jonathan/resume-cli/internal/observability"
	"github.com/jonathan/resume-cli/internal/types"
)

// jobFlags selects a single job description by file, URL or inline text
type jobFlags struct {
	path string
	url  string
	text string
}

func (f *jobFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "job", "j", "", "Path to job description (.json, .yaml, .toml, or free text)")
	cmd.Flags().StringVar(&f.url, "job-url", "", "URL of a job posting to fetch")
	cmd.Flags().StringVar(&f.text, "job-text", "", "Job posting text")
	cmd.MarkFlagsMutuallyExclusive("job", "job-url", "job-text")
	cmd.MarkFlagsOneRequired("job", "job-url", "job-text")
}

func (f *jobFlags) load(cmd *cobra.Command) (*types.JobDescription, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		job      *types.JobDescription
		metadata *ingestion.Metadata
		err      error
	)
	switch {
	case f.url != "":
		fetchOpts := fetch.DefaultOptions()
		fetchOpts.RequestsPerSecond = settings.RequestsPerSecond
		job, metadata, err = ingestion.FromURL(ctx, f.url, ingestion.URLOptions{
			Fetcher:        fetch.NewCachedFetcher(&fetch.CachedFetcherConfig{Options: fetchOpts}),
			UseBrowser:     settings.UseBrowser,
			BrowserTimeout: browserTimeout(),
			Verbose:        settings.Verbose,
		})
	case f.path != "":
		job, metadata, err = ingestion.FromFile(f.path)
	default:
		job, metadata, err = ingestion.FromText(f.text)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load job description: %w", err)
	}

	if settings.Verbose {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Loaded job from %s (sha256 %s)\n", metadata.Source, metadata.Hash[:12])
		observability.NewPrinter(cmd.ErrOrStderr()).PrintJobDescription(job)
	}
	return job, nil
}
