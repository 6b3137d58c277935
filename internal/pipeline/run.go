// Package pipeline orchestrates batch ATS runs: load many job descriptions concurrently,
// then score the resume against all of them.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-cli/internal/ats"
	"github.com/jonathan/resume-cli/internal/fetch"
	"github.com/jonathan/resume-cli/internal/ingestion"
	"github.com/jonathan/resume-cli/internal/types"
)

// DefaultConcurrency bounds how many job sources load at once
const DefaultConcurrency = 4

// Progress steps and categories
const (
	StepLoadJob = "load_job"
	StepScore   = "score"

	CategoryIngestion = "ingestion"
	CategoryScoring   = "scoring"
)

// ErrNoJobs is returned when a run has nothing to score
var ErrNoJobs = errors.New("no job descriptions to score")

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
// It may be called from several goroutines at once.
type ProgressCallback func(event ProgressEvent)

// JobSource names one job description. Exactly one field is set.
type JobSource struct {
	Path string
	URL  string
	Text string
}

func (s JobSource) String() string {
	switch {
	case s.URL != "":
		return s.URL
	case s.Path != "":
		return s.Path
	default:
		return "(inline text)"
	}
}

// SourceError records a job source that failed to load
type SourceError struct {
	Source JobSource
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// RunOptions holds configuration for a batch run
type RunOptions struct {
	Resume  *types.Resume
	Sources []JobSource
	Scoring *types.Options

	// Concurrency caps parallel loads; zero means DefaultConcurrency.
	Concurrency int
	// ContinueOnError skips sources that fail to load instead of aborting the run.
	ContinueOnError bool

	// Fetcher is shared by all URL sources; nil builds one from RequestsPerSecond.
	Fetcher           *fetch.CachedFetcher
	RequestsPerSecond float64
	UseBrowser        bool
	BrowserTimeout    time.Duration

	Verbose    bool
	OnProgress ProgressCallback
}

// LoadedJob is a job description together with where it came from
type LoadedJob struct {
	Source   JobSource
	Job      *types.JobDescription
	Metadata *ingestion.Metadata
}

// RunResult holds the outcome of a batch run
type RunResult struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Loaded     []LoadedJob
	Failures   []*SourceError
	// Results are sorted by overall score, best first.
	Results []types.JobResult
}

func emitProgress(opts *RunOptions, runID uuid.UUID, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID.String(),
			Content:  content,
		})
	}
}

// Run loads every source and scores the resume against the loaded jobs.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if opts.Resume == nil {
		return nil, errors.New("pipeline: resume is required")
	}
	if len(opts.Sources) == 0 {
		return nil, ErrNoJobs
	}

	result := &RunResult{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Run %s: %d job source(s)", result.RunID, len(opts.Sources))
	}

	loaded, failures, err := loadJobs(ctx, result.RunID, &opts)
	if err != nil {
		return nil, err
	}
	result.Loaded = loaded
	result.Failures = failures
	if len(loaded) == 0 {
		return result, ErrNoJobs
	}

	jobs := make([]types.JobDescription, 0, len(loaded))
	for _, l := range loaded {
		jobs = append(jobs, *l.Job)
	}
	result.Results = ats.AnalyzeMultipleJobs(opts.Resume, jobs, opts.Scoring)
	result.FinishedAt = time.Now()

	emitProgress(&opts, result.RunID, StepScore, CategoryScoring,
		fmt.Sprintf("Scored %d job(s)", len(result.Results)), result.Results)
	return result, nil
}

// loadJobs loads sources concurrently, preserving input order in the returned slice.
func loadJobs(ctx context.Context, runID uuid.UUID, opts *RunOptions) ([]LoadedJob, []*SourceError, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetchOpts := fetch.DefaultOptions()
		if opts.RequestsPerSecond > 0 {
			fetchOpts.RequestsPerSecond = opts.RequestsPerSecond
		}
		fetcher = fetch.NewCachedFetcher(&fetch.CachedFetcherConfig{Options: fetchOpts})
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	// each goroutine writes only its own index
	slots := make([]*LoadedJob, len(opts.Sources))
	failed := make([]*SourceError, len(opts.Sources))

	for i, source := range opts.Sources {
		g.Go(func() error {
			job, metadata, err := loadOne(gCtx, source, fetcher, opts)
			if err != nil {
				srcErr := &SourceError{Source: source, Err: err}
				if !opts.ContinueOnError {
					return srcErr
				}
				if opts.Verbose {
					log.Printf("[VERBOSE] Skipping %s: %v", source, err)
				}
				failed[i] = srcErr
				return nil
			}

			slots[i] = &LoadedJob{Source: source, Job: job, Metadata: metadata}
			emitProgress(opts, runID, StepLoadJob, CategoryIngestion,
				fmt.Sprintf("Loaded %q from %s", job.Label(), source), job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	loaded := make([]LoadedJob, 0, len(slots))
	var failures []*SourceError
	for i, slot := range slots {
		if slot != nil {
			loaded = append(loaded, *slot)
		}
		if failed[i] != nil {
			failures = append(failures, failed[i])
		}
	}
	return loaded, failures, nil
}

func loadOne(ctx context.Context, source JobSource, fetcher *fetch.CachedFetcher, opts *RunOptions) (*types.JobDescription, *ingestion.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	switch {
	case source.URL != "":
		return ingestion.FromURL(ctx, source.URL, ingestion.URLOptions{
			Fetcher:        fetcher,
			UseBrowser:     opts.UseBrowser,
			BrowserTimeout: opts.BrowserTimeout,
			Verbose:        opts.Verbose,
		})
	case source.Path != "":
		return ingestion.FromFile(source.Path)
	case source.Text != "":
		return ingestion.FromText(source.Text)
	default:
		return nil, nil, errors.New("empty job source")
	}
}
