package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-cli/internal/config"
	"github.com/jonathan/resume-cli/internal/resume"
	"github.com/jonathan/resume-cli/internal/types"
)

// settings is the effective configuration: config file, then flags, then defaults
var settings config.Config

func loadSettings(cmd *cobra.Command, _ []string) error {
	var cfg config.Config

	if path := config.ResolvePath(configPath); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("resume") {
		cfg.Resume = resumePath
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}

	settings = cfg.MergeWithDefaults(config.Defaults())
	if settings.Verbose {
		log.Printf("[VERBOSE] Effective resume: %q (empty means built-in)", settings.Resume)
	}
	return nil
}

func loadResume() (*types.Resume, error) {
	r, err := resume.LoadOrDefault(settings.Resume)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	return r, nil
}

func browserTimeout() time.Duration {
	return time.Duration(settings.BrowserTimeout) * time.Second
}
