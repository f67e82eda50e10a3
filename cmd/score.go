package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/kiroscore/internal/config"
	"github.com/dotcommander/kiroscore/internal/discovery"
	"github.com/dotcommander/kiroscore/internal/report"
	"github.com/dotcommander/kiroscore/internal/schema"
)

// runScore scores every submission file matching the given globs and
// renders a report in the configured format.
func runScore(patterns []string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	formatter, err := report.NewFormatter(cfg.Format, cfg.Output, cfg.Quiet, cfg.Verbose)
	if err != nil {
		return err
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return fmt.Errorf("error loading submission schema: %w", err)
	}

	finder := discovery.NewFinder(cfg.Root, patterns)
	paths, err := finder.Find()
	if err != nil {
		return err
	}

	scorer, _ := buildAnalyzer(cfg)
	summary := &report.Summary{StartTime: time.Now()}
	ctx := context.Background()

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", path, err)
		}
		if err := validator.ValidateBytes(content, path); err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Skipping %v\n", err)
			}
			continue
		}
		doc, err := discovery.ParseDocument(content, path)
		if err != nil {
			return err
		}

		result, err := scorer.Analyze(ctx, doc.Submission)
		if err != nil {
			return fmt.Errorf("error scoring %s: %w", path, err)
		}
		summary.Reports = append(summary.Reports, report.New(path, doc.Title, doc.Submission, result))
	}

	return formatter.Format(summary)
}
