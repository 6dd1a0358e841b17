// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xrefcheck

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sassoftware/pdf-xrefcheck/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const reasonTooLarge = "File too large"

// Checker defines the contract for classifying a PDF file.
type Checker interface {
	Check(ctx context.Context, path string) (*Report, error)
}

// Processor bounds how many files are analysed at once.
type Processor struct {
	cfg *Config
	sem *semaphore.Weighted
}

// NewProcessor validates the config and creates a new Processor.
func NewProcessor(cfg *Config) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}

	logger.Debug(fmt.Sprintf("Processor initialized: max_concurrent_files=%d file_timeout=%s max_file_size=%d",
		cfg.MaxConcurrentFiles, cfg.FileTimeout, cfg.MaxFileSize), true)

	return &Processor{
		cfg: cfg,
		sem: semaphore.NewWeighted(int64(cfg.MaxConcurrentFiles)),
	}, nil
}

// Check analyses one file. Problems with the file itself are reported in the
// verdict; the error is non-nil only when ctx ends before the analysis starts.
// FileTimeout starts once a slot is held, so time spent queued does not count.
func (p *Processor) Check(ctx context.Context, path string) (*Report, error) {
	logger.Debug(fmt.Sprintf("Starting check: path=%s", path), true)

	if err := p.acquireSlot(ctx); err != nil {
		logger.Debug(fmt.Sprintf("Failed to acquire slot: path=%s err=%v", path, err), true)
		return nil, err
	}
	defer p.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, p.cfg.FileTimeout)
	defer cancel()

	if p.cfg.MaxFileSize > 0 {
		if fi, err := os.Stat(path); err == nil && fi.Size() > p.cfg.MaxFileSize {
			logger.Debug(fmt.Sprintf("File exceeds size limit: path=%s size=%d limit=%d", path, fi.Size(), p.cfg.MaxFileSize), true)
			return &Report{Path: path, Verdict: errorVerdict(reasonTooLarge)}, nil
		}
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read PDF: path=%s err=%v", path, err))
		return &Report{Path: path, Verdict: errorVerdict(reasonReadError)}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("check %s: %w", path, err)
	}

	rep := Analyze(buf)
	rep.Path = path
	if p.cfg.DebugOn {
		for _, f := range rep.Findings() {
			logger.Debug(fmt.Sprintf("Finding: path=%s %s", path, f), true)
		}
	}
	logger.Debug(fmt.Sprintf("Check completed: path=%s verdict=%s", path, rep.Verdict), true)
	return rep, nil
}

// CheckAll analyses paths concurrently and returns the reports in input order.
// The first context error stops the remaining checks.
func (p *Processor) CheckAll(ctx context.Context, paths []string) ([]*Report, error) {
	reports := make([]*Report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			rep, err := p.Check(ctx, path)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info(fmt.Sprintf("All checks completed: files=%d", len(paths)))
	return reports, nil
}

// ReportJSON checks path and writes the report as JSON to the provided writer.
func (p *Processor) ReportJSON(ctx context.Context, path string, w io.Writer) error {
	rep, err := p.Check(ctx, path)
	if err != nil {
		return err
	}
	if err := rep.WriteJSON(w); err != nil {
		logger.Error("failed to write report")
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (p *Processor) acquireSlot(ctx context.Context) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire slot: %w", err)
	}
	logger.Debug("Slot acquired successfully", true)
	return nil
}

var _ Checker = (*Processor)(nil)
