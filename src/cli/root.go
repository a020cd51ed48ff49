// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamxnet/tls-cert-tracker/src/config"
	"github.com/kamxnet/tls-cert-tracker/src/internal/gcp"
	"github.com/kamxnet/tls-cert-tracker/src/internal/report"
	scanpipe "github.com/kamxnet/tls-cert-tracker/src/internal/scan/pipeline"
	"github.com/kamxnet/tls-cert-tracker/src/logger"
)

// ErrProjectRequired indicates that no project was supplied via flag or config file.
var ErrProjectRequired = errors.New("cli: project ID is required (use --project or a config file)")

// ErrUnknownFormat indicates an unsupported --format value.
var ErrUnknownFormat = errors.New("cli: unknown output format")

// ScanCompleted reports whether the last Execute call finished a full scan.
// The main package uses it to decide on a completion message.
var ScanCompleted bool

var (
	projectID   string
	configFile  string
	format      string
	outputFile  string
	concurrency int
	timeoutSecs int
)

// ControlPlane bundles the two read-only operations a scan needs.
// gcp.Client satisfies it; tests substitute canned front ends and records.
type ControlPlane interface {
	scanpipe.Fetcher
	ListFrontEnds(ctx context.Context) ([]scanpipe.FrontEnd, error)
}

// newControlPlane builds the production control-plane client. Overridable in tests.
var newControlPlane = func(ctx context.Context, project string, cfg *config.Config) (ControlPlane, error) {
	client, err := gcp.NewClient(ctx, project)
	if err != nil {
		return nil, err
	}
	client.SetMaxRetries(cfg.Fetch.MaxRetries)
	return client, nil
}

// Execute runs the root command and returns the error for the caller to
// translate into an exit code. A completed scan returns nil even when it
// contains ERROR findings; only the inability to scan at all is an error.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	ScanCompleted = false

	rootCmd := &cobra.Command{
		Use:           "tls-cert-tracker",
		Short:         "Track TLS certificate expiry for HTTPS load balancers",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), log)
		},
	}

	rootCmd.Flags().StringVarP(&projectID, "project", "p", "", "project ID to scan")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (.json, .yaml, or .yml)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, table, or json")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write report to OUTPUT_FILE (default: stdout)")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 0, "max in-flight certificate fetches (default from config)")
	rootCmd.Flags().IntVar(&timeoutSecs, "timeout", 0, "per-fetch timeout in seconds (default from config)")

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// runScan performs one scan pass end to end: config, control-plane client,
// front-end listing, pipeline, rendering.
func runScan(ctx context.Context, log logger.Logger) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	project := projectID
	if project == "" {
		project = cfg.Project
	}
	if project == "" {
		return ErrProjectRequired
	}

	cp, err := newControlPlane(ctx, project, cfg)
	if err != nil {
		return err
	}

	log.Printf("Scanning HTTPS load balancers in project: %s", project)

	// Listing failures are scan-fatal; per-certificate failures below are not.
	frontEnds, err := cp.ListFrontEnds(ctx)
	if err != nil {
		return err
	}
	if len(frontEnds) == 0 {
		log.Println("No HTTPS front ends found.")
	}

	pipeline := scanpipe.New(cp)
	pipeline.Classifier = &scanpipe.Classifier{
		SoonWindow: time.Duration(cfg.Thresholds.SoonDays) * 24 * time.Hour,
		WarnWindow: time.Duration(cfg.Thresholds.WarnDays) * 24 * time.Hour,
	}
	pipeline.Concurrency = cfg.Fetch.Concurrency
	if concurrency > 0 {
		pipeline.Concurrency = concurrency
	}
	pipeline.FetchTimeout = time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
	if timeoutSecs > 0 {
		pipeline.FetchTimeout = time.Duration(timeoutSecs) * time.Second
	}

	findings := pipeline.Run(ctx, frontEnds, time.Now().UTC())

	var rendered string
	switch format {
	case "text":
		rendered = report.RenderText(findings)
	case "table":
		rendered = report.RenderTable(findings)
	case "json":
		rendered, err = report.RenderJSON(findings)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(rendered), 0644); err != nil {
			return err
		}
	} else {
		log.Println(rendered)
	}

	ScanCompleted = true
	return nil
}
