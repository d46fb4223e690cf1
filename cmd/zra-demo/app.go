package main

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	httpclient "github.com/zra-sdk/zra-demo/internal/client/http"
	"github.com/zra-sdk/zra-demo/internal/client/zra"
	"github.com/zra-sdk/zra-demo/internal/config"
	"github.com/zra-sdk/zra-demo/internal/logger"
	"github.com/zra-sdk/zra-demo/internal/metrics"
	"github.com/zra-sdk/zra-demo/internal/render/terminal"
	"github.com/zra-sdk/zra-demo/internal/workflow"
	"go.uber.org/zap"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	baseURL    string
	format     string
	noColor    bool
	quiet      bool
}

// app wires the configuration, client, surface and engine for one command.
type app struct {
	cfg      *config.Config
	registry *prometheus.Registry
	client   *zra.Client
	surface  *terminal.Surface
	engine   *workflow.Engine
}

func newApp(opts *globalOptions, out io.Writer) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.baseURL != "" {
		cfg.Service.BaseURL = opts.baseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.InitLoggerWithConfig(logger.LoggerConfig{
		Level:       cfg.LogLevel,
		Stage:       cfg.Stage,
		EnableColor: !opts.noColor,
	})

	registry := prometheus.NewRegistry()
	collector := metrics.NewPrometheusCollector(registry)

	clientOpts := []httpclient.ClientOption{httpclient.WithMetricsCollector(collector)}
	if cfg.Service.Timeout > 0 {
		clientOpts = append(clientOpts, httpclient.WithTimeout(cfg.Service.Timeout))
	}
	client := zra.NewClient(cfg.Service.BaseURL, clientOpts...)

	surface, err := terminal.Init(out, terminal.Options{
		Mode:    terminal.Mode(opts.format),
		NoColor: opts.noColor,
		Quiet:   opts.quiet,
	})
	if err != nil {
		return nil, err
	}

	engine := workflow.NewEngineFromConfig(cfg, client, surface, workflow.WithResultRecorder(collector))

	logger.Debug("Application initialized",
		zap.String("base_url", cfg.Service.BaseURL),
		zap.String("sequencing", cfg.Workflow.Sequencing),
		zap.Duration("timeout", cfg.Service.Timeout),
	)

	return &app{
		cfg:      cfg,
		registry: registry,
		client:   client,
		surface:  surface,
		engine:   engine,
	}, nil
}

// submit stores values, runs one workflow to completion and renders it. A workflow
// that ends in error is not a command failure: the error has been rendered.
func (a *app) submit(ctx context.Context, id workflow.WorkflowID, values map[workflow.Field]string) error {
	if err := a.engine.SetInputs(values); err != nil {
		return err
	}
	if err := a.engine.Submit(ctx, id); err != nil {
		return err
	}
	a.engine.Wait()
	return nil
}

func (a *app) close() error {
	defer func() { _ = logger.Sync() }()
	return a.surface.Close()
}
