package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/zra-sdk/zra-demo/internal/console"
	"github.com/zra-sdk/zra-demo/internal/logger"
	"github.com/zra-sdk/zra-demo/internal/render/terminal"
	"github.com/zra-sdk/zra-demo/internal/workflow"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// drainTimeout bounds the wait for in-flight workflows once the console has stopped.
var drainTimeout = shutdownTimeout

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Tax authority integration demo client",
		Long: `zra-demo submits taxpayer workflows to the integration service and renders
the results.

Workflows:
- verify      look up a taxpayer by TPIN
- calculate   compute tax on an income figure
- compliance  check a taxpayer's compliance status
- report      generate a full compliance report

Run "zra-demo serve" for the HTTP console.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warning, error)")
	flags.StringVar(&opts.baseURL, "base-url", "", "Integration service base URL")
	flags.StringVar(&opts.format, "format", string(terminal.ModePlain), "Result format (plain, markdown)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print pending states")

	cmd.AddCommand(
		tpinCmd(opts, "verify", "Verify a taxpayer", workflow.Verify, workflow.FieldVerifyTPIN),
		calculateCmd(opts),
		tpinCmd(opts, "compliance", "Check a taxpayer's compliance status", workflow.Compliance, workflow.FieldComplianceTPIN),
		tpinCmd(opts, "report", "Generate a compliance report", workflow.Report, workflow.FieldReportTPIN),
		quickCmd(opts),
		quickActionsCmd(),
		serveCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

func tpinCmd(opts *globalOptions, use, short string, id workflow.WorkflowID, field workflow.Field) *cobra.Command {
	return &cobra.Command{
		Use:   use + " TPIN",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.close()

			return a.submit(cmd.Context(), id, map[workflow.Field]string{field: args[0]})
		},
	}
}

func calculateCmd(opts *globalOptions) *cobra.Command {
	var taxType string

	cmd := &cobra.Command{
		Use:   "calculate INCOME",
		Short: "Calculate tax on an income figure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.close()

			return a.submit(cmd.Context(), workflow.Calculate, map[workflow.Field]string{
				workflow.FieldIncome:  args[0],
				workflow.FieldTaxType: taxType,
			})
		},
	}

	cmd.Flags().StringVarP(&taxType, "type", "t", "income", "Tax type (income, vat)")
	return cmd
}

func quickCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "quick TPIN",
		Short: "Fill every TPIN input and verify after the quick-action delay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.close()

			a.engine.FillAll(cmd.Context(), args[0])
			a.engine.Wait()
			return nil
		},
	}
}

func quickActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quick-actions",
		Short: "List the sample taxpayers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			tpinStyle := lipgloss.NewRenderer(out).NewStyle().Bold(true)
			for _, qa := range workflow.QuickActions {
				fmt.Fprintf(out, "%s  %s\n", tpinStyle.Render(qa.TPIN), qa.Label)
			}
		},
	}
}

func serveCmd(opts *globalOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.close()

			if port == "" {
				port = a.cfg.Console.Port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, a, ":"+port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (defaults to CONSOLE_PORT)")
	return cmd
}

func serve(ctx context.Context, a *app, addr string) error {
	router := console.NewRouter(console.Deps{
		Config:   a.cfg,
		Engine:   a.engine,
		Gatherer: a.registry,
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Console starting", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("console server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down console...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("console shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if drainErr := a.engine.WaitContext(drainCtx); drainErr != nil {
		logger.Warn("Abandoning workflows still in flight", zap.Error(drainErr))
	}

	logger.Info("Console exiting")
	return err
}
