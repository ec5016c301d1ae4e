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

	"github.com/alexedwards/scs/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"formalgen/internal/config"
	"formalgen/internal/document"
	"formalgen/internal/draft"
	"formalgen/internal/lookup"
	"formalgen/internal/render"
	"formalgen/internal/server"
)

var (
	rootCmd = &cobra.Command{
		Use:   "formalgen",
		Short: "Bilingual office order and circular generator",
	}

	configPath string
	addr       string
	verbose    bool

	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	}

	serveCmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides the config file)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the document-generation web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if addr != "" {
			cfg.Server.Addr = addr
		}
		if cfg.AI.APIKey == "" {
			return fmt.Errorf("AI API key not configured")
		}

		store, err := lookup.Load(cfg.Data.Dir)
		if err != nil {
			return fmt.Errorf("failed to load lookup data: %w", err)
		}

		ctx := cmd.Context()
		drafter, err := draft.NewGeminiDrafter(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			return fmt.Errorf("failed to create drafter: %w", err)
		}

		pdf := render.NewPDF(cfg.Data.StaticDir)
		defer func() { _ = pdf.Close() }()

		sessions := scs.New()
		sessions.Lifetime = cfg.Session.Lifetime

		srv := server.New(server.Deps{
			Logger:    logger,
			Lookup:    store,
			Assembler: document.NewAssembler(store, nil),
			Drafter:   drafter,
			PDF:       pdf,
			Docx:      render.NewDocx(cfg.Data.StaticDir),
			Sessions:  sessions,
		})

		httpServer := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           srv,
			ReadHeaderTimeout: 10 * time.Second,
		}

		shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", zap.String("addr", cfg.Server.Addr))
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case <-shutdownCtx.Done():
			logger.Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
		}
		return nil
	},
}
