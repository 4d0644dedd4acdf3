package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidquiz/internal/api"
	"github.com/abhisek/vidquiz/internal/config"
	"github.com/abhisek/vidquiz/internal/evaluate"
	"github.com/abhisek/vidquiz/internal/llm"
	"github.com/abhisek/vidquiz/internal/logger"
	"github.com/abhisek/vidquiz/internal/quizgen"
	"github.com/abhisek/vidquiz/internal/store"
	"github.com/abhisek/vidquiz/internal/youtube"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		log, err := logger.New(cfg.Log.Mode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		dbPath, err := resolveDBPath(cmd, cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		provider, err := llm.NewProviderFromEnv(ctx, log)
		if err != nil {
			return fmt.Errorf("init LLM provider: %w", err)
		}

		server := api.NewServer(
			cfg,
			log,
			st,
			quizgen.NewAssembler(quizgen.New(provider, quizgen.DefaultConfig())),
			evaluate.New(provider, evaluate.DefaultConfig(), rand.New(rand.NewSource(time.Now().UnixNano()))),
			youtube.NewClient(),
		)

		httpServer := &http.Server{
			Addr:    cfg.Addr(),
			Handler: server.Router(),
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("server listening", "addr", cfg.Addr(), "db", dbPath, "model", provider.ModelID())
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
		}
		return nil
	},
}
