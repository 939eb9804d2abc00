package main

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudokugame/internal/adapters/http"
	"svw.info/sudokugame/internal/config"
	"svw.info/sudokugame/internal/hint"
	"svw.info/sudokugame/internal/infrastructure/storage"
	"svw.info/sudokugame/internal/puzzle"
	"svw.info/sudokugame/internal/solver"
	"svw.info/sudokugame/internal/usecase"
	"svw.info/sudokugame/internal/validator"
)

func newServeCmd() *cobra.Command {
	var (
		cfgPath       string
		addr          string
		dataDir       string
		sourceURL     string
		sourceTimeout int
		logLevel      string
		hintSeed      int64
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			// Flags beat the config file when set explicitly.
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = dataDir
			}
			if cmd.Flags().Changed("source-url") {
				cfg.SourceURL = sourceURL
			}
			if cmd.Flags().Changed("source-timeout") {
				cfg.SourceTimeout = sourceTimeout
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("hint-seed") {
				cfg.HintSeed = hintSeed
			}
			return serve(cfg)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dataDir, "data-dir", "./data", "puzzle save directory")
	cmd.Flags().StringVar(&sourceURL, "source-url", "", "remote puzzle source endpoint")
	cmd.Flags().IntVar(&sourceTimeout, "source-timeout", 10, "puzzle fetch timeout in seconds")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	cmd.Flags().Int64Var(&hintSeed, "hint-seed", 0, "fixed seed for hint selection (0 = from clock)")
	return cmd
}

func serve(cfg config.Config) error {
	logger := newLogger(cfg.SlogLevel())

	seed := cfg.HintSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Wire providers -> use cases -> HTTP adapter.
	s := solver.NewBacktrackingSolver()
	v := validator.New()
	h := hint.NewReveal(rng)
	src := puzzle.NewFallback(
		puzzle.NewHTTPSource(cfg.SourceURL, time.Duration(cfg.SourceTimeout)*time.Second),
		logger,
	)
	st := storage.NewFS(cfg.DataDir)
	uc := usecase.NewService(s, v, h, src, st)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(httpadapter.RequestLogger(logger), gin.Recovery())
	httpadapter.New(uc).Register(r)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "dataDir", cfg.DataDir, "source", cfg.SourceURL)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
