package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/kiroscore/internal/config"
	"github.com/dotcommander/kiroscore/internal/server"
	"github.com/dotcommander/kiroscore/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scoring HTTP API",
	Long: `Serve exposes the scoring engine over HTTP for the web backend:
POST /api/v1/analyses scores and persists a submission, GET endpoints read
analyses back. Persisted analyses live in a local sqlite database.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	ctx := context.Background()
	var st *store.Store
	if cfg.DB.Path != "" {
		st, err = store.Open(ctx, cfg.DB.Path)
		if err != nil {
			return fmt.Errorf("error opening analysis store: %w", err)
		}
		defer st.Close()
	}

	scorer, pathway := buildAnalyzer(cfg)
	srv := server.New(cfg.Server, scorer, pathway, st)

	log.Printf("kiroscore listening on %s (pathway: %s)", cfg.Server.Addr, pathway)
	return srv.ListenAndServe()
}
