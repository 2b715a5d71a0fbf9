package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "github.com/Seba01D/pm-app/docs"
	"github.com/Seba01D/pm-app/internal/config"
	"github.com/Seba01D/pm-app/internal/server"

	"github.com/spf13/cobra"
)

// @title           Project Manager API
// @version         1.0
// @description     Projects, access-code membership, tiles and tasks.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http

var rootCmd = &cobra.Command{
	Use:   "pm-app",
	Short: "Project manager API server",
	Long: `Serves the project manager API: projects shared through access codes,
their tiles and tasks, and per-user settings.

Runs the server when no subcommand is given.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// setup loads the configuration and installs its logger as the process default.
func setup() (*config.Config, *slog.Logger) {
	cfg := config.Load()
	log := cfg.NewLogger(os.Stdout)
	slog.SetDefault(log)

	if !cfg.DotEnvLoaded {
		log.Info("no .env file found, using system environment variables")
	}
	return cfg, log
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log := setup()

	s, err := server.Init(cfg, log)
	if err != nil {
		return fmt.Errorf("server initialization failed: %w", err)
	}
	return s.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
