package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/actor-core/fixturectl/fixture"
	"github.com/actor-core/fixturectl/internal/config"
	"github.com/actor-core/fixturectl/internal/health"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Boot a fixture server and keep it running until interrupted",
	Args:  cobra.NoArgs,
	RunE:  runUp,
}

var upConfigPath string

func init() {
	upCmd.Flags().StringVarP(&upConfigPath, "config", "c", "", "Path to a fixture.toml overriding the defaults")
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logInfo("Bootstrapping fixture server...")

	fx, err := fixture.Start(context.Background(), cfg)
	if err != nil {
		logError("Bootstrap failed: %v", err)
		return err
	}
	defer fx.Stop()

	logSuccess("Server listening at %s", fx.URL())
	fmt.Printf("  Workspace: %s\n", fx.WorkspaceDir())
	fmt.Printf("  PID: %d\n", fx.PID())

	// Informational only: the bootstrap never gates on reachability.
	if !health.CheckTCP(fx.Port()) {
		logWarning("Server not yet reachable on port %d (it may still be starting)", fx.Port())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logInfo("Shutting down fixture...")
	return nil
}

func loadConfig() (*config.Config, error) {
	if upConfigPath == "" {
		return config.Default(), nil
	}
	return config.Load(upConfigPath)
}
