package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/actor-core/fixturectl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "fixturectl",
	Short: "Actor-core test fixture bootstrapper",
	Long: `fixturectl boots a disposable actor-core server from local monorepo source.

The bootstrap builds the runtime package, packs the runtime, platform
adapter, and storage driver into local archives, assembles a temporary
workspace around the example app, installs dependencies, and launches
the server on a free ephemeral port.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
