package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/actor-core/fixturectl/internal/errors"
	"github.com/actor-core/fixturectl/internal/repo"
	"github.com/actor-core/fixturectl/internal/system"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the fixture bootstrap prerequisites are available",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	exec := system.DefaultExecutor()
	healthy := true

	for _, tool := range []string{"yarn", "npx"} {
		if path, err := exec.LookPath(tool); err == nil {
			logSuccess("%s found at %s", tool, path)
		} else {
			logError("%s not found in PATH", tool)
			healthy = false
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	if root, err := repo.FindRoot(system.DefaultFS(), wd); err == nil {
		logSuccess("monorepo root: %s", root)
	} else {
		logError("no monorepo root found from %s", wd)
		healthy = false
	}

	if !healthy {
		return errors.New(errors.ExitGeneralError, "environment is not ready for fixture bootstrap")
	}
	return nil
}
