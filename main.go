package main

import (
	"os"

	"github.com/actor-core/fixturectl/cmd"
	"github.com/actor-core/fixturectl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
