package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFixtureError_Error(t *testing.T) {
	cause := fmt.Errorf("exit status 1")
	err := BuildFailed("yarn build -F actor-core", []byte("error TS2307\n"), cause)

	msg := err.Error()
	if !strings.Contains(msg, "build:") {
		t.Errorf("Error() = %q, should name the build step", msg)
	}
	if !strings.Contains(msg, "yarn build -F actor-core") {
		t.Errorf("Error() = %q, should contain the command line", msg)
	}
	if !strings.Contains(msg, "exit status 1") {
		t.Errorf("Error() = %q, should contain the cause", msg)
	}
	if !strings.Contains(msg, "error TS2307") {
		t.Errorf("Error() = %q, should contain the captured output", msg)
	}
}

func TestFixtureError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("exit status 2")
	err := InstallFailed("yarn", nil, cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"root not found", RootNotFound("/tmp/nowhere"), ExitRootNotFound},
		{"build failed", BuildFailed("yarn build", nil, nil), ExitBuildFailed},
		{"pack failed", PackFailed("memory", "yarn pack", nil, nil), ExitPackFailed},
		{"assemble failed", AssembleFailed("copy example", fmt.Errorf("disk full")), ExitAssembleFailed},
		{"install failed", InstallFailed("yarn", nil, nil), ExitInstallFailed},
		{"launch failed", LaunchFailed("npx tsx src/server.ts", fmt.Errorf("not found")), ExitLaunchFailed},
		{"plain error", fmt.Errorf("something"), ExitGeneralError},
		{"wrapped fixture error", fmt.Errorf("outer: %w", New(ExitBuildFailed, "inner")), ExitBuildFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPackFailed_NamesPackage(t *testing.T) {
	err := PackFailed("nodejs", "yarn pack --out /tmp/v/actor-core-nodejs.tgz", nil, fmt.Errorf("exit status 1"))
	if !strings.Contains(err.Error(), "nodejs") {
		t.Errorf("Error() = %q, should name the package", err.Error())
	}
}
