package yarn

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/actor-core/fixturectl/internal/errors"
	"github.com/actor-core/fixturectl/internal/system"
)

func TestBuild_CommandLine(t *testing.T) {
	exec := system.NewMockExecutor()

	if err := Build(context.Background(), exec, "/repo", "actor-core"); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	calls := exec.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Dir != "/repo" {
		t.Errorf("dir = %q, want /repo", calls[0].Dir)
	}
	if calls[0].Line() != "yarn build -F actor-core" {
		t.Errorf("command = %q", calls[0].Line())
	}
}

func TestBuild_FailureSurfacesStepAndOutput(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.RunHook = func(c system.Call) ([]byte, error) {
		return []byte("TS2307: cannot find module"), fmt.Errorf("exit status 1")
	}

	err := Build(context.Background(), exec, "/repo", "actor-core")
	if err == nil {
		t.Fatal("expected build error")
	}
	if errors.GetExitCode(err) != errors.ExitBuildFailed {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitBuildFailed)
	}
	msg := err.Error()
	if !strings.Contains(msg, "build:") || !strings.Contains(msg, "yarn build -F actor-core") {
		t.Errorf("error should name step and command, got %q", msg)
	}
	if !strings.Contains(msg, "TS2307") {
		t.Errorf("error should carry captured output, got %q", msg)
	}
}

func TestPack_CommandLine(t *testing.T) {
	exec := system.NewMockExecutor()

	err := Pack(context.Background(), exec, "memory", "/repo/packages/drivers/memory", "/ws/vendor/actor-core-memory.tgz")
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	calls := exec.Calls()
	if calls[0].Dir != "/repo/packages/drivers/memory" {
		t.Errorf("dir = %q, want the package source dir", calls[0].Dir)
	}
	if calls[0].Line() != "yarn pack --out /ws/vendor/actor-core-memory.tgz" {
		t.Errorf("command = %q", calls[0].Line())
	}
}

func TestPack_Failure(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.RunHook = func(c system.Call) ([]byte, error) {
		return nil, fmt.Errorf("exit status 1")
	}

	err := Pack(context.Background(), exec, "nodejs", "/repo/packages/platforms/nodejs", "/ws/vendor/actor-core-nodejs.tgz")
	if err == nil {
		t.Fatal("expected pack error")
	}
	if errors.GetExitCode(err) != errors.ExitPackFailed {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitPackFailed)
	}
	if !strings.Contains(err.Error(), "nodejs") {
		t.Errorf("error should name the package, got %q", err.Error())
	}
}

func TestInstall_RunsBareYarn(t *testing.T) {
	exec := system.NewMockExecutor()

	if err := Install(context.Background(), exec, "/ws/server"); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	calls := exec.Calls()
	if calls[0].Dir != "/ws/server" {
		t.Errorf("dir = %q, want /ws/server", calls[0].Dir)
	}
	if calls[0].Name != "yarn" || len(calls[0].Args) != 0 {
		t.Errorf("command = %q, want bare yarn", calls[0].Line())
	}
}

func TestInstall_Failure(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.RunHook = func(c system.Call) ([]byte, error) {
		return []byte("YN0001: resolution failed"), fmt.Errorf("exit status 1")
	}

	err := Install(context.Background(), exec, "/ws/server")
	if err == nil {
		t.Fatal("expected install error")
	}
	if errors.GetExitCode(err) != errors.ExitInstallFailed {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitInstallFailed)
	}
	if !strings.Contains(err.Error(), "YN0001") {
		t.Errorf("error should carry install output, got %q", err.Error())
	}
}
