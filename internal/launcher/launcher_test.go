package launcher

import (
	"fmt"
	"testing"
	"time"

	"github.com/actor-core/fixturectl/internal/errors"
	"github.com/actor-core/fixturectl/internal/system"
)

func TestLaunch_SpawnsRunner(t *testing.T) {
	exec := system.NewMockExecutor()

	proc, err := Launch(exec, "/ws/server", []string{"npx", "tsx"}, "src/server.ts", 0)
	if err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
	if proc.PID() == 0 {
		t.Error("PID should be non-zero")
	}

	calls := exec.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Dir != "/ws/server" {
		t.Errorf("dir = %q, want /ws/server", calls[0].Dir)
	}
	if calls[0].Line() != "npx tsx src/server.ts" {
		t.Errorf("command = %q", calls[0].Line())
	}
}

func TestLaunch_SettleInterval(t *testing.T) {
	exec := system.NewMockExecutor()

	start := time.Now()
	if _, err := Launch(exec, "/ws", []string{"npx", "tsx"}, "src/server.ts", 100*time.Millisecond); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("Launch returned after %v, want at least the settle interval", elapsed)
	}
}

func TestLaunch_SpawnFailure(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.StartErr = fmt.Errorf("exec: \"npx\": executable file not found in $PATH")

	_, err := Launch(exec, "/ws", []string{"npx", "tsx"}, "src/server.ts", 0)
	if err == nil {
		t.Fatal("expected launch error")
	}
	if errors.GetExitCode(err) != errors.ExitLaunchFailed {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitLaunchFailed)
	}
}
