package system

import (
	"context"
	"strings"
	"syscall"
	"testing"
	"time"
)

func TestOSExecutor_Run_CapturesOutput(t *testing.T) {
	e := DefaultExecutor()

	out, err := e.Run(context.Background(), t.TempDir(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(string(out), "hello") {
		t.Errorf("output = %q, want it to contain %q", out, "hello")
	}
}

func TestOSExecutor_Run_NonZeroExit(t *testing.T) {
	e := DefaultExecutor()

	out, err := e.Run(context.Background(), t.TempDir(), "sh", "-c", "echo oops >&2; exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !strings.Contains(string(out), "oops") {
		t.Errorf("stderr should be captured in combined output, got %q", out)
	}
}

func TestOSExecutor_Start_KillTerminates(t *testing.T) {
	e := DefaultExecutor()

	p, err := e.Start(t.TempDir(), "sleep", "60")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if p.PID() <= 0 {
		t.Fatalf("PID = %d, want > 0", p.PID())
	}

	if err := p.Kill(); err != nil {
		t.Fatalf("Kill failed: %v", err)
	}

	// The background reaper collects the process; signal 0 eventually fails.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if syscall.Kill(p.PID(), 0) != nil {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Errorf("process %d still alive after Kill", p.PID())
}

func TestOSExecutor_Kill_AfterNaturalExit(t *testing.T) {
	e := DefaultExecutor()

	p, err := e.Start(t.TempDir(), "true")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Give the process time to exit and be reaped.
	time.Sleep(200 * time.Millisecond)

	if err := p.Kill(); err != nil {
		t.Errorf("Kill after natural exit should not error, got %v", err)
	}
}
