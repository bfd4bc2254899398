package system

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// osExecutor implements CommandExecutor using real OS operations.
type osExecutor struct{}

func (e *osExecutor) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

func (e *osExecutor) Start(dir, name string, args ...string) (Process, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	// Reap in the background so a server that exits early does not
	// linger as a zombie until teardown.
	go func() { _ = cmd.Wait() }()

	return &osProcess{cmd: cmd}, nil
}

func (e *osExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// osProcess wraps a started exec.Cmd.
type osProcess struct {
	cmd *exec.Cmd
}

func (p *osProcess) PID() int {
	return p.cmd.Process.Pid
}

func (p *osProcess) Kill() error {
	err := p.cmd.Process.Kill()
	if err != nil && errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}
