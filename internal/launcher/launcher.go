// Package launcher spawns the generated entry script as a long-running
// child process.
package launcher

import (
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/actor-core/fixturectl/internal/errors"
	"github.com/actor-core/fixturectl/internal/logging"
	"github.com/actor-core/fixturectl/internal/system"
)

// Launch spawns the entry script under the runtime executor with dir as
// working directory, then pauses for the settle interval so the server can
// bind its port. The pause is a best-effort readiness heuristic; no
// confirmation is performed that the server became reachable. The process
// is not awaited and ownership of the handle passes to the caller.
func Launch(exec system.CommandExecutor, dir string, runner []string, script string, settle time.Duration) (system.Process, error) {
	args := append(append([]string{}, runner[1:]...), script)
	cmdLine := shellquote.Join(append([]string{runner[0]}, args...)...)
	logging.Debug("launching server", "dir", dir, "cmd", cmdLine)

	proc, err := exec.Start(dir, runner[0], args...)
	if err != nil {
		return nil, errors.LaunchFailed(cmdLine, err)
	}

	logging.Debug("server spawned", "pid", proc.PID(), "settle", settle)
	if settle > 0 {
		time.Sleep(settle)
	}

	return proc, nil
}
