package platform

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// SpawnSpec describes a worker process to launch.
type SpawnSpec struct {
	// Path is the executable to run.
	Path string
	// Args are the process arguments (not including the program name).
	Args []string
	// ExtraFiles are inherited by the child starting at descriptor 3.
	ExtraFiles []*os.File
	// WantStdinPipe requests a pipe connected to the child's stdin; the
	// write end is exposed as Process.Stdin.
	WantStdinPipe bool
}

// Process is a handle to one spawned worker process.
type Process struct {
	cmd *exec.Cmd

	// Stdin is the write end of the child's stdin pipe when
	// SpawnSpec.WantStdinPipe was set, nil otherwise.
	Stdin io.WriteCloser
}

// Spawn starts a worker process. The child inherits the parent's stderr so
// worker diagnostics surface in the run's output.
//
// Spawn intentionally does not take a context: benchmark waits are
// unbounded, and in-flight workers are never interrupted by cancellation
// (only by an explicit Kill during failure teardown).
func Spawn(spec SpawnSpec) (*Process, error) {
	cmd := exec.Command(spec.Path, spec.Args...)
	cmd.Stderr = os.Stderr
	cmd.ExtraFiles = spec.ExtraFiles

	p := &Process{cmd: cmd}

	if spec.WantStdinPipe {
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return nil, err
		}
		p.Stdin = stdin
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return p, nil
}

// PID returns the OS process id of the worker.
func (p *Process) PID() int {
	if p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

// Wait blocks until the worker exits and returns its exit status. A
// nonzero exit status is reported through the status value, not the error;
// the error is reserved for wait failures (e.g. the process was already
// reaped).
func (p *Process) Wait() (int, error) {
	err := p.cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// Kill forcefully terminates the worker. The caller must still Wait to
// reap it.
func (p *Process) Kill() error {
	if p.cmd.Process == nil {
		return errors.New("process not started")
	}
	return p.cmd.Process.Kill()
}
