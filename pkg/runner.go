package makeversion

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Commander runs an external command to completion.
type Commander interface {
	Run(name string, args ...string) error
}

// ExecCommander runs commands as subprocesses of the current process.
type ExecCommander struct {
	Dir    string    // Working directory for every command.
	Stdout io.Writer // Subprocess stdout. Defaults to os.Stdout.
	Stderr io.Writer // Subprocess stderr. Defaults to os.Stderr.
}

// Run starts name with args and waits for it to exit.
func (c ExecCommander) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = c.Dir
	cmd.Stdout = c.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = c.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// StepResult is the recorded outcome of a Step.
type StepResult struct {
	Step
	Err error // Non-nil if the command could not start or exited non-zero.
}

// VersionMeta holds metadata about a completed run.
type VersionMeta struct {
	Identifier string       // The version written to the header.
	Timestamp  string       // The VERSION_DATE value.
	HeaderPath string       // Path of the header that was written.
	Results    []StepResult // One entry per step, in the order issued.
}

// Runner writes version.h and issues the build and git steps.
type Runner struct {
	Dir       string           // Directory where version.h is written.
	Now       func() time.Time // Clock used for VERSION_DATE.
	Commander Commander        // Runs the build and git steps.
}

// NewRunner returns a Runner for dir using the wall clock and real subprocesses.
func NewRunner(dir string) *Runner {
	return &Runner{
		Dir:       dir,
		Now:       time.Now,
		Commander: ExecCommander{Dir: dir},
	}
}

// Run stamps identifier into version.h and then builds, stages, commits and
// tags. A failing step does not stop the ones after it and is not returned;
// its error is only recorded in VersionMeta.Results. The returned error is
// non-nil only when the header could not be written, in which case no step
// is issued.
func (r *Runner) Run(identifier string) (VersionMeta, error) {
	var meta VersionMeta

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	rec := NewRecord(identifier, now())
	meta.Identifier = rec.Identifier
	meta.Timestamp = rec.Timestamp

	meta.HeaderPath = filepath.Join(r.Dir, HeaderFile)
	if err := os.WriteFile(meta.HeaderPath, []byte(RenderHeader(rec)), 0644); err != nil {
		return meta, fmt.Errorf("failed to write %s: %w", meta.HeaderPath, err)
	}

	commander := r.Commander
	if commander == nil {
		commander = ExecCommander{Dir: r.Dir}
	}
	for _, step := range PlanSteps(identifier) {
		// The exit status is kept for the caller but never inspected here.
		err := commander.Run(step.Command, step.Args...)
		meta.Results = append(meta.Results, StepResult{Step: step, Err: err})
	}

	return meta, nil
}
