package gitcmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Runner executes git commands with shared logging and output handling.
type Runner struct {
	Dir    string
	Env    []string
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// Result contains captured stdout/stderr for a git command.
type Result struct {
	Stdout []byte
	Stderr []byte
}

func (r Result) StdoutString(trim bool) string {
	output := string(r.Stdout)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Result) StderrString(trim bool) string {
	output := string(r.Stderr)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Runner) withDefaults() Runner {
	if r.Logger == nil {
		r.Logger = slog.New(slog.DiscardHandler)
	}
	if r.Stdout == nil {
		r.Stdout = os.Stdout
	}
	if r.Stderr == nil {
		r.Stderr = os.Stderr
	}
	return r
}

func (r Runner) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	return cmd
}

func (r Runner) prepare(ctx context.Context, args []string) *exec.Cmd {
	r.Logger.DebugContext(ctx, "running git", "args", strings.Join(args, " "), "dir", r.Dir)
	return r.command(ctx, args...)
}

// Run executes a git command and captures stdout/stderr.
func (r Runner) Run(ctx context.Context, args ...string) (Result, error) {
	r = r.withDefaults()
	cmd := r.prepare(ctx, args)
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if err != nil {
		r.Logger.DebugContext(ctx, "git failed",
			"args", strings.Join(args, " "),
			"stderr", strings.TrimSpace(errBuf.String()),
			"error", err)
	}
	return Result{Stdout: outBuf.Bytes(), Stderr: errBuf.Bytes()}, err
}

// RunStreaming executes a git command with stdout streamed to the runner's
// writer. Stderr is streamed too and also captured for error reporting.
func (r Runner) RunStreaming(ctx context.Context, args ...string) (Result, error) {
	r = r.withDefaults()
	cmd := r.prepare(ctx, args)
	var errBuf bytes.Buffer
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = io.MultiWriter(r.Stderr, &errBuf)

	err := cmd.Run()
	return Result{Stderr: errBuf.Bytes()}, err
}
