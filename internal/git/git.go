package git

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/samzong/gma-cli/internal/gitcmd"
	"github.com/samzong/gma-cli/internal/gitutil"
)

// Options configures a Client.
type Options struct {
	Dir    string
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// Client runs the fixed set of git operations the workflows need.
type Client struct {
	runner gitcmd.Runner
	logger *slog.Logger
}

func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		runner: gitcmd.Runner{
			Dir:    opts.Dir,
			Logger: logger,
			Stdout: opts.Stdout,
			Stderr: opts.Stderr,
		},
		logger: logger,
	}
}

// StagedDiff returns the diff of the index against HEAD, or "" when nothing is staged.
func (c *Client) StagedDiff(ctx context.Context) (string, error) {
	result, err := c.runner.Run(ctx, "diff", "--cached")
	if err != nil {
		return "", gitutil.WrapGitError(
			"failed to get git diff. Make sure you are in a git repository", result, err)
	}
	return result.StdoutString(false), nil
}

func (c *Client) HasStagedChanges(ctx context.Context) (bool, error) {
	result, err := c.runner.Run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return false, gitutil.WrapGitError("failed to check staged changes", result, err)
	}
	return result.StdoutString(true) != "", nil
}

func (c *Client) HasUncommittedChanges(ctx context.Context) (bool, error) {
	result, err := c.runner.Run(ctx, "status", "--porcelain")
	if err != nil {
		return false, gitutil.WrapGitError("failed to check working tree status", result, err)
	}
	return result.StdoutString(true) != "", nil
}

// HasUnpushedCommits reports whether HEAD is ahead of its upstream. A branch
// without an upstream is reported as having nothing to push.
func (c *Client) HasUnpushedCommits(ctx context.Context) (bool, error) {
	result, err := c.runner.Run(ctx, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
	if err != nil {
		c.logger.DebugContext(ctx, "upstream not resolvable, skipping unpushed check",
			"stderr", result.StderrString(true))
		return false, nil
	}
	upstream := result.StdoutString(true)

	result, err = c.runner.Run(ctx, "rev-list", "--count", "@{u}..HEAD")
	if err != nil {
		return false, gitutil.WrapGitError("failed to count unpushed commits", result, err)
	}

	count, err := strconv.Atoi(result.StdoutString(true))
	if err != nil {
		return false, fmt.Errorf("failed to parse unpushed commit count: %w", err)
	}
	c.logger.DebugContext(ctx, "unpushed commits", "upstream", upstream, "count", count)
	return count > 0, nil
}

func (c *Client) StageAll(ctx context.Context) error {
	result, err := c.runner.Run(ctx, "add", "-A")
	if err != nil {
		return gitutil.WrapGitError("failed to stage changes", result, err)
	}
	return nil
}

// Commit records the index with message. Git's own output goes to the terminal.
func (c *Client) Commit(ctx context.Context, message string) error {
	result, err := c.runner.RunStreaming(ctx, "commit", "-m", message)
	if err != nil {
		return gitutil.WrapGitError("failed to commit changes", result, err)
	}
	return nil
}

func (c *Client) Checkout(ctx context.Context, branch string) error {
	result, err := c.runner.Run(ctx, "checkout", branch)
	if err != nil {
		return gitutil.WrapGitError(fmt.Sprintf("failed to checkout branch %s", branch), result, err)
	}
	return nil
}

// CreateBranch creates branch from HEAD and switches to it.
func (c *Client) CreateBranch(ctx context.Context, branch string) error {
	if err := gitutil.ValidateBranchName(branch); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branch, err)
	}
	result, err := c.runner.Run(ctx, "checkout", "-b", branch)
	if err != nil {
		return gitutil.WrapGitError(fmt.Sprintf("failed to create branch %s", branch), result, err)
	}
	return nil
}

// Pull fetches and merges the upstream of the current branch. Failure is not
// fatal (no remote, no upstream, offline) and is reported as false.
func (c *Client) Pull(ctx context.Context) bool {
	result, err := c.runner.Run(ctx, "pull")
	if err != nil {
		c.logger.InfoContext(ctx, "git pull failed, continuing",
			"stderr", result.StderrString(true), "error", err)
		return false
	}
	return true
}
