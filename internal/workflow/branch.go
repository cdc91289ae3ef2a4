package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/samzong/gma-cli/internal/branch"
	"github.com/samzong/gma-cli/internal/config"
	"github.com/samzong/gma-cli/internal/ui"
)

var (
	ErrUncommittedChanges = errors.New("You have uncommitted changes. Please commit or stash them first.")
	ErrUnpushedCommits    = errors.New("You have unpushed commits. Please push them first.")
	ErrEmptySuffix        = errors.New("generated branch name is empty")
)

type BranchOptions struct {
	Fix         bool
	Description string
	ErrWriter   io.Writer
	Logger      *slog.Logger
	Now         func() time.Time
}

// BranchFlow refreshes the base branch and cuts a new feature or hotfix
// branch from it.
type BranchFlow struct {
	git  BranchManager
	llm  SuffixGenerator
	cfg  *config.Config
	opts BranchOptions
}

func NewBranchFlow(git BranchManager, llm SuffixGenerator, cfg *config.Config, opts BranchOptions) *BranchFlow {
	if opts.ErrWriter == nil {
		opts.ErrWriter = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &BranchFlow{git: git, llm: llm, cfg: cfg, opts: opts}
}

// Run returns the name of the branch that was created and checked out.
func (f *BranchFlow) Run(ctx context.Context) (string, error) {
	if err := f.checkClean(ctx); err != nil {
		return "", err
	}

	base := f.cfg.BaseBranch
	if base == "" {
		base = config.DefaultBaseBranch
	}

	sp := ui.NewSpinner(f.opts.ErrWriter, fmt.Sprintf("Switching to %s...", base))
	sp.Start()
	if err := f.git.Checkout(ctx, base); err != nil {
		sp.Stop()
		f.opts.Logger.DebugContext(ctx, "checkout of base branch failed", "branch", base, "error", err)
		return "", fmt.Errorf("Failed to switch to %s. Make sure it exists: %w", base, err)
	}
	sp.UpdateMessage(fmt.Sprintf("Pulling latest changes on %s...", base))
	if f.git.Pull(ctx) {
		sp.Succeed(fmt.Sprintf("Switched to %s and pulled latest changes.", base))
	} else {
		sp.Stop()
		ui.Warn(f.opts.ErrWriter, fmt.Sprintf("Switched to %s, pull failed. Continuing with the local branch.", base))
	}

	suffix, err := f.suffix(ctx)
	if err != nil {
		return "", err
	}

	name := branch.Name(branch.KindFor(f.opts.Fix), f.cfg.Prefix, suffix)
	sp = ui.NewSpinner(f.opts.ErrWriter, fmt.Sprintf("Creating branch %s...", name))
	sp.Start()
	if err := f.git.CreateBranch(ctx, name); err != nil {
		sp.Stop()
		return "", err
	}
	sp.Succeed("Branch created and switched to: " + name)
	return name, nil
}

func (f *BranchFlow) checkClean(ctx context.Context) error {
	sp := ui.NewSpinner(f.opts.ErrWriter, "Checking git status...")
	sp.Start()

	dirty, err := f.git.HasUncommittedChanges(ctx)
	if err != nil {
		sp.Stop()
		return err
	}
	if dirty {
		sp.Stop()
		return ErrUncommittedChanges
	}

	unpushed, err := f.git.HasUnpushedCommits(ctx)
	if err != nil {
		sp.Stop()
		return err
	}
	if unpushed {
		sp.Stop()
		return ErrUnpushedCommits
	}

	sp.Succeed("Git status clean.")
	return nil
}

func (f *BranchFlow) suffix(ctx context.Context) (string, error) {
	description := strings.TrimSpace(f.opts.Description)
	if description == "" {
		return branch.DateSuffix(f.opts.Now()), nil
	}

	sp := ui.NewSpinner(f.opts.ErrWriter, "Generating branch name...")
	sp.Start()
	raw, err := f.llm.GenerateBranchSuffix(ctx, description)
	sp.Stop()
	if err != nil {
		return "", fmt.Errorf("failed to generate branch name: %w", err)
	}

	suffix := branch.CleanSuffix(raw)
	f.opts.Logger.DebugContext(ctx, "branch suffix generated", "raw", raw, "clean", suffix)
	if suffix == "" {
		return "", fmt.Errorf("failed to generate branch name: %w", ErrEmptySuffix)
	}
	return suffix, nil
}
