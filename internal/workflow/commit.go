package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/samzong/gma-cli/internal/config"
	"github.com/samzong/gma-cli/internal/ui"
)

var (
	ErrNoChanges = errors.New("no changes to commit")
	ErrNoDiff    = errors.New("no diff found in the staging area")
)

type CommitOptions struct {
	AutoYes   bool
	DryRun    bool
	ErrWriter io.Writer
	OutWriter io.Writer
	Logger    *slog.Logger
}

// CommitFlow stages everything, asks the model for a message and commits it.
type CommitFlow struct {
	diffs     DiffProvider
	committer Committer
	llm       MessageGenerator
	cfg       *config.Config
	opts      CommitOptions
	prompter  Prompter
}

func NewCommitFlow(diffs DiffProvider, committer Committer, llm MessageGenerator, cfg *config.Config, opts CommitOptions) *CommitFlow {
	if opts.ErrWriter == nil {
		opts.ErrWriter = os.Stderr
	}
	if opts.OutWriter == nil {
		opts.OutWriter = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &CommitFlow{
		diffs:     diffs,
		committer: committer,
		llm:       llm,
		cfg:       cfg,
		opts:      opts,
		prompter:  &InteractivePrompter{ErrWriter: opts.ErrWriter},
	}
}

func (f *CommitFlow) SetPrompter(p Prompter) {
	f.prompter = p
}

// Run returns ErrNoChanges or ErrNoDiff when there is nothing to commit; both
// have already been reported to the user.
func (f *CommitFlow) Run(ctx context.Context) error {
	diff, err := f.collectDiff(ctx)
	if err != nil {
		return err
	}

	message, err := f.generateCommitMessage(ctx, diff)
	if err != nil {
		return err
	}

	if f.opts.AutoYes || f.cfg.AutoCommit {
		f.opts.Logger.DebugContext(ctx, "skipping confirmation",
			"yes", f.opts.AutoYes, "autoCommit", f.cfg.AutoCommit)
		return f.performCommit(ctx, message)
	}

	action, edited, err := f.prompter.Choose(ctx, message)
	if err != nil {
		return err
	}

	switch action {
	case ActionCancel:
		ui.Warn(f.opts.ErrWriter, "Commit cancelled.")
		return nil
	case ActionEdit:
		if edited = strings.TrimSpace(edited); edited == "" {
			fmt.Fprintln(f.opts.ErrWriter, "Empty message provided, using original message")
			edited = message
		}
		return f.performCommit(ctx, edited)
	default:
		return f.performCommit(ctx, message)
	}
}

func (f *CommitFlow) collectDiff(ctx context.Context) (string, error) {
	sp := ui.NewSpinner(f.opts.ErrWriter, "Staging changes...")
	sp.Start()

	if err := f.diffs.StageAll(ctx); err != nil {
		sp.Stop()
		return "", err
	}

	staged, err := f.diffs.HasStagedChanges(ctx)
	if err != nil {
		sp.Stop()
		return "", err
	}
	if !staged {
		sp.Fail("No changes to commit.")
		return "", ErrNoChanges
	}

	diff, err := f.diffs.StagedDiff(ctx)
	if err != nil {
		sp.Stop()
		return "", err
	}
	if strings.TrimSpace(diff) == "" {
		sp.Fail("No diff found (staged).")
		return "", ErrNoDiff
	}

	sp.Stop()
	return diff, nil
}

func (f *CommitFlow) generateCommitMessage(ctx context.Context, diff string) (string, error) {
	sp := ui.NewSpinner(f.opts.ErrWriter, "Generating commit message...")
	sp.Start()
	message, err := f.llm.GenerateCommitMessage(ctx, diff)
	sp.Stop()

	if err != nil {
		return "", fmt.Errorf("failed to generate commit message: %w", err)
	}

	ui.Heading(f.opts.ErrWriter, "\nGenerated Commit Message:")
	ui.Accent(f.opts.OutWriter, message)
	fmt.Fprintln(f.opts.ErrWriter)
	return message, nil
}

func (f *CommitFlow) performCommit(ctx context.Context, message string) error {
	if f.opts.DryRun {
		fmt.Fprintln(f.opts.ErrWriter, "Dry run mode, no actual commit")
		return nil
	}

	if err := f.committer.Commit(ctx, message); err != nil {
		return err
	}

	ui.Success(f.opts.ErrWriter, "Committed successfully!")
	return nil
}
