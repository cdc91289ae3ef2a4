package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/samzong/gma-cli/internal/config"
	"github.com/samzong/gma-cli/internal/git"
	"github.com/samzong/gma-cli/internal/llm"
	"github.com/samzong/gma-cli/internal/logging"
	"github.com/samzong/gma-cli/internal/workflow"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by gma and gmm.
type globalOptions struct {
	cfgFile  string
	logLevel string
	timeout  time.Duration
}

func (o *globalOptions) register(c *cobra.Command) {
	flags := c.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", "",
		"Configuration file path (default is $XDG_CONFIG_HOME/gma-cli/config.yaml)")
	flags.StringVar(&o.logLevel, "log-level", logging.DefaultLevel, "Log level (debug|info|warn|error)")
	flags.DurationVar(&o.timeout, "timeout", llm.DefaultTimeout, "Timeout for AI requests, 0 disables it")
}

// app is the per-invocation state: one loaded config, one logger.
type app struct {
	store   *config.Store
	cfg     *config.Config
	logger  *slog.Logger
	timeout time.Duration
}

func newApp(c *cobra.Command, o *globalOptions) (*app, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(c.ErrOrStderr(), level)

	store, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	logger.Debug("configuration loaded", "path", store.Path())

	return &app{
		store:   store,
		cfg:     store.Config(),
		logger:  logger,
		timeout: o.timeout,
	}, nil
}

// gitClient locates the repository containing the working directory and
// runs git from its root.
func (a *app) gitClient(stdout, stderr io.Writer) (*git.Client, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	repo, err := git.OpenRepository(wd)
	if err != nil {
		return nil, err
	}
	branch, err := repo.CurrentBranch()
	if err != nil {
		a.logger.Debug("could not resolve current branch", "error", err)
	}
	a.logger.Debug("repository detected", "root", repo.Root, "branch", branch)

	return git.NewClient(git.Options{
		Dir:    repo.Root,
		Logger: a.logger,
		Stdout: stdout,
		Stderr: stderr,
	}), nil
}

func (a *app) llmClient() *llm.Client {
	return llm.NewClient(a.cfg, llm.Options{Timeout: a.timeout, Logger: a.logger})
}

// handleErrors drops outcomes that were already reported and are not failures.
func handleErrors(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, workflow.ErrNoChanges) || errors.Is(err, workflow.ErrNoDiff) {
		return nil
	}
	return err
}
