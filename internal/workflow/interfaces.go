// Package workflow provides the commit and branch workflow orchestration logic.
package workflow

import "context"

//go:generate mockgen -source $GOFILE -package mocks -destination mocks/mocks.go

// DiffProvider stages the working tree and exposes the staged diff.
type DiffProvider interface {
	StageAll(ctx context.Context) error
	HasStagedChanges(ctx context.Context) (bool, error)
	StagedDiff(ctx context.Context) (string, error)
}

// Committer records the index.
type Committer interface {
	Commit(ctx context.Context, message string) error
}

// BranchManager covers the pre-flight checks and branch switching.
type BranchManager interface {
	HasUncommittedChanges(ctx context.Context) (bool, error)
	HasUnpushedCommits(ctx context.Context) (bool, error)
	Checkout(ctx context.Context, branch string) error
	Pull(ctx context.Context) bool
	CreateBranch(ctx context.Context, branch string) error
}

// MessageGenerator turns a staged diff into a commit message.
type MessageGenerator interface {
	GenerateCommitMessage(ctx context.Context, diff string) (string, error)
}

// SuffixGenerator turns a description into a branch name suffix.
type SuffixGenerator interface {
	GenerateBranchSuffix(ctx context.Context, description string) (string, error)
}

// Prompter asks the user what to do with a generated message. For ActionEdit
// the edited message is returned alongside.
type Prompter interface {
	Choose(ctx context.Context, message string) (Action, string, error)
}
