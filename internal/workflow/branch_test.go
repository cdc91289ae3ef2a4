package workflow_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samzong/gma-cli/internal/config"
	"github.com/samzong/gma-cli/internal/workflow"
	"github.com/samzong/gma-cli/internal/workflow/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var june12 = time.Date(2025, time.June, 12, 9, 30, 0, 0, time.UTC)

type branchFixture struct {
	git    *mocks.MockBranchManager
	llm    *mocks.MockSuffixGenerator
	errOut *bytes.Buffer
}

func newBranchFixture(t *testing.T) *branchFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &branchFixture{
		git:    mocks.NewMockBranchManager(ctrl),
		llm:    mocks.NewMockSuffixGenerator(ctrl),
		errOut: &bytes.Buffer{},
	}
}

func (f *branchFixture) flow(cfg *config.Config, opts workflow.BranchOptions) *workflow.BranchFlow {
	opts.ErrWriter = f.errOut
	opts.Now = func() time.Time { return june12 }
	return workflow.NewBranchFlow(f.git, f.llm, cfg, opts)
}

func (f *branchFixture) expectClean() {
	f.git.EXPECT().HasUncommittedChanges(gomock.Any()).Return(false, nil)
	f.git.EXPECT().HasUnpushedCommits(gomock.Any()).Return(false, nil)
}

func TestBranchFlow_DateSuffix(t *testing.T) {
	f := newBranchFixture(t)
	f.expectClean()
	gomock.InOrder(
		f.git.EXPECT().Checkout(gomock.Any(), "master").Return(nil),
		f.git.EXPECT().Pull(gomock.Any()).Return(true),
		f.git.EXPECT().CreateBranch(gomock.Any(), "feature/0612").Return(nil),
	)
	f.llm.EXPECT().GenerateBranchSuffix(gomock.Any(), gomock.Any()).Times(0)

	name, err := f.flow(&config.Config{}, workflow.BranchOptions{}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "feature/0612", name)
	assert.Contains(t, f.errOut.String(), "Branch created and switched to: feature/0612")
}

func TestBranchFlow_HotfixWithPrefixAndDescription(t *testing.T) {
	f := newBranchFixture(t)
	f.expectClean()
	f.git.EXPECT().Checkout(gomock.Any(), "main").Return(nil)
	f.git.EXPECT().Pull(gomock.Any()).Return(true)
	f.llm.EXPECT().GenerateBranchSuffix(gomock.Any(), "fix the login redirect").Return("fix login", nil)
	f.git.EXPECT().CreateBranch(gomock.Any(), "hotfix/abc-fix-login").Return(nil)

	cfg := &config.Config{Prefix: "abc", BaseBranch: "main"}
	name, err := f.flow(cfg, workflow.BranchOptions{Fix: true, Description: " fix the login redirect "}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hotfix/abc-fix-login", name)
}

func TestBranchFlow_Preflight(t *testing.T) {
	t.Run("uncommitted changes", func(t *testing.T) {
		f := newBranchFixture(t)
		f.git.EXPECT().HasUncommittedChanges(gomock.Any()).Return(true, nil)
		f.git.EXPECT().Checkout(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.flow(&config.Config{}, workflow.BranchOptions{}).Run(context.Background())
		assert.ErrorIs(t, err, workflow.ErrUncommittedChanges)
		assert.EqualError(t, err, "You have uncommitted changes. Please commit or stash them first.")
	})

	t.Run("unpushed commits", func(t *testing.T) {
		f := newBranchFixture(t)
		f.git.EXPECT().HasUncommittedChanges(gomock.Any()).Return(false, nil)
		f.git.EXPECT().HasUnpushedCommits(gomock.Any()).Return(true, nil)
		f.git.EXPECT().Checkout(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.flow(&config.Config{}, workflow.BranchOptions{}).Run(context.Background())
		assert.ErrorIs(t, err, workflow.ErrUnpushedCommits)
	})

	t.Run("status failure", func(t *testing.T) {
		f := newBranchFixture(t)
		statusErr := errors.New("failed to check git status")
		f.git.EXPECT().HasUncommittedChanges(gomock.Any()).Return(false, statusErr)

		_, err := f.flow(&config.Config{}, workflow.BranchOptions{}).Run(context.Background())
		assert.ErrorIs(t, err, statusErr)
	})
}

func TestBranchFlow_CheckoutFailure(t *testing.T) {
	f := newBranchFixture(t)
	f.expectClean()
	checkoutErr := errors.New("failed to checkout branch develop: error: pathspec 'develop' did not match")
	f.git.EXPECT().Checkout(gomock.Any(), "develop").Return(checkoutErr)
	f.git.EXPECT().Pull(gomock.Any()).Times(0)
	f.git.EXPECT().CreateBranch(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.flow(&config.Config{BaseBranch: "develop"}, workflow.BranchOptions{}).Run(context.Background())
	assert.ErrorIs(t, err, checkoutErr)
	assert.EqualError(t, err, "Failed to switch to develop. Make sure it exists: "+checkoutErr.Error())
}

func TestBranchFlow_SuffixKeepsNonASCIIAndPunctuation(t *testing.T) {
	tests := []struct {
		name   string
		suffix string
		want   string
	}{
		{"chinese", "修复登录", "feature/修复登录"},
		{"chinese with spaces", "修复 登录", "feature/修复-登录"},
		{"underscore and dot", "fix_login.v2", "feature/fix_login.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBranchFixture(t)
			f.expectClean()
			f.git.EXPECT().Checkout(gomock.Any(), "master").Return(nil)
			f.git.EXPECT().Pull(gomock.Any()).Return(true)
			f.llm.EXPECT().GenerateBranchSuffix(gomock.Any(), "修复登录页面").Return(tt.suffix, nil)
			f.git.EXPECT().CreateBranch(gomock.Any(), tt.want).Return(nil)

			name, err := f.flow(&config.Config{}, workflow.BranchOptions{Description: "修复登录页面"}).Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestBranchFlow_PullFailureIsNotFatal(t *testing.T) {
	f := newBranchFixture(t)
	f.expectClean()
	f.git.EXPECT().Checkout(gomock.Any(), "master").Return(nil)
	f.git.EXPECT().Pull(gomock.Any()).Return(false)
	f.git.EXPECT().CreateBranch(gomock.Any(), "feature/0612").Return(nil)

	name, err := f.flow(&config.Config{}, workflow.BranchOptions{}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "feature/0612", name)
	assert.Contains(t, f.errOut.String(), "pull failed")
}

func TestBranchFlow_SuffixFailures(t *testing.T) {
	t.Run("generation error", func(t *testing.T) {
		f := newBranchFixture(t)
		f.expectClean()
		f.git.EXPECT().Checkout(gomock.Any(), "master").Return(nil)
		f.git.EXPECT().Pull(gomock.Any()).Return(true)
		genErr := errors.New("AI API error: 401 - unauthorized")
		f.llm.EXPECT().GenerateBranchSuffix(gomock.Any(), "login").Return("", genErr)
		f.git.EXPECT().CreateBranch(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.flow(&config.Config{}, workflow.BranchOptions{Description: "login"}).Run(context.Background())
		assert.ErrorIs(t, err, genErr)
		assert.Contains(t, err.Error(), "failed to generate branch name")
	})

	t.Run("nothing usable", func(t *testing.T) {
		f := newBranchFixture(t)
		f.expectClean()
		f.git.EXPECT().Checkout(gomock.Any(), "master").Return(nil)
		f.git.EXPECT().Pull(gomock.Any()).Return(true)
		f.llm.EXPECT().GenerateBranchSuffix(gomock.Any(), "login").Return(" ~^:?* ", nil)
		f.git.EXPECT().CreateBranch(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.flow(&config.Config{}, workflow.BranchOptions{Description: "login"}).Run(context.Background())
		assert.ErrorIs(t, err, workflow.ErrEmptySuffix)
	})
}

func TestBranchFlow_CreateFailure(t *testing.T) {
	f := newBranchFixture(t)
	f.expectClean()
	f.git.EXPECT().Checkout(gomock.Any(), "master").Return(nil)
	f.git.EXPECT().Pull(gomock.Any()).Return(true)
	createErr := errors.New("failed to create branch feature/0612: already exists")
	f.git.EXPECT().CreateBranch(gomock.Any(), "feature/0612").Return(createErr)

	_, err := f.flow(&config.Config{}, workflow.BranchOptions{}).Run(context.Background())
	assert.ErrorIs(t, err, createErr)
	assert.NotContains(t, f.errOut.String(), "Branch created")
}
