package gitutil

import (
	"errors"
	"testing"

	"github.com/samzong/gma-cli/internal/gitcmd"
	"github.com/stretchr/testify/assert"
)

func TestWrapGitError(t *testing.T) {
	base := errors.New("exit status 1")

	withStderr := WrapGitError("failed to stage changes",
		gitcmd.Result{Stderr: []byte("fatal: not a git repository\n")}, base)
	assert.EqualError(t, withStderr, "failed to stage changes: fatal: not a git repository: exit status 1")
	assert.ErrorIs(t, withStderr, base)

	withoutStderr := WrapGitError("failed to stage changes", gitcmd.Result{}, base)
	assert.EqualError(t, withoutStderr, "failed to stage changes: exit status 1")
}

func TestValidateBranchName(t *testing.T) {
	tests := []struct {
		name    string
		branch  string
		wantErr bool
	}{
		{"feature date", "feature/0612", false},
		{"hotfix with prefix", "hotfix/abc-fix-login", false},
		{"empty", "", true},
		{"leading dash", "-feature", true},
		{"double dot", "feature/a..b", true},
		{"space", "feature/a b", true},
		{"colon", "feature:a", true},
		{"trailing slash", "feature/", true},
		{"lock suffix", "feature/a.lock", true},
		{"reflog syntax", "feature/a@{1}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBranchName(tt.branch)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
