package workflow

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEditor(t *testing.T) {
	cases := []struct {
		name   string
		editor string
		visual string
		want   string
	}{
		{name: "editor set", editor: "nano", visual: "vim", want: "nano"},
		{name: "visual set", editor: "", visual: "vim", want: "vim"},
		{name: "defaults to vi", editor: "", visual: "", want: "vi"},
		{name: "blank editor ignored", editor: "  ", visual: "", want: "vi"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("EDITOR", tc.editor)
			t.Setenv("VISUAL", tc.visual)

			if got := getEditor(); got != tc.want {
				t.Fatalf("getEditor() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Commit", ActionCommit.String())
	assert.Equal(t, "Edit", ActionEdit.String())
	assert.Equal(t, "Cancel", ActionCancel.String())
	assert.Equal(t, "Action(9)", Action(9).String())
}

func TestInteractivePrompter_NonTerminalStdin(t *testing.T) {
	stdin, err := os.Open(os.DevNull)
	require.NoError(t, err)
	t.Cleanup(func() { stdin.Close() })

	p := &InteractivePrompter{ErrWriter: &bytes.Buffer{}, Stdin: stdin}
	action, _, err := p.Choose(context.Background(), "feat: x")
	assert.ErrorIs(t, err, ErrNotTerminal)
	assert.Equal(t, ActionCancel, action)
}

func TestInteractivePrompter_Choose(t *testing.T) {
	editCalls := 0
	newPrompter := func(selected Action, selectErr error) *InteractivePrompter {
		return &InteractivePrompter{
			ErrWriter: &bytes.Buffer{},
			Stdin:     &bytes.Buffer{},
			selectAction: func(context.Context) (Action, error) {
				return selected, selectErr
			},
			edit: func(_ context.Context, message string) (string, error) {
				editCalls++
				return message + " (edited)", nil
			},
		}
	}

	action, edited, err := newPrompter(ActionCommit, nil).Choose(context.Background(), "feat: x")
	require.NoError(t, err)
	assert.Equal(t, ActionCommit, action)
	assert.Empty(t, edited)

	action, edited, err = newPrompter(ActionEdit, nil).Choose(context.Background(), "feat: x")
	require.NoError(t, err)
	assert.Equal(t, ActionEdit, action)
	assert.Equal(t, "feat: x (edited)", edited)
	assert.Equal(t, 1, editCalls)

	action, _, err = newPrompter(ActionCancel, huh.ErrUserAborted).Choose(context.Background(), "feat: x")
	require.NoError(t, err)
	assert.Equal(t, ActionCancel, action)

	_, _, err = newPrompter(ActionCommit, errors.New("tty gone")).Choose(context.Background(), "feat: x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read user choice")
}

func TestOpenEditor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script editor")
	}

	script := filepath.Join(t.TempDir(), "editor.sh")
	content := "#!/bin/sh\nprintf '  fix: reworded  \\n' > \"$1\"\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o755))
	t.Setenv("EDITOR", script)

	p := &InteractivePrompter{ErrWriter: &bytes.Buffer{}}
	edited, err := p.openEditor(context.Background(), "fix: original")
	require.NoError(t, err)
	assert.Equal(t, "fix: reworded", edited)
}

func TestOpenEditor_Failure(t *testing.T) {
	t.Setenv("EDITOR", filepath.Join(t.TempDir(), "missing-editor"))

	p := &InteractivePrompter{ErrWriter: &bytes.Buffer{}}
	_, err := p.openEditor(context.Background(), "fix: original")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open editor")
}
