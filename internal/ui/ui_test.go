package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestSpinner_NonTerminalWritesStatusLines(t *testing.T) {
	var out bytes.Buffer

	sp := NewSpinner(&out, "Checking git status...")
	sp.Start()
	sp.UpdateMessage("still checking")
	sp.Succeed("Git status clean.")

	sp = NewSpinner(&out, "Creating branch")
	sp.Start()
	sp.Fail("Failed to create branch")

	assert.Equal(t, "✔ Git status clean.\n✖ Failed to create branch\n", out.String())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(nil))
}

func TestOutputHelpers(t *testing.T) {
	var out bytes.Buffer

	Heading(&out, "Generated Commit Message:")
	Accent(&out, "feat: add login")
	Warn(&out, "Commit cancelled.")
	Errorf(&out, "boom %d", 1)

	assert.Equal(t, "Generated Commit Message:\nfeat: add login\nCommit cancelled.\nError: boom 1\n", out.String())
}
