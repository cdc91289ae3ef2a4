package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

type Action int

const (
	ActionCommit Action = iota
	ActionEdit
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionCommit:
		return "Commit"
	case ActionEdit:
		return "Edit"
	case ActionCancel:
		return "Cancel"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

var ErrNotTerminal = errors.New("stdin is not a terminal, use --yes to skip interactive confirmation")

// InteractivePrompter asks through a huh select and edits through $EDITOR.
type InteractivePrompter struct {
	ErrWriter io.Writer
	Stdin     io.Reader

	// selectAction and edit are replaced in tests.
	selectAction func(ctx context.Context) (Action, error)
	edit         func(ctx context.Context, message string) (string, error)
}

func (p *InteractivePrompter) Choose(ctx context.Context, message string) (Action, string, error) {
	stdin := p.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	if f, ok := stdin.(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return ActionCancel, "", ErrNotTerminal
		}
	}

	choose := p.selectAction
	if choose == nil {
		choose = p.huhSelect
	}
	action, err := choose(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ActionCancel, "", nil
	}
	if err != nil {
		return ActionCancel, "", fmt.Errorf("failed to read user choice: %w", err)
	}
	if action != ActionEdit {
		return action, "", nil
	}

	edit := p.edit
	if edit == nil {
		edit = p.openEditor
	}
	edited, err := edit(ctx, message)
	if err != nil {
		return ActionCancel, "", err
	}
	return ActionEdit, edited, nil
}

func (p *InteractivePrompter) huhSelect(ctx context.Context) (Action, error) {
	action := ActionCommit
	sel := huh.NewSelect[Action]().
		Title("What would you like to do?").
		Options(
			huh.NewOption(ActionCommit.String(), ActionCommit),
			huh.NewOption(ActionEdit.String(), ActionEdit),
			huh.NewOption(ActionCancel.String(), ActionCancel),
		).
		Value(&action)

	form := huh.NewForm(huh.NewGroup(sel))
	if p.ErrWriter != nil {
		form = form.WithOutput(p.ErrWriter)
	}
	if p.Stdin != nil {
		form = form.WithInput(p.Stdin)
	}
	if err := form.RunWithContext(ctx); err != nil {
		return ActionCancel, err
	}
	return action, nil
}

func (p *InteractivePrompter) openEditor(ctx context.Context, message string) (string, error) {
	tmpFile, err := os.CreateTemp("", "gma-commit-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	tmpFileName := tmpFile.Name()
	defer os.Remove(tmpFileName)

	if _, err := tmpFile.WriteString(message); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write to temporary file: %w", err)
	}
	tmpFile.Close()

	// $EDITOR may carry arguments, e.g. "code --wait"
	parts := strings.Fields(getEditor())
	cmd := exec.CommandContext(ctx, parts[0], append(parts[1:], tmpFileName)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to open editor: %w", err)
	}

	editedBytes, err := os.ReadFile(tmpFileName)
	if err != nil {
		return "", fmt.Errorf("failed to read edited message: %w", err)
	}
	return strings.TrimSpace(string(editedBytes)), nil
}

func getEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	if editor := strings.TrimSpace(os.Getenv("VISUAL")); editor != "" {
		return editor
	}
	return "vi"
}
