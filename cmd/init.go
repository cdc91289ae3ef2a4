package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/samzong/gma-cli/internal/config"
	"github.com/samzong/gma-cli/internal/llm"
	"github.com/samzong/gma-cli/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize gma configuration",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := newApp(c, opts)
			if err != nil {
				return err
			}
			if err := runInitWizard(c.Context(), c.InOrStdin(), c.OutOrStdout(), a.store, a.timeout); err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), "Initialization complete.")
			return nil
		},
	}
}

// testLLMConnection is replaced in tests.
var testLLMConnection = func(ctx context.Context, cfg *config.Config, timeout time.Duration) error {
	return llm.NewClient(cfg, llm.Options{Timeout: timeout}).TestConnection(ctx)
}

func runInitWizard(ctx context.Context, in io.Reader, out io.Writer, store *config.Store, timeout time.Duration) error {
	cfg := store.Config()
	readLine := newTrimmedLineReader(in)
	fmt.Fprintln(out, "gma init - configure your AI provider")

	apiKey, err := promptAPIKey(out, cfg, newSecretReader(in, out, readLine))
	if err != nil {
		return err
	}
	endpoint, err := promptWithDefault(out, "API endpoint", cfg.APIEndpoint, config.DefaultAPIEndpoint, readLine)
	if err != nil {
		return err
	}
	model, err := promptWithDefault(out, "Model", cfg.Model, config.DefaultModel, readLine)
	if err != nil {
		return err
	}
	language, err := promptWithDefault(out, "Commit message language", cfg.Language, config.DefaultLanguage, readLine)
	if err != nil {
		return err
	}

	values := []struct{ key, value string }{
		{config.KeyAPIKey, apiKey},
		{config.KeyAPIEndpoint, endpoint},
		{config.KeyModel, model},
		{config.KeyLanguage, language},
	}
	for _, v := range values {
		if _, err := store.Set(v.key, v.value); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
	}
	fmt.Fprintf(out, "Configuration saved to %s\n", store.Path())

	return maybeTestConnection(ctx, out, store.Config(), timeout, readLine)
}

func newTrimmedLineReader(in io.Reader) func() (string, error) {
	reader := bufio.NewReader(in)
	return func() (string, error) {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if errors.Is(err, io.EOF) && line == "" {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// newSecretReader reads without echo when in is a terminal and falls back to
// plain line reads otherwise.
func newSecretReader(in io.Reader, out io.Writer, readLine func() (string, error)) func() (string, error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return readLine
	}
	return func() (string, error) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}
}

func promptAPIKey(out io.Writer, cfg *config.Config, readSecret func() (string, error)) (string, error) {
	for {
		if cfg.APIKey != "" {
			fmt.Fprint(out, "API Key (leave blank to keep current): ")
		} else {
			fmt.Fprint(out, "API Key (required): ")
		}

		line, err := readSecret()
		if err != nil {
			return "", err
		}
		if line == "" {
			if cfg.APIKey != "" {
				return cfg.APIKey, nil
			}
			fmt.Fprintln(out, "API key is required.")
			continue
		}
		return line, nil
	}
}

func promptWithDefault(out io.Writer, label, current, fallback string, readLine func() (string, error)) (string, error) {
	def := current
	if def == "" {
		def = fallback
	}
	fmt.Fprintf(out, "%s (default: %s): ", label, def)

	line, err := readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func maybeTestConnection(ctx context.Context, out io.Writer, cfg *config.Config, timeout time.Duration, readLine func() (string, error)) error {
	for {
		fmt.Fprint(out, "Test API connection now? [Y/n]: ")
		answer, err := readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch strings.ToLower(answer) {
		case "", "y", "yes":
			fmt.Fprintln(out, "Testing API connection...")
			if err := testLLMConnection(ctx, cfg, timeout); err != nil {
				ui.Failure(out, fmt.Sprintf("Connection test failed: %v", err))
				fmt.Fprintln(out, "You can re-run `gma init` or update a single key with `gma config <key> <value>`.")
			} else {
				ui.Success(out, "Connection test succeeded.")
			}
			return nil
		case "n", "no":
			return nil
		default:
			fmt.Fprintln(out, "Please enter y or n.")
		}
	}
}
