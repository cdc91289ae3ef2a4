package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/samzong/gma-cli/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInitStore(t *testing.T) *config.Store {
	t.Helper()
	t.Chdir(t.TempDir())
	store, err := config.Load(isolate(t))
	require.NoError(t, err)
	return store
}

func stubConnectionTest(t *testing.T, result error) *bool {
	t.Helper()
	called := false
	orig := testLLMConnection
	t.Cleanup(func() { testLLMConnection = orig })
	testLLMConnection = func(_ context.Context, _ *config.Config, _ time.Duration) error {
		called = true
		return result
	}
	return &called
}

func TestRunInitWizard_RequiresAPIKeyAndUsesDefaults(t *testing.T) {
	store := newInitStore(t)
	called := stubConnectionTest(t, nil)

	input := strings.NewReader("\nkey123\n\n\nen\nn\n")
	var output bytes.Buffer

	err := runInitWizard(context.Background(), input, &output, store, time.Second)
	require.NoError(t, err)

	cfg := store.Config()
	assert.Equal(t, "key123", cfg.APIKey)
	assert.Equal(t, config.DefaultAPIEndpoint, cfg.APIEndpoint)
	assert.Equal(t, config.DefaultModel, cfg.Model)
	assert.Equal(t, "en", cfg.Language)
	assert.False(t, *called)
	assert.Contains(t, output.String(), "API key is required")
	assert.Contains(t, output.String(), "Configuration saved to "+store.Path())
}

func TestRunInitWizard_KeepExistingKeyAndTestConnection(t *testing.T) {
	store := newInitStore(t)
	_, err := store.Set(config.KeyAPIKey, "existing-key")
	require.NoError(t, err)
	called := stubConnectionTest(t, nil)

	input := strings.NewReader("\nhttps://proxy.example/v1\ngpt-4.1-mini\n\ny\n")
	var output bytes.Buffer

	err = runInitWizard(context.Background(), input, &output, store, time.Second)
	require.NoError(t, err)

	cfg := store.Config()
	assert.Equal(t, "existing-key", cfg.APIKey)
	assert.Equal(t, "https://proxy.example/v1", cfg.APIEndpoint)
	assert.Equal(t, "gpt-4.1-mini", cfg.Model)
	assert.Equal(t, config.DefaultLanguage, cfg.Language)
	assert.True(t, *called)
	assert.Contains(t, output.String(), "Connection test succeeded.")
}

func TestRunInitWizard_ConnectionFailureIsReported(t *testing.T) {
	store := newInitStore(t)
	stubConnectionTest(t, errors.New("AI API error: 401 - unauthorized"))

	input := strings.NewReader("key\n\n\n\nmaybe\nyes\n")
	var output bytes.Buffer

	err := runInitWizard(context.Background(), input, &output, store, time.Second)
	require.NoError(t, err)
	assert.Contains(t, output.String(), "Please enter y or n.")
	assert.Contains(t, output.String(), "Connection test failed: AI API error: 401 - unauthorized")
}

func TestRunInitWizard_EOFBeforeKey(t *testing.T) {
	store := newInitStore(t)
	stubConnectionTest(t, nil)

	err := runInitWizard(context.Background(), strings.NewReader(""), &bytes.Buffer{}, store, time.Second)
	assert.Error(t, err)
	assert.Empty(t, store.Config().APIKey)
}

func TestInitCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	cfgPath := isolate(t)
	stubConnectionTest(t, nil)

	out, _, err := execute(t, RootCmd(), "sk-abc\n\n\n\nn\n", "--config", cfgPath, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialization complete.")

	store, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "sk-abc", store.Config().APIKey)
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "<not set>", maskSecret(""))
	assert.Equal(t, "*****", maskSecret("short"))
	assert.Equal(t, "********wxyz", maskSecret("sk-abcdefghwxyz"))
}
