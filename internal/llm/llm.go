package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samzong/gma-cli/internal/config"
	"github.com/sashabaranov/go-openai"
)

const (
	// DiffCharLimit caps how much of the staged diff is embedded in a prompt.
	DiffCharLimit = 4000

	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/chat/completions"
)

var (
	ErrMissingAPIKey   = errors.New("API key is missing. Please set it using: gma config apiKey <your-key>")
	ErrInvalidResponse = errors.New("invalid response from AI provider")
)

// Options tunes the transport. A zero Timeout disables the deadline.
type Options struct {
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client turns diffs and descriptions into text through a chat completion endpoint.
type Client struct {
	cfg    *config.Config
	opts   Options
	logger *slog.Logger
}

func NewClient(cfg *config.Config, opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{cfg: cfg, opts: opts, logger: logger}
}

// GenerateCommitMessage asks for a Conventional Commits message describing diff.
func (c *Client) GenerateCommitMessage(ctx context.Context, diff string) (string, error) {
	content, err := c.complete(ctx, BuildCommitPrompt(diff, c.language()))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// GenerateBranchSuffix asks for a kebab-case branch suffix describing description.
func (c *Client) GenerateBranchSuffix(ctx context.Context, description string) (string, error) {
	content, err := c.complete(ctx, BuildBranchPrompt(description))
	if err != nil {
		return "", err
	}
	return StripQuotes(strings.TrimSpace(content)), nil
}

// TestConnection performs a minimal completion to verify endpoint, key and model.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.complete(ctx, "Reply with the single word OK.")
	return err
}

func (c *Client) language() string {
	if c.cfg == nil || c.cfg.Language == "" {
		return config.DefaultLanguage
	}
	return c.cfg.Language
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg == nil || c.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	endpoint, err := parseEndpoint(ResolveEndpoint(c.cfg.APIEndpoint))
	if err != nil {
		return "", err
	}

	httpClient := c.opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	clientConfig := openai.DefaultConfig(c.cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(endpoint.String(), chatCompletionsPath)
	clientConfig.HTTPClient = &endpointDoer{endpoint: endpoint, client: httpClient}
	client := openai.NewClientWithConfig(clientConfig)

	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	c.logger.DebugContext(ctx, "requesting completion",
		"endpoint", endpoint.String(), "model", c.cfg.Model, "prompt_chars", len(prompt))

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrInvalidResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// ResolveEndpoint appends the chat completion path to base URLs. Endpoints
// that already end with it, or contain a /v1/ segment, are used unmodified.
func ResolveEndpoint(endpoint string) string {
	if strings.HasSuffix(endpoint, chatCompletionsPath) || strings.Contains(endpoint, "/v1/") {
		return endpoint
	}
	return strings.TrimRight(endpoint, "/") + chatCompletionsPath
}

func parseEndpoint(raw string) (*url.URL, error) {
	endpoint, err := url.Parse(raw)
	if err != nil || endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("invalid API endpoint %q: set a full URL with: gma config apiEndpoint <url>", raw)
	}
	return endpoint, nil
}

// StripQuotes removes one wrapping quote character from each end.
func StripQuotes(s string) string {
	if s != "" && strings.ContainsRune("'\"`", rune(s[0])) {
		s = s[1:]
	}
	if s != "" && strings.ContainsRune("'\"`", rune(s[len(s)-1])) {
		s = s[:len(s)-1]
	}
	return s
}
