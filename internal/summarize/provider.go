package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickprogramme/tubesum/internal/fetch"
	"github.com/rs/zerolog"
)

const (
	DefaultEndpoint     = "https://openrouter.ai/api/v1/chat/completions"
	DefaultMaxTokens    = 1000
	DefaultModelTimeout = 30 * time.Second
)

// Provider résume via une API chat completion (OpenRouter par défaut).
// Les modèles sont essayés dans l'ordre, le premier succès gagne.
type Provider struct {
	Client       *fetch.Client
	Endpoint     string
	APIKey       string
	Models       []string
	MaxTokens    int
	ModelTimeout time.Duration
	// SystemPrompt vide -> template embarqué.
	SystemPrompt string
	Log          zerolog.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (*Provider) Name() string { return "api" }

func (p *Provider) Summarize(ctx context.Context, text string) (string, error) {
	if p.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}

	system := p.SystemPrompt
	if system == "" {
		var err error
		if system, err = SystemPrompt(); err != nil {
			return "", err
		}
	}

	endpoint := p.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	maxTokens := p.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	timeout := p.ModelTimeout
	if timeout <= 0 {
		timeout = DefaultModelTimeout
	}
	client := p.Client
	if client == nil {
		client = fetch.NewClient(fetch.Options{})
	}

	var lastErr error
	for _, model := range p.Models {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("résumé api: %w", err)
		}
		req := chatRequest{
			Model: model,
			Messages: []chatMessage{
				{Role: "system", Content: system},
				{Role: "user", Content: userPrefix + text},
			},
			MaxTokens: maxTokens,
		}
		out, err := p.attempt(ctx, client, endpoint, timeout, req)
		if err != nil {
			lastErr = err
			p.Log.Warn().Err(err).Str("model", model).Msg("modèle en échec")
			continue
		}
		p.Log.Info().Str("model", model).Msg("résumé généré")
		return out, nil
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("résumé api: %w", err)
	}
	if lastErr != nil {
		return "", fmt.Errorf("%w (%d modèle(s)): %w", ErrAllModelsFailed, len(p.Models), lastErr)
	}
	return "", fmt.Errorf("%w: aucun modèle configuré", ErrAllModelsFailed)
}

func (p *Provider) attempt(ctx context.Context, c *fetch.Client, endpoint string, timeout time.Duration, req chatRequest) (string, error) {
	var resp chatResponse
	err := c.PostJSON(ctx, endpoint, req, &resp,
		fetch.WithTimeout(timeout),
		fetch.WithHeader("Authorization", "Bearer "+p.APIKey),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("réponse sans choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("réponse vide")
	}
	return content, nil
}
