package lore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 20 * time.Second
)

// Generator produces lore for a reactivated stage.
type Generator interface {
	Generate(ctx context.Context, stage int) (string, error)
}

type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

// contentModel is the subset of *genai.Models used for generation.
type contentModel interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// NewGenerator returns a GenAI-backed generator, or an offline one when
// config carries no credential.
func NewGenerator(ctx context.Context, config Config) (Generator, error) {
	if strings.TrimSpace(config.APIKey) == "" {
		return Offline{}, nil
	}
	return NewGenAIGenerator(ctx, config)
}

// Offline is the generator used when no credential is configured.
type Offline struct{}

func (Offline) Generate(context.Context, int) (string, error) {
	return "", ErrNoCredential
}

type GenAIGenerator struct {
	models  contentModel
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGenAIGenerator creates a generator backed by the Gemini API.
func NewGenAIGenerator(ctx context.Context, config Config) (*GenAIGenerator, error) {
	apiKey := strings.TrimSpace(config.APIKey)
	if apiKey == "" {
		return nil, ErrNoCredential
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return newGenAIGenerator(client.Models, config), nil
}

func newGenAIGenerator(models contentModel, config Config) *GenAIGenerator {
	model := strings.TrimSpace(config.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &GenAIGenerator{
		models:  models,
		model:   model,
		timeout: timeout,
		logger:  logger.Named("lore"),
	}
}

// Generate asks the model for a log entry about stage. Upstream failures are
// reported as ErrServiceUnavailable; an empty answer yields CorruptedText.
func (g *GenAIGenerator) Generate(ctx context.Context, stage int) (string, error) {
	if stage < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidStage, stage)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	response, err := g.models.GenerateContent(ctx, g.model, genai.Text(Prompt(stage)), nil)
	if err != nil {
		g.logger.Warn("lore generation failed",
			zap.Int("stage", stage),
			zap.String("model", g.model),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	text := ""
	if response != nil {
		text = strings.TrimSpace(response.Text())
	}
	if text == "" {
		g.logger.Warn("lore generation returned no text", zap.Int("stage", stage))
		return CorruptedText, nil
	}

	g.logger.Debug("lore generated",
		zap.Int("stage", stage),
		zap.Duration("elapsed", time.Since(started)))
	return text, nil
}
