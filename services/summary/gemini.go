package summary

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	pkgerrors "github.com/pkg/errors"
	"google.golang.org/api/option"
)

type GeminiConfig struct {
	APIKey string
	Model  string
	// Temperature is passed through when non-nil.
	Temperature *float32
}

// contentModel is the part of *genai.GenerativeModel the generator uses.
type contentModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator sends prompts to a Gemini model.
type GeminiGenerator struct {
	client *genai.Client
	model  contentModel
}

var ErrNoAPIKey = pkgerrors.New("gemini api key not configured")

// missingKey fails every call, so a server without a key still starts.
type missingKey struct{}

func (missingKey) GenerateContent(context.Context, ...genai.Part) (*genai.GenerateContentResponse, error) {
	return nil, ErrNoAPIKey
}

// NewGeminiGenerator creates the client with cfg.APIKey. An empty key is not
// rejected here; every Generate call fails with ErrNoAPIKey instead.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return &GeminiGenerator{model: missingKey{}}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "create gemini client")
	}

	model := client.GenerativeModel(cfg.Model)
	applyConfig(model, cfg)

	return &GeminiGenerator{client: client, model: model}, nil
}

func applyConfig(model *genai.GenerativeModel, cfg GeminiConfig) {
	if cfg.Temperature != nil {
		model.SetTemperature(*cfg.Temperature)
	}
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", pkgerrors.Wrap(err, "generate content")
	}
	return responseText(resp)
}

func (g *GeminiGenerator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil {
			return "", pkgerrors.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", pkgerrors.New("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", pkgerrors.Errorf("empty candidate, finish reason %s", candidate.FinishReason)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", pkgerrors.Errorf("no text parts, finish reason %s", candidate.FinishReason)
	}
	return b.String(), nil
}
