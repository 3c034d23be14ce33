package summary

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/nijaru/yt-notes/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	parts []genai.Part
	resp  *genai.GenerateContentResponse
	err   error
}

func (m *fakeModel) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	m.parts = parts
	return m.resp, m.err
}

func textResponse(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: parts},
		}},
	}
}

func TestGeminiGenerate(t *testing.T) {
	model := &fakeModel{resp: textResponse(genai.Text("## Detailed"), genai.Text(" notes"))}
	gen := &GeminiGenerator{model: model}

	text, err := gen.Generate(context.Background(), "the prompt")
	require.NoError(t, err)

	assert.Equal(t, "## Detailed notes", text)
	require.Len(t, model.parts, 1)
	assert.Equal(t, genai.Text("the prompt"), model.parts[0])
}

func TestGeminiGenerateErrors(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
	}{
		{"transport error", &fakeModel{err: fmt.Errorf("googleapi: Error 401")}},
		{"nil response", &fakeModel{}},
		{"no candidates", &fakeModel{resp: &genai.GenerateContentResponse{}}},
		{"blocked prompt", &fakeModel{resp: &genai.GenerateContentResponse{
			PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety},
		}}},
		{"empty candidate", &fakeModel{resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
		}}},
		{"no text parts", &fakeModel{resp: textResponse(genai.Blob{MIMEType: "image/png"})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &GeminiGenerator{model: tt.model}
			_, err := gen.Generate(context.Background(), "p")
			assert.Error(t, err)
		})
	}
}

func TestGeminiCloseWithoutClient(t *testing.T) {
	assert.NoError(t, (&GeminiGenerator{}).Close())
}

func TestNewGeminiGeneratorWithoutKey(t *testing.T) {
	gen, err := NewGeminiGenerator(context.Background(), GeminiConfig{Model: "gemini-1.5-flash"})
	require.NoError(t, err)
	require.NotNil(t, gen)
	defer gen.Close()

	_, err = gen.Generate(context.Background(), "the prompt")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestSummarizeWithoutKeyIsGenerationError(t *testing.T) {
	gen, err := NewGeminiGenerator(context.Background(), GeminiConfig{})
	require.NoError(t, err)

	_, err = NewService(gen, Config{}).Summarize(context.Background(), Request{
		Transcript: "hello",
		Language:   English,
		WordCount:  100,
	})
	assert.True(t, errors.Is(err, errors.KindGeneration))
	assert.Equal(t, errors.MsgGeneric, errors.UserMessage(err))
}

func TestApplyConfigTemperature(t *testing.T) {
	temp := float32(0.2)

	model := &genai.GenerativeModel{}
	applyConfig(model, GeminiConfig{Temperature: &temp})
	require.NotNil(t, model.Temperature)
	assert.Equal(t, temp, *model.Temperature)

	untouched := &genai.GenerativeModel{}
	applyConfig(untouched, GeminiConfig{})
	assert.Nil(t, untouched.Temperature)
}
