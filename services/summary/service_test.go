package summary

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/nijaru/yt-notes/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator records prompts and answers with a canned response.
type stubGenerator struct {
	prompts  []string
	response func(prompt string) (string, error)
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.response(prompt)
}

func TestSummarizeReturnsTextVerbatim(t *testing.T) {
	gen := &stubGenerator{response: func(string) (string, error) {
		return "  ## Notes\n- point one  ", nil
	}}
	svc := NewService(gen, Config{})

	res, err := svc.Summarize(context.Background(), Request{
		Transcript: "Hello world",
		Language:   German,
		WordCount:  320,
	})
	require.NoError(t, err)

	assert.Equal(t, "  ## Notes\n- point one  ", res.Text)
	assert.Equal(t, German, res.Language)
	assert.Equal(t, TierLong, res.Tier)
	assert.Equal(t, 320, res.WordCount)
	require.Len(t, gen.prompts, 1)
	assert.Equal(t, BuildPrompt("Hello world", German, 320), gen.prompts[0])
}

func TestSummarizeDeterministicPrompt(t *testing.T) {
	gen := &stubGenerator{response: func(p string) (string, error) { return p, nil }}
	svc := NewService(gen, Config{})
	req := Request{Transcript: "fixed transcript", Language: Italian, WordCount: 150}

	first, err := svc.Summarize(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Summarize(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, gen.prompts[0], gen.prompts[1])
}

func TestSummarizeGenerationFailure(t *testing.T) {
	calls := 0
	gen := &stubGenerator{response: func(string) (string, error) {
		calls++
		return "", fmt.Errorf("googleapi: Error 403: API key not valid")
	}}
	svc := NewService(gen, Config{})

	res, err := svc.Summarize(context.Background(), Request{Transcript: "x", WordCount: 100})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, 1, calls, "generation is never retried")
	assert.True(t, errors.Is(err, errors.KindGeneration))
	assert.Equal(t, "Something went wrong. Please try again.", errors.UserMessage(err))
}

func TestSummarizeAppliesTimeout(t *testing.T) {
	var deadline time.Time
	gen := generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		deadline, _ = ctx.Deadline()
		return "ok", nil
	})
	svc := NewService(gen, Config{Timeout: time.Minute})

	_, err := svc.Summarize(context.Background(), Request{Transcript: "x", WordCount: 60})
	require.NoError(t, err)
	assert.False(t, deadline.IsZero())
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestEndToEndPromptShape(t *testing.T) {
	transcript := strings.Repeat("word ", 40) + "end."
	gen := &stubGenerator{response: func(p string) (string, error) {
		return fmt.Sprintf("%d", len(p)), nil
	}}
	svc := NewService(gen, Config{})

	res, err := svc.Summarize(context.Background(), Request{
		Transcript: transcript,
		Language:   ParseLanguage("French"),
		WordCount:  80,
	})
	require.NoError(t, err)

	prompt := gen.prompts[0]
	assert.Equal(t, fmt.Sprintf("%d", len(prompt)), res.Text)
	assert.True(t, strings.HasPrefix(prompt, French.Instruction()))
	assert.Contains(t, prompt, shortFormat)
	assert.True(t, strings.HasSuffix(prompt, transcript))
}

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
