package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		count    int
		expected Tier
	}{
		{50, TierShort},
		{100, TierShort},
		{101, TierMedium},
		{250, TierMedium},
		{300, TierMedium},
		{301, TierLong},
		{500, TierLong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierFor(tt.count), "word count %d", tt.count)
	}
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, French, ParseLanguage("French"))
	assert.Equal(t, Portuguese, ParseLanguage(" portuguese "))
	assert.Equal(t, English, ParseLanguage("Klingon"))
	assert.Equal(t, English, ParseLanguage(""))
}

func TestLanguageInstructions(t *testing.T) {
	for _, lang := range Languages() {
		assert.NotEmpty(t, lang.Instruction(), lang.String())
	}
	assert.Equal(t, "Please provide the summary in English.", Language(99).Instruction())
	assert.Equal(t, "English", Language(99).String())
}

func TestLanguageUnmarshalText(t *testing.T) {
	var lang Language
	assert.NoError(t, lang.UnmarshalText([]byte("German")))
	assert.Equal(t, German, lang)

	assert.NoError(t, lang.UnmarshalText([]byte("Klingon")))
	assert.Equal(t, English, lang)
}

func TestBuildPromptUnknownLanguageUsesEnglish(t *testing.T) {
	prompt := BuildPrompt("some transcript", ParseLanguage("Klingon"), 250)
	assert.True(t, strings.HasPrefix(prompt, "Please provide the summary in English.\n\n"))
}

func TestBuildPromptIsPure(t *testing.T) {
	a := BuildPrompt("the same words", Spanish, 420)
	b := BuildPrompt("the same words", Spanish, 420)
	assert.Equal(t, a, b)
}

func TestBuildPromptTierBlocks(t *testing.T) {
	tests := []struct {
		count   int
		want    string
		notWant []string
	}{
		{80, shortFormat, []string{mediumFormat, longFormat}},
		{200, mediumFormat, []string{shortFormat, longFormat}},
		{450, longFormat, []string{shortFormat, mediumFormat}},
	}

	for _, tt := range tests {
		prompt := BuildPrompt("t", English, tt.count)
		assert.Contains(t, prompt, tt.want)
		for _, other := range tt.notWant {
			assert.NotContains(t, prompt, other)
		}
	}
}

func TestBuildPromptLayout(t *testing.T) {
	transcript := "  Bonjour   à tous\nwith <odd> spacing  "
	prompt := BuildPrompt(transcript, French, 80)

	assert.True(t, strings.HasPrefix(prompt, "Veuillez fournir le résumé en français.\n\n"))
	assert.True(t, strings.HasSuffix(prompt, transcript), "transcript must be the unmodified tail")
	assert.Contains(t, prompt, "Aim for approximately 80 words")
	assert.Contains(t, prompt, "Use active voice")
	assert.Contains(t, prompt, "Include specific numbers, data points, or statistics mentioned")
	assert.Contains(t, prompt, "Preserve any unique terminology")
	assert.Contains(t, prompt, "Avoid redundancy")
	assert.Contains(t, prompt, "don't include those points")

	preamble := strings.Index(prompt, promptPreamble)
	format := strings.Index(prompt, shortFormat)
	requirements := strings.Index(prompt, "Key Requirements:")
	tail := strings.LastIndex(prompt, transcript)
	assert.True(t, preamble < format && format < requirements && requirements < tail)
}
