package summary

import (
	"fmt"
	"strings"
)

// Language selects the output language of a summary.
type Language int

const (
	English Language = iota
	Spanish
	French
	German
	Italian
	Portuguese
)

// DefaultLanguage is used for any name ParseLanguage does not recognize.
const DefaultLanguage = English

var languageNames = map[Language]string{
	English:    "English",
	Spanish:    "Spanish",
	French:     "French",
	German:     "German",
	Italian:    "Italian",
	Portuguese: "Portuguese",
}

var languageInstructions = map[Language]string{
	English:    "Please provide the summary in English.",
	Spanish:    "Por favor, proporcione el resumen en español.",
	French:     "Veuillez fournir le résumé en français.",
	German:     "Bitte geben Sie die Zusammenfassung auf Deutsch an.",
	Italian:    "Si prega di fornire il riassunto in italiano.",
	Portuguese: "Por favor, forneça o resumo em português.",
}

// Languages lists the supported languages in display order.
func Languages() []Language {
	return []Language{English, Spanish, French, German, Italian, Portuguese}
}

// ParseLanguage matches name case-insensitively against the supported
// language names. Unknown names fall back to DefaultLanguage.
func ParseLanguage(name string) Language {
	name = strings.TrimSpace(name)
	for _, lang := range Languages() {
		if strings.EqualFold(languageNames[lang], name) {
			return lang
		}
	}
	return DefaultLanguage
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return languageNames[DefaultLanguage]
}

// Instruction is the sentence asking the model to answer in l.
func (l Language) Instruction() string {
	if text, ok := languageInstructions[l]; ok {
		return text
	}
	return languageInstructions[DefaultLanguage]
}

func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Language) UnmarshalText(text []byte) error {
	*l = ParseLanguage(string(text))
	return nil
}

// Tier is the length class of a summary.
type Tier int

const (
	TierShort Tier = iota
	TierMedium
	TierLong
)

const (
	MinWordCount     = 50
	MaxWordCount     = 500
	DefaultWordCount = 250

	shortMaxWords  = 100
	mediumMaxWords = 300
)

// TierFor classifies a target word count.
func TierFor(wordCount int) Tier {
	switch {
	case wordCount <= shortMaxWords:
		return TierShort
	case wordCount <= mediumMaxWords:
		return TierMedium
	default:
		return TierLong
	}
}

func (t Tier) String() string {
	switch t {
	case TierShort:
		return "short"
	case TierMedium:
		return "medium"
	default:
		return "long"
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t Tier) formatting() string {
	switch t {
	case TierShort:
		return shortFormat
	case TierMedium:
		return mediumFormat
	default:
		return longFormat
	}
}

const shortFormat = `Format the summary in approximately 50-100 words:
- Begin with a one-sentence overview that captures the video's core message
- Follow with 2-3 key takeaways
- Use concise, impactful language
- Focus only on the most crucial points`

const mediumFormat = `Format the summary in approximately 100-300 words:
- Start with a comprehensive overview paragraph
- Include 4-5 main points with brief supporting details
- Add relevant examples where appropriate
- Highlight any practical applications or key insights
- Maintain a clear narrative flow`

const longFormat = `Format the summary in approximately 300-500 words:
- Begin with an executive summary paragraph
- Break down the content into clearly defined sections
- Include detailed examples and case studies mentioned
- Capture nuanced arguments and counterpoints
- Add context and background information where relevant
- Conclude with key implications or action items
- Use subheadings to organize major themes`

const promptPreamble = "You are an expert content summarizer specializing in creating precise, " +
	"length-optimized summaries. Analyze this video transcript and create a summary " +
	"following these specific guidelines:"

const requirementsTemplate = `Key Requirements:
1. Target Length: Aim for approximately %d words
2. Writing Style:
   - Use active voice and clear, professional language
   - Break complex ideas into digestible segments
   - Maintain the original speaker's tone while being concise
   - Include specific numbers, data points, or statistics mentioned
   - Preserve any unique terminology or specialized concepts

3. Content Organization:
   - Prioritize information based on significance and relevance
   - Maintain logical flow between ideas
   - Highlight unexpected insights or novel perspectives
   - Include real-world applications when mentioned

4. Quality Standards:
   - Ensure factual accuracy
   - Avoid redundancy
   - Maintain objective tone unless specifically highlighting opinions
   - Preserve technical precision while being accessible
If you can't find any of the above mentioned context in the transcript, don't include those points in the final summary.`

const transcriptHeading = "Transcript to Summarize:"

// BuildPrompt composes the generation prompt. It depends only on its
// arguments, and the transcript is appended unmodified as the final part.
func BuildPrompt(transcript string, lang Language, wordCount int) string {
	var b strings.Builder
	b.WriteString(lang.Instruction())
	b.WriteString("\n\n")
	b.WriteString(promptPreamble)
	b.WriteString("\n\n")
	b.WriteString(TierFor(wordCount).formatting())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, requirementsTemplate, wordCount)
	b.WriteString("\n\n")
	b.WriteString(transcriptHeading)
	b.WriteString("\n")
	b.WriteString(transcript)
	return b.String()
}
