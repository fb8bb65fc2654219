// Package prompts builds the natural-language instructions sent to the
// completion endpoint. All builders are pure: identical inputs yield
// identical prompt strings, with no I/O and no hidden state.
package prompts

import (
	"fmt"
	"strings"

	"github.com/anilsoylu/contentforge/internal/models"
)

// sectionPerspectives assigns a fixed thematic angle to each section by
// position, reducing content overlap across sections. Indices beyond
// the table fall back to genericPerspective.
var sectionPerspectives = []string{
	"Basic information and first steps for beginners",
	"Practical comparison and evaluation criteria",
	"Advanced tips and maximum benefit strategies",
	"Common mistakes and how to avoid them",
	"Future trends and things to watch out for",
}

const genericPerspective = "In-depth analysis and concrete examples"

// toneDescriptions maps configured tone to the wording used in section
// prompts.
var toneDescriptions = map[string]string{
	"informative":    "Informative and objective",
	"conversational": "Friendly and conversational",
	"professional":   "Professional and formal",
}

// SectionPerspective returns the perspective string for a section index
func SectionPerspective(sectionIndex int) string {
	if sectionIndex >= 0 && sectionIndex < len(sectionPerspectives) {
		return sectionPerspectives[sectionIndex]
	}
	return genericPerspective
}

// BuildIntroPrompt builds the introduction prompt. It references up to
// the first three section headings as topics to cover; the keyword and
// audience instructions appear only when configured.
func BuildIntroPrompt(title string, headings []string, introWords int, seo models.SEOConfig, language string) string {
	topicHeadings := headings
	if len(topicHeadings) > 3 {
		topicHeadings = topicHeadings[:3]
	}
	topics := strings.Join(topicHeadings, ", ")

	keywordInstruction := ""
	if seo.PrimaryKeyword != "" {
		keywordInstruction = fmt.Sprintf("\n- Use the primary keyword (%s) naturally in the first 2 sentences", seo.PrimaryKeyword)
	}

	audienceInstruction := ""
	if seo.TargetAudience != "" {
		audienceInstruction = fmt.Sprintf("\n- Target audience: %s", seo.TargetAudience)
	}

	return fmt.Sprintf(`Write an INTRODUCTION paragraph for a blog post about "%s".

HOOK STRATEGY (choose one):
- Start with a surprising statistic or fact
- Describe a problem the reader faces
- Ask a curiosity-provoking question

CONTENT REQUIREMENTS:
- Approximately %d words
- Explain what the article is about and what value it provides to the reader
- Topics to be covered: %s%s%s

AVOID:
- Cliché openings like "In this article"
- Filler phrases like "Nowadays", "In recent years"
- Exaggerated promises

IMPORTANT: Write plain text only. Do not use HTML tags.

LANGUAGE: Write the content in %s.`, title, introWords, topics, keywordInstruction, audienceInstruction, language)
}

// BuildTablePrompt builds the comparison-table prompt: column names,
// one placeholder-substitution rule per column that declares a
// placeholder, and a worked example row.
func BuildTablePrompt(title string, table models.TableConfig, language string) string {
	columnNames := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		columnNames[i] = col.Name
	}

	var placeholderRules []string
	for _, col := range table.Columns {
		if col.Placeholder != "" {
			placeholderRules = append(placeholderRules,
				fmt.Sprintf("- For %s use [%s_1], [%s_2]... placeholders", col.Header, col.Placeholder, col.Placeholder))
		}
	}

	exampleValues := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		switch {
		case col.Placeholder != "":
			exampleValues[i] = fmt.Sprintf("[%s_1]", col.Placeholder)
		case col.Type == models.ColumnTypeStars:
			exampleValues[i] = "4"
		default:
			exampleValues[i] = "example"
		}
	}

	return fmt.Sprintf(`Provide %d item information for the topic "%s".

FORMAT: One item per line, separated by pipe (|).
COLUMNS: %s

RULES:
%s
- Use numbers 1-5 for rating column

EXAMPLE OUTPUT:
%s

Write ONLY %d lines of data, nothing else.

LANGUAGE: Write the content in %s.`,
		table.Rows, title,
		strings.Join(columnNames, " | "),
		strings.Join(placeholderRules, "\n"),
		strings.Join(exampleValues, " | "),
		table.Rows, language)
}

// BuildSectionPrompt builds one body-section prompt. previousTopics
// holds the headings of strictly preceding sections (headings only,
// never prior generated text) and becomes the do-not-repeat list.
func BuildSectionPrompt(
	title, heading string,
	sectionWords, sectionIndex, totalSections int,
	previousTopics []string,
	seo models.SEOConfig,
	placeholders models.PlaceholderConfig,
	language string,
) string {
	perspective := SectionPerspective(sectionIndex)

	avoidTopics := ""
	if len(previousTopics) > 0 {
		avoidTopics = fmt.Sprintf("\n- DO NOT REPEAT (already covered): %s", strings.Join(previousTopics, ", "))
	}

	keywordInstruction := ""
	if seo.PrimaryKeyword != "" {
		keywordInstruction = fmt.Sprintf("\n- Primary keyword (%s): Use naturally once in this section", seo.PrimaryKeyword)
	}

	secondaryInstruction := ""
	if len(seo.SecondaryKeywords) > 0 {
		var relevant []string
		for _, kw := range seo.SecondaryKeywords {
			if strings.Contains(strings.ToLower(heading), strings.ToLower(kw)) {
				relevant = append(relevant, kw)
			}
		}
		if len(relevant) > 0 {
			secondaryInstruction = fmt.Sprintf("\n- Related keywords (use naturally): %s", strings.Join(relevant, ", "))
		}
	}

	toneDesc, ok := toneDescriptions[seo.Tone]
	if !ok {
		toneDesc = "Informative"
	}

	placeholderHint := fmt.Sprintf("[%s_NAME], [%s_VALUE]", placeholders.ItemPrefix, placeholders.ValuePrefix)

	return fmt.Sprintf(`Write original content about "%s".

MAIN TITLE: %s
SECTION: %d/%d
PERSPECTIVE: %s
TONE: %s

CONTENT REQUIREMENTS:
- Approximately %d words
- At least 1 concrete example or numerical data
- At least 2 practical, actionable tips
- For bullet lists use: "• "%s%s
- Use placeholders: %s

AVOID:%s
- DO NOT REPEAT MAIN TITLE: Don't use "%s" within the section
- Generic phrases: "quality service", "reliable platform", "professional team"
- Exaggerated claims: "the best", "absolutely", "must", "guaranteed"
- Filler sentences: "as everyone knows", "undoubtedly"

IMPORTANT: Write plain text only. Do not use HTML tags.

LANGUAGE: Write the content in %s.`,
		heading, title, sectionIndex+1, totalSections, perspective, toneDesc,
		sectionWords, keywordInstruction, secondaryInstruction, placeholderHint,
		avoidTopics, title, language)
}

// BuildConclusionPrompt builds the conclusion prompt, referencing all
// section headings; the repeat-keyword instruction appears only when a
// primary keyword is configured.
func BuildConclusionPrompt(title string, headings []string, conclusionWords int, seo models.SEOConfig, language string) string {
	topics := strings.Join(headings, ", ")

	keywordInstruction := ""
	if seo.PrimaryKeyword != "" {
		keywordInstruction = fmt.Sprintf("\n- Use the primary keyword (%s) once more", seo.PrimaryKeyword)
	}

	return fmt.Sprintf(`Write a CONCLUSION paragraph for an article about "%s".

TOPICS COVERED IN THE ARTICLE: %s

CONTENT REQUIREMENTS:
- Approximately %d words
- Summarize main points in 1-2 sentences (synthesis, not repetition)
- Suggest a concrete next step for the reader (CTA)
- End with a positive but realistic tone%s

AVOID:
- Starting with "In conclusion"
- Repeating exactly what was said in the article
- Exaggerated promises

IMPORTANT: Write plain text only. Do not use HTML tags.

LANGUAGE: Write the content in %s.`, title, topics, conclusionWords, keywordInstruction, language)
}
