package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anilsoylu/contentforge/internal/models"
)

func TestSectionPerspective(t *testing.T) {
	assert.Equal(t, "Basic information and first steps for beginners", SectionPerspective(0))
	assert.Equal(t, "Future trends and things to watch out for", SectionPerspective(4))
	assert.Equal(t, genericPerspective, SectionPerspective(5))
	assert.Equal(t, genericPerspective, SectionPerspective(42))
	assert.Equal(t, genericPerspective, SectionPerspective(-1))
}

func TestBuildIntroPrompt(t *testing.T) {
	headings := []string{"Alpha", "Beta", "Gamma", "Delta"}
	seo := models.SEOConfig{PrimaryKeyword: "widgets", TargetAudience: "hobbyists"}

	prompt := BuildIntroPrompt("Widget Guide", headings, 120, seo, "English")

	assert.Contains(t, prompt, `blog post about "Widget Guide"`)
	assert.Contains(t, prompt, "Approximately 120 words")
	// only the first three headings are referenced
	assert.Contains(t, prompt, "Topics to be covered: Alpha, Beta, Gamma")
	assert.NotContains(t, prompt, "Delta")
	assert.Contains(t, prompt, "Use the primary keyword (widgets) naturally in the first 2 sentences")
	assert.Contains(t, prompt, "Target audience: hobbyists")
	assert.Contains(t, prompt, "LANGUAGE: Write the content in English.")
}

func TestBuildIntroPromptOmitsUnsetInstructions(t *testing.T) {
	prompt := BuildIntroPrompt("T", []string{"A"}, 100, models.SEOConfig{}, "German")

	assert.NotContains(t, prompt, "primary keyword")
	assert.NotContains(t, prompt, "Target audience")
	assert.Contains(t, prompt, "LANGUAGE: Write the content in German.")
}

func TestBuildTablePrompt(t *testing.T) {
	table := models.TableConfig{
		Enabled: true,
		Rows:    5,
		Columns: []models.TableColumn{
			{Name: "item", Header: "Item", Type: models.ColumnTypeText, Placeholder: "ITEM"},
			{Name: "price", Header: "Price", Type: models.ColumnTypeText, Placeholder: "VALUE"},
			{Name: "feature", Header: "Feature", Type: models.ColumnTypeText},
			{Name: "rating", Header: "Rating", Type: models.ColumnTypeStars},
		},
	}

	prompt := BuildTablePrompt("Widget Guide", table, "English")

	assert.Contains(t, prompt, `Provide 5 item information for the topic "Widget Guide".`)
	assert.Contains(t, prompt, "COLUMNS: item | price | feature | rating")
	assert.Contains(t, prompt, "- For Item use [ITEM_1], [ITEM_2]... placeholders")
	assert.Contains(t, prompt, "- For Price use [VALUE_1], [VALUE_2]... placeholders")
	assert.NotContains(t, prompt, "For Feature use")
	// example row: placeholder, placeholder, plain, stars
	assert.Contains(t, prompt, "[ITEM_1] | [VALUE_1] | example | 4")
	assert.Contains(t, prompt, "Write ONLY 5 lines of data, nothing else.")
}

func TestBuildSectionPrompt(t *testing.T) {
	seo := models.SEOConfig{
		PrimaryKeyword:    "widgets",
		SecondaryKeywords: []string{"pricing", "durability"},
		Tone:              "professional",
	}
	placeholders := models.PlaceholderConfig{ItemPrefix: "ITEM", ValuePrefix: "VALUE"}

	prompt := BuildSectionPrompt(
		"Widget Guide", "Widget Pricing Explained",
		150, 1, 4,
		[]string{"Getting Started"},
		seo, placeholders, "English",
	)

	assert.Contains(t, prompt, `Write original content about "Widget Pricing Explained".`)
	assert.Contains(t, prompt, "MAIN TITLE: Widget Guide")
	assert.Contains(t, prompt, "SECTION: 2/4")
	assert.Contains(t, prompt, "PERSPECTIVE: Practical comparison and evaluation criteria")
	assert.Contains(t, prompt, "TONE: Professional and formal")
	assert.Contains(t, prompt, "Approximately 150 words")
	assert.Contains(t, prompt, "Primary keyword (widgets): Use naturally once in this section")
	assert.Contains(t, prompt, "DO NOT REPEAT (already covered): Getting Started")
	assert.Contains(t, prompt, "Use placeholders: [ITEM_NAME], [VALUE_VALUE]")
	assert.Contains(t, prompt, `Don't use "Widget Guide" within the section`)
}

func TestBuildSectionPromptSecondaryKeywordFilter(t *testing.T) {
	seo := models.SEOConfig{
		SecondaryKeywords: []string{"pricing", "durability"},
		Tone:              "informative",
	}

	// heading mentions only one of the secondary keywords
	prompt := BuildSectionPrompt("T", "All About PRICING", 100, 0, 1, nil, seo, models.PlaceholderConfig{}, "English")
	assert.Contains(t, prompt, "Related keywords (use naturally): pricing")
	assert.NotContains(t, prompt, "durability")

	// no keyword matches the heading
	prompt = BuildSectionPrompt("T", "Unrelated Heading", 100, 0, 1, nil, seo, models.PlaceholderConfig{}, "English")
	assert.NotContains(t, prompt, "Related keywords")
}

func TestBuildSectionPromptUnknownToneFallsBack(t *testing.T) {
	seo := models.SEOConfig{Tone: "whimsical"}
	prompt := BuildSectionPrompt("T", "H", 100, 0, 1, nil, seo, models.PlaceholderConfig{}, "English")
	assert.Contains(t, prompt, "TONE: Informative\n")
}

func TestBuildSectionPromptNoPreviousTopics(t *testing.T) {
	prompt := BuildSectionPrompt("T", "H", 100, 0, 3, nil, models.SEOConfig{Tone: "informative"}, models.PlaceholderConfig{}, "English")
	assert.NotContains(t, prompt, "DO NOT REPEAT (already covered)")
	assert.Contains(t, prompt, "SECTION: 1/3")
}

func TestBuildConclusionPrompt(t *testing.T) {
	prompt := BuildConclusionPrompt("Widget Guide", []string{"Alpha", "Beta"}, 80,
		models.SEOConfig{PrimaryKeyword: "widgets"}, "English")

	assert.Contains(t, prompt, `CONCLUSION paragraph for an article about "Widget Guide"`)
	assert.Contains(t, prompt, "TOPICS COVERED IN THE ARTICLE: Alpha, Beta")
	assert.Contains(t, prompt, "Approximately 80 words")
	assert.Contains(t, prompt, "Use the primary keyword (widgets) once more")
}

func TestBuildConclusionPromptWithoutKeyword(t *testing.T) {
	prompt := BuildConclusionPrompt("T", []string{"A"}, 80, models.SEOConfig{}, "English")
	assert.NotContains(t, prompt, "primary keyword")
}
