package models

const (
	// OutputFormatHTML renders the assembled document as HTML markup
	OutputFormatHTML = "html"
	// OutputFormatMarkdown renders the assembled document as Markdown
	OutputFormatMarkdown = "md"
)

const (
	// ColumnTypeText renders cell values verbatim
	ColumnTypeText = "text"
	// ColumnTypeStars renders numeric cell values as 1-5 star glyphs
	ColumnTypeStars = "stars"
)

// Section describes one body section of the generated document
type Section struct {
	Heading string `yaml:"heading" validate:"required"`
	Words   int    `yaml:"words"`
}

// TableColumn describes one column of the comparison table.
// Name keys parsed row values, Header is the visible column title.
// Columns with a Placeholder instruct the model to emit bracketed
// placeholder tokens ([ITEM_1], [ITEM_2]...) for later substitution.
type TableColumn struct {
	Name        string `yaml:"name"`
	Header      string `yaml:"header"`
	Placeholder string `yaml:"placeholder"`
	Type        string `yaml:"type"` // text, stars
}

// TableConfig controls the optional comparison table block
type TableConfig struct {
	Enabled bool          `yaml:"enabled"`
	Rows    int           `yaml:"rows"`
	Columns []TableColumn `yaml:"columns"`
}

// DefaultTableColumns returns the column set used when the config
// declares a table but no columns.
func DefaultTableColumns() []TableColumn {
	return []TableColumn{
		{Name: "item", Header: "Item", Placeholder: "ITEM", Type: ColumnTypeText},
		{Name: "value", Header: "Value", Placeholder: "VALUE", Type: ColumnTypeText},
		{Name: "feature", Header: "Feature", Placeholder: "FEATURE", Type: ColumnTypeText},
		{Name: "rating", Header: "Rating", Placeholder: "RATING", Type: ColumnTypeStars},
	}
}

// PlaceholderConfig holds the placeholder token prefixes referenced in
// section prompts.
type PlaceholderConfig struct {
	ItemPrefix  string `yaml:"item_prefix"`
	ValuePrefix string `yaml:"value_prefix"`
}

// SEOConfig carries keyword and tone settings applied across prompts
// and highlighting.
type SEOConfig struct {
	PrimaryKeyword    string   `yaml:"primary_keyword"`
	SecondaryKeywords []string `yaml:"secondary_keywords"`
	KeywordDensity    float64  `yaml:"keyword_density"`
	Tone              string   `yaml:"tone"` // informative, conversational, professional
	TargetAudience    string   `yaml:"target_audience"`
}

// AllKeywords returns the primary keyword (when set) followed by the
// secondary keywords, in highlighting order.
func (s SEOConfig) AllKeywords() []string {
	var keywords []string
	if s.PrimaryKeyword != "" {
		keywords = append(keywords, s.PrimaryKeyword)
	}
	keywords = append(keywords, s.SecondaryKeywords...)
	return keywords
}

// SiteConfig holds site identity used for the request referer header
type SiteConfig struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	Author string `yaml:"author"`
}

// ContentConfig is the validated content configuration consumed by the
// generation pipeline. Loaded from a YAML template by internal/config.
type ContentConfig struct {
	Title           string            `yaml:"title" validate:"required"`
	IntroWords      int               `yaml:"intro_words" validate:"gt=0"`
	ConclusionWords int               `yaml:"conclusion_words" validate:"gt=0"`
	Sections        []Section         `yaml:"sections" validate:"required,min=1,dive"`
	Table           TableConfig       `yaml:"table"`
	Model           string            `yaml:"model"`
	Placeholders    PlaceholderConfig `yaml:"placeholders"`
	SEO             SEOConfig         `yaml:"seo"`
	Site            SiteConfig        `yaml:"site"`
	SystemPrompt    string            `yaml:"system_prompt"`
	Output          string            `yaml:"output" validate:"oneof=html md"`
	Language        string            `yaml:"language"`
}

// Headings returns the section headings in configured order
func (c *ContentConfig) Headings() []string {
	headings := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		headings[i] = s.Heading
	}
	return headings
}

// TotalWords returns the combined target word count
func (c *ContentConfig) TotalWords() int {
	total := c.IntroWords + c.ConclusionWords
	for _, s := range c.Sections {
		total += s.Words
	}
	return total
}

// TableEnabled reports whether a comparison table should be generated
func (c *ContentConfig) TableEnabled() bool {
	return c.Table.Enabled && c.Table.Rows > 0
}

// APICallCount returns the number of completion requests one document
// run will issue: intro + conclusion + one per section, plus the table
// when enabled.
func (c *ContentConfig) APICallCount() int {
	count := 2 + len(c.Sections)
	if c.TableEnabled() {
		count++
	}
	return count
}
