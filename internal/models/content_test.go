package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllKeywords(t *testing.T) {
	tests := []struct {
		name string
		seo  SEOConfig
		want []string
	}{
		{
			name: "primary first then secondary",
			seo:  SEOConfig{PrimaryKeyword: "widgets", SecondaryKeywords: []string{"pricing", "reviews"}},
			want: []string{"widgets", "pricing", "reviews"},
		},
		{
			name: "no primary",
			seo:  SEOConfig{SecondaryKeywords: []string{"pricing"}},
			want: []string{"pricing"},
		},
		{
			name: "empty",
			seo:  SEOConfig{},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.seo.AllKeywords())
		})
	}
}

func TestContentConfigHeadings(t *testing.T) {
	cfg := ContentConfig{Sections: []Section{
		{Heading: "Alpha", Words: 100},
		{Heading: "Beta", Words: 150},
	}}
	assert.Equal(t, []string{"Alpha", "Beta"}, cfg.Headings())
}

func TestContentConfigTotalWords(t *testing.T) {
	cfg := ContentConfig{
		IntroWords:      100,
		ConclusionWords: 80,
		Sections:        []Section{{Words: 120}, {Words: 130}},
	}
	assert.Equal(t, 430, cfg.TotalWords())
}

func TestContentConfigTableEnabled(t *testing.T) {
	assert.True(t, (&ContentConfig{Table: TableConfig{Enabled: true, Rows: 5}}).TableEnabled())
	assert.False(t, (&ContentConfig{Table: TableConfig{Enabled: true, Rows: 0}}).TableEnabled())
	assert.False(t, (&ContentConfig{Table: TableConfig{Enabled: false, Rows: 5}}).TableEnabled())
}

func TestContentConfigAPICallCount(t *testing.T) {
	cfg := ContentConfig{Sections: []Section{{}, {}, {}}}
	assert.Equal(t, 5, cfg.APICallCount())

	cfg.Table = TableConfig{Enabled: true, Rows: 5}
	assert.Equal(t, 6, cfg.APICallCount())
}

func TestDefaultTableColumns(t *testing.T) {
	cols := DefaultTableColumns()
	assert.Len(t, cols, 4)
	assert.Equal(t, "item", cols[0].Name)
	assert.Equal(t, ColumnTypeStars, cols[3].Type)
	assert.Equal(t, "RATING", cols[3].Placeholder)
}

func TestSectionTaskName(t *testing.T) {
	assert.Equal(t, "section_0", SectionTaskName(0))
	assert.Equal(t, "section_3", SectionTaskName(3))
}
