package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anilsoylu/contentforge/internal/models"
)

func TestBuildTableHTML(t *testing.T) {
	columns := testColumns()
	rows := []models.TableRow{
		{Values: map[string]string{"item": "Alpha", "value": "10", "rating": "4"}},
	}

	html := BuildTableHTML(rows, columns)

	assert.Contains(t, html, `<table class="table table-striped">`)
	assert.Contains(t, html, "<th>Item</th>")
	assert.Contains(t, html, "<td>Alpha</td>")
	assert.Contains(t, html, "<td>⭐⭐⭐⭐</td>")

	assert.Empty(t, BuildTableHTML(nil, columns))
	assert.Empty(t, BuildTableHTML(rows, nil))
}

func TestBuildFullHTML(t *testing.T) {
	content := models.GeneratedContent{
		Intro:      "welcome text",
		Sections:   []string{"first body", "second body"},
		Conclusion: "closing text",
	}
	headings := []string{"First", "Second"}

	t.Run("without table", func(t *testing.T) {
		doc := BuildFullHTML("My Title", content, headings, nil)

		require.True(t, strings.HasPrefix(doc, "<h1>My Title</h1>"))
		assert.NotContains(t, doc, "comparison-table")
		assert.Contains(t, doc, "<h2>First</h2>")
		assert.Contains(t, doc, "<h2>Second</h2>")
		assert.Contains(t, doc, "<h2>Conclusion</h2>")

		// Sections appear in configured order
		first := strings.Index(doc, "first body")
		second := strings.Index(doc, "second body")
		require.NotEqual(t, -1, first)
		require.NotEqual(t, -1, second)
		assert.Less(t, first, second)
	})

	t.Run("with table block", func(t *testing.T) {
		withTable := content
		withTable.TableHTML = "<table></table>"
		doc := BuildFullHTML("My Title", withTable, headings, nil)

		assert.Contains(t, doc, `<div class="comparison-table">`)
		assert.Contains(t, doc, "<h2>Comparison</h2>")

		// Table block sits between intro and the first section
		table := strings.Index(doc, "comparison-table")
		section := strings.Index(doc, "<h2>First</h2>")
		assert.Less(t, table, section)
	})

	t.Run("keywords highlighted in body text", func(t *testing.T) {
		kw := models.GeneratedContent{
			Intro:      "all about seo here",
			Sections:   []string{"body"},
			Conclusion: "done",
		}
		doc := BuildFullHTML("T", kw, []string{"H"}, []string{"SEO"})
		assert.Contains(t, doc, "<b>seo</b>")
	})
}
