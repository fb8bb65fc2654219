package render

import "regexp"

// highlightKeywords wraps every case-insensitive occurrence of each
// keyword with the given markers, preserving the original casing of
// the matched text. Keywords are applied sequentially, so a later
// keyword can match inside markup inserted for an earlier one when
// their characters overlap; that behavior is kept as-is.
func highlightKeywords(text string, keywords []string, openMark, closeMark string) string {
	if len(keywords) == 0 {
		return text
	}

	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(keyword))
		text = pattern.ReplaceAllStringFunc(text, func(match string) string {
			return openMark + match + closeMark
		})
	}

	return text
}

// HighlightHTML wraps keyword matches in <b> tags
func HighlightHTML(text string, keywords []string) string {
	return highlightKeywords(text, keywords, "<b>", "</b>")
}

// HighlightMarkdown wraps keyword matches in ** emphasis
func HighlightMarkdown(text string, keywords []string) string {
	return highlightKeywords(text, keywords, "**", "**")
}
