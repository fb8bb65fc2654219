// Package render converts raw generated text and parsed table data
// into the final HTML or Markdown document. Everything here is pure
// and deterministic: no I/O, no state beyond the inputs.
package render

import "strings"

// blockKind discriminates the two block types segmentation can emit
type blockKind int

const (
	blockParagraph blockKind = iota
	blockList
)

// block is one paragraph or list produced by segmentation. Paragraph
// lines are later joined with a single space; list lines are items in
// original order.
type block struct {
	kind  blockKind
	lines []string
}

// bulletMarkers are the prefixes that start a list item
var bulletMarkers = []string{"• ", "- ", "* "}

// bulletItem returns the item text and true when the line starts with
// a bullet marker.
func bulletItem(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return line[len(marker):], true
		}
	}
	return "", false
}

// segment splits raw generated text into paragraph and list blocks
// with an explicit two-buffer state machine. A blank line flushes the
// pending paragraph before the pending list; a bullet line flushes the
// pending paragraph; any other non-blank line flushes the pending
// list. Both buffers are flushed in the same order at end of input.
func segment(text string) []block {
	var blocks []block
	var paragraph []string
	var list []string

	flushParagraph := func() {
		if len(paragraph) > 0 {
			blocks = append(blocks, block{kind: blockParagraph, lines: paragraph})
			paragraph = nil
		}
	}
	flushList := func() {
		if len(list) > 0 {
			blocks = append(blocks, block{kind: blockList, lines: list})
			list = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flushParagraph()
			flushList()
			continue
		}

		if item, ok := bulletItem(line); ok {
			flushParagraph()
			list = append(list, item)
		} else {
			flushList()
			paragraph = append(paragraph, line)
		}
	}

	flushParagraph()
	flushList()

	return blocks
}
