package models

import "fmt"

// Task names used to key batch results. Section tasks are named
// section_<index>; document order is always reconstructed from these
// names, never from completion order.
const (
	TaskIntro      = "intro"
	TaskTable      = "table"
	TaskConclusion = "conclusion"
)

// SectionTaskName returns the batch task name for section index i
func SectionTaskName(i int) string {
	return fmt.Sprintf("section_%d", i)
}

// GenerationTask is one named prompt awaiting exactly one completion.
// Names are unique within a batch.
type GenerationTask struct {
	Name   string
	Prompt string
}

// TableRow holds one parsed table line keyed by column name
type TableRow struct {
	Values map[string]string
}

// Get returns the value for a column name, or empty string
func (r TableRow) Get(columnName string) string {
	return r.Values[columnName]
}

// GeneratedContent collects the raw and rendered artifacts of one
// document run. Sections is parallel to ContentConfig.Sections; both
// table fields stay empty when the table is disabled.
type GeneratedContent struct {
	Intro      string
	TableHTML  string
	TableMD    string
	Sections   []string
	Conclusion string
}
