package controller

import (
	"strings"

	"github.com/docudiff/docudiff/internal/compare"
)

// ChangeSummary is the sidebar's row for one change.
type ChangeSummary struct {
	Index       int    `json:"index"`
	Kind        string `json:"kind"` // "deleted", "inserted" or "replaced"
	Page        int    `json:"page"`
	DeleteText  string `json:"delete_text,omitempty"`
	InsertText  string `json:"insert_text,omitempty"`
	DeleteWords int    `json:"delete_words"`
	InsertWords int    `json:"insert_words"`
	Selected    bool   `json:"selected"`
}

// WordCount counts whitespace-separated words in s. Blank or empty text
// counts as zero.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Summaries returns the sidebar rows in change order.
func (c *Controller) Summaries() []ChangeSummary {
	out := make([]ChangeSummary, 0, len(c.ordered))
	for i, ch := range c.ordered {
		out = append(out, ChangeSummary{
			Index:       i,
			Kind:        changeKind(ch),
			Page:        ch.Page,
			DeleteText:  ch.DeleteText,
			InsertText:  ch.InsertText,
			DeleteWords: WordCount(ch.DeleteText),
			InsertWords: WordCount(ch.InsertText),
			Selected:    i == c.selected,
		})
	}
	return out
}

func changeKind(ch *compare.ChangeOperation) string {
	switch {
	case ch.Deleted && ch.Inserted:
		return "replaced"
	case ch.Deleted:
		return "deleted"
	default:
		return "inserted"
	}
}
