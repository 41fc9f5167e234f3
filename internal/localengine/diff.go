package localengine

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/docudiff/docudiff/internal/engine"
	"github.com/docudiff/docudiff/internal/geometry"
)

// wordRun is a maximal run of same-kind diff output, expressed as index
// ranges into the two word slices.
type wordRun struct {
	kind             engine.OpKind
	origFrom, origTo int
	chgFrom, chgTo   int
}

// diffWords compares two word sequences and groups the result into
// hunks. Each contiguous changed region becomes one hunk whose delete
// and insert operations carry the union rectangle of the covered words;
// equal operations around it carry at most contextWords words of
// context.
func diffWords(original, changed []word, contextWords int) []engine.Hunk {
	runs := wordRuns(original, changed)

	var hunks []engine.Hunk
	var pending []engine.Operation

	appendEqualContext := func(run wordRun, leading bool) {
		from, to := run.origFrom, run.origTo
		if to-from > contextWords {
			if leading {
				from = to - contextWords
			} else {
				to = from + contextWords
			}
		}
		if to <= from {
			return
		}
		chgOffset := run.chgFrom - run.origFrom
		pending = append(pending, engine.Operation{
			Kind:         engine.OpEqual,
			Text:         joinWords(original, from, to),
			OriginalRect: unionRect(original, from, to),
			ChangedRect:  unionRect(changed, from+chgOffset, to+chgOffset),
		})
	}

	flush := func() {
		if len(pending) == 0 {
			return
		}
		hunks = append(hunks, engine.Hunk{Operations: pending})
		pending = nil
	}

	for i, run := range runs {
		switch run.kind {
		case engine.OpEqual:
			if len(pending) > 0 {
				// Trailing context closes the open hunk.
				appendEqualContext(run, false)
				flush()
			}
		case engine.OpDelete:
			if len(pending) == 0 && i > 0 && runs[i-1].kind == engine.OpEqual {
				appendEqualContext(runs[i-1], true)
			}
			pending = append(pending, engine.Operation{
				Kind:         engine.OpDelete,
				Text:         joinWords(original, run.origFrom, run.origTo),
				OriginalRect: unionRect(original, run.origFrom, run.origTo),
			})
		case engine.OpInsert:
			if len(pending) == 0 && i > 0 && runs[i-1].kind == engine.OpEqual {
				appendEqualContext(runs[i-1], true)
			}
			pending = append(pending, engine.Operation{
				Kind:        engine.OpInsert,
				Text:        joinWords(changed, run.chgFrom, run.chgTo),
				ChangedRect: unionRect(changed, run.chgFrom, run.chgTo),
			})
		}
	}
	flush()

	return hunks
}

// wordRuns tokenizes both word lists and maps diffmatchpatch output back
// to word index ranges. Words are encoded one per line so the library's
// line mode diffs whole words, never substrings.
func wordRuns(original, changed []word) []wordRun {
	var a, b strings.Builder
	for _, w := range original {
		a.WriteString(w.text)
		a.WriteByte('\n')
	}
	for _, w := range changed {
		b.WriteString(w.text)
		b.WriteByte('\n')
	}

	dmp := diffmatchpatch.New()
	rOld, rNew, _ := dmp.DiffLinesToRunes(a.String(), b.String())
	diffs := dmp.DiffMainRunes(rOld, rNew, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var runs []wordRun
	origIdx, chgIdx := 0, 0
	for _, d := range diffs {
		n := len([]rune(d.Text))
		if n == 0 {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			runs = append(runs, wordRun{
				kind:     engine.OpEqual,
				origFrom: origIdx, origTo: origIdx + n,
				chgFrom: chgIdx, chgTo: chgIdx + n,
			})
			origIdx += n
			chgIdx += n
		case diffmatchpatch.DiffDelete:
			runs = append(runs, wordRun{
				kind:     engine.OpDelete,
				origFrom: origIdx, origTo: origIdx + n,
				chgFrom: chgIdx, chgTo: chgIdx,
			})
			origIdx += n
		case diffmatchpatch.DiffInsert:
			runs = append(runs, wordRun{
				kind:     engine.OpInsert,
				origFrom: origIdx, origTo: origIdx,
				chgFrom: chgIdx, chgTo: chgIdx + n,
			})
			chgIdx += n
		}
	}
	return runs
}

func joinWords(ws []word, from, to int) string {
	from, to = clampRange(from, to, len(ws))
	parts := make([]string, 0, to-from)
	for _, w := range ws[from:to] {
		parts = append(parts, w.text)
	}
	return strings.Join(parts, " ")
}

func unionRect(ws []word, from, to int) geometry.Rect {
	from, to = clampRange(from, to, len(ws))
	var u geometry.Rect
	for _, w := range ws[from:to] {
		u = u.Union(w.rect)
	}
	return u
}

func clampRange(from, to, n int) (int, int) {
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	if from > to {
		from = to
	}
	return from, to
}
