package engine

import "github.com/docudiff/docudiff/internal/geometry"

// OpKind tags one diff operation.
type OpKind string

const (
	OpEqual  OpKind = "equal"
	OpDelete OpKind = "delete"
	OpInsert OpKind = "insert"
)

// Operation is one diff unit: the differing text plus the bounding
// rectangle of the affected block in whichever document(s) carry it.
// Delete operations carry OriginalRect, insert operations ChangedRect,
// equal operations may carry both.
type Operation struct {
	Kind         OpKind        `json:"kind"`
	Text         string        `json:"text"`
	OriginalRect geometry.Rect `json:"original_rect"`
	ChangedRect  geometry.Rect `json:"changed_rect"`
}

// Hunk is a contiguous run of operations produced for one comparison
// region.
type Hunk struct {
	Operations []Operation `json:"operations"`
}

// CompareRequest asks for a text comparison of one page of two documents.
type CompareRequest struct {
	OriginalPath string `json:"original_path"`
	ChangedPath  string `json:"changed_path"`
	Page         int    `json:"page"`
	// ContextWords bounds the window of surrounding equal text kept per
	// change. Zero means the engine default (100).
	ContextWords int `json:"context_words"`
}

// CompareResult is the engine's answer for one page.
type CompareResult struct {
	Hunks []Hunk `json:"hunks"`
}
