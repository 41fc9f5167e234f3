package compare

import (
	"github.com/docudiff/docudiff/internal/geometry"
)

// ChangeOperation is one logical change at a distinct text coordinate:
// a deletion, an insertion, or a replacement (both at once).
type ChangeOperation struct {
	DeleteText string `json:"delete_text,omitempty"`
	InsertText string `json:"insert_text,omitempty"`
	Deleted    bool   `json:"deleted"`
	Inserted   bool   `json:"inserted"`
	Page       int    `json:"page"`

	OriginalRect geometry.Rect `json:"original_rect"`
	ChangedRect  geometry.Rect `json:"changed_rect"`

	// AnnotationIDs are the highlight annotations created for this change,
	// across both views. Kept so a later selection pass can find them.
	AnnotationIDs []string `json:"annotation_ids"`
}

// ChangeIndex is an insertion-ordered map from coordinate key to change.
// At most one entry exists per key; putting a change at an existing key
// merges it non-destructively.
type ChangeIndex struct {
	keys    []string
	changes map[string]*ChangeOperation
}

func NewChangeIndex() *ChangeIndex {
	return &ChangeIndex{changes: make(map[string]*ChangeOperation)}
}

// Len returns the number of distinct entries.
func (ci *ChangeIndex) Len() int { return len(ci.keys) }

// Get returns the change at key, or nil.
func (ci *ChangeIndex) Get(key string) *ChangeOperation {
	return ci.changes[key]
}

// At returns the i-th change in insertion order.
func (ci *ChangeIndex) At(i int) *ChangeOperation {
	if i < 0 || i >= len(ci.keys) {
		return nil
	}
	return ci.changes[ci.keys[i]]
}

// Keys returns the coordinate keys in insertion order.
func (ci *ChangeIndex) Keys() []string {
	out := make([]string, len(ci.keys))
	copy(out, ci.keys)
	return out
}

// Put inserts op at key, merging into any existing entry. Merging never
// discards recorded fields: delete data, insert data and annotation ids
// of the existing entry all survive, and incoming annotation ids are
// appended (without duplicates).
func (ci *ChangeIndex) Put(key string, op *ChangeOperation) *ChangeOperation {
	existing, ok := ci.changes[key]
	if !ok {
		cp := *op
		cp.AnnotationIDs = append([]string(nil), op.AnnotationIDs...)
		ci.changes[key] = &cp
		ci.keys = append(ci.keys, key)
		return &cp
	}

	if op.Deleted && !existing.Deleted {
		existing.Deleted = true
		existing.DeleteText = op.DeleteText
		existing.OriginalRect = op.OriginalRect
	}
	if op.Inserted && !existing.Inserted {
		existing.Inserted = true
		existing.InsertText = op.InsertText
		existing.ChangedRect = op.ChangedRect
	}
	for _, id := range op.AnnotationIDs {
		if !containsID(existing.AnnotationIDs, id) {
			existing.AnnotationIDs = append(existing.AnnotationIDs, id)
		}
	}
	return existing
}

// MergeFrom folds another index into this one in the other's insertion
// order. Keys carry no page component, so identical origins on different
// pages land on the same entry; see DESIGN.md.
func (ci *ChangeIndex) MergeFrom(other *ChangeIndex) {
	for _, key := range other.keys {
		ci.Put(key, other.changes[key])
	}
}

// Flatten returns all changes in insertion order.
func (ci *ChangeIndex) Flatten() []*ChangeOperation {
	out := make([]*ChangeOperation, 0, len(ci.keys))
	for _, key := range ci.keys {
		out = append(out, ci.changes[key])
	}
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
