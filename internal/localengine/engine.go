// Package localengine is a self-contained PDF comparison engine backing
// the demo: rsc.io/pdf for page geometry and positioned text, word-level
// diffing for the comparison call, in-memory annotations. It stands in
// for the licensed SDK the production viewer drives.
package localengine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"rsc.io/pdf"

	"github.com/docudiff/docudiff/internal/cache"
	"github.com/docudiff/docudiff/internal/engine"
	"github.com/docudiff/docudiff/pkg/logging"
)

// defaultContextWords matches the driver's default context window.
const defaultContextWords = 100

// Engine implements engine.Engine over local files. The cache is
// optional; with one attached, repeated comparisons of the same document
// pair are served from disk.
type Engine struct {
	Cache *cache.CompareCache
}

// New returns an engine with an optional comparison cache.
func New(c *cache.CompareCache) *Engine {
	return &Engine{Cache: c}
}

// LoadDocument opens the PDF at path into a new view instance.
func (e *Engine) LoadDocument(ctx context.Context, path, containerID string) (engine.View, error) {
	reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v", path, err)
	}
	logging.Component("engine").Debugf("loaded %s into %s (%d pages)", path, containerID, reader.NumPage())
	return newView(reader, path, containerID), nil
}

// Compare diffs one page of the two documents at word level.
func (e *Engine) Compare(ctx context.Context, req engine.CompareRequest) (engine.CompareResult, error) {
	contextWords := req.ContextWords
	if contextWords <= 0 {
		contextWords = defaultContextWords
	}

	var origID, chgID string
	if e.Cache != nil {
		var err error
		origID, err = contentID(req.OriginalPath)
		if err != nil {
			return engine.CompareResult{}, err
		}
		chgID, err = contentID(req.ChangedPath)
		if err != nil {
			return engine.CompareResult{}, err
		}
		if result, ok := e.Cache.Get(origID, chgID, req.Page); ok {
			return result, nil
		}
	}

	origReader, err := pdf.Open(req.OriginalPath)
	if err != nil {
		return engine.CompareResult{}, fmt.Errorf("open %s: %v", req.OriginalPath, err)
	}
	chgReader, err := pdf.Open(req.ChangedPath)
	if err != nil {
		return engine.CompareResult{}, fmt.Errorf("open %s: %v", req.ChangedPath, err)
	}

	origWords := extractWords(origReader, req.Page)
	chgWords := extractWords(chgReader, req.Page)

	hunks := diffWords(origWords, chgWords, contextWords)
	if hunks == nil {
		hunks = []engine.Hunk{}
	}
	result := engine.CompareResult{Hunks: hunks}

	if e.Cache != nil {
		if err := e.Cache.Put(origID, chgID, req.Page, result); err != nil {
			logging.Component("engine").Warnf("cache write failed for page %d: %v", req.Page, err)
		}
	}
	return result, nil
}

// contentID hashes the file's bytes, matching the docstore's ids.
func contentID(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %v", path, err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %v", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
