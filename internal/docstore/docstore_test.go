package docstore

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPutGetRoundTrip(t *testing.T) {
	ds, err := NewDocumentStore(t.TempDir(), "")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	content := []byte("%PDF-1.4 fake document body")
	id, err := ds.Put(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("failed to put document: %v", err)
	}

	// Identical bytes produce the same id.
	id2, err := ds.Put(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("failed to put document again: %v", err)
	}
	if id != id2 {
		t.Errorf("content id not stable: %s vs %s", id, id2)
	}

	r, err := ds.Get(id)
	if err != nil {
		t.Fatalf("failed to get document: %v", err)
	}
	defer r.Close()
	got, _ := io.ReadAll(r)
	if !bytes.Equal(got, content) {
		t.Error("retrieved content does not match")
	}

	path, err := ds.Path(id)
	if err != nil {
		t.Fatalf("failed to resolve path: %v", err)
	}
	onDisk, _ := os.ReadFile(path)
	if !bytes.Equal(onDisk, content) {
		t.Error("path does not hold the document content")
	}
}

func TestEncryptedStore(t *testing.T) {
	dir := t.TempDir()
	ds, err := NewDocumentStore(dir, "hunter2hunter2")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	content := []byte("%PDF-1.4 secret body secret body secret body")
	id, err := ds.Put(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("failed to put document: %v", err)
	}

	// The on-disk file must not contain the plaintext.
	raw, err := os.ReadFile(filepath.Join(dir, id))
	if err != nil {
		t.Fatalf("failed to read raw file: %v", err)
	}
	if bytes.Contains(raw, []byte("secret body")) {
		t.Error("plaintext leaked to disk")
	}

	r, err := ds.Get(id)
	if err != nil {
		t.Fatalf("failed to get document: %v", err)
	}
	defer r.Close()
	got, _ := io.ReadAll(r)
	if !bytes.Equal(got, content) {
		t.Error("decrypted content does not match")
	}

	// Path produces a decrypted temp copy outside the vault dir.
	path, err := ds.Path(id)
	if err != nil {
		t.Fatalf("failed to resolve path: %v", err)
	}
	defer os.Remove(path)
	if strings.HasPrefix(path, dir) {
		t.Error("encrypted store must not hand out the raw vault path")
	}
	plain, _ := os.ReadFile(path)
	if !bytes.Equal(plain, content) {
		t.Error("temp copy does not match the document")
	}
}

func TestGetMissing(t *testing.T) {
	ds, err := NewDocumentStore(t.TempDir(), "")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if _, err := ds.Get("deadbeef"); err == nil {
		t.Error("expected error for missing document")
	}
	if _, err := ds.Path("deadbeef"); err == nil {
		t.Error("expected error for missing document path")
	}
}
