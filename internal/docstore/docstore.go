// Package docstore keeps the PDF assets under comparison in a
// content-addressed directory, optionally encrypted at rest.
package docstore

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DocumentStore stores documents under their SHA-256 content hash. When
// a vault password is set, file contents are encrypted on disk and
// transparently decrypted on the way out.
type DocumentStore struct {
	basePath string
	password string
	cipher   *vaultCipher
}

// NewDocumentStore creates the storage directory if needed. An empty
// password disables encryption.
func NewDocumentStore(basePath, password string) (*DocumentStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	ds := &DocumentStore{basePath: basePath, password: password}
	if password != "" {
		ds.cipher = &vaultCipher{}
	}
	return ds, nil
}

// Put stores a document and returns its content id (the SHA-256 of the
// plaintext). Storing identical bytes twice yields the same id.
func (ds *DocumentStore) Put(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	hash := sha256.Sum256(data)
	id := hex.EncodeToString(hash[:])

	if ds.cipher != nil {
		data, err = ds.cipher.Encrypt(data, ds.password)
		if err != nil {
			return "", fmt.Errorf("encryption failed: %w", err)
		}
	}

	if err := os.WriteFile(filepath.Join(ds.basePath, id), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	return id, nil
}

// Get returns the plaintext document content by id.
func (ds *DocumentStore) Get(id string) (io.ReadCloser, error) {
	path := filepath.Join(ds.basePath, id)
	if ds.cipher == nil {
		file, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("document not found: %s", id)
			}
			return nil, fmt.Errorf("failed to open document: %w", err)
		}
		return file, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("document not found: %s", id)
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	plain, err := ds.cipher.Decrypt(data, ds.password)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return io.NopCloser(bytes.NewReader(plain)), nil
}

// Path returns a filesystem path holding the plaintext document, for
// engines that open documents by path. For an encrypted store this is a
// decrypted temporary file owned by the caller.
func (ds *DocumentStore) Path(id string) (string, error) {
	direct := filepath.Join(ds.basePath, id)
	if ds.cipher == nil {
		if _, err := os.Stat(direct); err != nil {
			return "", fmt.Errorf("document not found: %s", id)
		}
		return direct, nil
	}

	r, err := ds.Get(id)
	if err != nil {
		return "", err
	}
	defer r.Close()

	tmp, err := os.CreateTemp("", "docudiff-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	return tmp.Name(), nil
}
