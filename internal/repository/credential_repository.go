package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type credentialFile struct {
	APIKey string `json:"api_key"`
}

// CredentialRepository stores the single global API key as a small JSON
// file, rewritten wholesale on every Set.
type CredentialRepository struct {
	path string
	mu   sync.Mutex
}

func NewCredentialRepository(path string) *CredentialRepository {
	return &CredentialRepository{path: path}
}

// Get returns the stored key, or "" if none is set or the file cannot be
// read. Callers never see read errors.
func (r *CredentialRepository) Get() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return ""
	}

	var f credentialFile
	if err := json.Unmarshal(data, &f); err != nil {
		return ""
	}
	return f.APIKey
}

func (r *CredentialRepository) Set(apiKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(credentialFile{APIKey: apiKey}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credential: %w", err)
	}
	return writeFileAtomic(r.path, data)
}
