package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Source names where a job description came from
type Source string

const (
	SourceFile Source = "file"
	SourceText Source = "text"
	SourceURL  Source = "url"
)

// Metadata contains metadata about an ingested job posting
type Metadata struct {
	Source    Source `json:"source"`
	Path      string `json:"path,omitempty"`
	URL       string `json:"url,omitempty"`
	Format    string `json:"format,omitempty"`   // json, yaml, toml or text
	Platform  string `json:"platform,omitempty"` // Detected job board platform
	Timestamp string `json:"timestamp"`          // RFC3339 format
	Hash      string `json:"hash"`               // SHA256 hex digest of the ingested content
	FromCache bool   `json:"from_cache,omitempty"`
	Browser   bool   `json:"browser,omitempty"` // content came from headless rendering
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, source Source) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
