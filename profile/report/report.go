// Package report persists analysis profiles as versioned JSON
// documents so successive vendor drops can be diffed.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/Spinnernicholas/cocoa-canvas/profile"
)

// Version of the report document layout.
const Version = 1

// Document wraps a profile with run metadata.
type Document struct {
	Version   int              `json:"version"`
	ID        string           `json:"id"`
	Path      string           `json:"path"`
	CreatedAt time.Time        `json:"created_at"`
	Profile   *profile.Profile `json:"profile"`
}

// New builds a document with a fresh run id.
func New(path string, p *profile.Profile) *Document {
	return &Document{
		Version:   Version,
		ID:        uuid.NewV4().String(),
		Path:      path,
		CreatedAt: time.Now().UTC(),
		Profile:   p,
	}
}

// Write encodes the document as indented JSON.
func Write(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Read decodes a document and validates its version.
func Read(r io.Reader) (*Document, error) {
	var d Document

	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}

	if d.Version != Version {
		return nil, fmt.Errorf("unsupported report version: %d", d.Version)
	}

	return &d, nil
}

// Save writes the document to a file.
func Save(path string, d *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, d); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Load reads a document from a file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
