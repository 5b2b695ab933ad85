package rndf

import (
	"fmt"
	"os"
)

// Parse reads a complete RNDF document from src. On success the returned
// document carries a freshly built unique-id index; see Document.Info.
func Parse(src []byte) (*Document, error) {
	p := &parser{sc: newScanner(src)}
	doc, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	doc.UpdateIndex()
	return doc, nil
}

// Load parses the RNDF file at path.
func Load(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening RNDF file: %w", err)
	}
	return Parse(src)
}
