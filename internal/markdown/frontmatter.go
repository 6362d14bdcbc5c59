// Package markdown imports Markdown documents with YAML frontmatter as
// articles with block content.
package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// Meta is the structured frontmatter of an importable document.
type Meta struct {
	Title       string    `yaml:"title"`
	Slug        string    `yaml:"slug"`
	Description string    `yaml:"description"`
	Status      string    `yaml:"status"`
	Categories  []string  `yaml:"categories"`
	Tags        []string  `yaml:"tags"`
	Keywords    []string  `yaml:"keywords"`
	Date        time.Time `yaml:"date"`
	Draft       bool      `yaml:"draft"`
}

// ParseFrontMatter extracts metadata and the Markdown body from source bytes.
func ParseFrontMatter(source []byte) (Meta, []byte, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}
