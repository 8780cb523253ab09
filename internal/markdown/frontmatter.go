package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// ParseFrontMatter splits a document into its front matter fields and the
// Markdown body. Documents without front matter return an empty map and the
// whole source.
func ParseFrontMatter(source []byte) (map[string]interface{}, []byte, error) {
	meta := map[string]interface{}{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta, body, nil
}
