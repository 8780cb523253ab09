// Package permalink sets the `permalink` front matter field of Markdown notes
// from their file names.
package permalink

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"strings"
	"unicode"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-slug"
	"gopkg.in/yaml.v3"
)

const (
	keyPermalink = "permalink"
	keySlug      = "slug"
	delimiter    = "---"
	hashLength   = 8
)

var yamlFormat = frontmatter.NewFormat(delimiter, delimiter, yaml.Unmarshal)

// Processor rewrites the permalink of documents carrying YAML front matter to
// `{prefix}/{slug}/`.
type Processor struct {
	prefix string
}

// New returns a processor placing permalinks under prefix.
func New(prefix string) *Processor {
	return &Processor{prefix: strings.TrimRight(prefix, "/")}
}

func (p *Processor) Name() string {
	return "permalink"
}

// Link returns the permalink for a slug.
func (p *Processor) Link(slug string) string {
	return p.prefix + "/" + slug + "/"
}

// Process updates the permalink of the document at name. Documents without
// front matter, or whose permalink is already current, are returned
// unchanged with a zero count.
func (p *Processor) Process(name string, source []byte) ([]byte, int, error) {
	var doc yaml.Node

	body, err := frontmatter.MustParse(bytes.NewReader(source), &doc, yamlFormat)
	if errors.Is(err, frontmatter.ErrNotFound) {
		return source, 0, nil
	}

	if err != nil {
		return nil, 0, err
	}

	fields, err := mapping(&doc)
	if err != nil {
		return nil, 0, err
	}

	title := lookup(fields, keySlug)
	if len(title) == 0 {
		base := path.Base(name)
		title = strings.TrimSuffix(base, path.Ext(base))
	}

	s, err := Slug(title)
	if err != nil {
		return nil, 0, err
	}

	link := p.Link(s)
	if lookup(fields, keyPermalink) == link {
		return source, 0, nil
	}

	set(fields, keyPermalink, link)

	head, err := encode(&doc)
	if err != nil {
		return nil, 0, err
	}

	var buf bytes.Buffer

	buf.WriteString(delimiter + "\n")
	buf.Write(head)
	buf.WriteString(delimiter + "\n\n")
	buf.Write(bytes.TrimLeft(body, "\r\n"))

	return buf.Bytes(), 1, nil
}

// Slug turns a note title into a URL slug. Dots become hyphens so that
// section numbers like 2.6 stay readable. Titles with non-ASCII letters or
// digits, which normalization drops, get a short hash of the title appended
// so that "2.6 信道复用技术" and "2.6 其他" keep distinct slugs.
func Slug(title string) (string, error) {
	title = strings.TrimSpace(title)

	s, err := slug.Normalize(strings.ReplaceAll(title, ".", "-"))
	if !hasNonASCII(title) {
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrEmptySlug, title, err)
		}

		if len(s) == 0 {
			return "", fmt.Errorf("%w: %q", ErrEmptySlug, title)
		}

		return s, nil
	}

	sum := sha256.Sum256([]byte(title))
	hash := hex.EncodeToString(sum[:])[:hashLength]

	if err != nil || len(s) == 0 {
		return hash, nil
	}

	return s + "-" + hash, nil
}

func hasNonASCII(title string) bool {
	for _, r := range title {
		if r > unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return true
		}
	}

	return false
}

func mapping(doc *yaml.Node) (*yaml.Node, error) {
	if doc.Kind == 0 {
		doc.Kind = yaml.DocumentNode
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	return doc.Content[0], nil
}

func lookup(fields *yaml.Node, key string) string {
	for i := 0; i+1 < len(fields.Content); i += 2 {
		if fields.Content[i].Value == key {
			return fields.Content[i+1].Value
		}
	}

	return ""
}

func set(fields *yaml.Node, key, value string) {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}

	for i := 0; i+1 < len(fields.Content); i += 2 {
		if fields.Content[i].Value == key {
			fields.Content[i+1] = node

			return
		}
	}

	fields.Content = append(fields.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, node)
}

func encode(doc *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2) //nolint:gomnd

	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

var (
	// ErrEmptySlug is returned when a title leaves nothing usable in a slug.
	ErrEmptySlug = errors.New("cannot derive slug")
	// ErrNotMapping is returned for front matter that is not a YAML mapping.
	ErrNotMapping = errors.New("front matter is not a mapping")
)
