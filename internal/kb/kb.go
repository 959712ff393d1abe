package kb

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed content/*.md
var contentFS embed.FS

const uriScheme = "wpdocs://"

// Doc is the catalog entry for one knowledge-base document. The body
// lives in the embedded filesystem (or in the override directory when
// one is configured).
type Doc struct {
	Topic   string
	Title   string
	Summary string
	file    string
}

func (d Doc) URI() string {
	return uriScheme + d.Topic
}

// catalog defines the knowledge base in the order documents are
// advertised. Topics are stable identifiers; renaming one breaks
// client bookmarks.
var catalog = []Doc{
	{
		Topic:   "generateblocks-overview",
		Title:   "GenerateBlocks Overview",
		Summary: "What GenerateBlocks is, its core blocks, and how they compose",
		file:    "generateblocks-overview.md",
	},
	{
		Topic:   "container-block",
		Title:   "Container Block Reference",
		Summary: "Container block attributes, spacing, colors, and markup structure",
		file:    "container-block.md",
	},
	{
		Topic:   "grid-block",
		Title:   "Grid Block Reference",
		Summary: "Grid wrapper, column sizing, and responsive breakpoints",
		file:    "grid-block.md",
	},
	{
		Topic:   "query-loop",
		Title:   "Query Loop Guide",
		Summary: "Building post listings with the Query Loop block and query parameters",
		file:    "query-loop.md",
	},
	{
		Topic:   "dynamic-data",
		Title:   "Dynamic Data Guide",
		Summary: "Binding block content to post fields, meta, and author data",
		file:    "dynamic-data.md",
	},
	{
		Topic:   "block-patterns",
		Title:   "Block Patterns Guide",
		Summary: "Registering and organizing reusable block patterns",
		file:    "block-patterns.md",
	},
	{
		Topic:   "theme-json",
		Title:   "theme.json Reference",
		Summary: "Global styles, settings, and presets via theme.json",
		file:    "theme-json.md",
	},
	{
		Topic:   "wp-hooks",
		Title:   "WordPress Hooks Reference",
		Summary: "Actions and filters commonly used alongside GenerateBlocks",
		file:    "wp-hooks.md",
	},
	{
		Topic:   "coding-standards",
		Title:   "WordPress Coding Standards",
		Summary: "PHP and block markup conventions the generated code follows",
		file:    "coding-standards.md",
	},
}

// Library resolves document content, preferring files in the override
// directory over the embedded copies. The catalog itself (topics,
// titles, URIs) never changes at runtime; only content can be
// shadowed.
type Library struct {
	overrideDir string
	byTopic     map[string]Doc
}

func NewLibrary(overrideDir string) *Library {
	byTopic := make(map[string]Doc, len(catalog))
	for _, doc := range catalog {
		byTopic[doc.Topic] = doc
	}
	return &Library{
		overrideDir: overrideDir,
		byTopic:     byTopic,
	}
}

// Docs returns the catalog in its declared order.
func (l *Library) Docs() []Doc {
	docs := make([]Doc, len(catalog))
	copy(docs, catalog)
	return docs
}

func (l *Library) Get(topic string) (Doc, bool) {
	doc, ok := l.byTopic[topic]
	return doc, ok
}

// Content returns the document body for a topic. An override file
// named after the embedded one shadows the embedded copy.
func (l *Library) Content(topic string) (string, error) {
	doc, ok := l.byTopic[topic]
	if !ok {
		return "", fmt.Errorf("unknown topic: %s", topic)
	}

	if l.overrideDir != "" {
		path := filepath.Join(l.overrideDir, doc.file)
		if data, err := os.ReadFile(path); err == nil {
			return string(data), nil
		}
	}

	data, err := contentFS.ReadFile("content/" + doc.file)
	if err != nil {
		return "", fmt.Errorf("read embedded doc %s: %w", doc.file, err)
	}
	return string(data), nil
}

// TopicForFile maps an override file name back to its topic, used by
// the watcher to decide what to re-index.
func (l *Library) TopicForFile(name string) (string, bool) {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, ".md") {
		return "", false
	}
	topic := strings.TrimSuffix(base, ".md")
	if _, ok := l.byTopic[topic]; !ok {
		return "", false
	}
	return topic, true
}

func (l *Library) OverrideDir() string {
	return l.overrideDir
}
