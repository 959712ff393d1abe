// Package search exposes the knowledge-base index as MCP tools.
package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JTruax/BOIM-WP-MCP/internal/index"
	"github.com/JTruax/BOIM-WP-MCP/internal/kb"
	"github.com/JTruax/BOIM-WP-MCP/internal/registry"
	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type SearchDocsTool struct {
	store        *index.Store
	defaultLimit int
}

func NewSearchDocsTool(store *index.Store, defaultLimit int) *SearchDocsTool {
	return &SearchDocsTool{store: store, defaultLimit: defaultLimit}
}

func (t *SearchDocsTool) Name() string {
	return "search_docs"
}

func (t *SearchDocsTool) Description() string {
	return `Search the WordPress/GenerateBlocks documentation.

Returns matching topics ranked by relevance, each with its resource URI
and a snippet around the first match. Read the full document with the
resources/read method using the returned URI.`
}

func (t *SearchDocsTool) Title() string {
	return "Search Documentation"
}

func (t *SearchDocsTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *SearchDocsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {
				"type": "string",
				"description": "Search terms; all terms must match (required)"
			},
			"limit": {
				"type": "integer",
				"minimum": 1,
				"maximum": 20,
				"description": "Maximum results (default 5)"
			}
		},
		"required": ["query"]
	}`)
}

type searchInput struct {
	Query string `json:"query"`
	Limit *int   `json:"limit"`
}

func (t *SearchDocsTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req searchInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if req.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	limit := t.defaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	if limit < 1 || limit > 20 {
		return nil, fmt.Errorf("limit must be between 1 and 20, got %d", limit)
	}

	hits, err := t.store.Search(req.Query, limit)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"query":   req.Query,
		"results": hits,
		"count":   len(hits),
	}, nil
}

type ListTopicsTool struct {
	lib *kb.Library
}

func NewListTopicsTool(lib *kb.Library) *ListTopicsTool {
	return &ListTopicsTool{lib: lib}
}

func (t *ListTopicsTool) Name() string {
	return "list_doc_topics"
}

func (t *ListTopicsTool) Description() string {
	return `List every documentation topic with its title, summary, and
resource URI.`
}

func (t *ListTopicsTool) Title() string {
	return "List Documentation Topics"
}

func (t *ListTopicsTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ListTopicsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {}
	}`)
}

type topicEntry struct {
	Topic   string `json:"topic"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URI     string `json:"uri"`
}

func (t *ListTopicsTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	docs := t.lib.Docs()
	topics := make([]topicEntry, 0, len(docs))
	for _, doc := range docs {
		topics = append(topics, topicEntry{
			Topic:   doc.Topic,
			Title:   doc.Title,
			Summary: doc.Summary,
			URI:     doc.URI(),
		})
	}
	return map[string]interface{}{
		"topics": topics,
		"count":  len(topics),
	}, nil
}

// GetTools returns the documentation tools in their advertised order.
func GetTools(store *index.Store, lib *kb.Library, defaultLimit int) []registry.Tool {
	return []registry.Tool{
		NewSearchDocsTool(store, defaultLimit),
		NewListTopicsTool(lib),
	}
}
